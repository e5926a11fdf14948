// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package blobkzg implements the KZG polynomial commitment scheme
// specialized for Ethereum's proto-danksharding blob model: committing to
// fixed-size data blobs, producing one aggregated opening proof for many
// blobs, and verifying it with a single pairing check.
//
// All operations hang off a Context, which holds the trusted-setup output
// (the structured reference string) and is immutable and safe for
// concurrent use once constructed. Blobs, commitments and proofs cross the
// API as fixed-width byte encodings matching the consensus layer: 4096
// 32-byte big-endian field elements per blob, 48-byte compressed G1 points
// for commitments and proofs.
package blobkzg
