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

package blobkzg

import (
	"errors"

	"github.com/consensys/blobkzg/internal/kzg"
)

var (
	// ErrBlobSize is returned when a blob does not hold exactly
	// ScalarsPerBlob serialized field elements. Blobs are never padded or
	// truncated.
	ErrBlobSize = errors.New("blobkzg: blob must hold exactly 4096 32-byte field elements")

	// ErrEmptyInput is returned when an aggregated proof is requested over
	// zero blobs.
	ErrEmptyInput = kzg.ErrEmptyInput

	// ErrCountMismatch is returned when the number of commitments differs
	// from the number of blobs.
	ErrCountMismatch = kzg.ErrInvalidNbDigests

	// ErrDecoding is returned when a serialized scalar or curve point does
	// not decode: a blob element not below the field modulus, or 48/96
	// bytes that are not a valid compressed point in the right subgroup.
	ErrDecoding = errors.New("blobkzg: invalid encoding")

	// ErrSetup is returned when a Context is constructed from an
	// insufficient or structurally malformed trusted setup. A Context is
	// never partially usable.
	ErrSetup = errors.New("blobkzg: malformed or insufficient trusted setup")

	// ErrDomainSize signals an FFT invoked with a mismatched length; it
	// indicates a bug in the caller rather than bad user input.
	ErrDomainSize = kzg.ErrDomainSize
)
