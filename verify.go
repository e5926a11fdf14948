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
	"fmt"
	"time"

	"github.com/consensys/blobkzg/internal/kzg"
	"github.com/consensys/blobkzg/logger"
)

// VerifyAggregatedKZGProof checks that proof opens the aggregation of the
// given blobs against the given commitments. It uses nothing beyond its
// arguments and the Context, so any party re-running it over the same
// bytes gets the same answer.
//
// A false return with a nil error means the proof is cryptographically
// invalid (fraudulent or corrupted); a non-nil error means the inputs were
// structurally malformed and the check could not be attempted.
func (c *Context) VerifyAggregatedKZGProof(blobs []Blob, commitments []KZGCommitment, proof KZGProof) (bool, error) {
	start := time.Now()

	if len(commitments) != len(blobs) {
		return false, fmt.Errorf("%w: %d blobs, %d commitments", ErrCountMismatch, len(blobs), len(commitments))
	}

	polys, err := deserializeBlobs(blobs)
	if err != nil {
		return false, err
	}
	comms, err := deserializeCommitments(commitments)
	if err != nil {
		return false, err
	}
	quotientComm, err := deserializeG1Point([CompressedG1Size]byte(proof))
	if err != nil {
		return false, fmt.Errorf("proof: %w", err)
	}

	ok, err := kzg.VerifyBatchOpen(c.domain, polys, comms, quotientComm, c.openKey, c.nbTasks)
	if err != nil {
		return false, err
	}

	log := logger.WithComponent("verify")
	log.Debug().Dur("took", time.Since(start)).Int("nbBlobs", len(blobs)).Bool("valid", ok).Msg("aggregated proof verified")

	return ok, nil
}

// VerifyKZGProof checks a single non-aggregated opening: that the
// polynomial behind commitment evaluates to claimedValue at inputPoint.
// All inputs arrive serialized, as they would from a consensus client.
func (c *Context) VerifyKZGProof(commitment KZGCommitment, inputPoint, claimedValue SerializedScalar, proof KZGProof) (bool, error) {
	z, err := deserializeScalar(inputPoint)
	if err != nil {
		return false, fmt.Errorf("input point: %w", err)
	}
	y, err := deserializeScalar(claimedValue)
	if err != nil {
		return false, fmt.Errorf("claimed value: %w", err)
	}
	comm, err := deserializeG1Point([CompressedG1Size]byte(commitment))
	if err != nil {
		return false, fmt.Errorf("commitment: %w", err)
	}
	quotientComm, err := deserializeG1Point([CompressedG1Size]byte(proof))
	if err != nil {
		return false, fmt.Errorf("proof: %w", err)
	}

	openingProof := kzg.OpeningProof{
		QuotientComm: quotientComm,
		InputPoint:   z,
		ClaimedValue: y,
	}
	return kzg.Verify(&comm, &openingProof, c.openKey)
}
