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
	"time"

	"github.com/consensys/blobkzg/internal/kzg"
	"github.com/consensys/blobkzg/logger"
)

// BlobToKZGCommitment commits to a single blob.
func (c *Context) BlobToKZGCommitment(blob Blob) (KZGCommitment, error) {
	poly, err := deserializeBlob(blob)
	if err != nil {
		return KZGCommitment{}, err
	}

	comm, err := kzg.Commit(poly, c.commitKey, c.nbTasks)
	if err != nil {
		return KZGCommitment{}, err
	}

	return serializeG1Point(*comm), nil
}

// BlobsToKZGCommitments commits to each blob independently. The result
// preserves input order; blobs are processed in parallel when the Context
// was built with WithParallelism.
func (c *Context) BlobsToKZGCommitments(blobs []Blob) ([]KZGCommitment, error) {
	start := time.Now()

	polys, err := deserializeBlobs(blobs)
	if err != nil {
		return nil, err
	}

	comms, err := kzg.CommitToPolynomials(polys, c.commitKey, c.nbTasks)
	if err != nil {
		return nil, err
	}

	serialized := make([]KZGCommitment, len(comms))
	for i := range comms {
		serialized[i] = serializeG1Point(comms[i])
	}

	log := logger.WithComponent("commit")
	log.Debug().Dur("took", time.Since(start)).Int("nbBlobs", len(blobs)).Msg("blobs committed")

	return serialized, nil
}

// ComputeAggregatedKZGProof folds all blobs into one polynomial with
// transcript-derived randomness and opens it at the transcript-derived
// challenge. One proof point comes back regardless of the blob count.
func (c *Context) ComputeAggregatedKZGProof(blobs []Blob) (KZGProof, error) {
	start := time.Now()

	polys, err := deserializeBlobs(blobs)
	if err != nil {
		return KZGProof{}, err
	}

	proof, err := kzg.BatchOpenSinglePoint(c.domain, polys, c.commitKey, c.nbTasks)
	if err != nil {
		return KZGProof{}, err
	}

	log := logger.WithComponent("prove")
	log.Debug().Dur("took", time.Since(start)).Int("nbBlobs", len(blobs)).Msg("aggregated proof computed")

	return serializeG1Point(proof.QuotientComm), nil
}
