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

package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/blobkzg/internal/fiatshamir"
	"github.com/consensys/blobkzg/internal/multiexp"
	"github.com/consensys/blobkzg/internal/utils"
)

// DomSepProtocol separates this protocol's transcript from every other
// sha256 use. The value is the consensus-layer constant; changing it
// breaks interoperability with every other verifier.
const DomSepProtocol = "FSBlobVerify_V1_"

// BatchOpeningProof opens many polynomials at one transcript-derived point
// with a single quotient commitment.
type BatchOpeningProof struct {
	// QuotientComm commits to the quotient of the aggregated polynomial.
	QuotientComm bls12381.G1Affine
	// Commitments to each input polynomial, in input order.
	Commitments []Commitment
}

// CommitToPolynomials commits to each polynomial independently. Output
// order matches input order regardless of the number of workers.
func CommitToPolynomials(polys []Polynomial, ck *CommitKey, nbTasks int) ([]Commitment, error) {
	comms := make([]Commitment, len(polys))

	if nbTasks <= 1 || len(polys) == 1 {
		for i := range polys {
			comm, err := Commit(polys[i], ck, nbTasks)
			if err != nil {
				return nil, err
			}
			comms[i] = *comm
		}
		return comms, nil
	}

	// One MSM per worker; the MSMs themselves stay single-threaded so the
	// worker count is the only parallelism knob.
	g := new(errgroup.Group)
	g.SetLimit(nbTasks)
	for i := range polys {
		g.Go(func() error {
			comm, err := Commit(polys[i], ck, 1)
			if err != nil {
				return err
			}
			comms[i] = *comm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return comms, nil
}

// BatchOpenSinglePoint commits to every polynomial, derives the
// aggregation challenge r and evaluation challenge z from the transcript,
// folds the polynomials with powers of r and opens the folded polynomial
// at z.
func BatchOpenSinglePoint(domain *Domain, polys []Polynomial, ck *CommitKey, nbTasks int) (*BatchOpeningProof, error) {
	if err := correctnessChecks(domain, polys); err != nil {
		return nil, err
	}

	comms, err := CommitToPolynomials(polys, ck, nbTasks)
	if err != nil {
		return nil, err
	}

	r, z := deriveChallenges(domain, polys, comms)
	powers := utils.ComputePowers(r, uint(len(polys)))

	foldedPoly := foldPolynomials(polys, powers, nbTasks)

	proof, err := Open(domain, foldedPoly, z, ck, nbTasks)
	if err != nil {
		return nil, err
	}

	return &BatchOpeningProof{
		QuotientComm: proof.QuotientComm,
		Commitments:  comms,
	}, nil
}

// VerifyBatchOpen re-derives (r, z) from the same public data the prover
// used, folds the commitments in the group (cheaper than re-committing),
// evaluates the folded polynomial at z barycentrically and checks the
// single pairing equation. A false return means the proof does not open
// these commitments; errors are structural only.
func VerifyBatchOpen(domain *Domain, polys []Polynomial, comms []Commitment, quotientComm bls12381.G1Affine, openKey *OpeningKey, nbTasks int) (bool, error) {
	if err := correctnessChecks(domain, polys); err != nil {
		return false, err
	}
	if len(comms) != len(polys) {
		return false, ErrInvalidNbDigests
	}

	r, z := deriveChallenges(domain, polys, comms)
	powers := utils.ComputePowers(r, uint(len(polys)))

	foldedComm, err := multiexp.MultiExp(powers, comms, nbTasks)
	if err != nil {
		return false, err
	}

	foldedPoly := foldPolynomials(polys, powers, nbTasks)
	outputPoint, err := domain.EvaluateLagrangePolynomial(foldedPoly, z)
	if err != nil {
		return false, err
	}

	proof := OpeningProof{
		QuotientComm: quotientComm,
		InputPoint:   z,
		ClaimedValue: *outputPoint,
	}
	return Verify(foldedComm, &proof, openKey)
}

// deriveChallenges runs the Fiat-Shamir transcript over the public data.
// The absorb order and widths here are fixed by the protocol: tag, domain
// size, polynomial count, every polynomial, every commitment; then r is
// squeezed, and z is squeezed bound to r.
func deriveChallenges(domain *Domain, polys []Polynomial, comms []Commitment) (r, z fr.Element) {
	transcript := fiatshamir.NewTranscript(DomSepProtocol)
	transcript.AppendU64(domain.Cardinality)
	transcript.AppendU64(uint64(len(polys)))
	for i := range polys {
		transcript.AppendPolynomial(polys[i])
	}
	transcript.AppendPoints(comms)

	r = transcript.ChallengeScalar()
	z = transcript.ChallengeScalar()
	return r, z
}

func correctnessChecks(domain *Domain, polys []Polynomial) error {
	if len(polys) == 0 {
		return ErrEmptyInput
	}
	for i := range polys {
		if uint64(len(polys[i])) != domain.Cardinality {
			return ErrInvalidPolynomialSize
		}
	}
	return nil
}

// foldPolynomials returns sum_i powers[i] * polys[i]. The fold is
// chunkable over evaluation indices, so workers split the index range.
func foldPolynomials(polys []Polynomial, powers []fr.Element, nbTasks int) Polynomial {
	result := make(Polynomial, len(polys[0]))
	copy(result, polys[0])

	utils.Parallelize(len(result), func(start, end int) {
		var tmp fr.Element
		for j := start; j < end; j++ {
			for i := 1; i < len(polys); i++ {
				tmp.Mul(&polys[i][j], &powers[i])
				result[j].Add(&result[j], &tmp)
			}
		}
	}, nbTasks)

	return result
}
