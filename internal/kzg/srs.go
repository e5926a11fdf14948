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
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/blobkzg/internal/utils"
)

// Commitment to a polynomial.
type Commitment = bls12381.G1Affine

// CommitKey holds the G1 part of the SRS in lagrange form:
// {L_i(tau) * G} where L_i is the i'th lagrange polynomial over the domain.
// Committing to an evaluation-form polynomial is then a single MSM with no
// change of basis.
type CommitKey struct {
	G1 []bls12381.G1Affine
}

// ReversePoints permutes the key into bit-reversed order. Must be applied
// together with Domain.ReverseRoots, or commitments change meaning.
func (ck *CommitKey) ReversePoints() {
	utils.BitReverse(ck.G1)
}

// OpeningKey holds the minimal G2 part of the SRS needed to verify
// opening proofs.
type OpeningKey struct {
	// GenG1 is the generator of G1 used in the setup.
	GenG1 bls12381.G1Affine
	// GenG2 is the generator of G2 used in the setup.
	GenG2 bls12381.G2Affine
	// AlphaG2 is tau times GenG2.
	AlphaG2 bls12381.G2Affine
}

// SRS is the output of the trusted setup: everything needed to commit,
// open and verify. Immutable once the setup permutations are applied.
type SRS struct {
	CommitKey  CommitKey
	OpeningKey OpeningKey
}

// NewMonomialSRSInsecure derives a monomial-form SRS from a known secret
// tau. Like NewLagrangeSRSInsecure this must never back a production
// Context.
func NewMonomialSRSInsecure(domain *Domain, tau *big.Int) (*SRS, error) {
	return newMonomialSRS(domain.Cardinality, tau)
}

// NewLagrangeSRSInsecure derives a full SRS from a known secret tau and
// converts the G1 part to lagrange form. The secret being an input makes
// the commitment scheme non-binding for whoever knows it; this exists for
// tests and benchmarks only.
func NewLagrangeSRSInsecure(domain *Domain, tau *big.Int) (*SRS, error) {
	srs, err := newMonomialSRS(domain.Cardinality, tau)
	if err != nil {
		return nil, err
	}

	lagrangeG1, err := domain.IfftG1(srs.CommitKey.G1)
	if err != nil {
		return nil, err
	}
	srs.CommitKey.G1 = lagrangeG1

	return srs, nil
}

func newMonomialSRS(size uint64, tau *big.Int) (*SRS, error) {
	if size < 2 {
		return nil, ErrMinSRSSize
	}

	var commitKey CommitKey
	var openKey OpeningKey
	commitKey.G1 = make([]bls12381.G1Affine, size)

	var alpha fr.Element
	alpha.SetBigInt(tau)

	_, _, gen1Aff, gen2Aff := bls12381.Generators()
	commitKey.G1[0] = gen1Aff
	openKey.GenG1 = gen1Aff
	openKey.GenG2 = gen2Aff
	openKey.AlphaG2.ScalarMultiplication(&gen2Aff, tau)

	alphas := make([]fr.Element, size-1)
	alphas[0] = alpha
	for i := 1; i < len(alphas); i++ {
		alphas[i].Mul(&alphas[i-1], &alpha)
	}
	g1s := bls12381.BatchScalarMultiplicationG1(&gen1Aff, alphas)
	copy(commitKey.G1[1:], g1s)

	return &SRS{
		CommitKey:  commitKey,
		OpeningKey: openKey,
	}, nil
}
