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

	"github.com/consensys/blobkzg/internal/multiexp"
)

// OpeningProof attests that a committed polynomial evaluates to
// ClaimedValue at InputPoint.
type OpeningProof struct {
	// QuotientComm is the commitment to (f(X) - f(z)) / (X - z).
	QuotientComm bls12381.G1Affine
	// InputPoint is z, the point the polynomial is opened at.
	InputPoint fr.Element
	// ClaimedValue is f(z).
	ClaimedValue fr.Element
}

// Commit commits to a polynomial in evaluation form with a single MSM
// against the lagrange commit key. The commitment is a deterministic
// function of (polynomial, key).
func Commit(p Polynomial, ck *CommitKey, nbTasks int) (*Commitment, error) {
	if len(p) == 0 || len(p) > len(ck.G1) {
		return nil, ErrInvalidPolynomialSize
	}
	return multiexp.MultiExp(p, ck.G1[:len(p)], nbTasks)
}

// Open computes the opening proof of p at evalPoint.
func Open(domain *Domain, p Polynomial, evalPoint fr.Element, ck *CommitKey, nbTasks int) (OpeningProof, error) {
	if uint64(len(p)) != domain.Cardinality {
		return OpeningProof{}, ErrInvalidPolynomialSize
	}

	outputPoint, err := domain.EvaluateLagrangePolynomial(p, evalPoint)
	if err != nil {
		return OpeningProof{}, err
	}

	quotient, err := domain.computeQuotientPoly(p, evalPoint, *outputPoint)
	if err != nil {
		return OpeningProof{}, err
	}

	quotientComm, err := Commit(quotient, ck, nbTasks)
	if err != nil {
		return OpeningProof{}, err
	}

	return OpeningProof{
		QuotientComm: *quotientComm,
		InputPoint:   evalPoint,
		ClaimedValue: *outputPoint,
	}, nil
}

// Verify checks one pairing equation:
//
//	e(C - [f(z)]G1, G2) * e(pi, [z - tau]G2) == 1
//
// which holds iff pi is a genuine opening of C at z with value f(z).
// A false return means the proof is cryptographically invalid; an error is
// only possible for malformed inputs to the pairing.
func Verify(commitment *Commitment, proof *OpeningProof, openKey *OpeningKey) (bool, error) {
	// [f(z)]G1
	var claimedValueBig big.Int
	proof.ClaimedValue.BigInt(&claimedValueBig)
	var claimedValueG1 bls12381.G1Affine
	claimedValueG1.ScalarMultiplication(&openKey.GenG1, &claimedValueBig)

	// C - [f(z)]G1
	var fMinusY bls12381.G1Affine
	fMinusY.Sub(commitment, &claimedValueG1)

	// [z - tau]G2, the negation of (X - z) evaluated in G2, so the product
	// of the two pairings is one for a valid proof.
	var zBig big.Int
	proof.InputPoint.BigInt(&zBig)
	var zG2 bls12381.G2Affine
	zG2.ScalarMultiplication(&openKey.GenG2, &zBig)
	var zMinusAlphaG2 bls12381.G2Affine
	zMinusAlphaG2.Sub(&zG2, &openKey.AlphaG2)

	return bls12381.PairingCheck(
		[]bls12381.G1Affine{fMinusY, proof.QuotientComm},
		[]bls12381.G2Affine{openKey.GenG2, zMinusAlphaG2},
	)
}

// computeQuotientPoly computes (f(X) - y) / (X - z) in evaluation form.
// The division is exact because X - z divides f(X) - f(z) for every z.
func (d *Domain) computeQuotientPoly(f Polynomial, z, y fr.Element) (Polynomial, error) {
	if uint64(len(f)) != d.Cardinality {
		return nil, ErrInvalidPolynomialSize
	}

	if idx := d.findRootIndex(z); idx != -1 {
		return d.computeQuotientPolyOnDomain(f, idx)
	}
	return d.computeQuotientPolyOutsideDomain(f, z, y), nil
}

func (d *Domain) computeQuotientPolyOutsideDomain(f Polynomial, z, y fr.Element) Polynomial {
	// Compute the denominators w_i - z first and invert them in a batch.
	quotient := make(Polynomial, d.Cardinality)
	for i := range quotient {
		quotient[i].Sub(&d.Roots[i], &z)
	}
	quotient = fr.BatchInvert(quotient)

	var tmp fr.Element
	for i := range quotient {
		tmp.Sub(&f[i], &y)
		quotient[i].Mul(&quotient[i], &tmp)
	}

	return quotient
}

// computeQuotientPolyOnDomain handles z = w_m for some m. The quotient is
// still a polynomial, but the evaluation at w_m needs L'Hopital-style
// special casing:
//
//	q(w_i) = (f_i - f_m) / (w_i - w_m)            i != m
//	q(w_m) = - sum_{i != m} q(w_i) * w_i / w_m
func (d *Domain) computeQuotientPolyOnDomain(f Polynomial, m int) (Polynomial, error) {
	y := f[m]
	z := d.Roots[m]

	denominators := make([]fr.Element, d.Cardinality)
	for i := range denominators {
		denominators[i].Sub(&d.Roots[i], &z)
	}
	// Index m would be a division by zero; park a one there, the slot is
	// overwritten below.
	denominators[m].SetOne()
	invDenominators := fr.BatchInvert(denominators)

	quotient := make(Polynomial, d.Cardinality)
	var sum, tmp fr.Element
	for i := range quotient {
		if i == m {
			continue
		}
		tmp.Sub(&f[i], &y)
		quotient[i].Mul(&tmp, &invDenominators[i])

		tmp.Mul(&quotient[i], &d.Roots[i])
		sum.Add(&sum, &tmp)
	}

	var zInv fr.Element
	zInv.Inverse(&z)
	quotient[m].Neg(&sum)
	quotient[m].Mul(&quotient[m], &zInv)

	return quotient, nil
}
