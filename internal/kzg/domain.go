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

// Package kzg implements the KZG polynomial commitment scheme over
// bls12-381 for polynomials held in evaluation (lagrange) form, including
// the batched single-point opening used for blob proofs.
package kzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"github.com/consensys/blobkzg/internal/utils"
)

// Polynomial is held in evaluation form: element i is the evaluation at
// the i'th root of unity of the domain it was created for.
type Polynomial []fr.Element

// Domain is the multiplicative subgroup of roots of unity over which
// polynomials are evaluated. Its fields are computed once at construction
// and read-only afterwards (modulo an explicit ReverseRoots at setup).
type Domain struct {
	// Cardinality is the size of the domain, a power of two.
	Cardinality uint64
	// CardinalityInv is the inverse of the domain size as a field element.
	CardinalityInv fr.Element
	// Generator is a primitive Cardinality'th root of unity.
	Generator fr.Element
	// GeneratorInv is the inverse of Generator, used for the IFFT.
	GeneratorInv fr.Element
	// Roots holds {Generator^0, ..., Generator^(Cardinality-1)}, possibly
	// bit-reversal permuted.
	Roots []fr.Element
}

// NewDomain returns the domain of the m'th roots of unity. m must be a
// power of two dividing the two-adic part of the field order.
func NewDomain(m uint64) *Domain {
	if !utils.IsPowerOfTwo(m) {
		panic("domain size must be a power of two")
	}

	// gnark-crypto knows the two-adic generator of the scalar field; reuse
	// it rather than pinning the primitive root here.
	frDomain := fft.NewDomain(m)

	d := &Domain{
		Cardinality:    frDomain.Cardinality,
		CardinalityInv: frDomain.CardinalityInv,
		Generator:      frDomain.Generator,
		GeneratorInv:   frDomain.GeneratorInv,
	}

	d.Roots = make([]fr.Element, m)
	d.Roots[0].SetOne()
	for i := uint64(1); i < m; i++ {
		d.Roots[i].Mul(&d.Roots[i-1], &d.Generator)
	}

	return d
}

// ReverseRoots permutes the roots table into bit-reversed order, the
// canonical blob element ordering of the consensus layer.
func (d *Domain) ReverseRoots() {
	utils.BitReverse(d.Roots)
}

// findRootIndex returns the index of point in the roots table, -1 if the
// point is outside of the domain.
func (d *Domain) findRootIndex(point fr.Element) int {
	for i := range d.Roots {
		if d.Roots[i].Equal(&point) {
			return i
		}
	}
	return -1
}

// EvaluateLagrangePolynomial evaluates poly at evalPoint using the
// barycentric formula:
//
//	f(z) = (z^N - 1)/N * sum_i f_i * w_i / (z - w_i)
//
// If evalPoint is one of the domain points the corresponding evaluation is
// returned directly; the formula is undefined there.
func (d *Domain) EvaluateLagrangePolynomial(poly Polynomial, evalPoint fr.Element) (*fr.Element, error) {
	if uint64(len(poly)) != d.Cardinality {
		return nil, ErrInvalidPolynomialSize
	}

	if idx := d.findRootIndex(evalPoint); idx != -1 {
		eval := poly[idx]
		return &eval, nil
	}

	denominators := make([]fr.Element, d.Cardinality)
	for i := range denominators {
		denominators[i].Sub(&evalPoint, &d.Roots[i])
	}
	invDenominators := fr.BatchInvert(denominators)

	var result, tmp fr.Element
	for i := 0; i < len(poly); i++ {
		tmp.Mul(&poly[i], &d.Roots[i])
		tmp.Mul(&tmp, &invDenominators[i])
		result.Add(&result, &tmp)
	}

	// result *= (z^N - 1) / N
	var one fr.Element
	one.SetOne()
	nBig := new(big.Int).SetUint64(d.Cardinality)
	var zPowN fr.Element
	zPowN.Exp(evalPoint, nBig)
	zPowN.Sub(&zPowN, &one)
	result.Mul(&result, &zPowN)
	result.Mul(&result, &d.CardinalityInv)

	return &result, nil
}
