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
)

// FftFr converts a polynomial in coefficient form to its evaluations over
// the domain (natural root ordering).
func (d *Domain) FftFr(values []fr.Element) ([]fr.Element, error) {
	if uint64(len(values)) != d.Cardinality {
		return nil, ErrDomainSize
	}
	return fftFr(values, d.Generator), nil
}

// IfftFr is the inverse of FftFr; IfftFr(FftFr(p)) == p exactly.
func (d *Domain) IfftFr(values []fr.Element) ([]fr.Element, error) {
	if uint64(len(values)) != d.Cardinality {
		return nil, ErrDomainSize
	}

	coeffs := fftFr(values, d.GeneratorInv)
	for i := range coeffs {
		coeffs[i].Mul(&coeffs[i], &d.CardinalityInv)
	}
	return coeffs, nil
}

// IfftG1 interpolates a vector of group elements: given the monomial SRS
// {tau^i G} it returns the lagrange SRS {L_i(tau) G}. Used once at setup.
func (d *Domain) IfftG1(points []bls12381.G1Affine) ([]bls12381.G1Affine, error) {
	if uint64(len(points)) != d.Cardinality {
		return nil, ErrDomainSize
	}

	jacPoints := make([]bls12381.G1Jac, len(points))
	for i := range points {
		jacPoints[i].FromAffine(&points[i])
	}

	result := fftG1(jacPoints, d.GeneratorInv)

	var nInvBig big.Int
	d.CardinalityInv.BigInt(&nInvBig)
	for i := range result {
		result[i].ScalarMultiplication(&result[i], &nInvBig)
	}

	return bls12381.BatchJacobianToAffineG1(result), nil
}

// Radix-2 Cooley-Tukey over the scalar field. The domain size is a power
// of two so the recursion always splits evenly.
func fftFr(values []fr.Element, root fr.Element) []fr.Element {
	n := len(values)
	if n == 1 {
		return []fr.Element{values[0]}
	}

	even, odd := takeEvenOdd(values)

	var rootSq fr.Element
	rootSq.Square(&root)
	fftEven := fftFr(even, rootSq)
	fftOdd := fftFr(odd, rootSq)

	result := make([]fr.Element, n)
	var pow, tmp fr.Element
	pow.SetOne()
	for k := 0; k < n/2; k++ {
		tmp.Mul(&fftOdd[k], &pow)
		result[k].Add(&fftEven[k], &tmp)
		result[k+n/2].Sub(&fftEven[k], &tmp)
		pow.Mul(&pow, &root)
	}

	return result
}

// Same algorithm with the scalar multiplications moved into the group.
// Only runs at setup, so the per-twiddle big.Int conversions do not matter.
func fftG1(points []bls12381.G1Jac, root fr.Element) []bls12381.G1Jac {
	n := len(points)
	if n == 1 {
		return []bls12381.G1Jac{points[0]}
	}

	even, odd := takeEvenOdd(points)

	var rootSq fr.Element
	rootSq.Square(&root)
	fftEven := fftG1(even, rootSq)
	fftOdd := fftG1(odd, rootSq)

	result := make([]bls12381.G1Jac, n)
	var pow fr.Element
	pow.SetOne()
	var powBig big.Int
	for k := 0; k < n/2; k++ {
		tmp := fftOdd[k]
		pow.BigInt(&powBig)
		tmp.ScalarMultiplication(&tmp, &powBig)

		result[k].Set(&fftEven[k])
		result[k].AddAssign(&tmp)
		result[k+n/2].Set(&fftEven[k])
		result[k+n/2].SubAssign(&tmp)

		pow.Mul(&pow, &root)
	}

	return result
}

func takeEvenOdd[T any](values []T) ([]T, []T) {
	even := make([]T, 0, len(values)/2)
	odd := make([]T, 0, len(values)/2)
	for i := range values {
		if i%2 == 0 {
			even = append(even, values[i])
		} else {
			odd = append(odd, values[i])
		}
	}
	return even, odd
}
