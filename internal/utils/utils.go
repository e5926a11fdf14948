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

// Package utils provides small helpers shared by the kzg internals.
package utils

import (
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ComputePowers returns [1, x, x^2, ..., x^(n-1)].
func ComputePowers(x fr.Element, n uint) []fr.Element {
	if n == 0 {
		return []fr.Element{}
	}
	powers := make([]fr.Element, n)
	powers[0].SetOne()
	for i := uint(1); i < n; i++ {
		powers[i].Mul(&powers[i-1], &x)
	}
	return powers
}

// BitReverse permutes s in place so that s[i] and s[reverse(i)] are swapped,
// where reverse is the bit-reversal of i over log2(len(s)) bits.
// len(s) must be a power of two. The permutation is an involution.
func BitReverse[T any](s []T) {
	n := uint64(len(s))
	if !IsPowerOfTwo(n) {
		panic("size of slice must be a power of two")
	}

	shift := 64 - uint64(bits.TrailingZeros64(n))
	for i := uint64(0); i < n; i++ {
		iRev := bits.Reverse64(i) >> shift
		if iRev > i {
			s[i], s[iRev] = s[iRev], s[i]
		}
	}
}

// IsPowerOfTwo returns true if x is a power of two, zero is not.
func IsPowerOfTwo(x uint64) bool {
	return x != 0 && (x&(x-1)) == 0
}
