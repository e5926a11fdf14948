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

// Package multiexp thinly wraps the gnark-crypto multi-scalar
// multiplication so that callers pick the task count in one place.
package multiexp

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// MultiExp computes sum_i scalars[i] * points[i]. nbTasks bounds the
// number of goroutines the MSM may spawn; 1 keeps it on the calling
// goroutine.
func MultiExp(scalars []fr.Element, points []bls12381.G1Affine, nbTasks int) (*bls12381.G1Affine, error) {
	if nbTasks < 1 {
		nbTasks = 1
	}
	var result bls12381.G1Affine
	_, err := result.MultiExp(points, scalars, ecc.MultiExpConfig{NbTasks: nbTasks})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
