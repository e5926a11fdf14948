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

import "errors"

var (
	// ErrInvalidPolynomialSize is returned when a polynomial does not hold
	// exactly one evaluation per domain point.
	ErrInvalidPolynomialSize = errors.New("kzg: polynomial size must match the domain cardinality")

	// ErrDomainSize is returned when an FFT or IFFT is invoked with an
	// input whose length differs from the domain size. This is a logic
	// error in the caller, not a runtime condition to retry.
	ErrDomainSize = errors.New("kzg: input length does not match the domain cardinality")

	// ErrEmptyInput is returned when an aggregation is requested over zero
	// polynomials.
	ErrEmptyInput = errors.New("kzg: cannot aggregate zero polynomials")

	// ErrInvalidNbDigests is returned when the number of commitments does
	// not match the number of polynomials.
	ErrInvalidNbDigests = errors.New("kzg: number of commitments does not match the number of polynomials")

	// ErrMinSRSSize is returned when an SRS holds fewer than two points.
	ErrMinSRSSize = errors.New("kzg: minimum srs size is 2")
)
