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

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/blobkzg/internal/kzg"
)

const (
	// ScalarsPerBlob is the fixed number of field elements in a blob.
	ScalarsPerBlob = 4096

	// SerializedScalarSize is the byte width of one big-endian field
	// element.
	SerializedScalarSize = fr.Bytes

	// BytesPerBlob is the serialized blob size: 4096 * 32.
	BytesPerBlob = ScalarsPerBlob * SerializedScalarSize

	// CompressedG1Size is the byte width of a compressed G1 point.
	CompressedG1Size = bls12381.SizeOfG1AffineCompressed

	// CompressedG2Size is the byte width of a compressed G2 point.
	CompressedG2Size = bls12381.SizeOfG2AffineCompressed
)

// Blob is user data interpreted as the evaluations of a polynomial over
// the 4096-point domain. Each 32-byte chunk is a big-endian scalar
// strictly below the field modulus.
type Blob []byte

// KZGCommitment is a compressed G1 point binding to a blob's polynomial.
type KZGCommitment [CompressedG1Size]byte

// KZGProof is a compressed G1 point opening an aggregated polynomial at
// the transcript-derived challenge.
type KZGProof [CompressedG1Size]byte

// SerializedScalar is a 32-byte big-endian canonical field element.
type SerializedScalar [SerializedScalarSize]byte

func deserializeBlob(blob Blob) (kzg.Polynomial, error) {
	if len(blob) != BytesPerBlob {
		return nil, ErrBlobSize
	}

	poly := make(kzg.Polynomial, ScalarsPerBlob)
	for i := 0; i < ScalarsPerBlob; i++ {
		chunk := blob[i*SerializedScalarSize : (i+1)*SerializedScalarSize]
		if err := poly[i].SetBytesCanonical(chunk); err != nil {
			return nil, fmt.Errorf("%w: blob element %d is not a canonical scalar", ErrDecoding, i)
		}
	}
	return poly, nil
}

func deserializeBlobs(blobs []Blob) ([]kzg.Polynomial, error) {
	polys := make([]kzg.Polynomial, len(blobs))
	for i := range blobs {
		poly, err := deserializeBlob(blobs[i])
		if err != nil {
			return nil, fmt.Errorf("blob %d: %w", i, err)
		}
		polys[i] = poly
	}
	return polys, nil
}

func deserializeScalar(b SerializedScalar) (fr.Element, error) {
	var scalar fr.Element
	if err := scalar.SetBytesCanonical(b[:]); err != nil {
		return fr.Element{}, fmt.Errorf("%w: non-canonical scalar", ErrDecoding)
	}
	return scalar, nil
}

func deserializeG1Point(b [CompressedG1Size]byte) (bls12381.G1Affine, error) {
	var point bls12381.G1Affine
	if _, err := point.SetBytes(b[:]); err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("%w: %s", ErrDecoding, err)
	}
	return point, nil
}

func deserializeCommitments(comms []KZGCommitment) ([]kzg.Commitment, error) {
	points := make([]kzg.Commitment, len(comms))
	for i := range comms {
		point, err := deserializeG1Point([CompressedG1Size]byte(comms[i]))
		if err != nil {
			return nil, fmt.Errorf("commitment %d: %w", i, err)
		}
		points[i] = point
	}
	return points, nil
}

func serializeG1Point(p bls12381.G1Affine) [CompressedG1Size]byte {
	return p.Bytes()
}
