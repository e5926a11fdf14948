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

// Package fiatshamir implements the transcript used to derive the
// aggregation and evaluation challenges from public data.
//
// The byte layout of everything absorbed here is consensus critical: the
// prover and the verifier must feed byte-identical transcripts or the
// derived challenges silently diverge. Scalars are absorbed as 32-byte
// big-endian strings, group elements in their 48-byte compressed form and
// integers as 8-byte big-endian strings.
package fiatshamir

import (
	"crypto/sha256"
	"encoding/binary"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Transcript accumulates absorbed bytes and squeezes challenge scalars
// out of them. It holds no state besides the absorbed bytes; two
// transcripts fed the same messages in the same order squeeze the same
// challenges.
type Transcript struct {
	state []byte
}

// NewTranscript returns a transcript seeded with a protocol
// domain-separation tag.
func NewTranscript(protocol string) *Transcript {
	t := &Transcript{}
	t.appendBytes([]byte(protocol))
	return t
}

func (t *Transcript) appendBytes(b []byte) {
	t.state = append(t.state, b...)
}

// AppendU64 absorbs x as an 8-byte big-endian string.
func (t *Transcript) AppendU64(x uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], x)
	t.appendBytes(buf[:])
}

// AppendScalar absorbs the canonical 32-byte big-endian form of s.
func (t *Transcript) AppendScalar(s fr.Element) {
	b := s.Bytes()
	t.appendBytes(b[:])
}

// AppendPolynomial absorbs every evaluation of poly, in order.
func (t *Transcript) AppendPolynomial(poly []fr.Element) {
	for i := range poly {
		t.AppendScalar(poly[i])
	}
}

// AppendPoint absorbs the 48-byte compressed form of p.
func (t *Transcript) AppendPoint(p *bls12381.G1Affine) {
	b := p.Bytes()
	t.appendBytes(b[:])
}

// AppendPoints absorbs every point, in order.
func (t *Transcript) AppendPoints(points []bls12381.G1Affine) {
	for i := range points {
		t.AppendPoint(&points[i])
	}
}

// ChallengeScalar hashes the absorbed bytes and interprets the digest as a
// big-endian integer reduced modulo the fr order. The reduced challenge is
// then absorbed back into the transcript, so a subsequent squeeze is bound
// to all prior data together with this challenge.
func (t *Transcript) ChallengeScalar() fr.Element {
	digest := sha256.Sum256(t.state)

	var challenge fr.Element
	challenge.SetBytes(digest[:])

	t.AppendScalar(challenge)

	return challenge
}
