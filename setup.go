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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/blobkzg/internal/kzg"
)

// TrustedSetup is the output of the setup ceremony in monomial form:
// G1Monomial[i] is the 48-byte compressed encoding of tau^i * G1, and G2
// holds at least the compressed G2 generator followed by tau * G2.
//
// Loading a setup does not and cannot validate the ceremony's honesty;
// only structural well-formedness is checked.
type TrustedSetup struct {
	G1Monomial [][]byte
	G2         [][]byte
}

// trustedSetupJSON is the textual artifact layout: hex strings, with or
// without a 0x prefix.
type trustedSetupJSON struct {
	G1Monomial []string `json:"g1_monomial"`
	G2         []string `json:"g2"`
}

// setupArtifactVersion versions the binary artifact layout. Readers reject
// versions they do not know instead of guessing.
const setupArtifactVersion = 1

type trustedSetupCBOR struct {
	Version    uint64   `cbor:"version"`
	G1Monomial [][]byte `cbor:"g1Monomial"`
	G2         [][]byte `cbor:"g2"`
}

// ParseTrustedSetupJSON parses the textual ceremony artifact.
func ParseTrustedSetupJSON(data []byte) (*TrustedSetup, error) {
	var raw trustedSetupJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSetup, err)
	}

	setup := &TrustedSetup{
		G1Monomial: make([][]byte, len(raw.G1Monomial)),
		G2:         make([][]byte, len(raw.G2)),
	}
	var err error
	for i, s := range raw.G1Monomial {
		if setup.G1Monomial[i], err = hex.DecodeString(strings.TrimPrefix(s, "0x")); err != nil {
			return nil, fmt.Errorf("%w: g1 point %d: %s", ErrSetup, i, err)
		}
	}
	for i, s := range raw.G2 {
		if setup.G2[i], err = hex.DecodeString(strings.TrimPrefix(s, "0x")); err != nil {
			return nil, fmt.Errorf("%w: g2 point %d: %s", ErrSetup, i, err)
		}
	}
	return setup, nil
}

// SerializeJSON writes the setup back out in the textual artifact form.
func (setup *TrustedSetup) SerializeJSON() ([]byte, error) {
	raw := trustedSetupJSON{
		G1Monomial: make([]string, len(setup.G1Monomial)),
		G2:         make([]string, len(setup.G2)),
	}
	for i, b := range setup.G1Monomial {
		raw.G1Monomial[i] = "0x" + hex.EncodeToString(b)
	}
	for i, b := range setup.G2 {
		raw.G2[i] = "0x" + hex.EncodeToString(b)
	}
	return json.Marshal(raw)
}

// ParseTrustedSetupCBOR parses the versioned binary ceremony artifact.
func ParseTrustedSetupCBOR(data []byte) (*TrustedSetup, error) {
	var raw trustedSetupCBOR
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSetup, err)
	}
	if raw.Version != setupArtifactVersion {
		return nil, fmt.Errorf("%w: unknown setup artifact version %d", ErrSetup, raw.Version)
	}
	return &TrustedSetup{G1Monomial: raw.G1Monomial, G2: raw.G2}, nil
}

// SerializeCBOR writes the setup in the versioned binary artifact form,
// using a deterministic encoding so the artifact bytes are reproducible.
func (setup *TrustedSetup) SerializeCBOR() ([]byte, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(trustedSetupCBOR{
		Version:    setupArtifactVersion,
		G1Monomial: setup.G1Monomial,
		G2:         setup.G2,
	})
}

// GenerateInsecureSetup derives a monomial-form setup artifact from a
// known secret tau. The result is only useful for tests and benchmarks:
// anyone holding tau can forge openings against it.
func GenerateInsecureSetup(tau *big.Int) (*TrustedSetup, error) {
	domain := kzg.NewDomain(ScalarsPerBlob)
	srs, err := kzg.NewMonomialSRSInsecure(domain, tau)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSetup, err)
	}

	setup := &TrustedSetup{
		G1Monomial: make([][]byte, len(srs.CommitKey.G1)),
		G2:         make([][]byte, 2),
	}
	for i := range srs.CommitKey.G1 {
		b := srs.CommitKey.G1[i].Bytes()
		setup.G1Monomial[i] = b[:]
	}
	g2 := srs.OpeningKey.GenG2.Bytes()
	alphaG2 := srs.OpeningKey.AlphaG2.Bytes()
	setup.G2[0] = g2[:]
	setup.G2[1] = alphaG2[:]

	return setup, nil
}
