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
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/blobkzg/internal/kzg"
	"github.com/consensys/blobkzg/logger"
)

// Context holds the trusted-setup output and the evaluation domain.
// It is created once, never mutated afterwards, and safe for concurrent
// use by any number of goroutines. It is always an explicit parameter,
// never a package singleton, so independent configurations can coexist.
type Context struct {
	domain    *kzg.Domain
	commitKey *kzg.CommitKey
	openKey   *kzg.OpeningKey

	// nbTasks bounds worker parallelism; 1 means strictly sequential.
	nbTasks int
}

// Option configures a Context at construction time.
type Option func(*Context) error

// WithParallelism allows operations to fan work out over up to nbTasks
// goroutines. The default is 1: strictly sequential, deterministic
// scheduling, no goroutines spawned.
func WithParallelism(nbTasks int) Option {
	return func(ctx *Context) error {
		if nbTasks < 1 {
			return errors.New("blobkzg: parallelism must be at least 1")
		}
		ctx.nbTasks = nbTasks
		return nil
	}
}

// NewContext4096 builds a Context from a ceremony artifact. The setup must
// carry at least ScalarsPerBlob G1 points and two G2 points; the G1 points
// are converted from monomial to lagrange form and bit-reversal permuted
// together with the domain roots.
func NewContext4096(setup *TrustedSetup, opts ...Option) (*Context, error) {
	if len(setup.G1Monomial) < ScalarsPerBlob {
		return nil, fmt.Errorf("%w: need %d G1 points, got %d", ErrSetup, ScalarsPerBlob, len(setup.G1Monomial))
	}
	if len(setup.G2) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 G2 points, got %d", ErrSetup, len(setup.G2))
	}

	g1Points := make([]bls12381.G1Affine, ScalarsPerBlob)
	for i := 0; i < ScalarsPerBlob; i++ {
		if _, err := g1Points[i].SetBytes(setup.G1Monomial[i]); err != nil {
			return nil, fmt.Errorf("%w: setup g1 point %d: %s", ErrDecoding, i, err)
		}
	}
	var genG2, alphaG2 bls12381.G2Affine
	if _, err := genG2.SetBytes(setup.G2[0]); err != nil {
		return nil, fmt.Errorf("%w: setup g2 point 0: %s", ErrDecoding, err)
	}
	if _, err := alphaG2.SetBytes(setup.G2[1]); err != nil {
		return nil, fmt.Errorf("%w: setup g2 point 1: %s", ErrDecoding, err)
	}

	domain := kzg.NewDomain(ScalarsPerBlob)
	lagrangeG1, err := domain.IfftG1(g1Points)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSetup, err)
	}

	srs := &kzg.SRS{
		CommitKey: kzg.CommitKey{G1: lagrangeG1},
		OpeningKey: kzg.OpeningKey{
			GenG1:   g1Points[0],
			GenG2:   genG2,
			AlphaG2: alphaG2,
		},
	}

	log := logger.WithComponent("setup")
	log.Debug().Int("g1", len(setup.G1Monomial)).Int("g2", len(setup.G2)).Msg("trusted setup loaded")

	return newContext(domain, srs, opts...)
}

// NewContext4096Insecure1337 derives the setup from the fixed mock secret
// 1337; commitments and proofs are reproducible across processes. The
// binding property does not hold against anyone who reads this code, so
// this is for tests and benchmarks only.
func NewContext4096Insecure1337(opts ...Option) (*Context, error) {
	return newContextInsecure(big.NewInt(1337), opts...)
}

// NewContext4096Insecure samples a fresh secret from the process CSPRNG.
// The secret lived in this process's memory, so the setup is still not
// trustworthy for production use.
func NewContext4096Insecure(opts ...Option) (*Context, error) {
	tau, err := rand.Int(rand.Reader, fr.Modulus())
	if err != nil {
		return nil, fmt.Errorf("%w: sampling tau: %s", ErrSetup, err)
	}
	if tau.Sign() == 0 {
		// tau = 0 collapses the SRS to the generator.
		tau.SetInt64(1)
	}
	return newContextInsecure(tau, opts...)
}

func newContextInsecure(tau *big.Int, opts ...Option) (*Context, error) {
	domain := kzg.NewDomain(ScalarsPerBlob)
	srs, err := kzg.NewLagrangeSRSInsecure(domain, tau)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSetup, err)
	}

	log := logger.WithComponent("setup")
	log.Warn().Msg("INSECURE trusted setup derived from a known secret; never rely on these commitments in production")

	return newContext(domain, srs, opts...)
}

func newContext(domain *kzg.Domain, srs *kzg.SRS, opts ...Option) (*Context, error) {
	// Bit-reverse the commit key and the roots together so blob element i
	// keeps pairing with root i under the consensus ordering.
	srs.CommitKey.ReversePoints()
	domain.ReverseRoots()

	ctx := &Context{
		domain:    domain,
		commitKey: &srs.CommitKey,
		openKey:   &srs.OpeningKey,
		nbTasks:   1,
	}
	for _, opt := range opts {
		if err := opt(ctx); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}
