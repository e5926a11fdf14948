package fiatshamir

import (
	"encoding/hex"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProtocol = "FSBlobVerify_V1_"

// Pinned vectors computed independently of this implementation:
// sha256 over the absorbed bytes, digest interpreted big-endian and
// reduced mod the fr order; the second squeeze binds the first.
func TestChallengeVectorTagOnly(t *testing.T) {
	transcript := NewTranscript(testProtocol)

	r := transcript.ChallengeScalar()
	z := transcript.ChallengeScalar()

	assert.Equal(t, "5b12067bb0671da288aa0c3daf78eeb2539adf442c278a24502a65d929758fc1", scalarHex(r))
	assert.Equal(t, "18719d4de0083080025b17061866de2be977ba8abc295790d2be468d2cfa208c", scalarHex(z))
}

func TestChallengeVectorPolyAndPoint(t *testing.T) {
	_, _, g1Gen, _ := bls12381.Generators()

	// The vector assumes the canonical compressed G1 generator encoding.
	genBytes := g1Gen.Bytes()
	require.Equal(t,
		"97f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb",
		hex.EncodeToString(genBytes[:]),
	)

	poly := make([]fr.Element, 4)
	for i := range poly {
		poly[i].SetUint64(uint64(i + 1))
	}

	transcript := NewTranscript(testProtocol)
	transcript.AppendU64(4)
	transcript.AppendU64(1)
	transcript.AppendPolynomial(poly)
	transcript.AppendPoint(&g1Gen)

	r := transcript.ChallengeScalar()
	z := transcript.ChallengeScalar()

	assert.Equal(t, "12358c76ae1ed91b6fd920416a070c8a200b6efee73998776cc4ec0315d44fb1", scalarHex(r))
	assert.Equal(t, "1bb5d0f6de7cc745be99df86313b4885fa0e1cfe1b909e8992b8639dfb7621e2", scalarHex(z))
}

func TestProverVerifierConsistency(t *testing.T) {
	_, _, g1Gen, _ := bls12381.Generators()
	poly := make([]fr.Element, 8)
	for i := range poly {
		poly[i].SetUint64(uint64(i) * 7)
	}

	prover := NewTranscript(testProtocol)
	verifier := NewTranscript(testProtocol)

	prover.AppendU64(8)
	prover.AppendPolynomial(poly)
	prover.AppendPoint(&g1Gen)

	verifier.AppendU64(8)
	verifier.AppendPolynomial(poly)
	verifier.AppendPoint(&g1Gen)

	pr := prover.ChallengeScalar()
	vr := verifier.ChallengeScalar()
	require.True(t, pr.Equal(&vr))

	// Diverge and check the transcripts diverge too.
	prover.AppendU64(0)
	verifier.AppendU64(1)
	pz := prover.ChallengeScalar()
	vz := verifier.ChallengeScalar()
	require.False(t, pz.Equal(&vz))
}

func TestAbsorbOrderMatters(t *testing.T) {
	a := NewTranscript(testProtocol)
	b := NewTranscript(testProtocol)

	var x, y fr.Element
	x.SetUint64(1)
	y.SetUint64(2)

	a.AppendScalar(x)
	a.AppendScalar(y)
	b.AppendScalar(y)
	b.AppendScalar(x)

	ca := a.ChallengeScalar()
	cb := b.ChallengeScalar()
	require.False(t, ca.Equal(&cb))
}

func TestSqueezesAreChained(t *testing.T) {
	transcript := NewTranscript(testProtocol)
	r := transcript.ChallengeScalar()
	z := transcript.ChallengeScalar()
	require.False(t, r.Equal(&z))
}

func scalarHex(e fr.Element) string {
	b := e.Bytes()
	return hex.EncodeToString(b[:])
}
