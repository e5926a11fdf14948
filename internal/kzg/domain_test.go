package kzg

import (
	"math/big"
	"math/rand"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/blobkzg/internal/utils"
)

func TestRootsOfUnity(t *testing.T) {
	domain := NewDomain(16)

	require.EqualValues(t, 16, domain.Cardinality)
	require.Len(t, domain.Roots, 16)

	var one fr.Element
	one.SetOne()
	require.True(t, domain.Roots[0].Equal(&one))
	require.True(t, domain.Roots[1].Equal(&domain.Generator))

	// Every root has order dividing the cardinality, and the generator's
	// order is exactly the cardinality (all roots are distinct).
	n := big.NewInt(16)
	seen := make(map[string]bool)
	for i := range domain.Roots {
		var pow fr.Element
		pow.Exp(domain.Roots[i], n)
		require.True(t, pow.Equal(&one), "root %d does not have order dividing 16", i)

		key := domain.Roots[i].String()
		require.False(t, seen[key], "root %d repeats", i)
		seen[key] = true
	}
}

func TestNewDomainPanicsOnNonPowerOfTwo(t *testing.T) {
	require.Panics(t, func() { NewDomain(100) })
}

func TestFftRoundTrip(t *testing.T) {
	domain := NewDomain(64)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)
	properties.Property("ifft(fft(p)) == p", prop.ForAll(
		func(raw []uint64) bool {
			poly := make([]fr.Element, len(raw))
			for i := range raw {
				poly[i].SetUint64(raw[i])
			}

			evals, err := domain.FftFr(poly)
			if err != nil {
				return false
			}
			back, err := domain.IfftFr(evals)
			if err != nil {
				return false
			}
			for i := range poly {
				if !poly[i].Equal(&back[i]) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(64, gen.UInt64()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFftMatchesDirectEvaluation(t *testing.T) {
	domain := NewDomain(8)
	coeffs := randomPoly(t, 8, 1)

	evals, err := domain.FftFr(coeffs)
	require.NoError(t, err)

	for i := range evals {
		expected := evalCoeffPoly(coeffs, domain.Roots[i])
		require.True(t, evals[i].Equal(&expected), "evaluation %d differs", i)
	}
}

func TestFftWrongSize(t *testing.T) {
	domain := NewDomain(8)

	_, err := domain.FftFr(make([]fr.Element, 7))
	require.ErrorIs(t, err, ErrDomainSize)
	_, err = domain.IfftFr(make([]fr.Element, 9))
	require.ErrorIs(t, err, ErrDomainSize)
	_, err = domain.IfftG1(make([]bls12381.G1Affine, 4))
	require.ErrorIs(t, err, ErrDomainSize)
}

func TestBarycentricMatchesCoefficientForm(t *testing.T) {
	domain := NewDomain(64)
	coeffs := randomPoly(t, 64, 2)

	evals, err := domain.FftFr(coeffs)
	require.NoError(t, err)

	var z fr.Element
	z.SetUint64(987654321)

	got, err := domain.EvaluateLagrangePolynomial(evals, z)
	require.NoError(t, err)
	expected := evalCoeffPoly(coeffs, z)
	require.True(t, got.Equal(&expected))
}

func TestBarycentricInvariantUnderBitReversal(t *testing.T) {
	domain := NewDomain(32)
	evals := randomPoly(t, 32, 3)

	var z fr.Element
	z.SetUint64(4242)

	before, err := domain.EvaluateLagrangePolynomial(evals, z)
	require.NoError(t, err)

	permuted := make(Polynomial, len(evals))
	copy(permuted, evals)
	utils.BitReverse(permuted)
	domain.ReverseRoots()

	after, err := domain.EvaluateLagrangePolynomial(permuted, z)
	require.NoError(t, err)
	require.True(t, before.Equal(after))
}

func TestEvaluateInsideDomain(t *testing.T) {
	domain := NewDomain(16)
	evals := randomPoly(t, 16, 4)

	got, err := domain.EvaluateLagrangePolynomial(evals, domain.Roots[11])
	require.NoError(t, err)
	require.True(t, got.Equal(&evals[11]))
}

func TestEvaluateWrongSize(t *testing.T) {
	domain := NewDomain(16)
	var z fr.Element
	z.SetUint64(5)
	_, err := domain.EvaluateLagrangePolynomial(make(Polynomial, 15), z)
	require.ErrorIs(t, err, ErrInvalidPolynomialSize)
}

func TestIfftG1MatchesScalarIfft(t *testing.T) {
	domain := NewDomain(8)
	values := randomPoly(t, 8, 5)

	_, _, g1Gen, _ := bls12381.Generators()
	points := make([]bls12381.G1Affine, len(values))
	var b big.Int
	for i := range values {
		values[i].BigInt(&b)
		points[i].ScalarMultiplication(&g1Gen, &b)
	}

	gotPoints, err := domain.IfftG1(points)
	require.NoError(t, err)
	coeffs, err := domain.IfftFr(values)
	require.NoError(t, err)

	for i := range coeffs {
		var expected bls12381.G1Affine
		coeffs[i].BigInt(&b)
		expected.ScalarMultiplication(&g1Gen, &b)
		require.True(t, expected.Equal(&gotPoints[i]), "point %d differs", i)
	}
}

// evalCoeffPoly evaluates a coefficient-form polynomial with Horner's rule.
func evalCoeffPoly(coeffs []fr.Element, z fr.Element) fr.Element {
	var result fr.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &z)
		result.Add(&result, &coeffs[i])
	}
	return result
}

func randomPoly(t *testing.T, size int, seed int64) Polynomial {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	poly := make(Polynomial, size)
	for i := range poly {
		poly[i].SetUint64(rnd.Uint64())
	}
	return poly
}
