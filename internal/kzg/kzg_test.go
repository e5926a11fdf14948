package kzg

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

// testSetup mirrors the production construction: insecure lagrange SRS,
// then bit-reversal of both the key and the roots.
func testSetup(t *testing.T, size uint64) (*Domain, *SRS) {
	t.Helper()
	domain := NewDomain(size)
	srs, err := NewLagrangeSRSInsecure(domain, big.NewInt(1234))
	require.NoError(t, err)
	srs.CommitKey.ReversePoints()
	domain.ReverseRoots()
	return domain, srs
}

func TestCommitIsDeterministic(t *testing.T) {
	_, srs := testSetup(t, 64)
	poly := randomPoly(t, 64, 10)

	first, err := Commit(poly, &srs.CommitKey, 1)
	require.NoError(t, err)
	second, err := Commit(poly, &srs.CommitKey, 1)
	require.NoError(t, err)

	require.True(t, first.Equal(second))
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestCommitWrongSize(t *testing.T) {
	_, srs := testSetup(t, 64)

	_, err := Commit(Polynomial{}, &srs.CommitKey, 1)
	require.ErrorIs(t, err, ErrInvalidPolynomialSize)

	_, err = Commit(make(Polynomial, 65), &srs.CommitKey, 1)
	require.ErrorIs(t, err, ErrInvalidPolynomialSize)
}

func TestConstantPolynomial(t *testing.T) {
	domain, srs := testSetup(t, 64)

	// A polynomial whose 64 evaluations all equal c is the constant c, so
	// its commitment is c * G1 and any quotient is the zero polynomial.
	var c fr.Element
	c.SetUint64(777)
	poly := make(Polynomial, 64)
	for i := range poly {
		poly[i] = c
	}

	comm, err := Commit(poly, &srs.CommitKey, 1)
	require.NoError(t, err)

	var cBig big.Int
	c.BigInt(&cBig)
	var expected bls12381.G1Affine
	expected.ScalarMultiplication(&srs.OpeningKey.GenG1, &cBig)
	require.True(t, comm.Equal(&expected))

	var z fr.Element
	z.SetUint64(123456789)
	proof, err := Open(domain, poly, z, &srs.CommitKey, 1)
	require.NoError(t, err)
	require.True(t, proof.QuotientComm.IsInfinity())
	require.True(t, proof.ClaimedValue.Equal(&c))

	ok, err := Verify(comm, &proof, &srs.OpeningKey)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestOpenVerifyRoundTrip(t *testing.T) {
	domain, srs := testSetup(t, 64)
	poly := randomPoly(t, 64, 11)

	comm, err := Commit(poly, &srs.CommitKey, 1)
	require.NoError(t, err)

	var z fr.Element
	z.SetUint64(123456)
	proof, err := Open(domain, poly, z, &srs.CommitKey, 1)
	require.NoError(t, err)

	ok, err := Verify(comm, &proof, &srs.OpeningKey)
	require.NoError(t, err)
	require.True(t, ok)

	// Claiming a different value must not verify.
	tampered := proof
	tampered.ClaimedValue.Add(&tampered.ClaimedValue, &z)
	ok, err = Verify(comm, &tampered, &srs.OpeningKey)
	require.NoError(t, err)
	require.False(t, ok)

	// Nor does the proof open a different point.
	tampered = proof
	tampered.InputPoint.Add(&tampered.InputPoint, &z)
	ok, err = Verify(comm, &tampered, &srs.OpeningKey)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOpenAtDomainPoint(t *testing.T) {
	domain, srs := testSetup(t, 64)
	poly := randomPoly(t, 64, 12)

	comm, err := Commit(poly, &srs.CommitKey, 1)
	require.NoError(t, err)

	z := domain.Roots[5]
	proof, err := Open(domain, poly, z, &srs.CommitKey, 1)
	require.NoError(t, err)
	require.True(t, proof.ClaimedValue.Equal(&poly[5]))

	ok, err := Verify(comm, &proof, &srs.OpeningKey)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestOpenWrongSize(t *testing.T) {
	domain, srs := testSetup(t, 64)
	var z fr.Element
	z.SetUint64(9)

	_, err := Open(domain, make(Polynomial, 63), z, &srs.CommitKey, 1)
	require.ErrorIs(t, err, ErrInvalidPolynomialSize)
}

func TestMinSRSSize(t *testing.T) {
	domain := NewDomain(1)
	_, err := NewLagrangeSRSInsecure(domain, big.NewInt(42))
	require.ErrorIs(t, err, ErrMinSRSSize)
}
