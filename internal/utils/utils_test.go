package utils

import (
	"math/big"
	"sync/atomic"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestComputePowers(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("powers[i] == base^i", prop.ForAll(
		func(base uint64, n uint8) bool {
			var x fr.Element
			x.SetUint64(base)
			powers := ComputePowers(x, uint(n))
			if len(powers) != int(n) {
				return false
			}
			for i := range powers {
				var expected fr.Element
				expected.Exp(x, big.NewInt(int64(i)))
				if !powers[i].Equal(&expected) {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.UInt8(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestComputePowersZero(t *testing.T) {
	var x fr.Element
	x.SetUint64(12345)
	require.Empty(t, ComputePowers(x, 0))
}

func TestBitReverse(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	BitReverse(s)
	require.Equal(t, []int{0, 4, 2, 6, 1, 5, 3, 7}, s)

	// involution
	BitReverse(s)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, s)
}

func TestBitReversePanicsOnNonPowerOfTwo(t *testing.T) {
	require.Panics(t, func() {
		BitReverse(make([]int, 6))
	})
}

func TestParallelizeCoversRange(t *testing.T) {
	for _, nbTasks := range []int{1, 2, 3, 7, 16, 64} {
		counters := make([]int32, 100)
		Parallelize(len(counters), func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&counters[i], 1)
			}
		}, nbTasks)

		for i, c := range counters {
			require.EqualValues(t, 1, c, "index %d visited %d times with %d tasks", i, c, nbTasks)
		}
	}
}
