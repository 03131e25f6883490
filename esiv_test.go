package esiv

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isPrimeRef(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

func TestPrimes_TinyBounds(t *testing.T) {
	assert.Empty(t, Primes(0))
	assert.Empty(t, Primes(1))
	assert.Empty(t, Primes(0, WithExact()))
	assert.Empty(t, Primes(1, WithExact()))
}

func TestPrimes_SmallPath(t *testing.T) {
	// bound 30 stays on the literal small-prime path
	assert.Equal(t,
		[]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29},
		Primes(30))

	// 32 rounds up to 60: the whole literal list comes back
	assert.Equal(t,
		[]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59},
		Primes(32))

	// exact mode trims the literal list to the requested bound
	assert.Equal(t, []uint64{2, 3, 5, 7}, Primes(10, WithExact()))
	assert.Equal(t, []uint64{2}, Primes(2, WithExact()))
}

func TestPrimes_ExactBoundaries(t *testing.T) {
	// 61 rounds to 90 internally, then trims back
	got := Primes(61, WithExact())
	assert.Equal(t,
		[]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61},
		got)
	assert.Len(t, got, 18)

	got = Primes(100, WithExact())
	assert.Len(t, got, 25)
	assert.Equal(t, uint64(97), got[len(got)-1])
}

func TestPrimes_ExactMatchesReference(t *testing.T) {
	for _, n := range []uint64{2, 3, 59, 60, 61, 89, 90, 91, 997, 10_000} {
		got := Primes(n, WithExact())

		want := make([]uint64, 0, len(got))
		for x := uint64(2); x <= n; x++ {
			if isPrimeRef(x) {
				want = append(want, x)
			}
		}

		require.Equal(t, want, got, "primes up to %d", n)
	}
}

func TestPrimes_RoundedSlack(t *testing.T) {
	// Without WithExact the result may run past n, but never past n+29.
	for _, n := range []uint64{61, 100, 1_234, 9_999} {
		got := Primes(n)
		require.NotEmpty(t, got)

		last := got[len(got)-1]
		assert.LessOrEqual(t, last, n+29, "slack past bound %d", n)

		// every prime ≤ n must be present
		exact := Primes(n, WithExact())
		assert.Equal(t, exact, got[:len(exact)])
	}
}

func TestPrimes_Deterministic(t *testing.T) {
	a := Primes(12_345)
	b := Primes(12_345)
	assert.Equal(t, a, b)
}

func TestPrimes_MonotonicPrefix(t *testing.T) {
	bounds := []uint64{10, 59, 60, 61, 100, 500, 2_500, 10_000}
	prev := Primes(bounds[0], WithExact())

	for _, n := range bounds[1:] {
		cur := Primes(n, WithExact())
		require.GreaterOrEqual(t, len(cur), len(prev))
		assert.Equal(t, prev, cur[:len(prev)], "result for smaller bound must be a prefix")
		prev = cur
	}
}

func TestCount(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 30, 32, 61, 100, 10_000} {
		assert.Equal(t, uint64(len(Primes(n))), Count(n), "count for bound %d", n)
	}
}

func TestNewTable(t *testing.T) {
	table := NewTable(100)

	assert.Equal(t, uint64(120), table.Bound())
	assert.True(t, table.Contains(97))
	assert.False(t, table.Contains(91), "91 = 7*13")
}
