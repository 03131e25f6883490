package sieve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykonstant1/esiv/errs"
)

// isPrimeRef is the independent reference: ProbablyPrime is deterministic and
// exact for inputs below 2^64.
func isPrimeRef(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 30},
		{29, 30},
		{30, 30},
		{31, 60},
		{32, 60},
		{60, 60},
		{61, 90},
		{100, 120},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundUp(tt.n), "RoundUp(%d)", tt.n)
	}
}

func TestNewCandidates_Pattern(t *testing.T) {
	buf := newCandidates(4)

	require.Len(t, buf, 4)
	assert.Equal(t, noOne, buf[0], "cycle 0 must exclude the number 1")
	for i := 1; i < len(buf); i++ {
		assert.Equal(t, allCandidates, buf[i])
	}

	assert.Empty(t, newCandidates(0))
}

func TestNew_MatchesReference(t *testing.T) {
	const bound = 10_000
	table := New(bound)

	for x := uint64(0); x < table.Bound(); x++ {
		require.Equal(t, isPrimeRef(x), table.Contains(x), "primality of %d", x)
	}
}

func TestNew_RoundsBoundUp(t *testing.T) {
	table := New(100)

	assert.Equal(t, uint64(120), table.Bound())
	assert.Len(t, table.Bits(), 4)
	assert.True(t, table.Contains(113), "113 is inside the rounded range")
}

func TestNew_ZeroBound(t *testing.T) {
	table := New(0)

	assert.Equal(t, uint64(0), table.Bound())
	assert.Empty(t, table.Bits())
	assert.Empty(t, table.Primes(0))
	assert.Equal(t, uint64(0), table.Count(0))
	assert.False(t, table.Contains(2))
}

func TestPrimes_AscendingAndComplete(t *testing.T) {
	table := New(1_000)
	primes := table.Primes(table.Bound())

	for i := 1; i < len(primes); i++ {
		require.Less(t, primes[i-1], primes[i], "result must be strictly ascending")
	}

	want := uint64(0)
	for x := uint64(0); x < table.Bound(); x++ {
		if isPrimeRef(x) {
			want++
		}
	}
	assert.Equal(t, want, uint64(len(primes)))
}

func TestPrimes_LimitTrimsTail(t *testing.T) {
	table := New(120)

	primes := table.Primes(100)
	require.NotEmpty(t, primes)
	assert.Equal(t, uint64(97), primes[len(primes)-1])
	assert.Len(t, primes, 25)

	assert.Equal(t, []uint64{2, 3, 5, 7}, table.Primes(10))
	assert.Equal(t, []uint64{2, 3}, table.Primes(4))
	assert.Empty(t, table.Primes(1))
}

func TestCount_AgreesWithPrimes(t *testing.T) {
	table := New(5_000)

	for _, limit := range []uint64{0, 1, 2, 5, 29, 30, 31, 97, 100, 1_000, 4_999, table.Bound()} {
		assert.Equal(t, uint64(len(table.Primes(limit))), table.Count(limit), "limit %d", limit)
	}
}

func TestContains_OffWheelAndEdges(t *testing.T) {
	table := New(300)

	assert.False(t, table.Contains(0))
	assert.False(t, table.Contains(1), "1 is not prime")
	assert.True(t, table.Contains(2))
	assert.True(t, table.Contains(3))
	assert.True(t, table.Contains(5))
	assert.False(t, table.Contains(4))
	assert.False(t, table.Contains(49), "49 = 7*7 shares no factor with 30")
	assert.False(t, table.Contains(table.Bound()), "bound itself is out of range")
	assert.False(t, table.Contains(10_000), "beyond the sieved range")
}

func TestNew_Deterministic(t *testing.T) {
	a := New(9_999)
	b := New(9_999)

	assert.Equal(t, a.Bits(), b.Bits(), "identical bounds must produce identical tables")
	assert.Equal(t, a.Primes(a.Bound()), b.Primes(b.Bound()))
}

func TestFromBits(t *testing.T) {
	orig := New(600)

	restored, err := FromBits(orig.Bound(), orig.Bits())
	require.NoError(t, err)
	assert.Equal(t, orig.Primes(orig.Bound()), restored.Primes(restored.Bound()))

	_, err = FromBits(45, make([]byte, 2))
	assert.ErrorIs(t, err, errs.ErrBoundNotAligned)

	_, err = FromBits(60, make([]byte, 3))
	assert.ErrorIs(t, err, errs.ErrTableSizeMismatch)
}

func TestSmallPrimes(t *testing.T) {
	assert.Empty(t, SmallPrimes(0))
	assert.Empty(t, SmallPrimes(1))
	assert.Equal(t, []uint64{2}, SmallPrimes(2))
	assert.Len(t, SmallPrimes(30), 10)
	assert.Len(t, SmallPrimes(59), 17)
	assert.Len(t, SmallPrimes(SmallBound), 17)
}

func TestPrimeBound_CoversActualCounts(t *testing.T) {
	// The estimate is advisory: it may undershoot for tiny n, but from a few
	// hundred up it must dominate the true count so extraction rarely grows.
	counts := map[uint64]int{
		1_000:   168,
		10_000:  1_229,
		100_000: 9_592,
	}

	for n, count := range counts {
		assert.GreaterOrEqual(t, primeBound(n), count, "primeBound(%d)", n)
	}

	assert.Equal(t, 0, primeBound(0))
	assert.Equal(t, 0, primeBound(1))
}

func BenchmarkNew(b *testing.B) {
	for _, bound := range []uint64{100_000, 1_000_000, 10_000_000} {
		b.Run(formatBound(bound), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = New(bound)
			}
		})
	}
}

func BenchmarkPrimes(b *testing.B) {
	table := New(1_000_000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = table.Primes(table.Bound())
	}
}

func BenchmarkCount(b *testing.B) {
	table := New(1_000_000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = table.Count(table.Bound())
	}
}

func formatBound(bound uint64) string {
	switch bound {
	case 100_000:
		return "100K"
	case 1_000_000:
		return "1M"
	case 10_000_000:
		return "10M"
	default:
		return "n"
	}
}
