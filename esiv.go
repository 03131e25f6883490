// Package esiv computes prime numbers with a wheel-factorized Sieve of
// Eratosthenes.
//
// Candidates are represented only in the 8 residue classes mod 30 coprime to
// 2·3·5, packed 8 per byte, so the working set is about 27% of a naive bit
// sieve. The sieve is strictly single-threaded and deterministic: identical
// arguments always produce bitwise-identical results.
//
// # Core Features
//
//   - Mod-30 wheel sieve: one byte of state per 30 integers
//   - O(1) primality lookups against a finished table
//   - Popcount-based prime counting without materializing the list
//   - Compressed, checksummed table snapshots (Zstd, S2, LZ4) for reuse
//     across processes
//
// # Basic Usage
//
// Listing primes:
//
//	import "github.com/ykonstant1/esiv"
//
//	// Everything the rounded-up sieve range contains (may include primes
//	// up to 29 past the bound)
//	primes := esiv.Primes(1_000_000)
//
//	// Exactly the primes not exceeding the bound
//	primes = esiv.Primes(1_000_000, esiv.WithExact())
//
// Reusing a table:
//
//	t := esiv.NewTable(1_000_000)
//	t.Contains(999_983) // true
//	t.Count(500_000)    // 41538
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the sieve
// package. For table reuse, snapshots and fine-grained control, use the
// sieve and snapshot packages directly.
package esiv

import (
	"github.com/ykonstant1/esiv/internal/options"
	"github.com/ykonstant1/esiv/sieve"
)

type config struct {
	exact bool
}

// Option configures a facade call.
type Option = options.Option[*config]

// WithExact trims the result back to primes not exceeding the requested bound
// instead of the bound rounded up to a multiple of 30.
func WithExact() Option {
	return options.NoError(func(c *config) {
		c.exact = true
	})
}

// Primes returns the ascending list of primes for the given bound.
//
// The sieved range is the bound rounded up to the next multiple of 30. By
// default the whole range is returned, so the result may include primes in
// (n, n+29]; with WithExact the tail is trimmed to primes ≤ n. Bounds below 2
// return an empty result.
//
// Parameters:
//   - n: Upper bound for the primes
//   - opts: Optional configuration (see WithExact)
//
// Returns:
//   - []uint64: Strictly ascending, duplicate-free primes
func Primes(n uint64, opts ...Option) []uint64 {
	cfg := &config{}
	// Facade options are infallible; Apply cannot return an error here.
	_ = options.Apply(cfg, opts...)

	if n < 2 {
		return nil
	}

	bound := sieve.RoundUp(n)
	limit := bound
	if cfg.exact {
		limit = n
	}

	if bound <= sieve.SmallBound {
		return sieve.SmallPrimes(limit)
	}

	return sieve.New(bound).Primes(limit)
}

// Count returns the number of primes in the sieved range for bound n, i.e.
// len(Primes(n)) without materializing the list. Like Primes without
// WithExact, the range is the bound rounded up to a multiple of 30.
func Count(n uint64) uint64 {
	if n < 2 {
		return 0
	}

	bound := sieve.RoundUp(n)
	if bound <= sieve.SmallBound {
		return uint64(len(sieve.SmallPrimes(bound)))
	}

	t := sieve.New(bound)

	return t.Count(t.Bound())
}

// NewTable sieves the range for bound n (rounded up to a multiple of 30) and
// returns the finished table for repeated lookups, counting or snapshotting.
func NewTable(n uint64) *sieve.Table {
	return sieve.New(n)
}
