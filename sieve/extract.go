package sieve

import (
	"math"
	"math/bits"

	"github.com/ykonstant1/esiv/wheel"
)

// SmallBound is the crossover below which the wheel machinery is not worth
// invoking: bounds rounding to at most 60 are answered from a literal list.
const SmallBound = 60

// smallPrimes are all primes below SmallBound.
var smallPrimes = [17]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59}

// SmallPrimes returns a fresh ascending slice of the primes not exceeding
// limit, drawn from the literal list below SmallBound. It is the fast path
// for tiny bounds where building a table would cost more than the answer.
func SmallPrimes(limit uint64) []uint64 {
	out := make([]uint64, 0, len(smallPrimes))
	for _, p := range smallPrimes {
		if p > limit {
			break
		}
		out = append(out, p)
	}

	return out
}

// primeBound is the Dusart-style upper estimate on the prime count below n,
// (n/ln n)·(1 + 1.2762/ln n), rounded up. It presizes extraction output only:
// the estimate may undershoot for small n, and callers append past it rather
// than trust it as a hard limit.
func primeBound(n uint64) int {
	if n < 2 {
		return 0
	}

	ln := math.Log(float64(n))

	return int(math.Ceil(float64(n) / ln * (1 + 1.2762/ln)))
}

// Primes decodes the table into the ascending list of primes not exceeding
// limit. The limit is clamped to the sieved bound. The seeds 2, 3 and 5 are
// prepended; everything else is read off the candidate bits in cycle order,
// so the result is strictly ascending by construction.
func (t *Table) Primes(limit uint64) []uint64 {
	if limit > t.bound {
		limit = t.bound
	}

	out := make([]uint64, 0, primeBound(limit))
	for _, p := range seedPrimes {
		if p <= limit {
			out = append(out, p)
		}
	}

	for k, b := range t.bits {
		if b == 0 {
			continue
		}
		base := uint64(k) * cycle
		for i, r := range wheel.Residues {
			if b&(1<<i) == 0 {
				continue
			}
			if x := base + r; x <= limit {
				out = append(out, x)
			} else {
				return out
			}
		}
	}

	return out
}

// Count returns the number of primes not exceeding limit without
// materializing them. Full cycles are counted with popcount; the cycle
// straddling the limit is filtered residue by residue.
func (t *Table) Count(limit uint64) uint64 {
	if limit > t.bound {
		limit = t.bound
	}

	var count uint64
	for _, p := range seedPrimes {
		if p <= limit {
			count++
		}
	}

	full := limit / cycle
	for _, b := range t.bits[:full] {
		count += uint64(bits.OnesCount8(b))
	}

	if full < uint64(len(t.bits)) {
		b := t.bits[full]
		base := full * cycle
		for i, r := range wheel.Residues {
			if base+r > limit {
				break
			}
			if b&(1<<i) != 0 {
				count++
			}
		}
	}

	return count
}
