// Package sieve implements a wheel-factorized Sieve of Eratosthenes over the
// mod-30 wheel.
//
// The sieve represents candidates only in the 8 residue classes coprime to
// 2·3·5, packed 8 per byte, so the candidate table for a bound n occupies
// n/30 bytes. Multiples of 2, 3 and 5 are implicit composites and never
// stored; the primes 2, 3 and 5 themselves are seeded during extraction.
//
// # Basic Usage
//
//	t := sieve.New(1_000_000)
//	primes := t.Primes(t.Bound())
//	count := t.Count(500_000)
//	isPrime := t.Contains(999_983)
//
// The table is built by a single sequential in-place pass and is read-only
// afterwards; all read-side methods are safe for concurrent use once New
// returns.
package sieve

import (
	"github.com/ykonstant1/esiv/errs"
	"github.com/ykonstant1/esiv/wheel"
)

// cycle is the wheel circumference: one table byte covers 30 integers.
const cycle = 30

// seedPrimes are the wheel's own prime factors. They have no residue bit and
// are prepended during extraction and counting.
var seedPrimes = [3]uint64{2, 3, 5}

// Table is a finished candidate table for the range [0, bound).
//
// Bit i of byte k is set iff 30k + wheel.Residues[i] is prime, with the single
// exception of the number 1, whose bit is cleared during construction. The
// table is exclusively owned while New builds it and immutable afterwards.
type Table struct {
	bound uint64 // multiple of 30
	bits  []byte // len == bound/30
}

// New sieves all primes below n and returns the finished table.
//
// The bound is rounded up to the next multiple of 30, so the table always
// covers at least [0, n]. Use Primes or Count with an explicit limit to clamp
// results back to n.
func New(n uint64) *Table {
	bound := RoundUp(n)
	t := &Table{
		bound: bound,
		bits:  newCandidates(bound / cycle),
	}
	t.sift()

	return t
}

// FromBits reconstructs a Table from a previously extracted bit buffer, as
// stored in a snapshot. The buffer is adopted, not copied.
//
// Returns:
//   - *Table: Reconstructed table sharing the given buffer
//   - error: errs.ErrBoundNotAligned if bound is not a multiple of 30,
//     errs.ErrTableSizeMismatch if the buffer length does not match bound/30
func FromBits(bound uint64, bits []byte) (*Table, error) {
	if bound%cycle != 0 {
		return nil, errs.ErrBoundNotAligned
	}
	if uint64(len(bits)) != bound/cycle {
		return nil, errs.ErrTableSizeMismatch
	}

	return &Table{bound: bound, bits: bits}, nil
}

// RoundUp returns the smallest multiple of 30 that is not less than n.
func RoundUp(n uint64) uint64 {
	if rem := n % cycle; rem != 0 {
		return n + cycle - rem
	}

	return n
}

// Bound returns the sieved bound, always a multiple of 30. The table covers
// every integer below it.
func (t *Table) Bound() uint64 {
	return t.bound
}

// Bits returns the underlying candidate buffer. The caller must treat it as
// read-only; it is the slice the table itself reads from.
func (t *Table) Bits() []byte {
	return t.bits
}

// Contains reports whether x is prime. Values of x at or beyond the sieved
// bound report false regardless of primality.
func (t *Table) Contains(x uint64) bool {
	if x >= t.bound {
		return false
	}
	if x == 2 || x == 3 || x == 5 {
		return true
	}

	idx, ok := wheel.BitIndex(x % cycle)
	if !ok {
		return false
	}

	return t.bits[x/cycle]&(1<<idx) != 0
}
