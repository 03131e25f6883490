package sieve

import "github.com/ykonstant1/esiv/wheel"

// allCandidates marks every residue in a cycle as a possible prime.
// noOne additionally drops the bit for the number 1 in cycle 0.
const (
	allCandidates = uint8(0xFF)
	noOne         = uint8(0xFE)
)

// newCandidates builds the initial candidate buffer of k cycle bytes: every
// coprime residue starts as a candidate, except 1 which is not prime.
func newCandidates(k uint64) []byte {
	buf := make([]byte, k)
	for i := range buf {
		buf[i] = allCandidates
	}
	if k > 0 {
		buf[0] = noOne
	}

	return buf
}

// sift runs the sequential sieve pass over the whole table.
//
// Cycles are scanned in increasing order, residues within a cycle in
// increasing order. Any bit still set when the scan reaches it belongs to a
// number with no factor among the primes already processed, so it is prime;
// its coprime multiples are cleared immediately via siftOut. Both loops are
// iterative on purpose: recursing per prime or per multiple would grow the
// stack with the sieve range.
func (t *Table) sift() {
	for k, b := range t.bits {
		base := uint64(k) * cycle
		for i, r := range wheel.Residues {
			if b&(1<<i) == 0 {
				continue
			}
			t.siftOut(base + r)
		}
	}
}

// siftOut clears the bit of every coprime-residue multiple of the prime p.
//
// The cofactor j starts at p, so the first multiple visited is p·p: smaller
// multiples either have a smaller prime factor and were cleared earlier, or
// share a factor with 30 and are not representable. Advancing j by the wheel
// increment keeps every product p·j in a representable residue class.
// The m > bound cutoff is evaluated as j > bound/p so p·j never has to be
// formed for cofactors past the range, which also keeps the walk overflow-free.
func (t *Table) siftOut(p uint64) {
	last := t.bound / p
	for j := p; j <= last; j += wheel.Increment(j % cycle) {
		m := p * j
		t.bits[m/cycle] &= wheel.ClearMask(m % cycle)
	}
}
