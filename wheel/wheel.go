// Package wheel provides the mod-30 factorization wheel used by the sieve.
//
// A wheel cycle is a block of 30 consecutive integers. Only the 8 residues in
// [1,30) that are coprime to 2·3·5 can be prime (beyond 2, 3 and 5 themselves),
// so one byte per cycle is enough to track every candidate: bit i of a cycle's
// byte corresponds to Residues[i]. Everything divisible by 2, 3 or 5 is an
// implicit composite and is never stored.
//
// The package exposes two constant-time lookups: Increment walks from one
// coprime residue to the next, and ClearMask produces the byte mask that
// knocks a single residue's bit out of a cycle.
package wheel

// Residues lists the 8 residues mod 30 coprime to 30, in ascending order.
// Bit i of a cycle byte tracks the candidate 30k + Residues[i].
var Residues = [8]uint64{1, 7, 11, 13, 17, 19, 23, 29}

// increments[r] is the distance from residue r to the next coprime residue.
// Entries for non-coprime indices default to 1 so a caller stepping from an
// off-wheel position always makes progress toward the next coprime residue.
var increments = [30]uint64{
	1:  6,
	7:  4,
	11: 2,
	13: 4,
	17: 2,
	19: 4,
	23: 6,
	29: 2,
}

// clearMasks[r] has all bits set except the one tracking residue r.
// Entries for non-coprime indices are 0; valid callers never index them.
var clearMasks = [30]uint8{
	1:  0b1111_1110,
	7:  0b1111_1101,
	11: 0b1111_1011,
	13: 0b1111_0111,
	17: 0b1110_1111,
	19: 0b1101_1111,
	23: 0b1011_1111,
	29: 0b0111_1111,
}

// Increment returns the gap from residue r to the next residue coprime to 30,
// walking upward within a cycle. Inputs outside the 8 coprime residues return 1.
//
// The wrap from 29 back to 1 is implicit: callers derive the cycle from the
// absolute position, so 29's increment of 2 lands on 31 = 30·1 + 1.
func Increment(r uint64) uint64 {
	inc := increments[r%30]
	if inc == 0 {
		return 1
	}

	return inc
}

// ClearMask returns a byte mask with exactly the bit for residue r cleared and
// all other bits set. Inputs outside the 8 coprime residues return 0, which
// would wipe a whole cycle; valid sift positions never produce such an input.
func ClearMask(r uint64) uint8 {
	return clearMasks[r%30]
}

// Coprime reports whether r's residue mod 30 is on the wheel, i.e. whether a
// number with that residue can be represented in a cycle byte.
func Coprime(r uint64) bool {
	return clearMasks[r%30] != 0
}

// BitIndex returns the bit position (0..7) tracking residue r within a cycle
// byte, and whether r is on the wheel at all.
func BitIndex(r uint64) (uint, bool) {
	mask := clearMasks[r%30]
	if mask == 0 {
		return 0, false
	}

	idx := uint(0)
	for mask&1 != 0 {
		mask >>= 1
		idx++
	}

	return idx, true
}
