package domain

import "math/bits"

// Domain is the candidate set of a single cell, one bit per digit.
// Bit v-1 set means digit v is still possible.
type Domain uint16

// Full has all nine digits as candidates.
const Full Domain = 0x1ff

// Single returns a domain containing only v. v must be 1..9.
func Single(v uint8) Domain { return 1 << (v - 1) }

// Has reports whether v is still a candidate.
func (d Domain) Has(v uint8) bool { return d&Single(v) != 0 }

// Remove returns d without v.
func (d Domain) Remove(v uint8) Domain { return d &^ Single(v) }

// Size is the number of remaining candidates.
func (d Domain) Size() int { return bits.OnesCount16(uint16(d)) }

// Value returns the sole remaining candidate, if exactly one remains.
func (d Domain) Value() (uint8, bool) {
	if d.Size() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(d))) + 1, true
}

// Values lists the candidates in ascending order.
func (d Domain) Values() []uint8 {
	out := make([]uint8, 0, d.Size())
	for v := uint8(1); v <= 9; v++ {
		if d.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
