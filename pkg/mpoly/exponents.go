// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package mpoly

import "math/bits"

// MinBits is the smallest supported packed field width.
const MinBits = 8

// MaxBits is the largest supported packed field width.  One bit of every field
// is reserved for underflow detection, hence the largest representable
// exponent (and total degree) is 2^63 - 1.
const MaxBits = 64

// layout describes how exponent vectors are packed into machine words for a
// given field width.  Fields are laid out most-significant-first so that two
// packed vectors compare under the monomial ordering by a single big-endian
// word comparison.  For graded orderings the leading field holds the total
// degree; for DegRevLex the remaining fields hold the exponents in reverse
// variable order and carry a complement mask, which inverts their comparison
// without unpacking.
type layout struct {
	nvars    uint
	ordering Ordering
	// Width of each packed field, one of 8, 16, 32 or 64.
	bits uint
	// Number of fields packed per 64-bit word.
	perWord uint
	// Number of fields per vector, including the degree field when graded.
	fields uint
	// Number of 64-bit words per packed vector.
	words uint
	// XOR mask applied to both operands before word comparison.
	cmpmask []uint64
	// Mask selecting the reserved top bit of every field.
	topmask []uint64
}

func newLayout(nvars uint, ordering Ordering, bitwidth uint) layout {
	var l = layout{nvars: nvars, ordering: ordering, bits: bitwidth}
	//
	l.fields = nvars
	if ordering.Graded() {
		l.fields++
	}
	//
	l.perWord = 64 / bitwidth
	l.words = (l.fields + l.perWord - 1) / l.perWord
	l.cmpmask = make([]uint64, l.words)
	l.topmask = make([]uint64, l.words)
	//
	for s := uint(0); s < l.fields; s++ {
		word, shift := l.position(s)
		// Reserved bit of every field
		l.topmask[word] |= uint64(1) << (shift + bitwidth - 1)
		// Complement mask covers exponent fields only
		if ordering == DegRevLex && s > 0 {
			l.cmpmask[word] |= l.fieldMask() << shift
		}
	}
	//
	return l
}

// maxField returns the largest value storable in a single packed field, given
// that the top bit of every field is reserved.
func (l *layout) maxField() uint64 {
	return (uint64(1) << (l.bits - 1)) - 1
}

// fieldMask returns a mask covering all bits of a single (unshifted) field.
func (l *layout) fieldMask() uint64 {
	if l.bits == 64 {
		return ^uint64(0)
	}
	//
	return (uint64(1) << l.bits) - 1
}

// position maps a field slot (0 being most significant) to its word index and
// bit shift within that word.
func (l *layout) position(slot uint) (word uint, shift uint) {
	word = slot / l.perWord
	shift = (l.perWord - 1 - slot%l.perWord) * l.bits
	//
	return word, shift
}

func (l *layout) getField(src []uint64, slot uint) uint64 {
	word, shift := l.position(slot)
	return (src[word] >> shift) & l.fieldMask()
}

func (l *layout) putField(dst []uint64, slot uint, val uint64) {
	word, shift := l.position(slot)
	dst[word] = (dst[word] &^ (l.fieldMask() << shift)) | (val << shift)
}

// slot maps variable v to its field slot under this layout's ordering.
func (l *layout) slot(v uint) uint {
	switch l.ordering {
	case Lex:
		return v
	case DegLex:
		return v + 1
	default:
		// DegRevLex stores exponents in reverse variable order.
		return l.nvars - v
	}
}

// pack writes the packed form of the given exponent vector into dst, which
// must hold l.words entries.  The caller must have established (via fitsAll)
// that every exponent and the total degree fit the field width.
func (l *layout) pack(dst []uint64, exps []uint64) {
	for i := range dst {
		dst[i] = 0
	}
	//
	var deg uint64
	//
	for v := uint(0); v < l.nvars; v++ {
		l.putField(dst, l.slot(v), exps[v])
		deg += exps[v]
	}
	//
	if l.ordering.Graded() {
		l.putField(dst, 0, deg)
	}
}

// unpack recovers the raw exponent vector from its packed form.
func (l *layout) unpack(dst []uint64, src []uint64) {
	for v := uint(0); v < l.nvars; v++ {
		dst[v] = l.getField(src, l.slot(v))
	}
}

// exponent extracts the exponent of a single variable without a full unpack.
func (l *layout) exponent(src []uint64, v uint) uint64 {
	return l.getField(src, l.slot(v))
}

// degree returns the total degree of a packed vector.  Graded layouts read the
// degree field directly; Lex layouts sum the exponents.
func (l *layout) degree(src []uint64) uint64 {
	if l.ordering.Graded() {
		return l.getField(src, 0)
	}
	//
	var deg uint64
	//
	for v := uint(0); v < l.nvars; v++ {
		deg += l.getField(src, l.slot(v))
	}
	//
	return deg
}

// cmp compares two packed vectors under the monomial ordering, returning a
// positive value if a > b, negative if a < b and zero if they are equal.
func (l *layout) cmp(a, b []uint64) int {
	for i := uint(0); i < l.words; i++ {
		x, y := a[i]^l.cmpmask[i], b[i]^l.cmpmask[i]
		//
		if x > y {
			return 1
		} else if x < y {
			return -1
		}
	}
	//
	return 0
}

// equal reports whether two packed vectors are identical.
func (l *layout) equal(a, b []uint64) bool {
	for i := uint(0); i < l.words; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	//
	return true
}

// isZero reports whether a packed vector is the zero (constant) monomial.
func (l *layout) isZero(a []uint64) bool {
	for i := uint(0); i < l.words; i++ {
		if a[i] != 0 {
			return false
		}
	}
	//
	return true
}

// add writes the fieldwise sum a + b into dst.  No field may overflow; the
// caller must have widened both operands to a width predicted from their
// degrees beforehand, after which carries between fields cannot occur.
func (l *layout) add(dst, a, b []uint64) {
	for i := uint(0); i < l.words; i++ {
		dst[i] = a[i] + b[i]
	}
}

// sub writes the fieldwise difference a - b into dst, returning false if any
// field of b exceeds the corresponding field of a.  Underflow in a field wraps
// into its reserved top bit, so a single mask test per word detects it.
func (l *layout) sub(dst, a, b []uint64) bool {
	var ok = true
	//
	for i := uint(0); i < l.words; i++ {
		dst[i] = a[i] - b[i]
		ok = ok && (dst[i]&l.topmask[i]) == 0
	}
	//
	return ok
}

// divides reports whether monomial b divides monomial a, that is whether every
// field of b is at most the corresponding field of a.
func (l *layout) divides(a, b []uint64) bool {
	for i := uint(0); i < l.words; i++ {
		if ((a[i] - b[i]) & l.topmask[i]) != 0 {
			return false
		}
	}
	//
	return true
}

// fits reports whether a single value can be stored in a field of this layout.
func (l *layout) fits(val uint64) bool {
	return val <= l.maxField()
}

// fitsAll reports whether an exponent vector, including its total degree when
// the ordering is graded, fits this layout without overflowing any field.
func (l *layout) fitsAll(exps []uint64) bool {
	var deg uint64
	//
	for _, e := range exps {
		if !l.fits(e) {
			return false
		}
		// Total degree cannot wrap: fields are at most 63 bits wide.
		deg += e
	}
	//
	return !l.ordering.Graded() || l.fits(deg)
}

// bitsFor returns the smallest supported field width able to hold the given
// value alongside its reserved bit.
func bitsFor(val uint64) uint {
	n := uint(bits.Len64(val)) + 1
	//
	switch {
	case n <= 8:
		return 8
	case n <= 16:
		return 16
	case n <= 32:
		return 32
	default:
		return 64
	}
}
