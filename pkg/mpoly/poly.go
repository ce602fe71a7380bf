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

import (
	"math/big"
	"sort"
)

// Poly is a sparse multivariate polynomial with arbitrary-precision integer
// coefficients, stored as parallel arrays of coefficients and packed exponent
// vectors.  A canonical Poly keeps its terms strictly descending under the
// Context's monomial ordering, with like terms combined and zero coefficients
// dropped; the zero polynomial is the empty term sequence.  Every public
// operation both requires and preserves canonical form, except where
// explicitly documented otherwise (term-level setters and Resize, which are
// building blocks for callers assembling a polynomial by hand).
//
// Polynomials are safe for concurrent reads; mutation requires exclusive
// access.
type Poly struct {
	coeffs []big.Int
	// Packed exponent vectors, stride words per term.
	exps []uint64
	// Width of each packed exponent field, large enough for every stored
	// exponent and, under graded orderings, every total degree.
	bits uint
}

// NewPoly constructs the zero polynomial under the given context.
func NewPoly(ctx *Context) *Poly {
	return &Poly{bits: MinBits}
}

// NewPolyWithCapacity constructs the zero polynomial with storage pre-reserved
// for the given number of terms.
func NewPolyWithCapacity(ctx *Context, terms uint) *Poly {
	return NewPolyWithCapacityBits(ctx, terms, MinBits)
}

// NewPolyWithCapacityBits constructs the zero polynomial with storage
// pre-reserved for the given number of terms at a given exponent field width.
func NewPolyWithCapacityBits(ctx *Context, terms uint, bitwidth uint) *Poly {
	var (
		l = ctx.layoutFor(bitwidth)
		p = Poly{bits: bitwidth}
	)
	//
	p.coeffs = make([]big.Int, 0, terms)
	p.exps = make([]uint64, 0, terms*l.words)
	//
	return &p
}

// Len returns the number of terms of this polynomial.
func (p *Poly) Len() uint {
	return uint(len(p.coeffs))
}

// IsZero reports whether this is the zero polynomial.
func (p *Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// Bits returns the current packed exponent field width.
func (p *Poly) Bits() uint {
	return p.bits
}

// exp returns the packed exponent vector of the ith term.
func (p *Poly) exp(i uint, l *layout) []uint64 {
	return p.exps[i*l.words : (i+1)*l.words]
}

// FitLength ensures storage for at least n terms without changing the length
// or contents of this polynomial.
func (p *Poly) FitLength(n uint, ctx *Context) {
	l := ctx.layoutFor(p.bits)
	//
	if uint(cap(p.coeffs)) < n {
		coeffs := make([]big.Int, len(p.coeffs), n)
		copy(coeffs, p.coeffs)
		p.coeffs = coeffs
	}
	//
	if uint(cap(p.exps)) < n*l.words {
		exps := make([]uint64, len(p.exps), n*l.words)
		copy(exps, p.exps)
		p.exps = exps
	}
}

// FitBits ensures the packed field width is at least the given number of bits,
// repacking every stored term if the width must grow.  Widths are rounded up
// to the next supported size; shrinking never occurs.
func (p *Poly) FitBits(bitwidth uint, ctx *Context) {
	if bitwidth > MaxBits {
		panic("exponent field width beyond packed representation")
	}
	// Round up to a supported width
	switch {
	case bitwidth <= 8:
		bitwidth = 8
	case bitwidth <= 16:
		bitwidth = 16
	case bitwidth <= 32:
		bitwidth = 32
	default:
		bitwidth = 64
	}
	//
	if bitwidth <= p.bits {
		return
	}
	//
	var (
		from    = ctx.layoutFor(p.bits)
		to      = ctx.layoutFor(bitwidth)
		scratch = make([]uint64, ctx.nvars)
		exps    = make([]uint64, p.Len()*to.words)
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		from.unpack(scratch, p.exp(i, from))
		to.pack(exps[i*to.words:(i+1)*to.words], scratch)
	}
	//
	p.exps = exps
	p.bits = bitwidth
}

// SetZero sets this polynomial to zero.
func (p *Poly) SetZero() *Poly {
	p.coeffs = p.coeffs[:0]
	p.exps = p.exps[:0]
	//
	return p
}

// SetInt sets this polynomial to the given integer constant.
func (p *Poly) SetInt(val *big.Int, ctx *Context) *Poly {
	p.SetZero()
	//
	if val.Sign() != 0 {
		l := ctx.layoutFor(p.bits)
		p.coeffs = append(p.coeffs, big.Int{})
		p.coeffs[0].Set(val)
		p.exps = append(p.exps, make([]uint64, l.words)...)
	}
	//
	return p
}

// SetInt64 sets this polynomial to the given machine integer constant.
func (p *Poly) SetInt64(val int64, ctx *Context) *Poly {
	return p.SetInt(big.NewInt(val), ctx)
}

// SetOne sets this polynomial to the constant one.
func (p *Poly) SetOne(ctx *Context) *Poly {
	return p.SetInt64(1, ctx)
}

// IsOne reports whether this polynomial is the constant one.
func (p *Poly) IsOne(ctx *Context) bool {
	l := ctx.layoutFor(p.bits)
	//
	return p.Len() == 1 && l.isZero(p.exp(0, l)) && p.coeffs[0].Cmp(bigOne) == 0
}

// Gen sets this polynomial to the generator of the given variable, that is the
// single term with coefficient one and exponent one in that variable.
func (p *Poly) Gen(v uint, ctx *Context) error {
	if v >= ctx.nvars {
		return ErrBadVariable
	}
	//
	var (
		l    = ctx.layoutFor(p.bits)
		exps = make([]uint64, ctx.nvars)
	)
	//
	exps[v] = 1
	p.SetZero()
	p.coeffs = append(p.coeffs, big.Int{})
	p.coeffs[0].SetInt64(1)
	p.exps = append(p.exps, make([]uint64, l.words)...)
	l.pack(p.exps, exps)
	//
	return nil
}

// IsGen reports whether this polynomial is exactly the generator of the given
// variable.
func (p *Poly) IsGen(v uint, ctx *Context) bool {
	if v >= ctx.nvars || p.Len() != 1 || p.coeffs[0].Cmp(bigOne) != 0 {
		return false
	}
	//
	l := ctx.layoutFor(p.bits)
	//
	if l.degree(p.exp(0, l)) != 1 {
		return false
	}
	//
	return l.exponent(p.exp(0, l), v) == 1
}

// Set assigns a deep copy of another polynomial to this one.
func (p *Poly) Set(other *Poly, ctx *Context) *Poly {
	if p == other {
		return p
	}
	//
	p.bits = other.bits
	p.coeffs = setLenBig(p.coeffs[:0], other.Len())
	//
	for i := range other.coeffs {
		p.coeffs[i].Set(&other.coeffs[i])
	}
	//
	p.exps = append(p.exps[:0], other.exps...)
	//
	return p
}

// Clone returns a deep copy of this polynomial.
func (p *Poly) Clone(ctx *Context) *Poly {
	return NewPoly(ctx).Set(p, ctx)
}

// Swap exchanges the contents of two polynomials of the same context in
// constant time.
func (p *Poly) Swap(other *Poly) {
	p.coeffs, other.coeffs = other.coeffs, p.coeffs
	p.exps, other.exps = other.exps, p.exps
	p.bits, other.bits = other.bits, p.bits
}

// Equal reports structural equality of two canonical polynomials.  Equality
// does not require matching field widths; terms are compared through their raw
// exponent vectors.
func (p *Poly) Equal(other *Poly, ctx *Context) bool {
	if p.Len() != other.Len() {
		return false
	}
	//
	if p.bits == other.bits {
		l := ctx.layoutFor(p.bits)
		//
		for i := uint(0); i < p.Len(); i++ {
			if !l.equal(p.exp(i, l), other.exp(i, l)) {
				return false
			} else if p.coeffs[i].Cmp(&other.coeffs[i]) != 0 {
				return false
			}
		}
		//
		return true
	}
	// Differing widths, compare unpacked
	var (
		lp = ctx.layoutFor(p.bits)
		lo = ctx.layoutFor(other.bits)
		ep = make([]uint64, ctx.nvars)
		eo = make([]uint64, ctx.nvars)
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		lp.unpack(ep, p.exp(i, lp))
		lo.unpack(eo, other.exp(i, lo))
		//
		for v := range ep {
			if ep[v] != eo[v] {
				return false
			}
		}
		//
		if p.coeffs[i].Cmp(&other.coeffs[i]) != 0 {
			return false
		}
	}
	//
	return true
}

// Resize truncates or zero-extends the term list to the given length.  New
// terms have zero coefficients and zero exponent vectors; the result is not
// canonical until the caller rewrites them.
func (p *Poly) Resize(n uint, ctx *Context) {
	l := ctx.layoutFor(p.bits)
	//
	if n <= p.Len() {
		p.coeffs = p.coeffs[:n]
		p.exps = p.exps[:n*l.words]
		//
		return
	}
	//
	for i := p.Len(); i < n; i++ {
		p.coeffs = append(p.coeffs, big.Int{})
		p.exps = append(p.exps, make([]uint64, l.words)...)
	}
}

// Coeff returns a copy of the coefficient of the ith term.
func (p *Poly) Coeff(i uint) *big.Int {
	return new(big.Int).Set(&p.coeffs[i])
}

// SetCoeff overwrites the coefficient of the ith term.  Writing zero leaves
// the polynomial non-canonical; the caller is responsible for re-normalising.
func (p *Poly) SetCoeff(i uint, val *big.Int) {
	p.coeffs[i].Set(val)
}

// CoeffFitsInt64 reports whether the coefficient of the ith term is
// representable as an int64.
func (p *Poly) CoeffFitsInt64(i uint) bool {
	return p.coeffs[i].IsInt64()
}

// CoeffInt64 returns the coefficient of the ith term as an int64.  The caller
// must establish CoeffFitsInt64 first.
func (p *Poly) CoeffInt64(i uint) int64 {
	return p.coeffs[i].Int64()
}

// Exponents returns the raw exponent vector of the ith term.
func (p *Poly) Exponents(i uint, ctx *Context) []uint64 {
	var (
		l    = ctx.layoutFor(p.bits)
		exps = make([]uint64, ctx.nvars)
	)
	//
	l.unpack(exps, p.exp(i, l))
	//
	return exps
}

// ExponentsBig returns the exponent vector of the ith term as
// arbitrary-precision integers.
func (p *Poly) ExponentsBig(i uint, ctx *Context) []*big.Int {
	var (
		raw  = p.Exponents(i, ctx)
		exps = make([]*big.Int, len(raw))
	)
	//
	for v, e := range raw {
		exps[v] = new(big.Int).SetUint64(e)
	}
	//
	return exps
}

// Exponent returns the exponent of one variable in the ith term.
func (p *Poly) Exponent(i uint, v uint, ctx *Context) uint64 {
	l := ctx.layoutFor(p.bits)
	return l.exponent(p.exp(i, l), v)
}

// SetExponents overwrites the exponent vector of the ith term, widening the
// packed representation if required.  As with SetCoeff, the polynomial may be
// left non-canonical.
func (p *Poly) SetExponents(i uint, exps []uint64, ctx *Context) error {
	if err := p.fitExponents(exps, ctx); err != nil {
		return err
	}
	//
	l := ctx.layoutFor(p.bits)
	l.pack(p.exp(i, l), exps)
	//
	return nil
}

// SetExponentsBig overwrites the exponent vector of the ith term from
// arbitrary-precision values, rejecting any exponent beyond the packed bound.
func (p *Poly) SetExponentsBig(i uint, exps []*big.Int, ctx *Context) error {
	raw := make([]uint64, len(exps))
	//
	for v, e := range exps {
		if e.Sign() < 0 {
			return ErrNegativeExponent
		} else if !e.IsUint64() || e.Uint64() > maxExponent {
			return ErrOverflow
		}
		//
		raw[v] = e.Uint64()
	}
	//
	return p.SetExponents(i, raw, ctx)
}

// Term returns the ith term of this polynomial as a standalone one-term
// polynomial.
func (p *Poly) Term(i uint, ctx *Context) *Poly {
	var (
		l = ctx.layoutFor(p.bits)
		t = NewPolyWithCapacityBits(ctx, 1, p.bits)
	)
	//
	t.coeffs = append(t.coeffs, big.Int{})
	t.coeffs[0].Set(&p.coeffs[i])
	t.exps = append(t.exps, p.exp(i, l)...)
	//
	return t
}

// LeadingCoeff returns a copy of the leading coefficient of a nonzero
// polynomial.
func (p *Poly) LeadingCoeff() *big.Int {
	return p.Coeff(0)
}

// pushTerm appends a term without maintaining sort order.  The packed vector
// must already match this polynomial's field width.
func (p *Poly) pushTerm(coeff *big.Int, packed []uint64) {
	p.coeffs = append(p.coeffs, big.Int{})
	p.coeffs[len(p.coeffs)-1].Set(coeff)
	p.exps = append(p.exps, packed...)
}

// pushTermInt64 is pushTerm for machine-integer coefficients.
func (p *Poly) pushTermInt64(coeff int64, packed []uint64) {
	p.coeffs = append(p.coeffs, big.Int{})
	p.coeffs[len(p.coeffs)-1].SetInt64(coeff)
	p.exps = append(p.exps, packed...)
}

// sortTerms stable-sorts the term list into descending order under the
// context's ordering.  Exponent vectors and coefficients move together.
func (p *Poly) sortTerms(ctx *Context) {
	var (
		l     = ctx.layoutFor(p.bits)
		n     = p.Len()
		index = make([]uint, n)
	)
	//
	for i := range index {
		index[i] = uint(i)
	}
	//
	sort.SliceStable(index, func(i, j int) bool {
		return l.cmp(p.exp(index[i], l), p.exp(index[j], l)) > 0
	})
	// Apply permutation
	var (
		coeffs = make([]big.Int, n)
		exps   = make([]uint64, n*l.words)
	)
	//
	for i, j := range index {
		coeffs[i] = p.coeffs[j]
		copy(exps[uint(i)*l.words:], p.exp(j, l))
	}
	//
	p.coeffs = coeffs
	p.exps = exps
}

// combine merges adjacent equal-exponent terms of a sorted term list, dropping
// any whose coefficient sums to zero.
func (p *Poly) combine(ctx *Context) {
	var (
		l = ctx.layoutFor(p.bits)
		k = uint(0)
	)
	//
	for i := uint(0); i < p.Len(); {
		j := i + 1
		// Accumulate like terms
		for j < p.Len() && l.equal(p.exp(i, l), p.exp(j, l)) {
			p.coeffs[i].Add(&p.coeffs[i], &p.coeffs[j])
			j++
		}
		//
		if p.coeffs[i].Sign() != 0 {
			if k != i {
				p.coeffs[k] = p.coeffs[i]
				copy(p.exp(k, l), p.exp(i, l))
			}
			//
			k++
		}
		//
		i = j
	}
	//
	p.coeffs = p.coeffs[:k]
	p.exps = p.exps[:k*l.words]
}

// normalise sorts and combines the term list, restoring canonical form after a
// sequence of unsorted pushes.
func (p *Poly) normalise(ctx *Context) {
	p.sortTerms(ctx)
	p.combine(ctx)
}

// IsCanonical verifies the canonical form invariant: terms strictly descending
// under the ordering, no duplicate exponent vectors, no zero coefficients.
// Intended for tests and assertions rather than hot paths.
func (p *Poly) IsCanonical(ctx *Context) bool {
	l := ctx.layoutFor(p.bits)
	//
	for i := uint(0); i < p.Len(); i++ {
		if p.coeffs[i].Sign() == 0 {
			return false
		}
		//
		if i+1 < p.Len() && l.cmp(p.exp(i, l), p.exp(i+1, l)) <= 0 {
			return false
		}
		// Every field must respect the reserved-bit bound
		if !l.fitsAll(p.Exponents(i, ctx)) {
			return false
		}
	}
	//
	return true
}

// fitExponents widens this polynomial, if necessary, so the given exponent
// vector (and its total degree, when graded) is representable.
func (p *Poly) fitExponents(exps []uint64, ctx *Context) error {
	var max uint64
	//
	var deg uint64
	//
	for _, e := range exps {
		if e > maxExponent {
			return ErrOverflow
		}
		//
		if e > max {
			max = e
		}
		//
		deg += e
	}
	//
	if ctx.ordering.Graded() && deg > max {
		max = deg
	}
	//
	p.FitBits(bitsFor(max), ctx)
	//
	return nil
}

// maxExponent is the largest representable exponent: 64-bit fields less the
// reserved bit.
const maxExponent = (uint64(1) << 63) - 1

var bigOne = big.NewInt(1)

// setLenBig grows a big.Int slice to a given length, reusing capacity.
func setLenBig(s []big.Int, n uint) []big.Int {
	for uint(len(s)) < n {
		s = append(s, big.Int{})
	}
	//
	return s[:n]
}
