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

import "math/big"

// aNode marks heap nodes sourced from the dividend rather than from a
// quotient-times-divisor product.
const aNode = ^uint(0)

// DivRem sets q and r such that a = q*b + r, where a quotient term is emitted
// whenever the leading term of b divides the current leading term exactly
// (monomial and coefficient), and every other surfaced term moves to the
// remainder.  The kernel is Monagan-Pearce heap division: a max-heap merges
// the dividend with the partial products q*b, surfacing the terms of a - q*b
// in descending order without materialising it.  q and r may alias a or b.
func DivRem(q, r, a, b *Poly, ctx *Context) {
	if b.IsZero() {
		panic("division by zero polynomial")
	}
	//
	for bits := divBitsGuess(a, b, ctx); ; bits *= 2 {
		if bits > MaxBits {
			panic(ErrOverflow)
		}
		//
		if qq, rr, ok := heapDivRem(a, b, bits, false, ctx); ok {
			q.Swap(qq)
			r.Swap(rr)
			//
			return
		}
	}
}

// Div sets q to the quotient of DivRem(a, b), discarding the remainder.
func Div(q, a, b *Poly, ctx *Context) {
	r := NewPoly(ctx)
	DivRem(q, r, a, b, ctx)
}

// Divides attempts the exact division a / b, setting q and returning true on
// success.  On failure q's contents are unspecified.  Division by the zero
// polynomial succeeds only for a zero dividend.
func Divides(q, a, b *Poly, ctx *Context) bool {
	if b.IsZero() {
		if a.IsZero() {
			q.SetZero()
			return true
		}
		//
		return false
	}
	//
	for bits := divBitsGuess(a, b, ctx); bits <= MaxBits; bits *= 2 {
		qq, _, ok := heapDivRem(a, b, bits, true, ctx)
		//
		if ok {
			if qq == nil {
				return false
			}
			//
			q.Swap(qq)
			//
			return true
		}
	}
	//
	panic(ErrOverflow)
}

// divBitsGuess predicts a packed width for division intermediates from the
// operand degrees.  The guess covers the common case; heapDivRem widens and
// retries on the rare overflow.
func divBitsGuess(a, b *Poly, ctx *Context) uint {
	_, ta := a.maxDegrees(ctx)
	_, tb := b.maxDegrees(ctx)
	//
	bits := bitsFor(ta + tb)
	if a.bits > bits {
		bits = a.bits
	}
	//
	if b.bits > bits {
		bits = b.bits
	}
	//
	return bits
}

// heapDivRem runs heap division at a fixed packed width.  It reports ok=false
// if any intermediate exponent overflows the width, in which case the caller
// retries wider.  In exact mode a failed reduction aborts the division and
// yields (nil, nil, true).
func heapDivRem(a, b *Poly, bits uint, exact bool, ctx *Context) (q, r *Poly, ok bool) {
	if a.IsZero() {
		return NewPoly(ctx), NewPoly(ctx), true
	}
	//
	a = widened(a, bits, ctx)
	b = widened(b, bits, ctx)
	//
	var (
		l     = ctx.layoutFor(bits)
		h     = newExpHeap(l, b.Len()+1)
		bLead = b.exp(0, l)
		exp   = make([]uint64, l.words)
		qExp  = make([]uint64, l.words)
		acc   big.Int
		prod  big.Int
		rem   big.Int
	)
	//
	q = NewPolyWithCapacityBits(ctx, a.Len(), bits)
	r = NewPolyWithCapacityBits(ctx, 0, bits)
	// Seed with the dividend's leading term
	seed := make([]uint64, l.words)
	copy(seed, a.exp(0, l))
	h.push(seed, 0, aNode)
	//
	for h.len() > 0 {
		copy(exp, h.peek())
		acc.SetInt64(0)
		// Drain all contributions sharing the maximal exponent
		for h.len() > 0 && l.equal(h.peek(), exp) {
			n := h.pop()
			//
			if n.j == aNode {
				acc.Add(&acc, &a.coeffs[n.i])
				// Successor dividend term
				if n.i+1 < a.Len() {
					copy(n.exp, a.exp(n.i+1, l))
					h.push(n.exp, n.i+1, aNode)
				}
			} else {
				prod.Mul(&q.coeffs[n.i], &b.coeffs[n.j])
				acc.Sub(&acc, &prod)
				// Successor divisor term
				if n.j+1 < b.Len() {
					if over := l.addCheck(n.exp, q.exp(n.i, l), b.exp(n.j+1, l)); over {
						return nil, nil, false
					}
					//
					h.push(n.exp, n.i, n.j+1)
				}
			}
		}
		//
		if acc.Sign() == 0 {
			continue
		}
		// Attempt a reduction against the leading term of b
		if l.sub(qExp, exp, bLead) {
			rem.QuoRem(&acc, &b.coeffs[0], &acc)
			//
			if acc.Sign() == 0 {
				// Exact: emit quotient term and its first pending product
				k := q.Len()
				q.pushTerm(&rem, qExp)
				//
				if b.Len() > 1 {
					next := make([]uint64, l.words)
					if over := l.addCheck(next, q.exp(k, l), b.exp(1, l)); over {
						return nil, nil, false
					}
					//
					h.push(next, k, 1)
				}
				//
				continue
			}
			// Coefficient not exactly divisible: restore the full value
			prod.Mul(&rem, &b.coeffs[0])
			acc.Add(&acc, &prod)
		}
		//
		if exact {
			return nil, nil, true
		}
		//
		r.pushTerm(&acc, exp)
	}
	//
	return q, r, true
}

// addCheck writes the fieldwise sum a + b into dst, reporting overflow into
// any reserved field bit.
func (l *layout) addCheck(dst, a, b []uint64) bool {
	var over uint64
	//
	for i := uint(0); i < l.words; i++ {
		dst[i] = a[i] + b[i]
		over |= dst[i] & l.topmask[i]
	}
	//
	return over != 0
}

// widened returns p repacked at the given width, cloning only when the width
// must grow.
func widened(p *Poly, bits uint, ctx *Context) *Poly {
	if p.bits < bits {
		p = p.Clone(ctx)
		p.FitBits(bits, ctx)
	}
	//
	return p
}

// QuasiDivRem sets q, r and the integer scale s such that s*a = q*b + r with
// integer coefficients throughout, for divisors whose leading coefficient
// does not divide every intermediate coefficient exactly.  The scale is a
// product of factors of b's leading coefficient.
func QuasiDivRem(scale *big.Int, q, r, a, b *Poly, ctx *Context) {
	if b.IsZero() {
		panic("division by zero polynomial")
	}
	//
	var (
		cur   = a.Clone(ctx)
		quo   = NewPoly(ctx)
		rem   = NewPoly(ctx)
		g     big.Int
		m     big.Int
		coeff big.Int
	)
	//
	scale.SetInt64(1)
	//
	for !cur.IsZero() {
		c, d, l := sameBits(cur, b, ctx)
		qExp := make([]uint64, l.words)
		// Reducible?
		if !l.sub(qExp, c.exp(0, l), d.exp(0, l)) {
			// Move leading term to remainder
			lt := cur.Term(0, ctx)
			rem.Add(rem, lt, ctx)
			cur.Sub(cur, lt, ctx)
			//
			continue
		}
		//
		coeff.QuoRem(&cur.coeffs[0], &b.coeffs[0], &m)
		//
		if m.Sign() != 0 {
			// Scale the computation so the division becomes exact
			g.GCD(nil, nil, absInt(&cur.coeffs[0]), absInt(&b.coeffs[0]))
			m.Quo(absInt(&b.coeffs[0]), &g)
			scale.Mul(scale, &m)
			quo.MulScalar(quo, &m, ctx)
			rem.MulScalar(rem, &m, ctx)
			cur.MulScalar(cur, &m, ctx)
			coeff.Quo(&cur.coeffs[0], &b.coeffs[0])
		}
		// Emit quotient term and cancel
		t := NewPolyWithCapacityBits(ctx, 1, l.bits)
		t.pushTerm(&coeff, qExp)
		quo.Add(quo, t, ctx)
		t.Mul(t, b, ctx)
		cur.Sub(cur, t, ctx)
	}
	//
	q.Swap(quo)
	r.Swap(rem)
}

// DivRemIdeal divides a by an ordered list of divisors, trying each divisor's
// leading term in list order and taking the first exact match, with leftover
// terms moved to the remainder.  It sets q[i] and r such that
// a = sum q[i]*b[i] + r.
func DivRemIdeal(q []*Poly, r, a *Poly, b []*Poly, ctx *Context) {
	var (
		cur = a.Clone(ctx)
		rem = NewPoly(ctx)
	)
	//
	for i := range q {
		q[i].SetZero()
	}
	//
outer:
	for !cur.IsZero() {
		for i, bi := range b {
			if bi.IsZero() {
				continue
			}
			//
			c, d, l := sameBits(cur, bi, ctx)
			qExp := make([]uint64, l.words)
			//
			if !l.sub(qExp, c.exp(0, l), d.exp(0, l)) {
				continue
			}
			//
			var coeff, m big.Int
			coeff.QuoRem(&c.coeffs[0], &d.coeffs[0], &m)
			//
			if m.Sign() != 0 {
				continue
			}
			//
			t := NewPolyWithCapacityBits(ctx, 1, l.bits)
			t.pushTerm(&coeff, qExp)
			q[i].Add(q[i], t, ctx)
			t.Mul(t, bi, ctx)
			cur.Sub(cur, t, ctx)
			//
			continue outer
		}
		// No divisor matched: move leading term to remainder
		lt := cur.Term(0, ctx)
		rem.Add(rem, lt, ctx)
		cur.Sub(cur, lt, ctx)
	}
	//
	r.Swap(rem)
}

// absInt returns a view of the absolute value of x, allocating only when x is
// negative.
func absInt(x *big.Int) *big.Int {
	if x.Sign() < 0 {
		return new(big.Int).Abs(x)
	}
	//
	return x
}
