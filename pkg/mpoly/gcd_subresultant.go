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
)

// GCDSubresultant computes the greatest common divisor of a and b by the
// subresultant polynomial remainder sequence (Collins' algorithm), recursing
// through the coefficient ring one variable at a time.  Unlike the modular
// strategies this one never fails, which makes it the fallback of the
// dispatcher; the price is coefficient growth along the remainder sequence.
func (p *Poly) GCDSubresultant(a, b *Poly, ctx *Context) *Poly {
	g := gcdPRS(a, b, ctx)
	gcdNormalise(g, ctx)
	p.Swap(g)
	//
	return p
}

// gcdPRS returns the full integer GCD of a and b, up to sign.
func gcdPRS(a, b *Poly, ctx *Context) *Poly {
	switch {
	case a.IsZero():
		return b.Clone(ctx)
	case b.IsZero():
		return a.Clone(ctx)
	case a.IsConst(ctx) || b.IsConst(ctx):
		// A constant operand forces a constant GCD.
		var c big.Int
		c.GCD(nil, nil, a.Content(), b.Content())
		//
		return NewPoly(ctx).SetInt(&c, ctx)
	}
	//
	v, ok := gcdMainVar(a, b, ctx)
	if !ok {
		// Disjoint variable support, hence only constant common divisors.
		var c big.Int
		c.GCD(nil, nil, a.Content(), b.Content())
		//
		return NewPoly(ctx).SetInt(&c, ctx)
	}
	//
	ua, err := ToUnivar(a, v, ctx)
	if err != nil {
		panic(err)
	}
	//
	ub, err := ToUnivar(b, v, ctx)
	if err != nil {
		panic(err)
	}
	//
	contA := uContent(ua, ctx)
	contB := uContent(ub, ctx)
	d := gcdPRS(contA, contB, ctx)
	//
	primA := uDivExact(ua, contA, ctx)
	primB := uDivExact(ub, contB, ctx)
	//
	w := subresultantPRS(primA, primB, ctx)
	if w == nil {
		// Remainder sequence bottomed out at a unit in v.
		return d
	}
	//
	cw := uContent(w, ctx)
	pw := uDivExact(w, cw, ctx)
	//
	g, err := FromUnivar(pw, ctx)
	if err != nil {
		panic(err)
	}
	//
	return NewPoly(ctx).Mul(d, g, ctx)
}

// gcdMainVar picks the elimination variable for the remainder sequence: the
// variable used by both operands with the smallest of the two degrees.
func gcdMainVar(a, b *Poly, ctx *Context) (uint, bool) {
	var (
		usedA = a.UsedVars(ctx)
		usedB = b.UsedVars(ctx)
		best  uint
		score = int64(-1)
	)
	//
	for v := uint(0); v < ctx.nvars; v++ {
		if !usedA[v] || !usedB[v] {
			continue
		}
		//
		s := a.Degree(v, ctx)
		if db := b.Degree(v, ctx); db < s {
			s = db
		}
		//
		if score < 0 || s < score {
			best, score = v, s
		}
	}
	//
	return best, score >= 0
}

// subresultantPRS runs Collins' remainder sequence on two primitive
// univariate-view operands, returning the last remainder of positive degree
// in the main variable, or nil when the sequence terminates at a unit.
func subresultantPRS(f1, f2 *Univar, ctx *Context) *Univar {
	if uDeg(f1) < uDeg(f2) {
		f1, f2 = f2, f1
	}
	//
	var (
		one  = NewPoly(ctx).SetOne(ctx)
		g, h = one, one
	)
	//
	for uDeg(f2) > 0 {
		delta := uDeg(f1) - uDeg(f2)
		//
		r := uPseudoRem(f1, f2, delta, ctx)
		if r.Len() == 0 {
			return f2
		}
		// Divide out the known factor g * h^delta
		var divisor *Poly
		//
		if delta == 0 {
			divisor = g
		} else {
			hd := NewPoly(ctx)
			if err := hd.Pow(h, int64(delta), ctx); err != nil {
				panic(err)
			}
			//
			divisor = NewPoly(ctx).Mul(g, hd, ctx)
		}
		//
		f1 = f2
		f2 = uDivExact(r, divisor, ctx)
		g = uLead(f1)
		//
		switch {
		case delta == 1:
			h = g
		case delta > 1:
			// h = g^delta / h^(delta-1), exact by the subresultant theory
			var (
				gd = NewPoly(ctx)
				hd = NewPoly(ctx)
			)
			//
			if err := gd.Pow(g, int64(delta), ctx); err != nil {
				panic(err)
			}
			//
			if err := hd.Pow(h, int64(delta-1), ctx); err != nil {
				panic(err)
			}
			//
			h = polyDivExact(gd, hd, ctx)
		}
	}
	//
	return nil
}

// uPseudoRem computes lc(b)^(delta+1) * a mod b in the univariate view,
// padding the power when degree gaps shorten the elimination loop.
func uPseudoRem(a, b *Univar, delta uint64, ctx *Context) *Univar {
	var (
		d     = uLead(b)
		r     = uClone(a, ctx)
		steps = uint64(0)
	)
	//
	for r.Len() > 0 && uDeg(r) >= uDeg(b) {
		k := uDeg(r) - uDeg(b)
		lr := uLead(r)
		// r = d*r - lr * x^k * b; leading terms cancel
		r = uSub(uScale(r, d, ctx), uShiftScale(b, lr, k, ctx), ctx)
		steps++
	}
	// Restore the canonical factor d^(delta+1)
	for ; steps < delta+1; steps++ {
		r = uScale(r, d, ctx)
	}
	//
	return r
}

// uDeg returns the degree of a nonzero univariate view.
func uDeg(u *Univar) uint64 {
	return u.Exps[0]
}

// uLead returns the leading coefficient of a nonzero univariate view.
func uLead(u *Univar) *Poly {
	return u.Coeffs[0]
}

// uClone deep copies a univariate view.
func uClone(u *Univar, ctx *Context) *Univar {
	c := &Univar{Var: u.Var, Exps: make([]uint64, len(u.Exps)), Coeffs: make([]*Poly, len(u.Coeffs))}
	copy(c.Exps, u.Exps)
	//
	for i, p := range u.Coeffs {
		c.Coeffs[i] = p.Clone(ctx)
	}
	//
	return c
}

// uScale multiplies every coefficient by c.
func uScale(u *Univar, c *Poly, ctx *Context) *Univar {
	s := &Univar{Var: u.Var, Exps: make([]uint64, len(u.Exps)), Coeffs: make([]*Poly, len(u.Coeffs))}
	copy(s.Exps, u.Exps)
	//
	for i, p := range u.Coeffs {
		s.Coeffs[i] = NewPoly(ctx).Mul(p, c, ctx)
	}
	//
	return s
}

// uShiftScale multiplies every coefficient by c and every exponent shifts up
// by k.
func uShiftScale(u *Univar, c *Poly, k uint64, ctx *Context) *Univar {
	s := uScale(u, c, ctx)
	//
	for i := range s.Exps {
		s.Exps[i] += k
	}
	//
	return s
}

// uSub merges two univariate views term by term, dropping cancellations.
func uSub(a, b *Univar, ctx *Context) *Univar {
	res := &Univar{Var: a.Var}
	i, j := 0, 0
	//
	for i < len(a.Exps) || j < len(b.Exps) {
		switch {
		case j >= len(b.Exps) || (i < len(a.Exps) && a.Exps[i] > b.Exps[j]):
			res.Exps = append(res.Exps, a.Exps[i])
			res.Coeffs = append(res.Coeffs, a.Coeffs[i].Clone(ctx))
			i++
		case i >= len(a.Exps) || b.Exps[j] > a.Exps[i]:
			res.Exps = append(res.Exps, b.Exps[j])
			res.Coeffs = append(res.Coeffs, NewPoly(ctx).Neg(b.Coeffs[j], ctx))
			j++
		default:
			diff := NewPoly(ctx).Sub(a.Coeffs[i], b.Coeffs[j], ctx)
			if !diff.IsZero() {
				res.Exps = append(res.Exps, a.Exps[i])
				res.Coeffs = append(res.Coeffs, diff)
			}
			//
			i, j = i+1, j+1
		}
	}
	//
	return res
}

// uContent returns the GCD of all coefficients of the univariate view.
func uContent(u *Univar, ctx *Context) *Poly {
	cont := NewPoly(ctx)
	//
	for _, c := range u.Coeffs {
		cont = gcdPRS(cont, c, ctx)
		//
		if cont.IsOne(ctx) {
			break
		}
	}
	//
	return cont
}

// uDivExact divides every coefficient by a known common divisor.
func uDivExact(u *Univar, by *Poly, ctx *Context) *Univar {
	if by.IsOne(ctx) {
		return u
	}
	//
	s := &Univar{Var: u.Var, Exps: make([]uint64, len(u.Exps)), Coeffs: make([]*Poly, len(u.Coeffs))}
	copy(s.Exps, u.Exps)
	//
	for i, p := range u.Coeffs {
		s.Coeffs[i] = polyDivExact(p, by, ctx)
	}
	//
	return s
}

// polyDivExact divides a by b, which must be exact.
func polyDivExact(a, b *Poly, ctx *Context) *Poly {
	q := NewPoly(ctx)
	//
	if !Divides(q, a, b, ctx) {
		panic("inexact division in remainder sequence")
	}
	//
	return q
}

// gcdNormalise scales g in place to the canonical representative: primitive
// with a positive leading coefficient.  The zero polynomial is left alone.
func gcdNormalise(g *Poly, ctx *Context) {
	if g.IsZero() {
		return
	}
	//
	c := g.Content()
	if g.coeffs[0].Sign() < 0 {
		c.Neg(c)
	}
	//
	if c.Cmp(bigOne) != 0 {
		g.DivExactScalar(g, c, ctx)
	}
}
