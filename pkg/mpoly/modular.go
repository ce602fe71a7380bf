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
	"math/rand"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// The modular GCD strategies compute images over the goldilocks prime field
// (p = 2^64 - 2^32 + 1), lift symmetrically to the integers and certify by
// trial division.  A single word-sized prime cannot carry arbitrarily large
// coefficients, so certification failure is an expected outcome which the
// dispatcher answers by falling back to the subresultant strategy.

// modProbeLimit bounds the dense degree any modular kernel is prepared to
// handle in one variable.
var modProbeLimit = uint64(1) << 20

// upolyMod is a dense univariate polynomial over the goldilocks field,
// indexed by exponent.
type upolyMod []goldilocks.Element

// degree returns the index of the highest nonzero coefficient, or -1.
func (u upolyMod) degree() int64 {
	for i := len(u) - 1; i >= 0; i-- {
		if !u[i].IsZero() {
			return int64(i)
		}
	}
	//
	return -1
}

// trim drops high zero coefficients.
func (u upolyMod) trim() upolyMod {
	return u[:u.degree()+1]
}

// monic scales u so its leading coefficient is one.
func (u upolyMod) monic() upolyMod {
	d := u.degree()
	if d < 0 {
		return u
	}
	//
	var inv goldilocks.Element
	inv.Inverse(&u[d])
	//
	for i := range u {
		u[i].Mul(&u[i], &inv)
	}
	//
	return u
}

// clone returns an independent copy of u.
func (u upolyMod) clone() upolyMod {
	c := make(upolyMod, len(u))
	copy(c, u)
	//
	return c
}

// eval computes u at the given point by Horner's scheme.
func (u upolyMod) eval(x goldilocks.Element) goldilocks.Element {
	var acc goldilocks.Element
	//
	for i := len(u) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &u[i])
	}
	//
	return acc
}

// umodGCD returns the monic GCD of two dense univariate polynomials over the
// goldilocks field, by the Euclidean algorithm.
func umodGCD(a, b upolyMod) upolyMod {
	a, b = a.clone().trim(), b.clone().trim()
	//
	for b.degree() >= 0 {
		a = umodRem(a, b)
		a, b = b, a
	}
	//
	return a.monic()
}

// umodRem reduces a modulo b in place, returning the trimmed remainder.
func umodRem(a, b upolyMod) upolyMod {
	var (
		db    = b.degree()
		inv   goldilocks.Element
		scale goldilocks.Element
		t     goldilocks.Element
	)
	//
	inv.Inverse(&b[db])
	//
	for da := a.degree(); da >= db && da >= 0; da = a.degree() {
		scale.Mul(&a[da], &inv)
		//
		for j := int64(0); j <= db; j++ {
			t.Mul(&scale, &b[j])
			a[da-db+j].Sub(&a[da-db+j], &t)
		}
	}
	//
	return a.trim()
}

// umodXGCD returns g, s, t with g = gcd(a, b) monic and s*a + t*b = g.
func umodXGCD(a, b upolyMod) (g, s, t upolyMod) {
	var (
		r0, r1 = a.clone().trim(), b.clone().trim()
		s0, s1 = upolyMod{oneElement()}, upolyMod{}
		t0, t1 = upolyMod{}, upolyMod{oneElement()}
	)
	//
	for r1.degree() >= 0 {
		q, r := umodDivRem(r0, r1)
		r0, r1 = r1, r
		s0, s1 = s1, umodSub(s0, umodMul(q, s1))
		t0, t1 = t1, umodSub(t0, umodMul(q, t1))
	}
	// Scale to monic
	d := r0.degree()
	if d >= 0 {
		var inv goldilocks.Element
		inv.Inverse(&r0[d])
		r0, s0, t0 = umodScale(r0, inv), umodScale(s0, inv), umodScale(t0, inv)
	}
	//
	return r0, s0, t0
}

// umodDivRem returns quotient and remainder of dense division.
func umodDivRem(a, b upolyMod) (upolyMod, upolyMod) {
	var (
		db  = b.degree()
		da  = a.degree()
		rem = a.clone().trim()
		inv goldilocks.Element
		t   goldilocks.Element
	)
	//
	if da < db {
		return upolyMod{}, rem
	}
	//
	var (
		quo = make(upolyMod, da-db+1)
	)
	//
	inv.Inverse(&b[db])
	//
	for d := rem.degree(); d >= db && d >= 0; d = rem.degree() {
		quo[d-db].Mul(&rem[d], &inv)
		//
		for j := int64(0); j <= db; j++ {
			t.Mul(&quo[d-db], &b[j])
			rem[d-db+j].Sub(&rem[d-db+j], &t)
		}
	}
	//
	return quo, rem.trim()
}

// umodMul returns the product of two dense univariate polynomials.
func umodMul(a, b upolyMod) upolyMod {
	a, b = a.trim(), b.trim()
	//
	if len(a) == 0 || len(b) == 0 {
		return upolyMod{}
	}
	//
	var (
		res = make(upolyMod, len(a)+len(b)-1)
		t   goldilocks.Element
	)
	//
	for i := range a {
		for j := range b {
			t.Mul(&a[i], &b[j])
			res[i+j].Add(&res[i+j], &t)
		}
	}
	//
	return res
}

// umodAdd returns a + b.
func umodAdd(a, b upolyMod) upolyMod {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	//
	res := make(upolyMod, n)
	copy(res, a)
	//
	for i := range b {
		res[i].Add(&res[i], &b[i])
	}
	//
	return res.trim()
}

// umodSub returns a - b.
func umodSub(a, b upolyMod) upolyMod {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	//
	res := make(upolyMod, n)
	copy(res, a)
	//
	for i := range b {
		res[i].Sub(&res[i], &b[i])
	}
	//
	return res.trim()
}

// umodScale returns u scaled by a field element.
func umodScale(u upolyMod, c goldilocks.Element) upolyMod {
	res := u.clone()
	//
	for i := range res {
		res[i].Mul(&res[i], &c)
	}
	//
	return res
}

func oneElement() goldilocks.Element {
	var one goldilocks.Element
	one.SetOne()
	//
	return one
}

// modReduceCoeff reduces a big integer into the goldilocks field.
func modReduceCoeff(dst *goldilocks.Element, c *big.Int) {
	dst.SetBigInt(c)
}

// symmetricLift maps a field element back to the integer of least absolute
// value in its residue class.
func symmetricLift(dst *big.Int, e *goldilocks.Element) {
	var (
		p    = goldilocks.Modulus()
		half = new(big.Int).Rsh(p, 1)
	)
	//
	e.BigInt(dst)
	//
	if dst.Cmp(half) > 0 {
		dst.Sub(dst, p)
	}
}

// imageUnivar evaluates every variable except v at the given points modulo
// goldilocks, producing the dense univariate image in v.  It reports failure
// when the degree in v exceeds the dense limit.
func imageUnivar(a *Poly, v uint, points []goldilocks.Element, ctx *Context) (upolyMod, bool) {
	deg := a.Degree(v, ctx)
	//
	if deg < 0 {
		return upolyMod{}, true
	} else if uint64(deg) >= modProbeLimit {
		return nil, false
	}
	//
	var (
		l     = ctx.layoutFor(a.bits)
		exps  = make([]uint64, ctx.nvars)
		image = make(upolyMod, deg+1)
		c     goldilocks.Element
		pw    goldilocks.Element
		k     big.Int
	)
	//
	for i := uint(0); i < a.Len(); i++ {
		l.unpack(exps, a.exp(i, l))
		modReduceCoeff(&c, &a.coeffs[i])
		//
		for u, e := range exps {
			if uint(u) == v || e == 0 {
				continue
			}
			//
			k.SetUint64(e)
			pw.Exp(points[u], &k)
			c.Mul(&c, &pw)
		}
		//
		image[exps[v]].Add(&image[exps[v]], &c)
	}
	//
	return image, true
}

// randPoints draws a vector of nonzero evaluation points from a seeded
// source, one per variable.
func randPoints(rng *rand.Rand, nvars uint) []goldilocks.Element {
	points := make([]goldilocks.Element, nvars)
	//
	for i := range points {
		points[i].SetUint64(uint64(rng.Int63n(1<<32-2) + 1))
	}
	//
	return points
}

// probeDegrees estimates, per variable, the degree of the GCD of a and b by
// univariate image GCDs at random points.  A probe is sound as an upper bound
// only when the evaluation preserves both operand degrees, hence degenerate
// points are redrawn; after too many degenerate draws the probe gives up.
func probeDegrees(a, b *Poly, ctx *Context) ([]int64, bool) {
	var (
		rng    = rand.New(rand.NewSource(int64(a.Len())<<32 | int64(b.Len())))
		probes = make([]int64, ctx.nvars)
	)
	//
	for v := uint(0); v < ctx.nvars; v++ {
		var (
			da = a.Degree(v, ctx)
			db = b.Degree(v, ctx)
		)
		//
		ok := false
		//
		for attempt := 0; attempt < 16; attempt++ {
			points := randPoints(rng, ctx.nvars)
			//
			ia, oka := imageUnivar(a, v, points, ctx)
			ib, okb := imageUnivar(b, v, points, ctx)
			//
			if !oka || !okb {
				return nil, false
			}
			// The probe is only an upper bound when degrees survive
			if ia.degree() != da || ib.degree() != db {
				continue
			}
			//
			probes[v] = umodGCD(ia, ib).degree()
			ok = true
			//
			break
		}
		//
		if !ok {
			return nil, false
		}
	}
	//
	return probes, true
}

// certifyGCD checks that a certified common divisor is in fact the greatest:
// cand divides both operands and matches the probe degree in every variable.
// Divisibility makes cand a divisor of the true GCD; matching the sound
// per-variable upper bounds forces equality up to sign.
func certifyGCD(cand, a, b *Poly, probes []int64, ctx *Context) bool {
	if cand.IsZero() {
		return false
	}
	//
	for v := uint(0); v < ctx.nvars; v++ {
		if cand.Degree(v, ctx) != probes[v] {
			return false
		}
	}
	//
	q := NewPoly(ctx)
	//
	return Divides(q, a, cand, ctx) && Divides(q, b, cand, ctx)
}

// vandermondeSolve solves the transposed Vandermonde system arising in
// Zippel's sparse interpolation: given pairwise distinct monomial evaluations
// m[i] and right-hand sides r[j] = sum_i c[i] * m[i]^(j+1), it recovers the
// coefficients c.
func vandermondeSolve(m []goldilocks.Element, r []goldilocks.Element) ([]goldilocks.Element, bool) {
	n := len(m)
	//
	if n == 0 {
		return nil, true
	} else if len(r) < n {
		return nil, false
	}
	// Master polynomial prod (x - m[i])
	master := upolyMod{oneElement()}
	//
	for i := range m {
		var neg goldilocks.Element
		neg.Neg(&m[i])
		master = umodMul(master, upolyMod{neg, oneElement()})
	}
	//
	var (
		out = make([]goldilocks.Element, n)
		t   goldilocks.Element
	)
	//
	for i := range m {
		// q = master / (x - m[i])
		var neg goldilocks.Element
		neg.Neg(&m[i])
		q, rem := umodDivRem(master, upolyMod{neg, oneElement()})
		//
		if rem.degree() >= 0 {
			return nil, false
		}
		// Denominator m[i] * q(m[i])
		den := q.eval(m[i])
		den.Mul(&den, &m[i])
		//
		if den.IsZero() {
			return nil, false
		}
		// Numerator sum_j q[j] * r[j]
		var num goldilocks.Element
		//
		for j := range q {
			t.Mul(&q[j], &r[j])
			num.Add(&num, &t)
		}
		//
		var inv goldilocks.Element
		inv.Inverse(&den)
		out[i].Mul(&num, &inv)
	}
	//
	return out, true
}
