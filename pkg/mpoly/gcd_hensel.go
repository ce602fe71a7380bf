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

	"github.com/consensys/gnark-crypto/field/goldilocks"
	log "github.com/sirupsen/logrus"
)

// GCDHensel attempts a p-adic GCD: the modular image of the GCD is lifted
// from a single goldilocks prime to a modulus past the Landau-Mignotte bound
// by linear Hensel steps on a cofactor pair, then certified by trial
// division.  The lift requires a genuinely univariate problem, so the
// strategy reports false whenever more than one variable is in play or the
// image cofactors fail to be coprime.
func (p *Poly) GCDHensel(a, b *Poly, ctx *Context) bool {
	v, ok := soleVariable(a, b, ctx)
	if !ok {
		return false
	}
	//
	probes, ok := probeDegrees(a, b, ctx)
	if !ok {
		return false
	}
	//
	fa := denseIntCoeffs(a, v, ctx)
	fb := denseIntCoeffs(b, v, ctx)
	//
	if fa == nil || fb == nil {
		return false
	}
	//
	cand, ok := henselGCD(fa, fb)
	if !ok {
		log.Debugf("hensel gcd: lift failed, falling back")
		return false
	}
	//
	lifted := densePolyFrom(cand, v, ctx)
	gcdNormalise(lifted, ctx)
	//
	if !certifyGCD(lifted, a, b, probes, ctx) {
		log.Debugf("hensel gcd: certification failed, falling back")
		return false
	}
	//
	p.Swap(lifted)
	//
	return true
}

// soleVariable reports the single variable used by both operands, failing
// when the union of supports is anything other than one shared variable.
func soleVariable(a, b *Poly, ctx *Context) (uint, bool) {
	var (
		usedA = a.UsedVars(ctx)
		usedB = b.UsedVars(ctx)
		sole  uint
		n     = 0
	)
	//
	for v := uint(0); v < ctx.nvars; v++ {
		if usedA[v] || usedB[v] {
			sole = v
			n++
		}
	}
	//
	if n != 1 || !usedA[sole] || !usedB[sole] {
		return 0, false
	}
	//
	return sole, true
}

// henselGCD computes the GCD, up to sign, of two univariate integer
// polynomials given as dense ascending coefficient vectors.
func henselGCD(fa, fb []big.Int) ([]big.Int, bool) {
	var (
		mod = goldilocks.Modulus()
		ga  = denseReduceMod(fa)
		gb  = denseReduceMod(fb)
	)
	// The images must keep full degree, else p divides a leading coefficient
	if ga.degree() != int64(len(fa)-1) || gb.degree() != int64(len(fb)-1) {
		return nil, false
	}
	//
	g0 := umodGCD(ga, gb)
	if g0.degree() <= 0 {
		// Constant GCD: only integer content is shared
		var c big.Int
		c.GCD(nil, nil, denseContent(fa), denseContent(fb))
		//
		return []big.Int{c}, true
	}
	// Lift inside the operand of smaller degree
	var (
		f  = fa
		fm = ga
	)
	//
	if len(fb) < len(fa) {
		f, fm = fb, gb
	}
	//
	h0, rem := umodDivRem(fm, g0)
	if rem.degree() >= 0 {
		return nil, false
	}
	// Linear lifting needs the image cofactors coprime
	one, s, t := umodXGCD(g0, h0)
	if one.degree() != 0 {
		return nil, false
	}
	// gamma bounds the leading coefficient of any common divisor
	var gamma big.Int
	gamma.GCD(nil, nil, &fa[len(fa)-1], &fb[len(fb)-1])
	//
	var (
		g     = denseFromMod(g0)
		h     = denseFromMod(h0)
		m     = new(big.Int).Set(mod)
		bound = mignotteBound(f, &gamma, uint(g0.degree()))
	)
	//
	for iter := 0; m.Cmp(bound) <= 0; iter++ {
		if iter >= 64 {
			return nil, false
		}
		// e = (f - g*h) / m, reduced mod p
		e := denseSub(f, denseMul(g, h))
		ehat := make(upolyMod, len(e))
		//
		var q big.Int
		//
		for i := range e {
			q.Quo(&e[i], m)
			ehat[i].SetBigInt(&q)
		}
		//
		ehat = ehat.trim()
		// dg = t*e mod g0;  dh = s*e + quo(t*e, g0)*h0
		quo, dg := umodDivRem(umodMul(t, ehat), g0)
		dh := umodAdd(umodMul(s, ehat), umodMul(quo, h0))
		//
		g = denseAddScaled(g, denseFromMod(dg), m)
		h = denseAddScaled(h, denseFromMod(dh), m)
		m.Mul(m, mod)
	}
	// Candidate: gamma * g, coefficients lifted symmetrically mod m
	var (
		half = new(big.Int).Rsh(m, 1)
		cand = make([]big.Int, len(g))
	)
	//
	for i := range g {
		cand[i].Mul(&g[i], &gamma)
		cand[i].Mod(&cand[i], m)
		//
		if cand[i].Cmp(half) > 0 {
			cand[i].Sub(&cand[i], m)
		}
	}
	//
	c := denseContent(cand)
	if c.Sign() != 0 {
		for i := range cand {
			cand[i].Quo(&cand[i], c)
		}
	}
	//
	return cand, true
}

// mignotteBound returns a coefficient bound for gamma-scaled monic divisors
// of f of the given degree, doubled so that symmetric lifting is unambiguous.
func mignotteBound(f []big.Int, gamma *big.Int, deg uint) *big.Int {
	var max big.Int
	//
	for i := range f {
		var abs big.Int
		abs.Abs(&f[i])
		//
		if abs.Cmp(&max) > 0 {
			max.Set(&abs)
		}
	}
	//
	var bound big.Int
	bound.Abs(gamma)
	bound.Mul(&bound, &max)
	bound.Lsh(&bound, deg+1)
	//
	return &bound
}

// denseIntCoeffs flattens a univariate polynomial into ascending dense
// coefficients, refusing unreasonably large degrees.
func denseIntCoeffs(p *Poly, v uint, ctx *Context) []big.Int {
	deg := p.Degree(v, ctx)
	if deg < 0 || uint64(deg) >= modProbeLimit {
		return nil
	}
	//
	var (
		l   = ctx.layoutFor(p.bits)
		out = make([]big.Int, deg+1)
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		out[l.exponent(p.exp(i, l), v)].Set(&p.coeffs[i])
	}
	//
	return out
}

// densePolyFrom rebuilds a sparse polynomial from dense ascending
// coefficients in variable v.
func densePolyFrom(coeffs []big.Int, v uint, ctx *Context) *Poly {
	var (
		builder = NewBuilder(ctx)
		exps    = make([]uint64, ctx.nvars)
	)
	//
	for i := len(coeffs) - 1; i >= 0; i-- {
		if coeffs[i].Sign() == 0 {
			continue
		}
		//
		exps[v] = uint64(i)
		//
		if err := builder.Push(&coeffs[i], exps); err != nil {
			panic(err)
		}
	}
	//
	return builder.Build()
}

// denseReduceMod reduces dense integer coefficients into the goldilocks
// field.
func denseReduceMod(f []big.Int) upolyMod {
	out := make(upolyMod, len(f))
	//
	for i := range f {
		out[i].SetBigInt(&f[i])
	}
	//
	return out.trim()
}

// denseFromMod maps field coefficients to their least non-negative integer
// representatives.
func denseFromMod(u upolyMod) []big.Int {
	out := make([]big.Int, len(u))
	//
	for i := range u {
		u[i].BigInt(&out[i])
	}
	//
	return out
}

// denseContent returns the GCD of all coefficients.
func denseContent(f []big.Int) *big.Int {
	c := new(big.Int)
	//
	for i := range f {
		c.GCD(nil, nil, c, new(big.Int).Abs(&f[i]))
		//
		if c.Cmp(bigOne) == 0 {
			break
		}
	}
	//
	return c
}

// denseMul returns the product of two dense integer polynomials.
func denseMul(a, b []big.Int) []big.Int {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	//
	var (
		out = make([]big.Int, len(a)+len(b)-1)
		t   big.Int
	)
	//
	for i := range a {
		for j := range b {
			t.Mul(&a[i], &b[j])
			out[i+j].Add(&out[i+j], &t)
		}
	}
	//
	return out
}

// denseSub returns a - b.
func denseSub(a, b []big.Int) []big.Int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	//
	out := make([]big.Int, n)
	//
	for i := range out {
		if i < len(a) {
			out[i].Set(&a[i])
		}
		//
		if i < len(b) {
			out[i].Sub(&out[i], &b[i])
		}
	}
	//
	return out
}

// denseAddScaled returns a + m*b, extending a as needed.
func denseAddScaled(a, b []big.Int, m *big.Int) []big.Int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	//
	var (
		out = make([]big.Int, n)
		t   big.Int
	)
	//
	for i := range out {
		if i < len(a) {
			out[i].Set(&a[i])
		}
		//
		if i < len(b) {
			t.Mul(&b[i], m)
			out[i].Add(&out[i], &t)
		}
	}
	//
	return out
}
