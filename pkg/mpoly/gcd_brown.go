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
	log "github.com/sirupsen/logrus"
)

// GCDBrown attempts Brown's dense modular GCD over the goldilocks field:
// evaluate the last variable at enough points, take recursive image GCDs,
// interpolate, lift symmetrically and certify by trial division.  It reports
// false when the single-prime image cannot be certified, in which case the
// caller falls back to another strategy.
func (p *Poly) GCDBrown(a, b *Poly, ctx *Context) bool {
	probes, ok := probeDegrees(a, b, ctx)
	if !ok {
		return false
	}
	//
	vars := commonVars(a, b, ctx)
	if len(vars) == 0 {
		return false
	}
	//
	var (
		rng = rand.New(rand.NewSource(0x62726f776e))
		ra  = modReducePoly(a, ctx)
		rb  = modReducePoly(b, ctx)
	)
	//
	cand, ok := brownRec(ra, rb, vars, rng, ctx)
	if !ok {
		log.Debugf("brown gcd: interpolation failed, falling back")
		return false
	}
	//
	lifted := liftPoly(cand, ctx)
	gcdNormalise(lifted, ctx)
	//
	if !certifyGCD(lifted, a, b, probes, ctx) {
		log.Debugf("brown gcd: certification failed, falling back")
		return false
	}
	//
	p.Swap(lifted)
	//
	return true
}

// commonVars lists the variables used by both operands, in increasing order.
func commonVars(a, b *Poly, ctx *Context) []uint {
	var (
		usedA = a.UsedVars(ctx)
		usedB = b.UsedVars(ctx)
		vars  []uint
	)
	//
	for v := uint(0); v < ctx.nvars; v++ {
		if usedA[v] && usedB[v] {
			vars = append(vars, v)
		}
	}
	//
	return vars
}

// brownRec computes a scalar multiple of the GCD image of two mod-p reduced
// polynomials supported on the given variables.
func brownRec(a, b *Poly, vars []uint, rng *rand.Rand, ctx *Context) (*Poly, bool) {
	if len(vars) == 1 {
		return brownBase(a, b, vars[0], ctx)
	}
	//
	var (
		t    = vars[len(vars)-1]
		rest = vars[:len(vars)-1]
	)
	// Univariate coefficients of the leading rest-variable monomials
	lcA, okA := leadRestCoeff(a, t, ctx)
	lcB, okB := leadRestCoeff(b, t, ctx)
	//
	if !okA || !okB {
		return nil, false
	}
	//
	gamma := umodGCD(lcA, lcB)
	//
	var (
		dt = a.Degree(t, ctx)
		db = b.Degree(t, ctx)
	)
	//
	if db < dt {
		dt = db
	}
	//
	bound := uint64(dt) + uint64(gamma.degree()) + 1
	if bound >= modProbeLimit {
		return nil, false
	}
	//
	var (
		interp  = newPolyInterp(t, ctx)
		leadMon []uint64
		seen    = make(map[uint64]bool)
		count   = uint64(0)
		alpha   goldilocks.Element
		aBig    big.Int
	)
	//
	for tries := uint64(0); count < bound; tries++ {
		if tries > 8*bound+32 {
			return nil, false
		}
		//
		raw := uint64(rng.Int63n(1<<32-2) + 1)
		if seen[raw] {
			continue
		}
		//
		seen[raw] = true
		alpha.SetUint64(raw)
		// Points killing either leading coefficient lose degree information
		if gv := gamma.eval(alpha); gv.IsZero() {
			continue
		} else if lv := lcA.eval(alpha); lv.IsZero() {
			continue
		} else if lv := lcB.eval(alpha); lv.IsZero() {
			continue
		}
		//
		alpha.BigInt(&aBig)
		//
		var ia, ib Poly
		//
		if !ia.EvaluateVar(a, t, &aBig, ctx) || !ib.EvaluateVar(b, t, &aBig, ctx) {
			return nil, false
		}
		//
		iag := modReduceInPlace(&ia, ctx)
		ibg := modReduceInPlace(&ib, ctx)
		//
		gim, ok := brownRec(iag, ibg, rest, rng, ctx)
		if !ok {
			return nil, false
		} else if gim.IsZero() {
			continue
		}
		// Track the minimal image leading monomial seen so far: larger means
		// an unlucky point, smaller invalidates everything collected.
		mon := make([]uint64, ctx.nvars)
		leadExps(gim, mon, ctx)
		//
		if leadMon == nil || cmpExpVecs(mon, leadMon, ctx) < 0 {
			leadMon = mon
			interp = newPolyInterp(t, ctx)
			count = 0
		} else if cmpExpVecs(mon, leadMon, ctx) > 0 {
			continue
		}
		// Pin the image scale: leading coefficient becomes gamma(alpha)
		var scale, inv goldilocks.Element
		modReduceCoeff(&inv, &gim.coeffs[0])
		inv.Inverse(&inv)
		gv := gamma.eval(alpha)
		scale.Mul(&gv, &inv)
		//
		gim = modScalePoly(gim, scale, ctx)
		interp.add(alpha, gim)
		count++
	}
	//
	return interp.cur, true
}

// polyInterp performs Newton interpolation in one variable where the sampled
// values are themselves polynomials, all arithmetic modulo goldilocks.
type polyInterp struct {
	t     uint
	basis upolyMod
	cur   *Poly
	ctx   *Context
}

func newPolyInterp(t uint, ctx *Context) *polyInterp {
	return &polyInterp{t: t, basis: upolyMod{oneElement()}, cur: NewPoly(ctx), ctx: ctx}
}

// add incorporates the sample value at t = alpha, which must be distinct from
// all prior points.
func (pi *polyInterp) add(alpha goldilocks.Element, value *Poly) {
	var (
		ctx  = pi.ctx
		aBig big.Int
		est  Poly
	)
	//
	alpha.BigInt(&aBig)
	est.EvaluateVar(pi.cur, pi.t, &aBig, ctx)
	//
	diff := NewPoly(ctx).Sub(value, modReduceInPlace(&est, ctx), ctx)
	diff = modReduceInPlace(diff, ctx)
	//
	if !diff.IsZero() {
		bv := pi.basis.eval(alpha)
		bv.Inverse(&bv)
		diff = modScalePoly(diff, bv, ctx)
		//
		step := NewPoly(ctx).Mul(diff, upolyToPoly(pi.basis, pi.t, ctx), ctx)
		pi.cur = modReduceInPlace(pi.cur.Add(pi.cur, step, ctx), ctx)
	}
	//
	var neg goldilocks.Element
	neg.Neg(&alpha)
	pi.basis = umodMul(pi.basis, upolyMod{neg, oneElement()})
}

// brownBase takes the dense univariate GCD at the bottom of the recursion.
func brownBase(a, b *Poly, v uint, ctx *Context) (*Poly, bool) {
	points := make([]goldilocks.Element, ctx.nvars)
	//
	da, okA := imageUnivar(a, v, points, ctx)
	db, okB := imageUnivar(b, v, points, ctx)
	//
	if !okA || !okB {
		return nil, false
	}
	//
	return upolyToPoly(umodGCD(da, db), v, ctx), true
}

// leadRestCoeff extracts, as a dense univariate polynomial in t, the
// coefficient attached to the leading monomial of p once t is ignored.
func leadRestCoeff(p *Poly, t uint, ctx *Context) (upolyMod, bool) {
	deg := p.Degree(t, ctx)
	if deg < 0 || uint64(deg) >= modProbeLimit {
		return nil, false
	}
	//
	var (
		l        = ctx.layoutFor(p.bits)
		exps     = make([]uint64, ctx.nvars)
		best     []uint64
		out      = make(upolyMod, deg+1)
		c        goldilocks.Element
		stripped = make([]uint64, ctx.nvars)
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		l.unpack(exps, p.exp(i, l))
		//
		et := exps[t]
		copy(stripped, exps)
		stripped[t] = 0
		//
		if best == nil || cmpExpVecs(stripped, best, ctx) > 0 {
			best = append([]uint64(nil), stripped...)
			//
			for j := range out {
				out[j].SetZero()
			}
		} else if cmpExpVecs(stripped, best, ctx) < 0 {
			continue
		}
		//
		modReduceCoeff(&c, &p.coeffs[i])
		out[et].Add(&out[et], &c)
	}
	//
	return out, true
}

// leadExps unpacks the leading exponent vector of a nonzero polynomial.
func leadExps(p *Poly, dst []uint64, ctx *Context) {
	l := ctx.layoutFor(p.bits)
	l.unpack(dst, p.exp(0, l))
}

// cmpExpVecs orders two unpacked exponent vectors under the context's
// monomial order by packing both at a common width.
func cmpExpVecs(a, b []uint64, ctx *Context) int {
	bits := uint(MinBits)
	//
	for _, exps := range [][]uint64{a, b} {
		var total uint64
		//
		for _, e := range exps {
			total += e
			//
			if w := bitsFor(e); w > bits {
				bits = w
			}
		}
		//
		if w := bitsFor(total); w > bits {
			bits = w
		}
	}
	//
	var (
		l  = ctx.layoutFor(bits)
		pa = make([]uint64, l.words)
		pb = make([]uint64, l.words)
	)
	//
	l.pack(pa, a)
	l.pack(pb, b)
	//
	return l.cmp(pa, pb)
}

// upolyToPoly converts a dense univariate image back to a sparse polynomial
// in variable v.
func upolyToPoly(u upolyMod, v uint, ctx *Context) *Poly {
	var (
		builder = NewBuilder(ctx)
		exps    = make([]uint64, ctx.nvars)
		c       big.Int
	)
	//
	for i := len(u) - 1; i >= 0; i-- {
		if u[i].IsZero() {
			continue
		}
		//
		u[i].BigInt(&c)
		exps[v] = uint64(i)
		//
		if err := builder.Push(&c, exps); err != nil {
			panic(err)
		}
	}
	//
	return builder.Build()
}

// modReducePoly returns a copy of p with every coefficient reduced into
// [0, p) modulo the goldilocks prime.
func modReducePoly(p *Poly, ctx *Context) *Poly {
	return modReduceInPlace(p.Clone(ctx), ctx)
}

// modReduceInPlace reduces every coefficient of p modulo the goldilocks
// prime, dropping terms which vanish.
func modReduceInPlace(p *Poly, ctx *Context) *Poly {
	var (
		mod = goldilocks.Modulus()
		l   = ctx.layoutFor(p.bits)
		out = uint(0)
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		p.coeffs[i].Mod(&p.coeffs[i], mod)
		//
		if p.coeffs[i].Sign() == 0 {
			continue
		}
		//
		if out != i {
			p.coeffs[out].Set(&p.coeffs[i])
			copy(p.exp(out, l), p.exp(i, l))
		}
		//
		out++
	}
	//
	p.Resize(out, ctx)
	//
	return p
}

// modScalePoly multiplies every coefficient by a field element, mod p.
func modScalePoly(p *Poly, c goldilocks.Element, ctx *Context) *Poly {
	var s big.Int
	c.BigInt(&s)
	//
	return modReduceInPlace(NewPoly(ctx).MulScalar(p, &s, ctx), ctx)
}

// liftPoly maps mod-p coefficients back to integers of least absolute value.
func liftPoly(p *Poly, ctx *Context) *Poly {
	var (
		res     = p.Clone(ctx)
		l       = ctx.layoutFor(res.bits)
		element goldilocks.Element
		out     = uint(0)
	)
	//
	for i := uint(0); i < res.Len(); i++ {
		element.SetBigInt(&res.coeffs[i])
		symmetricLift(&res.coeffs[i], &element)
		//
		if res.coeffs[i].Sign() == 0 {
			continue
		}
		//
		if out != i {
			res.coeffs[out].Set(&res.coeffs[i])
			copy(res.exp(out, l), res.exp(i, l))
		}
		//
		out++
	}
	//
	res.Resize(out, ctx)
	//
	return res
}
