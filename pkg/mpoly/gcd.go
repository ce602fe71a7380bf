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
	log "github.com/sirupsen/logrus"
)

// GCD sets p to the greatest common divisor of a and b, normalised to be
// primitive with a positive leading coefficient; the GCD of two zero
// polynomials is zero.  The dispatcher tries cheap shortcuts first, then a
// modular strategy matched to the operand shape, and falls back to the
// subresultant remainder sequence which always succeeds.
func (p *Poly) GCD(a, b *Poly, ctx *Context) *Poly {
	switch {
	case a.IsZero() && b.IsZero():
		return p.SetZero()
	case a.IsZero():
		g := b.Clone(ctx)
		gcdNormalise(g, ctx)
		p.Swap(g)
		//
		return p
	case b.IsZero():
		g := a.Clone(ctx)
		gcdNormalise(g, ctx)
		p.Swap(g)
		//
		return p
	case a.IsConst(ctx) || b.IsConst(ctx):
		// Constant GCDs normalise to one
		return p.SetOne(ctx)
	}
	// Single-term operands reduce to exponent minima
	if a.Len() == 1 || b.Len() == 1 {
		return p.monomialGCD(a, b, ctx)
	}
	// A cheap modular probe settles trivial GCDs outright
	if probes, ok := probeDegrees(a, b, ctx); ok && allZero(probes) {
		log.Debugf("gcd: trivial by modular probe")
		return p.SetOne(ctx)
	}
	//
	common := commonVars(a, b, ctx)
	//
	switch {
	case len(common) == 0:
		// Disjoint supports share at most a constant
		return p.SetOne(ctx)
	case len(common) == 1:
		if _, univar := soleVariable(a, b, ctx); univar && p.GCDHensel(a, b, ctx) {
			log.Debugf("gcd: solved by hensel lift")
			return p
		}
	case gcdLooksDense(a, b, common, ctx):
		if p.GCDBrown(a, b, ctx) {
			log.Debugf("gcd: solved by brown interpolation")
			return p
		}
		//
		if p.GCDZippel(a, b, ctx) {
			log.Debugf("gcd: solved by zippel interpolation")
			return p
		}
	default:
		if p.GCDZippel(a, b, ctx) {
			log.Debugf("gcd: solved by zippel interpolation")
			return p
		}
		//
		if p.GCDBrown(a, b, ctx) {
			log.Debugf("gcd: solved by brown interpolation")
			return p
		}
	}
	//
	log.Debugf("gcd: falling back to subresultant remainder sequence")
	//
	return p.GCDSubresultant(a, b, ctx)
}

// GCDCofactors computes g = gcd(a, b) together with the exact cofactors
// abar = a/g and bbar = b/g in one call.
func GCDCofactors(g, abar, bbar, a, b *Poly, ctx *Context) {
	g.GCD(a, b, ctx)
	//
	if g.IsZero() {
		abar.SetZero()
		bbar.SetZero()
		//
		return
	}
	//
	if !Divides(abar, a, g, ctx) || !Divides(bbar, b, g, ctx) {
		// The normalised GCD divides both operands by construction
		panic("cofactor division failed")
	}
}

// monomialGCD handles the case where at least one operand is a single term:
// the GCD exponent is the per-variable minimum over all terms.
func (p *Poly) monomialGCD(a, b *Poly, ctx *Context) *Poly {
	var (
		min  = make([]uint64, ctx.nvars)
		exps = make([]uint64, ctx.nvars)
	)
	//
	for v := range min {
		min[v] = maxExponent
	}
	//
	for _, op := range []*Poly{a, b} {
		l := ctx.layoutFor(op.bits)
		//
		for i := uint(0); i < op.Len(); i++ {
			l.unpack(exps, op.exp(i, l))
			//
			for v := range min {
				if exps[v] < min[v] {
					min[v] = exps[v]
				}
			}
		}
	}
	//
	builder := NewBuilder(ctx)
	if err := builder.PushInt64(1, min); err != nil {
		panic(err)
	}
	//
	p.Swap(builder.Build())
	//
	return p
}

// gcdLooksDense estimates whether the operands are dense enough for Brown's
// strategy to beat sparse interpolation.
func gcdLooksDense(a, b *Poly, common []uint, ctx *Context) bool {
	size := uint64(1)
	//
	for _, v := range common {
		d := a.Degree(v, ctx)
		if db := b.Degree(v, ctx); db < d {
			d = db
		}
		//
		if size > modProbeLimit/uint64(d+1) {
			return false
		}
		//
		size *= uint64(d + 1)
	}
	//
	return size <= 8*uint64(a.Len()+b.Len())
}

func allZero(probes []int64) bool {
	for _, p := range probes {
		if p != 0 {
			return false
		}
	}
	//
	return true
}
