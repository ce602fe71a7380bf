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

// Derivative sets p to the partial derivative of a with respect to variable v
// and returns an error on an out-of-range variable.  Terms free of v vanish;
// the rest shift by the same unit vector, so the result is canonical without
// re-sorting.  p may alias a.
func (p *Poly) Derivative(a *Poly, v uint, ctx *Context) error {
	if v >= ctx.nvars {
		return ErrBadVariable
	}
	//
	var (
		l     = ctx.layoutFor(a.bits)
		res   = NewPolyWithCapacityBits(ctx, a.Len(), a.bits)
		exps  = make([]uint64, ctx.nvars)
		coeff big.Int
		e     big.Int
	)
	//
	for i := uint(0); i < a.Len(); i++ {
		l.unpack(exps, a.exp(i, l))
		//
		if exps[v] == 0 {
			continue
		}
		//
		e.SetUint64(exps[v])
		coeff.Mul(&a.coeffs[i], &e)
		exps[v]--
		//
		packed := make([]uint64, l.words)
		l.pack(packed, exps)
		res.pushTerm(&coeff, packed)
	}
	//
	p.Swap(res)
	//
	return nil
}

// Integral sets p to an antiderivative of a with respect to variable v and
// sets scale to the smallest positive integer such that p is the exact
// antiderivative of scale*a with integer coefficients.  All terms shift by
// the same unit vector, so the result is canonical without re-sorting.  p may
// alias a.
func (p *Poly) Integral(scale *big.Int, a *Poly, v uint, ctx *Context) error {
	if v >= ctx.nvars {
		return ErrBadVariable
	}
	//
	var (
		l    = ctx.layoutFor(a.bits)
		exps = make([]uint64, ctx.nvars)
		d    big.Int
		g    big.Int
		f    big.Int
	)
	// First pass: the common denominator making every division exact
	scale.SetInt64(1)
	//
	for i := uint(0); i < a.Len(); i++ {
		d.SetUint64(l.exponent(a.exp(i, l), v) + 1)
		g.GCD(nil, nil, absInt(&a.coeffs[i]), &d)
		f.Quo(&d, &g)
		// scale = lcm(scale, f)
		g.GCD(nil, nil, scale, &f)
		f.Quo(&f, &g)
		scale.Mul(scale, &f)
	}
	// Second pass: emit scaled terms with incremented exponents
	va, total := a.maxDegrees(ctx)
	//
	need := total + 1
	if va[v]+1 > need {
		need = va[v] + 1
	}
	//
	var (
		to    = ctx.layoutFor(maxUint(bitsFor(need), a.bits))
		res   = NewPolyWithCapacityBits(ctx, a.Len(), to.bits)
		coeff big.Int
	)
	//
	for i := uint(0); i < a.Len(); i++ {
		l.unpack(exps, a.exp(i, l))
		exps[v]++
		//
		d.SetUint64(exps[v])
		coeff.Mul(&a.coeffs[i], scale)
		coeff.Quo(&coeff, &d)
		//
		packed := make([]uint64, to.words)
		to.pack(packed, exps)
		res.pushTerm(&coeff, packed)
	}
	//
	p.Swap(res)
	//
	return nil
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	//
	return b
}
