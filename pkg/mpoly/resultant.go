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
	"github.com/pkg/errors"
)

// Resultant sets p to the resultant of a and b with respect to variable v,
// eliminating v.  It follows the subresultant remainder sequence with
// Collins' bookkeeping, so all intermediate divisions are exact.
func (p *Poly) Resultant(a, b *Poly, v uint, ctx *Context) error {
	if v >= ctx.nvars {
		return errors.Wrapf(ErrBadVariable, "resultant in variable %d of %d", v, ctx.nvars)
	}
	//
	if a.IsZero() || b.IsZero() {
		p.SetZero()
		//
		return nil
	}
	//
	ua, err := ToUnivar(a, v, ctx)
	if err != nil {
		return err
	}
	//
	ub, err := ToUnivar(b, v, ctx)
	if err != nil {
		return err
	}
	//
	p.Swap(resultantPRS(ua, ub, ctx))
	//
	return nil
}

// Discriminant sets p to the discriminant of a with respect to v, using
// disc(a) = (-1)^(d(d-1)/2) res(a, a') / lc(a).
func (p *Poly) Discriminant(a *Poly, v uint, ctx *Context) error {
	d := a.Degree(v, ctx)
	//
	if d < 1 {
		p.SetZero()
		//
		return nil
	}
	//
	var da Poly
	if err := da.Derivative(a, v, ctx); err != nil {
		return err
	}
	//
	res := NewPoly(ctx)
	if err := res.Resultant(a, &da, v, ctx); err != nil {
		return err
	}
	//
	ua, err := ToUnivar(a, v, ctx)
	if err != nil {
		return err
	}
	//
	disc := polyDivExact(res, uLead(ua), ctx)
	//
	if (d*(d-1)/2)%2 == 1 {
		disc.Neg(disc, ctx)
	}
	//
	p.Swap(disc)
	//
	return nil
}

// resultantPRS computes the resultant of two nonzero univariate views over
// the polynomial coefficient ring.
func resultantPRS(ua, ub *Univar, ctx *Context) *Poly {
	var (
		one  = NewPoly(ctx).SetOne(ctx)
		sign = false
	)
	//
	if uDeg(ua) < uDeg(ub) {
		if uDeg(ua)%2 == 1 && uDeg(ub)%2 == 1 {
			sign = !sign
		}
		//
		ua, ub = ub, ua
	}
	// Contents split off so the remainder sequence runs on primitive parts
	contA := uContent(ua, ctx)
	contB := uContent(ub, ctx)
	//
	var (
		fa = uDivExact(ua, contA, ctx)
		fb = uDivExact(ub, contB, ctx)
		t  = NewPoly(ctx)
		ca = NewPoly(ctx)
		cb = NewPoly(ctx)
	)
	// t = cont(A)^deg(B) * cont(B)^deg(A)
	if err := ca.Pow(contA, int64(uDeg(ub)), ctx); err != nil {
		panic(err)
	}
	//
	if err := cb.Pow(contB, int64(uDeg(ua)), ctx); err != nil {
		panic(err)
	}
	//
	t.Mul(ca, cb, ctx)
	//
	g, h := one, one
	//
	for uDeg(fb) > 0 {
		delta := uDeg(fa) - uDeg(fb)
		//
		if uDeg(fa)%2 == 1 && uDeg(fb)%2 == 1 {
			sign = !sign
		}
		//
		r := uPseudoRem(fa, fb, delta, ctx)
		if r.Len() == 0 {
			// A common root in v forces a zero resultant
			return NewPoly(ctx)
		}
		//
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
		fa = fb
		fb = uDivExact(r, divisor, ctx)
		g = uLead(fa)
		//
		switch {
		case delta == 1:
			h = g
		case delta > 1:
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
	// res(fa, fb) with deg(fb) == 0 is h^(1-deg fa) * fb^(deg fa)
	var (
		lead = uLead(fb)
		d    = uDeg(fa)
		num  = NewPoly(ctx)
		res  *Poly
	)
	//
	if err := num.Pow(lead, int64(d), ctx); err != nil {
		panic(err)
	}
	//
	if d <= 1 {
		res = num
	} else {
		hd := NewPoly(ctx)
		if err := hd.Pow(h, int64(d-1), ctx); err != nil {
			panic(err)
		}
		//
		res = polyDivExact(num, hd, ctx)
	}
	//
	res = NewPoly(ctx).Mul(res, t, ctx)
	//
	if sign {
		res.Neg(res, ctx)
	}
	//
	return res
}
