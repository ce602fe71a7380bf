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

// sameBits returns views of a and b packed at a common field width, cloning
// and widening the narrower operand when the widths differ.
func sameBits(a, b *Poly, ctx *Context) (*Poly, *Poly, *layout) {
	if a.bits < b.bits {
		a = a.Clone(ctx)
		a.FitBits(b.bits, ctx)
	} else if b.bits < a.bits {
		b = b.Clone(ctx)
		b.FitBits(a.bits, ctx)
	}
	//
	return a, b, ctx.layoutFor(a.bits)
}

// Add sets p to the sum a + b and returns p, which may alias either operand.
// Both term lists are canonical, so a single merge pass comparing exponents
// under the ordering produces a canonical result with no post-sort.
func (p *Poly) Add(a, b *Poly, ctx *Context) *Poly {
	return p.fmaScalar(a, bigOne, b, bigOne, ctx)
}

// Sub sets p to the difference a - b and returns p, which may alias either
// operand.
func (p *Poly) Sub(a, b *Poly, ctx *Context) *Poly {
	return p.fmaScalar(a, bigOne, b, bigNegOne, ctx)
}

// Neg sets p to the negation of a and returns p, which may alias a.
// Coefficient signs flip; the term order is unchanged.
func (p *Poly) Neg(a *Poly, ctx *Context) *Poly {
	p.Set(a, ctx)
	//
	for i := range p.coeffs {
		p.coeffs[i].Neg(&p.coeffs[i])
	}
	//
	return p
}

// MulScalar sets p to a scaled by the integer c and returns p, which may
// alias a.
func (p *Poly) MulScalar(a *Poly, c *big.Int, ctx *Context) *Poly {
	if c.Sign() == 0 {
		return p.SetZero()
	}
	//
	p.Set(a, ctx)
	//
	for i := range p.coeffs {
		p.coeffs[i].Mul(&p.coeffs[i], c)
	}
	//
	return p
}

// DivExactScalar sets p to a divided by the integer c, which must divide
// every coefficient of a exactly; this is the caller's contract and is not
// checked.  p may alias a.
func (p *Poly) DivExactScalar(a *Poly, c *big.Int, ctx *Context) *Poly {
	p.Set(a, ctx)
	//
	for i := range p.coeffs {
		p.coeffs[i].Quo(&p.coeffs[i], c)
	}
	//
	return p
}

// FMA sets p to the fused combination a*c + b*d for integer scalars c and d,
// in one merge pass.  p may alias either operand.
func (p *Poly) FMA(a *Poly, c *big.Int, b *Poly, d *big.Int, ctx *Context) *Poly {
	return p.fmaScalar(a, c, b, d, ctx)
}

// fmaScalar merges the sorted term lists of a*c and b*d, combining
// equal-exponent terms and dropping cancellations.  Output is canonical by
// construction.
func (p *Poly) fmaScalar(a *Poly, c *big.Int, b *Poly, d *big.Int, ctx *Context) *Poly {
	if c.Sign() == 0 {
		return p.MulScalar(b, d, ctx)
	} else if d.Sign() == 0 {
		return p.MulScalar(a, c, ctx)
	}
	//
	a, b, l := sameBits(a, b, ctx)
	//
	var (
		res = NewPolyWithCapacityBits(ctx, a.Len()+b.Len(), a.bits)
		i   = uint(0)
		j   = uint(0)
		t   big.Int
	)
	//
	for i < a.Len() && j < b.Len() {
		switch l.cmp(a.exp(i, l), b.exp(j, l)) {
		case 1:
			t.Mul(&a.coeffs[i], c)
			res.pushTerm(&t, a.exp(i, l))
			i++
		case -1:
			t.Mul(&b.coeffs[j], d)
			res.pushTerm(&t, b.exp(j, l))
			j++
		default:
			var u big.Int
			//
			t.Mul(&a.coeffs[i], c)
			u.Mul(&b.coeffs[j], d)
			t.Add(&t, &u)
			// Skip cancellations
			if t.Sign() != 0 {
				res.pushTerm(&t, a.exp(i, l))
			}
			//
			i++
			j++
		}
	}
	// Drain leftovers
	for ; i < a.Len(); i++ {
		t.Mul(&a.coeffs[i], c)
		res.pushTerm(&t, a.exp(i, l))
	}
	//
	for ; j < b.Len(); j++ {
		t.Mul(&b.coeffs[j], d)
		res.pushTerm(&t, b.exp(j, l))
	}
	//
	p.Swap(res)
	//
	return p
}

var bigNegOne = big.NewInt(-1)
