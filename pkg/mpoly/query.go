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

// Degree returns the degree of this polynomial in the given variable, with -1
// for the zero polynomial.  Exponents are bounded by the packed encoding, so
// the machine integer never overflows.
func (p *Poly) Degree(v uint, ctx *Context) int64 {
	if p.IsZero() {
		return -1
	}
	//
	var (
		l   = ctx.layoutFor(p.bits)
		max = uint64(0)
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		if e := l.exponent(p.exp(i, l), v); e > max {
			max = e
		}
	}
	//
	return int64(max)
}

// DegreeBig returns the degree in the given variable as an
// arbitrary-precision integer, with -1 for the zero polynomial.
func (p *Poly) DegreeBig(v uint, ctx *Context) *big.Int {
	return big.NewInt(p.Degree(v, ctx))
}

// Degrees returns the degree in every variable, each -1 for the zero
// polynomial.
func (p *Poly) Degrees(ctx *Context) []int64 {
	degs := make([]int64, ctx.nvars)
	//
	for v := uint(0); v < ctx.nvars; v++ {
		degs[v] = p.Degree(v, ctx)
	}
	//
	return degs
}

// TotalDegree returns the total degree of this polynomial, with -1 for the
// zero polynomial.
func (p *Poly) TotalDegree(ctx *Context) int64 {
	if p.IsZero() {
		return -1
	}
	//
	_, total := p.maxDegrees(ctx)
	//
	return int64(total)
}

// TotalDegreeBig returns the total degree as an arbitrary-precision integer,
// with -1 for the zero polynomial.
func (p *Poly) TotalDegreeBig(ctx *Context) *big.Int {
	return big.NewInt(p.TotalDegree(ctx))
}

// UsedVars reports, per variable, whether any term has a nonzero exponent in
// it.
func (p *Poly) UsedVars(ctx *Context) []bool {
	var (
		l    = ctx.layoutFor(p.bits)
		used = make([]bool, ctx.nvars)
		exps = make([]uint64, ctx.nvars)
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		l.unpack(exps, p.exp(i, l))
		//
		for v, e := range exps {
			used[v] = used[v] || e > 0
		}
	}
	//
	return used
}

// MaxCoeffBits returns the smallest bit width holding the magnitude of every
// coefficient.
func (p *Poly) MaxCoeffBits() uint {
	var max uint
	//
	for i := range p.coeffs {
		if n := uint(p.coeffs[i].BitLen()); n > max {
			max = n
		}
	}
	//
	return max
}

// IsConst reports whether this polynomial is an integer constant, including
// zero.
func (p *Poly) IsConst(ctx *Context) bool {
	if p.IsZero() {
		return true
	}
	//
	l := ctx.layoutFor(p.bits)
	//
	return p.Len() == 1 && l.isZero(p.exp(0, l))
}

// Const returns the value of a constant polynomial, reporting failure for
// anything with a non-trivial term.
func (p *Poly) Const(ctx *Context) (*big.Int, bool) {
	if !p.IsConst(ctx) {
		return nil, false
	} else if p.IsZero() {
		return new(big.Int), true
	}
	//
	return p.Coeff(0), true
}

// CoeffOf returns the coefficient of the given monomial, a one-term
// polynomial with coefficient one, or zero when no term matches.
func (p *Poly) CoeffOf(monomial *Poly, ctx *Context) *big.Int {
	if monomial.Len() != 1 {
		panic("coefficient query requires a monomial")
	}
	//
	a, m, l := sameBits(p, monomial, ctx)
	//
	for i := uint(0); i < a.Len(); i++ {
		if l.equal(a.exp(i, l), m.exp(0, l)) {
			return new(big.Int).Set(&a.coeffs[i])
		}
	}
	//
	return new(big.Int)
}
