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

import "sort"

// Univar is the decomposition of a multivariate polynomial along one chosen
// variable: a sequence of (exponent, coefficient) pairs with strictly
// decreasing exponents, no duplicates and no zero coefficients, where each
// coefficient is a polynomial free of the chosen variable.  This is the
// standard device letting multivariate algorithms recurse one variable at a
// time.
type Univar struct {
	// Variable this decomposition is taken in.
	Var uint
	// Strictly decreasing exponents of the chosen variable.
	Exps []uint64
	// Coefficient polynomial for each exponent.
	Coeffs []*Poly
}

// Len returns the number of (exponent, coefficient) pairs.
func (u *Univar) Len() uint {
	return uint(len(u.Exps))
}

// Degree returns the exponent of the leading pair, with -1 when empty.
func (u *Univar) Degree() int64 {
	if len(u.Exps) == 0 {
		return -1
	}
	//
	return int64(u.Exps[0])
}

// ToUnivar decomposes a polynomial along the given variable, partitioning its
// terms by their exponent in that variable and stripping that exponent from
// each group.
func ToUnivar(a *Poly, v uint, ctx *Context) (*Univar, error) {
	if v >= ctx.nvars {
		return nil, ErrBadVariable
	}
	//
	var (
		l      = ctx.layoutFor(a.bits)
		exps   = make([]uint64, ctx.nvars)
		groups = make(map[uint64]*Builder)
		u      = Univar{Var: v}
	)
	//
	for i := uint(0); i < a.Len(); i++ {
		l.unpack(exps, a.exp(i, l))
		//
		e := exps[v]
		exps[v] = 0
		//
		builder, ok := groups[e]
		if !ok {
			builder = NewBuilder(ctx)
			groups[e] = builder
			u.Exps = append(u.Exps, e)
		}
		//
		if err := builder.Push(&a.coeffs[i], exps); err != nil {
			return nil, err
		}
	}
	// Descending exponent order
	sort.Slice(u.Exps, func(i, j int) bool { return u.Exps[i] > u.Exps[j] })
	//
	u.Coeffs = make([]*Poly, len(u.Exps))
	for i, e := range u.Exps {
		u.Coeffs[i] = groups[e].Build()
	}
	//
	return &u, nil
}

// FromUnivar reconstructs the multivariate polynomial from a decomposition by
// re-inserting the stripped exponent into each group.  Groups and their terms
// are individually sorted, but only degree-compatible orderings keep the
// concatenation sorted, so a final normalisation pass is applied throughout.
func FromUnivar(u *Univar, ctx *Context) (*Poly, error) {
	if u.Var >= ctx.nvars {
		return nil, ErrBadVariable
	}
	//
	var (
		builder = NewBuilder(ctx)
		exps    = make([]uint64, ctx.nvars)
	)
	//
	for g, coeff := range u.Coeffs {
		var (
			l = ctx.layoutFor(coeff.bits)
		)
		//
		for i := uint(0); i < coeff.Len(); i++ {
			l.unpack(exps, coeff.exp(i, l))
			exps[u.Var] = u.Exps[g]
			//
			if err := builder.Push(&coeff.coeffs[i], exps); err != nil {
				return nil, err
			}
		}
	}
	//
	return builder.Build(), nil
}
