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

// Sqrt attempts to set p to a polynomial whose square is a, returning false
// when no such polynomial exists over the integers.  On failure p's contents
// are unspecified.
func (p *Poly) Sqrt(a *Poly, ctx *Context) bool {
	return p.SqrtHeap(a, ctx)
}

// SqrtHeap is the incremental square root kernel: starting from the square
// root of the leading term, it repeatedly divides the leading term of the
// deficit a - s*s by twice the root's leading term to obtain the next root
// term, updating the deficit through the heap multiplication kernel.  Any
// inexact division refutes squareness.  Over the integers a square of t terms
// has a root of at most (t+1)/2 terms, which bounds the iteration.
func (p *Poly) SqrtHeap(a *Poly, ctx *Context) bool {
	if a.IsZero() {
		p.SetZero()
		return true
	}
	//
	root, ok := leadSqrt(a, ctx)
	if !ok {
		return false
	}
	//
	var (
		// Deficit a - root^2
		deficit = NewPoly(ctx)
		twoLead = root.Term(0, ctx)
		t       = NewPoly(ctx)
		u       = NewPoly(ctx)
		bound   = (a.Len() + 1) / 2
	)
	//
	twoLead.MulScalar(twoLead, big.NewInt(2), ctx)
	deficit.Mul(root, root, ctx)
	deficit.Sub(a, deficit, ctx)
	//
	for !deficit.IsZero() {
		if root.Len() > bound {
			return false
		}
		// Next root term: lt(deficit) / (2*lt(root)), which must be exact
		if !Divides(t, deficit.Term(0, ctx), twoLead, ctx) {
			return false
		}
		// deficit -= 2*root*t + t^2
		u.Mul(root, t, ctx)
		u.MulScalar(u, big.NewInt(2), ctx)
		deficit.Sub(deficit, u, ctx)
		u.Mul(t, t, ctx)
		deficit.Sub(deficit, u, ctx)
		//
		root.Add(root, t, ctx)
	}
	//
	p.Swap(root)
	//
	return true
}

// IsSquare reports whether a is the square of some integer polynomial.  Cheap
// necessary conditions are checked before committing to the full kernel.
func (a *Poly) IsSquare(ctx *Context) bool {
	if a.IsZero() {
		return true
	}
	//
	if _, ok := leadSqrt(a, ctx); !ok {
		return false
	}
	// Trailing term must be a square as well
	var (
		last  = a.Len() - 1
		texps = a.Exponents(last, ctx)
	)
	//
	for _, e := range texps {
		if e%2 != 0 {
			return false
		}
	}
	//
	if a.coeffs[last].Sign() < 0 {
		return false
	}
	//
	var root, check big.Int
	//
	root.Sqrt(&a.coeffs[last])
	check.Mul(&root, &root)
	//
	if check.Cmp(&a.coeffs[last]) != 0 {
		return false
	}
	//
	return NewPoly(ctx).SqrtHeap(a, ctx)
}

// leadSqrt extracts the square root of the leading term of a nonzero
// polynomial, failing when the leading coefficient is not a perfect square or
// any leading exponent is odd.
func leadSqrt(a *Poly, ctx *Context) (*Poly, bool) {
	var (
		exps  = a.Exponents(0, ctx)
		coeff = a.Coeff(0)
		root  big.Int
		check big.Int
	)
	//
	if coeff.Sign() < 0 {
		return nil, false
	}
	//
	root.Sqrt(coeff)
	check.Mul(&root, &root)
	//
	if check.Cmp(coeff) != 0 {
		return nil, false
	}
	//
	for v := range exps {
		if exps[v]%2 != 0 {
			return nil, false
		}
		//
		exps[v] /= 2
	}
	//
	builder := NewBuilderWithCapacity(ctx, 1)
	//
	if err := builder.Push(&root, exps); err != nil {
		panic(err)
	}
	//
	return builder.Build(), true
}
