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

// Evaluate substitutes an integer value for every variable, returning the
// resulting integer.  It reports failure only when the value count does not
// match the context; coefficient growth is absorbed by the big integers.
func (p *Poly) Evaluate(vals []*big.Int, ctx *Context) (*big.Int, bool) {
	if uint(len(vals)) != ctx.nvars {
		return nil, false
	}
	//
	var (
		l      = ctx.layoutFor(p.bits)
		exps   = make([]uint64, ctx.nvars)
		result = new(big.Int)
		term   big.Int
		pow    big.Int
		e      big.Int
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		l.unpack(exps, p.exp(i, l))
		term.Set(&p.coeffs[i])
		//
		for v, ev := range exps {
			if ev == 0 {
				continue
			}
			//
			e.SetUint64(ev)
			pow.Exp(vals[v], &e, nil)
			term.Mul(&term, &pow)
		}
		//
		result.Add(result, &term)
	}
	//
	return result, true
}

// EvaluateVar substitutes an integer value for a single variable, setting p
// to the resulting polynomial in the remaining variables.  It reports failure
// on an out-of-range variable.  p may alias a.
func (p *Poly) EvaluateVar(a *Poly, v uint, val *big.Int, ctx *Context) bool {
	if v >= ctx.nvars {
		return false
	}
	//
	var (
		l       = ctx.layoutFor(a.bits)
		exps    = make([]uint64, ctx.nvars)
		builder = NewBuilderWithCapacity(ctx, a.Len())
		coeff   big.Int
		pow     big.Int
		e       big.Int
	)
	//
	for i := uint(0); i < a.Len(); i++ {
		l.unpack(exps, a.exp(i, l))
		coeff.Set(&a.coeffs[i])
		//
		if exps[v] != 0 {
			e.SetUint64(exps[v])
			pow.Exp(val, &e, nil)
			coeff.Mul(&coeff, &pow)
			exps[v] = 0
		}
		//
		if coeff.Sign() == 0 {
			continue
		}
		//
		if err := builder.Push(&coeff, exps); err != nil {
			panic(err)
		}
	}
	//
	p.Swap(builder.Build())
	//
	return true
}

// Compose substitutes a polynomial for every variable of a, setting p to the
// composition.  The substituted polynomials live under ctxOut, which may
// differ from a's context in variable count; failure is reported when the
// argument count does not match a's context.
func (p *Poly) Compose(a *Poly, args []*Poly, ctxA *Context, ctxOut *Context) bool {
	if uint(len(args)) != ctxA.nvars {
		return false
	}
	//
	var (
		l    = ctxA.layoutFor(a.bits)
		exps = make([]uint64, ctxA.nvars)
		res  = NewPoly(ctxOut)
		term = NewPoly(ctxOut)
		pow  = NewPoly(ctxOut)
	)
	//
	for i := uint(0); i < a.Len(); i++ {
		l.unpack(exps, a.exp(i, l))
		term.SetInt(&a.coeffs[i], ctxOut)
		//
		for v, ev := range exps {
			if ev == 0 {
				continue
			}
			// Exponents certainly fit int64 given the packed bound
			if err := pow.Pow(args[v], int64(ev), ctxOut); err != nil {
				return false
			}
			//
			term.Mul(term, pow, ctxOut)
		}
		//
		res.Add(res, term, ctxOut)
	}
	//
	p.Swap(res)
	//
	return true
}
