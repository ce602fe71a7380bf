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

// DividesArray attempts the exact division a / b using the dense array
// strategy, mirroring the dense multiplication strategy for small
// bounded-degree operands.  Both operands are spread into a mixed-radix
// coefficient array sized by the dividend's degree bounds and divided as dense
// sequences.  ok reports whether the strategy could be applied at all (the
// array fits the configured limit and the result is certifiable); when ok
// holds, divides reports the outcome and q holds the quotient on success.
// When ok is false the caller should fall back to the heap strategy.
func DividesArray(q, a, b *Poly, ctx *Context) (divides bool, ok bool) {
	if b.IsZero() {
		return a.IsZero(), true
	} else if a.IsZero() {
		q.SetZero()
		return true, true
	}
	//
	var (
		da, _ = a.maxDegrees(ctx)
		db, _ = b.maxDegrees(ctx)
		dims  = make([]uint64, ctx.nvars)
		size  = uint64(1)
	)
	// Degree bound check doubles as a quick non-divisibility test
	for v := range dims {
		if db[v] > da[v] {
			return false, true
		}
		//
		dims[v] = da[v] + 1
		//
		if size > ArrayMulLimit/dims[v] {
			return false, false
		}
		//
		size *= dims[v]
	}
	//
	var (
		strides = make([]uint64, ctx.nvars)
		la      = ctx.layoutFor(a.bits)
		lb      = ctx.layoutFor(b.bits)
	)
	//
	stride := uint64(1)
	for v := int(ctx.nvars) - 1; v >= 0; v-- {
		strides[v] = stride
		stride *= dims[v]
	}
	// Spread both operands
	denseA := spread(a, la, strides, size, ctx)
	denseB := spread(b, lb, strides, size, ctx)
	// Locate the dense leading entry of b
	lead := int64(-1)
	for i := int64(size) - 1; i >= 0; i-- {
		if denseB[i].Sign() != 0 {
			lead = i
			break
		}
	}
	//
	var (
		quot    = make([]big.Int, size)
		t, r    big.Int
		maxQ    = make([]uint64, ctx.nvars)
		builder = NewBuilderWithCapacity(ctx, a.Len())
		exps    = make([]uint64, ctx.nvars)
	)
	// Dense long division, descending over the dividend
	for i := int64(size) - 1; i >= 0; i-- {
		if denseA[i].Sign() == 0 {
			continue
		}
		//
		if i < lead {
			return false, true
		}
		//
		idx := i - lead
		t.QuoRem(&denseA[i], &denseB[lead], &r)
		//
		if r.Sign() != 0 {
			return false, true
		}
		//
		quot[idx].Set(&t)
		// Cancel the quotient term against the dividend
		for j := int64(0); j <= lead; j++ {
			if denseB[j].Sign() == 0 {
				continue
			}
			//
			r.Mul(&t, &denseB[j])
			denseA[idx+j].Sub(&denseA[idx+j], &r)
		}
	}
	// Decode quotient, tracking per-variable degree bounds
	for idx := uint64(0); idx < size; idx++ {
		if quot[idx].Sign() == 0 {
			continue
		}
		//
		rem := idx
		for v := range exps {
			exps[v] = rem / strides[v]
			rem %= strides[v]
			//
			if exps[v] > maxQ[v] {
				maxQ[v] = exps[v]
			}
		}
		//
		if err := builder.Push(&quot[idx], exps); err != nil {
			panic(err)
		}
	}
	// The dense division is faithful only when the product of quotient and
	// divisor cannot carry between variable slots; otherwise fall back.
	for v := range maxQ {
		if maxQ[v]+db[v] > da[v] {
			return false, false
		}
	}
	//
	q.Swap(builder.Build())
	//
	return true, true
}

// spread writes a sparse polynomial into a dense mixed-radix coefficient
// array.
func spread(p *Poly, l *layout, strides []uint64, size uint64, ctx *Context) []big.Int {
	var (
		dense = make([]big.Int, size)
		exps  = make([]uint64, ctx.nvars)
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		l.unpack(exps, p.exp(i, l))
		//
		var idx uint64
		for v, e := range exps {
			idx += e * strides[v]
		}
		//
		dense[idx].Set(&p.coeffs[i])
	}
	//
	return dense
}
