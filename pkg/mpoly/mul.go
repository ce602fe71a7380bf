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
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Multiplication strategy thresholds.  These are performance heuristics, not
// semantics: every strategy produces the identical canonical product.
var (
	// ArrayMulLimit bounds the number of slots the dense array strategy may
	// allocate.
	ArrayMulLimit = uint64(1) << 22
	// ArrayMulDensity is the largest acceptable ratio between dense array size
	// and sparse operand size.
	ArrayMulDensity = uint64(8)
	// ThreadedMinTerms is the smallest operand size considered worth
	// partitioning across goroutines.
	ThreadedMinTerms = uint(64)
	// threadedChunk is the number of operand terms per parallel chunk.  Fixed
	// by input size rather than worker count, so results and term count are
	// identical whatever the parallelism.
	threadedChunk = uint(64)
)

// Mul sets p to the product a * b, selecting a strategy from the shape of the
// operands, and returns p.  p may alias either operand.
func (p *Poly) Mul(a, b *Poly, ctx *Context) *Poly {
	if a.IsZero() || b.IsZero() {
		return p.SetZero()
	}
	//
	if dims, size, ok := arrayMulSize(a, b, ctx); ok && size <= ArrayMulDensity*uint64(a.Len()+b.Len()) {
		return p.mulArray(a, b, dims, size, ctx)
	}
	//
	if a.Len() >= ThreadedMinTerms && b.Len() >= ThreadedMinTerms && runtime.GOMAXPROCS(0) > 1 {
		return p.MulThreaded(a, b, ctx)
	}
	//
	return p.MulJohnson(a, b, ctx)
}

// mulFit widens copies of both operands so that every exponent (and total
// degree when graded) of the product is representable, preempting overflow
// before any packed addition takes place.  Products beyond the packed ceiling
// panic ErrOverflow rather than wrapping into the reserved bit.
func mulFit(a, b *Poly, ctx *Context) (*Poly, *Poly, *layout) {
	var (
		va, ta = a.maxDegrees(ctx)
		vb, tb = b.maxDegrees(ctx)
		need   = uint64(0)
	)
	//
	for v := range va {
		if d := va[v] + vb[v]; d > need {
			need = d
		}
	}
	//
	if ctx.ordering.Graded() && ta+tb > need {
		need = ta + tb
	}
	//
	if need > maxExponent {
		panic(ErrOverflow)
	}
	//
	bits := bitsFor(need)
	//
	if a.bits < bits {
		a = a.Clone(ctx)
		a.FitBits(bits, ctx)
	}
	//
	if b.bits < bits {
		b = b.Clone(ctx)
		b.FitBits(bits, ctx)
	}
	//
	a, b, l := sameBits(a, b, ctx)
	//
	return a, b, l
}

// maxDegrees returns the maximum per-variable exponent and maximum total
// degree over all terms.
func (p *Poly) maxDegrees(ctx *Context) ([]uint64, uint64) {
	var (
		l     = ctx.layoutFor(p.bits)
		vars  = make([]uint64, ctx.nvars)
		total = uint64(0)
		exps  = make([]uint64, ctx.nvars)
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		l.unpack(exps, p.exp(i, l))
		//
		var deg uint64
		//
		for v, e := range exps {
			deg += e
			//
			if e > vars[v] {
				vars[v] = e
			}
		}
		//
		if deg > total {
			total = deg
		}
	}
	//
	return vars, total
}

// MulJohnson sets p to the product a * b using the heap-based strategy.  A
// max-heap over candidate products (term i of a) x (term j of b) yields output
// monomials in descending order, so all contributions to each monomial are
// summed as they surface and the result needs no post-sort.  The heap never
// holds more than min(|a|,|b|) nodes, giving O(|a||b| log min(|a|,|b|))
// comparisons without materialising the full cross product.
func (p *Poly) MulJohnson(a, b *Poly, ctx *Context) *Poly {
	if a.IsZero() || b.IsZero() {
		return p.SetZero()
	}
	// Keep the heap keyed by the smaller operand
	if a.Len() > b.Len() {
		a, b = b, a
	}
	//
	a, b, l := mulFit(a, b, ctx)
	//
	var (
		res  = NewPolyWithCapacityBits(ctx, a.Len()+b.Len(), a.bits)
		h    = newExpHeap(l, a.Len())
		exp  = make([]uint64, l.words)
		acc  big.Int
		prod big.Int
	)
	// Seed with (0, 0)
	seed := make([]uint64, l.words)
	l.add(seed, a.exp(0, l), b.exp(0, l))
	h.push(seed, 0, 0)
	//
	for h.len() > 0 {
		// Snapshot the maximal exponent before its node storage is recycled
		// for successor pushes.
		copy(exp, h.peek())
		acc.SetInt64(0)
		// Drain all products sharing the maximal exponent
		for h.len() > 0 && l.equal(h.peek(), exp) {
			n := h.pop()
			prod.Mul(&a.coeffs[n.i], &b.coeffs[n.j])
			acc.Add(&acc, &prod)
			// Push successors, reusing the popped exponent storage for the
			// first of them.
			if n.j+1 < b.Len() {
				l.add(n.exp, a.exp(n.i, l), b.exp(n.j+1, l))
				h.push(n.exp, n.i, n.j+1)
				n.exp = nil
			}
			//
			if n.j == 0 && n.i+1 < a.Len() {
				next := n.exp
				if next == nil {
					next = make([]uint64, l.words)
				}
				//
				l.add(next, a.exp(n.i+1, l), b.exp(0, l))
				h.push(next, n.i+1, 0)
			}
		}
		//
		if acc.Sign() != 0 {
			res.pushTerm(&acc, exp)
		}
	}
	//
	p.Swap(res)
	//
	return p
}

// arrayMulSize computes the per-variable dimensions and total slot count of
// the dense accumulation array for the product a * b, reporting failure if
// the size overflows the configured limit.
func arrayMulSize(a, b *Poly, ctx *Context) ([]uint64, uint64, bool) {
	var (
		va, _ = a.maxDegrees(ctx)
		vb, _ = b.maxDegrees(ctx)
		dims  = make([]uint64, ctx.nvars)
		size  = uint64(1)
	)
	//
	for v := range dims {
		dims[v] = va[v] + vb[v] + 1
		// Overflow-checked product
		if size > ArrayMulLimit/dims[v] {
			return nil, 0, false
		}
		//
		size *= dims[v]
	}
	//
	return dims, size, true
}

// MulArray sets p to the product a * b using the dense array strategy, or
// returns false when the dense array would exceed the configured limit, in
// which case p is untouched and the caller should fall back to a sparse
// strategy.
func (p *Poly) MulArray(a, b *Poly, ctx *Context) bool {
	if a.IsZero() || b.IsZero() {
		p.SetZero()
		return true
	}
	//
	dims, size, ok := arrayMulSize(a, b, ctx)
	if !ok {
		return false
	}
	//
	p.mulArray(a, b, dims, size, ctx)
	//
	return true
}

// mulArray accumulates all pairwise coefficient products into a dense array
// indexed by mixed-radix exponent, then sweeps out the nonzero entries.
func (p *Poly) mulArray(a, b *Poly, dims []uint64, size uint64, ctx *Context) *Poly {
	var (
		la    = ctx.layoutFor(a.bits)
		lb    = ctx.layoutFor(b.bits)
		slots = make([]big.Int, size)
		// Mixed-radix strides per variable
		strides = make([]uint64, ctx.nvars)
		exps    = make([]uint64, ctx.nvars)
		prod    big.Int
	)
	//
	stride := uint64(1)
	for v := int(ctx.nvars) - 1; v >= 0; v-- {
		strides[v] = stride
		stride *= dims[v]
	}
	// Linear index of every operand term
	idxA := arrayIndices(a, la, strides, ctx)
	idxB := arrayIndices(b, lb, strides, ctx)
	//
	for i := uint(0); i < a.Len(); i++ {
		for j := uint(0); j < b.Len(); j++ {
			slot := &slots[idxA[i]+idxB[j]]
			prod.Mul(&a.coeffs[i], &b.coeffs[j])
			slot.Add(slot, &prod)
		}
	}
	// Sweep out nonzero slots
	builder := NewBuilderWithCapacity(ctx, a.Len()+b.Len())
	//
	for idx := uint64(0); idx < size; idx++ {
		if slots[idx].Sign() == 0 {
			continue
		}
		//
		rem := idx
		for v := range exps {
			exps[v] = rem / strides[v]
			rem %= strides[v]
		}
		// Cannot fail: exponents are bounded by the operand degrees
		if err := builder.Push(&slots[idx], exps); err != nil {
			panic(err)
		}
	}
	//
	p.Swap(builder.Build())
	//
	return p
}

// arrayIndices maps every term of a polynomial to its mixed-radix linear
// index.
func arrayIndices(p *Poly, l *layout, strides []uint64, ctx *Context) []uint64 {
	var (
		index = make([]uint64, p.Len())
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
		index[i] = idx
	}
	//
	return index
}

// MulThreaded sets p to the product a * b by forking the heap strategy over
// fixed-size chunks of one operand and joining the partial products in a
// deterministic order.  Chunks share no mutable state, the worker count only
// bounds concurrency, and the result is identical to MulJohnson regardless of
// parallelism.
func (p *Poly) MulThreaded(a, b *Poly, ctx *Context) *Poly {
	if a.IsZero() || b.IsZero() {
		return p.SetZero()
	}
	// Chunk the larger operand
	if a.Len() < b.Len() {
		a, b = b, a
	}
	//
	chunks := (a.Len() + threadedChunk - 1) / threadedChunk
	if chunks <= 1 {
		return p.MulJohnson(a, b, ctx)
	}
	//
	log.Debugf("threaded multiply: %d x %d terms over %d chunks", a.Len(), b.Len(), chunks)
	//
	var (
		parts = make([]*Poly, chunks)
		group errgroup.Group
	)
	//
	group.SetLimit(runtime.GOMAXPROCS(0))
	//
	for c := uint(0); c < chunks; c++ {
		c := c
		lo := c * threadedChunk
		hi := min(lo+threadedChunk, a.Len())
		//
		group.Go(func() error {
			chunk := a.slice(lo, hi, ctx)
			parts[c] = NewPoly(ctx).MulJohnson(chunk, b, ctx)
			//
			return nil
		})
	}
	// Workers never fail; the group is pure fork/join structure.
	_ = group.Wait()
	// Ordered join
	res := parts[0]
	for c := uint(1); c < chunks; c++ {
		res.Add(res, parts[c], ctx)
	}
	//
	p.Swap(res)
	//
	return p
}

// slice returns the half-open term range [lo, hi) as a polynomial sharing no
// storage with p.  Contiguous ranges of a canonical polynomial are canonical.
func (p *Poly) slice(lo, hi uint, ctx *Context) *Poly {
	var (
		l = ctx.layoutFor(p.bits)
		q = NewPolyWithCapacityBits(ctx, hi-lo, p.bits)
	)
	//
	for i := lo; i < hi; i++ {
		q.pushTerm(&p.coeffs[i], p.exp(i, l))
	}
	//
	return q
}
