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

// Builder assembles a polynomial term by term without maintaining sort order,
// which is far cheaper than sorted insertion when results are produced one
// term at a time.  Build sorts the accumulated terms, combines like terms and
// returns the canonical polynomial; until then no canonical-only operation is
// reachable, since the pending polynomial is private to the builder.
type Builder struct {
	ctx  *Context
	poly *Poly
}

// NewBuilder constructs an empty builder under the given context.
func NewBuilder(ctx *Context) *Builder {
	return &Builder{ctx, NewPoly(ctx)}
}

// NewBuilderWithCapacity constructs an empty builder with storage reserved for
// the given number of terms.
func NewBuilderWithCapacity(ctx *Context, terms uint) *Builder {
	return &Builder{ctx, NewPolyWithCapacity(ctx, terms)}
}

// Len returns the number of terms pushed so far, including any pending
// duplicates.
func (b *Builder) Len() uint {
	return b.poly.Len()
}

// Push appends a term given its coefficient and raw exponent vector, widening
// the packed representation as required.  The exponent vector length must
// match the context's variable count.
func (b *Builder) Push(coeff *big.Int, exps []uint64) error {
	if err := b.poly.fitExponents(exps, b.ctx); err != nil {
		return err
	}
	//
	var (
		l      = b.ctx.layoutFor(b.poly.bits)
		packed = make([]uint64, l.words)
	)
	//
	l.pack(packed, exps)
	b.poly.pushTerm(coeff, packed)
	//
	return nil
}

// PushInt64 is Push for machine-integer coefficients.
func (b *Builder) PushInt64(coeff int64, exps []uint64) error {
	return b.Push(big.NewInt(coeff), exps)
}

// PushBig appends a term whose exponents are given as arbitrary-precision
// integers, rejecting negative exponents and exponents beyond the packed
// bound.
func (b *Builder) PushBig(coeff *big.Int, exps []*big.Int) error {
	raw := make([]uint64, len(exps))
	//
	for v, e := range exps {
		if e.Sign() < 0 {
			return ErrNegativeExponent
		} else if !e.IsUint64() || e.Uint64() > maxExponent {
			return ErrOverflow
		}
		//
		raw[v] = e.Uint64()
	}
	//
	return b.Push(coeff, raw)
}

// Build normalises the accumulated terms and returns the canonical
// polynomial, leaving the builder empty for reuse.
func (b *Builder) Build() *Poly {
	p := b.poly
	p.normalise(b.ctx)
	b.poly = NewPoly(b.ctx)
	//
	return p
}
