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

// Package groebner implements polynomial sets and Buchberger's algorithm for
// Gröbner basis construction over the sparse integer polynomials of
// pkg/mpoly.
package groebner

import (
	"github.com/consensys/go-mpoly/pkg/mpoly"
)

// Basis is an ordered, growable collection of polynomials sharing one
// context.  Zero polynomials are never stored.
type Basis struct {
	ctx   *mpoly.Context
	polys []*mpoly.Poly
}

// NewBasis constructs a basis from the given generators, cloning each and
// dropping zeros.
func NewBasis(ctx *mpoly.Context, gens ...*mpoly.Poly) *Basis {
	basis := &Basis{ctx: ctx}
	//
	for _, g := range gens {
		basis.Append(g)
	}
	//
	return basis
}

// Len returns the number of polynomials held.
func (b *Basis) Len() uint {
	return uint(len(b.polys))
}

// Context returns the shared context.
func (b *Basis) Context() *mpoly.Context {
	return b.ctx
}

// Get returns the ith polynomial.  The caller must not mutate it.
func (b *Basis) Get(i uint) *mpoly.Poly {
	return b.polys[i]
}

// Polys returns the underlying slice.  The caller must not mutate it.
func (b *Basis) Polys() []*mpoly.Poly {
	return b.polys
}

// Append adds a clone of p to the end of the basis, unless p is zero.
func (b *Basis) Append(p *mpoly.Poly) {
	if !p.IsZero() {
		b.polys = append(b.polys, p.Clone(b.ctx))
	}
}

// InsertUnique appends p only when no held polynomial equals it, reporting
// whether an insertion happened.
func (b *Basis) InsertUnique(p *mpoly.Poly) bool {
	if p.IsZero() {
		return false
	}
	//
	for _, q := range b.polys {
		if q.Equal(p, b.ctx) {
			return false
		}
	}
	//
	b.polys = append(b.polys, p.Clone(b.ctx))
	//
	return true
}

// Truncate shrinks the basis to its first n elements.
func (b *Basis) Truncate(n uint) {
	if n < b.Len() {
		b.polys = b.polys[:n]
	}
}

// Swap exchanges two elements.
func (b *Basis) Swap(i, j uint) {
	b.polys[i], b.polys[j] = b.polys[j], b.polys[i]
}

// Remove deletes the ith element, preserving the order of the rest.
func (b *Basis) Remove(i uint) {
	b.polys = append(b.polys[:i], b.polys[i+1:]...)
}

// Replace substitutes the entire contents with clones of the given
// polynomials, dropping zeros.
func (b *Basis) Replace(gens []*mpoly.Poly) {
	b.polys = b.polys[:0]
	//
	for _, g := range gens {
		b.Append(g)
	}
}

// Clone returns an independent copy of the basis.
func (b *Basis) Clone() *Basis {
	return NewBasis(b.ctx, b.polys...)
}
