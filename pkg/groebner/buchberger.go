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
package groebner

import (
	"math/big"

	"github.com/consensys/go-mpoly/pkg/mpoly"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Limits bounds a guarded Buchberger run.  A zero field means unlimited.
type Limits struct {
	// MaxBasis bounds the number of basis elements.
	MaxBasis uint
	// MaxPolyLen bounds the term count of any reduced S-polynomial.
	MaxPolyLen uint
	// MaxCoeffBits bounds the coefficient bit length of any reduced
	// S-polynomial.
	MaxCoeffBits uint
}

// ErrLimitExceeded signals that a guarded Buchberger run was aborted.
var ErrLimitExceeded = errors.New("buchberger limit exceeded")

// SPoly computes the S-polynomial of two nonzero polynomials: each is
// cross-multiplied by the complement of the other's leading term so the
// leading terms cancel, then the results are subtracted.
func SPoly(a, b *mpoly.Poly, ctx *mpoly.Context) *mpoly.Poly {
	var (
		ea = a.Exponents(0, ctx)
		eb = b.Exponents(0, ctx)
		ca = a.Coeff(0)
		cb = b.Coeff(0)
		//
		ma = make([]uint64, ctx.NumVars())
		mb = make([]uint64, ctx.NumVars())
		l  big.Int
	)
	// l = lcm(|ca|, |cb|)
	l.GCD(nil, nil, new(big.Int).Abs(ca), new(big.Int).Abs(cb))
	l.Quo(new(big.Int).Abs(ca), &l)
	l.Mul(&l, new(big.Int).Abs(cb))
	//
	for v := range ma {
		e := ea[v]
		if eb[v] > e {
			e = eb[v]
		}
		//
		ma[v] = e - ea[v]
		mb[v] = e - eb[v]
	}
	//
	var (
		fa = mulMonomial(a, new(big.Int).Quo(&l, ca), ma, ctx)
		fb = mulMonomial(b, new(big.Int).Quo(&l, cb), mb, ctx)
	)
	//
	return fa.Sub(fa, fb, ctx)
}

// Reduce computes the normal form of f against the basis: while any term of
// f has a monomial divisible by some basis element's leading monomial, the
// highest such term is eliminated by cross-multiplication, and the primitive
// part is taken after every step to contain coefficient growth.  The result
// is primitive (or zero) with no reducible term.
func Reduce(f *mpoly.Poly, basis *Basis) *mpoly.Poly {
	var (
		ctx = basis.Context()
		h   = f.Clone(ctx)
	)
	//
	for !h.IsZero() {
		i, g, ok := firstReducible(h, basis)
		if !ok {
			break
		}
		//
		var (
			eh = h.Exponents(i, ctx)
			eg = g.Exponents(0, ctx)
			ch = h.Coeff(i)
			cg = g.Coeff(0)
			l  big.Int
		)
		// l = lcm(|ch|, |cg|)
		l.GCD(nil, nil, new(big.Int).Abs(ch), new(big.Int).Abs(cg))
		l.Quo(new(big.Int).Abs(ch), &l)
		l.Mul(&l, new(big.Int).Abs(cg))
		//
		shift := make([]uint64, ctx.NumVars())
		for v := range shift {
			shift[v] = eh[v] - eg[v]
		}
		// h = (l/ch)*h - (l/cg)*x^shift*g
		elim := mulMonomial(g, new(big.Int).Neg(new(big.Int).Quo(&l, cg)), shift, ctx)
		h.FMA(h, new(big.Int).Quo(&l, ch), elim, big.NewInt(1), ctx)
		//
		if !h.IsZero() {
			h.PrimitivePart(h, ctx)
		}
	}
	//
	if !h.IsZero() {
		h.PrimitivePart(h, ctx)
	}
	//
	return h
}

// Buchberger completes the basis generated by the held polynomials into a
// Gröbner basis under the context's ordering.
func Buchberger(gens *Basis) *Basis {
	basis, _ := buchberger(gens, Limits{})
	//
	return basis
}

// BuchbergerWithLimits is Buchberger with blow-up guards, returning
// ErrLimitExceeded when any bound trips before completion.
func BuchbergerWithLimits(gens *Basis, limits Limits) (*Basis, error) {
	return buchberger(gens, limits)
}

type spair struct {
	i, j uint
}

func buchberger(gens *Basis, limits Limits) (*Basis, error) {
	var (
		ctx   = gens.Context()
		basis = gens.Clone()
		pairs []spair
	)
	//
	for i := uint(0); i < basis.Len(); i++ {
		for j := uint(0); j < i; j++ {
			pairs = append(pairs, spair{j, i})
		}
	}
	//
	for len(pairs) > 0 {
		pair := pairs[len(pairs)-1]
		pairs = pairs[:len(pairs)-1]
		//
		s := SPoly(basis.Get(pair.i), basis.Get(pair.j), ctx)
		r := Reduce(s, basis)
		//
		if r.IsZero() {
			continue
		}
		//
		if limits.MaxPolyLen != 0 && r.Len() > limits.MaxPolyLen {
			return basis, errors.Wrapf(ErrLimitExceeded, "reduced S-polynomial has %d terms", r.Len())
		} else if limits.MaxCoeffBits != 0 && r.MaxCoeffBits() > limits.MaxCoeffBits {
			return basis, errors.Wrapf(ErrLimitExceeded, "reduced S-polynomial needs %d coefficient bits", r.MaxCoeffBits())
		} else if limits.MaxBasis != 0 && basis.Len() >= limits.MaxBasis {
			return basis, errors.Wrapf(ErrLimitExceeded, "basis grew past %d elements", limits.MaxBasis)
		}
		//
		n := basis.Len()
		basis.Append(r)
		//
		log.Debugf("buchberger: basis grew to %d elements (%d pairs outstanding)", basis.Len(), len(pairs))
		//
		for i := uint(0); i < n; i++ {
			pairs = append(pairs, spair{i, n})
		}
	}
	//
	return basis, nil
}

// IsGroebner verifies the defining property of a Gröbner basis: every
// S-polynomial of the candidate reduces to zero against it.
func IsGroebner(basis *Basis) bool {
	ctx := basis.Context()
	//
	for i := uint(0); i < basis.Len(); i++ {
		for j := uint(0); j < i; j++ {
			s := SPoly(basis.Get(i), basis.Get(j), ctx)
			//
			if !Reduce(s, basis).IsZero() {
				return false
			}
		}
	}
	//
	return true
}

// AutoReduce minimises the basis: elements reducing to zero against the
// others are removed, and every survivor is replaced by its normal form, so
// no leading term divides another when the process settles.
func AutoReduce(basis *Basis) {
	changed := true
	//
	for changed {
		changed = false
		//
		for i := uint(0); i < basis.Len(); i++ {
			var (
				p    = basis.Get(i)
				rest = basisWithout(basis, i)
			)
			//
			if rest.Len() == 0 {
				continue
			}
			//
			r := Reduce(p, rest)
			//
			if r.IsZero() {
				basis.Remove(i)
				changed = true
				//
				break
			} else if !r.Equal(p, basis.Context()) {
				basis.polys[i] = r
				changed = true
			}
		}
	}
}

// basisWithout views all elements except the ith.
func basisWithout(basis *Basis, i uint) *Basis {
	rest := &Basis{ctx: basis.ctx}
	//
	for j := uint(0); j < basis.Len(); j++ {
		if j != i {
			rest.polys = append(rest.polys, basis.Get(j))
		}
	}
	//
	return rest
}

// firstReducible locates the highest term of h whose monomial is divisible
// by some basis leading monomial.
func firstReducible(h *mpoly.Poly, basis *Basis) (uint, *mpoly.Poly, bool) {
	ctx := basis.Context()
	//
	for i := uint(0); i < h.Len(); i++ {
		eh := h.Exponents(i, ctx)
		//
		for j := uint(0); j < basis.Len(); j++ {
			g := basis.Get(j)
			//
			if monomialDivides(g.Exponents(0, ctx), eh) {
				return i, g, true
			}
		}
	}
	//
	return 0, nil, false
}

func monomialDivides(eg, eh []uint64) bool {
	for v := range eg {
		if eg[v] > eh[v] {
			return false
		}
	}
	//
	return true
}

// mulMonomial multiplies p by the single term c * x^exps.
func mulMonomial(p *mpoly.Poly, c *big.Int, exps []uint64, ctx *mpoly.Context) *mpoly.Poly {
	builder := mpoly.NewBuilder(ctx)
	//
	if err := builder.Push(c, exps); err != nil {
		panic(err)
	}
	//
	return mpoly.NewPoly(ctx).Mul(p, builder.Build(), ctx)
}
