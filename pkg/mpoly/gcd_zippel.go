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
	"math/rand"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	log "github.com/sirupsen/logrus"
)

// GCDZippel attempts Zippel's sparse modular GCD: one dense univariate image
// fixes the assumed support (the skeleton), after which every further image
// is recovered from transposed Vandermonde solves instead of dense
// interpolation.  Variables are lifted one at a time.  The strategy is
// opportunistic and reports false on any inconsistency, leaving the operands
// untouched for this caller's fallback.
func (p *Poly) GCDZippel(a, b *Poly, ctx *Context) bool {
	probes, ok := probeDegrees(a, b, ctx)
	if !ok {
		return false
	}
	//
	vars := commonVars(a, b, ctx)
	if len(vars) < 2 {
		return false
	}
	//
	var (
		rng = rand.New(rand.NewSource(0x7a6970))
		x1  = vars[0]
	)
	// Leading coefficient correction: images of the GCD are only determined
	// up to scalars, so each is pinned to the image of gamma.
	ua, err := ToUnivar(a, x1, ctx)
	if err != nil {
		return false
	}
	//
	ub, err := ToUnivar(b, x1, ctx)
	if err != nil {
		return false
	}
	//
	gamma := gcdPRS(uLead(ua), uLead(ub), ctx)
	//
	cur, beta, ok := zippelSeed(a, b, gamma, x1, rng, ctx)
	if !ok {
		return false
	}
	//
	for j := 1; j < len(vars); j++ {
		cur, ok = zippelLift(a, b, gamma, cur, vars, j, beta, rng, ctx)
		//
		if !ok {
			log.Debugf("zippel gcd: lift of variable %d failed, falling back", vars[j])
			return false
		}
	}
	//
	lifted := liftPoly(cur, ctx)
	gcdNormalise(lifted, ctx)
	//
	if !certifyGCD(lifted, a, b, probes, ctx) {
		log.Debugf("zippel gcd: certification failed, falling back")
		return false
	}
	//
	p.Swap(lifted)
	//
	return true
}

// zippelSeed produces the dense univariate image in x1 at a random base
// point, normalised so its leading coefficient equals gamma's image.
func zippelSeed(a, b, gamma *Poly, x1 uint, rng *rand.Rand, ctx *Context) (*Poly, []goldilocks.Element, bool) {
	var (
		da = a.Degree(x1, ctx)
		db = b.Degree(x1, ctx)
	)
	//
	for attempt := 0; attempt < 16; attempt++ {
		beta := randPoints(rng, ctx.nvars)
		//
		ia, okA := imageUnivar(a, x1, beta, ctx)
		ib, okB := imageUnivar(b, x1, beta, ctx)
		//
		if !okA || !okB {
			return nil, nil, false
		}
		// Degenerate base points lose degree information
		if ia.degree() != da || ib.degree() != db {
			continue
		}
		//
		gv, ok := evalAllMod(gamma, beta, ctx)
		if !ok || gv.IsZero() {
			continue
		}
		//
		g1 := umodGCD(ia, ib)
		if g1.degree() == 0 {
			// Constant image; nothing sparse to lift
			return nil, nil, false
		}
		//
		return upolyToPoly(umodScale(g1, gv), x1, ctx), beta, true
	}
	//
	return nil, nil, false
}

// zippelLift extends the current sparse model cur, supported on
// vars[0..j-1], to include vars[j], holding vars[j+1..] at the base point.
func zippelLift(a, b, gamma, cur *Poly, vars []uint, j int, beta []goldilocks.Element, rng *rand.Rand, ctx *Context) (*Poly, bool) {
	var (
		x1 = vars[0]
		vj = vars[j]
		//
		skeleton, byDeg = zippelSkeleton(cur, x1, ctx)
		dx1             = cur.Degree(x1, ctx)
	)
	//
	if skeleton == nil {
		return nil, false
	}
	// Interpolation bound in vj
	bound := a.Degree(vj, ctx)
	if d := b.Degree(vj, ctx); d < bound {
		bound = d
	}
	//
	bound += gamma.Degree(vj, ctx) + 1
	if uint64(bound) >= modProbeLimit {
		return nil, false
	}
	//
	var (
		interp = newPolyInterp(vj, ctx)
		seen   = make(map[uint64]bool)
		xi     goldilocks.Element
		count  = int64(0)
	)
	//
	for tries := int64(0); count < bound; tries++ {
		if tries > 8*bound+32 {
			return nil, false
		}
		//
		raw := uint64(rng.Int63n(1<<32-2) + 1)
		if seen[raw] {
			continue
		}
		//
		seen[raw] = true
		xi.SetUint64(raw)
		//
		image, ok := zippelImage(a, b, gamma, skeleton, byDeg, vars, j, xi, beta, dx1, rng, ctx)
		if !ok {
			return nil, false
		}
		//
		interp.add(xi, image)
		count++
	}
	//
	if interp.cur.IsZero() {
		return nil, false
	}
	//
	return interp.cur, true
}

// zippelSkeleton collects the monomials of the current model, grouped by
// their degree in x1.  Each entry keeps the full unpacked exponent vector;
// the x1 exponent is stripped when monomials are evaluated.
func zippelSkeleton(cur *Poly, x1 uint, ctx *Context) ([][]uint64, map[uint64][]int) {
	if cur.IsZero() {
		return nil, nil
	}
	//
	var (
		l        = ctx.layoutFor(cur.bits)
		skeleton = make([][]uint64, cur.Len())
		byDeg    = make(map[uint64][]int)
	)
	//
	for i := uint(0); i < cur.Len(); i++ {
		exps := make([]uint64, ctx.nvars)
		l.unpack(exps, cur.exp(i, l))
		//
		skeleton[i] = exps
		byDeg[exps[x1]] = append(byDeg[exps[x1]], int(i))
	}
	//
	return skeleton, byDeg
}

// zippelImage recovers one sparse image of the GCD at vj = xi from ns
// univariate GCDs and per-degree transposed Vandermonde solves, where ns is
// the skeleton size.
func zippelImage(a, b, gamma *Poly, skeleton [][]uint64, byDeg map[uint64][]int,
	vars []uint, j int, xi goldilocks.Element, beta []goldilocks.Element,
	dx1 int64, rng *rand.Rand, ctx *Context) (*Poly, bool) {
	//
	var (
		x1 = vars[0]
		vj = vars[j]
		ns = len(skeleton)
		da = a.Degree(x1, ctx)
		db = b.Degree(x1, ctx)
	)
	//
omega:
	for attempt := 0; attempt < 4; attempt++ {
		// Fresh evaluation base for the inner variables vars[1..j-1]
		omega := randPoints(rng, ctx.nvars)
		//
		var (
			samples = make([]upolyMod, ns)
			points  = make([]goldilocks.Element, ctx.nvars)
			k       big.Int
		)
		//
		for s := 1; s <= ns; s++ {
			copy(points, beta)
			points[vj] = xi
			//
			k.SetInt64(int64(s))
			//
			for _, v := range vars[1:j] {
				points[v].Exp(omega[v], &k)
			}
			//
			ia, okA := imageUnivar(a, x1, points, ctx)
			ib, okB := imageUnivar(b, x1, points, ctx)
			//
			if !okA || !okB {
				return nil, false
			}
			// Degenerate samples invalidate the whole batch
			if ia.degree() != da || ib.degree() != db {
				continue omega
			}
			//
			gv, ok := evalAllMod(gamma, points, ctx)
			if !ok {
				return nil, false
			} else if gv.IsZero() {
				continue omega
			}
			//
			gk := umodScale(umodGCD(ia, ib), gv)
			if gk.degree() != dx1 {
				// Image degree disagrees with the skeleton
				return nil, false
			}
			//
			samples[s-1] = gk
		}
		// Solve one transposed Vandermonde system per x1-degree
		var (
			coeffs = make([]goldilocks.Element, ns)
			e      big.Int
		)
		//
		for deg, idx := range byDeg {
			var (
				mvals = make([]goldilocks.Element, len(idx))
				rhs   = make([]goldilocks.Element, ns)
			)
			//
			for i, si := range idx {
				mvals[i].SetOne()
				//
				for _, v := range vars[1:j] {
					if ev := skeleton[si][v]; ev != 0 {
						var pw goldilocks.Element
						e.SetUint64(ev)
						pw.Exp(omega[v], &e)
						mvals[i].Mul(&mvals[i], &pw)
					}
				}
			}
			//
			for s := 0; s < ns; s++ {
				if uint64(len(samples[s])) > deg {
					rhs[s] = samples[s][deg]
				}
			}
			//
			solved, ok := vandermondeSolve(mvals, rhs)
			if !ok {
				// Colliding monomial evaluations; redraw omega
				continue omega
			}
			//
			for i, si := range idx {
				coeffs[si] = solved[i]
			}
		}
		// Assemble the image on the skeleton support
		var (
			builder = NewBuilder(ctx)
			exps    = make([]uint64, ctx.nvars)
			c       big.Int
		)
		//
		for i := 0; i < ns; i++ {
			if coeffs[i].IsZero() {
				continue
			}
			//
			copy(exps, skeleton[i])
			coeffs[i].BigInt(&c)
			//
			if err := builder.Push(&c, exps); err != nil {
				panic(err)
			}
		}
		//
		return builder.Build(), true
	}
	//
	return nil, false
}

// evalAllMod evaluates every variable of p at the given points modulo the
// goldilocks prime.
func evalAllMod(p *Poly, points []goldilocks.Element, ctx *Context) (goldilocks.Element, bool) {
	var (
		l    = ctx.layoutFor(p.bits)
		exps = make([]uint64, ctx.nvars)
		acc  goldilocks.Element
		c    goldilocks.Element
		pw   goldilocks.Element
		k    big.Int
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		l.unpack(exps, p.exp(i, l))
		modReduceCoeff(&c, &p.coeffs[i])
		//
		for v, e := range exps {
			if e == 0 {
				continue
			}
			//
			k.SetUint64(e)
			pw.Exp(points[v], &k)
			c.Mul(&c, &pw)
		}
		//
		acc.Add(&acc, &c)
	}
	//
	return acc, true
}
