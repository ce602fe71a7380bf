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
	"math/rand"
	"testing"
)

func Test_Gcd_01(t *testing.T) {
	// gcd(g*a, g*b) with coprime a, b recovers g (up to normalisation)
	ctx := NewContext(2, DegRevLex)
	//
	var (
		g = mustParse(t, "x0 + x1 + 1", ctx)
		a = mustParse(t, "x0^2 + 2", ctx)
		b = mustParse(t, "x1^3 + 3", ctx)
	)
	//
	checkGcdRecovers(t, g, a, b, ctx)
}

func Test_Gcd_02(t *testing.T) {
	// Random known-gcd instances against the dispatcher
	ctx := NewContext(3, DegLex)
	rng := rand.New(rand.NewSource(40))
	//
	for i := 0; i < 10; i++ {
		var (
			g = randNonZero(rng, ctx, 4, 3, 16)
			a = randNonZero(rng, ctx, 4, 3, 16)
			b = randNonZero(rng, ctx, 4, 3, 16)
		)
		// Ensure gcd(a, b) contributes nothing beyond g
		checkGcdDivides(t, g, a, b, ctx)
	}
}

func Test_Gcd_03(t *testing.T) {
	// Zero and constant operands
	ctx := NewContext(2, Lex)
	//
	var (
		a    = mustParse(t, "2*x0^2 - 4*x1", ctx)
		zero = NewPoly(ctx)
		one  = mustParse(t, "3", ctx)
		r    = NewPoly(ctx)
	)
	//
	r.GCD(a, zero, ctx)
	//
	if !r.Equal(mustParse(t, "x0^2 - 2*x1", ctx), ctx) {
		t.Errorf("gcd(a, 0) should be the normalised a, got %s", r.String(ctx))
	}
	//
	r.GCD(zero, zero, ctx)
	//
	if !r.IsZero() {
		t.Errorf("gcd(0, 0) should be zero, got %s", r.String(ctx))
	}
	//
	r.GCD(a, one, ctx)
	//
	if !r.IsOne(ctx) {
		t.Errorf("gcd(a, 3) should be one, got %s", r.String(ctx))
	}
}

func Test_Gcd_04(t *testing.T) {
	// Monomial inputs take the per-variable minimum
	ctx := NewContext(3, DegRevLex)
	//
	var (
		a = mustParse(t, "6*x0^3*x1^2", ctx)
		b = mustParse(t, "4*x0*x1^4*x2", ctx)
		r = NewPoly(ctx)
	)
	//
	r.GCD(a, b, ctx)
	//
	if !r.Equal(mustParse(t, "x0*x1^2", ctx), ctx) {
		t.Errorf("expected x0*x1^2, got %s", r.String(ctx))
	}
}

func Test_Gcd_05(t *testing.T) {
	// Result is independent of operand order and normalised positive
	ctx := NewContext(2, Lex)
	rng := rand.New(rand.NewSource(41))
	//
	for i := 0; i < 10; i++ {
		var (
			g  = randNonZero(rng, ctx, 3, 3, 8)
			a  = NewPoly(ctx).Mul(g, randNonZero(rng, ctx, 3, 3, 8), ctx)
			b  = NewPoly(ctx).Mul(g, randNonZero(rng, ctx, 3, 3, 8), ctx)
			r1 = NewPoly(ctx)
			r2 = NewPoly(ctx)
		)
		//
		r1.GCD(a, b, ctx)
		r2.GCD(b, a, ctx)
		//
		if !r1.Equal(r2, ctx) {
			t.Errorf("gcd not symmetric: %s vs %s", r1.String(ctx), r2.String(ctx))
		}
		//
		if !r1.IsZero() && r1.LeadingCoeff().Sign() < 0 {
			t.Errorf("gcd should have positive leading coefficient: %s", r1.String(ctx))
		}
	}
}

func Test_GcdBrown_01(t *testing.T) {
	checkGcdStrategy(t, "brown", (*Poly).GCDBrown)
}

func Test_GcdZippel_01(t *testing.T) {
	checkGcdStrategy(t, "zippel", (*Poly).GCDZippel)
}

func Test_GcdHensel_01(t *testing.T) {
	// Hensel lifting handles univariate operands
	ctx := NewContext(1, Lex)
	rng := rand.New(rand.NewSource(42))
	//
	for i := 0; i < 10; i++ {
		var (
			g = randNonZero(rng, ctx, 3, 4, 16)
			a = NewPoly(ctx).Mul(g, randNonZero(rng, ctx, 3, 4, 16), ctx)
			b = NewPoly(ctx).Mul(g, randNonZero(rng, ctx, 3, 4, 16), ctx)
			r = NewPoly(ctx)
		)
		//
		if !r.GCDHensel(a, b, ctx) {
			continue
		}
		//
		checkCommonDivisor(t, r, a, b, g, ctx)
	}
}

func Test_GcdSubresultant_01(t *testing.T) {
	// The remainder-sequence strategy never fails
	ctx := NewContext(2, DegLex)
	rng := rand.New(rand.NewSource(43))
	//
	for i := 0; i < 10; i++ {
		var (
			g = randNonZero(rng, ctx, 3, 3, 8)
			a = NewPoly(ctx).Mul(g, randNonZero(rng, ctx, 3, 3, 8), ctx)
			b = NewPoly(ctx).Mul(g, randNonZero(rng, ctx, 3, 3, 8), ctx)
			r = NewPoly(ctx)
		)
		//
		r.GCDSubresultant(a, b, ctx)
		//
		checkCommonDivisor(t, r, a, b, g, ctx)
	}
}

func Test_GcdCofactors_01(t *testing.T) {
	// a == g*abar and b == g*bbar
	ctx := NewContext(2, DegRevLex)
	rng := rand.New(rand.NewSource(44))
	//
	for i := 0; i < 10; i++ {
		var (
			c = randNonZero(rng, ctx, 3, 3, 8)
			a = NewPoly(ctx).Mul(c, randNonZero(rng, ctx, 3, 3, 8), ctx)
			b = NewPoly(ctx).Mul(c, randNonZero(rng, ctx, 3, 3, 8), ctx)
			//
			g    = NewPoly(ctx)
			abar = NewPoly(ctx)
			bbar = NewPoly(ctx)
		)
		//
		GCDCofactors(g, abar, bbar, a, b, ctx)
		//
		if !NewPoly(ctx).Mul(g, abar, ctx).Equal(a, ctx) {
			t.Errorf("a != g*abar for a=%s", a.String(ctx))
		}
		//
		if !NewPoly(ctx).Mul(g, bbar, ctx).Equal(b, ctx) {
			t.Errorf("b != g*bbar for b=%s", b.String(ctx))
		}
	}
}

func Test_Content_01(t *testing.T) {
	// content(6x + 4y) == 2 and the primitive part halves every coefficient
	ctx := NewContext(2, Lex)
	//
	var (
		a  = mustParse(t, "6*x0 + 4*x1", ctx)
		pp = NewPoly(ctx)
	)
	//
	if c := a.Content(); c.Int64() != 2 {
		t.Errorf("expected content 2, got %s", c)
	}
	//
	pp.PrimitivePart(a, ctx)
	//
	if !pp.Equal(mustParse(t, "3*x0 + 2*x1", ctx), ctx) {
		t.Errorf("expected 3*x0 + 2*x1, got %s", pp.String(ctx))
	}
}

func Test_Resultant_01(t *testing.T) {
	// res_x(x^2 - 1, x - 2) == plug x = 2 into x^2 - 1 == 3
	ctx := NewContext(1, Lex)
	r := NewPoly(ctx)
	//
	if err := r.Resultant(mustParse(t, "x0^2 - 1", ctx), mustParse(t, "x0 - 2", ctx), 0, ctx); err != nil {
		t.Fatal(err)
	}
	//
	if !r.Equal(mustParse(t, "3", ctx), ctx) {
		t.Errorf("expected 3, got %s", r.String(ctx))
	}
}

func Test_Resultant_02(t *testing.T) {
	// Operands sharing a factor have zero resultant
	ctx := NewContext(2, Lex)
	//
	var (
		g = mustParse(t, "x0 - x1", ctx)
		a = NewPoly(ctx).Mul(g, mustParse(t, "x0 + 1", ctx), ctx)
		b = NewPoly(ctx).Mul(g, mustParse(t, "x1 + 2", ctx), ctx)
		r = NewPoly(ctx)
	)
	//
	if err := r.Resultant(a, b, 0, ctx); err != nil {
		t.Fatal(err)
	}
	//
	if !r.IsZero() {
		t.Errorf("resultant of operands sharing x0 - x1 should vanish, got %s", r.String(ctx))
	}
}

func Test_Resultant_03(t *testing.T) {
	// Bivariate resultant eliminates the chosen variable
	ctx := NewContext(2, Lex)
	r := NewPoly(ctx)
	//
	// res_x0(x0^2 + x1, x0 + x1) == x1^2 + x1
	if err := r.Resultant(mustParse(t, "x0^2 + x1", ctx), mustParse(t, "x0 + x1", ctx), 0, ctx); err != nil {
		t.Fatal(err)
	}
	//
	if !r.Equal(mustParse(t, "x1^2 + x1", ctx), ctx) {
		t.Errorf("expected x1^2 + x1, got %s", r.String(ctx))
	}
}

func Test_Discriminant_01(t *testing.T) {
	// disc(ax^2 + bx + c) == b^2 - 4ac
	ctx := NewContext(1, Lex)
	r := NewPoly(ctx)
	//
	if err := r.Discriminant(mustParse(t, "3*x0^2 + 5*x0 + 1", ctx), 0, ctx); err != nil {
		t.Fatal(err)
	}
	//
	if !r.Equal(mustParse(t, "13", ctx), ctx) {
		t.Errorf("expected 13, got %s", r.String(ctx))
	}
}

func Test_Discriminant_02(t *testing.T) {
	// A repeated root forces a zero discriminant
	ctx := NewContext(1, Lex)
	r := NewPoly(ctx)
	//
	if err := r.Discriminant(mustParse(t, "x0^2 - 2*x0 + 1", ctx), 0, ctx); err != nil {
		t.Fatal(err)
	}
	//
	if !r.IsZero() {
		t.Errorf("discriminant of (x0 - 1)^2 should be zero, got %s", r.String(ctx))
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// checkGcdRecovers checks the dispatcher recovers g exactly from g*a and g*b
// when a and b share no factor with g or each other.
func checkGcdRecovers(t *testing.T, g, a, b *Poly, ctx *Context) {
	t.Helper()
	//
	var (
		ga = NewPoly(ctx).Mul(g, a, ctx)
		gb = NewPoly(ctx).Mul(g, b, ctx)
		r  = NewPoly(ctx)
	)
	//
	r.GCD(ga, gb, ctx)
	//
	expected := NewPoly(ctx).PrimitivePart(g, ctx)
	if !expected.IsZero() && expected.LeadingCoeff().Sign() < 0 {
		expected.Neg(expected, ctx)
	}
	//
	if !r.Equal(expected, ctx) {
		t.Errorf("expected gcd %s, got %s", expected.String(ctx), r.String(ctx))
	}
}

// checkGcdDivides checks the dispatcher result against the remainder-sequence
// strategy when a and b may share additional factors beyond g.
func checkGcdDivides(t *testing.T, g, a, b *Poly, ctx *Context) {
	t.Helper()
	//
	var (
		ga  = NewPoly(ctx).Mul(g, a, ctx)
		gb  = NewPoly(ctx).Mul(g, b, ctx)
		r   = NewPoly(ctx)
		ref = NewPoly(ctx)
	)
	//
	r.GCD(ga, gb, ctx)
	ref.GCDSubresultant(ga, gb, ctx)
	//
	if !r.Equal(ref, ctx) {
		t.Errorf("strategies disagree: dispatcher %s vs remainder sequence %s", r.String(ctx), ref.String(ctx))
	}
	//
	checkCommonDivisor(t, r, ga, gb, g, ctx)
}

// checkCommonDivisor checks r divides both operands and is divisible by the
// primitive part of the known common factor g.
func checkCommonDivisor(t *testing.T, r, a, b, g *Poly, ctx *Context) {
	t.Helper()
	//
	q := NewPoly(ctx)
	//
	if !Divides(q, a, r, ctx) {
		t.Errorf("gcd %s does not divide %s", r.String(ctx), a.String(ctx))
	}
	//
	if !Divides(q, b, r, ctx) {
		t.Errorf("gcd %s does not divide %s", r.String(ctx), b.String(ctx))
	}
	//
	pp := NewPoly(ctx).PrimitivePart(g, ctx)
	//
	if !Divides(q, r, pp, ctx) {
		t.Errorf("gcd %s misses known factor %s", r.String(ctx), pp.String(ctx))
	}
}

// checkGcdStrategy exercises an individual modular strategy on random
// known-gcd instances, tolerating the occasional unlucky failure.
func checkGcdStrategy(t *testing.T, name string, strategy func(*Poly, *Poly, *Poly, *Context) bool) {
	t.Helper()
	//
	ctx := NewContext(2, DegRevLex)
	rng := rand.New(rand.NewSource(45))
	succeeded := 0
	//
	for i := 0; i < 10; i++ {
		var (
			g = randNonZero(rng, ctx, 3, 3, 8)
			a = NewPoly(ctx).Mul(g, randNonZero(rng, ctx, 3, 3, 8), ctx)
			b = NewPoly(ctx).Mul(g, randNonZero(rng, ctx, 3, 3, 8), ctx)
			r = NewPoly(ctx)
		)
		//
		if !strategy(r, a, b, ctx) {
			continue
		}
		//
		succeeded++
		checkCommonDivisor(t, r, a, b, g, ctx)
	}
	//
	if succeeded == 0 {
		t.Errorf("%s strategy failed on all instances", name)
	}
}
