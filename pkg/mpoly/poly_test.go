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
	"testing"
)

func Test_Canonical_01(t *testing.T) {
	// Unsorted pushes end up sorted descending
	ctx := NewContext(2, Lex)
	builder := NewBuilder(ctx)
	checkPush(t, builder, 1, []uint64{0, 1})
	checkPush(t, builder, 2, []uint64{1, 0})
	checkPush(t, builder, 3, []uint64{0, 0})
	//
	p := builder.Build()
	checkCanonical(t, p, ctx, 3)
	//
	if p.Coeff(0).Int64() != 2 {
		t.Errorf("expected leading coefficient 2, got %s", p.Coeff(0))
	}
}

func Test_Canonical_02(t *testing.T) {
	// Like terms combine, zeros drop
	ctx := NewContext(2, DegLex)
	builder := NewBuilder(ctx)
	checkPush(t, builder, 2, []uint64{1, 1})
	checkPush(t, builder, -2, []uint64{1, 1})
	checkPush(t, builder, 5, []uint64{2, 0})
	checkPush(t, builder, 1, []uint64{2, 0})
	//
	p := builder.Build()
	checkCanonical(t, p, ctx, 1)
	//
	if p.Coeff(0).Int64() != 6 {
		t.Errorf("expected combined coefficient 6, got %s", p.Coeff(0))
	}
}

func Test_Canonical_03(t *testing.T) {
	// Full cancellation yields the zero polynomial
	ctx := NewContext(1, Lex)
	builder := NewBuilder(ctx)
	checkPush(t, builder, 7, []uint64{3})
	checkPush(t, builder, -7, []uint64{3})
	//
	p := builder.Build()
	//
	if !p.IsZero() || p.Len() != 0 {
		t.Errorf("expected zero polynomial, got %d terms", p.Len())
	}
}

func Test_Canonical_04(t *testing.T) {
	// Random polynomials are canonical under every ordering
	for _, ordering := range []Ordering{Lex, DegLex, DegRevLex} {
		ctx := NewContext(3, ordering)
		rng := rand.New(rand.NewSource(42))
		//
		for i := 0; i < 10; i++ {
			p := RandTest(rng, ctx, 20, 30, 64)
			checkCanonical(t, p, ctx, p.Len())
		}
	}
}

func Test_Gen_01(t *testing.T) {
	// gen(0) over 3 variables is 1 * x0^1
	ctx := NewContext(3, Lex)
	p := NewPoly(ctx)
	//
	if err := p.Gen(0, ctx); err != nil {
		t.Fatal(err)
	}
	//
	if p.Len() != 1 || p.Coeff(0).Int64() != 1 {
		t.Errorf("expected single unit term, got %s", p.String(ctx))
	}
	//
	exps := p.Exponents(0, ctx)
	//
	if exps[0] != 1 || exps[1] != 0 || exps[2] != 0 {
		t.Errorf("expected exponents [1 0 0], got %v", exps)
	}
	//
	if !p.IsGen(0, ctx) {
		t.Errorf("is_gen(0) should hold")
	}
	//
	if p.IsGen(1, ctx) {
		t.Errorf("is_gen(1) should not hold")
	}
}

func Test_Gen_02(t *testing.T) {
	ctx := NewContext(2, DegRevLex)
	p := NewPoly(ctx)
	//
	if err := p.Gen(2, ctx); err == nil {
		t.Errorf("gen of out-of-range variable should fail")
	}
}

func Test_Bits_01(t *testing.T) {
	// Widening preserves equality
	ctx := NewContext(2, DegRevLex)
	rng := rand.New(rand.NewSource(1))
	//
	for i := 0; i < 10; i++ {
		var (
			a = RandTest(rng, ctx, 10, 100, 32)
			b = a.Clone(ctx)
		)
		//
		b.FitBits(32, ctx)
		//
		if b.Bits() < 32 {
			t.Errorf("expected at least 32 bits, got %d", b.Bits())
		}
		//
		if !a.Equal(b, ctx) || !b.Equal(a, ctx) {
			t.Errorf("widened copy differs: %s vs %s", a.String(ctx), b.String(ctx))
		}
		//
		checkCanonical(t, b, ctx, a.Len())
	}
}

func Test_Exponents_01(t *testing.T) {
	// Big exponent accessors agree with the machine ones
	ctx := NewContext(2, Lex)
	builder := NewBuilder(ctx)
	checkPush(t, builder, 1, []uint64{1 << 40, 3})
	//
	p := builder.Build()
	exps := p.ExponentsBig(0, ctx)
	//
	if exps[0].Uint64() != 1<<40 || exps[1].Uint64() != 3 {
		t.Errorf("unexpected exponents %v", exps)
	}
	//
	if p.Exponent(0, 0, ctx) != 1<<40 {
		t.Errorf("unexpected exponent %d", p.Exponent(0, 0, ctx))
	}
}

func Test_Exponents_02(t *testing.T) {
	// Negative big exponents are rejected
	ctx := NewContext(1, Lex)
	p := NewPoly(ctx)
	p.SetOne(ctx)
	//
	if err := p.SetExponentsBig(0, []*big.Int{big.NewInt(-1)}, ctx); err == nil {
		t.Errorf("negative exponent should be rejected")
	}
}

func Test_Coeff_01(t *testing.T) {
	// Machine-integer coefficient access behind its fits predicate
	ctx := NewContext(1, Lex)
	//
	var (
		big64 = new(big.Int).Lsh(bigOne, 80)
		a     = mustParse(t, "7*x0", ctx)
	)
	//
	if !a.CoeffFitsInt64(0) || a.CoeffInt64(0) != 7 {
		t.Errorf("expected coefficient 7, got %d", a.CoeffInt64(0))
	}
	//
	a.SetCoeff(0, big64)
	//
	if a.CoeffFitsInt64(0) {
		t.Errorf("2^80 should not fit an int64")
	}
	//
	if a.Coeff(0).Cmp(big64) != 0 {
		t.Errorf("expected 2^80, got %s", a.Coeff(0))
	}
}

func Test_Const_01(t *testing.T) {
	ctx := NewContext(2, DegLex)
	p := NewPoly(ctx).SetInt64(-42, ctx)
	//
	if !p.IsConst(ctx) {
		t.Errorf("expected constant")
	}
	//
	if c, ok := p.Const(ctx); !ok || c.Int64() != -42 {
		t.Errorf("expected constant -42, got %s", c)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkPush(t *testing.T, builder *Builder, coeff int64, exps []uint64) {
	t.Helper()
	//
	if err := builder.PushInt64(coeff, exps); err != nil {
		t.Fatal(err)
	}
}

func checkCanonical(t *testing.T, p *Poly, ctx *Context, terms uint) {
	t.Helper()
	//
	if !p.IsCanonical(ctx) {
		t.Errorf("polynomial not canonical: %s", p.String(ctx))
	}
	//
	if p.Len() != terms {
		t.Errorf("expected %d terms, got %d: %s", terms, p.Len(), p.String(ctx))
	}
}

// mustParse builds a polynomial from text, failing the test on error.
func mustParse(t *testing.T, input string, ctx *Context) *Poly {
	t.Helper()
	//
	p, err := Parse(input, nil, ctx)
	if err != nil {
		t.Fatalf("parsing %q: %s", input, err)
	}
	//
	return p
}
