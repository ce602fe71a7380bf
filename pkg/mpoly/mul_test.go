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

func Test_Mul_01(t *testing.T) {
	// (x0^2*x1 + 3) * (x1 - 1) under DEGREVLEX
	ctx := NewContext(2, DegRevLex)
	//
	var (
		a        = mustParse(t, "x0^2*x1 + 3", ctx)
		b        = mustParse(t, "x1 - 1", ctx)
		expected = mustParse(t, "x0^2*x1^2 - x0^2*x1 + 3*x1 - 3", ctx)
		p        = NewPoly(ctx).Mul(a, b, ctx)
	)
	//
	if !p.Equal(expected, ctx) {
		t.Errorf("expected %s, got %s", expected.String(ctx), p.String(ctx))
	}
	//
	checkCanonical(t, p, ctx, 4)
}

func Test_Mul_02(t *testing.T) {
	// Multiplication by zero and by one
	ctx := NewContext(2, Lex)
	rng := rand.New(rand.NewSource(20))
	//
	var (
		a    = RandTestBound(rng, ctx, 10, 10, 32)
		zero = NewPoly(ctx)
		one  = NewPoly(ctx).SetOne(ctx)
	)
	//
	if !NewPoly(ctx).Mul(a, zero, ctx).IsZero() {
		t.Errorf("a*0 != 0")
	}
	//
	if !NewPoly(ctx).Mul(a, one, ctx).Equal(a, ctx) {
		t.Errorf("a*1 != a")
	}
}

func Test_Mul_03(t *testing.T) {
	// Exponent sums beyond the packed ceiling fail loudly instead of wrapping
	// into the reserved bit
	ctx := NewContext(1, Lex)
	//
	builder := NewBuilder(ctx)
	checkPush(t, builder, 1, []uint64{uint64(1) << 62})
	a := builder.Build()
	//
	defer func() {
		if r := recover(); r != ErrOverflow {
			t.Errorf("expected overflow panic, got %v", r)
		}
	}()
	//
	NewPoly(ctx).Mul(a, a, ctx)
}

func Test_MulStrategies_01(t *testing.T) {
	checkMulStrategies(t, NewContext(2, Lex), 21)
}

func Test_MulStrategies_02(t *testing.T) {
	checkMulStrategies(t, NewContext(3, DegLex), 22)
}

func Test_MulStrategies_03(t *testing.T) {
	checkMulStrategies(t, NewContext(3, DegRevLex), 23)
}

func Test_MulThreaded_01(t *testing.T) {
	// Threaded and sequential products agree on larger operands
	ctx := NewContext(3, DegRevLex)
	rng := rand.New(rand.NewSource(24))
	//
	for i := 0; i < 5; i++ {
		var (
			a = RandTestBound(rng, ctx, 100, 30, 64)
			b = RandTestBound(rng, ctx, 100, 30, 64)
			//
			seq = NewPoly(ctx).MulJohnson(a, b, ctx)
			par = NewPoly(ctx).MulThreaded(a, b, ctx)
		)
		//
		if !par.Equal(seq, ctx) {
			t.Errorf("threaded product differs from sequential")
		}
	}
}

func Test_Pow_01(t *testing.T) {
	// (x + 1)^2 = x^2 + 2x + 1
	ctx := NewContext(1, Lex)
	//
	var (
		base     = mustParse(t, "x0 + 1", ctx)
		expected = mustParse(t, "x0^2 + 2*x0 + 1", ctx)
		p        = NewPoly(ctx)
	)
	//
	if err := p.Pow(base, 2, ctx); err != nil {
		t.Fatal(err)
	}
	//
	if !p.Equal(expected, ctx) {
		t.Errorf("expected %s, got %s", expected.String(ctx), p.String(ctx))
	}
}

func Test_Pow_02(t *testing.T) {
	// a^(i+j) == a^i * a^j across the iterate/binary threshold
	ctx := NewContext(2, DegLex)
	rng := rand.New(rand.NewSource(25))
	a := RandTestBound(rng, ctx, 5, 4, 16)
	//
	for _, split := range [][2]int64{{1, 2}, {3, 4}, {5, 7}} {
		var (
			pi = NewPoly(ctx)
			pj = NewPoly(ctx)
			ps = NewPoly(ctx)
		)
		//
		if err := pi.Pow(a, split[0], ctx); err != nil {
			t.Fatal(err)
		}
		//
		if err := pj.Pow(a, split[1], ctx); err != nil {
			t.Fatal(err)
		}
		//
		if err := ps.Pow(a, split[0]+split[1], ctx); err != nil {
			t.Fatal(err)
		}
		//
		prod := NewPoly(ctx).Mul(pi, pj, ctx)
		//
		if !prod.Equal(ps, ctx) {
			t.Errorf("a^%d * a^%d != a^%d", split[0], split[1], split[0]+split[1])
		}
	}
}

func Test_Pow_03(t *testing.T) {
	ctx := NewContext(1, Lex)
	p := NewPoly(ctx)
	//
	if err := p.Pow(mustParse(t, "x0", ctx), -1, ctx); err == nil {
		t.Errorf("negative power should be rejected")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkMulStrategies(t *testing.T, ctx *Context, seed int64) {
	t.Helper()
	//
	rng := rand.New(rand.NewSource(seed))
	//
	for i := 0; i < 10; i++ {
		var (
			a = RandTestBound(rng, ctx, 12, 6, 48)
			b = RandTestBound(rng, ctx, 12, 6, 48)
			//
			johnson    = NewPoly(ctx).MulJohnson(a, b, ctx)
			dispatched = NewPoly(ctx).Mul(a, b, ctx)
			array      = NewPoly(ctx)
		)
		//
		if !dispatched.Equal(johnson, ctx) {
			t.Errorf("dispatcher disagrees with johnson for %s * %s", a.String(ctx), b.String(ctx))
		}
		// Dense strategy is only defined when the array fits
		if array.MulArray(a, b, ctx) && !array.Equal(johnson, ctx) {
			t.Errorf("array strategy disagrees with johnson for %s * %s", a.String(ctx), b.String(ctx))
		}
		//
		checkCanonical(t, dispatched, ctx, dispatched.Len())
	}
}
