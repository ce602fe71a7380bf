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

func Test_RingLaws_01(t *testing.T) {
	checkRingLaws(t, NewContext(2, Lex), 17)
}

func Test_RingLaws_02(t *testing.T) {
	checkRingLaws(t, NewContext(3, DegLex), 31)
}

func Test_RingLaws_03(t *testing.T) {
	checkRingLaws(t, NewContext(4, DegRevLex), 53)
}

func Test_AddSub_01(t *testing.T) {
	// a + b - b == a
	ctx := NewContext(3, DegRevLex)
	rng := rand.New(rand.NewSource(7))
	//
	for i := 0; i < 20; i++ {
		var (
			a   = RandTestBound(rng, ctx, 15, 20, 64)
			b   = RandTestBound(rng, ctx, 15, 20, 64)
			sum = NewPoly(ctx)
		)
		//
		sum.Add(a, b, ctx)
		sum.Sub(sum, b, ctx)
		//
		if !sum.Equal(a, ctx) {
			t.Errorf("a+b-b != a for %s, %s", a.String(ctx), b.String(ctx))
		}
	}
}

func Test_Neg_01(t *testing.T) {
	// a + (-a) == 0
	ctx := NewContext(2, DegLex)
	rng := rand.New(rand.NewSource(8))
	//
	for i := 0; i < 20; i++ {
		var (
			a   = RandTestBound(rng, ctx, 15, 20, 64)
			n   = NewPoly(ctx).Neg(a, ctx)
			sum = NewPoly(ctx).Add(a, n, ctx)
		)
		//
		if !sum.IsZero() {
			t.Errorf("a + (-a) != 0 for %s", a.String(ctx))
		}
	}
}

func Test_Scalar_01(t *testing.T) {
	// (a * c) / c == a for nonzero c
	ctx := NewContext(2, Lex)
	rng := rand.New(rand.NewSource(9))
	//
	for i := 0; i < 20; i++ {
		var (
			a = RandTestBound(rng, ctx, 10, 15, 32)
			c = big.NewInt(int64(rng.Intn(100) + 1))
			p = NewPoly(ctx)
		)
		//
		p.MulScalar(a, c, ctx)
		p.DivExactScalar(p, c, ctx)
		//
		if !p.Equal(a, ctx) {
			t.Errorf("(a*%s)/%s != a for %s", c, c, a.String(ctx))
		}
	}
}

func Test_FMA_01(t *testing.T) {
	// fma(a, c, b, d) == a*c + b*d
	ctx := NewContext(3, DegRevLex)
	rng := rand.New(rand.NewSource(10))
	//
	for i := 0; i < 20; i++ {
		var (
			a = RandTestBound(rng, ctx, 10, 15, 32)
			b = RandTestBound(rng, ctx, 10, 15, 32)
			c = big.NewInt(int64(rng.Intn(20)) - 10)
			d = big.NewInt(int64(rng.Intn(20)) - 10)
			//
			fused = NewPoly(ctx).FMA(a, c, b, d, ctx)
			lhs   = NewPoly(ctx).MulScalar(a, c, ctx)
			rhs   = NewPoly(ctx).MulScalar(b, d, ctx)
		)
		//
		lhs.Add(lhs, rhs, ctx)
		//
		if !fused.Equal(lhs, ctx) {
			t.Errorf("fma mismatch for %s, %s", a.String(ctx), b.String(ctx))
		}
	}
}

func Test_Derivative_01(t *testing.T) {
	// degree(derivative(a, v), v) == degree(a, v) - 1 when positive
	ctx := NewContext(2, DegLex)
	rng := rand.New(rand.NewSource(11))
	//
	for i := 0; i < 20; i++ {
		a := RandTestBound(rng, ctx, 10, 10, 32)
		//
		for v := uint(0); v < 2; v++ {
			if a.Degree(v, ctx) < 1 {
				continue
			}
			//
			var d Poly
			if err := d.Derivative(a, v, ctx); err != nil {
				t.Fatal(err)
			}
			//
			checkCanonical(t, &d, ctx, d.Len())
			//
			if d.Degree(v, ctx) != a.Degree(v, ctx)-1 {
				t.Errorf("derivative degree %d, expected %d", d.Degree(v, ctx), a.Degree(v, ctx)-1)
			}
		}
	}
}

func Test_Integral_01(t *testing.T) {
	// derivative(integral(a, v), v) == scale * a
	ctx := NewContext(2, Lex)
	rng := rand.New(rand.NewSource(12))
	//
	for i := 0; i < 20; i++ {
		var (
			a     = RandTestBound(rng, ctx, 8, 10, 32)
			scale big.Int
			in    Poly
			back  Poly
		)
		//
		if err := in.Integral(&scale, a, 0, ctx); err != nil {
			t.Fatal(err)
		}
		//
		if err := back.Derivative(&in, 0, ctx); err != nil {
			t.Fatal(err)
		}
		//
		expected := NewPoly(ctx).MulScalar(a, &scale, ctx)
		//
		if !back.Equal(expected, ctx) {
			t.Errorf("derivative of integral mismatch for %s", a.String(ctx))
		}
	}
}

func Test_Evaluate_01(t *testing.T) {
	// Evaluation is a ring homomorphism: (a*b)(x) == a(x) * b(x)
	ctx := NewContext(3, DegRevLex)
	rng := rand.New(rand.NewSource(13))
	//
	for i := 0; i < 10; i++ {
		var (
			a    = RandTestBound(rng, ctx, 8, 8, 16)
			b    = RandTestBound(rng, ctx, 8, 8, 16)
			ab   = NewPoly(ctx).Mul(a, b, ctx)
			vals = []*big.Int{big.NewInt(3), big.NewInt(-2), big.NewInt(5)}
		)
		//
		va, okA := a.Evaluate(vals, ctx)
		vb, okB := b.Evaluate(vals, ctx)
		vab, okAB := ab.Evaluate(vals, ctx)
		//
		if !okA || !okB || !okAB {
			t.Fatal("evaluation failed")
		}
		//
		var prod big.Int
		prod.Mul(va, vb)
		//
		if prod.Cmp(vab) != 0 {
			t.Errorf("(a*b)(x) != a(x)*b(x): %s vs %s", vab, &prod)
		}
	}
}

func Test_Compose_01(t *testing.T) {
	// Substituting the generators is the identity
	ctx := NewContext(2, DegLex)
	rng := rand.New(rand.NewSource(14))
	//
	var (
		x = NewPoly(ctx)
		y = NewPoly(ctx)
	)
	//
	if err := x.Gen(0, ctx); err != nil {
		t.Fatal(err)
	}
	//
	if err := y.Gen(1, ctx); err != nil {
		t.Fatal(err)
	}
	//
	for i := 0; i < 10; i++ {
		var (
			a   = RandTestBound(rng, ctx, 8, 6, 16)
			out = NewPoly(ctx)
		)
		//
		if !out.Compose(a, []*Poly{x, y}, ctx, ctx) {
			t.Fatal("composition failed")
		}
		//
		if !out.Equal(a, ctx) {
			t.Errorf("compose with generators changed %s into %s", a.String(ctx), out.String(ctx))
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkRingLaws(t *testing.T, ctx *Context, seed int64) {
	t.Helper()
	//
	rng := rand.New(rand.NewSource(seed))
	//
	for i := 0; i < 10; i++ {
		var (
			a = RandTestBound(rng, ctx, 10, 12, 48)
			b = RandTestBound(rng, ctx, 10, 12, 48)
			c = RandTestBound(rng, ctx, 10, 12, 48)
		)
		// add commutes
		var (
			ab = NewPoly(ctx).Add(a, b, ctx)
			ba = NewPoly(ctx).Add(b, a, ctx)
		)
		//
		if !ab.Equal(ba, ctx) {
			t.Errorf("a+b != b+a")
		}
		// add associates
		var (
			abc1 = NewPoly(ctx).Add(ab, c, ctx)
			abc2 = NewPoly(ctx).Add(a, NewPoly(ctx).Add(b, c, ctx), ctx)
		)
		//
		if !abc1.Equal(abc2, ctx) {
			t.Errorf("(a+b)+c != a+(b+c)")
		}
		// mul commutes
		var (
			mab = NewPoly(ctx).Mul(a, b, ctx)
			mba = NewPoly(ctx).Mul(b, a, ctx)
		)
		//
		if !mab.Equal(mba, ctx) {
			t.Errorf("a*b != b*a")
		}
		// mul distributes over add
		var (
			lhs = NewPoly(ctx).Mul(a, NewPoly(ctx).Add(b, c, ctx), ctx)
			rhs = NewPoly(ctx).Add(NewPoly(ctx).Mul(a, b, ctx), NewPoly(ctx).Mul(a, c, ctx), ctx)
		)
		//
		if !lhs.Equal(rhs, ctx) {
			t.Errorf("a*(b+c) != a*b + a*c")
		}
	}
}
