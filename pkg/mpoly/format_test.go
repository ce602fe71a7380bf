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

func Test_Format_01(t *testing.T) {
	ctx := NewContext(2, Lex)
	//
	checkFormat(t, ctx, "0", "0")
	checkFormat(t, ctx, "1", "1")
	checkFormat(t, ctx, "-1", "-1")
	checkFormat(t, ctx, "x0", "x0")
	checkFormat(t, ctx, "-x0", "-x0")
	checkFormat(t, ctx, "2*x0*x1^3", "2*x0*x1^3")
	checkFormat(t, ctx, "x0^2 - x1 + 4", "x0^2 - x1 + 4")
	checkFormat(t, ctx, "x1 - x0^2", "-x0^2 + x1")
}

func Test_Format_02(t *testing.T) {
	// Custom variable names, falling back to the default scheme when short
	ctx := NewContext(3, Lex)
	a := mustParse(t, "x0*x1 + x2", ctx)
	//
	if s := a.Format([]string{"u", "v"}, ctx); s != "u*v + x2" {
		t.Errorf("expected u*v + x2, got %s", s)
	}
}

func Test_Format_03(t *testing.T) {
	// Graded orderings render highest total degree first
	ctx := NewContext(2, DegLex)
	a := mustParse(t, "x0 + x1^2", ctx)
	//
	if s := a.String(ctx); s != "x1^2 + x0" {
		t.Errorf("expected x1^2 + x0, got %s", s)
	}
}

func Test_Parse_01(t *testing.T) {
	ctx := NewContext(2, Lex)
	//
	var (
		a = mustParse(t, "(x0 + x1)^2", ctx)
		b = mustParse(t, "x0^2 + 2*x0*x1 + x1^2", ctx)
	)
	//
	if !a.Equal(b, ctx) {
		t.Errorf("expected %s, got %s", b.String(ctx), a.String(ctx))
	}
}

func Test_Parse_02(t *testing.T) {
	// Named variables resolve against the supplied table
	ctx := NewContext(2, Lex)
	//
	a, err := Parse("u^2 - v", []string{"u", "v"}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	//
	if !a.Equal(mustParse(t, "x0^2 - x1", ctx), ctx) {
		t.Errorf("got %s", a.String(ctx))
	}
}

func Test_Parse_03(t *testing.T) {
	// Malformed inputs are rejected
	ctx := NewContext(2, Lex)
	//
	for _, input := range []string{"", "x0 +", "x5", "x0^", "(x0", "x0^-1", "2 2"} {
		if _, err := Parse(input, nil, ctx); err == nil {
			t.Errorf("expected parse error for %q", input)
		}
	}
}

func Test_Parse_04(t *testing.T) {
	// Formatting then parsing is the identity on random polynomials
	for _, ordering := range []Ordering{Lex, DegLex, DegRevLex} {
		ctx := NewContext(3, ordering)
		rng := rand.New(rand.NewSource(60))
		//
		for i := 0; i < 10; i++ {
			a := RandTestBound(rng, ctx, 10, 8, 32)
			//
			back, err := Parse(a.String(ctx), nil, ctx)
			if err != nil {
				t.Fatalf("cannot re-parse %s: %v", a.String(ctx), err)
			}
			//
			if !back.Equal(a, ctx) {
				t.Errorf("round trip changed %s into %s", a.String(ctx), back.String(ctx))
			}
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkFormat(t *testing.T, ctx *Context, input, expected string) {
	t.Helper()
	//
	if s := mustParse(t, input, ctx).String(ctx); s != expected {
		t.Errorf("expected %q, got %q", expected, s)
	}
}
