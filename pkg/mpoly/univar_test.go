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

func Test_Univar_01(t *testing.T) {
	// x0^2*x1 + x0*x1 + x1 + 5 along x0 has groups for exponents 2, 1, 0
	ctx := NewContext(2, DegRevLex)
	a := mustParse(t, "x0^2*x1 + x0*x1 + x1 + 5", ctx)
	//
	u, err := ToUnivar(a, 0, ctx)
	if err != nil {
		t.Fatal(err)
	}
	//
	if u.Len() != 3 || u.Degree() != 2 {
		t.Fatalf("expected 3 groups of degree 2, got %d of degree %d", u.Len(), u.Degree())
	}
	//
	var (
		expected = []string{"x1", "x1", "x1 + 5"}
		exps     = []uint64{2, 1, 0}
	)
	//
	for i := range expected {
		if u.Exps[i] != exps[i] {
			t.Errorf("group %d: expected exponent %d, got %d", i, exps[i], u.Exps[i])
		}
		//
		if !u.Coeffs[i].Equal(mustParse(t, expected[i], ctx), ctx) {
			t.Errorf("group %d: expected %s, got %s", i, expected[i], u.Coeffs[i].String(ctx))
		}
	}
}

func Test_Univar_02(t *testing.T) {
	// Decomposition and reconstruction round trip in every variable
	for _, ordering := range []Ordering{Lex, DegLex, DegRevLex} {
		ctx := NewContext(3, ordering)
		rng := rand.New(rand.NewSource(50))
		//
		for i := 0; i < 10; i++ {
			a := RandTestBound(rng, ctx, 10, 8, 32)
			//
			for v := uint(0); v < 3; v++ {
				u, err := ToUnivar(a, v, ctx)
				if err != nil {
					t.Fatal(err)
				}
				//
				back, err := FromUnivar(u, ctx)
				if err != nil {
					t.Fatal(err)
				}
				//
				if !back.Equal(a, ctx) {
					t.Errorf("round trip in x%d changed %s into %s", v, a.String(ctx), back.String(ctx))
				}
			}
		}
	}
}

func Test_Univar_03(t *testing.T) {
	// Coefficient polynomials are free of the decomposition variable
	ctx := NewContext(2, Lex)
	a := mustParse(t, "x0^3*x1^2 + 2*x0*x1 + 7", ctx)
	//
	u, err := ToUnivar(a, 1, ctx)
	if err != nil {
		t.Fatal(err)
	}
	//
	for i, c := range u.Coeffs {
		if c.Degree(1, ctx) > 0 {
			t.Errorf("group %d still mentions x1: %s", i, c.String(ctx))
		}
	}
}

func Test_Univar_04(t *testing.T) {
	// Out of range variables are rejected
	ctx := NewContext(2, Lex)
	a := mustParse(t, "x0 + x1", ctx)
	//
	if _, err := ToUnivar(a, 2, ctx); err == nil {
		t.Errorf("expected error for variable 2 of 2")
	}
	//
	if _, err := FromUnivar(&Univar{Var: 5}, ctx); err == nil {
		t.Errorf("expected error for variable 5 of 2")
	}
}
