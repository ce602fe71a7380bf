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
)

// RandTest returns a random polynomial with up to length terms, exponents
// bounded by maxExp in every variable, and coefficients of at most coeffBits
// bits.  Terms may collide or cancel, so the result can be shorter than
// requested; it is always canonical.
func RandTest(rng *rand.Rand, ctx *Context, length uint, maxExp uint64, coeffBits uint) *Poly {
	var (
		builder = NewBuilderWithCapacity(ctx, length)
		exps    = make([]uint64, ctx.nvars)
		coeff   big.Int
	)
	//
	if coeffBits == 0 {
		coeffBits = 1
	}
	//
	for i := uint(0); i < length; i++ {
		for v := range exps {
			exps[v] = randExponent(rng, maxExp)
		}
		//
		randCoeff(rng, &coeff, coeffBits)
		//
		if coeff.Sign() == 0 {
			continue
		}
		//
		if err := builder.Push(&coeff, exps); err != nil {
			panic(err)
		}
	}
	//
	return builder.Build()
}

// RandTestBound is as RandTest except the total degree of every term is
// bounded, which keeps products and powers of the result manageable.
func RandTestBound(rng *rand.Rand, ctx *Context, length uint, totalDeg uint64, coeffBits uint) *Poly {
	var (
		builder = NewBuilderWithCapacity(ctx, length)
		exps    = make([]uint64, ctx.nvars)
		coeff   big.Int
	)
	//
	if coeffBits == 0 {
		coeffBits = 1
	}
	//
	for i := uint(0); i < length; i++ {
		budget := totalDeg
		//
		for v := range exps {
			exps[v] = randExponent(rng, budget)
			budget -= exps[v]
		}
		//
		randCoeff(rng, &coeff, coeffBits)
		//
		if coeff.Sign() == 0 {
			continue
		}
		//
		if err := builder.Push(&coeff, exps); err != nil {
			panic(err)
		}
	}
	//
	return builder.Build()
}

func randExponent(rng *rand.Rand, max uint64) uint64 {
	if max == 0 {
		return 0
	}
	//
	if max >= uint64(1)<<62 {
		max = uint64(1)<<62 - 1
	}
	//
	return uint64(rng.Int63n(int64(max) + 1))
}

func randCoeff(rng *rand.Rand, dst *big.Int, bits uint) {
	dst.Rand(rng, new(big.Int).Lsh(bigOne, bits))
	//
	if rng.Intn(2) == 1 {
		dst.Neg(dst)
	}
}
