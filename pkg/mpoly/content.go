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

import "math/big"

// Content returns the integer content of this polynomial, the non-negative
// GCD of all coefficients, with zero for the zero polynomial.
func (p *Poly) Content() *big.Int {
	g := new(big.Int)
	//
	for i := range p.coeffs {
		g.GCD(nil, nil, g, absInt(&p.coeffs[i]))
		//
		if g.Cmp(bigOne) == 0 {
			break
		}
	}
	//
	return g
}

// PrimitivePart sets p to a divided by its content, additionally normalised
// so the leading coefficient is positive; the zero polynomial stays zero.  p
// may alias a.
func (p *Poly) PrimitivePart(a *Poly, ctx *Context) *Poly {
	if a.IsZero() {
		return p.SetZero()
	}
	//
	c := a.Content()
	//
	if a.coeffs[0].Sign() < 0 {
		c.Neg(c)
	}
	//
	return p.DivExactScalar(a, c, ctx)
}
