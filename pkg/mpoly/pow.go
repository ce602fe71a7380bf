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

// PowIterThreshold is the largest exponent for which Pow multiplies
// iteratively instead of squaring.  Iterated multiplication keeps
// intermediates no larger than the result, which beats full squaring for
// small powers of sparse operands.
var PowIterThreshold = int64(8)

// Pow sets p to a raised to the power k, failing on negative k.  p may alias
// a.
func (p *Poly) Pow(a *Poly, k int64, ctx *Context) error {
	switch {
	case k < 0:
		return ErrNegativeExponent
	case k == 0:
		p.SetOne(ctx)
		return nil
	case k == 1:
		p.Set(a, ctx)
		return nil
	}
	//
	if k <= PowIterThreshold {
		res := a.Clone(ctx)
		//
		for i := int64(1); i < k; i++ {
			res.Mul(res, a, ctx)
		}
		//
		p.Swap(res)
		//
		return nil
	}
	// Repeated squaring
	var (
		base = a.Clone(ctx)
		res  = NewPoly(ctx).SetOne(ctx)
	)
	//
	for k > 0 {
		if k&1 == 1 {
			res.Mul(res, base, ctx)
		}
		//
		k >>= 1
		//
		if k > 0 {
			base.Mul(base, base, ctx)
		}
	}
	//
	p.Swap(res)
	//
	return nil
}
