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

// Context describes a polynomial space: the number of variables and the
// monomial ordering under which terms are kept sorted.  A Context is immutable
// after construction and freely shareable between goroutines.  Every operation
// over one or more polynomials takes the Context they were built under; mixing
// polynomials from structurally different contexts is a caller error.
// Operands from different-but-equal contexts behave correctly, but exponent
// width bookkeeping is per Context, hence using one shared instance is the
// documented contract.
type Context struct {
	nvars    uint
	ordering Ordering
	// Precomputed packing layouts for each supported field width, indexed by
	// log2(bits) - 3.
	layouts [4]layout
}

// NewContext constructs a context for polynomials in nvars variables under the
// given monomial ordering.
func NewContext(nvars uint, ordering Ordering) *Context {
	var ctx = Context{nvars: nvars, ordering: ordering}
	//
	for i, b := range []uint{8, 16, 32, 64} {
		ctx.layouts[i] = newLayout(nvars, ordering, b)
	}
	//
	return &ctx
}

// NumVars returns the number of variables of this context.
func (c *Context) NumVars() uint {
	return c.nvars
}

// Ordering returns the monomial ordering of this context.
func (c *Context) Ordering() Ordering {
	return c.ordering
}

// Compatible reports whether another context describes the same polynomial
// space as this one.
func (c *Context) Compatible(other *Context) bool {
	return c.nvars == other.nvars && c.ordering == other.ordering
}

// layoutFor returns the packing layout for a supported field width.
func (c *Context) layoutFor(bitwidth uint) *layout {
	switch bitwidth {
	case 8:
		return &c.layouts[0]
	case 16:
		return &c.layouts[1]
	case 32:
		return &c.layouts[2]
	case 64:
		return &c.layouts[3]
	}
	//
	panic("unsupported exponent field width")
}
