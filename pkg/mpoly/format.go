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
	"fmt"
	"strings"
)

// Format renders p deterministically in term order, using the given variable
// names.  Missing names default to x0, x1, and so on.
func (p *Poly) Format(names []string, ctx *Context) string {
	if p.IsZero() {
		return "0"
	}
	//
	var (
		l    = ctx.layoutFor(p.bits)
		exps = make([]uint64, ctx.nvars)
		sb   strings.Builder
	)
	//
	for i := uint(0); i < p.Len(); i++ {
		l.unpack(exps, p.exp(i, l))
		//
		var (
			coeff = &p.coeffs[i]
			neg   = coeff.Sign() < 0
		)
		//
		if i == 0 {
			if neg {
				sb.WriteString("-")
			}
		} else if neg {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		//
		sb.WriteString(formatTerm(coeff.String(), neg, exps, names))
	}
	//
	return sb.String()
}

// String renders p with default variable names.
func (p *Poly) String(ctx *Context) string {
	return p.Format(nil, ctx)
}

func formatTerm(coeff string, neg bool, exps []uint64, names []string) string {
	var parts []string
	// Strip the sign; it has already been printed
	if neg {
		coeff = coeff[1:]
	}
	//
	constant := true
	//
	for v, e := range exps {
		if e == 0 {
			continue
		}
		//
		constant = false
		name := variableName(names, v)
		//
		if e == 1 {
			parts = append(parts, name)
		} else {
			parts = append(parts, fmt.Sprintf("%s^%d", name, e))
		}
	}
	//
	if constant || coeff != "1" {
		parts = append([]string{coeff}, parts...)
	}
	//
	return strings.Join(parts, "*")
}

func variableName(names []string, v int) string {
	if v < len(names) && names[v] != "" {
		return names[v]
	}
	//
	return fmt.Sprintf("x%d", v)
}
