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

// Ordering identifies a monomial ordering, that is a total order over exponent
// vectors which is compatible with vector addition and which has the zero
// vector as its minimum.
type Ordering uint8

const (
	// Lex is the lexicographic ordering, where variable 0 dominates.
	Lex Ordering = iota
	// DegLex orders by total degree first, breaking ties lexicographically.
	DegLex
	// DegRevLex orders by total degree first, breaking ties by reverse
	// lexicographic comparison (the monomial with the smaller exponent in the
	// last differing variable is larger).
	DegRevLex
)

// Graded indicates whether or not this ordering compares total degree before
// anything else.  Graded orderings reserve an additional packed field holding
// the precomputed total degree of each exponent vector.
func (o Ordering) Graded() bool {
	return o == DegLex || o == DegRevLex
}

// String returns a human-readable name for this ordering.
func (o Ordering) String() string {
	switch o {
	case Lex:
		return "lex"
	case DegLex:
		return "deglex"
	case DegRevLex:
		return "degrevlex"
	}
	//
	return "unknown"
}

// ParseOrdering converts a human-readable ordering name back into an Ordering.
func ParseOrdering(name string) (Ordering, bool) {
	switch name {
	case "lex":
		return Lex, true
	case "deglex":
		return DegLex, true
	case "degrevlex":
		return DegRevLex, true
	}
	//
	return Lex, false
}
