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

import "github.com/pkg/errors"

var (
	// ErrBadVariable indicates a variable index at or beyond the number of
	// variables of the relevant context.
	ErrBadVariable = errors.New("variable index out of range")
	// ErrOverflow indicates an exponent or degree which cannot be represented
	// in the packed encoding.
	ErrOverflow = errors.New("exponent exceeds packed representation")
	// ErrNegativeExponent indicates a negative exponent where only
	// non-negative exponents are meaningful.
	ErrNegativeExponent = errors.New("negative exponent")
)
