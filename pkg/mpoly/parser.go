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
	"unicode"

	"github.com/pkg/errors"
)

// Parse reads a polynomial expression over the named variables, producing
// its canonical form under the given context.  The grammar covers integer
// literals, named variables with "^" powers, "*" products, sums,
// differences, unary minus and parentheses — a superset of what Format
// emits, so printing and parsing round-trip up to canonical form.
func Parse(input string, names []string, ctx *Context) (*Poly, error) {
	p := &parser{input: input, names: names, ctx: ctx}
	//
	res, err := p.expr()
	if err != nil {
		return nil, err
	}
	//
	p.skipSpace()
	//
	if p.pos != len(p.input) {
		return nil, errors.Errorf("unexpected input at offset %d", p.pos)
	}
	//
	return res, nil
}

type parser struct {
	input string
	pos   int
	names []string
	ctx   *Context
}

// expr parses term (("+" | "-") term)*.
func (p *parser) expr() (*Poly, error) {
	res, err := p.term()
	if err != nil {
		return nil, err
	}
	//
	for {
		p.skipSpace()
		//
		switch p.peek() {
		case '+':
			p.pos++
			//
			rhs, err := p.term()
			if err != nil {
				return nil, err
			}
			//
			res.Add(res, rhs, p.ctx)
		case '-':
			p.pos++
			//
			rhs, err := p.term()
			if err != nil {
				return nil, err
			}
			//
			res.Sub(res, rhs, p.ctx)
		default:
			return res, nil
		}
	}
}

// term parses factor ("*" factor)*.
func (p *parser) term() (*Poly, error) {
	res, err := p.factor()
	if err != nil {
		return nil, err
	}
	//
	for {
		p.skipSpace()
		//
		if p.peek() != '*' {
			return res, nil
		}
		//
		p.pos++
		//
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		//
		res = NewPoly(p.ctx).Mul(res, rhs, p.ctx)
	}
}

// factor parses an integer literal, a variable with an optional power, a
// parenthesised expression, or a unary minus.
func (p *parser) factor() (*Poly, error) {
	p.skipSpace()
	//
	switch c := p.peek(); {
	case c == '-':
		p.pos++
		//
		f, err := p.factor()
		if err != nil {
			return nil, err
		}
		//
		return f.Neg(f, p.ctx), nil
	case c == '(':
		p.pos++
		//
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		//
		p.skipSpace()
		//
		if p.peek() != ')' {
			return nil, errors.Errorf("expected ')' at offset %d", p.pos)
		}
		//
		p.pos++
		//
		return p.power(e)
	case unicode.IsDigit(rune(c)):
		lit := p.integer()
		//
		coeff, ok := new(big.Int).SetString(lit, 10)
		if !ok {
			return nil, errors.Errorf("malformed integer %q", lit)
		}
		//
		return NewPoly(p.ctx).SetInt(coeff, p.ctx), nil
	case identStart(c):
		name := p.identifier()
		//
		v, ok := p.variable(name)
		if !ok {
			return nil, errors.Errorf("unknown variable %q", name)
		}
		//
		gen := NewPoly(p.ctx)
		if err := gen.Gen(v, p.ctx); err != nil {
			return nil, err
		}
		//
		return p.power(gen)
	default:
		return nil, errors.Errorf("unexpected character at offset %d", p.pos)
	}
}

// power parses an optional "^" exponent applied to base.
func (p *parser) power(base *Poly) (*Poly, error) {
	p.skipSpace()
	//
	if p.peek() != '^' {
		return base, nil
	}
	//
	p.pos++
	p.skipSpace()
	//
	lit := p.integer()
	if lit == "" {
		return nil, errors.Errorf("expected exponent at offset %d", p.pos)
	}
	//
	e, ok := new(big.Int).SetString(lit, 10)
	if !ok || !e.IsInt64() {
		return nil, errors.Errorf("exponent %q out of range", lit)
	}
	//
	res := NewPoly(p.ctx)
	if err := res.Pow(base, e.Int64(), p.ctx); err != nil {
		return nil, err
	}
	//
	return res, nil
}

// variable resolves a name against the configured list, falling back to the
// default x0, x1, ... scheme.
func (p *parser) variable(name string) (uint, bool) {
	for v, n := range p.names {
		if n == name {
			return uint(v), true
		}
	}
	//
	for v := uint(0); v < p.ctx.nvars; v++ {
		if variableName(p.names, int(v)) == name {
			return v, true
		}
	}
	//
	return 0, false
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	//
	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) integer() string {
	start := p.pos
	//
	for p.pos < len(p.input) && unicode.IsDigit(rune(p.input[p.pos])) {
		p.pos++
	}
	//
	return p.input[start:p.pos]
}

func (p *parser) identifier() string {
	start := p.pos
	p.pos++
	//
	for p.pos < len(p.input) && identPart(p.input[p.pos]) {
		p.pos++
	}
	//
	return p.input[start:p.pos]
}

func identStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func identPart(c byte) bool {
	return identStart(c) || unicode.IsDigit(rune(c))
}
