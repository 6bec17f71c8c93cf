// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gillespie

import "github.com/emer/gillespie/expr"

type rateSpecKind uint8

const (
	rateSpecConstant rateSpecKind = iota
	rateSpecExpr
)

// RateSpec is how a reaction's propensity is given to AddReaction:
// either a single law-of-mass-action constant (the exponents are
// inferred from the reactant multiset), or an arbitrary expression over
// species and parameter names, parsed from text.
type RateSpec struct {
	kind     rateSpecKind
	constant float64
	exprText string
	parsed   *expr.PExpr
}

// LMA builds a law-of-mass-action RateSpec with constant c; the
// exponent for each reactant is how many times it appears in the
// reactant multiset passed to AddReaction.
func LMA(c float64) RateSpec {
	return RateSpec{kind: rateSpecConstant, constant: c}
}

// ExprRate builds a RateSpec from an expression given as text, in the
// grammar expr.Parse accepts. The text is parsed when the RateSpec is
// passed to AddReaction, so a malformed expression is reported from
// AddReaction itself, not deferred to Run.
func ExprRate(text string) RateSpec {
	return RateSpec{kind: rateSpecExpr, exprText: text}
}

// String renders the RateSpec the way System.String lists it per
// reaction: "LMA(c)" for a mass-action constant, or the parsed
// expression's fully parenthesized Display form.
func (r RateSpec) String() string {
	if r.kind == rateSpecExpr && r.parsed != nil {
		return r.parsed.String()
	}
	return "LMA(" + formatFloat(r.constant) + ")"
}
