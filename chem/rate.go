// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import "github.com/emer/gillespie/expr"

// RateForm discriminates the three ways a reaction's propensity can be
// represented.
type RateForm uint8

const (
	// RateDenseLMA is law-of-mass-action with one exponent per species,
	// including species the reaction does not touch (exponent 0).
	RateDenseLMA RateForm = iota
	// RateSparseLMA is law-of-mass-action storing only the species with
	// a nonzero exponent.
	RateSparseLMA
	// RateExpr is an arbitrary expression over species counts.
	RateExpr
)

// Exponent pairs a species index with its law-of-mass-action exponent,
// the sparse-LMA storage unit.
type Exponent struct {
	Species  int
	Exponent uint
}

// Rate is a reaction's propensity function. It is built by LMA,
// LMASparse or ExprRate and evaluated once per Direct Method step; its
// zero value is not meaningful on its own.
type Rate struct {
	form     RateForm
	constant float64
	dense    []uint
	sparse   []Exponent
	expr     *expr.Expr
}

// LMA builds a dense law-of-mass-action rate c * prod_i falling(n_i, e_i)
// over every species in the system, with exponents given in species
// index order.
func LMA(c float64, exponents []uint) Rate {
	dense := make([]uint, len(exponents))
	copy(dense, exponents)
	return Rate{form: RateDenseLMA, constant: c, dense: dense}
}

// LMASparse builds a law-of-mass-action rate that only names the
// species with a nonzero exponent, for reactions in a system with many
// species relative to the number any one reaction actually consumes.
func LMASparse(c float64, pairs []Exponent) Rate {
	sparse := make([]Exponent, len(pairs))
	copy(sparse, pairs)
	return Rate{form: RateSparseLMA, constant: c, sparse: sparse}
}

// ExprRate builds a rate from an arbitrary resolved expression over
// species counts, for kinetics (Michaelis-Menten, Hill, ...) that are
// not themselves a single mass-action term.
func ExprRate(e *expr.Expr) Rate {
	return Rate{form: RateExpr, expr: e}
}

// Form reports which of the three representations r holds.
func (r Rate) Form() RateForm { return r.form }

// Evaluate computes the propensity for the given species counts.
func (r Rate) Evaluate(species []int64) float64 {
	switch r.form {
	case RateDenseLMA:
		v := r.constant
		for i, e := range r.dense {
			if e == 0 {
				continue
			}
			v *= fallingFactorial(species[i], e)
		}
		return v
	case RateSparseLMA:
		v := r.constant
		for _, p := range r.sparse {
			v *= fallingFactorial(species[p.Species], p.Exponent)
		}
		return v
	case RateExpr:
		return r.expr.Eval(species)
	default:
		panic("chem: unknown RateForm")
	}
}

// ToSparse converts a dense law-of-mass-action rate into the sparse
// representation, dropping zero-exponent entries. Sparse and Expr rates
// are returned unchanged: sparse is already sparse, and an expression
// carries no per-species exponent vector to compact.
func (r Rate) ToSparse() Rate {
	if r.form != RateDenseLMA {
		return r
	}
	var pairs []Exponent
	for i, e := range r.dense {
		if e != 0 {
			pairs = append(pairs, Exponent{Species: i, Exponent: e})
		}
	}
	return LMASparse(r.constant, pairs)
}

// ToDense converts a sparse law-of-mass-action rate into the dense
// representation against nSpecies species. Dense and Expr rates are
// returned unchanged.
func (r Rate) ToDense(nSpecies int) Rate {
	if r.form != RateSparseLMA {
		return r
	}
	dense := make([]uint, nSpecies)
	for _, p := range r.sparse {
		dense[p.Species] = p.Exponent
	}
	return LMA(r.constant, dense)
}
