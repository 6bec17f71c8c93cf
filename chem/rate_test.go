// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import (
	"testing"

	"github.com/emer/gillespie/expr"
	"github.com/stretchr/testify/assert"
)

func TestLMAFallingFactorial(t *testing.T) {
	species := []int64{5, 3}
	assert.Equal(t, 40.0, LMA(2.0, []uint{2, 0}).Evaluate(species))
	assert.Equal(t, 0.0, LMA(2.0, []uint{6, 0}).Evaluate(species))
	assert.Equal(t, 60.0, LMA(2.0, []uint{1, 2}).Evaluate(species))
}

func TestLMAZeroExponentIsOne(t *testing.T) {
	r := LMA(3.0, []uint{0, 0, 0})
	assert.Equal(t, 3.0, r.Evaluate([]int64{0, 100, -5}))
}

func TestLMASparseMatchesDense(t *testing.T) {
	species := []int64{5, 3, 9}
	dense := LMA(2.0, []uint{1, 2, 0})
	sparse := LMASparse(2.0, []Exponent{{Species: 0, Exponent: 1}, {Species: 1, Exponent: 2}})
	assert.Equal(t, dense.Evaluate(species), sparse.Evaluate(species))
}

func TestRateToSparseToDenseRoundTrip(t *testing.T) {
	species := []int64{5, 3, 9}
	dense := LMA(2.0, []uint{1, 0, 3})
	sparse := dense.ToSparse()
	assert.Equal(t, RateSparseLMA, sparse.Form())
	assert.Equal(t, dense.Evaluate(species), sparse.Evaluate(species))

	back := sparse.ToDense(3)
	assert.Equal(t, RateDenseLMA, back.Form())
	assert.Equal(t, dense.Evaluate(species), back.Evaluate(species))
}

func TestExprRateIsUnchangedByConversion(t *testing.T) {
	e := expr.NewMul(expr.NewConstant(2), expr.NewSpeciesRef(0))
	r := ExprRate(e)
	assert.Equal(t, r, r.ToSparse())
	assert.Equal(t, r, r.ToDense(4))
}

func TestExprRateEvaluate(t *testing.T) {
	p, err := expr.Parse("k1 * A * A")
	assert.NoError(t, err)
	e, err := p.Resolve(map[string]int{"A": 0}, map[string]float64{"k1": 0.5})
	assert.NoError(t, err)
	r := ExprRate(e)
	assert.Equal(t, 18.0, r.Evaluate([]int64{6}))
}
