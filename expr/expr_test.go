// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalArithmetic(t *testing.T) {
	// A=0 B=1 C=2 D=3 E=4 F=5, species = [2,3,5,7,11,13]
	species := []int64{2, 3, 5, 7, 11, 13}
	p, err := Parse("1.21 * C + B - A / D ^ E * (F + exp(D))")
	require.NoError(t, err)
	e, err := p.Resolve(map[string]int{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 5}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 9.049998877643098, e.Eval(species), 1e-9)
}

func TestParseVariableNamesThatLookLikeLiterals(t *testing.T) {
	for _, name := range []string{"inf", "nan", "e", "E", "infect", "nanny", "explicit", "expr"} {
		p, err := Parse(name)
		require.NoError(t, err, name)
		assert.Equal(t, PVariable, p.Kind, name)
		assert.Equal(t, name, p.Name, name)
	}
}

func TestParseExpCall(t *testing.T) {
	p, err := Parse("exp(2)")
	require.NoError(t, err)
	assert.Equal(t, PExp, p.Kind)
	assert.Equal(t, PConstant, p.Left.Kind)
	assert.Equal(t, 2.0, p.Left.Const)
}

func TestParseNoChainedPow(t *testing.T) {
	_, err := Parse("2 ^ 3 ^ 2")
	assert.Error(t, err)
}

func TestParseSignedLiteral(t *testing.T) {
	p, err := Parse("-2.04e3")
	require.NoError(t, err)
	assert.Equal(t, PConstant, p.Kind)
	assert.InDelta(t, -2040.0, p.Const, 1e-9)
}

func TestDisplayRoundTrip(t *testing.T) {
	cases := []string{
		"1.2",
		"A",
		"(A + B)",
		"(A - (B * C))",
		"exp((A + 1))",
		"((A ^ B) / C)",
	}
	for _, text := range cases {
		p, err := Parse(text)
		require.NoError(t, err, text)
		rendered := p.String()
		p2, err := Parse(rendered)
		require.NoError(t, err, rendered)
		assert.Equal(t, p, p2, "round-trip mismatch for %q -> %q", text, rendered)
	}
}

func TestResolveUnknownName(t *testing.T) {
	p, err := Parse("A + k1")
	require.NoError(t, err)
	_, err = p.Resolve(map[string]int{"A": 0}, map[string]float64{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownName)
}

func TestResolveSpeciesAndParams(t *testing.T) {
	p, err := Parse("k1 * A")
	require.NoError(t, err)
	e, err := p.Resolve(map[string]int{"A": 0}, map[string]float64{"k1": 2.5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, e.Eval([]int64{2}))
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("A + B)")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseUnicodeIdentifiers(t *testing.T) {
	p, err := Parse("αA * θR")
	require.NoError(t, err)
	assert.Equal(t, PMul, p.Kind)
	assert.Equal(t, "αA", p.Left.Name)
	assert.Equal(t, "θR", p.Right.Name)
}
