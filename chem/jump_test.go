// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenseJumpApply(t *testing.T) {
	species := []int64{10, 0, 5}
	j := Dense([]int64{-1, 1, 0})
	j.Apply(species)
	assert.Equal(t, []int64{9, 1, 5}, species)
}

func TestSparseJumpApply(t *testing.T) {
	species := []int64{10, 0, 5}
	j := Sparse([]Delta{{Species: 0, Delta: -1}, {Species: 1, Delta: 1}})
	j.Apply(species)
	assert.Equal(t, []int64{9, 1, 5}, species)
}

func TestJumpToSparseToDenseRoundTrip(t *testing.T) {
	dense := Dense([]int64{-1, 0, 2})
	sparse := dense.ToSparse()
	assert.Equal(t, JumpSparse, sparse.Form())

	a := []int64{10, 10, 10}
	b := []int64{10, 10, 10}
	dense.Apply(a)
	sparse.Apply(b)
	assert.Equal(t, a, b)

	back := sparse.ToDense(3)
	c := []int64{10, 10, 10}
	back.Apply(c)
	assert.Equal(t, a, c)
}

func TestSparseJumpAccumulatesRepeatedSpecies(t *testing.T) {
	// A dimerization-style jump where one species appears in more than
	// one delta pair should accumulate rather than overwrite.
	j := Sparse([]Delta{{Species: 0, Delta: -2}, {Species: 0, Delta: 1}})
	dense := j.ToDense(1)
	assert.Equal(t, int64(-1), dense.dense[0])
}
