// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

// JumpForm discriminates the two ways a reaction's stoichiometry update
// can be represented.
type JumpForm uint8

const (
	// JumpDense stores one signed delta per species, including species
	// the reaction leaves untouched (delta 0).
	JumpDense JumpForm = iota
	// JumpSparse stores only the species whose count actually changes.
	JumpSparse
)

// Delta pairs a species index with the signed change a reaction firing
// applies to it, the sparse-jump storage unit.
type Delta struct {
	Species int
	Delta   int64
}

// Jump is a reaction's stoichiometry update: the change applied to the
// species vector each time the reaction fires. Build one with Dense or
// Sparse.
type Jump struct {
	form   JumpForm
	dense  []int64
	sparse []Delta
}

// Dense builds a dense jump from a delta per species, in species index
// order.
func Dense(deltas []int64) Jump {
	dense := make([]int64, len(deltas))
	copy(dense, deltas)
	return Jump{form: JumpDense, dense: dense}
}

// Sparse builds a jump that only names the species whose count actually
// changes.
func Sparse(pairs []Delta) Jump {
	sparse := make([]Delta, len(pairs))
	copy(sparse, pairs)
	return Jump{form: JumpSparse, sparse: sparse}
}

// Form reports which of the two representations j holds.
func (j Jump) Form() JumpForm { return j.form }

// Apply adds j's deltas to species in place.
func (j Jump) Apply(species []int64) {
	switch j.form {
	case JumpDense:
		for i, d := range j.dense {
			if d != 0 {
				species[i] += d
			}
		}
	case JumpSparse:
		for _, p := range j.sparse {
			species[p.Species] += p.Delta
		}
	default:
		panic("chem: unknown JumpForm")
	}
}

// ToSparse converts a dense jump into the sparse representation,
// dropping zero-delta entries. A jump already sparse is returned
// unchanged.
func (j Jump) ToSparse() Jump {
	if j.form != JumpDense {
		return j
	}
	var pairs []Delta
	for i, d := range j.dense {
		if d != 0 {
			pairs = append(pairs, Delta{Species: i, Delta: d})
		}
	}
	return Sparse(pairs)
}

// ToDense converts a sparse jump into the dense representation against
// nSpecies species. A jump already dense is returned unchanged.
func (j Jump) ToDense(nSpecies int) Jump {
	if j.form != JumpSparse {
		return j
	}
	dense := make([]int64, nSpecies)
	for _, p := range j.sparse {
		dense[p.Species] += p.Delta
	}
	return Dense(dense)
}
