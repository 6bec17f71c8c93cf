// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ssa

import (
	"fmt"
	"math"

	"github.com/emer/gillespie/chem"
	"github.com/emer/gillespie/erand"
)

// Reaction pairs a propensity function with the stoichiometry update it
// applies when it fires.
type Reaction struct {
	Rate chem.Rate
	Jump chem.Jump
}

// Engine runs the Direct Method over a fixed set of reactions against a
// mutable species vector. It owns exactly one RNG stream; running
// independent replicates means constructing independent Engines with
// distinct seeds, not sharing one across goroutines.
type Engine struct {
	species   []int64
	time      float64
	reactions []Reaction
	rng       *erand.Source
	sparse    bool
	cum       []float64
}

// NewEngine builds an Engine over initial species counts, seeded from
// the operating system's entropy pool. sparse selects the storage form
// AddReaction converts each reaction's Rate and Jump to: the sparse
// forms when true, the dense forms otherwise. Expression rates are
// stored unchanged either way.
func NewEngine(initial []int64, sparse bool) *Engine {
	return &Engine{
		species: append([]int64(nil), initial...),
		sparse:  sparse,
		rng:     erand.NewOSSource(),
	}
}

// NewEngineSeeded builds an Engine exactly as NewEngine does, but seeded
// deterministically: the same seed and the same sequence of AddReaction
// and Advance* calls reproduce an identical trajectory.
func NewEngineSeeded(initial []int64, sparse bool, seed uint64) *Engine {
	e := NewEngine(initial, sparse)
	e.rng.Seed(seed)
	return e
}

// Seed reseeds the engine's RNG stream in place.
func (e *Engine) Seed(seed uint64) { e.rng.Seed(seed) }

// AddReaction appends a reaction with the given propensity and dense
// stoichiometry delta, one entry per species. The rate and the delta are
// stored in the sparse or dense chem forms according to the sparse flag
// NewEngine was given.
func (e *Engine) AddReaction(rate chem.Rate, deltas []int64) error {
	if len(deltas) != len(e.species) {
		return fmt.Errorf("ssa: %w: reaction delta has %d entries, engine has %d species",
			chem.ErrLengthMismatch, len(deltas), len(e.species))
	}
	jump := chem.Dense(deltas)
	if e.sparse {
		jump = jump.ToSparse()
		rate = rate.ToSparse()
	} else {
		rate = rate.ToDense(len(e.species))
	}
	e.reactions = append(e.reactions, Reaction{Rate: rate, Jump: jump})
	e.cum = append(e.cum, 0)
	return nil
}

// SetSpecies overwrites the entire species vector.
func (e *Engine) SetSpecies(species []int64) error {
	if len(species) != len(e.species) {
		return fmt.Errorf("ssa: %w: got %d species, engine has %d",
			chem.ErrLengthMismatch, len(species), len(e.species))
	}
	copy(e.species, species)
	return nil
}

// GetSpecies returns the current count of species i.
func (e *Engine) GetSpecies(i int) int64 { return e.species[i] }

// GetTime returns the engine's current simulation clock.
func (e *Engine) GetTime() float64 { return e.time }

// SetTime overwrites the simulation clock without otherwise touching
// engine state.
func (e *Engine) SetTime(t float64) { e.time = t }

// NSpecies returns the number of species the engine tracks.
func (e *Engine) NSpecies() int { return len(e.species) }

// NReactions returns the number of reactions registered so far.
func (e *Engine) NReactions() int { return len(e.reactions) }

// AdvanceOneReaction draws and fires a single reaction, advancing the
// clock by the sampled waiting time. If every propensity is zero, or
// the total propensity is not finite, the chain has reached a terminal
// state: the clock is set to +Inf and the species vector is left
// untouched, rather than returning an error (spec.md's "runtime,
// degenerate" case).
func (e *Engine) AdvanceOneReaction() {
	total := e.fillCumulative()
	if !(total > 0) {
		e.time = math.Inf(1)
		return
	}
	dt := e.rng.Exp1() / total
	e.fire(total)
	e.time += dt
}

// AdvanceUntil fires reactions until the clock would exceed tmax, then
// clamps the clock to tmax exactly. A degenerate (zero/non-finite
// propensity) state also clamps the clock to tmax and returns, matching
// AdvanceOneReaction's silent-termination behavior.
func (e *Engine) AdvanceUntil(tmax float64) {
	for e.time < tmax {
		total := e.fillCumulative()
		if !(total > 0) {
			e.time = tmax
			return
		}
		dt := e.rng.Exp1() / total
		if e.time+dt > tmax {
			e.time = tmax
			return
		}
		e.fire(total)
		e.time += dt
	}
}

// fillCumulative evaluates every reaction's propensity against the
// current species vector into the reused scratch buffer e.cum, turning
// it into a running cumulative sum in place, and returns the total
// (the last, and largest, entry), or 0 when that total is NaN or
// infinite. The buffer is sized once in AddReaction and never
// reallocated per step.
func (e *Engine) fillCumulative() float64 {
	sum := 0.0
	for i, r := range e.reactions {
		sum += r.Rate.Evaluate(e.species)
		e.cum[i] = sum
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0
	}
	return sum
}

// fire draws a uniform threshold in [0, total) and selects the reaction
// whose cumulative propensity first reaches it: the number of cum
// entries strictly less than the threshold is exactly that reaction's
// index. A threshold that falls exactly on an entry selects that entry's
// own reaction, the earlier of the two neighbouring indices, since an
// entry equal to the threshold is not counted as less-than.
func (e *Engine) fire(total float64) {
	threshold := e.rng.Uniform() * total
	idx := 0
	for _, c := range e.cum {
		if c < threshold {
			idx++
		}
	}
	if idx >= len(e.reactions) {
		idx = len(e.reactions) - 1
	}
	e.reactions[idx].Jump.Apply(e.species)
}
