// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gillespie

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/emer/gillespie/chem"
	"github.com/emer/gillespie/expr"
	"github.com/emer/gillespie/rlog"
	"github.com/emer/gillespie/ssa"
)

type reaction struct {
	rate      RateSpec
	reactants []string
	products  []string
}

// System is a reaction network named by species strings. The zero value
// is not usable; build one with New.
type System struct {
	species   map[string]int
	order     []string
	init      map[string]int64
	reactions []reaction
	logger    *rlog.Logger
}

// New returns an empty System.
func New() *System {
	return &System{
		species: make(map[string]int),
		init:    make(map[string]int64),
	}
}

// SetLogger attaches a logger that receives the non-fatal SetInit
// warning and, at debug level, a line per Run call. A nil logger (the
// default) means the System stays silent.
func (s *System) SetLogger(l *rlog.Logger) { s.logger = l }

// AddSpecies registers a species name if it is not already known. Most
// callers never need this directly: AddReaction registers any reactant
// or product name it is given automatically.
func (s *System) AddSpecies(name string) {
	if _, ok := s.species[name]; ok {
		return
	}
	s.species[name] = len(s.order)
	s.order = append(s.order, name)
}

// NSpecies returns the number of species currently registered.
func (s *System) NSpecies() int { return len(s.order) }

// NReactions returns the number of reactions currently registered.
func (s *System) NReactions() int { return len(s.reactions) }

// AddReaction adds a reaction turning the reactant multiset into the
// product multiset at the given rate. Reactants and products are given
// as repeated names (two copies of "A" means the reaction consumes two
// A molecules); any name not already known is registered as a new
// species. If reverse is non-nil, a second reaction with the reactant
// and product multisets swapped is added at that rate -- a shorthand
// for reversible reactions, not a new kind of reaction.
func (s *System) AddReaction(rate RateSpec, reactants, products []string, reverse *RateSpec) error {
	if rate.kind == rateSpecExpr && rate.parsed == nil {
		p, err := expr.Parse(rate.exprText)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRateNotUnderstood, err)
		}
		rate.parsed = p
	}
	for _, name := range reactants {
		s.AddSpecies(name)
	}
	for _, name := range products {
		s.AddSpecies(name)
	}
	s.reactions = append(s.reactions, reaction{
		rate:      rate,
		reactants: append([]string(nil), reactants...),
		products:  append([]string(nil), products...),
	})
	if reverse != nil {
		return s.AddReaction(*reverse, products, reactants, nil)
	}
	return nil
}

// SetInit sets the initial molecule count for named species. A name not
// already registered by some AddReaction call is registered now, and
// its name is included in the returned warnings: such a species cannot
// affect any propensity or be changed by any jump, so it is almost
// certainly meant to be a Run parameter instead. The warnings are
// non-fatal -- the species is set regardless -- and are additionally
// logged at Warn level if a logger is attached.
func (s *System) SetInit(init map[string]int) []string {
	var warnings []string
	for name := range init {
		if _, ok := s.species[name]; !ok {
			s.AddSpecies(name)
			msg := fmt.Sprintf("species %q is not involved in any reaction; did you mean to pass it as a Run parameter instead?", name)
			warnings = append(warnings, msg)
			if s.logger != nil {
				s.logger.Warn(msg, map[string]any{"species": name})
			}
		}
	}
	for name, count := range init {
		s.init[name] = int64(count)
	}
	sort.Strings(warnings)
	return warnings
}

// SetInitConc sets the initial molecule count for a species from a
// concentration and a volume, via chem.CoToN, rounding to the nearest
// integer count. It is sugar over SetInit for modelers working from
// continuous concentration data; the species is still stored and
// reported as an integer count.
func (s *System) SetInitConc(name string, conc, vol float64) []string {
	n := chem.CoToN(conc, vol)
	return s.SetInit(map[string]int{name: int(n + 0.5)})
}

// RunOptions configures a Run call.
type RunOptions struct {
	// Seed, if non-nil, makes the run deterministic.
	Seed *uint64
	// Sparse selects sparse Jump/Rate storage in the underlying engine.
	Sparse bool
	// VarNames restricts and orders Result.Species' keys; nil reports
	// every species in registration order.
	VarNames []string
}

// Result is a Run trajectory: Times and, per requested species name, its
// count at each corresponding time.
type Result struct {
	Times   []float64
	Species map[string][]int64
}

// Run simulates the system from its SetInit configuration to tmax. If
// nbSteps is positive, the trajectory is sampled at nbSteps+1 uniformly
// spaced checkpoints from 0 to tmax; if nbSteps is 0, every reaction
// event is recorded until the clock reaches tmax, including the first
// event past tmax (spec.md's "nb_steps == 0" mode).
// In that mode, if the chain reaches a zero-propensity state before
// tmax, the final recorded time is +Inf (ssa.Engine.AdvanceOneReaction's
// degenerate-state marker) with the species left at their last value.
// params supplies values for every name an ExprRate references that is
// not itself a species; a name that is both a species and a params key
// is rejected with ErrNameCollision.
func (s *System) Run(tmax float64, nbSteps int, params map[string]float64, opts RunOptions) (Result, error) {
	for name := range params {
		if _, ok := s.species[name]; ok {
			return Result{}, fmt.Errorf("%w: %q", ErrNameCollision, name)
		}
	}

	x0 := make([]int64, len(s.order))
	for name, count := range s.init {
		if idx, ok := s.species[name]; ok {
			x0[idx] = count
		}
	}

	var engine *ssa.Engine
	if opts.Seed != nil {
		engine = ssa.NewEngineSeeded(x0, opts.Sparse, *opts.Seed)
	} else {
		engine = ssa.NewEngine(x0, opts.Sparse)
	}

	for _, r := range s.reactions {
		exponents := make([]uint, len(s.order))
		for _, name := range r.reactants {
			exponents[s.species[name]]++
		}
		delta := make([]int64, len(s.order))
		for _, name := range r.reactants {
			delta[s.species[name]]--
		}
		for _, name := range r.products {
			delta[s.species[name]]++
		}

		var cr chem.Rate
		switch r.rate.kind {
		case rateSpecConstant:
			cr = chem.LMA(r.rate.constant, exponents)
		case rateSpecExpr:
			e, err := r.rate.parsed.Resolve(s.species, params)
			if err != nil {
				return Result{}, fmt.Errorf("%w: %v", ErrUnboundParameter, err)
			}
			cr = chem.ExprRate(e)
		}
		if err := engine.AddReaction(cr, delta); err != nil {
			return Result{}, err
		}
	}

	varNames := opts.VarNames
	if varNames == nil {
		varNames = s.order
	}
	saveIdx := make([]int, len(varNames))
	for i, name := range varNames {
		idx, ok := s.species[name]
		if !ok {
			return Result{}, fmt.Errorf("gillespie: unknown species %q in VarNames", name)
		}
		saveIdx[i] = idx
	}

	if s.logger != nil {
		s.logger.Debug("run", map[string]any{
			"tmax": tmax, "nbSteps": nbSteps, "species": len(s.order), "reactions": len(s.reactions),
		})
	}

	result := Result{Species: make(map[string][]int64, len(varNames))}
	record := func() {
		for i, idx := range saveIdx {
			result.Species[varNames[i]] = append(result.Species[varNames[i]], engine.GetSpecies(idx))
		}
	}

	if nbSteps > 0 {
		for i := 0; i <= nbSteps; i++ {
			t := tmax * float64(i) / float64(nbSteps)
			result.Times = append(result.Times, t)
			engine.AdvanceUntil(t)
			record()
		}
	} else {
		result.Times = append(result.Times, engine.GetTime())
		record()
		for engine.GetTime() < tmax {
			engine.AdvanceOneReaction()
			result.Times = append(result.Times, engine.GetTime())
			record()
		}
	}
	return result, nil
}

// String renders the system the way rebop's __str__ does: a header with
// the species and reaction counts, then one "reactants --> products @
// rate" line per reaction.
func (s *System) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d species and %d reactions\n", len(s.order), len(s.reactions))
	for _, r := range s.reactions {
		b.WriteString(strings.Join(r.reactants, " + "))
		b.WriteString(" --> ")
		b.WriteString(strings.Join(r.products, " + "))
		b.WriteString(" @ ")
		b.WriteString(r.rate.String())
		b.WriteString("\n")
	}
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
