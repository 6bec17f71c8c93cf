// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chem holds the propensity (Rate) and stoichiometry (Jump)
// representations shared by every reaction in a stochastic simulation.
//
// This package used to also hold a family of deterministic, Euler-integrated
// ODE steppers (React, Enz, EnzRate, SimpleEnz, Diffuse, Buffer) for
// continuous concentration kinetics. Those modeled a different numerical
// method (fixed-step continuous integration) than the exact stochastic
// jump process this module implements, and tau-leaping / hybrid
// continuous-discrete methods are an explicit non-goal, so they were
// removed rather than adapted; CoToN/CoFmN, the concentration/count
// bridge they shared, survives because SetInitConc still needs it.
package chem
