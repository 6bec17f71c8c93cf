// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gillespie is a stochastic simulator for well-mixed chemical
reaction networks, implementing Gillespie's Direct Method (an exact
sampling of the continuous-time Markov chain over reaction events, as
opposed to a tau-leaping or deterministic-ODE approximation). This
top-level package is the named-species facade; the exact-method core is
organized into the following sub-packages:

* erand has the seeded pseudo-random stream the Direct Method draws its
waiting times and reaction choices from: a uniform variate on [0,1) and
an Exp(1) variate, nothing else.

* expr implements the rate-expression mini-language used by expression
propensities: an evaluable arithmetic tree (Expr), the symbolic
pre-resolution tree the text parser produces (PExpr), and the
recursive-descent parser and Display round-trip between the two.

* chem holds the propensity (Rate: dense law-of-mass-action, sparse
law-of-mass-action, or expression) and stoichiometry (Jump: dense or
sparse delta vector) representations shared by every reaction, along
with the concentration/count conversion (CoToN/CoFmN) a modeler coming
from continuous kinetics needs for initial conditions.

* ssa is the numeric core: an Engine holds a species vector, a
simulation clock and a reaction list, and advances the chain one
reaction (AdvanceOneReaction) or up to a time horizon (AdvanceUntil) at
a time. It knows nothing about species or parameter names, only indices.

* rlog is an optional structured-logging attachment (built on zerolog)
a System can be given to receive its non-fatal SetInit warning and a
debug trace line per Run call; a System with no logger attached stays
silent, as a library should.

The module ships no example programs; the SIR and dimers models appear
only as fixtures in the package tests.
*/
package gillespie
