// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ssa implements Gillespie's Direct Method: an exact stochastic
// simulation algorithm over a well-mixed chemical reaction network. An
// Engine holds the current species vector, simulation clock and
// reaction list, and advances the chain one reaction (AdvanceOneReaction)
// or up to a time horizon (AdvanceUntil) at a time.
//
// This is the numerical core the gillespie facade package sits on top
// of; ssa itself knows nothing about species or parameter names, only
// indices, following the teacher's split between low-level numeric
// packages (chem) and the symbolic layer above them.
package ssa
