// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package erand wraps a seedable pseudo-random stream for the stochastic
// simulation algorithm: a uniform variate on [0,1) for categorical
// reaction selection, and an Exp(1) variate for waiting times.
//
// This is a narrowed descendant of emergent's erand package, which in its
// original form parameterized many distributions (Gaussian, Binomial,
// Poisson, Gamma, Beta) for adding noise to neural network models across
// a pool of per-thread generators. The Direct Method only ever needs the
// two distributions below, from exactly one stream per simulation run, so
// the thread-indexed Rand pool and the other distributions were dropped
// (see DESIGN.md).
package erand
