// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

// fallingFactorial computes n * (n-1) * ... * (n-k+1) for k >= 1, and 1
// for k == 0. This is the law-of-mass-action combinatorial factor: the
// number of ordered ways to draw k molecules out of a pool of n without
// replacement. If any factor in the product is zero (n itself, or n-i for
// some i < k), the whole product is zero -- in particular this happens
// whenever k > n >= 0, which is the common "not enough molecules" case.
// For n < 0 the product is computed literally, per spec: the caller is
// responsible for not feeding the engine negative counts.
func fallingFactorial(n int64, k uint) float64 {
	r := 1.0
	for i := uint(0); i < k; i++ {
		r *= float64(n - int64(i))
	}
	return r
}
