// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import "errors"

// ErrLengthMismatch is wrapped when a reaction delta or a species vector
// handed to an ssa.Engine does not have one entry per species. The
// constructors and conversions in this package do not check lengths.
var ErrLengthMismatch = errors.New("chem: length mismatch")
