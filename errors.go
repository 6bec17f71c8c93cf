// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gillespie

import "errors"

var (
	// ErrRateNotUnderstood is wrapped when an ExprRate's text fails to parse.
	ErrRateNotUnderstood = errors.New("gillespie: rate expression not understood")
	// ErrNameCollision is wrapped when a Run parameter name also names a species.
	ErrNameCollision = errors.New("gillespie: species cannot also be a parameter")
	// ErrUnboundParameter is wrapped when an expression rate references a
	// name that is neither a species nor a supplied parameter.
	ErrUnboundParameter = errors.New("gillespie: unbound name in rate expression")
)
