// Copyright (c) 2021 The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements the rate-expression mini-language: an arithmetic
// expression tree over species reads and constants (Expr, evaluated
// directly against a species vector), the symbolic pre-resolution form
// produced by the text parser (PExpr, which carries names instead of
// resolved indices), and the recursive-descent parser and Display
// round-trip between the two.
//
// There is no grammar-combinator or parser-generator dependency anywhere
// in the teacher corpus (emer/emergent hand-rolls every one of its
// parsers -- esg's rule grammar, pi's text scanning); this package
// follows that lead and hand-rolls a small scanner rather than reaching
// for a third-party parsing library, matching both the corpus's own
// idiom and the narrowness of the grammar itself (see DESIGN.md).
package expr
