// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plural implements the CLDR plural-rule DSL (spec §4.3): parsing
// a locale's named category -> predicate rules into an AST, evaluating
// that AST against the six (or eight, counting c/e) numeric operands of an
// input value, and emitting an equivalent restricted Gettext plural
// expression for catalog tooling.
package plural
