// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plural

import (
	"fmt"
	"strings"
)

// EmitGettext compiles rs down to the restricted Gettext plural syntax
// (spec §4.3 "Emission targets"): a "nplurals=N; plural=EXPR;" header
// whose EXPR is a C-style ternary chain over the single operand n.
// Gettext has no v/w/f/t/e operands, so references to them are projected
// by assuming the input is always a non-negative integer: i collapses to
// n, and v/w/f/t/c/e collapse to the constant 0. This loses the
// trailing-zero distinctions those operands exist to capture, which is
// acceptable since Gettext's own model cannot represent them regardless.
func EmitGettext(rs *RuleSet) (string, error) {
	cats := rs.Categories()
	var b strings.Builder
	fmt.Fprintf(&b, "nplurals=%d; plural=(", len(cats))
	for i, r := range rs.Rules {
		expr, err := renderGettext(r.pred)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s ? %d : ", expr, i)
	}
	fmt.Fprintf(&b, "%d);", len(cats)-1)
	return b.String(), nil
}

func renderGettext(n node) (string, error) {
	switch v := n.(type) {
	case andNode:
		l, err := renderGettext(v.left)
		if err != nil {
			return "", err
		}
		r, err := renderGettext(v.right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s && %s)", l, r), nil
	case orNode:
		l, err := renderGettext(v.left)
		if err != nil {
			return "", err
		}
		r, err := renderGettext(v.right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s || %s)", l, r), nil
	case relationNode:
		return renderRelationGettext(v)
	case nil:
		return "0", nil
	default:
		return "", fmt.Errorf("plural: unsupported node type %T in gettext emission", n)
	}
}

func renderRelationGettext(r relationNode) (string, error) {
	// v/w/f/t/c/e are not representable in Gettext's integer-only model;
	// project them to the constant 0, exactly as an integer input would
	// produce.
	if r.operand != "n" && r.operand != "i" {
		const projected = 0.0
		match := false
		for _, rg := range r.ranges {
			if rg.contains(projected, true) {
				match = true
				break
			}
		}
		if r.negate {
			match = !match
		}
		if match {
			return "1", nil
		}
		return "0", nil
	}

	expr := "n"
	if r.mod > 0 {
		expr = fmt.Sprintf("n%%%d", r.mod)
	}
	parts := make([]string, 0, len(r.ranges))
	for _, rg := range r.ranges {
		if rg.Lo == rg.Hi {
			parts = append(parts, fmt.Sprintf("%s==%d", expr, rg.Lo))
		} else {
			parts = append(parts, fmt.Sprintf("(%s>=%d && %s<=%d)", expr, rg.Lo, expr, rg.Hi))
		}
	}
	joined := strings.Join(parts, " || ")
	if len(parts) > 1 {
		joined = "(" + joined + ")"
	}
	if r.negate {
		joined = "!" + joined
	}
	return joined, nil
}
