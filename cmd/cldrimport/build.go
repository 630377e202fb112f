// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/gocldr/gocldr/cldr"
)

// buildLocaleDict walks one locale's parsed ldml document into the shape
// cldr.Dict expects (spec §4.7 "CLDR importer"): the same
// numbers/dates/listPatterns/rbnf tree NewSeedSource's hand-written
// dictionaries use, so a compiled, imported locale and a seed locale are
// interchangeable to every downstream package.
func buildLocaleDict(doc *xmlNode) cldr.Dict {
	d := cldr.Dict{}
	if numbers := buildNumbers(doc); len(numbers) > 0 {
		d["numbers"] = numbers
	}
	if lists := buildListPatterns(doc); len(lists) > 0 {
		d["listPatterns"] = lists
	}
	if dates := buildDates(doc); len(dates) > 0 {
		d["dates"] = dates
	}
	if rbnf := buildRBNF(doc); len(rbnf) > 0 {
		d["rbnf"] = rbnf
	}
	return d
}

func buildNumbers(doc *xmlNode) cldr.Dict {
	numbers := cldr.Dict{}

	symbols := cldr.Dict{}
	for _, n := range doc.findAll("ldml/numbers/symbols[numberSystem=latn]/*") {
		symbols[n.Tag] = cldr.Str(n.Text)
	}
	if len(symbols) > 0 {
		numbers["symbols"] = symbols
	}

	patterns := cldr.Dict{}
	if n, ok := doc.find("ldml/numbers/decimalFormats[numberSystem=latn]/decimalFormatLength[!type]/decimalFormat/pattern"); ok {
		patterns["decimal"] = cldr.Str(n.Text)
	}
	if n, ok := doc.find("ldml/numbers/percentFormats[numberSystem=latn]/percentFormatLength[!type]/percentFormat/pattern"); ok {
		patterns["percent"] = cldr.Str(n.Text)
	}
	if n, ok := doc.find("ldml/numbers/scientificFormats[numberSystem=latn]/scientificFormatLength[!type]/scientificFormat/pattern"); ok {
		patterns["scientific"] = cldr.Str(n.Text)
	}
	for _, n := range doc.findAll("ldml/numbers/currencyFormats[numberSystem=latn]/currencyFormatLength[!type]/currencyFormat[type=standard]/pattern") {
		if n.attr("alt") == "" {
			patterns["currency"] = cldr.Str(n.Text)
		} else if n.attr("alt") == "accounting" {
			patterns["accounting"] = cldr.Str(n.Text)
		}
	}
	if len(patterns) > 0 {
		numbers["patterns"] = patterns
	}

	if currencies := buildCurrencies(doc); len(currencies) > 0 {
		numbers["currencies"] = currencies
	}
	if units := buildUnits(doc); len(units) > 0 {
		numbers["units"] = units
	}
	return numbers
}

func buildCurrencies(doc *xmlNode) cldr.Dict {
	currencies := cldr.Dict{}
	for _, n := range doc.findAll("ldml/numbers/currencies/currency[type]/*") {
		code := n.Parent.attr("type")
		cur, _ := currencies[code].(cldr.Dict)
		if cur == nil {
			cur = cldr.Dict{}
		}
		switch n.Tag {
		case "symbol":
			if n.attr("alt") == "" {
				cur["symbol"] = cldr.Str(n.Text)
			}
		case "displayName":
			if count, hasCount := n.attrOK("count"); !hasCount {
				cur["displayName"] = cldr.Str(n.Text)
			} else {
				plurals, _ := cur["pluralNames"].(cldr.Dict)
				if plurals == nil {
					plurals = cldr.Dict{}
				}
				plurals[count] = cldr.Str(n.Text)
				cur["pluralNames"] = plurals
			}
		}
		currencies[code] = cur
	}
	return currencies
}

func buildUnits(doc *xmlNode) cldr.Dict {
	units := cldr.Dict{}
	for _, n := range doc.findAll("ldml/units/unitLength[type=long]/unit[type]/unitPattern[count]") {
		name := n.Parent.attr("type")
		u, _ := units[name].(cldr.Dict)
		if u == nil {
			u = cldr.Dict{}
		}
		u[n.attr("count")] = cldr.Str(n.Text)
		units[name] = u
	}
	return units
}

func buildListPatterns(doc *xmlNode) cldr.Dict {
	lists := cldr.Dict{}
	for _, n := range doc.findAll("ldml/listPatterns/listPattern[type]/listPatternPart[type]") {
		typ := n.Parent.attr("type")
		if typ == "" {
			typ = "standard"
		}
		l, _ := lists[typ].(cldr.Dict)
		if l == nil {
			l = cldr.Dict{}
		}
		l[n.attr("type")] = cldr.Str(n.Text)
		lists[typ] = l
	}
	return lists
}

func buildDates(doc *xmlNode) cldr.Dict {
	cal := cldr.Dict{}

	months := cldr.Dict{}
	for _, n := range doc.findAll("ldml/dates/calendars/calendar[type=gregorian]/months/monthContext[type=format]/monthWidth[type]/month[type]") {
		width := n.Parent.attr("type")
		idx, err := strconv.Atoi(n.attr("type"))
		if err != nil {
			continue
		}
		w, _ := months["format"].(cldr.Dict)
		if w == nil {
			w = cldr.Dict{}
		}
		seq, _ := w[width].(cldr.Seq)
		seq = growSeq(seq, idx)
		seq[idx-1] = cldr.Str(n.Text)
		w[width] = seq
		months["format"] = w
	}
	if len(months) > 0 {
		cal["months"] = months
	}

	dayIndex := map[string]int{"sun": 1, "mon": 2, "tue": 3, "wed": 4, "thu": 5, "fri": 6, "sat": 7}
	days := cldr.Dict{}
	for _, n := range doc.findAll("ldml/dates/calendars/calendar[type=gregorian]/days/dayContext[type=format]/dayWidth[type]/day[type]") {
		width := n.Parent.attr("type")
		idx, ok := dayIndex[n.attr("type")]
		if !ok {
			continue
		}
		w, _ := days["format"].(cldr.Dict)
		if w == nil {
			w = cldr.Dict{}
		}
		seq, _ := w[width].(cldr.Seq)
		seq = growSeq(seq, idx)
		seq[idx-1] = cldr.Str(n.Text)
		w[width] = seq
		days["format"] = w
	}
	if len(days) > 0 {
		cal["days"] = days
	}

	if eras := buildEras(doc); len(eras) > 0 {
		cal["eras"] = eras
	}

	patterns := cldr.Dict{}
	for _, n := range doc.findAll("ldml/dates/calendars/calendar[type=gregorian]/dateFormats/dateFormatLength[type]/dateFormat/pattern") {
		patterns[n.Parent.Parent.attr("type")] = cldr.Str(n.Text)
	}
	if len(patterns) > 0 {
		cal["patterns"] = patterns
	}

	timePatterns := cldr.Dict{}
	for _, n := range doc.findAll("ldml/dates/calendars/calendar[type=gregorian]/timeFormats/timeFormatLength[type]/timeFormat/pattern") {
		timePatterns[n.Parent.Parent.attr("type")] = cldr.Str(n.Text)
	}
	if len(timePatterns) > 0 {
		cal["timePatterns"] = timePatterns
	}

	dateTimePatterns := cldr.Dict{}
	for _, n := range doc.findAll("ldml/dates/calendars/calendar[type=gregorian]/dateTimeFormats/dateTimeFormatLength[type]/dateTimeFormat/pattern") {
		dateTimePatterns[n.Parent.Parent.attr("type")] = cldr.Str(n.Text)
	}
	if len(dateTimePatterns) > 0 {
		cal["dateTimePatterns"] = dateTimePatterns
	}

	available := cldr.Dict{}
	for _, n := range doc.findAll("ldml/dates/calendars/calendar[type=gregorian]/dateTimeFormats/availableFormats/dateFormatItem[id]") {
		available[n.attr("id")] = cldr.Str(n.Text)
	}
	if len(available) > 0 {
		cal["availableFormats"] = available
	}

	if n, ok := doc.find("ldml/dates/calendars/calendar[type=gregorian]/week/firstDay"); ok {
		cal["firstDay"] = cldr.Str(n.attr("day"))
	}

	if len(cal) == 0 {
		return nil
	}
	return cldr.Dict{"calendars": cldr.Dict{"gregorian": cal}}
}

func buildEras(doc *xmlNode) cldr.Dict {
	eras := cldr.Dict{}
	for _, n := range doc.findAll("ldml/dates/calendars/calendar[type=gregorian]/eras/eraNames/era[type]") {
		appendEra(eras, "wide", n)
	}
	for _, n := range doc.findAll("ldml/dates/calendars/calendar[type=gregorian]/eras/eraAbbr/era[type]") {
		appendEra(eras, "abbreviated", n)
	}
	return eras
}

func appendEra(eras cldr.Dict, width string, n *xmlNode) {
	idx, err := strconv.Atoi(n.attr("type"))
	if err != nil {
		return
	}
	seq, _ := eras[width].(cldr.Seq)
	seq = growSeq(seq, idx+1)
	seq[idx] = cldr.Str(n.Text)
	eras[width] = seq
}

// growSeq extends seq with empty placeholders so index n (1-based) is
// addressable; CLDR enumerates months/days/eras out of document order.
func growSeq(seq cldr.Seq, n int) cldr.Seq {
	for len(seq) < n {
		seq = append(seq, cldr.Str(""))
	}
	return seq
}

// buildRBNF extracts every published spellout ruleset's "base: body;"
// lines in base-value order, keyed by the ruleset's own `type` attribute
// (e.g. "spellout-cardinal", "spellout-ordinal", "%%lenient-parse"): CLDR
// stores each rule as an <rbnfrule value="N"> element whose text is the
// rule body (without the "N: " / ";" wrapper our rbnf package expects),
// so this reassembles the form rbnf.ParseRules/rbnf.NewGroup want.
// rbnf.Group.Format dispatches by this same ruleset name, and
// rbnf.LoadGroup picks its cardinal/ordinal/numbering-year entry points
// out of whichever of these names the locale actually publishes, so every
// ruleset is kept rather than collapsing to a single well-known name.
func buildRBNF(doc *xmlNode) cldr.Dict {
	rbnf := cldr.Dict{}
	for _, rs := range doc.findAll("ldml/rbnf/rulesetGrouping[type=SpelloutRules]/ruleset[type]") {
		name := rs.attr("type")
		var lines []string
		for _, rule := range rs.findAll("rbnfrule[value]") {
			body := strings.TrimSuffix(strings.TrimSpace(rule.Text), ";")
			lines = append(lines, rule.attr("value")+": "+body+";")
		}
		if len(lines) > 0 {
			rbnf[name] = strSeqFrom(lines)
		}
	}
	return rbnf
}

func strSeqFrom(lines []string) cldr.Seq {
	seq := make(cldr.Seq, len(lines))
	for i, l := range lines {
		seq[i] = cldr.Str(l)
	}
	return seq
}
