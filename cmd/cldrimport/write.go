// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/internal/gen"
)

// writeSource emits a Go source file, in package cldr itself, defining
// NewCompiledSource as an EmbeddedSource literal built from locales. It is
// written into package cldr (rather than importing it) so the generated
// file can use the same bare Str/Int/Seq/Dict/Alias constructors
// cldr/seed_data.go hand-writes (spec §4.7 "the importer's output is
// loaded the same way as the embedded seed data").
func writeSource(filename, pkg string, locales map[string]cldr.Dict) {
	w := gen.NewCodeWriter()
	w.WriteComment("Generated from CLDR by cmd/cldrimport. Run with -h for options.")
	fmt.Fprintf(w, "\nfunc NewCompiledSource() *EmbeddedSource {\n")
	fmt.Fprintf(w, "\treturn NewEmbeddedSource(map[string]Dict{\n")
	for _, id := range sortedKeys(locales) {
		fmt.Fprintf(w, "\t\t%q: ", id)
		writeValue(w, locales[id], 2)
		fmt.Fprintf(w, ",\n")
	}
	fmt.Fprintf(w, "\t})\n}\n")
	w.WriteGoFile(filename, pkg)
}

// writeGlobalData emits a Go source file, in package cldr, defining
// NewCompiledGlobalData as a *GlobalData literal carrying the
// supplemental tables (parent exceptions, currency fractions, territory
// currency histories) buildGlobalData extracted.
func writeGlobalData(filename, pkg string, g *cldr.GlobalData) {
	w := gen.NewCodeWriter()
	w.WriteComment("Generated from CLDR supplemental data by cmd/cldrimport. Run with -h for options.")
	fmt.Fprintf(w, "\nfunc NewCompiledGlobalData() *GlobalData {\n")
	fmt.Fprintf(w, "\tg := NewGlobalData()\n")
	for _, id := range sortedStringKeys(g.ParentExceptions) {
		fmt.Fprintf(w, "\tg.ParentExceptions[%q] = %q\n", id, g.ParentExceptions[id])
	}
	for _, code := range sortedFractionKeys(g.CurrencyFractions) {
		f := g.CurrencyFractions[code]
		fmt.Fprintf(w, "\tg.CurrencyFractions[%q] = CurrencyFraction{Digits: %d, Rounding: %d, CashDigits: %d, CashRounding: %d}\n",
			code, f.Digits, f.Rounding, f.CashDigits, f.CashRounding)
	}
	for _, territory := range sortedTerritoryKeys(g.TerritoryCurrencies) {
		for _, tc := range g.TerritoryCurrencies[territory] {
			fmt.Fprintf(w, "\tg.TerritoryCurrencies[%q] = append(g.TerritoryCurrencies[%q], TerritoryCurrency{Code: %q, From: %q, To: %q, Tender: %t})\n",
				territory, territory, tc.Code, tc.From, tc.To, tc.Tender)
		}
	}
	fmt.Fprintf(w, "\treturn g\n}\n")
	w.WriteGoFile(filename, pkg)
}

func sortedStringKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFractionKeys(m map[string]cldr.CurrencyFraction) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTerritoryKeys(m map[string][]cldr.TerritoryCurrency) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys(m map[string]cldr.Dict) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// writeValue prints v as a Go literal of the concrete cldr.Value type it
// holds; indent is the current brace-nesting depth, used only for the
// cosmetic tab prefix (gofmt fixes the rest when writeSource calls
// gen.WriteGoFile).
func writeValue(w io.Writer, v cldr.Value, indent int) {
	switch t := v.(type) {
	case cldr.Str:
		fmt.Fprintf(w, "Str(%q)", string(t))
	case cldr.Int:
		fmt.Fprintf(w, "Int(%d)", int64(t))
	case cldr.Seq:
		fmt.Fprintf(w, "Seq{")
		for i, e := range t {
			if i > 0 {
				fmt.Fprintf(w, ", ")
			}
			writeValue(w, e, indent+1)
		}
		fmt.Fprintf(w, "}")
	case cldr.Dict:
		fmt.Fprintf(w, "Dict{\n")
		for _, k := range sortedDictKeys(t) {
			fmt.Fprintf(w, "%s%q: ", tabs(indent+1), k)
			writeValue(w, t[k], indent+1)
			fmt.Fprintf(w, ",\n")
		}
		fmt.Fprintf(w, "%s}", tabs(indent))
	case cldr.Alias:
		fmt.Fprintf(w, "Alias{Locale: %q, Path: []string{", t.Locale)
		for i, p := range t.Path {
			if i > 0 {
				fmt.Fprintf(w, ", ")
			}
			fmt.Fprintf(w, "%q", p)
		}
		fmt.Fprintf(w, "}}")
	default:
		fmt.Fprintf(w, "nil /* unsupported value type %T */", v)
	}
}

func sortedDictKeys(d cldr.Dict) []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func tabs(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '\t'
	}
	return string(b)
}
