// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cldrimport compiles a subset of the Unicode CLDR into the Go
// source cldr.NewCompiledSource reads (spec §4.7, C8). It downloads (and
// locally caches) each requested locale's ldml XML plus the supplemental
// data CLDR publishes, and writes out a Go file whose shape matches
// cldr/seed_data.go's hand-written dictionaries exactly, so a compiled
// import is a drop-in replacement for the bundled seed data.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/gocldr/gocldr/cldr"
)

const (
	defaultLocales = "root,en,en_US,de,de_DE,fr,ru"
	defaultBaseURL = "https://raw.githubusercontent.com/unicode-org/cldr/main/common/"
)

// CLI is the flag/argument surface kong parses into. Locales, Cache,
// BaseURL, Out and GlobalOut deliberately have no `default` tag: a value
// left empty after parsing means the user didn't pass it, so the profile
// (via applyTo) and the fallback constants above get a chance to fill it in before main
// runs the import.
type CLI struct {
	Locales   []string `help:"Comma-separated locale ids to import." sep:","`
	Cache     string   `help:"Directory used to cache downloaded CLDR XML files."`
	BaseURL   string   `help:"Base URL the CLDR common/ directory is fetched from." name:"base-url"`
	Out       string   `help:"Output path for the generated locale-dictionary Go source."`
	GlobalOut string   `help:"Output path for the generated GlobalData Go source." name:"global-out"`
	Profile   string   `help:"YAML profile overriding any of the above left unset on the command line."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("Imports Unicode CLDR locale data into Go source cldr.NewCompiledSource reads."))

	if cli.Profile != "" {
		p, err := loadProfile(cli.Profile)
		ctx.FatalIfErrorf(err)
		p.applyTo(&cli)
	}
	if len(cli.Locales) == 0 {
		cli.Locales = strings.Split(defaultLocales, ",")
	}
	if cli.Cache == "" {
		cli.Cache = "cldr-cache"
	}
	if cli.BaseURL == "" {
		cli.BaseURL = defaultBaseURL
	}
	if cli.Out == "" {
		cli.Out = "cldr/compiled_data.go"
	}
	if cli.GlobalOut == "" {
		cli.GlobalOut = "cldr/compiled_global.go"
	}

	supplemental, err := fetchXML(cli.Cache, cli.BaseURL, "supplemental/supplementalData.xml")
	ctx.FatalIfErrorf(err)
	global := buildGlobalData(supplemental)

	dicts := make(map[string]cldr.Dict, len(cli.Locales))
	for _, id := range cli.Locales {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		doc, err := fetchXML(cli.Cache, cli.BaseURL, "main/"+id+".xml")
		ctx.FatalIfErrorf(err)
		dicts[id] = buildLocaleDict(doc)
	}

	writeSource(cli.Out, "cldr", dicts)
	writeGlobalData(cli.GlobalOut, "cldr", global)
	fmt.Fprintf(os.Stderr, "wrote %s and %s (%d locales, %d currency fractions, %d territory currency histories)\n",
		cli.Out, cli.GlobalOut, len(dicts), len(global.CurrencyFractions), len(global.TerritoryCurrencies))
}
