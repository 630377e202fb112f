// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// profile holds import settings normally passed as flags, collected here so
// a recurring import (e.g. a CI job that refreshes cldr/compiled_data.go on
// a schedule) can check one YAML file into the repo instead of a long
// command line. Flags given alongside --profile still win: applyTo only
// fills in fields the CLI left at its zero value.
type profile struct {
	Locales       []string `yaml:"locales"`
	CacheDir      string   `yaml:"cacheDir"`
	BaseURL       string   `yaml:"baseURL"`
	OutFile       string   `yaml:"outFile"`
	GlobalOutFile string   `yaml:"globalOutFile"`
}

func loadProfile(path string) (*profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read profile %s", path)
	}
	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrapf(err, "parse profile %s", path)
	}
	return &p, nil
}

// applyTo overlays p onto cli, leaving any field the CLI already set
// (non-zero) untouched.
func (p *profile) applyTo(cli *CLI) {
	if p == nil {
		return
	}
	if len(cli.Locales) == 0 && len(p.Locales) > 0 {
		cli.Locales = p.Locales
	}
	if cli.Cache == "" && p.CacheDir != "" {
		cli.Cache = p.CacheDir
	}
	if cli.BaseURL == "" && p.BaseURL != "" {
		cli.BaseURL = p.BaseURL
	}
	if cli.Out == "" && p.OutFile != "" {
		cli.Out = p.OutFile
	}
	if cli.GlobalOut == "" && p.GlobalOutFile != "" {
		cli.GlobalOut = p.GlobalOutFile
	}
}
