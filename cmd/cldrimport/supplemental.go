// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/gocldr/gocldr/cldr"
)

// buildGlobalData extracts the cross-locale tables cldr.GlobalData carries
// (spec §4.1 "parent exceptions", §4.6 "currency fractions and territory
// validity") from supplementalData.xml.
func buildGlobalData(supplemental *xmlNode) *cldr.GlobalData {
	g := cldr.NewGlobalData()

	for _, n := range supplemental.findAll("supplementalData/parentLocales/parentLocale[parent]/*") {
		g.ParentExceptions[n.Text] = n.Parent.attr("parent")
	}

	for _, n := range supplemental.findAll("supplementalData/currencyData/fractions/info[iso4217]") {
		f := cldr.CurrencyFraction{Digits: 2, Rounding: 0}
		if v, ok := n.attrOK("digits"); ok {
			f.Digits = atoiOr(v, f.Digits)
		}
		if v, ok := n.attrOK("rounding"); ok {
			f.Rounding = atoiOr(v, f.Rounding)
		}
		f.CashDigits = f.Digits
		if v, ok := n.attrOK("cashDigits"); ok {
			f.CashDigits = atoiOr(v, f.CashDigits)
		}
		f.CashRounding = f.Rounding
		if v, ok := n.attrOK("cashRounding"); ok {
			f.CashRounding = atoiOr(v, f.CashRounding)
		}
		g.CurrencyFractions[n.attr("iso4217")] = f
	}

	for _, n := range supplemental.findAll("supplementalData/currencyData/region[iso3166]/currency[iso4217]") {
		territory := n.Parent.attr("iso3166")
		tc := cldr.TerritoryCurrency{
			Code:   n.attr("iso4217"),
			From:   n.attr("from"),
			To:     n.attr("to"),
			Tender: n.attr("tender") != "false",
		}
		g.TerritoryCurrencies[territory] = append(g.TerritoryCurrencies[territory], tc)
	}

	return g
}

func atoiOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
