// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

// The tables below are a hand-maintained subset of CLDR's
// language/territory/script/variant alias tables and likely-subtags table
// (common/supplemental/likelySubtags.xml, common/supplemental/
// supplementalMetadata.xml). cmd/cldrimport does not regenerate them; it
// writes only the cldr package's locale dictionaries and GlobalData.

// languageAliases maps deprecated or legacy language subtags to their
// preferred replacement (CLDR's <languageAlias> entries).
var languageAliases = map[string]string{
	"iw":  "he",
	"in":  "id",
	"ji":  "yi",
	"jw":  "jv",
	"mo":  "ro",
	"tl":  "fil",
	"sh":  "sr",
	"scc": "sr",
	"scr": "hr",
}

// territoryAliases maps deprecated territory codes to their first/primary
// replacement (CLDR's <territoryAlias> entries; some CLDR entries list
// multiple replacements for a dissolved territory, first element wins per
// spec §4.1).
var territoryAliases = map[string]string{
	"BU": "MM",
	"CS": "RS",
	"DD": "DE",
	"FX": "FR",
	"TP": "TL",
	"YU": "RS",
	"ZR": "CD",
	"830": "XX",
}

// scriptAliases maps deprecated script codes to their replacement.
var scriptAliases = map[string]string{
	"Qaai": "Zinh",
}

// variantAliases maps deprecated variant subtags to their replacement.
var variantAliases = map[string]string{}

// likelySubtags maps an under-specified locale id to its CLDR-recommended
// fully-specified form (spec §3 "Likely-subtag expansion").
var likelySubtags = map[string]string{
	"en":      "en_Latn_US",
	"en_GB":   "en_Latn_GB",
	"de":      "de_Latn_DE",
	"fr":      "fr_Latn_FR",
	"es":      "es_Latn_ES",
	"pt":      "pt_Latn_BR",
	"pt_PT":   "pt_Latn_PT",
	"ru":      "ru_Cyrl_RU",
	"hu":      "hu_Latn_HU",
	"ja":      "ja_Jpan_JP",
	"ko":      "ko_Kore_KR",
	"ar":      "ar_Arab_EG",
	"he":      "he_Hebr_IL",
	"hi":      "hi_Deva_IN",
	"th":      "th_Thai_TH",
	"zh":      "zh_Hans_CN",
	"zh_TW":   "zh_Hant_TW",
	"zh_HK":   "zh_Hant_HK",
	"zh_Hant": "zh_Hant_TW",
	"zh_Hans": "zh_Hans_CN",
	"nb":      "nb_Latn_NO",
	"no":      "nb_Latn_NO",
	"nn":      "nn_Latn_NO",
	"sr":      "sr_Cyrl_RS",
	"sr_Latn": "sr_Latn_RS",
	"uk":      "uk_Cyrl_UA",
	"und":     "en_Latn_US",
}
