// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cldr

// Value is the tagged union spec §9 "Dynamic-typed dictionaries" calls for:
// the locale data tree mixes scalars, maps, sequences and Alias markers.
// The concrete types implementing Value are Str, Int, Seq, Dict, Alias and
// NoInherit.
type Value interface {
	isValue()
}

// Str is a scalar string value, e.g. a month name or a raw pattern string.
type Str string

func (Str) isValue() {}

// Int is a scalar integer value, e.g. a grouping size.
type Int int64

func (Int) isValue() {}

// Seq is an ordered sequence, e.g. the list of day names Sunday..Saturday.
type Seq []Value

func (Seq) isValue() {}

// Dict is a keyed mapping; it is both the type of an internal subtree node
// and the type returned for a whole locale by Store.Load.
type Dict map[string]Value

func (Dict) isValue() {}

// Alias redirects a lookup to another path, possibly in a different
// locale's tree (spec §3 "An Alias carries a path... that redirects
// lookups to another subtree, possibly in the same locale").
type Alias struct {
	// Locale is empty when the alias targets the same locale.
	Locale string
	Path   []string
}

func (Alias) isValue() {}

// NoInherit is the sentinel spec §3 calls "the no-inherit marker": placed
// at a key in a child dictionary, it means "treat this key as absent even
// though a parent defines it". Its presence must never reach end-user
// output; Dict.Get strips it to a not-found result.
type NoInherit struct{}

func (NoInherit) isValue() {}

// Get looks up key in d without following aliases or inheritance.
func (d Dict) Get(key string) (Value, bool) {
	v, ok := d[key]
	if !ok {
		return nil, false
	}
	if _, isNoInherit := v.(NoInherit); isNoInherit {
		return nil, false
	}
	return v, true
}

// GetPath walks path through nested Dicts, without following aliases.
func (d Dict) GetPath(path ...string) (Value, bool) {
	var cur Value = d
	for _, key := range path {
		m, ok := cur.(Dict)
		if !ok {
			return nil, false
		}
		cur, ok = m.Get(key)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// String is a convenience accessor returning the string form of a scalar
// Str value at path, or "" if absent or not a string.
func (d Dict) String(path ...string) string {
	v, ok := d.GetPath(path...)
	if !ok {
		return ""
	}
	s, ok := v.(Str)
	if !ok {
		return ""
	}
	return string(s)
}

// SeqAt returns the Seq value at path, or nil if absent or not a sequence.
func (d Dict) SeqAt(path ...string) Seq {
	v, ok := d.GetPath(path...)
	if !ok {
		return nil
	}
	s, ok := v.(Seq)
	if !ok {
		return nil
	}
	return s
}

// DictAt returns the Dict value at path, or nil if absent or not a dict.
func (d Dict) DictAt(path ...string) Dict {
	v, ok := d.GetPath(path...)
	if !ok {
		return nil
	}
	sub, ok := v.(Dict)
	if !ok {
		return nil
	}
	return sub
}
