// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/xml"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// cacheDuration bounds how long a fetched CLDR XML file is trusted before
// re-downloading it (CLDR releases roughly twice a year, so a cache much
// shorter than that only adds needless network traffic).
const cacheDuration = 7 * 24 * time.Hour

// xmlNode is a minimal DOM: enough structure to run the XPath-lite queries
// below over CLDR's ldml documents without pulling in a general XML/XPath
// library the rest of the corpus does not otherwise use.
type xmlNode struct {
	Parent *xmlNode
	Nodes  []*xmlNode

	Tag   string
	Attrs [][2]string
	Text  string
}

func (n *xmlNode) attr(key string) string {
	for _, a := range n.Attrs {
		if a[0] == key {
			return a[1]
		}
	}
	return ""
}

func (n *xmlNode) attrOK(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a[0] == key {
			return a[1], true
		}
	}
	return "", false
}

// fetchXML returns the parsed document for path (relative to baseURL,
// e.g. "main/en.xml"), downloading it into cacheDir first if absent or
// stale.
func fetchXML(cacheDir, baseURL, path string) (*xmlNode, error) {
	local := filepath.Join(cacheDir, filepath.FromSlash(path))
	info, statErr := os.Stat(local)
	if statErr != nil || time.Since(info.ModTime()) > cacheDuration {
		if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
			return nil, errors.Wrapf(err, "mkdir cache dir for %s", path)
		}
		resp, err := http.Get(baseURL + path)
		if err != nil {
			return nil, errors.Wrapf(err, "fetch %s", path)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("fetch %s: status %s", path, resp.Status)
		}
		f, err := os.Create(local)
		if err != nil {
			return nil, errors.Wrapf(err, "create cache file for %s", path)
		}
		if _, err := io.Copy(f, resp.Body); err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "write cache file for %s", path)
		}
		if err := f.Close(); err != nil {
			return nil, errors.Wrapf(err, "close cache file for %s", path)
		}
	}
	f, err := os.Open(local)
	if err != nil {
		return nil, errors.Wrapf(err, "open cache file for %s", path)
	}
	defer f.Close()
	doc, err := parseXML(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return doc, nil
}

func parseXML(r io.Reader) (*xmlNode, error) {
	root := &xmlNode{}
	stack := []*xmlNode{root}
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return root, nil
			}
			return nil, err
		}
		cur := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			var attrs [][2]string
			for _, a := range t.Attr {
				if a.Name.Local == "draft" {
					continue
				}
				attrs = append(attrs, [2]string{a.Name.Local, a.Value})
			}
			n := &xmlNode{Parent: cur, Tag: t.Name.Local, Attrs: attrs}
			cur.Nodes = append(cur.Nodes, n)
			stack = append(stack, n)
		case xml.CharData:
			cur.Text += string(t)
		case xml.EndElement:
			cur.Text = strings.TrimSpace(cur.Text)
			stack = stack[:len(stack)-1]
		}
	}
}

// find returns the first child (at any depth, following simple "/"
// separated steps) matching xpath; see findAll for the supported subset
// of XPath.
func (n *xmlNode) find(xpath string) (*xmlNode, bool) {
	matches := n.findAll(xpath)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// findAll implements the small fragment of XPath CLDR's own ldml schema
// needs: "/"-separated tag steps, each optionally followed by
// "[attr=value]", "[attr!=value]", "[attr]" or "[!attr]" predicates.
func (n *xmlNode) findAll(xpath string) []*xmlNode {
	steps := strings.Split(xpath, "/")
	matches := []*xmlNode{n}
	for _, step := range steps {
		if step == "" {
			continue
		}
		tag, conds := parseStep(step)
		var next []*xmlNode
		for _, m := range matches {
			for _, child := range m.Nodes {
				if tag != "*" && child.Tag != tag {
					continue
				}
				if matchesConds(child, conds) {
					next = append(next, child)
				}
			}
		}
		matches = next
		if len(matches) == 0 {
			return nil
		}
	}
	return matches
}

type xpathCond struct {
	attr    string
	value   string
	negate  bool
	onlyKey bool // "[attr]" / "[!attr]": test presence only
}

func parseStep(step string) (tag string, conds []xpathCond) {
	tag = step
	for {
		open := strings.IndexByte(tag, '[')
		if open < 0 {
			break
		}
		close := strings.IndexByte(tag, ']')
		if close < open {
			break
		}
		cond := tag[open+1 : close]
		tag = tag[:open] + tag[close+1:]
		conds = append(conds, parseCond(cond))
	}
	return tag, conds
}

func parseCond(cond string) xpathCond {
	if i := strings.Index(cond, "!="); i >= 0 {
		return xpathCond{attr: cond[:i], value: cond[i+2:], negate: true}
	}
	if i := strings.IndexByte(cond, '='); i >= 0 {
		return xpathCond{attr: cond[:i], value: cond[i+1:]}
	}
	if strings.HasPrefix(cond, "!") {
		return xpathCond{attr: cond[1:], onlyKey: true, negate: true}
	}
	return xpathCond{attr: cond, onlyKey: true}
}

func matchesConds(n *xmlNode, conds []xpathCond) bool {
	for _, c := range conds {
		v, ok := n.attrOK(c.attr)
		switch {
		case c.onlyKey && c.negate:
			if ok {
				return false
			}
		case c.onlyKey:
			if !ok {
				return false
			}
		case c.negate:
			if ok && v == c.value {
				return false
			}
		default:
			if !ok || v != c.value {
				return false
			}
		}
	}
	return true
}

// sortedChildren returns n's children ordered by tag then attribute pairs,
// used only where emission order should be stable across runs (CLDR's own
// document order already is, but supplemental tables are assembled from
// maps during import).
func sortedChildren(n *xmlNode) []*xmlNode {
	out := append([]*xmlNode(nil), n.Nodes...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Tag < out[j].Tag
	})
	return out
}
