// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"fmt"
	"go/format"
	"os"
)

// WriteGoFile formats src as a complete Go source file with the given
// package name and writes the result to filename, used by CodeWriter's
// WriteGoFile method to turn a buffer of emitted declarations into a
// ready-to-compile file.
func WriteGoFile(filename, pkg string, src []byte) {
	full := append([]byte(fmt.Sprintf("// Code generated by cldrimport. DO NOT EDIT.\n\npackage %s\n\n", pkg)), src...)
	out, err := format.Source(full)
	if err != nil {
		// Fall back to the unformatted source so the caller can inspect
		// what gofmt rejected instead of losing the output entirely.
		out = full
	}
	if err := os.WriteFile(filename, out, 0o644); err != nil {
		panic(err)
	}
}
