// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/number/pattern"
)

func testStore(t *testing.T) (*cldr.Store, *cldr.GlobalData) {
	t.Helper()
	g := cldr.NewSeedGlobalData()
	return cldr.NewStore(cldr.NewSeedSource(), g), g
}

func TestFormatKilometerPlural(t *testing.T) {
	store, global := testStore(t)
	d, err := pattern.ParseDecimalString("3")
	require.NoError(t, err)
	got, err := Format(store, global, "en", "length-kilometer", d, Long)
	require.NoError(t, err)
	require.Equal(t, "3 kilometers", got)
}

func TestFormatMeterSingular(t *testing.T) {
	store, global := testStore(t)
	d, err := pattern.ParseDecimalString("1")
	require.NoError(t, err)
	got, err := Format(store, global, "en", "length-meter", d, Long)
	require.NoError(t, err)
	require.Equal(t, "1 meter", got)
}

func TestFormatUnknownUnit(t *testing.T) {
	store, global := testStore(t)
	d, err := pattern.ParseDecimalString("1")
	require.NoError(t, err)
	_, err = Format(store, global, "en", "volume-barrel", d, Long)
	require.ErrorIs(t, err, ErrUnknownUnit)
}
