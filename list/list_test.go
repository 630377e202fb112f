// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package list

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocldr/gocldr/cldr"
)

func testStore(t *testing.T) *cldr.Store {
	t.Helper()
	return cldr.NewStore(cldr.NewSeedSource(), cldr.NewSeedGlobalData())
}

func TestFormatAndThreeItems(t *testing.T) {
	store := testStore(t)
	got, err := Format(store, "en", And, []string{"red", "green", "blue"})
	require.NoError(t, err)
	require.Equal(t, "red, green, and blue", got)
}

func TestFormatOrTwoItems(t *testing.T) {
	store := testStore(t)
	got, err := Format(store, "en", Or, []string{"tea", "coffee"})
	require.NoError(t, err)
	require.Equal(t, "tea or coffee", got)
}

func TestFormatSingleItem(t *testing.T) {
	store := testStore(t)
	got, err := Format(store, "en", And, []string{"solo"})
	require.NoError(t, err)
	require.Equal(t, "solo", got)
}

func TestFormatEmpty(t *testing.T) {
	store := testStore(t)
	got, err := Format(store, "en", And, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFormatFourItemsMiddleJoin(t *testing.T) {
	store := testStore(t)
	got, err := Format(store, "en", And, []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	require.Equal(t, "a, b, c, and d", got)
}
