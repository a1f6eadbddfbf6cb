// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinates_TableSize(t *testing.T) {
	assert.Len(t, Coordinates(), 194)
}

func TestCoordinates_KnownEntries(t *testing.T) {
	coords := Coordinates()

	india, ok := coords["India"]
	require.True(t, ok)
	assert.Equal(t, [2]float64{20.0, 77.0}, india)

	usa, ok := coords["United States of America"]
	require.True(t, ok)
	assert.Equal(t, [2]float64{38.0, -97.0}, usa)

	// Alias targets must resolve so normalized names always land.
	for _, target := range []string{
		"United States of America", "United Kingdom", "United Arab Emirates",
		"Republic of Korea", "Russian Federation",
	} {
		_, ok := coords[target]
		assert.True(t, ok, "alias target %q missing from coordinate table", target)
	}
}

func TestCoordinates_ValidRanges(t *testing.T) {
	for name, c := range Coordinates() {
		assert.GreaterOrEqual(t, c[0], -90.0, "%s latitude", name)
		assert.LessOrEqual(t, c[0], 90.0, "%s latitude", name)
		assert.GreaterOrEqual(t, c[1], -180.0, "%s longitude", name)
		assert.LessOrEqual(t, c[1], 180.0, "%s longitude", name)
	}
}

func TestCoordinates_ReturnsCopy(t *testing.T) {
	coords := Coordinates()
	coords["India"] = [2]float64{0, 0}
	coords["Atlantis"] = [2]float64{1, 1}

	fresh := Coordinates()
	assert.Equal(t, [2]float64{20.0, 77.0}, fresh["India"])
	assert.NotContains(t, fresh, "Atlantis")
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("Brazil")
	require.True(t, ok)
	assert.Equal(t, [2]float64{-10.0, -55.0}, c)

	_, ok = Lookup("Atlantis")
	assert.False(t, ok)
}
