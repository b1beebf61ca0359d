// Copyright (c) 2025, The Embedmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hslOf(s Sample) (h, sat, l float64) {
	return s.colorful().Hsl()
}

func TestLightenDarken(t *testing.T) {
	gray := MustFromString("#808080")

	_, _, l := hslOf(Lighten(gray, 10))
	assert.InDelta(t, 0.602, l, 0.01)

	_, _, l = hslOf(Darken(gray, 10))
	assert.InDelta(t, 0.402, l, 0.01)

	// ranges enforced
	_, _, l = hslOf(Lighten(gray, 200))
	assert.InDelta(t, 1, l, tol)
	_, _, l = hslOf(Darken(gray, 200))
	assert.InDelta(t, 0, l, tol)
}

func TestSaturateDesaturate(t *testing.T) {
	red := Sample{1, 0, 0, 1}

	// fully desaturated red is mid gray
	assertSample(t, Sample{0.5, 0.5, 0.5, 1}, Desaturate(red, 100))

	// already fully saturated; saturating clamps
	assertSample(t, red, Saturate(red, 50))
}

func TestSpin(t *testing.T) {
	red := Sample{1, 0, 0, 1}
	assertSample(t, Sample{0, 1, 0, 1}, Spin(red, 120))
	assertSample(t, Sample{0, 0, 1, 1}, Spin(red, 240))
	assertSample(t, Sample{0, 0, 1, 1}, Spin(red, -120))
	assertSample(t, red, Spin(red, 720))
}

func TestTransformPreservesAlpha(t *testing.T) {
	s := Sample{0.2, 0.4, 0.6, 0.5}
	assert.Equal(t, float32(0.5), Lighten(s, 10).A)
	assert.Equal(t, float32(0.5), Saturate(s, 10).A)
	assert.Equal(t, float32(0.5), Spin(s, 90).A)
}

func TestContrast(t *testing.T) {
	assert.True(t, IsLight(Sample{1, 1, 1, 1}))
	assert.True(t, IsDark(Sample{0, 0, 0, 1}))
	assert.False(t, IsDark(Sample{1, 1, 1, 1}))

	assert.Equal(t, Sample{0, 0, 0, 1}, ContrastColor(Sample{1, 1, 0.9, 1}))
	assert.Equal(t, Sample{1, 1, 1, 1}, ContrastColor(MustFromString("#1f77b4")))
}
