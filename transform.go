// Copyright (c) 2025, The Embedmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/lucasb-eyer/go-colorful"

func (s Sample) colorful() colorful.Color {
	return colorful.Color{R: float64(s.R), G: float64(s.G), B: float64(s.B)}
}

func fromColorful(c colorful.Color, alpha float32) Sample {
	c = c.Clamped()
	return Sample{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}
}

// Lighten returns a sample that is lighter by the given absolute HSL
// lightness amount (0-100, ranges enforced)
func Lighten(s Sample, amount float32) Sample {
	h, sat, l := s.colorful().Hsl()
	l += float64(amount) / 100
	return fromColorful(colorful.Hsl(h, sat, clampUnit(l)), s.A)
}

// Darken returns a sample that is darker by the given absolute HSL
// lightness amount (0-100, ranges enforced)
func Darken(s Sample, amount float32) Sample {
	h, sat, l := s.colorful().Hsl()
	l -= float64(amount) / 100
	return fromColorful(colorful.Hsl(h, sat, clampUnit(l)), s.A)
}

// Saturate returns a sample that is more saturated by the given
// absolute HSL saturation amount (0-100, ranges enforced)
func Saturate(s Sample, amount float32) Sample {
	h, sat, l := s.colorful().Hsl()
	sat += float64(amount) / 100
	return fromColorful(colorful.Hsl(h, clampUnit(sat), l), s.A)
}

// Desaturate returns a sample that is less saturated by the given
// absolute HSL saturation amount (0-100, ranges enforced)
func Desaturate(s Sample, amount float32) Sample {
	h, sat, l := s.colorful().Hsl()
	sat -= float64(amount) / 100
	return fromColorful(colorful.Hsl(h, clampUnit(sat), l), s.A)
}

// Spin returns a sample with its HSL hue rotated by the given number of
// degrees, wrapping around the hue circle
func Spin(s Sample, degrees float32) Sample {
	h, sat, l := s.colorful().Hsl()
	h += float64(degrees)
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return fromColorful(colorful.Hsl(h, sat, l), s.A)
}

// IsLight returns whether the given sample is light
// (has an HSL lightness greater than or equal to 0.6)
func IsLight(s Sample) bool {
	_, _, l := s.colorful().Hsl()
	return l >= 0.6
}

// IsDark returns whether the given sample is dark
// (has an HSL lightness less than 0.6)
func IsDark(s Sample) bool {
	return !IsLight(s)
}

// ContrastColor returns the sample that should be used to contrast the
// given sample (white or black), based on the result of [IsLight].
func ContrastColor(s Sample) Sample {
	if IsLight(s) {
		return Sample{0, 0, 0, 1}
	}
	return Sample{1, 1, 1, 1}
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
