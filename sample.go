// Copyright (c) 2025, The Embedmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/chewxy/math32"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/image/colornames"
)

// Sample is a color in the canonical normalized representation consumed
// by the visualization layer: non-premultiplied sRGB components and
// alpha, each in the unit interval [0, 1].
type Sample struct {
	R, G, B, A float32
}

// RGBA implements the [color.Color] interface, returning
// alpha-premultiplied 16-bit channel values.
func (s Sample) RGBA() (r, g, b, a uint32) {
	af := clamp01(s.A)
	r = uint32(clamp01(s.R)*af*65535 + 0.5)
	g = uint32(clamp01(s.G)*af*65535 + 0.5)
	b = uint32(clamp01(s.B)*af*65535 + 0.5)
	a = uint32(af*65535 + 0.5)
	return
}

// AsSample returns the given color as a normalized [Sample],
// un-premultiplying the alpha channel. A nil color converts to the zero
// sample.
func AsSample(c color.Color) Sample {
	if c == nil {
		return Sample{}
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Sample{}
	}
	return Sample{
		R: float32(r) / float32(a),
		G: float32(g) / float32(a),
		B: float32(b) / float32(a),
		A: float32(a) / 65535,
	}
}

// Hex returns the sample as a 2-hexadecimal-digits-per-component string,
// including the alpha component only when the sample is not fully opaque.
func (s Sample) Hex() string {
	r := uint8(clamp01(s.R)*255 + 0.5)
	g := uint8(clamp01(s.G)*255 + 0.5)
	b := uint8(clamp01(s.B)*255 + 0.5)
	if s.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	a := uint8(clamp01(s.A)*255 + 0.5)
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// String implements the [fmt.Stringer] interface.
func (s Sample) String() string {
	return s.Hex()
}

// FromString returns the normalized color sample for the given CSS color
// string. String interpretation is delegated to the CSS color parser,
// which accepts hex values, standard color names, rgb(), rgba(), hsl()
// and the other CSS color forms; the 8-bit channel values it reports are
// divided by 255, and its opacity passes through unchanged. It returns
// any resulting parse error; see [MustFromString] and [LogFromString]
// for versions that do not return an error.
func FromString(str string) (Sample, error) {
	c, err := csscolorparser.Parse(str)
	if err != nil {
		return Sample{}, fmt.Errorf("colors.FromString: %w", err)
	}
	r, g, b, _ := c.RGBA255()
	return Sample{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(c.A),
	}, nil
}

// MustFromString returns the normalized color sample for the given CSS
// color string. It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string) Sample {
	s, err := FromString(str)
	if err != nil {
		panic("colors.MustFromString: " + err.Error())
	}
	return s
}

// LogFromString returns the normalized color sample for the given CSS
// color string. It logs any resulting error; see [FromString] for
// more information and a version that returns an error.
func LogFromString(str string) Sample {
	s, err := FromString(str)
	if err != nil {
		log.Println("error: colors.LogFromString: " + err.Error())
	}
	return s
}

// FromName returns the color sample specified by the given CSS standard
// color name. It returns an error if the name is not found; see
// [MustFromName] and [LogFromName] for versions that do not return an
// error.
func FromName(name string) (Sample, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return Sample{}, errors.New("colors.FromName: name not found: " + name)
	}
	return Sample{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}, nil
}

// MustFromName returns the color sample specified by the given CSS
// standard color name. It panics if the name is not found; see
// [FromName] for a version that returns an error.
func MustFromName(name string) Sample {
	s, err := FromName(name)
	if err != nil {
		panic("colors.MustFromName: " + err.Error())
	}
	return s
}

// LogFromName returns the color sample specified by the given CSS
// standard color name. It logs an error if the name is not found; see
// [FromName] for a version that returns an error.
func LogFromName(name string) Sample {
	s, err := FromName(name)
	if err != nil {
		log.Println("error: colors.LogFromName: " + err.Error())
	}
	return s
}

func clamp01(x float32) float32 {
	return math32.Max(0, math32.Min(1, x))
}
