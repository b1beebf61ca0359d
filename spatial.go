// Copyright (c) 2025, The Embedmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"
)

// Point is a category position in an arbitrary 2-D embedding space.
type Point struct {
	X, Y float32
}

// SpatialOptions configures [SpatialCategorical]. A nil options value
// selects all defaults.
type SpatialOptions struct {
	// HueShift rotates the palette along the circular colormap by the
	// given number of degrees. Default is 0.
	HueShift float32

	// MinLightness is the floor on output lightness, on a 0-100 scale.
	// Values at or below 0 select the default of 15.
	MinLightness float32

	// RadiusWeightPower is the exponent applied to each position's
	// radius when weighting the hue spacing between angular neighbors:
	// larger powers give positions far from the center proportionally
	// more of the hue circle. Values at or below 0 select the default
	// of 1.
	RadiusWeightPower float32
}

// ramp is the canonical circular colormap for spatial palettes.
// Computing hue directly from the angle is deliberately not supported;
// the turbo mapping is the contract.
var ramp = colorgrad.Turbo()

// Chroma rises and lightness falls with a position's normalized distance
// from the center, giving visual priority to outlying categories.
const (
	chromaBase  = 0.75
	chromaSpan  = 0.45
	lightBase   = 1.05
	lightSpan   = 0.35
	defaultLMin = 15
)

// SpatialCategorical returns one hex color string per category position,
// in input order. Positions that are angularly close around the common
// center receive nearby parameters on the turbo colormap and thus
// similar hues, so adjacent clusters in the embedding are colored as
// perceptually related; positions far from the center come out more
// saturated and darker, down to the configured lightness floor.
//
// The center is the midpoint of the axis-aligned bounding box of all
// positions, not their centroid. Hue spacing follows the cumulative
// radius^RadiusWeightPower weight in angular order. When every position
// coincides with the center the total weight is zero and hues fall back
// to pure angular equidistribution, so the call never divides by zero.
//
// n is the requested category count: a nil slice is returned when n is
// zero or positions is empty, and positions beyond the first n are
// ignored.
func SpatialCategorical(n int, positions []Point, opts *SpatialOptions) []string {
	if n <= 0 || len(positions) == 0 {
		return nil
	}
	if len(positions) > n {
		positions = positions[:n]
	}
	var o SpatialOptions
	if opts != nil {
		o = *opts
	}
	if o.MinLightness <= 0 {
		o.MinLightness = defaultLMin
	}
	if o.RadiusWeightPower <= 0 {
		o.RadiusWeightPower = 1
	}

	lo, hi := positions[0], positions[0]
	for _, p := range positions[1:] {
		lo.X = math32.Min(lo.X, p.X)
		lo.Y = math32.Min(lo.Y, p.Y)
		hi.X = math32.Max(hi.X, p.X)
		hi.Y = math32.Max(hi.Y, p.Y)
	}
	center := Point{(lo.X + hi.X) / 2, (lo.Y + hi.Y) / 2}

	// Polar coordinates about the box center, carrying the original
	// index through the sort so coincident positions keep distinct
	// identities.
	type polar struct {
		idx    int
		radius float32
		theta  float32
	}
	pts := make([]polar, len(positions))
	var maxRadius float32
	for i, p := range positions {
		dx := p.X - center.X
		dy := p.Y - center.Y
		r := math32.Hypot(dx, dy)
		pts[i] = polar{idx: i, radius: r, theta: math32.Atan2(dy, dx)}
		maxRadius = math32.Max(maxRadius, r)
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].theta < pts[j].theta })

	cum := make([]float32, len(pts))
	var total float32
	for i, p := range pts {
		total += math32.Pow(p.radius, o.RadiusWeightPower)
		cum[i] = total
	}

	pal := make([]string, len(pts))
	for i, p := range pts {
		t := float32(i+1) / float32(len(pts)) // all positions at the center
		if total > 0 {
			t = cum[i] / total
		}
		t += o.HueShift / 360
		t -= math32.Floor(t)

		h, ch, l := ramp.At(float64(t)).Hcl()

		var nr float64
		if maxRadius > 0 {
			nr = float64(p.radius / maxRadius)
		}
		ch *= chromaBase + chromaSpan*nr
		l *= lightBase - lightSpan*nr
		if floor := float64(o.MinLightness) / 100; l < floor {
			l = floor
		}
		pal[p.idx] = colorful.Hcl(h, ch, l).Clamped().Hex()
	}
	return pal
}

// CircularRamp returns the sample of the circular colormap used by
// [SpatialCategorical] at parameter t, with values outside [0, 1)
// wrapped around. It lets a legend or color wheel be drawn consistently
// with the generated palette.
func CircularRamp(t float32) Sample {
	t -= math32.Floor(t)
	c := ramp.At(float64(t)).Clamped()
	return Sample{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}
}
