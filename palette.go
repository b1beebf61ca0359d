// Copyright (c) 2025, The Embedmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "fmt"

// category10 is the curated qualitative palette for up to ten
// categories, distinguishing categories by hue.
var category10 = [...]string{
	"#1f77b4", // blue
	"#ff7f0e", // orange
	"#2ca02c", // green
	"#d62728", // red
	"#9467bd", // purple
	"#8c564b", // brown
	"#e377c2", // pink
	"#7f7f7f", // gray
	"#bcbd22", // olive
	"#17becf", // cyan
}

// category20 extends category10 with a lighter tint of each hue:
// entry i is hue-paired with entry i+10.
var category20 = [...]string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	"#aec7e8", "#ffbb78", "#98df8a", "#ff9896", "#c5b0d5",
	"#c49c94", "#f7b6d2", "#c7c7c7", "#dbdb8d", "#9edae5",
}

// Categorical returns a deterministic palette of n colors for
// categorical data, one per category index. Counts up to 10 and 20 are
// served as prefixes of fixed curated tables, with the first ten entries
// of the 20-color table always matching the 10-color table. Larger
// counts extend the full 20-color table with procedurally generated
// hsl() colors: evenly spaced hues with alternating saturation and
// cycling lightness, so arbitrarily large category counts stay
// collision-tolerant without re-assigning existing colors. Non-positive
// counts are treated as 1. The returned slice is always a fresh copy.
func Categorical(n int) []string {
	if n < 1 {
		n = 1
	}
	if n <= len(category10) {
		return append([]string(nil), category10[:n]...)
	}
	if n <= len(category20) {
		return append([]string(nil), category20[:n]...)
	}
	pal := make([]string, n)
	copy(pal, category20[:])
	for i := len(category20); i < n; i++ {
		// Hue spacing uses the absolute index; the saturation and
		// lightness cycles restart at the first procedural entry.
		j := i - len(category20)
		hue := i * 360 / n % 360
		sat := 70
		if j%2 != 0 {
			sat = 85
		}
		light := 45 + j%3*10
		pal[i] = fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, sat, light)
	}
	return pal
}
