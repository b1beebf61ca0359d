// Copyright (c) 2025, The Embedmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors generates deterministic color palettes for categorical
// data visualization. It provides curated small-count palettes with a
// procedural extension for arbitrarily many categories ([Categorical]),
// spatially-aware palettes that assign perceptually related hues to
// nearby cluster centroids in a 2-D embedding ([SpatialCategorical]),
// and normalization of arbitrary CSS color strings into unit-interval
// samples ([FromString]).
//
// All functions are pure and stateless; they are safe to call
// concurrently without coordination.
package colors
