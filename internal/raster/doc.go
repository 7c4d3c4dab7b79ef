// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts integer geometry into pixel coordinates.
//
// The rasterizers here are pure: they know nothing about colors or targets and
// report every covered pixel through a Plot callback, in a deterministic order.
// Callers own deduplication, clipping and color.
package raster

// Plot receives one pixel coordinate.
type Plot func(x, y int)
