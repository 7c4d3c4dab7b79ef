// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides pixel sinks for shapes.
//
// Every type here implements shapes.Sink, so the same drawing code works
// with:
//
//   - ImageSurface: an in-memory RGBA buffer that can be encoded to PNG, BMP
//     or TIFF (see the format registry)
//   - Recorder: an ordered log of writes, for tests and tooling
//   - Bounds: a pass-through that tracks the area covered by writes
//   - FromDisplayer: any tinygo.org/x/drivers Displayer (TFT and e-paper
//     panels, framebuffers)
//
// AsDisplayer goes the other way and exposes a Sink as a Displayer, so
// drivers-based libraries such as tinyfont can draw through it.
//
// # Usage
//
//	s := surface.NewImageSurface(800, 600)
//	s.Clear(shapes.Black)
//
//	_ = shapes.Render(s, scene)
//
//	if err := s.SaveFile("scene.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
package surface
