// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenview shows shapes output in a desktop window using Ebitengine.
//
// The data flow is:
//
//	shapes.Render -> surface.ImageSurface (CPU) -> ebiten.Image -> Window
//
// # Architecture
//
// View implements ebiten.Game around an ImageSurface:
//
//   - A SceneFunc draws into the surface whenever a new frame is requested
//   - Draw uploads the surface to an ebiten.Image only after it changed
//   - Space, Enter or R request a new scene; Escape or Q close the window
//
// # Usage
//
//	v, err := ebitenview.New(800, 600, func(dst *surface.ImageSurface, gen int) error {
//	    return shapes.Render(dst, placement.Scene(placement.New(uint64(gen)), 800, 600, 20))
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Fatal(v.Run("shapes", 1))
package ebitenview
