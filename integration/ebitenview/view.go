// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/surface"
)

// Common errors returned by View operations.
var (
	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ebitenview: invalid dimensions")

	// ErrNilScene is returned when New is called without a SceneFunc.
	ErrNilScene = errors.New("ebitenview: nil SceneFunc")
)

// SceneFunc draws one scene into dst. gen starts at 0 and increases by one
// every time a new scene is requested. A returned error is logged and the
// partially drawn surface is still shown.
type SceneFunc func(dst *surface.ImageSurface, gen int) error

// View is an ebiten.Game presenting an ImageSurface.
//
// View is NOT safe for concurrent use; ebiten calls Update and Draw from the
// same goroutine.
type View struct {
	surf       *surface.ImageSurface
	scene      SceneFunc
	background shapes.Color

	tex     *ebiten.Image
	dirty   bool
	gen     int
	pending bool
}

// New creates a View with a width x height surface. The first scene is drawn
// on the first Update.
func New(width, height int, scene SceneFunc) (*View, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if scene == nil {
		return nil, ErrNilScene
	}
	return &View{
		surf:       surface.NewImageSurface(width, height),
		scene:      scene,
		background: shapes.Black,
		gen:        -1,
		pending:    true,
	}, nil
}

// SetBackground sets the color each new scene starts from.
func (v *View) SetBackground(c shapes.Color) { v.background = c }

// Surface returns the surface scenes are drawn into.
func (v *View) Surface() *surface.ImageSurface { return v.surf }

// Generation returns the number of the scene currently shown, or -1 before
// the first one.
func (v *View) Generation() int { return v.gen }

// Request asks for a new scene on the next Update.
func (v *View) Request() { v.pending = true }

// Regenerate clears the surface and draws the next scene immediately.
func (v *View) Regenerate() error {
	v.gen++
	v.pending = false
	v.dirty = true
	v.surf.Clear(v.background)

	err := v.scene(v.surf, v.gen)
	if err != nil {
		shapes.Logger().Warn("ebitenview: scene drew with errors", "generation", v.gen, "err", err)
	} else {
		shapes.Logger().Debug("ebitenview: scene drawn", "generation", v.gen)
	}
	return err
}

// Update implements ebiten.Game.
func (v *View) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.Request()
	}
	if v.pending {
		_ = v.Regenerate()
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *View) Draw(screen *ebiten.Image) {
	if v.tex == nil {
		v.tex = ebiten.NewImage(v.surf.Width(), v.surf.Height())
		v.dirty = true
	}
	if v.dirty {
		v.tex.WritePixels(v.surf.Image().Pix)
		v.dirty = false
	}
	screen.DrawImage(v.tex, nil)
}

// Layout implements ebiten.Game. The logical screen is always the surface
// size; ebiten scales it to the window.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.surf.Width(), v.surf.Height()
}

// Run opens a window scale times the surface size and blocks until it is
// closed. Closing the window with Escape or Q is not an error.
func (v *View) Run(title string, scale int) error {
	scale = max(scale, 1)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(v.surf.Width()*scale, v.surf.Height()*scale)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
