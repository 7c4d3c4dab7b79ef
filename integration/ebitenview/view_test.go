// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ebitenview

import (
	"errors"
	"testing"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/surface"
)

func TestNewValidation(t *testing.T) {
	noop := func(*surface.ImageSurface, int) error { return nil }
	if _, err := New(0, 10, noop); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("New(0,10) err = %v, want ErrInvalidDimensions", err)
	}
	if _, err := New(10, 10, nil); !errors.Is(err, ErrNilScene) {
		t.Errorf("New(nil scene) err = %v, want ErrNilScene", err)
	}
}

func TestRegenerate(t *testing.T) {
	var gens []int
	v, err := New(20, 10, func(dst *surface.ImageSurface, gen int) error {
		gens = append(gens, gen)
		dst.SetPixel(gen, 0, shapes.Red)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if v.Generation() != -1 {
		t.Errorf("Generation before first scene = %d, want -1", v.Generation())
	}
	v.SetBackground(shapes.Blue)

	for i := 0; i < 3; i++ {
		if err := v.Regenerate(); err != nil {
			t.Fatalf("Regenerate: %v", err)
		}
	}
	if len(gens) != 3 || gens[0] != 0 || gens[2] != 2 {
		t.Errorf("scene generations = %v, want [0 1 2]", gens)
	}
	if v.Generation() != 2 {
		t.Errorf("Generation = %d, want 2", v.Generation())
	}

	s := v.Surface()
	if s.At(2, 0) != shapes.Red {
		t.Errorf("current scene pixel missing")
	}
	if s.At(0, 0) != shapes.Blue {
		t.Errorf("previous scene not cleared: %v", s.At(0, 0))
	}
	if w, h := v.Layout(1000, 1000); w != 20 || h != 10 {
		t.Errorf("Layout = %d,%d, want 20,10", w, h)
	}
}

func TestRegenerateError(t *testing.T) {
	boom := errors.New("boom")
	v, _ := New(4, 4, func(*surface.ImageSurface, int) error { return boom })
	if err := v.Regenerate(); !errors.Is(err, boom) {
		t.Errorf("Regenerate err = %v, want boom", err)
	}
}
