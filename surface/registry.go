// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned when no registered format matches a name or
// file extension.
var ErrUnknownFormat = errors.New("surface: unknown image format")

// EncodeFunc writes img to w.
type EncodeFunc func(w io.Writer, img image.Image) error

// FormatEntry represents a registered image format.
type FormatEntry struct {
	// Name is the unique identifier for this format ("png", "bmp", ...).
	Name string

	// Extensions are the lower-case file extensions, with leading dot, that
	// select this format.
	Extensions []string

	// Encode writes an image in this format.
	Encode EncodeFunc
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

func init() {
	RegisterFormat("png", []string{".png"}, png.Encode)
	RegisterFormat("bmp", []string{".bmp"}, bmp.Encode)
	RegisterFormat("tiff", []string{".tif", ".tiff"}, func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	})
}

// Registry manages image formats that surfaces can be saved in.
//
// Example registration:
//
//	func init() {
//	    surface.RegisterFormat("jpeg", []string{".jpg", ".jpeg"}, func(w io.Writer, img image.Image) error {
//	        return jpeg.Encode(w, img, nil)
//	    })
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*FormatEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via RegisterFormat and Encode.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*FormatEntry),
	}
}

// RegisterFormat adds a format to the global registry.
// Registering a name that already exists replaces the previous entry.
func RegisterFormat(name string, exts []string, enc EncodeFunc) {
	globalRegistry.Register(name, exts, enc)
}

// Formats returns all registered format names, sorted.
func Formats() []string {
	return globalRegistry.List()
}

// FormatFor returns the registered format selected by path's extension.
func FormatFor(path string) (string, error) {
	return globalRegistry.FormatFor(path)
}

// Encode writes img to w in the named format using the global registry.
func Encode(w io.Writer, format string, img image.Image) error {
	return globalRegistry.Encode(w, format, img)
}

// Register adds a format to this registry.
func (r *Registry) Register(name string, exts []string, enc EncodeFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*FormatEntry)
	}

	lower := make([]string, len(exts))
	for i, e := range exts {
		lower[i] = strings.ToLower(e)
	}
	r.entries[name] = &FormatEntry{Name: name, Extensions: lower, Encode: enc}
}

// Unregister removes a format from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Get returns the entry for a format.
func (r *Registry) Get(name string) (*FormatEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// List returns all registered format names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatFor returns the format whose extensions include path's extension.
func (r *Registry) FormatFor(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		for _, x := range e.Extensions {
			if x == ext {
				return e.Name, nil
			}
		}
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

// Encode writes img to w in the named format.
func (r *Registry) Encode(w io.Writer, format string, img image.Image) error {
	e, ok := r.Get(format)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return e.Encode(w, img)
}
