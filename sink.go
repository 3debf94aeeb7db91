// seehuhn.de/go/gridplot - raster visualisation of 2D planner grids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gridplot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Sink receives finished images for display. Implementations decide what
// "display" means: an on-screen window, a PNG on disk, a test capture.
// Show is called synchronously, once per render, and only with fully
// rendered images.
type Sink interface {
	Show(img image.Image, title string) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(img image.Image, title string) error

// Show calls f.
func (f SinkFunc) Show(img image.Image, title string) error {
	return f(img, title)
}

// PNGSink writes each image as a PNG file named after its title.
// Planner grids are usually far smaller than a comfortable viewing size,
// so images are upscaled by the integer Scale factor with nearest-
// neighbour sampling, keeping cell boundaries crisp.
type PNGSink struct {
	// Dir is the output directory, created on first use.
	Dir string

	// Scale is the integer upscale factor per cell. Values below 2
	// write the image at its native size.
	Scale int
}

// Show writes the image to Dir as <slug-of-title>.png.
func (s *PNGSink) Show(img image.Image, title string) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create plot directory: %w", err)
	}

	if s.Scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*s.Scale, b.Dy()*s.Scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}

	name := filepath.Join(s.Dir, slug(title)+".png")
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return nil
}

// slug converts a display title to a safe file name: lower case, spaces
// to underscores, everything else outside [a-z0-9_-] dropped.
func slug(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}
