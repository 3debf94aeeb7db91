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
	"image"
	"image/color"
)

// Buffer is a raster image with 1 (grayscale) or 3 (RGB) channels.
// Samples are stored row-major and channel-interleaved, with values in
// [0, 255] and the origin at the top-left corner. A Buffer is allocated
// fresh per render call and is not shared between calls.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []float64
}

// NewBuffer allocates a zeroed buffer of the given size.
// channels must be 1 or 3.
func NewBuffer(width, height, channels int) *Buffer {
	return &Buffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float64, width*height*channels),
	}
}

// offset returns the index of channel c of the pixel at (col, row).
func (b *Buffer) offset(col, row, c int) int {
	return (row*b.Width+col)*b.Channels + c
}

// At returns the sample value of channel c at (col, row).
func (b *Buffer) At(col, row, c int) float64 {
	return b.Pix[b.offset(col, row, c)]
}

// Set stores a sample value in channel c at (col, row).
func (b *Buffer) Set(col, row, c int, v float64) {
	b.Pix[b.offset(col, row, c)] = v
}

// SetAll stores the same sample value in every channel at (col, row).
func (b *Buffer) SetAll(col, row int, v float64) {
	base := (row*b.Width + col) * b.Channels
	for c := 0; c < b.Channels; c++ {
		b.Pix[base+c] = v
	}
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]float64, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Channels: b.Channels, Pix: pix}
}

// Gray converts a 1-channel buffer to an 8-bit grayscale image.
// Samples are clamped to [0, 255].
func (b *Buffer) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			img.SetGray(col, row, color.Gray{Y: clamp8(b.At(col, row, 0))})
		}
	}
	return img
}

// RGBA converts a 3-channel buffer to an 8-bit RGBA image with full opacity.
// Samples are clamped to [0, 255].
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			img.SetRGBA(col, row, color.RGBA{
				R: clamp8(b.At(col, row, 0)),
				G: clamp8(b.At(col, row, 1)),
				B: clamp8(b.At(col, row, 2)),
				A: 255,
			})
		}
	}
	return img
}

// Image converts the buffer to the image type matching its channel count.
func (b *Buffer) Image() image.Image {
	if b.Channels == 3 {
		return b.RGBA()
	}
	return b.Gray()
}

// clamp8 rounds a sample to the nearest 8-bit intensity, clamping to
// [0, 255]. Infinite samples (e.g. unvisited cells in an arrival-time
// field) saturate rather than wrap.
func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
