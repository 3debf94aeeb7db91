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
	"image/color"

	"gonum.org/v1/plot/palette"
)

// LUT is a 256-entry colour lookup table mapping normalised samples in
// [0, 255] to RGB triples. A LUT is write-once: the package-level tables
// are built at init time and never mutated afterwards, so they are safe
// for unsynchronised concurrent reads from any number of render calls.
type LUT [256]color.RGBA

// Jet is the classic blue-cyan-green-yellow-red perceptual colormap.
// Low samples map to deep blue, high samples to deep red, with strictly
// distinct colours at the two extremes.
var Jet = makeJet()

// makeJet builds the jet table from the usual piecewise-linear ramps:
// each channel is a triangular bump, offset by a quarter period.
func makeJet() *LUT {
	ramp := func(t float64) uint8 {
		v := 1.5 - t
		if v < 0 {
			v = -v
		}
		v = 1.5 - v
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		return uint8(v*255 + 0.5)
	}
	var l LUT
	for i := range l {
		t := 4 * float64(i) / 255
		l[i] = color.RGBA{
			R: ramp(t - 1.5),
			G: ramp(t - 0.5),
			B: ramp(t + 0.5),
			A: 255,
		}
	}
	return &l
}

// Map expands a 1-channel buffer into a 3-channel buffer by passing each
// sample through the table. Samples are clamped to the table range, so
// over-range values (e.g. unvisited cells of an arrival-time field)
// saturate at the table's hot end. Returns ErrChannels if the input
// already has three channels.
func (l *LUT) Map(buf *Buffer) (*Buffer, error) {
	if buf.Channels != 1 {
		return nil, ErrChannels
	}
	out := NewBuffer(buf.Width, buf.Height, 3)
	for row := 0; row < buf.Height; row++ {
		for col := 0; col < buf.Width; col++ {
			c := l[clamp8(buf.At(col, row, 0))]
			out.Set(col, row, 0, float64(c.R))
			out.Set(col, row, 1, float64(c.G))
			out.Set(col, row, 2, float64(c.B))
		}
	}
	return out, nil
}

// Colors returns the table entries in order. This implements
// gonum.org/v1/plot/palette.Palette, so a LUT can be used directly as
// the palette of a gonum heatmap.
func (l *LUT) Colors() []color.Color {
	colors := make([]color.Color, len(l))
	for i, c := range l {
		colors[i] = c
	}
	return colors
}

var _ palette.Palette = (*LUT)(nil)
