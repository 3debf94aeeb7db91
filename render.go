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

// rasterize fills a fresh buffer by sampling every grid cell, writing the
// sample to all channels of the pixel at ToRaster(x, y, height). Samples
// outside [0, 255] are clamped on image conversion, not here, so tests
// can observe the raw extractor output.
func rasterize(width, height, channels int, sample func(x, y int) float64) *Buffer {
	buf := NewBuffer(width, height, channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			col, row := ToRaster(x, y, height)
			buf.SetAll(col, row, sample(x, y))
		}
	}
	return buf
}

// RenderMap renders the binary occupancy of a grid into a 1-channel
// buffer. Free cells render at full intensity (255), occupied cells at 0,
// so free space appears bright.
func RenderMap(g OccupancyGrid) (*Buffer, error) {
	w, h, err := gridSize(g)
	if err != nil {
		return nil, err
	}
	return rasterize(w, h, 1, func(x, y int) float64 {
		if g.IsOccupied(x, y) {
			return 0
		}
		return 255
	}), nil
}

// RenderOccupancy renders the continuous occupancy of a grid into a
// 1-channel buffer, scaling the [0, 1] occupancy to [0, 255].
func RenderOccupancy(g OccupancyGrid) (*Buffer, error) {
	w, h, err := gridSize(g)
	if err != nil {
		return nil, err
	}
	return rasterize(w, h, 1, func(x, y int) float64 {
		return g.Occupancy(x, y) * 255
	}), nil
}

// RenderValues renders the scalar field of a grid into a 1-channel
// buffer, normalising each value against MaxValue so that the largest
// value maps to exactly 255. Returns ErrZeroMaxValue if the field
// contains no positive value to normalise against.
func RenderValues(g ValueGrid) (*Buffer, error) {
	w, h, err := gridSize(g)
	if err != nil {
		return nil, err
	}
	maxVal := g.MaxValue()
	if !(maxVal > 0) {
		return nil, ErrZeroMaxValue
	}
	return rasterize(w, h, 1, func(x, y int) float64 {
		return g.Value(x, y) / maxVal * 255
	}), nil
}

// RenderMapBase renders binary occupancy into a 3-channel buffer, the
// white-on-black base layer that path overlays recolour.
func RenderMapBase(g OccupancyGrid) (*Buffer, error) {
	w, h, err := gridSize(g)
	if err != nil {
		return nil, err
	}
	return rasterize(w, h, 3, func(x, y int) float64 {
		if g.IsOccupied(x, y) {
			return 0
		}
		return 255
	}), nil
}

// RenderOccupancyBase renders continuous occupancy into a 3-channel
// buffer, for overlaying paths on a shaded occupancy map.
func RenderOccupancyBase(g OccupancyGrid) (*Buffer, error) {
	w, h, err := gridSize(g)
	if err != nil {
		return nil, err
	}
	return rasterize(w, h, 3, func(x, y int) float64 {
		return g.Occupancy(x, y) * 255
	}), nil
}
