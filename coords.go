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

import "seehuhn.de/go/geom/vec"

// ToRaster converts grid coordinates (origin bottom-left) to raster
// coordinates (origin top-left) for a grid of the given height:
//
//	col = x
//	row = height - y - 1
//
// The same mapping is used for whole-grid rasterisation and for placing
// individual path vertices, so the Y flip is defined in exactly one place.
// Inputs outside [0, width) x [0, height) are a caller contract violation;
// exported entry points validate before calling.
func ToRaster(x, y, height int) (col, row int) {
	return x, height - y - 1
}

// vertexCell truncates a path vertex to its cell and maps it to raster
// coordinates.
func vertexCell(p vec.Vec2, height int) (col, row int) {
	return ToRaster(int(p.X), int(p.Y), height)
}

// checkPath verifies that every vertex of the path lands inside a
// width x height grid after truncation. Negative coordinates are rejected
// before truncation so that values in (-1, 0) do not slip through.
func checkPath(path Path, width, height int) error {
	for _, p := range path {
		if p.X < 0 || p.Y < 0 {
			return ErrPathBounds
		}
		if x, y := int(p.X), int(p.Y); x >= width || y >= height {
			return ErrPathBounds
		}
	}
	return nil
}
