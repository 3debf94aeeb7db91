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

// Package gridplot renders the state of 2D planner grids (occupancy,
// scalar fields such as arrival times, and traversal paths) into raster
// images for visual inspection.
//
// The package never plans or mutates grid state: it reads a grid through
// the narrow interfaces below and produces a pixel buffer. Grids use
// Cartesian coordinates with the origin at the bottom-left corner; raster
// buffers use image conventions with the origin at the top-left. The two
// are related by ToRaster.
package gridplot

//go:generate go run ./testgrids/export

import "seehuhn.de/go/geom/vec"

// Grid is the common contract of all renderable grids: it reports the
// size of each grid dimension, in cells. Rendering is defined only for
// grids with exactly two dimensions.
type Grid interface {
	DimSizes() []int
}

// OccupancyGrid is a Grid whose cells carry an occupancy state.
// Occupancy returns a value in [0, 1]; IsOccupied is the binary view
// of the same information.
type OccupancyGrid interface {
	Grid
	IsOccupied(x, y int) bool
	Occupancy(x, y int) float64
}

// ValueGrid is a Grid whose cells carry a scalar value, for example the
// arrival time computed by a wavefront planner. MaxValue returns the
// grid-wide maximum and must be positive for value rendering.
type ValueGrid interface {
	Grid
	Value(x, y int) float64
	MaxValue() float64
}

// Path is an ordered sequence of points in grid coordinates. Vertices
// are truncated to integer cell indices when drawn.
type Path []vec.Vec2

// gridSize validates the grid's dimensionality and returns its extent.
func gridSize(g Grid) (width, height int, err error) {
	d := g.DimSizes()
	if len(d) != 2 {
		return 0, 0, ErrDimension
	}
	if d[0] < 1 || d[1] < 1 {
		return 0, 0, ErrEmptyGrid
	}
	return d[0], d[1], nil
}
