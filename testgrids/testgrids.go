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

// Package testgrids provides an in-memory grid implementation and a set
// of named scenarios used by the gridplot tests and the export command.
package testgrids

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridplot"
)

// Grid is a dense in-memory 2D grid implementing both
// gridplot.OccupancyGrid and gridplot.ValueGrid. It also satisfies
// gonum/plot's plotter.GridXYZ, so its scalar field can be fed straight
// into a heatmap.
type Grid struct {
	width, height int
	occ           []float64
	val           []float64
	maxVal        float64
}

// New returns an all-free grid of the given size with a zero value field.
func New(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		occ:    make([]float64, width*height),
		val:    make([]float64, width*height),
	}
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// DimSizes returns the grid extent, one entry per dimension.
func (g *Grid) DimSizes() []int {
	return []int{g.width, g.height}
}

// IsOccupied reports whether the cell's occupancy exceeds 0.5.
func (g *Grid) IsOccupied(x, y int) bool {
	return g.occ[g.index(x, y)] > 0.5
}

// Occupancy returns the cell's occupancy in [0, 1].
func (g *Grid) Occupancy(x, y int) float64 {
	return g.occ[g.index(x, y)]
}

// Value returns the cell's scalar value.
func (g *Grid) Value(x, y int) float64 {
	return g.val[g.index(x, y)]
}

// MaxValue returns the largest finite value set so far.
func (g *Grid) MaxValue() float64 {
	return g.maxVal
}

// SetOccupancy stores an occupancy in [0, 1] for the cell.
func (g *Grid) SetOccupancy(x, y int, o float64) {
	g.occ[g.index(x, y)] = o
}

// Block marks the cell as fully occupied.
func (g *Grid) Block(x, y int) {
	g.SetOccupancy(x, y, 1)
}

// BlockRect marks every cell with x0 <= x <= x1, y0 <= y <= y1 as occupied.
func (g *Grid) BlockRect(x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.Block(x, y)
		}
	}
}

// SetValue stores a scalar value for the cell, tracking the grid maximum.
// Infinite values (unvisited cells) are stored but do not affect the maximum.
func (g *Grid) SetValue(x, y int, v float64) {
	g.val[g.index(x, y)] = v
	if !math.IsInf(v, 1) && v > g.maxVal {
		g.maxVal = v
	}
}

// FillDistanceField sets every free cell's value to the Euclidean
// distance from the nearest seed, a stand-in for the arrival times a
// wavefront planner would compute. Occupied cells are set to +Inf.
func (g *Grid) FillDistanceField(seeds ...vec.Vec2) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.IsOccupied(x, y) {
				g.val[g.index(x, y)] = math.Inf(1)
				continue
			}
			d := math.Inf(1)
			for _, s := range seeds {
				dx, dy := float64(x)-s.X, float64(y)-s.Y
				if sd := math.Hypot(dx, dy); sd < d {
					d = sd
				}
			}
			g.SetValue(x, y, d)
		}
	}
}

// Dims implements plotter.GridXYZ.
func (g *Grid) Dims() (c, r int) {
	return g.width, g.height
}

// Z implements plotter.GridXYZ, returning the value at column c, row r.
// Heatmap rows count upwards from the bottom, matching grid coordinates,
// so no flip is needed here.
func (g *Grid) Z(c, r int) float64 {
	v := g.val[g.index(c, r)]
	if math.IsInf(v, 1) {
		return g.maxVal
	}
	return v
}

// X implements plotter.GridXYZ.
func (g *Grid) X(c int) float64 {
	return float64(c)
}

// Y implements plotter.GridXYZ.
func (g *Grid) Y(r int) float64 {
	return float64(r)
}

// Case is a named rendering scenario: a grid, and optionally the paths
// to overlay on it.
type Case struct {
	Name  string // lowercase a-z and _ only
	Grid  *Grid
	Paths []gridplot.Path
}

// HasField reports whether the case carries a usable scalar field.
func (c Case) HasField() bool {
	return c.Grid.MaxValue() > 0
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
