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

package gridplot_test

import (
	"fmt"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridplot"
	"seehuhn.de/go/gridplot/testgrids"
)

func benchGrid(size int) *testgrids.Grid {
	g := testgrids.New(size, size)
	g.BlockRect(size/4, size/4, size/2, size/2)
	mid := float64(size) / 2
	g.FillDistanceField(vec.Vec2{X: mid, Y: mid})
	return g
}

func BenchmarkRenderMap(b *testing.B) {
	for _, size := range []int{32, 256, 1024} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			g := benchGrid(size)
			b.ReportAllocs()
			for b.Loop() {
				if _, err := gridplot.RenderMap(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRenderValuesJet(b *testing.B) {
	for _, size := range []int{32, 256, 1024} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			g := benchGrid(size)
			b.ReportAllocs()
			for b.Loop() {
				buf, err := gridplot.RenderValues(g)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := gridplot.Jet.Map(buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkOverlayPaths(b *testing.B) {
	const size = 256
	g := benchGrid(size)

	diag := make(gridplot.Path, size)
	for i := range diag {
		diag[i] = vec.Vec2{X: float64(i), Y: float64(i)}
	}

	base, err := gridplot.RenderMapBase(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		buf := base.Clone()
		if err := gridplot.OverlayPaths(buf, diag); err != nil {
			b.Fatal(err)
		}
	}
}
