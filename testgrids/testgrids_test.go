package testgrids_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridplot"
	"seehuhn.de/go/gridplot/testgrids"
)

// compile-time interface checks
var (
	_ gridplot.OccupancyGrid = (*testgrids.Grid)(nil)
	_ gridplot.ValueGrid     = (*testgrids.Grid)(nil)
	_ plotter.GridXYZ        = (*testgrids.Grid)(nil)
)

func TestGridBasics(t *testing.T) {
	g := testgrids.New(4, 3)
	require.Equal(t, []int{4, 3}, g.DimSizes())

	assert.False(t, g.IsOccupied(2, 1))
	g.SetOccupancy(2, 1, 0.8)
	assert.True(t, g.IsOccupied(2, 1))
	assert.Equal(t, 0.8, g.Occupancy(2, 1))

	g.Block(0, 0)
	assert.True(t, g.IsOccupied(0, 0))

	g.SetValue(3, 2, 7.5)
	assert.Equal(t, 7.5, g.Value(3, 2))
	assert.Equal(t, 7.5, g.MaxValue())

	// infinite values are stored but never become the maximum
	g.SetValue(1, 1, math.Inf(1))
	assert.True(t, math.IsInf(g.Value(1, 1), 1))
	assert.Equal(t, 7.5, g.MaxValue())
}

func TestFillDistanceField(t *testing.T) {
	g := testgrids.New(9, 9)
	g.Block(4, 2)
	g.FillDistanceField(vec.Vec2{X: 4, Y: 4})

	assert.Equal(t, 0.0, g.Value(4, 4), "seed cell")
	assert.Equal(t, 4.0, g.Value(0, 4), "straight-line distance")
	assert.InDelta(t, math.Sqrt(32), g.Value(0, 0), 1e-12, "diagonal distance")
	assert.True(t, math.IsInf(g.Value(4, 2), 1), "occupied cell stays unvisited")
	assert.InDelta(t, math.Sqrt(32), g.MaxValue(), 1e-12)
}

func TestGridXYZ(t *testing.T) {
	g := testgrids.New(6, 4)
	g.FillDistanceField(vec.Vec2{X: 0, Y: 0})

	c, r := g.Dims()
	require.Equal(t, 6, c)
	require.Equal(t, 4, r)
	assert.Equal(t, g.Value(2, 3), g.Z(2, 3))
	assert.Equal(t, 2.0, g.X(2))
	assert.Equal(t, 3.0, g.Y(3))

	// unvisited cells report the grid maximum so heatmap ranges stay finite
	g.Block(5, 0)
	g.FillDistanceField(vec.Vec2{X: 0, Y: 0})
	assert.Equal(t, g.MaxValue(), g.Z(5, 0))
}

// TestAllCasesRender runs every scenario through the full pipeline to
// catch stale case definitions (out-of-bounds paths, empty fields).
func TestAllCasesRender(t *testing.T) {
	for category, cases := range testgrids.All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				require.NotEmpty(t, tc.Name)
				require.Len(t, tc.Grid.DimSizes(), 2)

				_, err := gridplot.RenderMap(tc.Grid)
				require.NoError(t, err)
				_, err = gridplot.RenderOccupancy(tc.Grid)
				require.NoError(t, err)

				if tc.HasField() {
					buf, err := gridplot.RenderValues(tc.Grid)
					require.NoError(t, err)
					_, err = gridplot.Jet.Map(buf)
					require.NoError(t, err)
				}

				if len(tc.Paths) > 0 {
					base, err := gridplot.RenderMapBase(tc.Grid)
					require.NoError(t, err)
					require.NoError(t, gridplot.OverlayPaths(base, tc.Paths...))
				}
			})
		}
	}
}
