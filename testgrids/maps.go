package testgrids

var mapCases = []Case{
	{
		Name: "empty_room",
		Grid: New(8, 6),
	},
	{
		Name: "centre_obstacle",
		Grid: centreObstacle(),
	},
	{
		Name: "wall_with_gap",
		Grid: wallWithGap(),
	},
	{
		Name: "soft_gradient",
		Grid: softGradient(),
	},
	{
		Name: "cluttered",
		Grid: cluttered(),
	},
}

// centreObstacle builds a 9x9 room with a 3x3 block in the middle.
func centreObstacle() *Grid {
	g := New(9, 9)
	g.BlockRect(3, 3, 5, 5)
	return g
}

// wallWithGap builds a 12x8 room split by a vertical wall at x=6, with a
// one-cell gap at y=3.
func wallWithGap() *Grid {
	g := New(12, 8)
	for y := 0; y < 8; y++ {
		if y == 3 {
			continue
		}
		g.Block(6, y)
	}
	return g
}

// softGradient builds a grid whose occupancy ramps linearly from free on
// the left edge to fully occupied on the right edge.
func softGradient() *Grid {
	g := New(16, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			g.SetOccupancy(x, y, float64(x)/15)
		}
	}
	return g
}

// cluttered builds a 10x10 room with a handful of fixed single-cell
// obstacles.
func cluttered() *Grid {
	g := New(10, 10)
	for _, c := range [][2]int{{1, 2}, {2, 7}, {4, 4}, {5, 9}, {7, 1}, {8, 6}, {9, 3}} {
		g.Block(c[0], c[1])
	}
	return g
}
