package testgrids

import "seehuhn.de/go/gridplot"

var pathCases = []Case{
	{
		Name: "diagonal",
		Grid: New(8, 8),
		Paths: []gridplot.Path{
			{pt(0, 0), pt(1, 1), pt(2, 2), pt(3, 3), pt(4, 4), pt(5, 5), pt(6, 6), pt(7, 7)},
		},
	},
	{
		Name:  "through_gap",
		Grid:  throughGapGrid(),
		Paths: []gridplot.Path{throughGapPath()},
	},
	{
		Name: "two_routes",
		Grid: centreObstacle(),
		Paths: []gridplot.Path{
			{pt(0, 0), pt(1, 1), pt(2, 2), pt(2, 3), pt(2, 4), pt(2, 5), pt(2, 6), pt(3, 7), pt(4, 8)},
			{pt(0, 0), pt(1, 0), pt(2, 1), pt(3, 2), pt(4, 2), pt(5, 2), pt(6, 3), pt(6, 4), pt(6, 5), pt(5, 6), pt(4, 7), pt(4, 8)},
		},
	},
}

// throughGapGrid is the wall_with_gap map with a distance field seeded at
// the path start, so the same case can exercise the value-and-path mode.
func throughGapGrid() *Grid {
	g := wallWithGap()
	g.FillDistanceField(pt(1, 6))
	return g
}

// throughGapPath threads the one-cell gap at (6, 3). Vertices use
// fractional coordinates on purpose: they must truncate onto the cells a
// planner would report.
func throughGapPath() gridplot.Path {
	return gridplot.Path{
		pt(1.2, 6.1), pt(2.4, 5.5), pt(3.5, 4.9), pt(4.7, 4.2), pt(5.5, 3.5),
		pt(6.5, 3.5), pt(7.3, 3.8), pt(8.6, 4.4), pt(9.8, 5.1), pt(10.9, 5.7),
	}
}
