package testgrids

var fieldCases = []Case{
	{
		Name: "radial",
		Grid: radialField(),
	},
	{
		Name: "corner_wave",
		Grid: cornerWave(),
	},
	{
		Name: "two_seeds",
		Grid: twoSeeds(),
	},
	{
		Name: "wave_around_wall",
		Grid: waveAroundWall(),
	},
}

// radialField builds a 21x21 field of distances from the centre cell.
func radialField() *Grid {
	g := New(21, 21)
	g.FillDistanceField(pt(10, 10))
	return g
}

// cornerWave builds a 16x12 field expanding from the bottom-left corner.
func cornerWave() *Grid {
	g := New(16, 12)
	g.FillDistanceField(pt(0, 0))
	return g
}

// twoSeeds builds a 24x10 field with two wave sources.
func twoSeeds() *Grid {
	g := New(24, 10)
	g.FillDistanceField(pt(3, 5), pt(20, 5))
	return g
}

// waveAroundWall combines the wall_with_gap map with a distance field
// seeded on the left side, so occupied cells stay unvisited (+Inf).
func waveAroundWall() *Grid {
	g := wallWithGap()
	g.FillDistanceField(pt(1, 4))
	return g
}
