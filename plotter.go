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

// Plotter combines the render pipeline with a display sink. The title
// passed to each method is extended with a fixed, mode-specific suffix
// before it reaches the sink; downstream tooling matches on these
// suffixes, so they are part of the output contract.
//
// A Plotter holds no mutable state and may be shared between goroutines.
type Plotter struct {
	sink Sink
}

// New returns a Plotter that displays rendered images on the given sink.
func New(sink Sink) *Plotter {
	return &Plotter{sink: sink}
}

// Map renders the binary occupancy map and displays it with the title
// suffix " Map".
func (p *Plotter) Map(g OccupancyGrid, title string) error {
	buf, err := RenderMap(g)
	if err != nil {
		return err
	}
	return p.sink.Show(buf.Image(), title+" Map")
}

// OccupancyMap renders the continuous occupancy map and displays it with
// the title suffix " Occupancy Map".
func (p *Plotter) OccupancyMap(g OccupancyGrid, title string) error {
	buf, err := RenderOccupancy(g)
	if err != nil {
		return err
	}
	return p.sink.Show(buf.Image(), title+" Occupancy Map")
}

// ArrivalTimes renders the normalised scalar field through the jet
// colormap and displays it with the title suffix " Grid values".
func (p *Plotter) ArrivalTimes(g ValueGrid, title string) error {
	buf, err := RenderValues(g)
	if err != nil {
		return err
	}
	buf, err = Jet.Map(buf)
	if err != nil {
		return err
	}
	return p.sink.Show(buf.Image(), title+" Grid values")
}

// MapPath renders the binary occupancy base, overlays a single path and
// displays the result with the title suffix " Map and Path".
func (p *Plotter) MapPath(g OccupancyGrid, path Path, title string) error {
	buf, err := RenderMapBase(g)
	if err != nil {
		return err
	}
	if err := OverlayPaths(buf, path); err != nil {
		return err
	}
	return p.sink.Show(buf.Image(), title+" Map and Path")
}

// OccupancyPath renders the continuous occupancy base, overlays a single
// path and displays the result with the title suffix " Map and Path".
func (p *Plotter) OccupancyPath(g OccupancyGrid, path Path, title string) error {
	buf, err := RenderOccupancyBase(g)
	if err != nil {
		return err
	}
	if err := OverlayPaths(buf, path); err != nil {
		return err
	}
	return p.sink.Show(buf.Image(), title+" Map and Path")
}

// MapPaths renders the binary occupancy base, overlays up to
// MaxOverlayPaths paths in distinct colours and displays the result with
// the title suffix " Map and Paths".
func (p *Plotter) MapPaths(g OccupancyGrid, paths []Path, title string) error {
	buf, err := RenderMapBase(g)
	if err != nil {
		return err
	}
	if err := OverlayPaths(buf, paths...); err != nil {
		return err
	}
	return p.sink.Show(buf.Image(), title+" Map and Paths")
}

// ArrivalTimesPath renders the normalised scalar field, marks the path's
// cells at full intensity, applies the jet colormap and displays the
// result with the title suffix " Values and Path". The path traces in the
// colormap's hottest colour.
func (p *Plotter) ArrivalTimesPath(g ValueGrid, path Path, title string) error {
	buf, err := RenderValues(g)
	if err != nil {
		return err
	}
	if err := MarkPath(buf, path); err != nil {
		return err
	}
	buf, err = Jet.Map(buf)
	if err != nil {
		return err
	}
	return p.sink.Show(buf.Image(), title+" Values and Path")
}
