// Command export renders every testgrids scenario to PNG files under
// testdata/rendered/, for visual inspection after pipeline changes.
// Run from the gridplot module root directory.
package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/gridplot"
	"seehuhn.de/go/gridplot/testgrids"
)

const outDir = "testdata/rendered"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatal(err)
	}

	p := gridplot.New(&gridplot.PNGSink{Dir: outDir, Scale: 24})

	for _, category := range slices.Sorted(maps.Keys(testgrids.All)) {
		for _, tc := range testgrids.All[category] {
			if err := export(p, category, tc); err != nil {
				log.Fatalf("%s_%s: %v", category, tc.Name, err)
			}
		}
	}
}

// export renders one case in every mode its data supports.
func export(p *gridplot.Plotter, category string, tc testgrids.Case) error {
	title := category + "_" + tc.Name

	if err := p.Map(tc.Grid, title); err != nil {
		return err
	}
	if err := p.OccupancyMap(tc.Grid, title); err != nil {
		return err
	}

	if tc.HasField() {
		if err := p.ArrivalTimes(tc.Grid, title); err != nil {
			return err
		}
		if err := heatmap(tc.Grid, title); err != nil {
			return err
		}
	}

	switch len(tc.Paths) {
	case 0:
	case 1:
		if err := p.MapPath(tc.Grid, tc.Paths[0], title); err != nil {
			return err
		}
		// separate title: same suffix as MapPath, different base layer
		if err := p.OccupancyPath(tc.Grid, tc.Paths[0], title+"_occ"); err != nil {
			return err
		}
		if tc.HasField() {
			if err := p.ArrivalTimesPath(tc.Grid, tc.Paths[0], title); err != nil {
				return err
			}
		}
	default:
		if err := p.MapPaths(tc.Grid, tc.Paths, title); err != nil {
			return err
		}
	}
	return nil
}

// heatmap writes a gonum/plot heatmap of the case's value field, using
// the jet table as the palette. This is the axis-labelled counterpart of
// the raw ArrivalTimes rendering.
func heatmap(g *testgrids.Grid, title string) error {
	pl := plot.New()
	pl.Title.Text = title + " Grid values"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"

	pl.Add(plotter.NewHeatMap(g, gridplot.Jet))

	name := filepath.Join(outDir, title+"_heatmap.png")
	if err := pl.Save(6*vg.Inch, 6*vg.Inch, name); err != nil {
		return fmt.Errorf("save heatmap: %w", err)
	}
	return nil
}
