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
	"errors"
	"testing"

	"seehuhn.de/go/gridplot"
)

func TestJetEndpoints(t *testing.T) {
	lo, hi := gridplot.Jet[0], gridplot.Jet[255]
	if lo == hi {
		t.Fatal("table extremes collapse to the same colour")
	}
	if lo.B <= lo.R || lo.B <= lo.G {
		t.Errorf("cold end %v is not blue-dominant", lo)
	}
	if hi.R <= hi.G || hi.R <= hi.B {
		t.Errorf("hot end %v is not red-dominant", hi)
	}
	// mid-table sits in the green band
	if mid := gridplot.Jet[128]; mid.G != 255 {
		t.Errorf("table midpoint %v is not green-saturated", mid)
	}
}

func TestJetOpaque(t *testing.T) {
	for i, c := range gridplot.Jet {
		if c.A != 255 {
			t.Fatalf("entry %d has alpha %d, want 255", i, c.A)
		}
	}
}

func TestJetMap(t *testing.T) {
	buf := gridplot.NewBuffer(256, 1, 1)
	for i := 0; i < 256; i++ {
		buf.Set(i, 0, 0, float64(i))
	}

	out, err := gridplot.Jet.Map(buf)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if out.Channels != 3 {
		t.Fatalf("mapped buffer has %d channels, want 3", out.Channels)
	}
	for i := 0; i < 256; i++ {
		want := gridplot.Jet[i]
		got := [3]float64{out.At(i, 0, 0), out.At(i, 0, 1), out.At(i, 0, 2)}
		if got[0] != float64(want.R) || got[1] != float64(want.G) || got[2] != float64(want.B) {
			t.Errorf("sample %d mapped to %v, want %v", i, got, want)
		}
	}
}

func TestJetMapClamps(t *testing.T) {
	buf := gridplot.NewBuffer(2, 1, 1)
	buf.Set(0, 0, 0, -12)
	buf.Set(1, 0, 0, 300)

	out, err := gridplot.Jet.Map(buf)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if got := out.At(0, 0, 2); got != float64(gridplot.Jet[0].B) {
		t.Errorf("under-range sample mapped to blue %v, want %v", got, gridplot.Jet[0].B)
	}
	if got := out.At(1, 0, 0); got != float64(gridplot.Jet[255].R) {
		t.Errorf("over-range sample mapped to red %v, want %v", got, gridplot.Jet[255].R)
	}
}

func TestJetMapRejectsRGB(t *testing.T) {
	buf := gridplot.NewBuffer(2, 2, 3)
	if _, err := gridplot.Jet.Map(buf); !errors.Is(err, gridplot.ErrChannels) {
		t.Fatalf("Map on 3-channel buffer: err = %v, want ErrChannels", err)
	}
}

func TestJetPalette(t *testing.T) {
	colors := gridplot.Jet.Colors()
	if len(colors) != 256 {
		t.Fatalf("palette has %d colours, want 256", len(colors))
	}
	if colors[0] != gridplot.Jet[0] || colors[255] != gridplot.Jet[255] {
		t.Error("palette order does not match table order")
	}
}
