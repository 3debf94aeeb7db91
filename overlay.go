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

// MaxOverlayPaths is the number of paths that the channel-exclusion
// overlay can keep visually distinct on a 3-channel buffer. Beyond two
// paths the remaining exclusion patterns are no longer clearly
// distinguishable; callers needing more concurrent paths must assign
// full RGB colours per path instead.
const MaxOverlayPaths = 2

// OverlayPaths composites paths onto a 3-channel base buffer, typically
// one produced by RenderMapBase. For path j, every truncated vertex keeps
// channel j at its base intensity and has the other channels zeroed, so
// each path appears as a solid colour trace (path 0 red, path 1 green)
// while preserving the brightness pattern of the base layer.
//
// All vertices of all paths are bounds-checked before the first pixel is
// written: on ErrPathBounds or ErrTooManyPaths the buffer is unchanged.
func OverlayPaths(buf *Buffer, paths ...Path) error {
	if buf.Channels != 3 {
		return ErrChannels
	}
	if len(paths) > MaxOverlayPaths {
		return ErrTooManyPaths
	}
	for _, path := range paths {
		if err := checkPath(path, buf.Width, buf.Height); err != nil {
			return err
		}
	}
	for j, path := range paths {
		for _, p := range path {
			col, row := vertexCell(p, buf.Height)
			for c := 0; c < buf.Channels; c++ {
				if c != j {
					buf.Set(col, row, c, 0)
				}
			}
		}
	}
	return nil
}

// MarkPath saturates the path's vertices to full intensity on a
// 1-channel buffer. Applied to a normalised value rendering before the
// colormap, this traces the path in the colormap's hottest colour.
// The buffer is unchanged on error.
func MarkPath(buf *Buffer, path Path) error {
	if buf.Channels != 1 {
		return ErrChannels
	}
	if err := checkPath(path, buf.Width, buf.Height); err != nil {
		return err
	}
	for _, p := range path {
		col, row := vertexCell(p, buf.Height)
		buf.Set(col, row, 0, 255)
	}
	return nil
}
