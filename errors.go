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

import "errors"

// Sentinel errors reported by rendering operations. All are detected
// before any pixel is written, so a failed operation never leaves a
// partially drawn buffer behind.
var (
	// ErrDimension indicates a grid that does not have exactly two dimensions.
	ErrDimension = errors.New("gridplot: grid must be two-dimensional")
	// ErrEmptyGrid indicates a grid with a zero-sized dimension.
	ErrEmptyGrid = errors.New("gridplot: grid dimensions must be positive")
	// ErrZeroMaxValue indicates a value grid whose maximum value is not positive,
	// leaving nothing to normalise against.
	ErrZeroMaxValue = errors.New("gridplot: grid max value must be positive")
	// ErrPathBounds indicates a path vertex outside the grid after truncation.
	ErrPathBounds = errors.New("gridplot: path vertex outside grid bounds")
	// ErrTooManyPaths indicates more paths than the channel-exclusion overlay
	// can keep distinguishable.
	ErrTooManyPaths = errors.New("gridplot: too many paths for channel overlay")
	// ErrChannels indicates a buffer with the wrong channel count for an operation.
	ErrChannels = errors.New("gridplot: wrong channel count for operation")
)
