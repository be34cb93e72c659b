package iso

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

const (
	// Epsilon scales elevation in DepthKey so it only breaks ties within a cell
	Epsilon = 0.01

	// MaxElevation is the largest elevation DepthKey orders correctly.
	// Above it, elevation*Epsilon exceeds 1 and can reorder tiles across cells.
	MaxElevation = 1 / Epsilon
)

var ErrElevationRange = errors.New("iso: elevation outside depth key range")

// DepthKey returns a sortable scalar for painter's-algorithm ordering.
// Precondition: 0 <= elevation <= MaxElevation.
func DepthKey(gridX, gridY, elevation float64) float64 {
	return gridX + gridY + elevation*Epsilon
}

// DepthOf returns the depth key of a tile using its base elevation
func DepthOf(t Tile) float64 {
	return DepthKey(float64(t.GridX), float64(t.GridY), t.Z)
}

// SortFunc orders tiles back to front without mutating its input
type SortFunc func(tiles []Tile) []Tile

// SortByDepth returns a copy of tiles stably sorted by ascending DepthKey
func SortByDepth(tiles []Tile) []Tile {
	out := slices.Clone(tiles)
	slices.SortStableFunc(out, func(a, b Tile) int {
		return cmp.Compare(DepthOf(a), DepthOf(b))
	})
	return out
}

// CompareDepth orders tiles by grid diagonal, then elevation.
// Unlike DepthKey it has no elevation ceiling.
func CompareDepth(a, b Tile) int {
	if c := cmp.Compare(a.GridX+a.GridY, b.GridX+b.GridY); c != 0 {
		return c
	}
	return cmp.Compare(a.Z, b.Z)
}

// SortLexicographic returns a copy of tiles stably sorted with CompareDepth
func SortLexicographic(tiles []Tile) []Tile {
	out := slices.Clone(tiles)
	slices.SortStableFunc(out, CompareDepth)
	return out
}

// CheckElevation reports the first tile whose elevation DepthKey cannot order
func CheckElevation(tiles []Tile) error {
	for i, t := range tiles {
		if t.Z < 0 || t.Z > MaxElevation {
			return fmt.Errorf("tile %d at (%d,%d) z=%g: %w", i, t.GridX, t.GridY, t.Z, ErrElevationRange)
		}
	}
	return nil
}
