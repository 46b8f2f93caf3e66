// Package coords converts between world grid space and screen pixel space.
//
// World space is the isometric grid: x grows to the lower right, y to the
// lower left, z is the vertical stacking unit. Screen space is pixels after
// camera zoom and pan. Every function here is pure.
package coords

import (
	"math"

	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
)

// Point is a 2D position in either space
type Point struct {
	X float64
	Y float64
}

// Cell is an integer grid coordinate
type Cell struct {
	X int
	Y int
}

// Projection holds the tile metrics for the isometric transform
type Projection struct {
	HalfTileWidth  float64
	HalfTileHeight float64
	StackPixelUnit float64
}

// NewProjection reads tile metrics from config
func NewProjection(cfg config.Config) Projection {
	return Projection{
		HalfTileWidth:  cfg.HalfTileWidth,
		HalfTileHeight: cfg.HalfTileHeight,
		StackPixelUnit: cfg.StackPixelUnit,
	}
}

// WorldToScreen projects a grid position to unzoomed, unpanned pixels
func (p Projection) WorldToScreen(x, y float64) Point {
	return Point{
		X: (x - y) * p.HalfTileWidth,
		Y: (x + y) * p.HalfTileHeight,
	}
}

// ScreenToWorld is the algebraic inverse of WorldToScreen
func (p Projection) ScreenToWorld(sx, sy float64) Point {
	diff := sx / p.HalfTileWidth // x - y
	sum := sy / p.HalfTileHeight // x + y
	return Point{
		X: (sum + diff) / 2,
		Y: (sum - diff) / 2,
	}
}

// ToScreen projects a world position through the camera
func (p Projection) ToScreen(cam Camera, x, y float64) Point {
	return cam.Apply(p.WorldToScreen(x, y))
}

// ToScreenWithHeight projects a world position lifted by z stacking units
func (p Projection) ToScreenWithHeight(cam Camera, x, y, z float64) Point {
	raw := p.WorldToScreen(x, y)
	raw.Y -= z * p.StackPixelUnit
	return cam.Apply(raw)
}

// FromScreen undoes pan and zoom, then inverts the projection
func (p Projection) FromScreen(cam Camera, sx, sy float64) Point {
	raw := cam.Invert(Point{X: sx, Y: sy})
	return p.ScreenToWorld(raw.X, raw.Y)
}

// CellAt returns the grid cell under a screen pixel
func (p Projection) CellAt(cam Camera, sx, sy float64) Cell {
	w := p.FromScreen(cam, sx, sy)
	return SnapToGrid(w.X, w.Y)
}

// SnapToGrid rounds a world position to its nearest cell
func SnapToGrid(x, y float64) Cell {
	return Cell{
		X: int(math.Round(x)),
		Y: int(math.Round(y)),
	}
}
