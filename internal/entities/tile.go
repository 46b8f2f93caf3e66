package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
)

// Tile is one grid cell of the room. Its position never changes.
type Tile struct {
	Body
	X      int
	Y      int
	Layout LayoutType

	// HighlightColor is recomputed every frame; "" means none
	HighlightColor string
}

// NewTile creates a tile with its fixed draw order
func NewTile(x, y int, layout LayoutType, w config.DrawOrderWeights) *Tile {
	t := &Tile{
		Body:   newBody(fmt.Sprintf("tile_%d_%d", x, y), KindTile, Vec3{X: float64(x), Y: float64(y)}),
		X:      x,
		Y:      y,
		Layout: layout,
	}
	t.UpdateDrawOrder(w)
	return t
}
