package frame

import (
	"time"

	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
)

// TickInput is the elapsed host time since the previous tick
type TickInput struct {
	Delta time.Duration
}

// TickOutput is everything a renderer needs for one frame
type TickOutput struct {
	// Drawables are sorted back to front
	Drawables []entities.PositionedEntity
	Edit      entities.EditSession
	// Ghost is set while placing
	Ghost *Ghost
	// HoveredFurnitureID is the furniture under the pointer, if any
	HoveredFurnitureID string
	// Moving counts entities whose visual position changed this tick
	Moving int
	// Delta is the clamped elapsed time actually applied
	Delta time.Duration
}

// Ghost is the placement preview
type Ghost struct {
	InventoryItemID string
	DefinitionID    string
	Cell            coords.Cell
	Z               float64
	Footprint       entities.Footprint
	Cells           []coords.Cell
	Rotation        int
	Valid           bool
	// Screen is the projected anchor including stack height
	Screen coords.Point
}
