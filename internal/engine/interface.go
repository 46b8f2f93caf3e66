// Package engine provides the occupancy and stacking rules evaluated
// against a room mirror. Every method is a pure read of the mirror so it can
// run on each pointer move.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-room-mirror/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
)

// Engine answers spatial questions about a room
type Engine interface {
	// OccupiedTiles returns the cells covered by a footprint anchored at pos
	OccupiedTiles(pos entities.Vec3, fp entities.Footprint) []coords.Cell

	// Walkable reports whether an avatar may stand on the cell
	Walkable(room *entities.RoomMirror, x, y int) bool

	// StackHeightAt returns the highest stackable top surface on the cell
	StackHeightAt(room *entities.RoomMirror, x, y int) float64

	// PlacementValid reports whether def may be placed at the cell
	PlacementValid(room *entities.RoomMirror, def *entities.ItemDefinition, x, y, rotation int) bool

	// ValidatePlacement is PlacementValid with the reasons and resulting Z
	ValidatePlacement(room *entities.RoomMirror, input *ValidatePlacementInput) *ValidatePlacementOutput

	// FurnitureAt returns the interactable furniture covering a cell, topmost first
	FurnitureAt(room *entities.RoomMirror, x, y int) []*entities.Furniture
}
