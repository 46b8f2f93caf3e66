package engine

import (
	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
)

// IssueType classifies why a placement was refused
type IssueType string

// Placement issue types
const (
	IssueOutOfBounds    IssueType = "out_of_bounds"
	IssueBlockedTerrain IssueType = "blocked_terrain"
	IssueCollision      IssueType = "collision"
	IssueTooHigh        IssueType = "too_high"
)

// ValidatePlacementInput describes a candidate placement
type ValidatePlacementInput struct {
	Definition *entities.ItemDefinition
	X          int
	Y          int
	Rotation   int
}

// ValidatePlacementOutput contains the placement verdict
type ValidatePlacementOutput struct {
	Valid  bool
	Cells  []coords.Cell
	Z      float64
	Issues []PlacementIssue
}

// PlacementIssue is one reason a placement was refused
type PlacementIssue struct {
	Type        IssueType
	Cell        coords.Cell
	FurnitureID string
}
