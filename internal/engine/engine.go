package engine

import (
	"math"
	"sort"

	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
)

// Config contains the rule limits for the occupancy engine
type Config struct {
	// MaxStackHeight rejects placements whose Z meets or exceeds it
	MaxStackHeight float64
}

// Validate checks the limits
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("MaxStackHeight", c.MaxStackHeight, vb)
	return vb.Build()
}

type occupancy struct {
	maxStackHeight float64
}

// New creates the occupancy engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &occupancy{maxStackHeight: cfg.MaxStackHeight}, nil
}

// Verify that occupancy implements Engine
var _ Engine = (*occupancy)(nil)

// OccupiedTiles anchors the footprint on the rounded position, extending
// floor((dim-1)/2) cells to the negative side.
func (o *occupancy) OccupiedTiles(pos entities.Vec3, fp entities.Footprint) []coords.Cell {
	anchor := coords.SnapToGrid(pos.X, pos.Y)
	w, h := max(1, fp.Width), max(1, fp.Height)
	startX := anchor.X - (w-1)/2
	startY := anchor.Y - (h-1)/2

	cells := make([]coords.Cell, 0, w*h)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cells = append(cells, coords.Cell{X: startX + dx, Y: startY + dy})
		}
	}
	return cells
}

func (o *occupancy) Walkable(room *entities.RoomMirror, x, y int) bool {
	if room == nil {
		return false
	}
	layout, ok := room.LayoutAt(x, y)
	if !ok || layout.Blocking() {
		return false
	}
	for _, f := range o.occupants(room, x, y) {
		if f.Definition.Solid() {
			return false
		}
	}
	return true
}

func (o *occupancy) StackHeightAt(room *entities.RoomMirror, x, y int) float64 {
	if room == nil {
		return 0
	}
	height := 0.0
	for _, f := range o.occupants(room, x, y) {
		if f.Definition.Stackable {
			height = math.Max(height, f.Definition.TopSurface(f.Logical().Z))
		}
	}
	return height
}

func (o *occupancy) PlacementValid(room *entities.RoomMirror, def *entities.ItemDefinition, x, y, rotation int) bool {
	return o.ValidatePlacement(room, &ValidatePlacementInput{
		Definition: def,
		X:          x,
		Y:          y,
		Rotation:   rotation,
	}).Valid
}

// ValidatePlacement checks terrain, collisions, and stack height. The
// resting Z is the stack surface of the anchor cell plus the item's own
// offset; neighbouring stacks under a wider footprint do not lift it.
func (o *occupancy) ValidatePlacement(room *entities.RoomMirror, input *ValidatePlacementInput) *ValidatePlacementOutput {
	out := &ValidatePlacementOutput{}
	if room == nil || input == nil || input.Definition == nil {
		return out
	}

	def := input.Definition
	anchor := entities.Vec3{X: float64(input.X), Y: float64(input.Y)}
	out.Cells = o.OccupiedTiles(anchor, def.Footprint(input.Rotation))

	for _, cell := range out.Cells {
		layout, ok := room.LayoutAt(cell.X, cell.Y)
		if !ok {
			out.Issues = append(out.Issues, PlacementIssue{Type: IssueOutOfBounds, Cell: cell})
			continue
		}
		if layout.Blocking() {
			out.Issues = append(out.Issues, PlacementIssue{Type: IssueBlockedTerrain, Cell: cell})
			continue
		}
		for _, f := range o.occupants(room, cell.X, cell.Y) {
			if f.Definition.Solid() && !f.Definition.Stackable {
				out.Issues = append(out.Issues, PlacementIssue{Type: IssueCollision, Cell: cell, FurnitureID: f.GetID()})
			}
		}
	}

	out.Z = o.StackHeightAt(room, input.X, input.Y) + def.ZOffset
	if out.Z >= o.maxStackHeight {
		out.Issues = append(out.Issues, PlacementIssue{Type: IssueTooHigh, Cell: coords.Cell{X: input.X, Y: input.Y}})
	}

	out.Valid = len(out.Issues) == 0
	return out
}

func (o *occupancy) FurnitureAt(room *entities.RoomMirror, x, y int) []*entities.Furniture {
	if room == nil {
		return nil
	}
	found := o.occupants(room, x, y)
	sort.SliceStable(found, func(i, j int) bool {
		zi, zj := found[i].Logical().Z, found[j].Logical().Z
		if zi != zj {
			return zi > zj
		}
		return found[i].DrawOrder() > found[j].DrawOrder()
	})
	return found
}

// occupants returns furniture with a known definition covering the cell,
// in id order. Unknown definitions take no part in occupancy.
func (o *occupancy) occupants(room *entities.RoomMirror, x, y int) []*entities.Furniture {
	var found []*entities.Furniture
	for _, f := range room.FurnitureByID() {
		if f.Definition == nil {
			continue
		}
		for _, cell := range o.OccupiedTiles(f.Logical(), f.Footprint()) {
			if cell.X == x && cell.Y == y {
				found = append(found, f)
				break
			}
		}
	}
	return found
}
