package edit

import (
	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
	"github.com/KirkDiggler/rpg-room-mirror/internal/intents"
)

// ClickAction is what a click resolved to
type ClickAction string

// Click actions
const (
	ClickNone       ClickAction = "none"
	ClickMove       ClickAction = "move"
	ClickUse        ClickAction = "use"
	ClickChangeRoom ClickAction = "change_room"
	ClickSelect     ClickAction = "select"
	ClickDeselect   ClickAction = "deselect"
	ClickPlace      ClickAction = "place"
)

// PointerMoveInput is a pointer position in screen pixels
type PointerMoveInput struct {
	ScreenX float64
	ScreenY float64
}

// PointerMoveOutput is the hovered cell and, while placing, its validity
type PointerMoveOutput struct {
	Cell           coords.Cell
	PlacementValid bool
}

// ClickInput is a primary click in screen pixels
type ClickInput struct {
	ScreenX float64
	ScreenY float64
}

// ClickOutput describes what the click did
type ClickOutput struct {
	Action      ClickAction
	Cell        coords.Cell
	FurnitureID string
	// Intent is set when the click sent one
	Intent *intents.Intent
}

// MoveCameraInput changes the view. Pan applies first, then zoom about
// Anchor, then centering when Center is set.
type MoveCameraInput struct {
	PanX float64
	PanY float64
	// ZoomFactor multiplies the zoom; 0 leaves it alone
	ZoomFactor float64
	Anchor     coords.Point
	// Center is a world position to bring to the middle of the viewport
	Center         *coords.Point
	ViewportWidth  float64
	ViewportHeight float64
}

// MoveCameraOutput is the resulting camera and the cell now under the
// pointer
type MoveCameraOutput struct {
	Camera         coords.Camera
	Cell           coords.Cell
	PlacementValid bool
}

// SelectInventoryItemInput picks an inventory item to place
type SelectInventoryItemInput struct {
	InventoryItemID string
}

// SelectInventoryItemOutput is the resolved item definition
type SelectInventoryItemOutput struct {
	Definition *entities.ItemDefinition
}

// DeselectInput drops any selection
type DeselectInput struct{}

// DeselectOutput reports the state that was left
type DeselectOutput struct {
	Previous entities.EditState
}

// SetEditModeInput toggles edit mode
type SetEditModeInput struct {
	Enabled bool
}

// SetEditModeOutput is the resulting session view
type SetEditModeOutput struct {
	Session entities.EditSession
}

// RotatePlacementInput turns the placement ghost
type RotatePlacementInput struct{}

// RotatePlacementOutput is the new rotation and validity
type RotatePlacementOutput struct {
	Rotation       int
	PlacementValid bool
}

// ConfirmPlacementInput places the selected item at the hovered cell
type ConfirmPlacementInput struct{}

// ConfirmPlacementOutput carries the sent intent
type ConfirmPlacementOutput struct {
	Intent intents.Intent
}

// FurnitureActionInput acts on the selected furniture
type FurnitureActionInput struct{}

// RecolorInput recolors the selected furniture; "" resets the color
type RecolorInput struct {
	Color string
}

// IntentOutput carries the sent intent
type IntentOutput struct {
	Intent intents.Intent
}

// ChatInput is a chat line typed by the player
type ChatInput struct {
	Text string
}

// HandleRejectionInput is a server refusal of an earlier intent
type HandleRejectionInput struct {
	IntentID string
	Err      error
}

// HandleRejectionOutput is the refusal in the error taxonomy
type HandleRejectionOutput struct {
	Rejection *errors.Error
}
