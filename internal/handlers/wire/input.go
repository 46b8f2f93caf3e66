package wire

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
	"github.com/KirkDiggler/rpg-room-mirror/internal/intents"
	"github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/edit"
	"github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/frame"
)

// InputType is the "type" discriminator of a local input record
type InputType string

// Local input types
const (
	InputPointerMove      InputType = "pointer_move"
	InputClick            InputType = "click"
	InputCamera           InputType = "camera"
	InputSelectItem       InputType = "select_item"
	InputRotatePlacement  InputType = "rotate_placement"
	InputConfirmPlacement InputType = "confirm_placement"
	InputDeselect         InputType = "deselect"
	InputEditMode         InputType = "edit_mode"
	InputPickup           InputType = "pickup"
	InputRotate           InputType = "rotate"
	InputRecolor          InputType = "recolor"
	InputSit              InputType = "sit"
	InputStand            InputType = "stand"
	InputChat             InputType = "chat"
	InputTick             InputType = "tick"
)

// InputJSON is one local input record. Only the fields its type uses are
// read.
type InputJSON struct {
	Type            InputType `json:"type"`
	X               float64   `json:"x"`
	Y               float64   `json:"y"`
	InventoryItemID string    `json:"inventory_item_id"`
	Enabled         bool      `json:"enabled"`
	Color           string    `json:"color"`
	Text            string    `json:"text"`
	DeltaMS         float64   `json:"delta_ms"`

	// Camera records: x/y is the zoom anchor, center_x/center_y a world
	// position to center on
	DX             float64  `json:"dx"`
	DY             float64  `json:"dy"`
	Zoom           float64  `json:"zoom"`
	CenterX        *float64 `json:"center_x"`
	CenterY        *float64 `json:"center_y"`
	ViewportWidth  float64  `json:"viewport_width"`
	ViewportHeight float64  `json:"viewport_height"`
}

// InputHandlerConfig holds dependencies for the input handler
type InputHandlerConfig struct {
	Edit  edit.Service
	Frame frame.Service
}

// Validate ensures all required dependencies are present
func (c *InputHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Edit == nil {
		vb.RequiredField("Edit")
	}
	if c.Frame == nil {
		vb.RequiredField("Frame")
	}
	return vb.Build()
}

// InputHandler applies local pointer, keyboard, and tick records
type InputHandler struct {
	edit  edit.Service
	frame frame.Service
}

// NewInputHandler creates a new input handler
func NewInputHandler(cfg *InputHandlerConfig) (*InputHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &InputHandler{
		edit:  cfg.Edit,
		frame: cfg.Frame,
	}, nil
}

// InputResult is what an input produced
type InputResult struct {
	Type InputType
	// Intent is set when the input sent one
	Intent *intents.Intent
	// Click is set for click inputs
	Click *edit.ClickOutput
	// Frame is set for tick inputs
	Frame *frame.TickOutput
}

// IsInput reports whether data is a local input record rather than a
// server message
func IsInput(data []byte) bool {
	var env struct {
		Type InputType `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return false
	}
	switch env.Type {
	case InputPointerMove, InputClick, InputCamera, InputSelectItem, InputRotatePlacement,
		InputConfirmPlacement, InputDeselect, InputEditMode, InputPickup,
		InputRotate, InputRecolor, InputSit, InputStand, InputChat, InputTick:
		return true
	}
	return false
}

// Handle decodes one input record and applies it
func (h *InputHandler) Handle(ctx context.Context, data []byte) (*InputResult, error) {
	var in InputJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, errors.Wrap(err, "failed to decode input")
	}

	result := &InputResult{Type: in.Type}
	switch in.Type {
	case InputPointerMove:
		if _, err := h.edit.PointerMove(ctx, &edit.PointerMoveInput{ScreenX: in.X, ScreenY: in.Y}); err != nil {
			return nil, err
		}

	case InputClick:
		out, err := h.edit.Click(ctx, &edit.ClickInput{ScreenX: in.X, ScreenY: in.Y})
		if err != nil {
			return nil, err
		}
		result.Click = out
		result.Intent = out.Intent

	case InputCamera:
		if _, err := h.edit.MoveCamera(ctx, cameraInput(&in)); err != nil {
			return nil, err
		}

	case InputSelectItem:
		if _, err := h.edit.SelectInventoryItem(ctx, &edit.SelectInventoryItemInput{InventoryItemID: in.InventoryItemID}); err != nil {
			return nil, err
		}

	case InputRotatePlacement:
		if _, err := h.edit.RotatePlacement(ctx, &edit.RotatePlacementInput{}); err != nil {
			return nil, err
		}

	case InputConfirmPlacement:
		out, err := h.edit.ConfirmPlacement(ctx, &edit.ConfirmPlacementInput{})
		if err != nil {
			return nil, err
		}
		result.Intent = &out.Intent

	case InputDeselect:
		if _, err := h.edit.Deselect(ctx, &edit.DeselectInput{}); err != nil {
			return nil, err
		}

	case InputEditMode:
		if _, err := h.edit.SetEditMode(ctx, &edit.SetEditModeInput{Enabled: in.Enabled}); err != nil {
			return nil, err
		}

	case InputPickup, InputRotate, InputSit, InputStand, InputRecolor, InputChat:
		out, err := h.furnitureAction(ctx, &in)
		if err != nil {
			return nil, err
		}
		result.Intent = &out.Intent

	case InputTick:
		delta := time.Duration(in.DeltaMS * float64(time.Millisecond))
		out, err := h.frame.Tick(ctx, &frame.TickInput{Delta: delta})
		if err != nil {
			return nil, err
		}
		result.Frame = out

	default:
		return nil, errors.InvalidArgumentf("unknown input type %q", in.Type)
	}

	return result, nil
}

func cameraInput(in *InputJSON) *edit.MoveCameraInput {
	out := &edit.MoveCameraInput{
		PanX:           in.DX,
		PanY:           in.DY,
		ZoomFactor:     in.Zoom,
		Anchor:         coords.Point{X: in.X, Y: in.Y},
		ViewportWidth:  in.ViewportWidth,
		ViewportHeight: in.ViewportHeight,
	}
	if in.CenterX != nil && in.CenterY != nil {
		out.Center = &coords.Point{X: *in.CenterX, Y: *in.CenterY}
	}
	return out
}

func (h *InputHandler) furnitureAction(ctx context.Context, in *InputJSON) (*edit.IntentOutput, error) {
	switch in.Type {
	case InputPickup:
		return h.edit.Pickup(ctx, &edit.FurnitureActionInput{})
	case InputRotate:
		return h.edit.Rotate(ctx, &edit.FurnitureActionInput{})
	case InputSit:
		return h.edit.Sit(ctx, &edit.FurnitureActionInput{})
	case InputStand:
		return h.edit.Stand(ctx, &edit.FurnitureActionInput{})
	case InputRecolor:
		return h.edit.Recolor(ctx, &edit.RecolorInput{Color: in.Color})
	default:
		return h.edit.Chat(ctx, &edit.ChatInput{Text: in.Text})
	}
}
