// Package edit implements the furniture edit state machine. It reads the
// mirror and the occupancy engine to decide what is legal, and turns
// pointer input into outbound intents. It never mutates mirror entities
// beyond the transient selection flag.
package edit

//go:generate mockgen -destination=mock/mock_service.go -package=editmock github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/edit Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
	"github.com/KirkDiggler/rpg-room-mirror/internal/intents"
	"github.com/KirkDiggler/rpg-room-mirror/internal/notifications"
	"github.com/KirkDiggler/rpg-room-mirror/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-room-mirror/internal/session"
)

// Service defines the interface for edit and interaction operations
type Service interface {
	// Pointer input
	PointerMove(ctx context.Context, input *PointerMoveInput) (*PointerMoveOutput, error)
	Click(ctx context.Context, input *ClickInput) (*ClickOutput, error)
	MoveCamera(ctx context.Context, input *MoveCameraInput) (*MoveCameraOutput, error)

	// Placement
	SelectInventoryItem(ctx context.Context, input *SelectInventoryItemInput) (*SelectInventoryItemOutput, error)
	RotatePlacement(ctx context.Context, input *RotatePlacementInput) (*RotatePlacementOutput, error)
	ConfirmPlacement(ctx context.Context, input *ConfirmPlacementInput) (*ConfirmPlacementOutput, error)
	Deselect(ctx context.Context, input *DeselectInput) (*DeselectOutput, error)
	SetEditMode(ctx context.Context, input *SetEditModeInput) (*SetEditModeOutput, error)

	// Selected furniture actions
	Pickup(ctx context.Context, input *FurnitureActionInput) (*IntentOutput, error)
	Rotate(ctx context.Context, input *FurnitureActionInput) (*IntentOutput, error)
	Recolor(ctx context.Context, input *RecolorInput) (*IntentOutput, error)
	Sit(ctx context.Context, input *FurnitureActionInput) (*IntentOutput, error)

	// Avatar actions
	Stand(ctx context.Context, input *FurnitureActionInput) (*IntentOutput, error)
	Chat(ctx context.Context, input *ChatInput) (*IntentOutput, error)

	// HandleRejection reports a refused intent; local state is untouched
	HandleRejection(ctx context.Context, input *HandleRejectionInput) (*HandleRejectionOutput, error)
}

// Config holds the dependencies for the edit orchestrator
type Config struct {
	Session     *session.Context
	Sink        intents.Sink
	Notifier    notifications.Notifier
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Session == nil {
		vb.RequiredField("Session")
	}
	if c.Sink == nil {
		vb.RequiredField("Sink")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	sess     *session.Context
	sink     intents.Sink
	notifier notifications.Notifier
	idGen    idgen.Generator
}

// NewOrchestrator creates a new edit orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sess:     cfg.Session,
		sink:     cfg.Sink,
		notifier: cfg.Notifier,
		idGen:    cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) PointerMove(_ context.Context, input *PointerMoveInput) (*PointerMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cell := o.setPointer(input.ScreenX, input.ScreenY)
	return &PointerMoveOutput{
		Cell:           cell,
		PlacementValid: o.refreshPlacement(),
	}, nil
}

func (o *orchestrator) MoveCamera(_ context.Context, input *MoveCameraInput) (*MoveCameraOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ZoomFactor < 0 {
		return nil, errors.InvalidArgumentf("zoom factor %v must not be negative", input.ZoomFactor)
	}
	if input.Center != nil && (input.ViewportWidth <= 0 || input.ViewportHeight <= 0) {
		return nil, errors.InvalidArgument("viewport size is required to center the camera")
	}

	cam := o.sess.Camera
	cam.Pan(input.PanX, input.PanY)
	if input.ZoomFactor > 0 {
		cam.ZoomAt(input.ZoomFactor, input.Anchor)
	}
	if input.Center != nil {
		target := o.sess.Projection.WorldToScreen(input.Center.X, input.Center.Y)
		cam.CenterOn(target, input.ViewportWidth, input.ViewportHeight)
	}

	// the pointer stays on its pixel, so the cell under it can change
	if o.sess.Pointer.Active {
		o.setPointer(o.sess.Pointer.Screen.X, o.sess.Pointer.Screen.Y)
	}

	return &MoveCameraOutput{
		Camera:         *cam,
		Cell:           o.sess.Pointer.Cell,
		PlacementValid: o.refreshPlacement(),
	}, nil
}

func (o *orchestrator) setPointer(sx, sy float64) coords.Cell {
	cell := o.sess.Projection.CellAt(*o.sess.Camera, sx, sy)
	o.sess.Pointer = session.Pointer{
		Screen: coords.Point{X: sx, Y: sy},
		Cell:   cell,
		Active: true,
	}
	return cell
}

// refreshPlacement recomputes placement validity for the hovered cell.
// Outside Placing it is always false.
func (o *orchestrator) refreshPlacement() bool {
	edit := o.sess.Edit
	if edit.State != entities.EditPlacing {
		edit.PlacementValid = false
		return false
	}

	def, ok := o.sess.InventoryDefinition(edit.SelectedInventoryItemID)
	if !ok || o.sess.Mirror == nil || !o.sess.Pointer.Active {
		edit.PlacementValid = false
		return false
	}

	cell := o.sess.Pointer.Cell
	edit.PlacementValid = o.sess.Engine.PlacementValid(o.sess.Mirror, def, cell.X, cell.Y, edit.PlacementRotation)
	return edit.PlacementValid
}

func (o *orchestrator) Click(ctx context.Context, input *ClickInput) (*ClickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cell := o.setPointer(input.ScreenX, input.ScreenY)
	output := &ClickOutput{Action: ClickNone, Cell: cell}
	if o.sess.Mirror == nil {
		return output, nil
	}

	switch o.sess.Edit.State {
	case entities.EditPlacing:
		if !o.refreshPlacement() {
			return output, nil
		}
		placed, err := o.ConfirmPlacement(ctx, &ConfirmPlacementInput{})
		if err != nil {
			return nil, err
		}
		output.Action = ClickPlace
		output.Intent = &placed.Intent
		return output, nil

	case entities.EditSelectedFurniture:
		target := o.topFurnitureAt(cell)
		if target == nil || target.GetID() == o.sess.Edit.SelectedFurnitureID {
			o.sess.ClearSelection()
			output.Action = ClickDeselect
			return output, nil
		}
		o.sess.ClearSelection()
	}

	return o.navigateClick(ctx, cell, output)
}

// navigateClick resolves a click in Navigate: doors change room, usable
// items are used, other furniture is selected, walkable floor is walked to
func (o *orchestrator) navigateClick(ctx context.Context, cell coords.Cell, output *ClickOutput) (*ClickOutput, error) {
	target := o.topFurnitureAt(cell)
	if target == nil {
		if !o.sess.Engine.Walkable(o.sess.Mirror, cell.X, cell.Y) {
			return output, nil
		}
		intent, err := o.send(ctx, intents.Move(cell.X, cell.Y))
		if err != nil {
			return nil, err
		}
		output.Action = ClickMove
		output.Intent = &intent
		return output, nil
	}

	output.FurnitureID = target.GetID()
	var intent intents.Intent
	switch {
	case target.Navigates():
		intent = intents.ChangeRoom(target.TargetRoomID, nil, nil)
		output.Action = ClickChangeRoom
	case target.Definition.CanUse:
		intent = intents.Use(target.GetID())
		output.Action = ClickUse
	default:
		o.sess.Select(target)
		output.Action = ClickSelect
		return output, nil
	}

	sent, err := o.send(ctx, intent)
	if err != nil {
		return nil, err
	}
	output.Intent = &sent
	return output, nil
}

// topFurnitureAt returns the highest interactable furniture on a cell
func (o *orchestrator) topFurnitureAt(cell coords.Cell) *entities.Furniture {
	for _, f := range o.sess.Engine.FurnitureAt(o.sess.Mirror, cell.X, cell.Y) {
		if f.Interactable() {
			return f
		}
	}
	return nil
}

func (o *orchestrator) SelectInventoryItem(_ context.Context, input *SelectInventoryItemInput) (*SelectInventoryItemOutput, error) {
	if input == nil || input.InventoryItemID == "" {
		return nil, errors.InvalidArgument("inventory item id is required")
	}

	defID, ok := o.sess.Inventory[input.InventoryItemID]
	if !ok {
		return nil, errors.NotFoundf("inventory item %s not found", input.InventoryItemID)
	}
	def, ok := o.sess.Catalog.Lookup(defID)
	if !ok {
		return nil, errors.UnknownDefinition(defID).WithMeta("inventory_item_id", input.InventoryItemID)
	}

	o.sess.BeginPlacing(input.InventoryItemID)
	o.sess.Edit.EditMode = true
	o.refreshPlacement()

	return &SelectInventoryItemOutput{Definition: def}, nil
}

func (o *orchestrator) RotatePlacement(_ context.Context, _ *RotatePlacementInput) (*RotatePlacementOutput, error) {
	edit := o.sess.Edit
	if edit.State != entities.EditPlacing {
		return nil, errors.IllegalTransition("rotate placement", string(edit.State))
	}

	edit.PlacementRotation = entities.NormalizeRotation(edit.PlacementRotation + 2)
	return &RotatePlacementOutput{
		Rotation:       edit.PlacementRotation,
		PlacementValid: o.refreshPlacement(),
	}, nil
}

func (o *orchestrator) ConfirmPlacement(ctx context.Context, _ *ConfirmPlacementInput) (*ConfirmPlacementOutput, error) {
	edit := o.sess.Edit
	if edit.State != entities.EditPlacing {
		return nil, errors.IllegalTransition("confirm placement", string(edit.State))
	}
	if !o.refreshPlacement() {
		return nil, errors.FailedPreconditionf("cannot place item at %d,%d", o.sess.Pointer.Cell.X, o.sess.Pointer.Cell.Y).
			WithMeta("inventory_item_id", edit.SelectedInventoryItemID)
	}

	cell := o.sess.Pointer.Cell
	itemID := edit.SelectedInventoryItemID
	intent, err := o.send(ctx, intents.Place(itemID, o.sess.Inventory[itemID], cell.X, cell.Y, edit.PlacementRotation))
	if err != nil {
		return nil, err
	}

	// the furniture only appears once the server echoes it back
	edit.ToNavigate()
	return &ConfirmPlacementOutput{Intent: intent}, nil
}

func (o *orchestrator) Deselect(_ context.Context, _ *DeselectInput) (*DeselectOutput, error) {
	previous := o.sess.Edit.State
	o.sess.ClearSelection()
	return &DeselectOutput{Previous: previous}, nil
}

func (o *orchestrator) SetEditMode(_ context.Context, input *SetEditModeInput) (*SetEditModeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if !input.Enabled && o.sess.Edit.State != entities.EditNavigate {
		o.sess.ClearSelection()
	}
	o.sess.Edit.EditMode = input.Enabled
	return &SetEditModeOutput{Session: o.sess.Edit.View()}, nil
}

// selected returns the selected furniture or an illegal transition error
func (o *orchestrator) selected(action string) (*entities.Furniture, error) {
	if o.sess.Edit.State != entities.EditSelectedFurniture {
		return nil, errors.IllegalTransition(action, string(o.sess.Edit.State))
	}
	f, ok := o.sess.SelectedFurniture()
	if !ok || !f.Interactable() {
		id := o.sess.Edit.SelectedFurnitureID
		o.sess.ClearSelection()
		return nil, errors.NotFoundf("selected furniture %s is gone", id)
	}
	return f, nil
}

func (o *orchestrator) Pickup(ctx context.Context, _ *FurnitureActionInput) (*IntentOutput, error) {
	f, err := o.selected("pickup")
	if err != nil {
		return nil, err
	}
	return o.sendOutput(ctx, intents.Pickup(f.GetID()))
}

func (o *orchestrator) Rotate(ctx context.Context, _ *FurnitureActionInput) (*IntentOutput, error) {
	f, err := o.selected("rotate")
	if err != nil {
		return nil, err
	}
	return o.sendOutput(ctx, intents.Rotate(f.GetID()))
}

func (o *orchestrator) Recolor(ctx context.Context, input *RecolorInput) (*IntentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	f, err := o.selected("recolor")
	if err != nil {
		return nil, err
	}
	if !f.Definition.CanRecolor {
		return nil, errors.FailedPreconditionf("furniture %s cannot be recolored", f.GetID())
	}
	if !o.sess.Catalog.RecolorAllowed(input.Color) {
		return nil, errors.InvalidArgumentf("color %s is not in the palette", input.Color)
	}
	return o.sendOutput(ctx, intents.Recolor(f.GetID(), strings.ToLower(input.Color)))
}

func (o *orchestrator) Sit(ctx context.Context, _ *FurnitureActionInput) (*IntentOutput, error) {
	f, err := o.selected("sit")
	if err != nil {
		return nil, err
	}
	if !f.Definition.CanSit {
		return nil, errors.FailedPreconditionf("furniture %s cannot be sat on", f.GetID())
	}
	return o.sendOutput(ctx, intents.Sit(f.GetID()))
}

func (o *orchestrator) Stand(ctx context.Context, _ *FurnitureActionInput) (*IntentOutput, error) {
	a, ok := o.sess.PlayerAvatar()
	if !ok {
		return nil, errors.FailedPrecondition("player avatar is not in the room")
	}
	if a.State != entities.AvatarSitting && a.SittingOnFurnitureID == "" {
		return nil, errors.IllegalTransition("stand", string(a.State))
	}
	return o.sendOutput(ctx, intents.Stand())
}

func (o *orchestrator) Chat(ctx context.Context, input *ChatInput) (*IntentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.InvalidArgument("chat text is required")
	}
	if runes := []rune(text); len(runes) > o.sess.Settings.MaxChatLength {
		text = string(runes[:o.sess.Settings.MaxChatLength])
	}
	return o.sendOutput(ctx, intents.Chat(text))
}

func (o *orchestrator) HandleRejection(ctx context.Context, input *HandleRejectionInput) (*HandleRejectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rejection := errors.ActionRejected(input.IntentID, input.Err)
	slog.Warn("server rejected intent",
		"intent_id", input.IntentID,
		"code", rejection.Code,
		"message", rejection.Message)

	if err := o.notifier.Notify(ctx, notifications.Notification{
		Type:     notifications.TypeActionRejected,
		RoomID:   o.sess.RoomID(),
		IntentID: input.IntentID,
		Err:      rejection,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to publish rejection")
	}

	return &HandleRejectionOutput{Rejection: rejection}, nil
}

func (o *orchestrator) sendOutput(ctx context.Context, intent intents.Intent) (*IntentOutput, error) {
	sent, err := o.send(ctx, intent)
	if err != nil {
		return nil, err
	}
	return &IntentOutput{Intent: sent}, nil
}

func (o *orchestrator) send(ctx context.Context, intent intents.Intent) (intents.Intent, error) {
	intent.ID = o.idGen.Generate()
	if err := o.sink.Send(ctx, intent); err != nil {
		return intent, errors.Wrapf(err, "failed to send %s intent", intent.Kind)
	}
	slog.Debug("sent intent", "intent_id", intent.ID, "kind", intent.Kind, "room_id", o.sess.RoomID())
	return intent, nil
}
