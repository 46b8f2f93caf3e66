// Package reconcile applies server snapshots and incremental events to the
// room mirror. It is the only writer of mirror entities.
package reconcile

//go:generate mockgen -destination=mock/mock_service.go -package=reconcilemock github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/reconcile Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
	"github.com/KirkDiggler/rpg-room-mirror/internal/notifications"
	"github.com/KirkDiggler/rpg-room-mirror/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-room-mirror/internal/session"
)

// Service defines the interface for mirror reconciliation
type Service interface {
	// ApplySnapshot replaces the mirror with a full room state
	ApplySnapshot(ctx context.Context, input *ApplySnapshotInput) (*ApplySnapshotOutput, error)

	// ApplyFurnitureEvent applies an added, updated, or removed furniture
	ApplyFurnitureEvent(ctx context.Context, input *ApplyFurnitureEventInput) (*ApplyFurnitureEventOutput, error)

	// ApplyAvatarEvent applies an added, updated, or removed avatar
	ApplyAvatarEvent(ctx context.Context, input *ApplyAvatarEventInput) (*ApplyAvatarEventOutput, error)

	// SetPlayerID records the session's own avatar id
	SetPlayerID(ctx context.Context, input *SetPlayerIDInput) (*SetPlayerIDOutput, error)

	// SetInventory replaces the session inventory
	SetInventory(ctx context.Context, input *SetInventoryInput) (*SetInventoryOutput, error)
}

// Config holds the dependencies for the reconcile orchestrator
type Config struct {
	Session  *session.Context
	Notifier notifications.Notifier
	Clock    clock.Clock
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
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	sess     *session.Context
	notifier notifications.Notifier
	clock    clock.Clock
}

// NewOrchestrator creates a new reconcile orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sess:     cfg.Session,
		notifier: cfg.Notifier,
		clock:    cfg.Clock,
	}, nil
}

func validateSnapshot(input *ApplySnapshotInput, maxExtent int) error {
	if input == nil {
		return errors.MalformedSnapshot("snapshot is required")
	}
	if input.RoomID == "" {
		return errors.MalformedSnapshot("snapshot has no room id")
	}
	if input.Layout == nil {
		return errors.MalformedSnapshot("snapshot has no layout").WithMeta("room_id", input.RoomID)
	}
	if input.Cols <= 0 || input.Rows <= 0 {
		return errors.MalformedSnapshot("snapshot has an empty grid").
			WithMeta("room_id", input.RoomID).
			WithMeta("cols", input.Cols).
			WithMeta("rows", input.Rows)
	}
	if input.Cols > maxExtent || input.Rows > maxExtent {
		return errors.MalformedSnapshot("snapshot grid exceeds the coordinate bounds").
			WithMeta("room_id", input.RoomID).
			WithMeta("max_extent", maxExtent)
	}
	if len(input.Layout) > input.Rows {
		return errors.MalformedSnapshot("layout has more rows than the grid").WithMeta("room_id", input.RoomID)
	}
	for y, row := range input.Layout {
		if len(row) > input.Cols {
			return errors.MalformedSnapshot("layout row is wider than the grid").
				WithMeta("room_id", input.RoomID).
				WithMeta("row", y)
		}
	}
	return nil
}

func (o *orchestrator) ApplySnapshot(ctx context.Context, input *ApplySnapshotInput) (*ApplySnapshotOutput, error) {
	if err := validateSnapshot(input, o.sess.Settings.MaxGridExtent); err != nil {
		slog.Warn("rejected room snapshot, keeping previous mirror",
			"room_id", o.sess.RoomID(),
			"error", err)
		return nil, err
	}

	settings := o.sess.Settings
	previousRoom := o.sess.RoomID()
	mirror := entities.NewRoomMirror(input.RoomID, input.Cols, input.Rows, input.Layout, settings.DrawOrder)
	output := &ApplySnapshotOutput{
		Mirror:      mirror,
		RoomChanged: previousRoom != input.RoomID,
	}

	for _, dto := range input.Furniture {
		if dto.ID == "" {
			slog.Warn("skipping furniture without id", "room_id", input.RoomID)
			output.Skipped++
			continue
		}
		f, exists := mirror.Furniture[dto.ID]
		if exists {
			f.Merge(dto.Patch, o.sess.Catalog)
		} else {
			f = entities.NewFurniture(dto.ID, dto.Patch, o.sess.Catalog)
			mirror.Furniture[dto.ID] = f
		}
		f.SnapVisual()
		f.UpdateDrawOrder(settings.DrawOrder)
		if f.Definition == nil {
			o.logUnknownDefinition(input.RoomID, f)
			output.UnknownDefinitions = append(output.UnknownDefinitions, f.GetID())
		}
	}

	now := o.clock.Now()
	for _, dto := range input.Avatars {
		if dto.ID == "" {
			slog.Warn("skipping avatar without id", "room_id", input.RoomID)
			output.Skipped++
			continue
		}
		a, exists := mirror.Avatars[dto.ID]
		if exists {
			a.Merge(dto.Patch)
		} else {
			a = entities.NewAvatar(dto.ID, dto.Patch)
			mirror.Avatars[dto.ID] = a
		}
		a.IsPlayer = o.sess.PlayerID != "" && a.GetID() == o.sess.PlayerID
		if a.ServerEmoteID != "" {
			a.StartEmote(a.ServerEmoteID, now.Add(settings.EmoteDuration))
		}
		a.SnapVisual()
		a.UpdateDrawOrder(settings.DrawOrder)
	}

	// transient edit state belongs to the old room; camera, inventory, and
	// player identity belong to the session
	o.sess.Edit.ToNavigate()
	o.sess.Mirror = mirror

	if output.RoomChanged {
		slog.Info("entered room",
			"room_id", input.RoomID,
			"previous_room_id", previousRoom,
			"furniture", len(mirror.Furniture),
			"avatars", len(mirror.Avatars))
		o.notify(ctx, notifications.Notification{
			Type:   notifications.TypeRoomEntered,
			RoomID: input.RoomID,
			From:   previousRoom,
			To:     input.RoomID,
		})
	}

	return output, nil
}

// inScope reports whether an incremental event belongs to the current
// mirror. Events before any snapshot have nowhere to go.
func (o *orchestrator) inScope(eventRoomID, entityType, entityID string) bool {
	if o.sess.Mirror == nil {
		slog.Debug("dropping event before first snapshot",
			"entity_type", entityType,
			"entity_id", entityID,
			"event_room_id", eventRoomID)
		return false
	}
	if eventRoomID != "" && eventRoomID != o.sess.Mirror.RoomID {
		slog.Debug("dropping stale event",
			"entity_type", entityType,
			"entity_id", entityID,
			"error", errors.StaleEvent(eventRoomID, o.sess.Mirror.RoomID))
		return false
	}
	return true
}

func (o *orchestrator) ApplyFurnitureEvent(ctx context.Context, input *ApplyFurnitureEventInput) (*ApplyFurnitureEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	id := input.Furniture.ID
	if id == "" {
		slog.Warn("skipping furniture event without id", "kind", input.Kind)
		return nil, errors.InvalidArgument("furniture id is required")
	}
	if !isKnownKind(input.Kind) {
		return nil, errors.InvalidArgumentf("unknown event kind %q", input.Kind)
	}
	if !o.inScope(input.RoomID, string(entities.KindFurniture), id) {
		return &ApplyFurnitureEventOutput{Stale: true}, nil
	}

	mirror := o.sess.Mirror
	existing, exists := mirror.Furniture[id]

	switch {
	case input.Kind == EventRemoved:
		if !exists {
			return &ApplyFurnitureEventOutput{}, nil
		}
		o.removeFurniture(existing)
		return &ApplyFurnitureEventOutput{Removed: true}, nil

	case !exists && input.Kind == EventAdded:
		f := entities.NewFurniture(id, input.Furniture.Patch, o.sess.Catalog)
		f.UpdateDrawOrder(o.sess.Settings.DrawOrder)
		mirror.Furniture[id] = f
		if f.Definition == nil {
			o.logUnknownDefinition(mirror.RoomID, f)
		}
		return &ApplyFurnitureEventOutput{Created: true, Furniture: f}, nil

	case !exists:
		// an update for an entity we never saw carries too little to build it
		slog.Debug("ignoring update for unknown furniture", "room_id", mirror.RoomID, "furniture_id", id)
		return &ApplyFurnitureEventOutput{}, nil
	}

	previousState := existing.State
	changes := existing.Merge(input.Furniture.Patch, o.sess.Catalog)

	if changes.Has(entities.FurnitureChangedDefinition) && existing.Definition == nil {
		o.logUnknownDefinition(mirror.RoomID, existing)
		if existing.IsSelected {
			o.sess.ClearSelection()
		}
	}
	if changes.Has(entities.FurnitureChangedState) {
		o.notify(ctx, notifications.Notification{
			Type:     notifications.TypeFurnitureStateChanged,
			RoomID:   mirror.RoomID,
			EntityID: id,
			From:     previousState,
			To:       existing.State,
		})
	}

	return &ApplyFurnitureEventOutput{Changes: changes, Furniture: existing}, nil
}

func (o *orchestrator) removeFurniture(f *entities.Furniture) {
	id := f.GetID()
	if o.sess.Edit.SelectedFurnitureID == id {
		o.sess.ClearSelection()
	}
	for _, a := range o.sess.Mirror.Avatars {
		if a.SittingOnFurnitureID == id {
			a.SittingOnFurnitureID = ""
		}
	}
	delete(o.sess.Mirror.Furniture, id)
}

func (o *orchestrator) ApplyAvatarEvent(ctx context.Context, input *ApplyAvatarEventInput) (*ApplyAvatarEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	id := input.Avatar.ID
	if id == "" {
		slog.Warn("skipping avatar event without id", "kind", input.Kind)
		return nil, errors.InvalidArgument("avatar id is required")
	}
	if !isKnownKind(input.Kind) {
		return nil, errors.InvalidArgumentf("unknown event kind %q", input.Kind)
	}
	if !o.inScope(input.RoomID, string(entities.KindAvatar), id) {
		return &ApplyAvatarEventOutput{Stale: true}, nil
	}

	mirror := o.sess.Mirror
	existing, exists := mirror.Avatars[id]

	switch {
	case input.Kind == EventRemoved:
		if !exists {
			return &ApplyAvatarEventOutput{}, nil
		}
		delete(mirror.Avatars, id)
		return &ApplyAvatarEventOutput{Removed: true}, nil

	case !exists && input.Kind == EventAdded:
		a := entities.NewAvatar(id, input.Avatar.Patch)
		a.IsPlayer = o.sess.PlayerID != "" && id == o.sess.PlayerID
		if a.ServerEmoteID != "" {
			a.StartEmote(a.ServerEmoteID, o.clock.Now().Add(o.sess.Settings.EmoteDuration))
		}
		a.UpdateDrawOrder(o.sess.Settings.DrawOrder)
		mirror.Avatars[id] = a
		return &ApplyAvatarEventOutput{Created: true, Avatar: a}, nil

	case !exists:
		slog.Debug("ignoring update for unknown avatar", "room_id", mirror.RoomID, "avatar_id", id)
		return &ApplyAvatarEventOutput{}, nil
	}

	previousState := existing.State
	changes := existing.Merge(input.Avatar.Patch)

	if changes.Has(entities.AvatarChangedEmote) {
		if existing.ServerEmoteID != "" {
			existing.StartEmote(existing.ServerEmoteID, o.clock.Now().Add(o.sess.Settings.EmoteDuration))
			o.notify(ctx, notifications.Notification{
				Type:     notifications.TypeEmoteStarted,
				RoomID:   mirror.RoomID,
				EntityID: id,
				To:       existing.CurrentEmoteID,
			})
		} else {
			existing.ClearEmote()
		}
	}
	if existing.State != previousState {
		changes |= entities.AvatarChangedState
		o.notify(ctx, notifications.Notification{
			Type:     notifications.TypeAvatarStateChanged,
			RoomID:   mirror.RoomID,
			EntityID: id,
			From:     string(previousState),
			To:       string(existing.State),
		})
	}

	return &ApplyAvatarEventOutput{Changes: changes, Avatar: existing}, nil
}

func (o *orchestrator) SetPlayerID(_ context.Context, input *SetPlayerIDInput) (*SetPlayerIDOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.sess.PlayerID = input.PlayerID
	output := &SetPlayerIDOutput{}
	if o.sess.Mirror == nil {
		return output, nil
	}

	for id, a := range o.sess.Mirror.Avatars {
		a.IsPlayer = input.PlayerID != "" && id == input.PlayerID
		if a.IsPlayer {
			output.InRoom = true
		}
	}
	return output, nil
}

func (o *orchestrator) SetInventory(_ context.Context, input *SetInventoryInput) (*SetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	items := make(map[string]string, len(input.Items))
	for itemID, defID := range input.Items {
		if itemID == "" {
			continue
		}
		items[itemID] = defID
	}
	o.sess.Inventory = items

	output := &SetInventoryOutput{}
	edit := o.sess.Edit
	if edit.State == entities.EditPlacing {
		if _, ok := items[edit.SelectedInventoryItemID]; !ok {
			edit.ToNavigate()
			output.PlacementCancelled = true
		}
	}
	return output, nil
}

func (o *orchestrator) logUnknownDefinition(roomID string, f *entities.Furniture) {
	slog.Warn("furniture references unknown definition",
		"room_id", roomID,
		"furniture_id", f.GetID(),
		"error", errors.UnknownDefinition(f.DefinitionID))
}

// notify publishes best effort; a failing listener never blocks reconciliation
func (o *orchestrator) notify(ctx context.Context, n notifications.Notification) {
	if err := o.notifier.Notify(ctx, n); err != nil {
		slog.Warn("failed to publish notification", "type", n.Type, "error", err)
	}
}

func isKnownKind(kind EventKind) bool {
	switch kind {
	case EventAdded, EventUpdated, EventRemoved:
		return true
	default:
		return false
	}
}
