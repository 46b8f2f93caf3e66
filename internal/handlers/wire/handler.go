// Package wire decodes JSON messages from the transport and hands them to
// the reconcile and edit orchestrators. It owns no state.
package wire

import (
	"context"
	"encoding/json"
	"log/slog"

	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
	"github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/edit"
	"github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/reconcile"
)

// HandlerConfig holds dependencies for the wire handler
type HandlerConfig struct {
	Reconcile reconcile.Service
	Edit      edit.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Reconcile == nil {
		vb.RequiredField("Reconcile")
	}
	if c.Edit == nil {
		vb.RequiredField("Edit")
	}
	return vb.Build()
}

// Handler applies server messages
type Handler struct {
	reconcile reconcile.Service
	edit      edit.Service
}

// NewHandler creates a new wire handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		reconcile: cfg.Reconcile,
		edit:      cfg.Edit,
	}, nil
}

// Result summarizes what a message did
type Result struct {
	Type MessageType
	// Stale is set when an entity_event was dropped for room scope
	Stale bool
	// RoomChanged is set when a snapshot moved the mirror to a new room
	RoomChanged bool
}

// Handle decodes one message and applies it
func (h *Handler) Handle(ctx context.Context, data []byte) (*Result, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "failed to decode message")
	}

	result := &Result{Type: env.Type}
	var err error
	switch env.Type {
	case MessageSnapshot:
		err = h.handleSnapshot(ctx, data, result)
	case MessageEvent:
		err = h.handleEvent(ctx, data, result)
	case MessagePlayer:
		err = h.handlePlayer(ctx, data)
	case MessageInventory:
		err = h.handleInventory(ctx, data)
	case MessageRejected:
		err = h.handleRejected(ctx, data)
	default:
		return nil, errors.InvalidArgumentf("unknown message type %q", env.Type)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (h *Handler) handleSnapshot(ctx context.Context, data []byte, result *Result) error {
	var msg SnapshotJSON
	if err := json.Unmarshal(data, &msg); err != nil {
		return errors.MalformedSnapshot(err.Error())
	}

	out, err := h.reconcile.ApplySnapshot(ctx, msg.Input())
	if err != nil {
		return err
	}
	if out.Skipped > 0 {
		slog.Warn("snapshot entities skipped", "room_id", msg.RoomID, "skipped", out.Skipped)
	}
	result.RoomChanged = out.RoomChanged
	return nil
}

func (h *Handler) handleEvent(ctx context.Context, data []byte, result *Result) error {
	var header EventJSON
	if err := json.Unmarshal(data, &header); err != nil {
		return errors.Wrap(err, "failed to decode event")
	}

	switch header.EntityType {
	case EntityFurniture:
		var f FurnitureJSON
		if err := json.Unmarshal(data, &f); err != nil {
			return errors.Wrap(err, "failed to decode furniture")
		}
		out, err := h.reconcile.ApplyFurnitureEvent(ctx, &reconcile.ApplyFurnitureEventInput{
			Kind:      header.Kind,
			RoomID:    header.RoomID,
			Furniture: reconcile.FurnitureDTO{ID: f.ID, Patch: f.Patch()},
		})
		if err != nil {
			return err
		}
		result.Stale = out.Stale

	case EntityAvatar:
		var a AvatarJSON
		if err := json.Unmarshal(data, &a); err != nil {
			return errors.Wrap(err, "failed to decode avatar")
		}
		out, err := h.reconcile.ApplyAvatarEvent(ctx, &reconcile.ApplyAvatarEventInput{
			Kind:   header.Kind,
			RoomID: header.RoomID,
			Avatar: reconcile.AvatarDTO{ID: a.ID, Patch: a.Patch()},
		})
		if err != nil {
			return err
		}
		result.Stale = out.Stale

	default:
		return errors.InvalidArgumentf("unknown entity type %q", header.EntityType)
	}

	return nil
}

func (h *Handler) handlePlayer(ctx context.Context, data []byte) error {
	var msg PlayerJSON
	if err := json.Unmarshal(data, &msg); err != nil {
		return errors.Wrap(err, "failed to decode player")
	}

	_, err := h.reconcile.SetPlayerID(ctx, &reconcile.SetPlayerIDInput{PlayerID: msg.PlayerID})
	return err
}

func (h *Handler) handleInventory(ctx context.Context, data []byte) error {
	var msg InventoryJSON
	if err := json.Unmarshal(data, &msg); err != nil {
		return errors.Wrap(err, "failed to decode inventory")
	}

	_, err := h.reconcile.SetInventory(ctx, &reconcile.SetInventoryInput{Items: msg.Items})
	return err
}

func (h *Handler) handleRejected(ctx context.Context, data []byte) error {
	var msg RejectedJSON
	if err := json.Unmarshal(data, &msg); err != nil {
		return errors.Wrap(err, "failed to decode rejection")
	}

	_, err := h.edit.HandleRejection(ctx, &edit.HandleRejectionInput{
		IntentID: msg.IntentID,
		Err:      status.Error(msg.Code, msg.Message),
	})
	return err
}
