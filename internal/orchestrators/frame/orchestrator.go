// Package frame drives the per-frame update: visual interpolation, emote
// expiry, highlight and ghost recomputation, and the back to front draw
// list.
package frame

//go:generate mockgen -destination=mock/mock_service.go -package=framemock github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/frame Service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
	"github.com/KirkDiggler/rpg-room-mirror/internal/engine"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
	"github.com/KirkDiggler/rpg-room-mirror/internal/notifications"
	"github.com/KirkDiggler/rpg-room-mirror/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-room-mirror/internal/session"
)

// Service defines the interface for the frame driver
type Service interface {
	// Tick advances one frame. It never blocks.
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)
}

// Config holds the dependencies for the frame orchestrator
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

// NewOrchestrator creates a new frame orchestrator
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

func (o *orchestrator) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	settings := o.sess.Settings
	dt := min(max(input.Delta, 0), settings.MaxFrameDelta)
	output := &TickOutput{Delta: dt}

	mirror := o.sess.Mirror
	if mirror == nil {
		output.Edit = o.sess.Edit.View()
		return output, nil
	}

	factor := entities.SmoothingFactor(settings.SmoothingBase, dt, settings.TargetFrame)
	for _, f := range mirror.Furniture {
		if f.Interpolate(factor, settings.SnapEpsilon) {
			f.UpdateDrawOrder(settings.DrawOrder)
			output.Moving++
		}
	}

	now := o.clock.Now()
	for _, a := range mirror.AvatarsByID() {
		if a.Interpolate(factor, settings.SnapEpsilon) {
			a.UpdateDrawOrder(settings.DrawOrder)
			output.Moving++
		}
		o.expireEmote(ctx, mirror.RoomID, a, now)
	}

	output.Ghost, output.HoveredFurnitureID = o.paintHighlights(mirror)
	output.Drawables = drawList(mirror)
	output.Edit = o.sess.Edit.View()

	return output, nil
}

func (o *orchestrator) expireEmote(ctx context.Context, roomID string, a *entities.Avatar, now time.Time) {
	previous := a.State
	if !a.ExpireEmote(now) || a.State == previous {
		return
	}
	if err := o.notifier.Notify(ctx, notifications.Notification{
		Type:     notifications.TypeAvatarStateChanged,
		RoomID:   roomID,
		EntityID: a.GetID(),
		From:     string(previous),
		To:       string(a.State),
	}); err != nil {
		slog.Warn("failed to publish notification", "type", notifications.TypeAvatarStateChanged, "error", err)
	}
}

// paintHighlights recomputes every tile highlight from the edit session,
// the pointer cell, and the mirror. Nothing carries over between ticks.
func (o *orchestrator) paintHighlights(mirror *entities.RoomMirror) (*Ghost, string) {
	mirror.ClearHighlights()

	pointer := o.sess.Pointer
	edit := o.sess.Edit
	colors := o.sess.Settings.Highlight

	if edit.State == entities.EditPlacing {
		def, ok := o.sess.InventoryDefinition(edit.SelectedInventoryItemID)
		if !ok || !pointer.Active {
			edit.PlacementValid = false
			return nil, ""
		}

		check := o.sess.Engine.ValidatePlacement(mirror, &engine.ValidatePlacementInput{
			Definition: def,
			X:          pointer.Cell.X,
			Y:          pointer.Cell.Y,
			Rotation:   edit.PlacementRotation,
		})
		edit.PlacementValid = check.Valid

		color := colors.Invalid
		if check.Valid {
			color = colors.Valid
		}
		paint(mirror, check.Cells, color)

		return &Ghost{
			InventoryItemID: edit.SelectedInventoryItemID,
			DefinitionID:    def.ID,
			Cell:            pointer.Cell,
			Z:               check.Z,
			Footprint:       def.Footprint(edit.PlacementRotation),
			Cells:           check.Cells,
			Rotation:        edit.PlacementRotation,
			Valid:           check.Valid,
			Screen: o.sess.Projection.ToScreenWithHeight(*o.sess.Camera,
				float64(pointer.Cell.X), float64(pointer.Cell.Y), check.Z),
		}, ""
	}

	if !pointer.Active {
		return nil, ""
	}

	for _, f := range o.sess.Engine.FurnitureAt(mirror, pointer.Cell.X, pointer.Cell.Y) {
		if f.Interactable() {
			paint(mirror, o.sess.Engine.OccupiedTiles(f.Logical(), f.Footprint()), colors.Hover)
			return nil, f.GetID()
		}
	}
	if o.sess.Engine.Walkable(mirror, pointer.Cell.X, pointer.Cell.Y) {
		paint(mirror, []coords.Cell{pointer.Cell}, colors.Hover)
	}
	return nil, ""
}

func paint(mirror *entities.RoomMirror, cells []coords.Cell, color string) {
	for _, c := range cells {
		if t := mirror.TileAt(c.X, c.Y); t != nil {
			t.HighlightColor = color
		}
	}
}

// drawList returns tiles, drawable furniture, and avatars sorted by draw
// order. Ties break on kind then id so equal keys render the same way
// every frame.
func drawList(mirror *entities.RoomMirror) []entities.PositionedEntity {
	out := make([]entities.PositionedEntity, 0, len(mirror.Tiles)+len(mirror.Furniture)+len(mirror.Avatars))
	for _, t := range mirror.Tiles {
		out = append(out, t)
	}
	for _, f := range mirror.Furniture {
		if f.Drawable() {
			out = append(out, f)
		}
	}
	for _, a := range mirror.Avatars {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DrawOrder() != b.DrawOrder() {
			return a.DrawOrder() < b.DrawOrder()
		}
		if a.Kind() != b.Kind() {
			return kindRank(a.Kind()) < kindRank(b.Kind())
		}
		return a.GetID() < b.GetID()
	})
	return out
}

func kindRank(k entities.Kind) int {
	switch k {
	case entities.KindTile:
		return 0
	case entities.KindFurniture:
		return 1
	default:
		return 2
	}
}
