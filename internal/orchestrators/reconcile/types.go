package reconcile

import (
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
)

// EventKind is the kind of an incremental event
type EventKind string

// Incremental event kinds
const (
	EventAdded   EventKind = "added"
	EventUpdated EventKind = "updated"
	EventRemoved EventKind = "removed"
)

// FurnitureDTO is a furniture as sent by the server. Patch fields are nil
// when absent from the message.
type FurnitureDTO struct {
	ID    string
	Patch entities.FurniturePatch
}

// AvatarDTO is an avatar as sent by the server
type AvatarDTO struct {
	ID    string
	Patch entities.AvatarPatch
}

// ApplySnapshotInput is a full authoritative room state
type ApplySnapshotInput struct {
	RoomID    string
	Cols      int
	Rows      int
	Layout    [][]entities.LayoutType
	Furniture []FurnitureDTO
	Avatars   []AvatarDTO
}

// ApplySnapshotOutput describes the rebuilt mirror
type ApplySnapshotOutput struct {
	Mirror *entities.RoomMirror
	// RoomChanged is true when the snapshot is for a different room
	RoomChanged bool
	// Skipped counts DTOs dropped for missing ids
	Skipped int
	// UnknownDefinitions lists furniture ids whose definition is not in the catalog
	UnknownDefinitions []string
}

// ApplyFurnitureEventInput is an incremental furniture event. RoomID is
// optional; when set it must match the mirror's room.
type ApplyFurnitureEventInput struct {
	Kind      EventKind
	RoomID    string
	Furniture FurnitureDTO
}

// ApplyFurnitureEventOutput reports what the event did
type ApplyFurnitureEventOutput struct {
	// Stale is true when the event was dropped for room scope
	Stale   bool
	Created bool
	Removed bool
	Changes entities.FurnitureChanges
	// Furniture is the entity after the event, nil when removed or dropped
	Furniture *entities.Furniture
}

// ApplyAvatarEventInput is an incremental avatar event
type ApplyAvatarEventInput struct {
	Kind   EventKind
	RoomID string
	Avatar AvatarDTO
}

// ApplyAvatarEventOutput reports what the event did
type ApplyAvatarEventOutput struct {
	Stale   bool
	Created bool
	Removed bool
	Changes entities.AvatarChanges
	Avatar  *entities.Avatar
}

// SetPlayerIDInput names the session's own avatar
type SetPlayerIDInput struct {
	PlayerID string
}

// SetPlayerIDOutput reports whether the avatar is in the current room
type SetPlayerIDOutput struct {
	InRoom bool
}

// SetInventoryInput replaces the inventory, item id to definition id
type SetInventoryInput struct {
	Items map[string]string
}

// SetInventoryOutput reports whether an active placement was cancelled
type SetInventoryOutput struct {
	PlacementCancelled bool
}
