package wire

import (
	"google.golang.org/grpc/codes"

	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/reconcile"
)

// MessageType is the "type" discriminator of a server message
type MessageType string

// Server message types
const (
	MessageSnapshot  MessageType = "room_snapshot"
	MessageEvent     MessageType = "entity_event"
	MessagePlayer    MessageType = "player"
	MessageInventory MessageType = "inventory"
	MessageRejected  MessageType = "intent_rejected"
)

// EntityType scopes an entity_event
type EntityType string

// Entity types carried by entity_event
const (
	EntityFurniture EntityType = "furniture"
	EntityAvatar    EntityType = "avatar"
)

type envelope struct {
	Type MessageType `json:"type"`
}

// FurnitureJSON is a furniture DTO. Absent fields stay nil.
type FurnitureJSON struct {
	ID            string   `json:"id"`
	X             *float64 `json:"x,omitempty"`
	Y             *float64 `json:"y,omitempty"`
	Z             *float64 `json:"z,omitempty"`
	DefinitionID  *string  `json:"definition_id,omitempty"`
	Rotation      *int     `json:"rotation,omitempty"`
	State         *string  `json:"state,omitempty"`
	ColorOverride *string  `json:"color_override,omitempty"`
	IsDoor        *bool    `json:"is_door,omitempty"`
	TargetRoomID  *string  `json:"target_room_id,omitempty"`
}

// AvatarJSON is an avatar DTO. Absent fields stay nil.
type AvatarJSON struct {
	ID                   string   `json:"id"`
	X                    *float64 `json:"x,omitempty"`
	Y                    *float64 `json:"y,omitempty"`
	Z                    *float64 `json:"z,omitempty"`
	Name                 *string  `json:"name,omitempty"`
	State                *string  `json:"state,omitempty"`
	Direction            *int     `json:"direction,omitempty"`
	SittingOnFurnitureID *string  `json:"sitting_on_furniture_id,omitempty"`
	BodyColor            *string  `json:"body_color,omitempty"`
	IsAdmin              *bool    `json:"is_admin,omitempty"`
	IsNPC                *bool    `json:"is_npc,omitempty"`
	EmoteID              *string  `json:"emote_id,omitempty"`
}

// SnapshotJSON is a full room state
type SnapshotJSON struct {
	RoomID    string                  `json:"room_id"`
	Cols      int                     `json:"cols"`
	Rows      int                     `json:"rows"`
	Layout    [][]entities.LayoutType `json:"layout"`
	Furniture []FurnitureJSON         `json:"furniture"`
	Avatars   []AvatarJSON            `json:"avatars"`
}

// EventJSON is the header of an entity_event. The entity fields sit beside
// it in the same object.
type EventJSON struct {
	Kind       reconcile.EventKind `json:"kind"`
	EntityType EntityType          `json:"entity_type"`
	RoomID     string              `json:"room_id,omitempty"`
}

// PlayerJSON names the session's own avatar
type PlayerJSON struct {
	PlayerID string `json:"player_id"`
}

// InventoryJSON maps inventory item ids to definition ids
type InventoryJSON struct {
	Items map[string]string `json:"items"`
}

// RejectedJSON is a server refusal. Code accepts gRPC code names such as
// "FAILED_PRECONDITION" or their numeric values.
type RejectedJSON struct {
	IntentID string     `json:"intent_id"`
	Code     codes.Code `json:"code"`
	Message  string     `json:"message"`
}

// Patch converts the DTO into the entity patch
func (f FurnitureJSON) Patch() entities.FurniturePatch {
	return entities.FurniturePatch{
		X:             f.X,
		Y:             f.Y,
		Z:             f.Z,
		DefinitionID:  f.DefinitionID,
		Rotation:      f.Rotation,
		State:         f.State,
		ColorOverride: f.ColorOverride,
		IsDoor:        f.IsDoor,
		TargetRoomID:  f.TargetRoomID,
	}
}

// Patch converts the DTO into the entity patch. Unknown states read as idle.
func (a AvatarJSON) Patch() entities.AvatarPatch {
	patch := entities.AvatarPatch{
		X:                    a.X,
		Y:                    a.Y,
		Z:                    a.Z,
		Name:                 a.Name,
		Direction:            a.Direction,
		SittingOnFurnitureID: a.SittingOnFurnitureID,
		BodyColor:            a.BodyColor,
		IsAdmin:              a.IsAdmin,
		IsNPC:                a.IsNPC,
		EmoteID:              a.EmoteID,
	}
	if a.State != nil {
		state := entities.ParseAvatarState(*a.State)
		patch.State = &state
	}
	return patch
}

// Input converts the snapshot into the reconcile input
func (s *SnapshotJSON) Input() *reconcile.ApplySnapshotInput {
	input := &reconcile.ApplySnapshotInput{
		RoomID:    s.RoomID,
		Cols:      s.Cols,
		Rows:      s.Rows,
		Layout:    s.Layout,
		Furniture: make([]reconcile.FurnitureDTO, 0, len(s.Furniture)),
		Avatars:   make([]reconcile.AvatarDTO, 0, len(s.Avatars)),
	}
	for _, f := range s.Furniture {
		input.Furniture = append(input.Furniture, reconcile.FurnitureDTO{ID: f.ID, Patch: f.Patch()})
	}
	for _, a := range s.Avatars {
		input.Avatars = append(input.Avatars, reconcile.AvatarDTO{ID: a.ID, Patch: a.Patch()})
	}
	return input
}
