// Package notifications carries one-shot signals out of the mirror to
// collaborators such as audio and toast UI. Notifications ride on the
// rpg-toolkit event bus.
package notifications

//go:generate mockgen -destination=mock/mock_notifier.go -package=notificationsmock github.com/KirkDiggler/rpg-room-mirror/internal/notifications Notifier

import (
	"context"
)

// Type is the event bus topic of a notification
type Type string

// Notification types
const (
	TypeFurnitureStateChanged Type = "mirror.furniture.state_changed"
	TypeAvatarStateChanged    Type = "mirror.avatar.state_changed"
	TypeEmoteStarted          Type = "mirror.avatar.emote_started"
	TypeRoomEntered           Type = "mirror.room.entered"
	TypeActionRejected        Type = "mirror.intent.rejected"
)

// Notification is the payload delivered to subscribers
type Notification struct {
	Type     Type
	RoomID   string
	EntityID string

	// From and To hold the old and new value of a state change
	From string
	To   string

	// IntentID and Err are set for rejections
	IntentID string
	Err      error
}

// Notifier publishes notifications
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
