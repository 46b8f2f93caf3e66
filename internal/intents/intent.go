// Package intents describes the requests the client sends to the server.
// Intents are fire and forget; the mirror only changes when the server
// answers with an event.
package intents

//go:generate mockgen -destination=mock/mock_sink.go -package=intentsmock github.com/KirkDiggler/rpg-room-mirror/internal/intents Sink

import (
	"context"
)

// Kind names an outbound intent
type Kind string

// Intent kinds
const (
	KindMove       Kind = "move"
	KindPlace      Kind = "place"
	KindPickup     Kind = "pickup"
	KindRotate     Kind = "rotate"
	KindSit        Kind = "sit"
	KindStand      Kind = "stand"
	KindUse        Kind = "use"
	KindRecolor    Kind = "recolor"
	KindChangeRoom Kind = "change_room"
	KindChat       Kind = "chat"
)

// Intent is one outbound request. Only the fields its Kind uses are set.
type Intent struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	FurnitureID     string `json:"furniture_id,omitempty"`
	DefinitionID    string `json:"definition_id,omitempty"`
	InventoryItemID string `json:"inventory_item_id,omitempty"`

	X        *int `json:"x,omitempty"`
	Y        *int `json:"y,omitempty"`
	Rotation *int `json:"rotation,omitempty"`

	// Color is set for recolor; "" resets to the default color
	Color *string `json:"color,omitempty"`

	TargetRoomID string `json:"target_room_id,omitempty"`
	Text         string `json:"text,omitempty"`
}

// Sink delivers intents to the transport
type Sink interface {
	Send(ctx context.Context, intent Intent) error
}

// Move asks to walk to a cell
func Move(x, y int) Intent {
	return Intent{Kind: KindMove, X: &x, Y: &y}
}

// Place asks to put an inventory item down
func Place(inventoryItemID, definitionID string, x, y, rotation int) Intent {
	return Intent{
		Kind:            KindPlace,
		InventoryItemID: inventoryItemID,
		DefinitionID:    definitionID,
		X:               &x,
		Y:               &y,
		Rotation:        &rotation,
	}
}

// Pickup asks to return a furniture to the inventory
func Pickup(furnitureID string) Intent {
	return Intent{Kind: KindPickup, FurnitureID: furnitureID}
}

// Rotate asks to turn a furniture one step
func Rotate(furnitureID string) Intent {
	return Intent{Kind: KindRotate, FurnitureID: furnitureID}
}

// Sit asks to sit on a furniture
func Sit(furnitureID string) Intent {
	return Intent{Kind: KindSit, FurnitureID: furnitureID}
}

// Stand asks to get up
func Stand() Intent {
	return Intent{Kind: KindStand}
}

// Use asks to toggle a usable furniture
func Use(furnitureID string) Intent {
	return Intent{Kind: KindUse, FurnitureID: furnitureID}
}

// Recolor asks to change a furniture color
func Recolor(furnitureID, color string) Intent {
	return Intent{Kind: KindRecolor, FurnitureID: furnitureID, Color: &color}
}

// ChangeRoom asks to move to another room, optionally at a given cell
func ChangeRoom(targetRoomID string, x, y *int) Intent {
	return Intent{Kind: KindChangeRoom, TargetRoomID: targetRoomID, X: x, Y: y}
}

// Chat sends a chat line
func Chat(text string) Intent {
	return Intent{Kind: KindChat, Text: text}
}
