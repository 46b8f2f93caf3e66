// Package session holds the state one client session owns: the room
// mirror, the edit session, the camera, and what the player carries.
// Reconcile, edit, and frame orchestrators share one Context; nothing in
// it is global.
package session

import (
	"sort"

	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
	"github.com/KirkDiggler/rpg-room-mirror/internal/engine"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
)

// Config contains the dependencies for a session context
type Config struct {
	Settings config.Config
	Catalog  *entities.Catalog
	Engine   engine.Engine
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	return c.Settings.Validate()
}

// Pointer is the last known pointer position
type Pointer struct {
	Screen coords.Point
	Cell   coords.Cell
	// Active is false until the first pointer move
	Active bool
}

// Context is the session-scoped state. Mirror is nil until the first
// accepted snapshot. Camera, PlayerID, and Inventory survive room changes.
type Context struct {
	Settings   config.Config
	Catalog    *entities.Catalog
	Engine     engine.Engine
	Projection coords.Projection

	Mirror    *entities.RoomMirror
	Edit      *entities.EditSession
	Camera    *coords.Camera
	PlayerID  string
	Pointer   Pointer
	Inventory map[string]string
}

// New creates a session context
func New(cfg *Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid session config")
	}

	return &Context{
		Settings:   cfg.Settings,
		Catalog:    cfg.Catalog,
		Engine:     cfg.Engine,
		Projection: coords.NewProjection(cfg.Settings),
		Edit:       entities.NewEditSession(),
		Camera:     coords.NewCamera(cfg.Settings.MinZoom, cfg.Settings.MaxZoom),
		Inventory:  make(map[string]string),
	}, nil
}

// RoomID returns the current room or "" before the first snapshot
func (c *Context) RoomID() string {
	if c.Mirror == nil {
		return ""
	}
	return c.Mirror.RoomID
}

// PlayerAvatar returns the local player's avatar in the current room
func (c *Context) PlayerAvatar() (*entities.Avatar, bool) {
	if c.Mirror == nil || c.PlayerID == "" {
		return nil, false
	}
	a, ok := c.Mirror.Avatars[c.PlayerID]
	return a, ok
}

// SelectedFurniture returns the furniture the edit session points at
func (c *Context) SelectedFurniture() (*entities.Furniture, bool) {
	if c.Mirror == nil || c.Edit.SelectedFurnitureID == "" {
		return nil, false
	}
	f, ok := c.Mirror.Furniture[c.Edit.SelectedFurnitureID]
	return f, ok
}

// InventoryDefinition resolves an inventory item to its catalog entry
func (c *Context) InventoryDefinition(itemID string) (*entities.ItemDefinition, bool) {
	defID, ok := c.Inventory[itemID]
	if !ok {
		return nil, false
	}
	return c.Catalog.Lookup(defID)
}

// InventoryIDs returns the inventory item ids in sorted order
func (c *Context) InventoryIDs() []string {
	ids := make([]string, 0, len(c.Inventory))
	for id := range c.Inventory {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ClearSelection drops the furniture selection flag and returns the edit
// session to navigate
func (c *Context) ClearSelection() {
	if f, ok := c.SelectedFurniture(); ok {
		f.IsSelected = false
	}
	c.Edit.ToNavigate()
}

// Select marks a furniture as selected, replacing any previous selection
func (c *Context) Select(f *entities.Furniture) {
	if prev, ok := c.SelectedFurniture(); ok {
		prev.IsSelected = false
	}
	c.Edit.EnterSelected(f.GetID())
	f.IsSelected = true
}

// BeginPlacing selects an inventory item, dropping any furniture selection
func (c *Context) BeginPlacing(itemID string) {
	if prev, ok := c.SelectedFurniture(); ok {
		prev.IsSelected = false
	}
	c.Edit.EnterPlacing(itemID)
}
