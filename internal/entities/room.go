package entities

import (
	"sort"

	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
)

// RoomMirror is the local replica of one room. It owns its tiles,
// furniture, and avatars; none of them outlive it.
type RoomMirror struct {
	RoomID string
	Cols   int
	Rows   int

	// Layout is indexed [y][x] and is always Rows x Cols
	Layout [][]LayoutType

	// Tiles is row-major, one per layout cell
	Tiles []*Tile

	Furniture map[string]*Furniture
	Avatars   map[string]*Avatar
}

// NewRoomMirror builds a mirror for cols x rows cells. Cells missing from
// layout or holding unknown values become floor.
func NewRoomMirror(roomID string, cols, rows int, layout [][]LayoutType, w config.DrawOrderWeights) *RoomMirror {
	m := &RoomMirror{
		RoomID:    roomID,
		Cols:      cols,
		Rows:      rows,
		Layout:    make([][]LayoutType, rows),
		Tiles:     make([]*Tile, 0, cols*rows),
		Furniture: make(map[string]*Furniture),
		Avatars:   make(map[string]*Avatar),
	}

	for y := 0; y < rows; y++ {
		m.Layout[y] = make([]LayoutType, cols)
		for x := 0; x < cols; x++ {
			cell := LayoutFloor
			if y < len(layout) && x < len(layout[y]) && layout[y][x].Known() {
				cell = layout[y][x]
			}
			m.Layout[y][x] = cell
			m.Tiles = append(m.Tiles, NewTile(x, y, cell, w))
		}
	}

	return m
}

// InBounds reports whether the cell lies inside the layout
func (m *RoomMirror) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Cols && y < m.Rows
}

// LayoutAt returns the layout type of a cell; ok is false out of bounds
func (m *RoomMirror) LayoutAt(x, y int) (LayoutType, bool) {
	if !m.InBounds(x, y) {
		return LayoutFloor, false
	}
	return m.Layout[y][x], true
}

// TileAt returns the tile for a cell or nil out of bounds
func (m *RoomMirror) TileAt(x, y int) *Tile {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.Tiles[y*m.Cols+x]
}

// ClearHighlights removes every tile highlight
func (m *RoomMirror) ClearHighlights() {
	for _, t := range m.Tiles {
		t.HighlightColor = ""
	}
}

// FurnitureByID returns furniture sorted by id so iteration is stable
func (m *RoomMirror) FurnitureByID() []*Furniture {
	out := make([]*Furniture, 0, len(m.Furniture))
	for _, f := range m.Furniture {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GetID() < out[j].GetID() })
	return out
}

// AvatarsByID returns avatars sorted by id so iteration is stable
func (m *RoomMirror) AvatarsByID() []*Avatar {
	out := make([]*Avatar, 0, len(m.Avatars))
	for _, a := range m.Avatars {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GetID() < out[j].GetID() })
	return out
}
