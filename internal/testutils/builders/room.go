// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
)

// RoomBuilder provides a fluent interface for building test room mirrors
type RoomBuilder struct {
	roomID    string
	cols      int
	rows      int
	layout    [][]entities.LayoutType
	catalog   *entities.Catalog
	furniture []furnitureSeed
	avatars   []avatarSeed
}

type furnitureSeed struct {
	id    string
	patch entities.FurniturePatch
}

type avatarSeed struct {
	id    string
	patch entities.AvatarPatch
}

// NewRoomBuilder creates an all-floor room of the given size
func NewRoomBuilder(roomID string, cols, rows int) *RoomBuilder {
	layout := make([][]entities.LayoutType, rows)
	for y := range layout {
		layout[y] = make([]entities.LayoutType, cols)
	}
	return &RoomBuilder{
		roomID: roomID,
		cols:   cols,
		rows:   rows,
		layout: layout,
	}
}

// WithCatalog sets the catalog used to resolve furniture definitions
func (b *RoomBuilder) WithCatalog(catalog *entities.Catalog) *RoomBuilder {
	b.catalog = catalog
	return b
}

// WithWall marks a cell as wall
func (b *RoomBuilder) WithWall(x, y int) *RoomBuilder {
	b.layout[y][x] = entities.LayoutWall
	return b
}

// WithHole marks a cell as hole
func (b *RoomBuilder) WithHole(x, y int) *RoomBuilder {
	b.layout[y][x] = entities.LayoutHole
	return b
}

// WithFurniture places a furniture of the given definition
func (b *RoomBuilder) WithFurniture(id, definitionID string, x, y, z float64) *RoomBuilder {
	return b.WithFurniturePatch(id, entities.FurniturePatch{
		X:            &x,
		Y:            &y,
		Z:            &z,
		DefinitionID: &definitionID,
	})
}

// WithFurniturePatch places a furniture built from an arbitrary patch
func (b *RoomBuilder) WithFurniturePatch(id string, patch entities.FurniturePatch) *RoomBuilder {
	b.furniture = append(b.furniture, furnitureSeed{id: id, patch: patch})
	return b
}

// WithAvatar places an avatar
func (b *RoomBuilder) WithAvatar(id string, x, y float64) *RoomBuilder {
	b.avatars = append(b.avatars, avatarSeed{id: id, patch: entities.AvatarPatch{X: &x, Y: &y}})
	return b
}

// Build creates the mirror with draw orders computed
func (b *RoomBuilder) Build() *entities.RoomMirror {
	weights := config.Default().DrawOrder
	m := entities.NewRoomMirror(b.roomID, b.cols, b.rows, b.layout, weights)
	for _, seed := range b.furniture {
		f := entities.NewFurniture(seed.id, seed.patch, b.catalog)
		f.UpdateDrawOrder(weights)
		m.Furniture[seed.id] = f
	}
	for _, seed := range b.avatars {
		a := entities.NewAvatar(seed.id, seed.patch)
		a.UpdateDrawOrder(weights)
		m.Avatars[seed.id] = a
	}
	return m
}
