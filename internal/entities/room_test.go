package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
)

func TestNewRoomMirrorDefaultsToFloor(t *testing.T) {
	layout := [][]entities.LayoutType{
		{entities.LayoutWall, entities.LayoutType(99)},
		{entities.LayoutHole},
	}

	m := entities.NewRoomMirror("lobby", 3, 3, layout, config.Default().DrawOrder)

	require.Len(t, m.Tiles, 9)
	assert.Equal(t, entities.LayoutWall, m.Layout[0][0])
	assert.Equal(t, entities.LayoutFloor, m.Layout[0][1], "unknown value becomes floor")
	assert.Equal(t, entities.LayoutFloor, m.Layout[0][2], "missing column becomes floor")
	assert.Equal(t, entities.LayoutHole, m.Layout[1][0])
	assert.Equal(t, entities.LayoutFloor, m.Layout[2][2], "missing row becomes floor")

	tile := m.TileAt(2, 1)
	require.NotNil(t, tile)
	assert.Equal(t, 2, tile.X)
	assert.Equal(t, 1, tile.Y)
	assert.Nil(t, m.TileAt(3, 0))
}

func TestLayoutAt(t *testing.T) {
	m := entities.NewRoomMirror("lobby", 2, 2, nil, config.Default().DrawOrder)

	lt, ok := m.LayoutAt(1, 1)
	assert.True(t, ok)
	assert.Equal(t, entities.LayoutFloor, lt)

	_, ok = m.LayoutAt(-1, 0)
	assert.False(t, ok)
}

func TestEditSessionExclusivity(t *testing.T) {
	e := entities.NewEditSession()
	assert.Equal(t, entities.EditNavigate, e.State)

	e.EnterSelected("f1")
	e.EnterPlacing("inv1")
	assert.Equal(t, "", e.SelectedFurnitureID)
	assert.Equal(t, "inv1", e.SelectedInventoryItemID)

	e.EnterSelected("f2")
	assert.Equal(t, "", e.SelectedInventoryItemID)
	assert.Equal(t, "f2", e.SelectedFurnitureID)

	e.EditMode = true
	e.ToNavigate()
	assert.Equal(t, entities.EditNavigate, e.State)
	assert.Equal(t, "", e.SelectedFurnitureID)
	assert.True(t, e.EditMode)
}
