package entities_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
)

func ptr[T any](v T) *T { return &v }

func distance(a, b entities.Vec3) float64 {
	return math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y) + (a.Z-b.Z)*(a.Z-b.Z))
}

func TestInterpolateConverges(t *testing.T) {
	cfg := config.Default()
	starts := []entities.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: -3, Z: 2},
		{X: 0.5, Y: 0, Z: 0},
	}

	for _, start := range starts {
		a := entities.NewAvatar("a1", entities.AvatarPatch{X: &start.X, Y: &start.Y, Z: &start.Z})
		a.Merge(entities.AvatarPatch{X: ptr(4.0), Y: ptr(7.0), Z: ptr(1.0)})

		factor := entities.SmoothingFactor(cfg.SmoothingBase, cfg.TargetFrame, cfg.TargetFrame)
		prev := distance(a.Logical(), a.Visual())
		require.Greater(t, prev, 0.0)

		for i := 0; i < 1000 && a.Visual() != a.Logical(); i++ {
			a.Interpolate(factor, cfg.SnapEpsilon)
			d := distance(a.Logical(), a.Visual())
			assert.Less(t, d, prev, "distance must strictly decrease")
			prev = d
		}
		assert.Equal(t, a.Logical(), a.Visual(), "visual must land exactly on logical")
	}
}

func TestInterpolateSnapsPerAxis(t *testing.T) {
	a := entities.NewAvatar("a1", entities.AvatarPatch{X: ptr(0.0), Y: ptr(0.0)})
	a.Merge(entities.AvatarPatch{X: ptr(5.0), Y: ptr(0.005)})

	moved := a.Interpolate(0.5, 0.01)
	assert.True(t, moved)
	assert.Equal(t, 2.5, a.Visual().X)
	assert.Equal(t, 0.005, a.Visual().Y)
}

func TestSmoothingFactor(t *testing.T) {
	frame := time.Second / 60

	assert.InDelta(t, 0.25, entities.SmoothingFactor(0.25, frame, frame), 1e-12)
	assert.InDelta(t, 1-0.75*0.75, entities.SmoothingFactor(0.25, 2*frame, frame), 1e-12)
	assert.Equal(t, 0.0, entities.SmoothingFactor(0.25, 0, frame))
	assert.Equal(t, 0.0, entities.SmoothingFactor(0.25, -frame, frame))
}

func TestDrawOrderYDominates(t *testing.T) {
	cfg := config.Default()
	w := cfg.DrawOrder
	rng := rand.New(rand.NewSource(7))
	extent := float64(cfg.MaxGridExtent)

	for i := 0; i < 2000; i++ {
		by := rng.Intn(cfg.MaxGridExtent - 1)
		ay := by + 1 + rng.Intn(cfg.MaxGridExtent-1-by)
		a := entities.Vec3{X: 0, Y: float64(ay), Z: 0}
		b := entities.Vec3{
			X: rng.Float64() * (extent - 1),
			Y: float64(by),
			Z: rng.Float64() * (cfg.MaxStackHeight - 0.001),
		}

		assert.Greater(t,
			entities.ComputeDrawOrder(a, w, w.FurnitureBase),
			entities.ComputeDrawOrder(b, w, w.AvatarBase),
			"a=%v b=%v", a, b)
	}
}

func TestDrawOrderYDominatesFractionalGaps(t *testing.T) {
	cfg := config.Default()
	w := cfg.DrawOrder
	gap := cfg.YDominanceGap()
	rng := rand.New(rand.NewSource(11))
	extent := float64(cfg.MaxGridExtent)

	for i := 0; i < 2000; i++ {
		by := rng.Float64() * (extent - 2)
		a := entities.Vec3{X: 0, Y: by + gap + 1e-9, Z: 0}
		b := entities.Vec3{
			X: rng.Float64() * (extent - 1),
			Y: by,
			Z: rng.Float64() * (cfg.MaxStackHeight - 0.001),
		}

		assert.Greater(t,
			entities.ComputeDrawOrder(a, w, w.FurnitureBase),
			entities.ComputeDrawOrder(b, w, w.AvatarBase),
			"a=%v b=%v", a, b)
	}

	// below the gap the X term can outweigh Y mid-interpolation
	near := entities.Vec3{X: 0, Y: 1.1}
	far := entities.Vec3{X: 500, Y: 1.0}
	assert.Less(t,
		entities.ComputeDrawOrder(near, w, w.AvatarBase),
		entities.ComputeDrawOrder(far, w, w.AvatarBase))
}

func TestDrawOrderXDominatesZ(t *testing.T) {
	w := config.Default().DrawOrder
	a := entities.Vec3{X: 3, Y: 2, Z: 0}
	b := entities.Vec3{X: 2, Y: 2, Z: 39}

	assert.Greater(t, entities.ComputeDrawOrder(a, w, 0), entities.ComputeDrawOrder(b, w, 0))
}

func TestTilesSortBeforeEntities(t *testing.T) {
	cfg := config.Default()
	last := cfg.MaxGridExtent - 1
	tile := entities.NewTile(last, last, entities.LayoutFloor, cfg.DrawOrder)

	f := entities.NewFurniture("f1", entities.FurniturePatch{X: ptr(0.0), Y: ptr(0.0)}, nil)
	f.UpdateDrawOrder(cfg.DrawOrder)

	assert.Less(t, tile.DrawOrder(), f.DrawOrder())
	assert.Equal(t, "tile", tile.GetType())
	assert.Equal(t, "tile_511_511", tile.GetID())
}

func TestFurnitureMergeOnlyPresentFields(t *testing.T) {
	catalog := entities.NewCatalog([]entities.ItemDefinition{
		{ID: "lamp", Width: 1, Height: 1, CanUse: true},
	}, nil)

	f := entities.NewFurniture("f1", entities.FurniturePatch{
		X:            ptr(2.0),
		Y:            ptr(3.0),
		DefinitionID: ptr("lamp"),
		State:        ptr("off"),
		Rotation:     ptr(2),
	}, catalog)
	require.True(t, f.Drawable())

	changes := f.Merge(entities.FurniturePatch{State: ptr("on")}, catalog)
	assert.Equal(t, entities.FurnitureChangedState, changes)
	assert.Equal(t, "on", f.State)
	assert.Equal(t, 2, f.Rotation)
	assert.Equal(t, entities.Vec3{X: 2, Y: 3}, f.Logical())

	changes = f.Merge(entities.FurniturePatch{State: ptr("on"), Rotation: ptr(10)}, catalog)
	assert.False(t, changes.Has(entities.FurnitureChangedState), "same value is not a change")
	assert.False(t, changes.Has(entities.FurnitureChangedRotation), "10 normalizes to 2")

	changes = f.Merge(entities.FurniturePatch{X: ptr(5.0)}, catalog)
	assert.True(t, changes.Has(entities.FurnitureChangedPosition))
	assert.Equal(t, 5.0, f.Logical().X)
	assert.Equal(t, 2.0, f.Visual().X, "merge never moves the visual position")
}

func TestFurnitureUnknownDefinition(t *testing.T) {
	catalog := entities.NewCatalog([]entities.ItemDefinition{{ID: "rug", Width: 2, Height: 3}}, nil)

	f := entities.NewFurniture("f1", entities.FurniturePatch{DefinitionID: ptr("ghost")}, catalog)
	assert.False(t, f.Drawable())
	assert.False(t, f.Interactable())
	assert.Equal(t, entities.Footprint{Width: 1, Height: 1}, f.Footprint())

	changes := f.Merge(entities.FurniturePatch{DefinitionID: ptr("rug")}, catalog)
	assert.True(t, changes.Has(entities.FurnitureChangedDefinition))
	assert.True(t, f.Drawable())
	assert.Equal(t, entities.Footprint{Width: 2, Height: 3}, f.Footprint())
}

func TestFootprintRotation(t *testing.T) {
	def := &entities.ItemDefinition{ID: "sofa", Width: 3, Height: 1}

	assert.Equal(t, entities.Footprint{Width: 3, Height: 1}, def.Footprint(0))
	assert.Equal(t, entities.Footprint{Width: 1, Height: 3}, def.Footprint(2))
	assert.Equal(t, entities.Footprint{Width: 3, Height: 1}, def.Footprint(4))
	assert.Equal(t, entities.Footprint{Width: 1, Height: 3}, def.Footprint(-2))

	zero := &entities.ItemDefinition{ID: "speck"}
	assert.Equal(t, entities.Footprint{Width: 1, Height: 1}, zero.Footprint(0))
}

func TestAvatarMergeAndEmote(t *testing.T) {
	a := entities.NewAvatar("a1", entities.AvatarPatch{Name: ptr("Mira"), State: ptr(entities.AvatarIdle)})

	changes := a.Merge(entities.AvatarPatch{EmoteID: ptr("wave")})
	require.True(t, changes.Has(entities.AvatarChangedEmote))
	assert.Equal(t, "wave", a.ServerEmoteID)
	assert.Empty(t, a.CurrentEmoteID, "merge does not start the local emote")

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a.StartEmote("wave", now.Add(3*time.Second))
	assert.Equal(t, entities.AvatarEmoting, a.State)

	assert.False(t, a.ExpireEmote(now.Add(time.Second)))
	assert.True(t, a.ExpireEmote(now.Add(3*time.Second)))
	assert.Equal(t, entities.AvatarIdle, a.State)
	assert.Equal(t, "", a.CurrentEmoteID)
	assert.Equal(t, "wave", a.ServerEmoteID, "expiry keeps the server value")

	again := a.Merge(entities.AvatarPatch{EmoteID: ptr("wave")})
	assert.False(t, again.Has(entities.AvatarChangedEmote), "redelivered emote id is a no-op")
}

func TestParseAvatarState(t *testing.T) {
	assert.Equal(t, entities.AvatarSitting, entities.ParseAvatarState("sitting"))
	assert.Equal(t, entities.AvatarIdle, entities.ParseAvatarState("dancing"))
}

func TestCatalogRecolor(t *testing.T) {
	catalog := entities.NewCatalog(nil, []string{"#FF0000", "#00ff00"})

	assert.True(t, catalog.RecolorAllowed("#ff0000"))
	assert.True(t, catalog.RecolorAllowed("#00FF00"))
	assert.True(t, catalog.RecolorAllowed(""))
	assert.False(t, catalog.RecolorAllowed("#0000ff"))
	assert.Equal(t, []string{"#ff0000", "#00ff00"}, catalog.Recolors())
}
