package testutils

import (
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
)

// Catalog definition ids available in TestCatalog
const (
	DefChair  = "chair"
	DefTable  = "table"
	DefCrate  = "crate"
	DefRug    = "rug"
	DefLamp   = "lamp"
	DefPlant  = "plant"
	DefBench  = "bench"
	DefPoster = "poster"
	DefDoor   = "door"
	DefStatue = "statue"
)

// TestDefinitions returns a small catalog covering every capability flag
func TestDefinitions() []entities.ItemDefinition {
	return []entities.ItemDefinition{
		{ID: DefChair, Name: "Chair", Width: 1, Height: 1, CanSit: true, StackHeightUnit: 1},
		{ID: DefTable, Name: "Table", Width: 1, Height: 1, Stackable: true, StackHeightUnit: 1},
		{ID: DefCrate, Name: "Crate", Width: 1, Height: 1, Stackable: true, StackHeightUnit: 1, CanRecolor: true},
		{ID: DefRug, Name: "Rug", Width: 2, Height: 2, IsFlat: true, IsWalkable: true},
		{ID: DefLamp, Name: "Lamp", Width: 1, Height: 1, CanUse: true, StackHeightUnit: 2},
		{ID: DefPlant, Name: "Plant", Width: 1, Height: 1, StackHeightUnit: 1},
		{ID: DefBench, Name: "Bench", Width: 2, Height: 1, CanSit: true, StackHeightUnit: 1},
		{ID: DefPoster, Name: "Poster", Width: 1, Height: 1, IsFlat: true, IsWalkable: true, CanRecolor: true},
		{ID: DefDoor, Name: "Door", Width: 1, Height: 1, IsWalkable: true, StackHeightUnit: 2},
		{ID: DefStatue, Name: "Statue", Width: 1, Height: 1, StackHeightUnit: 3, ZOffset: 0.5},
	}
}

// TestRecolors is the palette used by TestCatalog
var TestRecolors = []string{"#ff0000", "#00aa00", "#3355ff"}

// TestCatalog returns the shared test catalog
func TestCatalog() *entities.Catalog {
	return entities.NewCatalog(TestDefinitions(), TestRecolors)
}
