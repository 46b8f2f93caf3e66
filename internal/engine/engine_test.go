package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
	"github.com/KirkDiggler/rpg-room-mirror/internal/engine"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
	"github.com/KirkDiggler/rpg-room-mirror/internal/testutils"
	"github.com/KirkDiggler/rpg-room-mirror/internal/testutils/builders"
)

type EngineTestSuite struct {
	suite.Suite
	engine  engine.Engine
	catalog *entities.Catalog
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	e, err := engine.New(&engine.Config{MaxStackHeight: 40})
	s.Require().NoError(err)
	s.engine = e
	s.catalog = testutils.TestCatalog()
}

func (s *EngineTestSuite) def(id string) *entities.ItemDefinition {
	def, ok := s.catalog.Lookup(id)
	s.Require().True(ok, "missing test definition %s", id)
	return def
}

func (s *EngineTestSuite) TestNewRequiresConfig() {
	_, err := engine.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = engine.New(&engine.Config{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestOccupiedTiles() {
	testCases := []struct {
		name     string
		pos      entities.Vec3
		fp       entities.Footprint
		expected []coords.Cell
	}{
		{
			name:     "single cell",
			pos:      entities.Vec3{X: 2, Y: 3},
			fp:       entities.Footprint{Width: 1, Height: 1},
			expected: []coords.Cell{{X: 2, Y: 3}},
		},
		{
			name:     "two wide extends positive",
			pos:      entities.Vec3{X: 1, Y: 1},
			fp:       entities.Footprint{Width: 2, Height: 1},
			expected: []coords.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}},
		},
		{
			name: "three by three centered",
			pos:  entities.Vec3{X: 5, Y: 5},
			fp:   entities.Footprint{Width: 3, Height: 3},
			expected: []coords.Cell{
				{X: 4, Y: 4}, {X: 5, Y: 4}, {X: 6, Y: 4},
				{X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5},
				{X: 4, Y: 6}, {X: 5, Y: 6}, {X: 6, Y: 6},
			},
		},
		{
			name:     "position is rounded",
			pos:      entities.Vec3{X: 1.6, Y: 0.4},
			fp:       entities.Footprint{Width: 1, Height: 1},
			expected: []coords.Cell{{X: 2, Y: 0}},
		},
		{
			name:     "degenerate footprint still covers one cell",
			pos:      entities.Vec3{X: 0, Y: 0},
			fp:       entities.Footprint{},
			expected: []coords.Cell{{X: 0, Y: 0}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, s.engine.OccupiedTiles(tc.pos, tc.fp))
		})
	}
}

func (s *EngineTestSuite) TestWalkable() {
	room := builders.NewRoomBuilder("lobby", 4, 4).
		WithCatalog(s.catalog).
		WithWall(0, 0).
		WithHole(1, 0).
		WithFurniture("p1", testutils.DefPlant, 2, 2, 0).
		WithFurniture("r1", testutils.DefRug, 0, 2, 0).
		WithFurniture("g1", "ghost", 3, 3, 0).
		Build()

	s.Assert().False(s.engine.Walkable(room, 0, 0), "wall")
	s.Assert().False(s.engine.Walkable(room, 1, 0), "hole")
	s.Assert().False(s.engine.Walkable(room, -1, 1), "out of bounds")
	s.Assert().False(s.engine.Walkable(room, 2, 2), "solid furniture")
	s.Assert().True(s.engine.Walkable(room, 0, 3), "flat rug")
	s.Assert().True(s.engine.Walkable(room, 3, 3), "unknown definition takes no space")
	s.Assert().True(s.engine.Walkable(room, 3, 0))
}

func (s *EngineTestSuite) TestPlacementRejectedByWall() {
	room := builders.NewRoomBuilder("lobby", 3, 3).WithWall(2, 1).Build()
	oneByTwo := &entities.ItemDefinition{ID: "shelf", Width: 2, Height: 1, StackHeightUnit: 1}

	s.Assert().False(s.engine.PlacementValid(room, oneByTwo, 1, 1, 0))
	s.Assert().True(s.engine.PlacementValid(room, oneByTwo, 0, 0, 0))

	tall := &entities.ItemDefinition{ID: "wardrobe", Width: 1, Height: 2, StackHeightUnit: 1}
	s.Assert().True(s.engine.PlacementValid(room, tall, 1, 1, 0))
	s.Assert().False(s.engine.PlacementValid(room, tall, 1, 1, 2), "quarter turn lays it along x")

	out := s.engine.ValidatePlacement(room, &engine.ValidatePlacementInput{Definition: oneByTwo, X: 1, Y: 1})
	s.Require().Len(out.Issues, 1)
	s.Assert().Equal(engine.IssueBlockedTerrain, out.Issues[0].Type)
	s.Assert().Equal(coords.Cell{X: 2, Y: 1}, out.Issues[0].Cell)
}

func (s *EngineTestSuite) TestPlacementOutOfBounds() {
	room := builders.NewRoomBuilder("lobby", 3, 3).Build()

	out := s.engine.ValidatePlacement(room, &engine.ValidatePlacementInput{
		Definition: s.def(testutils.DefBench),
		X:          2,
		Y:          0,
	})
	s.Assert().False(out.Valid)
	s.Require().Len(out.Issues, 1)
	s.Assert().Equal(engine.IssueOutOfBounds, out.Issues[0].Type)
}

func (s *EngineTestSuite) TestPlacementCollision() {
	room := builders.NewRoomBuilder("lobby", 3, 3).
		WithCatalog(s.catalog).
		WithFurniture("p1", testutils.DefPlant, 1, 1, 0).
		WithFurniture("r1", testutils.DefRug, 0, 0, 0).
		Build()

	out := s.engine.ValidatePlacement(room, &engine.ValidatePlacementInput{Definition: s.def(testutils.DefChair), X: 1, Y: 1})
	s.Assert().False(out.Valid)
	s.Require().Len(out.Issues, 1)
	s.Assert().Equal(engine.IssueCollision, out.Issues[0].Type)
	s.Assert().Equal("p1", out.Issues[0].FurnitureID)

	s.Assert().True(s.engine.PlacementValid(room, s.def(testutils.DefChair), 0, 0, 0), "flat rug does not block")
}

func (s *EngineTestSuite) TestStacking() {
	room := builders.NewRoomBuilder("lobby", 3, 3).
		WithCatalog(s.catalog).
		WithFurniture("t1", testutils.DefTable, 0, 0, 0).
		Build()

	s.Assert().Equal(1.0, s.engine.StackHeightAt(room, 0, 0))
	s.Assert().Equal(0.0, s.engine.StackHeightAt(room, 1, 1))

	out := s.engine.ValidatePlacement(room, &engine.ValidatePlacementInput{Definition: s.def(testutils.DefPlant), X: 0, Y: 0})
	s.Assert().True(out.Valid)
	s.Assert().Equal(1.0, out.Z)

	capped, err := engine.New(&engine.Config{MaxStackHeight: 1})
	s.Require().NoError(err)
	s.Assert().False(capped.PlacementValid(room, s.def(testutils.DefPlant), 0, 0, 0), "z 1.0 meets the maximum")

	tooHigh := capped.ValidatePlacement(room, &engine.ValidatePlacementInput{Definition: s.def(testutils.DefPlant), X: 0, Y: 0})
	s.Require().Len(tooHigh.Issues, 1)
	s.Assert().Equal(engine.IssueTooHigh, tooHigh.Issues[0].Type)
}

func (s *EngineTestSuite) TestStackHeightTakesHighestSurface() {
	room := builders.NewRoomBuilder("lobby", 3, 3).
		WithCatalog(s.catalog).
		WithFurniture("t1", testutils.DefTable, 0, 0, 0).
		WithFurniture("c1", testutils.DefCrate, 0, 0, 1).
		WithFurniture("p1", testutils.DefPlant, 0, 0, 2).
		Build()

	s.Assert().Equal(2.0, s.engine.StackHeightAt(room, 0, 0), "non-stackable plant does not count")

	out := s.engine.ValidatePlacement(room, &engine.ValidatePlacementInput{Definition: s.def(testutils.DefStatue), X: 0, Y: 0})
	s.Assert().False(out.Valid, "solid non-stackable plant is in the way")
	s.Assert().Equal(2.5, out.Z)
}

func (s *EngineTestSuite) TestPlacementZComesFromAnchorCell() {
	room := builders.NewRoomBuilder("lobby", 3, 3).
		WithCatalog(s.catalog).
		WithFurniture("t1", testutils.DefTable, 1, 0, 0).
		Build()
	wide := &entities.ItemDefinition{ID: "shelf", Width: 2, Height: 1, StackHeightUnit: 1, ZOffset: 0.5}

	capped, err := engine.New(&engine.Config{MaxStackHeight: 1})
	s.Require().NoError(err)

	out := capped.ValidatePlacement(room, &engine.ValidatePlacementInput{Definition: wide, X: 0, Y: 0})
	s.Assert().Equal([]coords.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}, out.Cells)
	s.Assert().Equal(0.5, out.Z, "table under the second cell does not lift the anchor")
	s.Assert().True(out.Valid)
	s.Assert().Empty(out.Issues)

	onTable := capped.ValidatePlacement(room, &engine.ValidatePlacementInput{Definition: wide, X: 1, Y: 0})
	s.Assert().Equal(1.5, onTable.Z)
	s.Assert().False(onTable.Valid)
	s.Require().Len(onTable.Issues, 1)
	s.Assert().Equal(engine.IssueTooHigh, onTable.Issues[0].Type)
}

func (s *EngineTestSuite) TestFurnitureAtTopmostFirst() {
	room := builders.NewRoomBuilder("lobby", 3, 3).
		WithCatalog(s.catalog).
		WithFurniture("t1", testutils.DefTable, 1, 1, 0).
		WithFurniture("l1", testutils.DefLamp, 1, 1, 1).
		WithFurniture("g1", "ghost", 1, 1, 5).
		Build()

	found := s.engine.FurnitureAt(room, 1, 1)
	s.Require().Len(found, 2)
	s.Assert().Equal("l1", found[0].GetID())
	s.Assert().Equal("t1", found[1].GetID())
	s.Assert().Empty(s.engine.FurnitureAt(room, 0, 0))
}
