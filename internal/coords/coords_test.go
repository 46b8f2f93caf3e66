package coords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
)

const tolerance = 1e-9

type CoordsTestSuite struct {
	suite.Suite
	proj coords.Projection
}

func TestCoordsSuite(t *testing.T) {
	suite.Run(t, new(CoordsTestSuite))
}

func (s *CoordsTestSuite) SetupTest() {
	s.proj = coords.NewProjection(config.Default())
}

func (s *CoordsTestSuite) TestWorldToScreen() {
	testCases := []struct {
		name     string
		x, y     float64
		expected coords.Point
	}{
		{"origin", 0, 0, coords.Point{X: 0, Y: 0}},
		{"one step x", 1, 0, coords.Point{X: 32, Y: 16}},
		{"one step y", 0, 1, coords.Point{X: -32, Y: 16}},
		{"diagonal", 2, 2, coords.Point{X: 0, Y: 64}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, s.proj.WorldToScreen(tc.x, tc.y))
		})
	}
}

func (s *CoordsTestSuite) TestInverseRoundTrip() {
	cam := coords.NewCamera(0.5, 3)
	cam.SetZoom(1.75)
	cam.Pan(120, -40)

	for _, p := range []coords.Point{{X: 0, Y: 0}, {X: 3.5, Y: 7.25}, {X: -2, Y: 11}, {X: 40.1, Y: 0.3}} {
		screen := s.proj.ToScreen(*cam, p.X, p.Y)
		back := s.proj.FromScreen(*cam, screen.X, screen.Y)
		s.Assert().InDelta(p.X, back.X, tolerance)
		s.Assert().InDelta(p.Y, back.Y, tolerance)
	}
}

func (s *CoordsTestSuite) TestCellAt() {
	cam := coords.NewCamera(0.5, 3)
	cam.Pan(400, 100)

	screen := s.proj.ToScreen(*cam, 4.3, 2.6)
	s.Assert().Equal(coords.Cell{X: 4, Y: 3}, s.proj.CellAt(*cam, screen.X, screen.Y))
}

func (s *CoordsTestSuite) TestToScreenWithHeight() {
	cam := coords.NewCamera(0.5, 3)
	flat := s.proj.ToScreen(*cam, 1, 1)
	lifted := s.proj.ToScreenWithHeight(*cam, 1, 1, 2)

	s.Assert().Equal(flat.X, lifted.X)
	s.Assert().Equal(flat.Y-32, lifted.Y)
}

func TestSnapToGrid(t *testing.T) {
	assert.Equal(t, coords.Cell{X: 1, Y: 2}, coords.SnapToGrid(0.6, 2.4))
	assert.Equal(t, coords.Cell{X: 3, Y: -1}, coords.SnapToGrid(2.5, -0.7))
}

func TestCameraZoomClamp(t *testing.T) {
	cam := coords.NewCamera(0.5, 3)
	assert.Equal(t, 1.0, cam.Zoom)

	cam.SetZoom(10)
	assert.Equal(t, 3.0, cam.Zoom)

	cam.SetZoom(0.01)
	assert.Equal(t, 0.5, cam.Zoom)
}

func TestCameraZoomAtKeepsAnchor(t *testing.T) {
	cam := coords.NewCamera(0.5, 3)
	cam.Pan(50, 25)
	anchor := coords.Point{X: 300, Y: 200}

	before := cam.Invert(anchor)
	cam.ZoomAt(2, anchor)
	after := cam.Invert(anchor)

	assert.Equal(t, 2.0, cam.Zoom)
	assert.InDelta(t, before.X, after.X, tolerance)
	assert.InDelta(t, before.Y, after.Y, tolerance)
}

func TestCameraCenterOn(t *testing.T) {
	cam := coords.NewCamera(0.5, 3)
	cam.SetZoom(2)
	cam.CenterOn(coords.Point{X: 100, Y: 50}, 800, 600)

	got := cam.Apply(coords.Point{X: 100, Y: 50})
	assert.Equal(t, coords.Point{X: 400, Y: 300}, got)
}
