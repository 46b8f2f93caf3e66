package wire_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-room-mirror/internal/coords"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
	"github.com/KirkDiggler/rpg-room-mirror/internal/handlers/wire"
	"github.com/KirkDiggler/rpg-room-mirror/internal/intents"
	"github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/edit"
	editmock "github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/edit/mock"
	"github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/frame"
	framemock "github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/frame/mock"
)

type InputHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockEdit  *editmock.MockService
	mockFrame *framemock.MockService
	handler   *wire.InputHandler
	ctx       context.Context
}

func TestInputHandlerSuite(t *testing.T) {
	suite.Run(t, new(InputHandlerTestSuite))
}

func (s *InputHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEdit = editmock.NewMockService(s.ctrl)
	s.mockFrame = framemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	h, err := wire.NewInputHandler(&wire.InputHandlerConfig{
		Edit:  s.mockEdit,
		Frame: s.mockFrame,
	})
	s.Require().NoError(err)
	s.handler = h
}

func (s *InputHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InputHandlerTestSuite) TestIsInput() {
	s.True(wire.IsInput([]byte(`{"type": "tick", "delta_ms": 16}`)))
	s.True(wire.IsInput([]byte(`{"type": "click"}`)))
	s.True(wire.IsInput([]byte(`{"type": "camera", "dx": 5}`)))
	s.False(wire.IsInput([]byte(`{"type": "room_snapshot"}`)))
	s.False(wire.IsInput([]byte(`garbage`)))
}

func (s *InputHandlerTestSuite) TestPointerAndClick() {
	s.mockEdit.EXPECT().
		PointerMove(s.ctx, &edit.PointerMoveInput{ScreenX: 32, ScreenY: 48}).
		Return(&edit.PointerMoveOutput{}, nil)

	move := intents.Move(1, 2)
	s.mockEdit.EXPECT().
		Click(s.ctx, &edit.ClickInput{ScreenX: 32, ScreenY: 48}).
		Return(&edit.ClickOutput{Action: edit.ClickMove, Intent: &move}, nil)

	_, err := s.handler.Handle(s.ctx, []byte(`{"type": "pointer_move", "x": 32, "y": 48}`))
	s.Require().NoError(err)

	result, err := s.handler.Handle(s.ctx, []byte(`{"type": "click", "x": 32, "y": 48}`))
	s.Require().NoError(err)
	s.Equal(edit.ClickMove, result.Click.Action)
	s.Equal(&move, result.Intent)
}

func (s *InputHandlerTestSuite) TestCamera() {
	gomock.InOrder(
		s.mockEdit.EXPECT().
			MoveCamera(s.ctx, &edit.MoveCameraInput{
				PanX:       -32,
				PanY:       16,
				ZoomFactor: 1.5,
				Anchor:     coords.Point{X: 100, Y: 80},
			}).
			Return(&edit.MoveCameraOutput{}, nil),
		s.mockEdit.EXPECT().
			MoveCamera(s.ctx, &edit.MoveCameraInput{
				Center:         &coords.Point{X: 2, Y: 3},
				ViewportWidth:  800,
				ViewportHeight: 600,
			}).
			Return(&edit.MoveCameraOutput{}, nil),
		s.mockEdit.EXPECT().
			MoveCamera(s.ctx, &edit.MoveCameraInput{ViewportWidth: 800}).
			Return(&edit.MoveCameraOutput{}, nil),
	)

	result, err := s.handler.Handle(s.ctx, []byte(`{"type": "camera", "dx": -32, "dy": 16, "zoom": 1.5, "x": 100, "y": 80}`))
	s.Require().NoError(err)
	s.Equal(wire.InputCamera, result.Type)
	s.Nil(result.Intent)

	_, err = s.handler.Handle(s.ctx, []byte(`{"type": "camera", "center_x": 2, "center_y": 3, "viewport_width": 800, "viewport_height": 600}`))
	s.Require().NoError(err)

	// a lone center_x is not a center request
	_, err = s.handler.Handle(s.ctx, []byte(`{"type": "camera", "center_x": 2, "viewport_width": 800}`))
	s.NoError(err)
}

func (s *InputHandlerTestSuite) TestPlacementFlow() {
	gomock.InOrder(
		s.mockEdit.EXPECT().
			SetEditMode(s.ctx, &edit.SetEditModeInput{Enabled: true}).
			Return(&edit.SetEditModeOutput{}, nil),
		s.mockEdit.EXPECT().
			SelectInventoryItem(s.ctx, &edit.SelectInventoryItemInput{InventoryItemID: "inv1"}).
			Return(&edit.SelectInventoryItemOutput{}, nil),
		s.mockEdit.EXPECT().
			RotatePlacement(s.ctx, &edit.RotatePlacementInput{}).
			Return(&edit.RotatePlacementOutput{Rotation: 2}, nil),
		s.mockEdit.EXPECT().
			ConfirmPlacement(s.ctx, &edit.ConfirmPlacementInput{}).
			Return(&edit.ConfirmPlacementOutput{Intent: intents.Place("inv1", "table", 1, 1, 2)}, nil),
		s.mockEdit.EXPECT().
			Deselect(s.ctx, &edit.DeselectInput{}).
			Return(&edit.DeselectOutput{}, nil),
	)

	for _, line := range []string{
		`{"type": "edit_mode", "enabled": true}`,
		`{"type": "select_item", "inventory_item_id": "inv1"}`,
		`{"type": "rotate_placement"}`,
	} {
		_, err := s.handler.Handle(s.ctx, []byte(line))
		s.Require().NoError(err)
	}

	result, err := s.handler.Handle(s.ctx, []byte(`{"type": "confirm_placement"}`))
	s.Require().NoError(err)
	s.Require().NotNil(result.Intent)
	s.Equal(intents.KindPlace, result.Intent.Kind)

	_, err = s.handler.Handle(s.ctx, []byte(`{"type": "deselect"}`))
	s.NoError(err)
}

func (s *InputHandlerTestSuite) TestFurnitureActions() {
	s.mockEdit.EXPECT().Pickup(s.ctx, gomock.Any()).Return(&edit.IntentOutput{Intent: intents.Pickup("f1")}, nil)
	s.mockEdit.EXPECT().Rotate(s.ctx, gomock.Any()).Return(&edit.IntentOutput{Intent: intents.Rotate("f1")}, nil)
	s.mockEdit.EXPECT().Sit(s.ctx, gomock.Any()).Return(&edit.IntentOutput{Intent: intents.Sit("f1")}, nil)
	s.mockEdit.EXPECT().Stand(s.ctx, gomock.Any()).Return(&edit.IntentOutput{Intent: intents.Stand()}, nil)
	s.mockEdit.EXPECT().
		Recolor(s.ctx, &edit.RecolorInput{Color: "#FF0000"}).
		Return(&edit.IntentOutput{Intent: intents.Recolor("f1", "#ff0000")}, nil)
	s.mockEdit.EXPECT().
		Chat(s.ctx, &edit.ChatInput{Text: "hello"}).
		Return(&edit.IntentOutput{Intent: intents.Chat("hello")}, nil)

	testCases := []struct {
		line string
		kind intents.Kind
	}{
		{line: `{"type": "pickup"}`, kind: intents.KindPickup},
		{line: `{"type": "rotate"}`, kind: intents.KindRotate},
		{line: `{"type": "sit"}`, kind: intents.KindSit},
		{line: `{"type": "stand"}`, kind: intents.KindStand},
		{line: `{"type": "recolor", "color": "#FF0000"}`, kind: intents.KindRecolor},
		{line: `{"type": "chat", "text": "hello"}`, kind: intents.KindChat},
	}

	for _, tc := range testCases {
		s.Run(string(tc.kind), func() {
			result, err := s.handler.Handle(s.ctx, []byte(tc.line))
			s.Require().NoError(err)
			s.Equal(tc.kind, result.Intent.Kind)
		})
	}
}

func (s *InputHandlerTestSuite) TestActionErrorPassesThrough() {
	s.mockEdit.EXPECT().
		Pickup(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("no furniture selected"))

	_, err := s.handler.Handle(s.ctx, []byte(`{"type": "pickup"}`))
	s.True(errors.IsFailedPrecondition(err))
}

func (s *InputHandlerTestSuite) TestTick() {
	s.mockFrame.EXPECT().
		Tick(s.ctx, &frame.TickInput{Delta: 16 * time.Millisecond}).
		Return(&frame.TickOutput{Delta: 16 * time.Millisecond}, nil)

	result, err := s.handler.Handle(s.ctx, []byte(`{"type": "tick", "delta_ms": 16}`))
	s.Require().NoError(err)
	s.Require().NotNil(result.Frame)
	s.Equal(16*time.Millisecond, result.Frame.Delta)
}

func (s *InputHandlerTestSuite) TestUnknownInput() {
	_, err := s.handler.Handle(s.ctx, []byte(`{"type": "jump"}`))
	s.True(errors.IsInvalidArgument(err))
}
