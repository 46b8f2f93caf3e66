package notifications_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
	"github.com/KirkDiggler/rpg-room-mirror/internal/notifications"
)

type BusNotifierTestSuite struct {
	suite.Suite
	notifier *notifications.BusNotifier
	ctx      context.Context
}

func TestBusNotifierSuite(t *testing.T) {
	suite.Run(t, new(BusNotifierTestSuite))
}

func (s *BusNotifierTestSuite) SetupTest() {
	n, err := notifications.NewBusNotifier(&notifications.BusConfig{EventBus: events.NewBus()})
	s.Require().NoError(err)
	s.notifier = n
	s.ctx = context.Background()
}

func (s *BusNotifierTestSuite) TestNewRequiresBus() {
	_, err := notifications.NewBusNotifier(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = notifications.NewBusNotifier(&notifications.BusConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *BusNotifierTestSuite) TestDeliversToMatchingSubscribers() {
	var got []notifications.Notification
	s.notifier.Subscribe(notifications.TypeFurnitureStateChanged, func(_ context.Context, n notifications.Notification) {
		got = append(got, n)
	})

	var rooms []string
	s.notifier.Subscribe(notifications.TypeRoomEntered, func(_ context.Context, n notifications.Notification) {
		rooms = append(rooms, n.RoomID)
	})

	s.Require().NoError(s.notifier.Notify(s.ctx, notifications.Notification{
		Type:     notifications.TypeFurnitureStateChanged,
		RoomID:   "lobby",
		EntityID: "lamp1",
		From:     "off",
		To:       "on",
	}))

	s.Require().Len(got, 1)
	s.Equal("lamp1", got[0].EntityID)
	s.Equal("off", got[0].From)
	s.Equal("on", got[0].To)
	s.Empty(rooms)
}

func (s *BusNotifierTestSuite) TestUnsubscribe() {
	calls := 0
	id := s.notifier.Subscribe(notifications.TypeActionRejected, func(context.Context, notifications.Notification) {
		calls++
	})

	n := notifications.Notification{Type: notifications.TypeActionRejected, IntentID: "intent_1"}
	s.Require().NoError(s.notifier.Notify(s.ctx, n))
	s.Require().NoError(s.notifier.Unsubscribe(id))
	s.Require().NoError(s.notifier.Notify(s.ctx, n))

	s.Equal(1, calls)
}

func (s *BusNotifierTestSuite) TestDiscard() {
	s.NoError(notifications.Discard{}.Notify(s.ctx, notifications.Notification{Type: notifications.TypeEmoteStarted}))
}
