// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"fmt"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/intents"
	intentsmock "github.com/KirkDiggler/rpg-room-mirror/internal/intents/mock"
	"github.com/KirkDiggler/rpg-room-mirror/internal/notifications"
	notificationsmock "github.com/KirkDiggler/rpg-room-mirror/internal/notifications/mock"
	catalogrepo "github.com/KirkDiggler/rpg-room-mirror/internal/repositories/catalog"
	catalogmock "github.com/KirkDiggler/rpg-room-mirror/internal/repositories/catalog/mock"
)

// IntentOfKind matches an intents.Intent by kind
func IntentOfKind(kind intents.Kind) gomock.Matcher {
	return intentKindMatcher{kind: kind}
}

type intentKindMatcher struct {
	kind intents.Kind
}

func (m intentKindMatcher) Matches(x any) bool {
	i, ok := x.(intents.Intent)
	return ok && i.Kind == m.kind
}

func (m intentKindMatcher) String() string {
	return fmt.Sprintf("is a %s intent", m.kind)
}

// NotificationOfType matches a notifications.Notification by type
func NotificationOfType(t notifications.Type) gomock.Matcher {
	return notificationTypeMatcher{typ: t}
}

type notificationTypeMatcher struct {
	typ notifications.Type
}

func (m notificationTypeMatcher) Matches(x any) bool {
	n, ok := x.(notifications.Notification)
	return ok && n.Type == m.typ
}

func (m notificationTypeMatcher) String() string {
	return fmt.Sprintf("is a %s notification", m.typ)
}

// ExpectIntent expects one intent of the given kind and returns where the
// sent intent will be recorded
func ExpectIntent(ctx context.Context, mockSink *intentsmock.MockSink, kind intents.Kind) *intents.Intent {
	var sent intents.Intent
	mockSink.EXPECT().
		Send(ctx, IntentOfKind(kind)).
		DoAndReturn(func(_ context.Context, i intents.Intent) error {
			sent = i
			return nil
		})
	return &sent
}

// ExpectNotification expects one notification of the given type
func ExpectNotification(ctx context.Context, mockNotifier *notificationsmock.MockNotifier, t notifications.Type) *gomock.Call {
	return mockNotifier.EXPECT().
		Notify(ctx, NotificationOfType(t)).
		Return(nil)
}

// CaptureNotifications records every notification published, in order
func CaptureNotifications(ctx context.Context, mockNotifier *notificationsmock.MockNotifier) *[]notifications.Notification {
	got := &[]notifications.Notification{}
	mockNotifier.EXPECT().
		Notify(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n notifications.Notification) error {
			*got = append(*got, n)
			return nil
		}).
		AnyTimes()
	return got
}

// ExpectCatalogLoad sets up the two reads catalog.Load makes
func ExpectCatalogLoad(
	ctx context.Context, mockRepo *catalogmock.MockRepository,
	defs []entities.ItemDefinition, recolors []string,
) {
	mockRepo.EXPECT().
		ListDefinitions(ctx, &catalogrepo.ListDefinitionsInput{}).
		Return(&catalogrepo.ListDefinitionsOutput{Definitions: defs}, nil)
	mockRepo.EXPECT().
		GetRecolors(ctx, &catalogrepo.GetRecolorsInput{}).
		Return(&catalogrepo.GetRecolorsOutput{Recolors: recolors}, nil)
}
