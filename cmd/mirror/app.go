package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
	"github.com/KirkDiggler/rpg-room-mirror/internal/engine"
	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/handlers/wire"
	"github.com/KirkDiggler/rpg-room-mirror/internal/intents"
	"github.com/KirkDiggler/rpg-room-mirror/internal/notifications"
	"github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/edit"
	"github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/frame"
	"github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/reconcile"
	"github.com/KirkDiggler/rpg-room-mirror/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-room-mirror/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-room-mirror/internal/redis"
	catalogrepo "github.com/KirkDiggler/rpg-room-mirror/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-room-mirror/internal/session"
)

// replayStart anchors the manual clock so replays are deterministic
var replayStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// app wires one session's orchestrators together
type app struct {
	session  *session.Context
	clock    *clock.Manual
	notifier *notifications.BusNotifier
	server   *wire.Handler
	input    *wire.InputHandler
}

func loadCatalog(ctx context.Context) (*entities.Catalog, error) {
	var repo catalogrepo.Repository
	switch {
	case redisURL != "" || len(redisCluster) > 0:
		client, err := newRedisClient()
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		defer func() {
			_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		}()
		repo, err = catalogrepo.NewRedis(&catalogrepo.RedisConfig{Client: client})
		if err != nil {
			return nil, err
		}
	case catalogFile != "":
		fileRepo, err := catalogrepo.NewInMemoryFromFile(catalogFile)
		if err != nil {
			return nil, err
		}
		repo = fileRepo
	default:
		return nil, fmt.Errorf("one of --catalog, --redis, or --redis-cluster is required")
	}

	return catalogrepo.Load(ctx, repo)
}

func newRedisClient() (redis.Client, error) {
	switch {
	case redisURL != "" && len(redisCluster) > 0:
		return nil, fmt.Errorf("--redis and --redis-cluster are mutually exclusive")
	case len(redisCluster) > 0:
		return redis.NewClusterClient(redisCluster, nil)
	case strings.Contains(redisURL, "://"):
		return redis.NewFromURL(redisURL)
	default:
		return redis.NewClient(redisURL, nil)
	}
}

func newApp(catalog *entities.Catalog, intentsOut io.Writer) (*app, error) {
	settings := config.Default()

	eng, err := engine.New(&engine.Config{MaxStackHeight: settings.MaxStackHeight})
	if err != nil {
		return nil, err
	}

	sess, err := session.New(&session.Config{
		Settings: settings,
		Catalog:  catalog,
		Engine:   eng,
	})
	if err != nil {
		return nil, err
	}

	notifier, err := notifications.NewBusNotifier(&notifications.BusConfig{EventBus: events.NewBus()})
	if err != nil {
		return nil, err
	}

	clk := clock.NewManual(replayStart)

	rec, err := reconcile.NewOrchestrator(&reconcile.Config{
		Session:  sess,
		Notifier: notifier,
		Clock:    clk,
	})
	if err != nil {
		return nil, err
	}

	ed, err := edit.NewOrchestrator(&edit.Config{
		Session:     sess,
		Sink:        intents.NewWriterSink(intentsOut),
		Notifier:    notifier,
		IDGenerator: idgen.NewSequential("intent"),
	})
	if err != nil {
		return nil, err
	}

	fr, err := frame.NewOrchestrator(&frame.Config{
		Session:  sess,
		Notifier: notifier,
		Clock:    clk,
	})
	if err != nil {
		return nil, err
	}

	server, err := wire.NewHandler(&wire.HandlerConfig{Reconcile: rec, Edit: ed})
	if err != nil {
		return nil, err
	}

	input, err := wire.NewInputHandler(&wire.InputHandlerConfig{Edit: ed, Frame: fr})
	if err != nil {
		return nil, err
	}

	return &app{
		session:  sess,
		clock:    clk,
		notifier: notifier,
		server:   server,
		input:    input,
	}, nil
}

// logNotifications logs every notification type at info level
func (a *app) logNotifications() {
	for _, t := range []notifications.Type{
		notifications.TypeFurnitureStateChanged,
		notifications.TypeAvatarStateChanged,
		notifications.TypeEmoteStarted,
		notifications.TypeRoomEntered,
		notifications.TypeActionRejected,
	} {
		a.notifier.Subscribe(t, func(_ context.Context, n notifications.Notification) {
			slog.Info("notification",
				"type", n.Type,
				"room_id", n.RoomID,
				"entity_id", n.EntityID,
				"from", n.From,
				"to", n.To,
				"intent_id", n.IntentID)
		})
	}
}
