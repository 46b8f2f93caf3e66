package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-room-mirror/internal/handlers/wire"
	"github.com/KirkDiggler/rpg-room-mirror/internal/orchestrators/frame"
)

var (
	intentsFile string
	printFrames bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [log-file]",
	Short: "Replay a JSON-lines message log through the mirror",
	Long: `Replay reads one JSON object per line. Server messages (room_snapshot,
entity_event, player, inventory, intent_rejected) go to the reconciler; local
input records (pointer_move, click, camera, select_item, tick, ...) go to the edit
session and frame driver. Tick records advance a manual clock, so a replay is
deterministic. Pass - to read standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&intentsFile, "intents", "", "Write sent intents to this file instead of stdout")
	replayCmd.Flags().BoolVar(&printFrames, "frames", false, "Print the draw list after every tick")
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	in, closeIn, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer closeIn()

	intentsOut := io.Writer(os.Stdout)
	if intentsFile != "" {
		f, err := os.Create(intentsFile)
		if err != nil {
			return fmt.Errorf("failed to create intents file: %w", err)
		}
		defer func() {
			_ = f.Close() // nolint:errcheck // safe to ignore in cleanup
		}()
		intentsOut = f
	}

	catalog, err := loadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	a, err := newApp(catalog, intentsOut)
	if err != nil {
		return err
	}
	a.logNotifications()

	var frames io.Writer
	if printFrames {
		frames = os.Stdout
	}

	stats, err := a.replay(ctx, in, frames)
	if err != nil {
		return err
	}

	log.Printf("replayed %d lines: %d messages, %d inputs, %d ticks, %d failed",
		stats.Lines, stats.Messages, stats.Inputs, stats.Ticks, stats.Failed)
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log: %w", err)
	}
	return f, func() {
		_ = f.Close() // nolint:errcheck // safe to ignore in cleanup
	}, nil
}

// replayStats counts what a replay did
type replayStats struct {
	Lines    int
	Messages int
	Inputs   int
	Ticks    int
	Failed   int
}

// replay applies every line of r. A line that fails is logged and skipped;
// nothing in a log is fatal.
func (a *app) replay(ctx context.Context, r io.Reader, frames io.Writer) (*replayStats, error) {
	stats := &replayStats{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		stats.Lines++

		if !wire.IsInput(line) {
			stats.Messages++
			if _, err := a.server.Handle(ctx, line); err != nil {
				stats.Failed++
				slog.Warn("message rejected", "line", stats.Lines, "error", err)
			}
			continue
		}

		stats.Inputs++
		a.advanceClock(line)
		result, err := a.input.Handle(ctx, line)
		if err != nil {
			stats.Failed++
			slog.Warn("input rejected", "line", stats.Lines, "error", err)
			continue
		}
		if result.Frame != nil {
			stats.Ticks++
			if frames != nil {
				if err := writeFrame(frames, stats.Ticks, result.Frame); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	return stats, nil
}

// advanceClock moves the manual clock forward by a tick record's delta
// before the frame driver sees it
func (a *app) advanceClock(line []byte) {
	var in wire.InputJSON
	if err := json.Unmarshal(line, &in); err != nil || in.Type != wire.InputTick || in.DeltaMS <= 0 {
		return
	}
	a.clock.Advance(time.Duration(in.DeltaMS * float64(time.Millisecond)))
}

func writeFrame(w io.Writer, n int, out *frame.TickOutput) error {
	if _, err := fmt.Fprintf(w, "frame %d: %d drawables, %d moving, edit=%s\n",
		n, len(out.Drawables), out.Moving, out.Edit.State); err != nil {
		return err
	}
	for _, d := range out.Drawables {
		v := d.Visual()
		if _, err := fmt.Fprintf(w, "  %-9s %-16s x=%.3f y=%.3f z=%.3f order=%d\n",
			d.Kind(), d.GetID(), v.X, v.Y, v.Z, d.DrawOrder()); err != nil {
			return err
		}
	}
	if g := out.Ghost; g != nil {
		if _, err := fmt.Fprintf(w, "  ghost %s at (%d,%d) z=%.2f rotation=%d valid=%t\n",
			g.DefinitionID, g.Cell.X, g.Cell.Y, g.Z, g.Rotation, g.Valid); err != nil {
			return err
		}
	}
	return nil
}
