package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-room-mirror/internal/engine"
)

var (
	roomFile        string
	inspectRotation int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Query placement and walkability in a room snapshot",
	Long:  `Inspect loads a room_snapshot message from --room and answers occupancy questions about it.`,
}

var inspectPlaceCmd = &cobra.Command{
	Use:   "place [definition-id] [x] [y]",
	Short: "Check whether an item could be placed at a cell",
	Args:  cobra.ExactArgs(3),
	RunE:  runInspectPlace,
}

var inspectCellCmd = &cobra.Command{
	Use:   "cell [x] [y]",
	Short: "Show walkability, stack height, and occupants of a cell",
	Args:  cobra.ExactArgs(2),
	RunE:  runInspectCell,
}

func init() {
	inspectCmd.PersistentFlags().StringVar(&roomFile, "room", "", "File holding one room_snapshot JSON message")
	inspectPlaceCmd.Flags().IntVar(&inspectRotation, "rotation", 0, "Item rotation, 0 to 7")

	inspectCmd.AddCommand(inspectPlaceCmd)
	inspectCmd.AddCommand(inspectCellCmd)
}

func loadRoom(ctx context.Context) (*app, error) {
	if roomFile == "" {
		return nil, fmt.Errorf("--room is required")
	}
	data, err := os.ReadFile(roomFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read room: %w", err)
	}

	catalog, err := loadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	a, err := newApp(catalog, io.Discard)
	if err != nil {
		return nil, err
	}
	if _, err := a.server.Handle(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to apply room: %w", err)
	}
	if a.session.Mirror == nil {
		return nil, fmt.Errorf("%s holds no room snapshot", roomFile)
	}
	return a, nil
}

func parseCell(xs, ys string) (int, int, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x %q: %w", xs, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y %q: %w", ys, err)
	}
	return x, y, nil
}

func runInspectPlace(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	x, y, err := parseCell(args[1], args[2])
	if err != nil {
		return err
	}

	a, err := loadRoom(ctx)
	if err != nil {
		return err
	}

	def, ok := a.session.Catalog.Lookup(args[0])
	if !ok {
		return fmt.Errorf("definition %q is not in the catalog", args[0])
	}

	out := a.session.Engine.ValidatePlacement(a.session.Mirror, &engine.ValidatePlacementInput{
		Definition: def,
		X:          x,
		Y:          y,
		Rotation:   inspectRotation,
	})

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s at (%d,%d) rotation %d: valid=%t z=%.2f\n", def.ID, x, y, inspectRotation, out.Valid, out.Z)
	for _, c := range out.Cells {
		fmt.Fprintf(w, "  covers (%d,%d)\n", c.X, c.Y)
	}
	for _, issue := range out.Issues {
		if issue.FurnitureID != "" {
			fmt.Fprintf(w, "  %s at (%d,%d) with %s\n", issue.Type, issue.Cell.X, issue.Cell.Y, issue.FurnitureID)
			continue
		}
		fmt.Fprintf(w, "  %s at (%d,%d)\n", issue.Type, issue.Cell.X, issue.Cell.Y)
	}
	return nil
}

func runInspectCell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	x, y, err := parseCell(args[0], args[1])
	if err != nil {
		return err
	}

	a, err := loadRoom(ctx)
	if err != nil {
		return err
	}

	mirror := a.session.Mirror
	eng := a.session.Engine
	w := cmd.OutOrStdout()

	layout, ok := mirror.LayoutAt(x, y)
	if !ok {
		fmt.Fprintf(w, "(%d,%d) is outside %s (%dx%d)\n", x, y, mirror.RoomID, mirror.Cols, mirror.Rows)
		return nil
	}

	fmt.Fprintf(w, "(%d,%d) in %s: layout=%s walkable=%t stack_height=%.2f\n",
		x, y, mirror.RoomID, layout, eng.Walkable(mirror, x, y), eng.StackHeightAt(mirror, x, y))
	for _, f := range eng.FurnitureAt(mirror, x, y) {
		fmt.Fprintf(w, "  %s %s z=%.2f\n", f.GetID(), f.DefinitionID, f.Logical().Z)
	}
	return nil
}
