// Package main is the entry point for the room mirror tools
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	catalogFile  string
	redisURL     string
	redisCluster []string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "room-mirror",
	Short: "Isometric room mirror tools",
	Long: `room-mirror replays recorded server messages and local input through the
room mirror core, and answers placement and walkability questions about a room.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogging(logLevel)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "Item catalog JSON file")
	rootCmd.PersistentFlags().StringVar(&redisURL, "redis", "", "Load the item catalog from Redis at this redis:// URL or host:port instead of a file")
	rootCmd.PersistentFlags().StringSliceVar(&redisCluster, "redis-cluster", nil, "Load the item catalog from a Redis Cluster at these host:port endpoints")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(inspectCmd)
}

func setupLogging(level string) error {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info", "":
		l = slog.LevelInfo
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}
