// Package config holds the tuning values shared by the mirror components.
package config

import (
	"math"
	"time"

	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
)

// DrawOrderWeights controls the painter's-algorithm scalar.
// Y must dominate X and X must dominate Z over the configured extent. Visual
// positions are fractional while interpolating, so Y dominance only holds
// for Y gaps of at least Config.YDominanceGap.
type DrawOrderWeights struct {
	Y float64
	X float64
	Z float64

	// Base offsets added after rounding. Tiles use a far smaller offset so
	// every tile sorts before every other entity.
	FurnitureBase int64
	AvatarBase    int64
	TileBase      int64
}

// HighlightColors are the hex colors painted onto tiles each frame
type HighlightColors struct {
	Hover   string
	Valid   string
	Invalid string
}

// Config is the full tuning set for projection, smoothing, ordering, and
// placement rules.
type Config struct {
	// Isometric projection in pixels
	HalfTileWidth  float64
	HalfTileHeight float64
	StackPixelUnit float64

	MinZoom float64
	MaxZoom float64

	// Interpolation: SmoothingBase is the fraction of the remaining delta
	// covered in one TargetFrame.
	SmoothingBase float64
	TargetFrame   time.Duration
	MaxFrameDelta time.Duration
	SnapEpsilon   float64

	DrawOrder DrawOrderWeights

	// MaxGridExtent bounds x and y for draw-order dominance guarantees
	MaxGridExtent int

	// MaxStackHeight is exclusive; a placement Z at or above it is rejected
	MaxStackHeight float64

	Highlight HighlightColors

	EmoteDuration time.Duration
	MaxChatLength int
}

// Default returns the standard tuning
func Default() Config {
	return Config{
		HalfTileWidth:  32,
		HalfTileHeight: 16,
		StackPixelUnit: 16,
		MinZoom:        0.5,
		MaxZoom:        3,
		SmoothingBase:  0.25,
		TargetFrame:    time.Second / 60,
		MaxFrameDelta:  100 * time.Millisecond,
		SnapEpsilon:    0.01,
		DrawOrder: DrawOrderWeights{
			Y:             1_000_000,
			X:             1_000,
			Z:             10,
			FurnitureBase: 0,
			AvatarBase:    1,
			TileBase:      -10_000_000_000,
		},
		MaxGridExtent:  512,
		MaxStackHeight: 40,
		Highlight: HighlightColors{
			Hover:   "#ffffff",
			Valid:   "#33cc66",
			Invalid: "#dd3344",
		},
		EmoteDuration: 3 * time.Second,
		MaxChatLength: 100,
	}
}

// YDominanceGap is the smallest visual Y separation for which the entity
// with the larger Y is guaranteed to draw later, whatever its X and Z within
// MaxGridExtent and MaxStackHeight. Closer pairs sort by the full scalar.
func (c Config) YDominanceGap() float64 {
	w := c.DrawOrder
	baseSpread := math.Abs(float64(w.AvatarBase - w.FurnitureBase))
	// one unit absorbs the rounding of both orders
	return (w.X*float64(c.MaxGridExtent) + w.Z*c.MaxStackHeight + baseSpread + 1) / w.Y
}

// Validate checks ranges and the draw-order dominance relations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("HalfTileWidth", c.HalfTileWidth, vb)
	errors.ValidatePositive("HalfTileHeight", c.HalfTileHeight, vb)
	errors.ValidatePositive("MinZoom", c.MinZoom, vb)
	if c.MaxZoom < c.MinZoom {
		vb.Field("MaxZoom", "must not be below MinZoom")
	}
	errors.ValidateOpenUnit("SmoothingBase", c.SmoothingBase, vb)
	errors.ValidatePositive("TargetFrame", float64(c.TargetFrame), vb)
	errors.ValidatePositive("MaxFrameDelta", float64(c.MaxFrameDelta), vb)
	errors.ValidatePositive("SnapEpsilon", c.SnapEpsilon, vb)
	errors.ValidatePositive("MaxStackHeight", c.MaxStackHeight, vb)
	errors.ValidatePositive("MaxGridExtent", float64(c.MaxGridExtent), vb)
	errors.ValidatePositive("MaxChatLength", float64(c.MaxChatLength), vb)

	w := c.DrawOrder
	extent := float64(c.MaxGridExtent)
	if w.X <= w.Z*c.MaxStackHeight {
		vb.Field("DrawOrder.X", "must exceed Z weight times MaxStackHeight")
	}
	if w.Y <= 0 || c.YDominanceGap() > 1 {
		vb.Field("DrawOrder.Y", "must exceed the X and Z contribution over MaxGridExtent")
	}
	tileMax := float64(w.TileBase) + (w.Y+w.X)*extent
	if tileMax >= float64(min(w.FurnitureBase, w.AvatarBase)) {
		vb.Field("DrawOrder.TileBase", "must sort every tile before every entity")
	}

	return vb.Build()
}
