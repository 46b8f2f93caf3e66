// Package entities provides the scene data model mirrored from the server:
// tiles, furniture, avatars, the room that owns them, and the local edit
// session.
package entities

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
)

// Kind is the closed set of scene entity kinds
type Kind string

// Entity kinds
const (
	KindTile      Kind = "tile"
	KindFurniture Kind = "furniture"
	KindAvatar    Kind = "avatar"
)

// Vec3 is a world-space position; Z is the vertical stacking unit
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PositionedEntity is implemented by every scene entity
type PositionedEntity interface {
	core.Entity
	Kind() Kind
	Logical() Vec3
	Visual() Vec3
	DrawOrder() int64
}

// Body carries the position state shared by all entity kinds. Logical is
// the authoritative position from the server; Visual is what gets drawn and
// converges toward Logical each frame.
type Body struct {
	id        string
	kind      Kind
	logical   Vec3
	visual    Vec3
	drawOrder int64
}

func newBody(id string, kind Kind, at Vec3) Body {
	return Body{id: id, kind: kind, logical: at, visual: at}
}

// GetID returns the stable entity id
func (b *Body) GetID() string { return b.id }

// GetType returns the entity kind as a string
func (b *Body) GetType() string { return string(b.kind) }

// Kind returns the entity kind
func (b *Body) Kind() Kind { return b.kind }

// Logical returns the authoritative position
func (b *Body) Logical() Vec3 { return b.logical }

// Visual returns the rendered position
func (b *Body) Visual() Vec3 { return b.visual }

// DrawOrder returns the last computed painter's-algorithm key
func (b *Body) DrawOrder() int64 { return b.drawOrder }

// SnapVisual moves the visual position onto the logical one
func (b *Body) SnapVisual() {
	b.visual = b.logical
}

// Interpolate moves the visual position toward the logical position by
// factor. Any axis whose remaining delta is below epsilon snaps exactly.
// It reports whether the visual position changed.
func (b *Body) Interpolate(factor, epsilon float64) bool {
	before := b.visual
	b.visual.X = approach(b.visual.X, b.logical.X, factor, epsilon)
	b.visual.Y = approach(b.visual.Y, b.logical.Y, factor, epsilon)
	b.visual.Z = approach(b.visual.Z, b.logical.Z, factor, epsilon)
	return b.visual != before
}

func approach(current, target, factor, epsilon float64) float64 {
	delta := target - current
	if math.Abs(delta) < epsilon {
		return target
	}
	next := current + delta*factor
	if math.Abs(target-next) < epsilon {
		return target
	}
	return next
}

// UpdateDrawOrder recomputes the draw order from the visual position
func (b *Body) UpdateDrawOrder(w config.DrawOrderWeights) {
	b.drawOrder = ComputeDrawOrder(b.visual, w, baseOffset(b.kind, w))
}

// ComputeDrawOrder returns round(y*Ky + x*Kx + z*Kz) + base
func ComputeDrawOrder(v Vec3, w config.DrawOrderWeights, base int64) int64 {
	return int64(math.Round(v.Y*w.Y+v.X*w.X+v.Z*w.Z)) + base
}

func baseOffset(kind Kind, w config.DrawOrderWeights) int64 {
	switch kind {
	case KindTile:
		return w.TileBase
	case KindAvatar:
		return w.AvatarBase
	default:
		return w.FurnitureBase
	}
}
