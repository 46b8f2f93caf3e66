package entities

import "time"

// AvatarState is the animation state of an avatar
type AvatarState string

// Avatar states
const (
	AvatarIdle    AvatarState = "idle"
	AvatarWalking AvatarState = "walking"
	AvatarSitting AvatarState = "sitting"
	AvatarEmoting AvatarState = "emoting"
)

// ParseAvatarState maps wire values onto a known state, defaulting to idle
func ParseAvatarState(s string) AvatarState {
	switch AvatarState(s) {
	case AvatarWalking, AvatarSitting, AvatarEmoting:
		return AvatarState(s)
	default:
		return AvatarIdle
	}
}

// Avatar is a character in the room. NPCs are avatars with IsNPC set.
type Avatar struct {
	Body
	Name      string
	State     AvatarState
	Direction int
	BodyColor string
	IsAdmin   bool
	IsNPC     bool

	// SittingOnFurnitureID is a lookup key, not ownership
	SittingOnFurnitureID string

	// IsPlayer is true iff this is the session's own avatar
	IsPlayer bool

	// ServerEmoteID is the last emote id the server sent. Local expiry never
	// clears it, so a redelivered update merges as a no-op.
	ServerEmoteID string

	// CurrentEmoteID is the emote playing locally; EmoteEndTime is its
	// client-predicted end
	CurrentEmoteID string
	EmoteEndTime   time.Time
}

// AvatarPatch carries the fields present in an avatar DTO
type AvatarPatch struct {
	X                    *float64
	Y                    *float64
	Z                    *float64
	Name                 *string
	State                *AvatarState
	Direction            *int
	SittingOnFurnitureID *string
	BodyColor            *string
	IsAdmin              *bool
	IsNPC                *bool
	EmoteID              *string
}

// AvatarChanges is the set of fields a merge actually changed
type AvatarChanges uint16

// Avatar change flags
const (
	AvatarChangedPosition AvatarChanges = 1 << iota
	AvatarChangedState
	AvatarChangedDirection
	AvatarChangedSeat
	AvatarChangedAppearance
	AvatarChangedEmote
)

// Has reports whether any of the given flags are set
func (c AvatarChanges) Has(flags AvatarChanges) bool {
	return c&flags != 0
}

// NewAvatar creates an avatar from a DTO with visual on logical
func NewAvatar(id string, patch AvatarPatch) *Avatar {
	a := &Avatar{Body: newBody(id, KindAvatar, Vec3{}), State: AvatarIdle}
	a.Merge(patch)
	a.SnapVisual()
	return a
}

// Merge applies the present fields of patch and reports which values
// differ from before. EmoteID merges into ServerEmoteID only; the caller
// starts or clears the local emote.
func (a *Avatar) Merge(patch AvatarPatch) AvatarChanges {
	var changes AvatarChanges

	if mergePosition(&a.logical, patch.X, patch.Y, patch.Z) {
		changes |= AvatarChangedPosition
	}
	if mergeValue(&a.State, patch.State) {
		changes |= AvatarChangedState
	}
	if patch.Direction != nil {
		if d := NormalizeRotation(*patch.Direction); d != a.Direction {
			a.Direction = d
			changes |= AvatarChangedDirection
		}
	}
	if mergeValue(&a.SittingOnFurnitureID, patch.SittingOnFurnitureID) {
		changes |= AvatarChangedSeat
	}
	appearance := mergeValue(&a.Name, patch.Name)
	appearance = mergeValue(&a.BodyColor, patch.BodyColor) || appearance
	appearance = mergeValue(&a.IsAdmin, patch.IsAdmin) || appearance
	appearance = mergeValue(&a.IsNPC, patch.IsNPC) || appearance
	if appearance {
		changes |= AvatarChangedAppearance
	}
	if mergeValue(&a.ServerEmoteID, patch.EmoteID) {
		changes |= AvatarChangedEmote
	}

	return changes
}

// StartEmote records the emote end time and enters the emoting state
func (a *Avatar) StartEmote(emoteID string, end time.Time) {
	a.CurrentEmoteID = emoteID
	a.EmoteEndTime = end
	if emoteID != "" && a.State == AvatarIdle {
		a.State = AvatarEmoting
	}
}

// ExpireEmote clears an emote whose predicted end has passed. It reports
// whether anything changed.
func (a *Avatar) ExpireEmote(now time.Time) bool {
	if a.CurrentEmoteID == "" || now.Before(a.EmoteEndTime) {
		return false
	}
	a.ClearEmote()
	return true
}

// ClearEmote ends the current emote immediately
func (a *Avatar) ClearEmote() {
	a.CurrentEmoteID = ""
	a.EmoteEndTime = time.Time{}
	if a.State == AvatarEmoting {
		a.State = AvatarIdle
	}
}
