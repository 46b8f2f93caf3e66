package entities

// Furniture is a placed item mirrored from the server
type Furniture struct {
	Body
	DefinitionID  string
	Rotation      int
	State         string
	ColorOverride string
	IsDoor        bool
	TargetRoomID  string

	// IsSelected drives the selection outline; it is never sent by the server
	IsSelected bool

	// Definition is nil when the catalog has no entry for DefinitionID
	Definition *ItemDefinition
}

// FurniturePatch carries the fields present in a furniture DTO. Nil fields
// were absent and leave the entity untouched.
type FurniturePatch struct {
	X             *float64
	Y             *float64
	Z             *float64
	DefinitionID  *string
	Rotation      *int
	State         *string
	ColorOverride *string
	IsDoor        *bool
	TargetRoomID  *string
}

// FurnitureChanges is the set of fields a merge actually changed
type FurnitureChanges uint16

// Furniture change flags
const (
	FurnitureChangedPosition FurnitureChanges = 1 << iota
	FurnitureChangedDefinition
	FurnitureChangedRotation
	FurnitureChangedState
	FurnitureChangedColor
	FurnitureChangedDoor
)

// Has reports whether any of the given flags are set
func (c FurnitureChanges) Has(flags FurnitureChanges) bool {
	return c&flags != 0
}

// NewFurniture creates a furniture from a DTO. The visual position starts
// on the logical one.
func NewFurniture(id string, patch FurniturePatch, catalog *Catalog) *Furniture {
	f := &Furniture{Body: newBody(id, KindFurniture, Vec3{})}
	f.Merge(patch, catalog)
	f.SnapVisual()
	return f
}

// Merge applies the present fields of patch and reports which values
// differ from before. Definition is re-resolved when DefinitionID changes.
func (f *Furniture) Merge(patch FurniturePatch, catalog *Catalog) FurnitureChanges {
	var changes FurnitureChanges

	if mergePosition(&f.logical, patch.X, patch.Y, patch.Z) {
		changes |= FurnitureChangedPosition
	}
	if patch.DefinitionID != nil && (*patch.DefinitionID != f.DefinitionID || f.Definition == nil) {
		if *patch.DefinitionID != f.DefinitionID {
			changes |= FurnitureChangedDefinition
		}
		f.DefinitionID = *patch.DefinitionID
		f.Definition = nil
		if catalog != nil {
			if def, ok := catalog.Lookup(f.DefinitionID); ok {
				f.Definition = def
			}
		}
	}
	if patch.Rotation != nil {
		if r := NormalizeRotation(*patch.Rotation); r != f.Rotation {
			f.Rotation = r
			changes |= FurnitureChangedRotation
		}
	}
	if mergeValue(&f.State, patch.State) {
		changes |= FurnitureChangedState
	}
	if mergeValue(&f.ColorOverride, patch.ColorOverride) {
		changes |= FurnitureChangedColor
	}
	if mergeValue(&f.IsDoor, patch.IsDoor) {
		changes |= FurnitureChangedDoor
	}
	if mergeValue(&f.TargetRoomID, patch.TargetRoomID) {
		changes |= FurnitureChangedDoor
	}

	return changes
}

// Drawable reports whether the renderer has what it needs to draw this item
func (f *Furniture) Drawable() bool {
	return f.Definition != nil
}

// Interactable reports whether pointer actions may target this item
func (f *Furniture) Interactable() bool {
	return f.Definition != nil
}

// Footprint returns the rotated extent; unknown definitions occupy one cell
func (f *Furniture) Footprint() Footprint {
	if f.Definition == nil {
		return Footprint{Width: 1, Height: 1}
	}
	return f.Definition.Footprint(f.Rotation)
}

// Navigates reports whether clicking this item should change room
func (f *Furniture) Navigates() bool {
	return f.IsDoor && f.TargetRoomID != ""
}

func mergePosition(dst *Vec3, x, y, z *float64) bool {
	changed := mergeValue(&dst.X, x)
	changed = mergeValue(&dst.Y, y) || changed
	changed = mergeValue(&dst.Z, z) || changed
	return changed
}

func mergeValue[T comparable](dst *T, src *T) bool {
	if src == nil || *dst == *src {
		return false
	}
	*dst = *src
	return true
}
