package entities

// LayoutType is the terrain type of a grid cell
type LayoutType int

// Layout types as sent on the wire
const (
	LayoutFloor    LayoutType = 0
	LayoutWall     LayoutType = 1
	LayoutAltFloor LayoutType = 2
	LayoutHole     LayoutType = 3
)

// Known reports whether the value is one of the defined layout types
func (l LayoutType) Known() bool {
	switch l {
	case LayoutFloor, LayoutWall, LayoutAltFloor, LayoutHole:
		return true
	}
	return false
}

// Blocking reports whether nothing may stand or be placed on the cell
func (l LayoutType) Blocking() bool {
	return l == LayoutWall || l == LayoutHole
}

func (l LayoutType) String() string {
	switch l {
	case LayoutFloor:
		return "floor"
	case LayoutWall:
		return "wall"
	case LayoutAltFloor:
		return "alt_floor"
	case LayoutHole:
		return "hole"
	default:
		return "unknown"
	}
}
