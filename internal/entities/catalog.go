package entities

import (
	"sort"
	"strings"
)

// ItemDefinition is a read-only catalog entry describing a furniture type
type ItemDefinition struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	IsFlat          bool    `json:"is_flat"`
	IsWalkable      bool    `json:"is_walkable"`
	CanSit          bool    `json:"can_sit"`
	CanUse          bool    `json:"can_use"`
	CanRecolor      bool    `json:"can_recolor"`
	Stackable       bool    `json:"stackable"`
	StackHeightUnit float64 `json:"stack_height_unit"`
	ZOffset         float64 `json:"z_offset"`
}

// Footprint is the width (x) by height (y) cell extent of an item
type Footprint struct {
	Width  int
	Height int
}

// Footprint returns the extent for a rotation. Quarter turns (2 and 6)
// swap width and height.
func (d *ItemDefinition) Footprint(rotation int) Footprint {
	fp := Footprint{Width: max(1, d.Width), Height: max(1, d.Height)}
	if r := NormalizeRotation(rotation); r == 2 || r == 6 {
		fp.Width, fp.Height = fp.Height, fp.Width
	}
	return fp
}

// Solid reports whether the item blocks walking
func (d *ItemDefinition) Solid() bool {
	return !d.IsWalkable && !d.IsFlat
}

// TopSurface returns the Z at which something stacked on this item rests
func (d *ItemDefinition) TopSurface(z float64) float64 {
	if d.IsFlat {
		return z
	}
	return z + d.StackHeightUnit
}

// NormalizeRotation maps any integer onto 0..7
func NormalizeRotation(r int) int {
	return ((r % 8) + 8) % 8
}

// Catalog is the immutable item-definition table plus the permitted
// recolor palette. Definitions returned from Lookup must not be modified.
type Catalog struct {
	defs     map[string]*ItemDefinition
	recolors []string
}

// NewCatalog copies the given definitions and palette
func NewCatalog(defs []ItemDefinition, recolors []string) *Catalog {
	c := &Catalog{
		defs:     make(map[string]*ItemDefinition, len(defs)),
		recolors: make([]string, 0, len(recolors)),
	}
	for i := range defs {
		def := defs[i]
		c.defs[def.ID] = &def
	}
	for _, hex := range recolors {
		c.recolors = append(c.recolors, strings.ToLower(hex))
	}
	return c
}

// Lookup finds a definition by id
func (c *Catalog) Lookup(id string) (*ItemDefinition, bool) {
	def, ok := c.defs[id]
	return def, ok
}

// Len returns the number of definitions
func (c *Catalog) Len() int {
	return len(c.defs)
}

// IDs returns all definition ids in sorted order
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.defs))
	for id := range c.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Recolors returns a copy of the permitted recolor palette
func (c *Catalog) Recolors() []string {
	return append([]string(nil), c.recolors...)
}

// RecolorAllowed reports whether hex is in the palette. The empty string
// resets to the default color and is always allowed.
func (c *Catalog) RecolorAllowed(hex string) bool {
	if hex == "" {
		return true
	}
	hex = strings.ToLower(hex)
	for _, allowed := range c.recolors {
		if allowed == hex {
			return true
		}
	}
	return false
}
