package coords

import "math"

// Camera is the session-scoped view transform. Pan is in screen pixels and
// is applied after zoom.
type Camera struct {
	PanX float64
	PanY float64
	Zoom float64

	minZoom float64
	maxZoom float64
}

// NewCamera creates a camera at zoom 1 clamped to [minZoom, maxZoom]
func NewCamera(minZoom, maxZoom float64) *Camera {
	c := &Camera{minZoom: minZoom, maxZoom: maxZoom}
	c.SetZoom(1)
	return c
}

// Apply maps unzoomed pixels to final screen pixels
func (c Camera) Apply(raw Point) Point {
	return Point{
		X: raw.X*c.Zoom + c.PanX,
		Y: raw.Y*c.Zoom + c.PanY,
	}
}

// Invert maps final screen pixels back to unzoomed pixels
func (c Camera) Invert(screen Point) Point {
	return Point{
		X: (screen.X - c.PanX) / c.Zoom,
		Y: (screen.Y - c.PanY) / c.Zoom,
	}
}

// Pan shifts the view by a screen-pixel delta
func (c *Camera) Pan(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
}

// SetZoom sets the zoom clamped to the configured bounds
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = math.Max(c.minZoom, math.Min(c.maxZoom, zoom))
}

// ZoomAt multiplies the zoom by factor while keeping the content under the
// anchor pixel in place.
func (c *Camera) ZoomAt(factor float64, anchor Point) {
	before := c.Invert(anchor)
	c.SetZoom(c.Zoom * factor)
	c.PanX = anchor.X - before.X*c.Zoom
	c.PanY = anchor.Y - before.Y*c.Zoom
}

// CenterOn pans so that the unzoomed pixel target sits in the middle of a
// viewport of the given size.
func (c *Camera) CenterOn(target Point, viewportWidth, viewportHeight float64) {
	c.PanX = viewportWidth/2 - target.X*c.Zoom
	c.PanY = viewportHeight/2 - target.Y*c.Zoom
}
