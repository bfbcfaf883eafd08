// Package view maps simulation state to viewport coordinates: the
// smoothed zoom and time-step parameters, the tracked target, the
// world-to-screen transform, and the per-frame geometry handed to the
// rendering layer.
package view

import (
	"github.com/tsouverin/simulation-numerique-25-26/internal/body"
)

// Scale is the fixed meters-to-pixel factor at zoom 1.
const Scale = 2e-10

// Parameter bounds and smoothing factors.
const (
	ZoomMin = 0.5
	ZoomMax = 80.0
	DtMin   = 3600.0   // 1 hour
	DtMax   = 604800.0 // 7 days

	zoomAlpha = 0.15
	dtBeta    = 0.2
)

// Camera smooths user-requested zoom and time-step targets toward
// their current values and centers the viewport on the tracked body,
// or on the origin when none is tracked. It holds a reference to the
// tracked body, never a copy, so the center follows live position
// updates.
type Camera struct {
	Width  int // viewport width, px
	Height int // viewport height, px

	zoom       float64
	zoomTarget float64
	dt         float64
	dtTarget   float64

	target *body.Body
}

// NewCamera starts at zoom 1 with the requested initial time step,
// clamped into range before the first frame.
func NewCamera(width, height int, dt float64) *Camera {
	dt = clamp(dt, DtMin, DtMax)
	return &Camera{
		Width:      width,
		Height:     height,
		zoom:       1.0,
		zoomTarget: 1.0,
		dt:         dt,
		dtTarget:   dt,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c *Camera) Zoom() float64       { return c.zoom }
func (c *Camera) ZoomTarget() float64 { return c.zoomTarget }
func (c *Camera) TimeStep() float64   { return c.dt }
func (c *Camera) TimeStepTarget() float64 { return c.dtTarget }

// SetZoomTarget clamps and records the requested zoom.
func (c *Camera) SetZoomTarget(z float64) {
	c.zoomTarget = clamp(z, ZoomMin, ZoomMax)
}

// SetTimeStepTarget clamps and records the requested time step in
// seconds.
func (c *Camera) SetTimeStepTarget(dt float64) {
	c.dtTarget = clamp(dt, DtMin, DtMax)
}

// Track selects the body the camera follows; nil recenters on the
// origin.
func (c *Camera) Track(b *body.Body) { c.target = b }

func (c *Camera) Tracked() *body.Body { return c.target }

// Update applies one frame of first-order smoothing toward the
// targets. Convergence is monotonic with no overshoot.
func (c *Camera) Update() {
	c.zoom += zoomAlpha * (c.zoomTarget - c.zoom)
	c.dt += dtBeta * (c.dtTarget - c.dt)
}

// Center returns the camera center in world coordinates.
func (c *Camera) Center() body.Vec2 {
	if c.target == nil {
		return body.Vec2{}
	}
	return c.target.Position
}

// WorldToScreen maps a world position (m) to viewport pixels. The same
// transform serves bodies, trails, and zone rings.
func (c *Camera) WorldToScreen(p body.Vec2) (float64, float64) {
	center := c.Center()
	sx := (p.X-center.X)*Scale*c.zoom + float64(c.Width)/2
	sy := (p.Y-center.Y)*Scale*c.zoom + float64(c.Height)/2
	return sx, sy
}

// ScreenToWorld inverts WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float64) body.Vec2 {
	center := c.Center()
	return body.Vec2{
		X: (sx-float64(c.Width)/2)/(Scale*c.zoom) + center.X,
		Y: (sy-float64(c.Height)/2)/(Scale*c.zoom) + center.Y,
	}
}

// RadiusToPixels converts a world radius (m) to pixels at the current
// zoom.
func (c *Camera) RadiusToPixels(r float64) float64 {
	return r * Scale * c.zoom
}
