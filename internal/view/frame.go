package view

import (
	"github.com/tsouverin/simulation-numerique-25-26/internal/body"
	"github.com/tsouverin/simulation-numerique-25-26/internal/stellar"
)

// Point is a screen-space position in pixels.
type Point struct {
	X, Y float64
}

// Sprite is the renderable projection of one body.
type Sprite struct {
	Name  string
	Color string
	Pos   Point
	Size  int

	Trail []Point

	// InfluencePx is the influence-ring radius in pixels, 0 when the
	// body has no cached influence radius.
	InfluencePx float64
}

// Frame is everything the rendering layer needs for one frame.
type Frame struct {
	Star    Sprite
	Planets []Sprite

	// Habitable-zone ring radii in pixels, 0 when no zone function is
	// installed.
	HZInnerPx float64
	HZOuterPx float64

	Zoom     float64
	TimeStep float64
}

// Compose projects the system through the camera into a Frame. The
// habitable-zone function, when present, is evaluated against the live
// star; its errors propagate to the caller untouched rather than being
// degraded into a missing ring.
func Compose(cam *Camera, sys *body.System, hz stellar.HabitableZoneFunc) (*Frame, error) {
	f := &Frame{
		Zoom:     cam.Zoom(),
		TimeStep: cam.TimeStep(),
		Planets:  make([]Sprite, 0, len(sys.Planets)),
	}

	f.Star = project(cam, sys.Star)

	if hz != nil {
		inner, outer, err := hz(sys.Star)
		if err != nil {
			return nil, err
		}
		f.HZInnerPx = cam.RadiusToPixels(inner)
		f.HZOuterPx = cam.RadiusToPixels(outer)
	}

	for _, p := range sys.Planets {
		f.Planets = append(f.Planets, project(cam, p))
	}

	return f, nil
}

func project(cam *Camera, b *body.Body) Sprite {
	sx, sy := cam.WorldToScreen(b.Position)
	s := Sprite{
		Name:  b.Name,
		Color: b.Color,
		Pos:   Point{sx, sy},
		Size:  b.Size,
	}
	if b.Influence > 0 {
		s.InfluencePx = cam.RadiusToPixels(b.Influence)
	}
	worldTrail := b.Trail().Points()
	if len(worldTrail) > 0 {
		s.Trail = make([]Point, len(worldTrail))
		for i, wp := range worldTrail {
			tx, ty := cam.WorldToScreen(wp)
			s.Trail[i] = Point{tx, ty}
		}
	}
	return s
}
