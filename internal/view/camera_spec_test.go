package view_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tsouverin/simulation-numerique-25-26/internal/body"
	"github.com/tsouverin/simulation-numerique-25-26/internal/view"
)

var _ = Describe("Camera", func() {
	var cam *view.Camera

	BeforeEach(func() {
		cam = view.NewCamera(1200, 900, 86400)
	})

	Describe("zoom smoothing", func() {
		It("converges monotonically to the target without overshoot", func() {
			cam.SetZoomTarget(80.0)

			prev := cam.Zoom()
			for i := 0; i < 200; i++ {
				cam.Update()
				z := cam.Zoom()
				Expect(z).To(BeNumerically(">=", prev), "zoom must increase monotonically")
				Expect(z).To(BeNumerically("<=", 80.0), "zoom must never overshoot the target")
				prev = z
			}
			Expect(cam.Zoom()).To(BeNumerically("~", 80.0, 1e-6))
		})

		It("clamps the target into bounds", func() {
			cam.SetZoomTarget(1000)
			Expect(cam.ZoomTarget()).To(Equal(view.ZoomMax))
			cam.SetZoomTarget(0.01)
			Expect(cam.ZoomTarget()).To(Equal(view.ZoomMin))
		})
	})

	Describe("time-step smoothing", func() {
		It("clamps an out-of-range initial value before the first frame", func() {
			c := view.NewCamera(1200, 900, 10)
			Expect(c.TimeStep()).To(Equal(view.DtMin))

			c = view.NewCamera(1200, 900, 1e9)
			Expect(c.TimeStep()).To(Equal(view.DtMax))
		})

		It("approaches the target with factor 0.2", func() {
			cam.SetTimeStepTarget(view.DtMax)
			before := cam.TimeStep()
			cam.Update()
			Expect(cam.TimeStep()).To(BeNumerically("~", before+0.2*(view.DtMax-before), 1e-9))
		})
	})

	Describe("tracking", func() {
		It("centers on the origin when nothing is tracked", func() {
			Expect(cam.Center()).To(Equal(body.Vec2{}))
		})

		It("follows the live position of the tracked body", func() {
			b := &body.Body{Name: "p", Mass: 1, Position: body.Vec2{X: 1e11}}
			cam.Track(b)
			Expect(cam.Center().X).To(Equal(1e11))

			b.Position.X = 2e11
			Expect(cam.Center().X).To(Equal(2e11), "camera must hold a reference, not a copy")
		})
	})

	Describe("coordinate transform", func() {
		It("round-trips world coordinates through the screen", func() {
			cam.SetZoomTarget(12.5)
			for i := 0; i < 50; i++ {
				cam.Update()
			}
			cam.Track(&body.Body{Name: "p", Mass: 1, Position: body.Vec2{X: 3e10, Y: -7e10}})

			p := body.Vec2{X: 1.496e11, Y: -4.2e10}
			sx, sy := cam.WorldToScreen(p)
			back := cam.ScreenToWorld(sx, sy)

			Expect(back.X).To(BeNumerically("~", p.X, 1e-2))
			Expect(back.Y).To(BeNumerically("~", p.Y, 1e-2))
		})

		It("places an untracked origin at the viewport center", func() {
			sx, sy := cam.WorldToScreen(body.Vec2{})
			Expect(sx).To(Equal(600.0))
			Expect(sy).To(Equal(450.0))
		})
	})
})
