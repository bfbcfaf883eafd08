package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/tsouverin/simulation-numerique-25-26/internal/sim"
	"github.com/tsouverin/simulation-numerique-25-26/internal/stellar"
	"github.com/tsouverin/simulation-numerique-25-26/internal/view"
)

const (
	canvasCols = 96
	canvasRows = 32
)

type TickMsg time.Time

// Model is the live bubbletea view. It owns the frame cadence: each
// tick updates the camera parameters, advances the driver by the
// smoothed time step, and recomposes the render frame.
type Model struct {
	driver *sim.Driver
	cam    *view.Camera
	hz     stellar.HabitableZoneFunc

	canvas    *Canvas
	theme     Theme
	frameRate int

	running  bool
	showHelp bool

	frame *view.Frame
	fatal error
}

func NewModel(driver *sim.Driver, cam *view.Camera, hz stellar.HabitableZoneFunc, theme Theme, frameRate int) Model {
	if frameRate <= 0 {
		frameRate = 60
	}
	return Model{
		driver:    driver,
		cam:       cam,
		hz:        hz,
		canvas:    NewCanvas(canvasCols, canvasRows),
		theme:     theme,
		frameRate: frameRate,
		running:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "+", "=":
			m.cam.SetZoomTarget(m.cam.ZoomTarget() * 1.25)
		case "-", "_":
			m.cam.SetZoomTarget(m.cam.ZoomTarget() / 1.25)
		case ">", ".":
			m.cam.SetTimeStepTarget(m.cam.TimeStepTarget() * 1.5)
		case "<", ",":
			m.cam.SetTimeStepTarget(m.cam.TimeStepTarget() / 1.5)
		case "0":
			m.cam.Track(nil)
		case "s":
			m.cam.Track(m.driver.System().Star)
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "?":
			m.showHelp = !m.showHelp
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				planets := m.driver.System().Planets
				if n := int(s[0] - '0'); n <= len(planets) {
					m.cam.Track(planets[n-1])
				}
			}
		}
	case TickMsg:
		m.cam.Update()
		if m.running {
			// Integration failures are recoverable: the frame is
			// skipped and the previous valid state is drawn.
			m.driver.Advance(m.cam.TimeStep())
		}
		frame, err := view.Compose(m.cam, m.driver.System(), m.hz)
		if err != nil {
			m.fatal = err
			return m, tea.Quit
		}
		m.frame = frame
		return m, m.tick()
	}
	return m, nil
}

// Err returns the error that terminated the view, if any.
func (m Model) Err() error { return m.fatal }

func (m Model) View() string {
	if m.fatal != nil {
		return m.theme.errStyle().Render("fatal: "+m.fatal.Error()) + "\n"
	}
	if m.frame == nil {
		return "starting..."
	}

	m.drawFrame()

	left := m.theme.canvasStyle().Render(strings.TrimRight(m.canvas.String(), "\n"))
	right := m.theme.statsStyle().Render(m.statsPanel())
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	footer := m.helpLine()
	if m.showHelp {
		footer = m.helpPanel()
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, m.theme.helpStyle().Render(footer))
}

func (m Model) drawFrame() {
	m.canvas.Clear()
	f := m.frame

	sx, sy := int(f.Star.Pos.X), int(f.Star.Pos.Y)
	if f.HZOuterPx > 0 {
		m.canvas.DrawCircle(sx, sy, int(f.HZInnerPx))
		m.canvas.DrawCircle(sx, sy, int(f.HZOuterPx))
	}

	for _, p := range f.Planets {
		for i := 1; i < len(p.Trail); i++ {
			m.canvas.DrawLine(int(p.Trail[i-1].X), int(p.Trail[i-1].Y), int(p.Trail[i].X), int(p.Trail[i].Y))
		}
		if p.InfluencePx > 0 {
			m.canvas.DrawCircle(int(p.Pos.X), int(p.Pos.Y), int(p.InfluencePx))
		}
		m.canvas.FillDot(int(p.Pos.X), int(p.Pos.Y), p.Size/2)
	}

	m.canvas.FillDot(sx, sy, f.Star.Size/2)
}

func (m Model) statsPanel() string {
	var b strings.Builder
	label := m.theme.labelStyle()
	value := m.theme.valueStyle()

	b.WriteString(m.theme.headerStyle().Render("systeme stellaire") + "\n\n")

	days := m.driver.Time() / 86400
	b.WriteString(label.Render("temps") + value.Render(fmt.Sprintf("%.1f j (%.2f a)", days, days/365.25)) + "\n")
	b.WriteString(label.Render("zoom") + value.Render(fmt.Sprintf("%.2fx", m.frame.Zoom)) + "\n")
	b.WriteString(label.Render("pas") + value.Render(fmt.Sprintf("%.2f j", m.frame.TimeStep/86400)) + "\n")

	tracked := "origine"
	if t := m.cam.Tracked(); t != nil {
		tracked = t.Name
	}
	b.WriteString(label.Render("suivi") + m.theme.accentStyle().Render(tracked) + "\n")
	b.WriteString(label.Render("derive E") + value.Render(fmt.Sprintf("%.2e", m.driver.MaxDrift())) + "\n")

	status := "en cours"
	if !m.running {
		status = "pause"
	}
	b.WriteString(label.Render("etat") + value.Render(status) + "\n")

	if err := m.driver.LastErr(); err != nil {
		var fe *sim.FrameError
		if errors.As(err, &fe) {
			b.WriteString("\n" + m.theme.errStyle().Render(fmt.Sprintf("pas refuse (frame %d)", fe.Frame)) + "\n")
		}
	}

	b.WriteString("\n" + m.legend() + "\n")

	if hist := m.driver.DriftHistory(); len(hist) > 2 {
		b.WriteString("\n" + asciigraph.Plot(hist,
			asciigraph.Height(5),
			asciigraph.Width(34),
			asciigraph.Caption("derive d'energie"),
		))
	}

	return b.String()
}

func (m Model) legend() string {
	var b strings.Builder
	for i, p := range m.driver.System().Planets {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("●")
		b.WriteString(fmt.Sprintf("%s %d %s  ", dot, i+1, p.Name))
		if (i+1)%2 == 0 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n ")
}

func (m Model) helpLine() string {
	return "espace pause · +/- zoom · </> pas · 1-9 suivre · s etoile · 0 origine · t theme · ? aide · q quitter"
}

func (m Model) helpPanel() string {
	return strings.Join([]string{
		"espace   pause/reprise",
		"+/-      cible de zoom",
		"</>      cible du pas de temps",
		"1-9      suivre la planete n",
		"s        suivre l'etoile",
		"0        recentrer sur l'origine",
		"t        theme suivant",
		"q        quitter",
	}, "\n")
}

// RunLive drives the interactive session and returns the error that
// ended it, if any. A habitable-zone failure ends the session; it
// reveals a bug in the caller-supplied function.
func RunLive(driver *sim.Driver, cam *view.Camera, hz stellar.HabitableZoneFunc, theme Theme, frameRate int) error {
	// The camera projects into the canvas sub-pixel space.
	cam.Width = canvasCols * 2
	cam.Height = canvasRows * 4

	m := NewModel(driver, cam, hz, theme, frameRate)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
