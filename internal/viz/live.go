package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/sim"
)

const (
	width           = 60
	height          = 30
	historyCapacity = 600
	DefaultFPS      = 60
	DefaultFade     = 10.0
)

type TickMsg time.Time

// Model renders a running simulator. Every tick draws the current bodies
// and then advances the simulator by the wall time elapsed since the
// previous tick.
type Model struct {
	sim           *sim.Simulator
	initial       dynamo.BodySet
	half          float64
	fps           int
	canvas        *Canvas
	trail         *Trail
	running       bool
	last          time.Time
	energyHistory []float64
	showHelp      bool
	err           error
}

type Options struct {
	Half float64
	FPS  int
	Fade float64
}

func NewModel(s *sim.Simulator, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Half <= 0 {
		opts.Half = 1
	}
	return Model{
		sim:     s,
		initial: s.Bodies(),
		half:    opts.Half,
		fps:     opts.FPS,
		canvas:  NewCanvas(width, height),
		trail:   NewTrail(width*2, height*4, opts.Fade),
		running: true,
	}
}

// Err returns the simulation error that stopped the model, if any.
func (m Model) Err() error { return m.err }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.last = time.Time{}
		case "r":
			m.reset()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		now := time.Time(msg)
		if m.running {
			var dt float64
			if !m.last.IsZero() {
				dt = now.Sub(m.last).Seconds()
			}
			m.last = now
			m.draw(dt)
			if err := m.advance(dt); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// draw fades the trails by this frame's dt, then paints the box outline
// and the current body positions.
func (m *Model) draw(dt float64) {
	m.trail.Decay(dt)
	m.canvas.Clear()
	m.canvas.Frame()
	for _, p := range m.sim.Bodies().Positions() {
		if x, y, ok := m.canvas.Project(p, m.half); ok {
			m.trail.Stamp(x, y)
		}
	}
	m.trail.Paint(m.canvas)
}

func (m *Model) advance(dt float64) error {
	if err := m.sim.Advance(dt); err != nil {
		return err
	}
	m.energyHistory = append(m.energyHistory, m.sim.Energy())
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
	return nil
}

func (m *Model) reset() {
	if err := m.sim.Reset(m.initial); err != nil {
		m.err = err
		return
	}
	m.trail.Clear()
	m.canvas.Clear()
	m.energyHistory = m.energyHistory[:0]
	m.last = time.Time{}
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("simulation stopped: %v", m.err)) + "\n"
	}

	status := runningStyle.Render("RUNNING")
	if !m.running {
		status = pausedStyle.Render("PAUSED")
	}

	var stats strings.Builder
	stats.WriteString(headerStyle.Render("THREEBODY") + "\n")
	stats.WriteString(labelStyle.Render("status") + status + "\n")
	stats.WriteString(labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.3f", m.sim.Time())) + "\n")
	stats.WriteString(labelStyle.Render("frame") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Frames())) + "\n")
	stats.WriteString(labelStyle.Render("energy") + valueStyle.Render(fmt.Sprintf("%.6f", m.sim.Energy())) + "\n")

	bodies := m.sim.Bodies()
	if g := m.sim.Gravity(); g != nil {
		p := g.Momentum(bodies)
		stats.WriteString(labelStyle.Render("momentum") + valueStyle.Render(fmt.Sprintf("(%+.4f, %+.4f)", p.X, p.Y)) + "\n")
		stats.WriteString(labelStyle.Render("ang mom") + valueStyle.Render(fmt.Sprintf("%+.6f", g.AngularMomentum(bodies))) + "\n")
	}
	for i, b := range bodies {
		stats.WriteString(labelStyle.Render(fmt.Sprintf("star %d", i)) +
			valueStyle.Render(fmt.Sprintf("(%+.3f, %+.3f)", b.Pos.X, b.Pos.Y)) + "\n")
	}

	if plot := EnergyPlot(m.energyHistory, 30, 4); plot != "" {
		stats.WriteString(graphStyle.Render(plot) + "\n")
	}

	if m.showHelp {
		stats.WriteString(helpStyle.Render("space  pause/resume\nr      reset\n?      help\nq      quit"))
	} else {
		stats.WriteString(helpStyle.Render("space pause • r reset • ? help • q quit"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)
}
