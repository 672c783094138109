package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/deeporbit/internal/nearearth"
	"github.com/san-kum/deeporbit/internal/orbit"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type elementField struct {
	name string
	get  func(orbit.Elements) float64
}

var elementFields = []elementField{
	{"eccentricity", func(el orbit.Elements) float64 { return el.Eccentricity }},
	{"inclination", func(el orbit.Elements) float64 { return el.Inclination }},
	{"mean anomaly", func(el orbit.Elements) float64 { return orbit.Mod2Pi(el.MeanAnomaly) }},
	{"raan", func(el orbit.Elements) float64 { return el.RAAN }},
	{"arg perigee", func(el orbit.Elements) float64 { return el.ArgPerigee }},
	{"mean motion", func(el orbit.Elements) float64 { return el.MeanMotion }},
}

// Model steps a propagation forward in wall time and renders the element
// set with a history graph of the selected element.
type Model struct {
	driver   *nearearth.Driver
	name     string
	t        float64
	step     float64
	stop     float64
	current  orbit.Elements
	history  [][]float64 // one ring per element field
	running  bool
	selected int
	err      error
}

func NewModel(driver *nearearth.Driver, name string, step, stop float64) Model {
	history := make([][]float64, len(elementFields))
	for i := range history {
		history[i] = make([]float64, 0, historyCapacity)
	}
	return Model{
		driver:  driver,
		name:    name,
		step:    step,
		stop:    stop,
		history: history,
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "tab":
			m.selected = (m.selected + 1) % len(elementFields)
		case "r":
			m.t = 0
			for i := range m.history {
				m.history[i] = m.history[i][:0]
			}
		}
	case TickMsg:
		if m.running && m.err == nil && m.t <= m.stop {
			el, err := m.driver.PropagateTo(m.t)
			if err != nil {
				m.err = err
			} else {
				m.current = el
				for i, f := range elementFields {
					m.history[i] = append(m.history[i], f.get(el))
					if len(m.history[i]) > historyCapacity {
						m.history[i] = m.history[i][1:]
					}
				}
				m.t += m.step
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	regime := m.driver.DeepSpace().Regime()
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  [%s]  t=%.0f min", m.name, regime, m.t)))
	b.WriteString("\n")

	for i, f := range elementFields {
		label := labelStyle.Render(f.name)
		value := valueStyle.Render(fmt.Sprintf("%14.9f", f.get(m.current)))
		if i == m.selected {
			value = activeStyle.Render(fmt.Sprintf("%14.9f", f.get(m.current)))
		}
		b.WriteString(label + value + "\n")
	}

	if h := m.history[m.selected]; len(h) > 1 {
		graph := asciigraph.Plot(h, asciigraph.Height(10), asciigraph.Width(60))
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(fmt.Sprintf("error: %v\n", m.err))
	}

	b.WriteString(helpStyle.Render("space pause · tab select element · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}
