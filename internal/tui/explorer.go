// Package tui provides an interactive parameter explorer: adjust the
// equilibrium and watch every stability verdict update live.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plasmakit/tokaval/internal/mhd"
	"github.com/plasmakit/tokaval/internal/plasma"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type paramField struct {
	label string
	value float64
	step  float64
}

type model struct {
	fields []paramField
	cursor int

	editing bool
	editBuf string

	lim mhd.Limits
	rep mhd.Report
	err error

	width  int
	height int
}

// field indices, matching the order in newFields
const (
	fieldBeta = iota
	fieldCurrent
	fieldField
	fieldMinor
	fieldMajor
	fieldQ0
	fieldQ95
	fieldKappa
	fieldDelta
)

func newFields(eq plasma.Equilibrium) []paramField {
	return []paramField{
		{"beta", eq.Beta, 0.001},
		{"Ip [MA]", eq.CurrentMA(), 1.0},
		{"B [T]", eq.Field, 0.5},
		{"a [m]", eq.MinorRadius, 0.1},
		{"R [m]", eq.MajorRadius, 0.1},
		{"q0", eq.Q0, 0.05},
		{"q95", eq.Q95, 0.1},
		{"kappa", eq.Elongation, 0.1},
		{"delta", eq.Triangularity, 0.05},
	}
}

func newModel(eq plasma.Equilibrium, lim mhd.Limits) *model {
	m := &model{
		fields: newFields(eq),
		lim:    lim,
		width:  80,
		height: 24,
	}
	m.recompute()
	return m
}

func (m *model) equilibrium() (plasma.Equilibrium, error) {
	return plasma.New(plasma.Equilibrium{
		Beta:          m.fields[fieldBeta].value,
		Current:       m.fields[fieldCurrent].value * 1e6,
		Field:         m.fields[fieldField].value,
		MinorRadius:   m.fields[fieldMinor].value,
		MajorRadius:   m.fields[fieldMajor].value,
		Q0:            m.fields[fieldQ0].value,
		Q95:           m.fields[fieldQ95].value,
		Elongation:    m.fields[fieldKappa].value,
		Triangularity: m.fields[fieldDelta].value,
	})
}

func (m *model) recompute() {
	eq, err := m.equilibrium()
	m.err = err
	if err != nil {
		return
	}
	m.rep = mhd.Run(eq, m.lim)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.editing {
		switch key {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				m.fields[m.cursor].value = v
				m.recompute()
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(key) == 1 && (key[0] >= '0' && key[0] <= '9' || key == "." || key == "-") {
				m.editBuf += key
			}
		}
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "left", "h":
		m.fields[m.cursor].value -= m.fields[m.cursor].step
		m.recompute()
	case "right", "l":
		m.fields[m.cursor].value += m.fields[m.cursor].step
		m.recompute()
	case "enter":
		m.editing = true
		m.editBuf = ""
	case "r":
		m.fields = newFields(plasma.Reference())
		m.recompute()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("tokaval") + dim.Render("  ·  stability explorer") + "\n\n")

	left := m.renderParams()
	right := m.renderVerdicts()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(yellow.Render(fmt.Sprintf("  %s = %s_", m.fields[m.cursor].label, m.editBuf)) + "\n")
	}
	b.WriteString(dim.Render("  ↑/↓ select · ←/→ adjust · enter edit · r reset · q quit"))
	return b.String()
}

func (m model) renderParams() string {
	var b strings.Builder
	b.WriteString(white.Render("parameters") + "\n")
	for i, f := range m.fields {
		marker := "  "
		line := fmt.Sprintf("%-8s %8.4g", f.label, f.value)
		if i == m.cursor {
			marker = cyan.Render("> ")
			line = white.Render(line)
		} else {
			line = dim.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}
	return b.String()
}

func (m model) renderVerdicts() string {
	var b strings.Builder
	b.WriteString(white.Render("stability") + "\n")

	if m.err != nil {
		b.WriteString(red.Render("invalid equilibrium") + "\n")
		b.WriteString(dim.Render(m.err.Error()) + "\n")
		return b.String()
	}

	for _, res := range m.rep.Results {
		var status string
		switch res.Verdict {
		case mhd.Stable:
			status = green.Render("✓")
		case mhd.Unstable:
			status = red.Render("✗")
		default:
			status = yellow.Render("–")
		}
		b.WriteString(fmt.Sprintf("%s %-22s %+9.4g\n", status, res.Mode.Title(), res.Margin()))
	}

	b.WriteString("\n")
	if m.rep.Stable {
		b.WriteString(green.Render("DESIGN FEASIBLE") + "\n")
	} else {
		b.WriteString(red.Render("NOT FEASIBLE") + "\n")
	}
	b.WriteString(dim.Render(fmt.Sprintf("P(disrupt) %.2e", m.rep.DisruptionProbability)) + "\n")
	return b.String()
}

// Run starts the explorer on the given equilibrium.
func Run(eq plasma.Equilibrium, lim mhd.Limits) error {
	p := tea.NewProgram(newModel(eq, lim), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
