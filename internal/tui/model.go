// Package tui runs the particle field in a terminal with Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/cymatics/internal/app"
	"github.com/iburimskiy/cymatics/internal/config"
	"github.com/iburimskiy/cymatics/internal/tone"
)

const (
	frameInterval = time.Second / 30
	chromeLines   = 2
)

var (
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#eeeeee")).Background(lipgloss.Color("#333333")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	ctrl    *app.Controller
	surface *Surface
	width   int
}

func New(ctrl *app.Controller) Model {
	return Model{ctrl: ctrl, surface: NewSurface(80, 24-chromeLines), width: 80}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.surface.Resize(msg.Width, msg.Height-chromeLines)
	case tickMsg:
		m.ctrl.Frame(m.surface)
		return m, tick()
	case tea.KeyMsg:
		m.ctrl.Gesture()
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	p := m.ctrl.Params()
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case " ":
		m.ctrl.TogglePlay()
	case "up":
		m.ctrl.SetFrequency(p.Frequency + 10)
	case "down":
		m.ctrl.SetFrequency(p.Frequency - 10)
	case "right":
		m.ctrl.SetFrequency(p.Frequency + 50)
	case "left":
		m.ctrl.SetFrequency(p.Frequency - 50)
	case "[":
		m.ctrl.SetDuration(p.Duration - config.DurationStep)
	case "]":
		m.ctrl.SetDuration(p.Duration + config.DurationStep)
	case "-":
		_ = m.ctrl.SetSampleRate(config.StepSampleRate(p.SampleRate, -1))
	case "+", "=":
		_ = m.ctrl.SetSampleRate(config.StepSampleRate(p.SampleRate, 1))
	}
	return nil
}

func (m Model) View() string {
	bg, fg := m.surface.Colors()
	field := lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg)).Render(m.surface.String())

	state := "paused"
	if m.ctrl.Playing() {
		state = "playing"
	}
	parts := []string{
		m.ctrl.FrequencyLabel(),
		m.ctrl.ModeLabel(),
		m.ctrl.SampleRateLabel(),
		m.ctrl.DurationLabel(),
		state,
	}
	if m.ctrl.AudioState() == tone.Suspended {
		parts = append(parts, "press any key to enable audio")
	}
	bar := barStyle.Width(m.width).Render(strings.Join(parts, " | "))

	var tail string
	if text, ok := m.ctrl.Status(); ok {
		tail = statusStyle.Render(text) + "  "
	}
	if err := m.ctrl.Err(); err != nil {
		tail += errStyle.Render(fmt.Sprintf("error: %v", err)) + "  "
	}
	tail += helpStyle.Render("space play/pause  arrows freq  [ ] duration  - + rate  q quit")

	return field + "\n" + bar + "\n" + tail
}
