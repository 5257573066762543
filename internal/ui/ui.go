package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/user/sysmon/internal/config"
	"github.com/user/sysmon/internal/format"
	"github.com/user/sysmon/internal/model"
	"github.com/user/sysmon/internal/sampler"
)

// Model renders live samples from the sampler.
type Model struct {
	latest    model.Sample
	stream    <-chan model.Sample
	ctxCancel context.CancelFunc
	width     int
	height    int
}

func New(cfg config.Config, log *zap.Logger) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	s := sampler.New(cfg.Interval, log)
	return &Model{
		latest:    model.Zero(),
		stream:    s.Stream(ctx),
		ctxCancel: cancel,
		width:     80,
		height:    24,
	}
}

// Messages
type tickMsg struct{}

func tickCmd() tea.Cmd { return tea.Tick(time.Second/5, func(time.Time) tea.Msg { return tickMsg{} }) }

func (m *Model) Init() tea.Cmd { return tickCmd() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.ctxCancel()
			return m, tea.Quit
		}
	case tickMsg:
		select {
		case samp, ok := <-m.stream:
			if ok {
				m.latest = samp
			}
		default:
		}
		return m, tickCmd()
	}
	return m, nil
}

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	gaugeFill   = "█"
	gaugeEmpty  = "░"
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1).
			MarginRight(1)
)

func (m *Model) View() string {
	s := m.latest
	header := titleStyle.Render("System Monitor") + "  " +
		subtleStyle.Render(s.Timestamp.Format("Mon Jan 2 15:04:05 MST 2006")) + "  " +
		subtleStyle.Render("up "+formatUptime(s.UptimeSecs))

	cpuCard := card("CPU",
		fmt.Sprintf("%s  load %.2f %.2f %.2f",
			gaugeBar(s.CPU.Percent, 28),
			s.Load.Load1, s.Load.Load5, s.Load.Load15))

	memCard := card("Memory",
		fmt.Sprintf("%s  %s / %s | Swap %3.0f%%",
			gaugeBar(s.Memory.Percent, 28),
			format.Size(s.Memory.UsedBytes),
			format.Size(s.Memory.TotalBytes),
			pct(s.Memory.SwapUsed, s.Memory.SwapTotal)))

	row := lipgloss.JoinHorizontal(lipgloss.Top, cpuCard, memCard)
	footer := subtleStyle.Render("q to quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, row, footer)
}

// Helpers
func gaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int((pct / 100) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %5.1f%%",
		strings.Repeat(gaugeFill, filled),
		strings.Repeat(gaugeEmpty, width-filled),
		pct)
}

func card(title, body string) string {
	return cardStyle.Render(labelStyle.Render(title) + "\n" + body)
}

func pct(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) * 100 / float64(total)
}

func formatUptime(secs uint64) string {
	d := secs / 86400
	h := (secs % 86400) / 3600
	m := (secs % 3600) / 60
	if d > 0 {
		return fmt.Sprintf("%dd %dh %dm", d, h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// Run starts the Bubble Tea program in the alt screen.
func Run(cfg config.Config, log *zap.Logger) error {
	prog := tea.NewProgram(New(cfg, log), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
