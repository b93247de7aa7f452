// Package ui is the interactive front end: a simulated scan table and the
// assessment report view.
package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wifiguard/wifiguard/internal/attack"
	"github.com/wifiguard/wifiguard/internal/config"
	"github.com/wifiguard/wifiguard/internal/report"
	"github.com/wifiguard/wifiguard/internal/scan"
	"github.com/wifiguard/wifiguard/pkg/wifi"
)

// View selects which screen is showing.
type View int

const (
	ViewScan View = iota
	ViewReport
	ViewHelp
)

// App is the Bubble Tea model.
type App struct {
	cfg       *config.Config
	scanner   *scan.Simulator
	simulator *attack.Simulator
	ctx       context.Context
	cancel    context.CancelFunc

	view      View
	width     int
	height    int
	elapsed   time.Duration
	startTime time.Time

	networks []wifi.Network
	cursor   int

	assessment *attack.Assessment
}

type tickMsg time.Time
type scanUpdateMsg struct{}
type assessDoneMsg attack.Assessment

func NewApp(cfg *config.Config, scanner *scan.Simulator, simulator *attack.Simulator) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		cfg:       cfg,
		scanner:   scanner,
		simulator: simulator,
		ctx:       ctx,
		cancel:    cancel,
		view:      ViewScan,
		startTime: time.Now(),
	}
}

// Run starts the scanner and blocks in the TUI until quit.
func Run(a *App) error {
	if err := a.scanner.Start(a.ctx); err != nil {
		return err
	}
	defer a.scanner.Stop()

	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tickCmd(), scanUpdateCmd())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tickMsg:
		a.elapsed = time.Since(a.startTime)
		return a, tickCmd()

	case scanUpdateMsg:
		a.networks = a.scanner.Networks()
		if a.cursor >= len(a.networks) && len(a.networks) > 0 {
			a.cursor = len(a.networks) - 1
		}
		return a, scanUpdateCmd()

	case assessDoneMsg:
		asm := attack.Assessment(msg)
		a.assessment = &asm
		a.view = ViewReport
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		a.cancel()
		return a, tea.Quit

	case "?":
		if a.view == ViewHelp {
			a.view = ViewScan
		} else {
			a.view = ViewHelp
		}
		return a, nil

	case "esc":
		if a.view != ViewScan {
			a.view = ViewScan
		}
		return a, nil
	}

	if a.view != ViewScan {
		return a, nil
	}

	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.networks)-1 {
			a.cursor++
		}
	case "enter":
		if len(a.networks) > 0 {
			return a, a.startAssessment(a.networks[a.cursor])
		}
	}
	return a, nil
}

func (a *App) startAssessment(network wifi.Network) tea.Cmd {
	return func() tea.Msg {
		router := scan.RouterFor(network)
		return assessDoneMsg(a.simulator.Assess(network, router))
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func scanUpdateCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return scanUpdateMsg{}
	})
}

func (a *App) View() string {
	switch a.view {
	case ViewReport:
		return a.renderReportView()
	case ViewHelp:
		return a.renderHelpView()
	default:
		return a.renderScanView()
	}
}

func (a *App) renderScanView() string {
	s := a.renderHeader() + "\n"

	if len(a.networks) == 0 {
		s += "\n" + dimStyle.Render("  Simulating network discovery...") + "\n"
	} else {
		s += a.renderNetworkTable()
	}

	s += "\n" + a.renderFooter([]keyHint{
		{"Enter", "Assess"},
		{"↑/↓", "Select"},
		{"?", "Help"},
		{"q", "Quit"},
	})
	return s
}

func (a *App) renderHeader() string {
	title := bannerStyle.Render("wifiguard")
	status := statusBarStyle.Render(fmt.Sprintf(
		"simulated scan | Networks: %d | %s",
		len(a.networks), a.elapsed.Round(time.Second),
	))
	return borderStyle.Render(title + "  " + status)
}

func (a *App) renderNetworkTable() string {
	s := headerStyle.Render(fmt.Sprintf(
		"%-4s %-22s %-19s %3s %-7s %5s %-4s",
		"#", "SSID", "BSSID", "CH", "ENC", "PWR", "SIG",
	)) + "\n"

	for i, n := range a.networks {
		ssid := n.SSID
		if n.Hidden() {
			ssid = "<hidden>"
		}
		if len(ssid) > 20 {
			ssid = ssid[:20] + ".."
		}

		line := fmt.Sprintf("  %-4d %-22s %-19s %3d %-7s %5d %s",
			i+1, ssid, n.BSSID, n.Channel,
			report.EncryptionColor(n.Encryption.String()), n.Signal, report.SignalBar(n.Signal))

		if i == a.cursor {
			line = selectedRowStyle.Render(line)
		}
		s += line + "\n"
	}
	return s
}

func (a *App) renderReportView() string {
	if a.assessment == nil {
		return dimStyle.Render("  nothing assessed yet")
	}
	s := report.Render(*a.assessment)
	s += "\n" + a.renderFooter([]keyHint{
		{"Esc", "Back to scan"},
		{"q", "Quit"},
	})
	return s
}

func (a *App) renderHelpView() string {
	help := `
  wifiguard - educational WiFi password-risk simulator

  Everything here is simulated: networks are fabricated from static
  SSID patterns and "attacks" are closed-form estimates plus weighted
  randomness. Nothing touches the radio.

  Keys:
    Enter   assess the highlighted network
    ↑/↓ j/k move selection
    Esc     back to the scan table
    ?       toggle this help
    q       quit
`
	return borderStyle.Render(help)
}

type keyHint struct{ key, desc string }

func (a *App) renderFooter(hints []keyHint) string {
	s := "  "
	for i, h := range hints {
		if i > 0 {
			s += "  "
		}
		s += keyStyle.Render("["+h.key+"]") + " " + helpStyle.Render(h.desc)
	}
	return borderStyle.Render(s)
}
