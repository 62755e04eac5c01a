package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/worktimer/internal/account"
	"github.com/faizmokh/worktimer/internal/format"
	"github.com/faizmokh/worktimer/internal/log"
)

const refreshInterval = time.Second

// Model owns Bubble Tea state for the dashboard. Account calls happen inside
// Update so the account is only ever touched from one goroutine.
type Model struct {
	acct   *account.Account
	logger *log.Logger

	keys keyMap
	help help.Model
	bar  progress.Model

	status account.Status
	mode   mode

	statusLine string
	warnLine   string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeConfirmReset
)

type tickMsg time.Time

// NewModel seeds the dashboard with the account it renders.
func NewModel(acct *account.Account, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Discard()
	}
	return Model{
		acct:   acct,
		logger: logger.WithComponent("ui"),
		keys:   defaultKeyMap(),
		help:   help.New(),
		bar: progress.New(
			progress.WithSolidFill(string(colorButton)),
			progress.WithWidth(40),
		),
		status: acct.Status(),
	}
}

// SetNotice shows a one-off message, such as a week rollover, on the first frame.
func (m *Model) SetNotice(notice string) {
	if notice != "" {
		m.warnLine = notice
	}
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update wires TUI state transitions from key presses and the refresh ticker.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.status = m.acct.Status()
		return m, tick()
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.bar.Width = max(10, min(60, msg.Width-12))
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirmReset {
		switch msg.String() {
		case "y", "Y":
			m.mode = modeNormal
			return m.reset()
		case "ctrl+c":
			return m, tea.Quit
		default:
			m.mode = modeNormal
			m.setInfo("Reset cancelled.")
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		return m.start()
	case key.Matches(msg, m.keys.Stop):
		return m.stop()
	case key.Matches(msg, m.keys.Reset):
		m.mode = modeConfirmReset
		m.clearLines()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m Model) start() (tea.Model, tea.Cmd) {
	outcome, err := m.acct.Start()
	m.showOutcome(outcome, outcome.Message(), err)
	return m, nil
}

func (m Model) stop() (tea.Model, tea.Cmd) {
	outcome, elapsed, err := m.acct.Stop()
	text := outcome.Message()
	if outcome == account.OutcomeStopped {
		text = fmt.Sprintf("Timer stopped. Duration: %s", format.Duration(elapsed))
	}
	m.showOutcome(outcome, text, err)
	return m, nil
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	outcome, err := m.acct.Reset()
	m.showOutcome(outcome, outcome.Message(), err)
	return m, nil
}

func (m *Model) showOutcome(outcome account.Outcome, text string, err error) {
	m.status = m.acct.Status()
	if outcome.IsNoop() {
		m.clearLines()
		m.warnLine = text
	} else {
		m.setInfo(text)
	}
	if err != nil {
		m.logger.Error("timer change not saved", "outcome", outcome.String(), "error", err)
		m.errorLine = fmt.Sprintf("Not saved: %v", err)
	}
}

func (m *Model) setInfo(text string) {
	m.clearLines()
	m.statusLine = text
}

func (m *Model) clearLines() {
	m.statusLine = ""
	m.warnLine = ""
	m.errorLine = ""
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the frame.
func (m Model) View() string {
	st := m.status
	var b strings.Builder

	b.WriteString(titleStyle.Render("Work Timer"))
	b.WriteString("\n\n")

	b.WriteString(row("Week Of:", st.WeekStart.Format("Monday, 02 January 2006")))
	b.WriteString(row("Total Hours This Week:", format.Clock(st.TotalHours*3600)))
	session := 0.0
	if st.Running {
		session = st.CurrentSessionSeconds
	}
	b.WriteString(row("Current Session:", format.Clock(session)))
	b.WriteString(row("Remaining Hours:", format.Clock(st.RemainingHours*3600)))

	state := stoppedStyle.Render("Stopped")
	if st.Running {
		state = runningStyle.Render("Running")
	}
	b.WriteString(labelStyle.Render("Status:"))
	b.WriteString(state)
	b.WriteString("\n\n")

	b.WriteString(m.bar.ViewAs(st.Progress()))
	b.WriteString(fmt.Sprintf("  of %s h goal\n\n", format.Hours(st.GoalHours)))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		buttonStyle.Render("[s] Start Timer"),
		buttonStyle.Render("[x] Stop Timer"),
		buttonStyle.Render("[r] Reset Timer"),
	))
	b.WriteString("\n")

	switch {
	case m.mode == modeConfirmReset:
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("Reset this week's total and discard any running session? (y/n)"))
		b.WriteByte('\n')
	case m.errorLine != "":
		if m.statusLine != "" {
			b.WriteString("\n")
			b.WriteString(infoStyle.Render(m.statusLine))
		}
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	case m.warnLine != "":
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(m.warnLine))
		b.WriteByte('\n')
	case m.statusLine != "":
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return frameStyle.Render(b.String())
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}
