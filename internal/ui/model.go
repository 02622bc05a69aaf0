package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/fileman/internal/filesystem"
	"github.com/dustin/go-humanize"
)

const (
	maxLogLines    = 100
	updateInterval = 100 * time.Millisecond
)

//nolint:gochecknoglobals
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// TransferProgressMsg is a [tea.Msg] carrying a snapshot of the observed
// transfer.
type TransferProgressMsg struct {
	t     time.Time
	stats filesystem.TransferStats
}

// TeaModel is the principal [tea.Model] for the command-line user interface.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	uiHandler *Handler
	title     string
	transfer  *filesystem.TransferInfo

	contentWidth int

	stats        filesystem.TransferStats
	progressBar  progress.Model
	logsViewport viewport.Model
	logs         []string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel] observing transfer.
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, title string, transfer *filesystem.TransferInfo, cancel context.CancelFunc) TeaModel {
	return TeaModel{
		uiHandler:    uiHandler,
		title:        title,
		transfer:     transfer,
		cancel:       cancel,
		progressBar:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(80)),
		logsViewport: viewport.New(80, 20),
		logs:         make([]string, 0, maxLogLines),
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		updateTransferProgress(m.transfer),
	)
}

// updateTransferProgress schedules the next [TransferProgressMsg].
func updateTransferProgress(transfer *filesystem.TransferInfo) tea.Cmd {
	return tea.Tick(updateInterval, func(t time.Time) tea.Msg {
		return TransferProgressMsg{
			t:     t,
			stats: transfer.Stats(),
		}
	})
}

// Update is the principal message handling method of the model.
//
//nolint:mnd,ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.contentWidth = m.width - 2

		m.progressBar.Width = m.contentWidth

		// The transfer panel has a fixed height, the logs take the rest.
		m.logsViewport.Width = m.contentWidth
		m.logsViewport.Height = max(m.height-15, 3)
		m.refreshLogs()

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case TransferProgressMsg:
		m.stats = msg.stats

		cmds = append(cmds,
			m.progressBar.SetPercent(m.stats.Percentage/100),
			updateTransferProgress(m.transfer),
		)

	case LogMsg:
		if len(m.logs) >= maxLogLines {
			m.logs = m.logs[1:]
		}
		m.logs = append(m.logs, string(msg))
		m.refreshLogs()

	case progress.FrameMsg:
		updated, cmd := m.progressBar.Update(msg)
		if progressModel, ok := updated.(progress.Model); ok {
			m.progressBar = progressModel
		}
		cmds = append(cmds, cmd)
	}

	m.logsViewport, cmd = m.logsViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *TeaModel) refreshLogs() {
	if len(m.logs) == 0 {
		return
	}

	logs := lipgloss.NewStyle().
		Width(m.logsViewport.Width).
		Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))

	m.logsViewport.SetContent(logs)
	m.logsViewport.GotoBottom()
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	transferSection := borderStyle.
		Width(m.contentWidth).
		Render(m.formatTransferView())

	logsSection := borderStyle.
		Width(m.contentWidth).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.contentWidth).Render("Process Information"),
				lipgloss.NewStyle().Width(m.contentWidth).Render(m.logsViewport.View()),
			),
		)

	helpSection := helpStyle.
		Width(m.contentWidth).
		Render("q: quit gui • ctrl+c: cancel operation")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		transferSection,
		logsSection,
		helpSection,
	)
}

func (m TeaModel) formatTransferView() string {
	s := m.stats

	var details string

	switch {
	case !s.Started:
		details = "Measuring...\n"

	case !s.Finished:
		details = fmt.Sprintf(
			"Progress: %.2f%% (%s/%s)\n"+
				"Items: %d/%d\n"+
				"Current: %s\n"+
				"Time: Elapsed=%v, Remaining=%v\n"+
				"Speed: %s/s\n",
			s.Percentage,
			humanize.Bytes(s.BytesTransferred),
			humanize.Bytes(s.BytesTotal),
			s.ItemsDone,
			s.ItemsTotal,
			s.CurrentPath,
			s.Elapsed.Truncate(time.Second),
			s.TimeRemaining,
			humanize.Bytes(uint64(s.TransferRate)),
		)

	default:
		details = fmt.Sprintf(
			"Progress: %.2f%% (%s/%s)\n"+
				"Items: %d/%d\n"+
				"Time: Finished after %v\n",
			s.Percentage,
			humanize.Bytes(s.BytesTransferred),
			humanize.Bytes(s.BytesTotal),
			s.ItemsDone,
			s.ItemsTotal,
			s.Elapsed.Truncate(time.Millisecond),
		)
	}

	content := []string{
		titleStyle.Width(m.contentWidth).Render(m.title),
		"",
		m.progressBar.View(),
		"",
		infoStyle.Width(m.contentWidth).Render(details),
	}

	if s.Err != nil {
		content = append(content, errorStyle.Width(m.contentWidth).Render("Error: "+s.Err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, content...)
}
