package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/careers2017uae-bot/SmartDiago/cmd/smartdiago/wizard/components"
	"github.com/careers2017uae-bot/SmartDiago/internal/session"
)

var (
	timelineTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")).
		Bold(true)

	timelineBodyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	timelineHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Italic(true)
)

// TimelineScreen is a read-only preview of the committed report blocks.
type TimelineScreen struct {
	entries   []session.Entry
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewTimelineScreen creates the preview for the given entries.
func NewTimelineScreen(entries []session.Entry) *TimelineScreen {
	return &TimelineScreen{entries: entries}
}

// Init implements tea.Model
func (s *TimelineScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *TimelineScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc", "enter", "q":
			s.done = true
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *TimelineScreen) View() string {
	var sb strings.Builder

	sb.WriteString(components.TitleStyle.Render("REPORT TIMELINE"))
	sb.WriteString("\n\n")

	if len(s.entries) == 0 {
		sb.WriteString(timelineHintStyle.Render("Nothing committed yet. Rendering now would auto-populate the four core blocks."))
	} else {
		for i, e := range s.entries {
			sb.WriteString(timelineTitleStyle.Render(fmt.Sprintf("%d. %s", i+1, e.Title)))
			sb.WriteString("\n")
			sb.WriteString(timelineBodyStyle.Render(previewText(e.Content)))
			sb.WriteString("\n\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(timelineHintStyle.Render("Press Enter to return to the menu"))

	return sb.String()
}

// Done returns true if the user is finished
func (s *TimelineScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *TimelineScreen) Cancelled() bool {
	return s.cancelled
}
