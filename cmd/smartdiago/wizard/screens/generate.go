package screens

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/careers2017uae-bot/SmartDiago/cmd/smartdiago/wizard/components"
)

const maxPreviewLines = 20

type generateState int

const (
	generateRunning generateState = iota
	generateDone
	generateFailed
)

var (
	generateBodyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	generateHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Italic(true)
)

// GenerateScreen shows a generation call in flight and then its result.
// The wizard feeds it GenerateResultMsg / GenerateErrorMsg.
type GenerateScreen struct {
	title       string
	startTime   time.Time
	state       generateState
	content     string
	rawFallback bool
	err         error
	finished    bool
	cancelled   bool
	width       int
	height      int
}

// NewGenerateScreen creates the in-flight view for one stage.
func NewGenerateScreen(title string) *GenerateScreen {
	return &GenerateScreen{
		title:     title,
		startTime: time.Now(),
	}
}

// SetResult switches the screen to the completed view.
func (s *GenerateScreen) SetResult(content string, rawFallback bool) {
	s.state = generateDone
	s.content = content
	s.rawFallback = rawFallback
}

// SetError switches the screen to the failure view.
func (s *GenerateScreen) SetError(err error) {
	s.state = generateFailed
	s.err = err
}

// Init implements tea.Model
func (s *GenerateScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *GenerateScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc", "enter", "q":
			if s.state != generateRunning {
				s.finished = true
			}
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *GenerateScreen) View() string {
	var sb strings.Builder

	switch s.state {
	case generateRunning:
		sb.WriteString(components.TitleStyle.Render(fmt.Sprintf("Generating %s...", s.title)))
		sb.WriteString("\n\n")
		elapsed := time.Since(s.startTime)
		sb.WriteString(generateHintStyle.Render(fmt.Sprintf("Elapsed: %.1fs", elapsed.Seconds())))
		sb.WriteString("\n\n")
		sb.WriteString(generateHintStyle.Render("Press Ctrl+C to cancel"))

	case generateDone:
		sb.WriteString(components.StatusStyle.Render("✓"))
		sb.WriteString(" ")
		sb.WriteString(components.TitleStyle.Render(s.title))
		sb.WriteString("\n")
		if s.rawFallback {
			sb.WriteString(components.WarnStyle.Render("Unexpected response format; showing the raw service reply."))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		sb.WriteString(generateBodyStyle.Render(previewText(s.content)))
		sb.WriteString("\n\n")
		sb.WriteString(generateHintStyle.Render("Press Enter to return to the menu"))

	case generateFailed:
		sb.WriteString(components.ErrStyle.Render("✗ Generation failed"))
		sb.WriteString("\n\n")
		sb.WriteString(generateBodyStyle.Render(s.err.Error()))
		sb.WriteString("\n\n")
		sb.WriteString(generateHintStyle.Render("The stage keeps its previous content. Press Enter to return to the menu"))
	}

	return sb.String()
}

// previewText truncates long drafts for the result view; the full text
// stays in the stage and the report.
func previewText(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= maxPreviewLines {
		return text
	}
	kept := lines[:maxPreviewLines]
	return strings.Join(kept, "\n") + fmt.Sprintf("\n... (%d more lines)", len(lines)-maxPreviewLines)
}

// Finished returns true once the user acknowledged the result
func (s *GenerateScreen) Finished() bool {
	return s.finished
}

// Cancelled returns true if the user cancelled
func (s *GenerateScreen) Cancelled() bool {
	return s.cancelled
}
