package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/careers2017uae-bot/SmartDiago/cmd/smartdiago/wizard/components"
)

type renderState int

const (
	renderInput renderState = iota
	renderRunning
	renderDone
	renderFailed
)

var (
	renderHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Italic(true)

	renderValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)
)

// RenderScreen takes the output path for the PDF and then shows the
// outcome. The wizard feeds it RenderDoneMsg / ErrorMsg.
type RenderScreen struct {
	form      *huh.Form
	path      string
	state     renderState
	outPath   string
	size      int
	err       error
	done      bool
	finished  bool
	cancelled bool
	width     int
	height    int
}

// NewRenderScreen creates the output-path prompt with a default built
// from the patient name.
func NewRenderScreen(defaultName string) *RenderScreen {
	s := &RenderScreen{
		path: defaultName,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("report_file").
				Title("Write report to").
				Value(&s.path).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// StartRunning switches the screen to the in-flight view.
func (s *RenderScreen) StartRunning() {
	s.state = renderRunning
}

// SetResult switches the screen to the completed view.
func (s *RenderScreen) SetResult(path string, size int) {
	s.state = renderDone
	s.outPath = path
	s.size = size
}

// SetError switches the screen to the failure view.
func (s *RenderScreen) SetError(err error) {
	s.state = renderFailed
	s.err = err
}

// Init implements tea.Model
func (s *RenderScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *RenderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			if s.state == renderInput {
				return s, nil
			}
			return s, tea.Quit
		case "esc":
			if s.state == renderInput {
				s.cancelled = true
				return s, nil
			}
			if s.state != renderRunning {
				s.finished = true
			}
		case "enter", "q":
			if s.state == renderDone || s.state == renderFailed {
				s.finished = true
			}
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	if s.state != renderInput {
		return s, nil
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *RenderScreen) View() string {
	var sb strings.Builder

	switch s.state {
	case renderInput:
		sb.WriteString(components.TitleStyle.Render("RENDER PDF REPORT"))
		sb.WriteString("\n\n")
		sb.WriteString(s.form.View())
		sb.WriteString("\n")
		sb.WriteString("Enter: Render | Esc: Back")

	case renderRunning:
		sb.WriteString(components.TitleStyle.Render("Rendering report..."))

	case renderDone:
		sb.WriteString(components.StatusStyle.Render("✓ Report generated!"))
		sb.WriteString("\n\n")
		sb.WriteString(renderHintStyle.Render("File: "))
		sb.WriteString(renderValueStyle.Render(s.outPath))
		sb.WriteString("\n")
		sb.WriteString(renderHintStyle.Render("Size: "))
		sb.WriteString(renderValueStyle.Render(fmt.Sprintf("%d bytes", s.size)))
		sb.WriteString("\n\n")
		sb.WriteString(renderHintStyle.Render("Press Enter to return to the menu"))

	case renderFailed:
		sb.WriteString(components.ErrStyle.Render("✗ Rendering failed"))
		sb.WriteString("\n\n")
		sb.WriteString(s.err.Error())
		sb.WriteString("\n\n")
		sb.WriteString(renderHintStyle.Render("Press Enter to return to the menu"))
	}

	return sb.String()
}

// Done returns true if a path was submitted
func (s *RenderScreen) Done() bool {
	return s.done
}

// Finished returns true once the user acknowledged the outcome
func (s *RenderScreen) Finished() bool {
	return s.finished
}

// Cancelled returns true if the user went back or cancelled
func (s *RenderScreen) Cancelled() bool {
	return s.cancelled
}

// Path returns the submitted output path
func (s *RenderScreen) Path() string {
	return strings.TrimSpace(s.path)
}
