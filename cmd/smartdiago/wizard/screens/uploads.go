package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/careers2017uae-bot/SmartDiago/cmd/smartdiago/wizard/components"
	"github.com/careers2017uae-bot/SmartDiago/internal/session"
)

var (
	uploadListStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	uploadItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	uploadAnnotationStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))
)

// UploadScreen lists the attached test results and takes the path of
// the next file to attach. An empty path submits back to the menu.
type UploadScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	uploads   []session.Upload
	status    string
	path      string
	width     int
	height    int
	done      bool
	cancelled bool
}

// NewUploadScreen creates the screen. status carries the outcome of the
// previous attach attempt, success or failure.
func NewUploadScreen(uploads []session.Upload, status string) *UploadScreen {
	s := &UploadScreen{
		helpPanel: components.NewHelpPanel(),
		uploads:   uploads,
		status:    status,
	}
	s.helpPanel.SetField("upload_path")

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("upload_path").
				Title("Attach result file").
				Placeholder("scan.png, report.pdf, study.dcm ... (empty to go back)").
				Value(&s.path),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *UploadScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *UploadScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
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
func (s *UploadScreen) View() string {
	title := components.TitleStyle.Render("UPLOADED TEST RESULTS")

	parts := []string{
		title,
		"",
		uploadListStyle.Render(s.buildListing()),
		"",
	}
	if s.status != "" {
		parts = append(parts, components.StatusStyle.Render(s.status), "")
	}
	parts = append(parts,
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Enter: Attach | Esc: Back",
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// buildListing renders the current uploads in insertion order.
func (s *UploadScreen) buildListing() string {
	if len(s.uploads) == 0 {
		return uploadAnnotationStyle.Render("None")
	}
	var sb strings.Builder
	for i, u := range s.uploads {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(uploadItemStyle.Render(fmt.Sprintf("- %s (%s)", u.Name, u.Kind)))
		if u.Annotation != "" {
			sb.WriteString(uploadAnnotationStyle.Render(" - " + u.Annotation))
		}
	}
	return sb.String()
}

// Done returns true if a path was submitted
func (s *UploadScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user went back
func (s *UploadScreen) Cancelled() bool {
	return s.cancelled
}

// Path returns the submitted file path, empty for "back"
func (s *UploadScreen) Path() string {
	return strings.TrimSpace(s.path)
}
