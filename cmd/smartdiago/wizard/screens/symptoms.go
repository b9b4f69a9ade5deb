package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/careers2017uae-bot/SmartDiago/cmd/smartdiago/wizard/components"
)

// SymptomsScreen captures the symptoms stage: either typed directly or
// loaded from a plain-text file. A non-empty file path wins over the
// typed text.
type SymptomsScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	errText   string
	filePath  string
	text      string
	width     int
	height    int
	done      bool
	cancelled bool
}

// NewSymptomsScreen creates the screen pre-filled with the current
// symptoms text. errText, when non-empty, is a failure from a previous
// file-load attempt.
func NewSymptomsScreen(current, errText string) *SymptomsScreen {
	s := &SymptomsScreen{
		helpPanel: components.NewHelpPanel(),
		errText:   errText,
		text:      current,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("symptoms_file").
				Title("Load from file (optional)").
				Placeholder("symptoms.txt").
				Value(&s.filePath),

			huh.NewText().
				Key("symptoms_text").
				Title("Symptoms").
				Lines(8).
				Value(&s.text),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *SymptomsScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SymptomsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	focused := s.form.GetFocusedField()
	if focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SymptomsScreen) View() string {
	title := components.TitleStyle.Render("SYMPTOMS")

	parts := []string{title, ""}
	if s.errText != "" {
		parts = append(parts, components.ErrStyle.Render(s.errText), "")
	}
	parts = append(parts,
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Save | Esc: Back",
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Done returns true if the form was completed
func (s *SymptomsScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user went back without saving
func (s *SymptomsScreen) Cancelled() bool {
	return s.cancelled
}

// FilePath returns the optional file to load symptoms from
func (s *SymptomsScreen) FilePath() string {
	return s.filePath
}

// Text returns the typed symptoms text
func (s *SymptomsScreen) Text() string {
	return s.text
}
