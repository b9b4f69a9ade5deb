package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/careers2017uae-bot/SmartDiago/cmd/smartdiago/wizard/components"
)

// EditorScreen is the generic free-text editor used for the
// operator-owned stages (doctor notes, prescription) and for revising
// AI drafts. Saving overwrites the stage and marks it edited.
type EditorScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	title     string
	text      string
	width     int
	height    int
	done      bool
	cancelled bool
}

// NewEditorScreen creates an editor for one stage. helpKey selects the
// contextual help entry shown while the text area has focus.
func NewEditorScreen(title, helpKey, initial string) *EditorScreen {
	s := &EditorScreen{
		helpPanel: components.NewHelpPanel(),
		title:     title,
		text:      initial,
	}
	s.helpPanel.SetField(helpKey)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Key(helpKey).
				Title(title).
				Lines(10).
				Value(&s.text),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *EditorScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *EditorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (s *EditorScreen) View() string {
	title := components.TitleStyle.Render(s.title)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Enter: Save | Esc: Back without saving",
	)

	return content
}

// Done returns true if the text was saved
func (s *EditorScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user went back without saving
func (s *EditorScreen) Cancelled() bool {
	return s.cancelled
}

// Text returns the edited text
func (s *EditorScreen) Text() string {
	return s.text
}
