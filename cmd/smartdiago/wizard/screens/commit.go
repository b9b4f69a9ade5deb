package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/careers2017uae-bot/SmartDiago/cmd/smartdiago/wizard/components"
	"github.com/careers2017uae-bot/SmartDiago/internal/session"
)

// commitUploads is the non-stage commit choice for the uploads listing.
const commitUploads = "uploads"

// CommitScreen picks which block to freeze into the report timeline.
type CommitScreen struct {
	form      *huh.Form
	choice    string
	width     int
	height    int
	done      bool
	cancelled bool
}

// NewCommitScreen creates the commit selector.
func NewCommitScreen() *CommitScreen {
	s := &CommitScreen{
		choice: string(session.StageSymptoms),
	}

	var options []huh.Option[string]
	for _, stage := range session.AllStages() {
		options = append(options, huh.NewOption(stage.Title(), string(stage)))
	}
	options = append(options, huh.NewOption("Uploaded Results", commitUploads))

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("commit_choice").
				Title("Commit which block?").
				Options(options...).
				Value(&s.choice),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *CommitScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *CommitScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (s *CommitScreen) View() string {
	title := components.TitleStyle.Render("COMMIT TO TIMELINE")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		components.SubtitleStyle.Render("Commits snapshot the current content; later edits do not change them."),
		s.form.View(),
		"",
		"Enter: Commit | Esc: Back",
	)

	return content
}

// Done returns true if a block was selected
func (s *CommitScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user went back
func (s *CommitScreen) Cancelled() bool {
	return s.cancelled
}

// Stage returns the selected stage and true, or false when the uploads
// listing was selected instead.
func (s *CommitScreen) Stage() (session.Stage, bool) {
	if s.choice == commitUploads {
		return "", false
	}
	return session.Stage(s.choice), true
}
