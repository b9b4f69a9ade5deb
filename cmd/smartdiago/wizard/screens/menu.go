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

// MenuAction identifies the workflow step the operator picked.
type MenuAction string

const (
	ActionProfile          MenuAction = "profile"
	ActionSymptoms         MenuAction = "symptoms"
	ActionGenerateInitial  MenuAction = "generate_initial"
	ActionDoctorNotes      MenuAction = "doctor_notes"
	ActionGenerateTests    MenuAction = "generate_tests"
	ActionUploads          MenuAction = "uploads"
	ActionGenerateFinal    MenuAction = "generate_final"
	ActionPrescription     MenuAction = "prescription"
	ActionGenerateFollowup MenuAction = "generate_followup"
	ActionCommit           MenuAction = "commit"
	ActionTimeline         MenuAction = "timeline"
	ActionRender           MenuAction = "render"
	ActionSave             MenuAction = "save"
	ActionQuit             MenuAction = "quit"
)

var (
	menuPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	menuLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	menuValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)
)

// MenuScreen is the workflow dashboard: a session summary panel next to
// the action selector. It is rebuilt on every return to the menu so the
// summary always reflects the current session.
type MenuScreen struct {
	form      *huh.Form
	sess      *session.Session
	status    string
	credAvail bool
	action    string
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewMenuScreen creates the dashboard for the current session state.
// status is the one-line outcome of the previous action, shown under
// the summary panel.
func NewMenuScreen(sess *session.Session, status string, credAvail bool) *MenuScreen {
	s := &MenuScreen{
		sess:      sess,
		status:    status,
		credAvail: credAvail,
		action:    string(ActionProfile),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("menu_action").
				Title("Select a workflow step").
				Options(
					huh.NewOption("Patient profile", string(ActionProfile)),
					huh.NewOption("Symptoms", string(ActionSymptoms)),
					huh.NewOption("Generate initial diagnostic", string(ActionGenerateInitial)),
					huh.NewOption("Doctor notes", string(ActionDoctorNotes)),
					huh.NewOption("Generate test recommendations", string(ActionGenerateTests)),
					huh.NewOption("Attach test results", string(ActionUploads)),
					huh.NewOption("Generate final diagnostic", string(ActionGenerateFinal)),
					huh.NewOption("Prescription", string(ActionPrescription)),
					huh.NewOption("Generate follow-up plan", string(ActionGenerateFollowup)),
					huh.NewOption("Commit block to timeline", string(ActionCommit)),
					huh.NewOption("Preview timeline", string(ActionTimeline)),
					huh.NewOption("Render PDF report", string(ActionRender)),
					huh.NewOption("Save session to YAML", string(ActionSave)),
					huh.NewOption("Quit", string(ActionQuit)),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *MenuScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *MenuScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
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
func (s *MenuScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("SMARTDIAGO - Clinical Workflow")

	parts := []string{
		title,
		"",
		menuPanelStyle.Render(s.buildSummary()),
		"",
	}
	if s.status != "" {
		parts = append(parts, components.StatusStyle.Render(s.status), "")
	}
	if !s.credAvail {
		parts = append(parts,
			components.WarnStyle.Render("AI generation unavailable: GROQ_API_KEY not set"),
			"")
	}
	parts = append(parts,
		s.form.View(),
		"",
		"Enter: Select | Esc: Quit",
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// buildSummary renders the session summary panel.
func (s *MenuScreen) buildSummary() string {
	var sb strings.Builder

	name := s.sess.Patient.Name
	if name == "" {
		name = "(no profile yet)"
	}
	sb.WriteString(menuLabelStyle.Render("Patient:  "))
	sb.WriteString(menuValueStyle.Render(name))
	sb.WriteString("\n")

	sb.WriteString(menuLabelStyle.Render("Stages:   "))
	sb.WriteString(s.buildStageMarkers())
	sb.WriteString("\n")

	sb.WriteString(menuLabelStyle.Render("Uploads:  "))
	sb.WriteString(menuValueStyle.Render(fmt.Sprintf("%d", s.sess.Uploads.Len())))
	sb.WriteString("\n")

	sb.WriteString(menuLabelStyle.Render("Timeline: "))
	sb.WriteString(menuValueStyle.Render(fmt.Sprintf("%d block(s) committed", s.sess.Timeline.Len())))

	return sb.String()
}

// buildStageMarkers renders one marker per stage in workflow order:
// a dot for empty, a filled circle for generated, a pen for edited.
func (s *MenuScreen) buildStageMarkers() string {
	var parts []string
	for _, stage := range session.AllStages() {
		var marker string
		switch s.sess.Stages.Get(stage).Provenance {
		case session.ProvenanceGenerated:
			marker = "●"
		case session.ProvenanceEdited:
			marker = "✎"
		default:
			marker = "·"
		}
		parts = append(parts, marker)
	}
	return menuValueStyle.Render(strings.Join(parts, " "))
}

// Done returns true if an action was selected
func (s *MenuScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *MenuScreen) Cancelled() bool {
	return s.cancelled
}

// Choice returns the selected action
func (s *MenuScreen) Choice() MenuAction {
	return MenuAction(s.action)
}
