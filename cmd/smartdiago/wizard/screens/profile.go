package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/careers2017uae-bot/SmartDiago/cmd/smartdiago/wizard/components"
	"github.com/careers2017uae-bot/SmartDiago/internal/session"
)

// ProfileScreen edits the patient record. Saving overwrites the whole
// record; there is no per-field undo.
type ProfileScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	patient   *session.Patient
	width     int
	height    int
	done      bool
	cancelled bool

	// String versions for form binding (huh binds to strings)
	gender       string
	ageStr       string
	caloriesStr  string
	stepsStr     string
	sleepStr     string
	heartRateStr string
}

// NewProfileScreen creates a profile screen pre-filled from the record.
func NewProfileScreen(patient *session.Patient) *ProfileScreen {
	s := &ProfileScreen{
		helpPanel:    components.NewHelpPanel(),
		patient:      patient,
		gender:       string(patient.Gender),
		ageStr:       strconv.Itoa(patient.Age),
		caloriesStr:  strconv.Itoa(patient.Calories),
		stepsStr:     strconv.Itoa(patient.Steps),
		sleepStr:     strconv.FormatFloat(patient.SleepHours, 'g', -1, 64),
		heartRateStr: strconv.Itoa(patient.HeartRate),
	}
	if s.gender == "" {
		s.gender = string(session.GenderMale)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("patient_name").
				Title("Name").
				Value(&patient.Name),

			huh.NewInput().
				Key("age").
				Title("Age").
				Value(&s.ageStr).
				Validate(validateIntRange(0, 130)),

			huh.NewSelect[string]().
				Key("gender").
				Title("Gender").
				Options(
					huh.NewOption("Male", string(session.GenderMale)),
					huh.NewOption("Female", string(session.GenderFemale)),
					huh.NewOption("Other", string(session.GenderOther)),
				).
				Value(&s.gender),

			huh.NewInput().
				Key("location").
				Title("Location").
				Value(&patient.Location),

			huh.NewInput().
				Key("past_history").
				Title("Past History").
				Value(&patient.PastHistory),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("calories").
				Title("Daily Calories").
				Value(&s.caloriesStr).
				Validate(validateNonNegativeInt),

			huh.NewInput().
				Key("steps").
				Title("Average Steps/Day").
				Value(&s.stepsStr).
				Validate(validateNonNegativeInt),

			huh.NewInput().
				Key("sleep_hours").
				Title("Avg Sleep (hrs)").
				Value(&s.sleepStr).
				Validate(validateSleepHours),

			huh.NewInput().
				Key("heart_rate").
				Title("Resting Heart Rate (bpm)").
				Value(&s.heartRateStr).
				Validate(validateHeartRate),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func validateIntRange(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 {
		return fmt.Errorf("must be >= 0")
	}
	return nil
}

func validateSleepHours(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f < 0 || f > 24 {
		return fmt.Errorf("must be between 0 and 24")
	}
	return nil
}

func validateHeartRate(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n != 0 && (n < 30 || n > 200) {
		return fmt.Errorf("must be between 30 and 200, or 0 when not measured")
	}
	return nil
}

// Init implements tea.Model
func (s *ProfileScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *ProfileScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	// Update help panel based on focused field
	focused := s.form.GetFocusedField()
	if focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncPatientFromForm()
	}

	return s, cmd
}

// syncPatientFromForm parses form values back into the record
func (s *ProfileScreen) syncPatientFromForm() {
	s.patient.Gender = session.Gender(s.gender)
	if n, err := strconv.Atoi(s.ageStr); err == nil {
		s.patient.Age = n
	}
	if n, err := strconv.Atoi(s.caloriesStr); err == nil {
		s.patient.Calories = n
	}
	if n, err := strconv.Atoi(s.stepsStr); err == nil {
		s.patient.Steps = n
	}
	if f, err := strconv.ParseFloat(s.sleepStr, 64); err == nil {
		s.patient.SleepHours = f
	}
	if n, err := strconv.Atoi(s.heartRateStr); err == nil {
		s.patient.HeartRate = n
	}
}

// View implements tea.Model
func (s *ProfileScreen) View() string {
	title := components.TitleStyle.Render("PATIENT PROFILE")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Save | Esc: Back",
	)

	return content
}

// Done returns true if the form was completed
func (s *ProfileScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user went back without saving
func (s *ProfileScreen) Cancelled() bool {
	return s.cancelled
}
