// Package wizard provides the interactive TUI driving the clinical
// workflow: patient profile, symptoms, AI checkpoints, uploads, the
// report timeline and PDF rendering.
package wizard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/careers2017uae-bot/SmartDiago/cmd/smartdiago/wizard/components"
	"github.com/careers2017uae-bot/SmartDiago/cmd/smartdiago/wizard/screens"
	"github.com/careers2017uae-bot/SmartDiago/internal/config"
	"github.com/careers2017uae-bot/SmartDiago/internal/ingest"
	"github.com/careers2017uae-bot/SmartDiago/internal/llm"
	"github.com/careers2017uae-bot/SmartDiago/internal/report"
	"github.com/careers2017uae-bot/SmartDiago/internal/session"
	"github.com/careers2017uae-bot/SmartDiago/internal/util"
	"github.com/careers2017uae-bot/SmartDiago/internal/workflow"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseProfile
	PhaseSymptoms
	PhaseEditor
	PhaseGenerate
	PhaseUploads
	PhaseCommit
	PhaseTimeline
	PhaseRender
	PhaseSaveSession
)

// Wizard is the main orchestrator for the wizard interface. All state
// transitions go through the menu; every other screen returns there.
type Wizard struct {
	sess      *session.Session
	runner    *workflow.Runner
	credAvail bool
	log       *zap.Logger

	// Current phase
	phase Phase

	// Screen instances
	menuScreen     *screens.MenuScreen
	profileScreen  *screens.ProfileScreen
	symptomsScreen *screens.SymptomsScreen
	editorScreen   *screens.EditorScreen
	generateScreen *screens.GenerateScreen
	uploadScreen   *screens.UploadScreen
	commitScreen   *screens.CommitScreen
	timelineScreen *screens.TimelineScreen
	renderScreen   *screens.RenderScreen

	// Save session form
	saveForm    *huh.Form
	sessionPath string

	// Tracking for multi-step phases
	editorStage   session.Stage
	generateStage session.Stage
	generateOK    bool
	renderStarted bool

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a wizard over the given session.
func NewWizard(sess *session.Session, runner *workflow.Runner, credAvail bool, log *zap.Logger) *Wizard {
	if log == nil {
		log = zap.NewNop()
	}
	w := &Wizard{
		sess:      sess,
		runner:    runner,
		credAvail: credAvail,
		log:       log,
		phase:     PhaseMenu,
	}

	w.menuScreen = screens.NewMenuScreen(sess, "", credAvail)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.menuScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size for all phases
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	// Ctrl+C quits from anywhere
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
		w.cancelled = true
		return w, tea.Quit
	}

	switch w.phase {
	case PhaseMenu:
		return w.updateMenu(msg)
	case PhaseProfile:
		return w.updateProfile(msg)
	case PhaseSymptoms:
		return w.updateSymptoms(msg)
	case PhaseEditor:
		return w.updateEditor(msg)
	case PhaseGenerate:
		return w.updateGenerate(msg)
	case PhaseUploads:
		return w.updateUploads(msg)
	case PhaseCommit:
		return w.updateCommit(msg)
	case PhaseTimeline:
		return w.updateTimeline(msg)
	case PhaseRender:
		return w.updateRender(msg)
	case PhaseSaveSession:
		return w.updateSaveSession(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseMenu:
		return w.menuScreen.View()
	case PhaseProfile:
		return w.profileScreen.View()
	case PhaseSymptoms:
		return w.symptomsScreen.View()
	case PhaseEditor:
		return w.editorScreen.View()
	case PhaseGenerate:
		return w.generateScreen.View()
	case PhaseUploads:
		return w.uploadScreen.View()
	case PhaseCommit:
		return w.commitScreen.View()
	case PhaseTimeline:
		return w.timelineScreen.View()
	case PhaseRender:
		return w.renderScreen.View()
	case PhaseSaveSession:
		return w.viewSaveSession()
	}

	return ""
}

// transitionToMenu rebuilds the dashboard with the given status line.
func (w *Wizard) transitionToMenu(status string) (tea.Model, tea.Cmd) {
	w.phase = PhaseMenu
	w.menuScreen = screens.NewMenuScreen(w.sess, status, w.credAvail)
	return w, w.menuScreen.Init()
}

// updateMenu handles updates on the dashboard.
func (w *Wizard) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.menuScreen.Update(msg)
	if ms, ok := model.(*screens.MenuScreen); ok {
		w.menuScreen = ms
	}

	if w.menuScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.menuScreen.Done() {
		switch w.menuScreen.Choice() {
		case screens.ActionProfile:
			w.phase = PhaseProfile
			w.profileScreen = screens.NewProfileScreen(&w.sess.Patient)
			return w, w.profileScreen.Init()

		case screens.ActionSymptoms:
			w.phase = PhaseSymptoms
			w.symptomsScreen = screens.NewSymptomsScreen(
				w.sess.Stages.Content(session.StageSymptoms), "")
			return w, w.symptomsScreen.Init()

		case screens.ActionGenerateInitial:
			return w.startGeneration(session.StageInitialDiagnostic)
		case screens.ActionGenerateTests:
			return w.startGeneration(session.StageTestRecommendations)
		case screens.ActionGenerateFinal:
			return w.startGeneration(session.StageFinalDiagnostic)
		case screens.ActionGenerateFollowup:
			return w.startGeneration(session.StageFollowupPlan)

		case screens.ActionDoctorNotes:
			return w.transitionToEditor(session.StageDoctorNotes, "doctor_notes")
		case screens.ActionPrescription:
			return w.transitionToEditor(session.StageFinalPrescription, "final_prescription")

		case screens.ActionUploads:
			w.phase = PhaseUploads
			w.uploadScreen = screens.NewUploadScreen(w.sess.Uploads.Items(), "")
			return w, w.uploadScreen.Init()

		case screens.ActionCommit:
			w.phase = PhaseCommit
			w.commitScreen = screens.NewCommitScreen()
			return w, w.commitScreen.Init()

		case screens.ActionTimeline:
			w.phase = PhaseTimeline
			w.timelineScreen = screens.NewTimelineScreen(w.sess.Timeline.Entries())
			return w, w.timelineScreen.Init()

		case screens.ActionRender:
			w.phase = PhaseRender
			w.renderStarted = false
			w.renderScreen = screens.NewRenderScreen(util.ReportFileName(w.sess.Patient.Name))
			return w, w.renderScreen.Init()

		case screens.ActionSave:
			return w.transitionToSaveSession()

		case screens.ActionQuit:
			w.finished = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// updateProfile handles updates on the patient profile screen.
func (w *Wizard) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.profileScreen.Update(msg)
	if ps, ok := model.(*screens.ProfileScreen); ok {
		w.profileScreen = ps
	}

	if w.profileScreen.Cancelled() {
		return w.transitionToMenu("")
	}

	if w.profileScreen.Done() {
		return w.transitionToMenu("Patient profile saved.")
	}

	return w, cmd
}

// updateSymptoms handles updates on the symptoms screen. A submitted
// file path wins over the typed text; a file that cannot be read or is
// not text re-opens the screen with the error and the typed text kept.
func (w *Wizard) updateSymptoms(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.symptomsScreen.Update(msg)
	if ss, ok := model.(*screens.SymptomsScreen); ok {
		w.symptomsScreen = ss
	}

	if w.symptomsScreen.Cancelled() {
		return w.transitionToMenu("")
	}

	if w.symptomsScreen.Done() {
		if path := w.symptomsScreen.FilePath(); path != "" {
			name := filepath.Base(path)
			data, err := os.ReadFile(path)
			if err == nil {
				var text string
				text, err = session.DecodeTextFile(name, data)
				if err == nil {
					w.sess.Stages.Edit(session.StageSymptoms, text)
					return w.transitionToMenu(fmt.Sprintf("Symptoms loaded from %s.", name))
				}
			}
			w.log.Warn("symptom file rejected", zap.String("path", path), zap.Error(err))
			w.phase = PhaseSymptoms
			w.symptomsScreen = screens.NewSymptomsScreen(w.symptomsScreen.Text(), err.Error())
			return w, w.symptomsScreen.Init()
		}

		w.sess.Stages.Edit(session.StageSymptoms, w.symptomsScreen.Text())
		return w.transitionToMenu("Symptoms saved.")
	}

	return w, cmd
}

// transitionToEditor opens the free-text editor for one stage.
func (w *Wizard) transitionToEditor(stage session.Stage, helpKey string) (tea.Model, tea.Cmd) {
	w.phase = PhaseEditor
	w.editorStage = stage
	w.editorScreen = screens.NewEditorScreen(stage.Title(), helpKey, w.sess.Stages.Content(stage))
	return w, w.editorScreen.Init()
}

// updateEditor handles updates on the stage editor.
func (w *Wizard) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.editorScreen.Update(msg)
	if es, ok := model.(*screens.EditorScreen); ok {
		w.editorScreen = es
	}

	if w.editorScreen.Cancelled() {
		return w.transitionToMenu("")
	}

	if w.editorScreen.Done() {
		w.sess.Stages.Edit(w.editorStage, w.editorScreen.Text())
		return w.transitionToMenu(fmt.Sprintf("%s saved.", w.editorStage.Title()))
	}

	return w, cmd
}

// startGeneration kicks off one AI checkpoint in the background.
func (w *Wizard) startGeneration(stage session.Stage) (tea.Model, tea.Cmd) {
	w.phase = PhaseGenerate
	w.generateStage = stage
	w.generateOK = false
	w.generateScreen = screens.NewGenerateScreen(stage.Title())

	runner := w.runner
	sess := w.sess
	return w, func() tea.Msg {
		res, err := runner.Generate(context.Background(), sess, stage)
		if err != nil {
			return screens.GenerateErrorMsg{Err: err}
		}
		return screens.GenerateResultMsg{Content: res.Content, RawFallback: res.RawFallback}
	}
}

// updateGenerate handles the in-flight and result views of a checkpoint.
func (w *Wizard) updateGenerate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.GenerateResultMsg:
		w.generateOK = true
		w.generateScreen.SetResult(msg.Content, msg.RawFallback)
		return w, nil

	case screens.GenerateErrorMsg:
		w.generateScreen.SetError(msg.Err)
		return w, nil
	}

	model, cmd := w.generateScreen.Update(msg)
	if gs, ok := model.(*screens.GenerateScreen); ok {
		w.generateScreen = gs
	}

	if w.generateScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.generateScreen.Finished() {
		if w.generateOK {
			return w.transitionToMenu(fmt.Sprintf("%s generated.", w.generateStage.Title()))
		}
		return w.transitionToMenu(fmt.Sprintf("%s failed; stage unchanged.", w.generateStage.Title()))
	}

	return w, cmd
}

// updateUploads handles the attach loop: every successful or failed
// attach re-opens the screen with a fresh listing and status.
func (w *Wizard) updateUploads(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.uploadScreen.Update(msg)
	if us, ok := model.(*screens.UploadScreen); ok {
		w.uploadScreen = us
	}

	if w.uploadScreen.Cancelled() {
		return w.transitionToMenu("")
	}

	if w.uploadScreen.Done() {
		path := w.uploadScreen.Path()
		if path == "" {
			return w.transitionToMenu("")
		}

		status := w.attachUpload(path)
		w.phase = PhaseUploads
		w.uploadScreen = screens.NewUploadScreen(w.sess.Uploads.Items(), status)
		return w, w.uploadScreen.Init()
	}

	return w, cmd
}

// attachUpload reads and classifies one result file, returning the
// status line for the refreshed screen.
func (w *Wizard) attachUpload(path string) string {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		w.log.Warn("upload rejected", zap.String("path", path), zap.Error(err))
		return fmt.Sprintf("Could not read %s: %v", name, err)
	}

	upload := session.Upload{
		Name:    name,
		Content: data,
		Kind:    session.DetectKind(name, ""),
	}
	if ingest.IsDICOM(name, data) {
		if info, err := ingest.Describe(data); err == nil {
			upload.Annotation = info.Annotation()
		} else {
			w.log.Warn("unreadable DICOM metadata", zap.String("name", name), zap.Error(err))
		}
	}

	w.sess.Uploads.Add(upload)
	w.log.Info("result attached",
		zap.String("name", name),
		zap.String("kind", string(upload.Kind)),
		zap.Int("bytes", len(data)))
	return fmt.Sprintf("Attached %s (%s).", name, upload.Kind)
}

// updateCommit handles the commit selector.
func (w *Wizard) updateCommit(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.commitScreen.Update(msg)
	if cs, ok := model.(*screens.CommitScreen); ok {
		w.commitScreen = cs
	}

	if w.commitScreen.Cancelled() {
		return w.transitionToMenu("")
	}

	if w.commitScreen.Done() {
		if stage, ok := w.commitScreen.Stage(); ok {
			w.sess.CommitStage(stage)
			return w.transitionToMenu(fmt.Sprintf("Committed %s to the timeline.", stage.Title()))
		}
		w.sess.CommitUploadsSummary()
		return w.transitionToMenu("Committed Uploaded Results to the timeline.")
	}

	return w, cmd
}

// updateTimeline handles the read-only timeline preview.
func (w *Wizard) updateTimeline(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.timelineScreen.Update(msg)
	if ts, ok := model.(*screens.TimelineScreen); ok {
		w.timelineScreen = ts
	}

	if w.timelineScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.timelineScreen.Done() {
		return w.transitionToMenu("")
	}

	return w, cmd
}

// updateRender handles the output prompt and the render itself.
func (w *Wizard) updateRender(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.RenderDoneMsg:
		w.renderScreen.SetResult(msg.Path, msg.Size)
		return w, nil

	case screens.ErrorMsg:
		w.renderScreen.SetError(msg.Error)
		return w, nil
	}

	model, cmd := w.renderScreen.Update(msg)
	if rs, ok := model.(*screens.RenderScreen); ok {
		w.renderScreen = rs
	}

	if w.renderScreen.Cancelled() {
		return w.transitionToMenu("")
	}

	if w.renderScreen.Finished() {
		return w.transitionToMenu("")
	}

	if w.renderScreen.Done() && !w.renderStarted {
		w.renderStarted = true
		w.renderScreen.StartRunning()
		return w, w.renderCmd(w.renderScreen.Path())
	}

	return w, cmd
}

// renderCmd builds the report in the background and writes it to path.
// An empty timeline auto-populates the four core blocks first.
func (w *Wizard) renderCmd(path string) tea.Cmd {
	sess := w.sess
	log := w.log
	return func() tea.Msg {
		entries := sess.Timeline.AutoPopulateIfEmpty(sess.Stages)
		data, err := report.Render(sess.Patient, entries, sess.Uploads.Items(), time.Now())
		if err != nil {
			log.Warn("report render failed", zap.Error(err))
			return screens.ErrorMsg{Error: err}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Warn("report write failed", zap.String("path", path), zap.Error(err))
			return screens.ErrorMsg{Error: err}
		}
		log.Info("report written", zap.String("path", path), zap.Int("bytes", len(data)))
		return screens.RenderDoneMsg{Path: path, Size: len(data)}
	}
}

// transitionToSaveSession shows the save session dialog.
func (w *Wizard) transitionToSaveSession() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveSession
	w.sessionPath = "session.yaml"

	w.saveForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("session_path").
				Title("Save session to").
				Description("Enter the path for the session YAML file").
				Value(&w.sessionPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveForm.Init()
}

// updateSaveSession handles updates in the save session phase.
func (w *Wizard) updateSaveSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return w.transitionToMenu("")
	}

	form, cmd := w.saveForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveForm = f
	}

	if w.saveForm.State == huh.StateCompleted {
		if err := SaveToYAML(w.sess, w.sessionPath); err != nil {
			w.log.Warn("session save failed", zap.String("path", w.sessionPath), zap.Error(err))
			return w.transitionToMenu(fmt.Sprintf("Could not save session: %v", err))
		}
		return w.transitionToMenu(fmt.Sprintf("Session saved to %s.", w.sessionPath))
	}

	return w, cmd
}

// viewSaveSession renders the save session dialog.
func (w *Wizard) viewSaveSession() string {
	title := components.TitleStyle.Render("Save Session")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		w.saveForm.View(),
		"",
		"Enter: Save | Esc: Back",
	)

	return content
}

// Run starts the interactive wizard. If fromConfig is provided, the
// session is restored from that YAML file first.
func Run(fromConfig string, cfg config.Config, log *zap.Logger) error {
	sess := session.New()

	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving session path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading session: %w", err)
		}
		sess = loaded
	}

	client := llm.NewClient(cfg.LLM(), log)
	runner := workflow.NewRunner(client, log)

	wizard := NewWizard(sess, runner, cfg.HasCredential(), log)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // User cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}
