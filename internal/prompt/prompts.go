// Package prompt maps each generated workflow stage to its system
// instruction, its prompt builder and the stages it may read from.
// Dependencies are strictly one-directional: a stage only ever reads
// stages that come earlier in the workflow. Missing dependency text
// interpolates as empty; generation is never blocked on it.
package prompt

import (
	"fmt"
	"strings"

	"github.com/careers2017uae-bot/SmartDiago/internal/session"
)

// Spec describes one generation checkpoint.
type Spec struct {
	Stage       session.Stage
	System      string
	Temperature float64
	MaxTokens   int
	Deps        []session.Stage
	build       func(s *session.Session) string
}

// Build assembles the user prompt from the session's current state.
func (sp Spec) Build(s *session.Session) string {
	return sp.build(s)
}

var table = map[session.Stage]Spec{
	session.StageInitialDiagnostic: {
		Stage: session.StageInitialDiagnostic,
		System: "You are IntelliDoctor, a concise and responsible medical assistant. " +
			"Always emphasize uncertainty, red flags, and advise to consult a clinician.",
		Temperature: 0,
		MaxTokens:   800,
		Deps:        []session.Stage{session.StageSymptoms},
		build: func(s *session.Session) string {
			return fmt.Sprintf(
				"Patient profile: %s\n\nSymptoms:\n%s\n\n"+
					"Task:\n1) Provide top 3 differential diagnoses with brief confidence %%.\n"+
					"2) List red flags needing urgent care.\n"+
					"3) Suggest initial home management and urgency.\n"+
					"4) Recommend initial tests to narrow diagnosis.\n"+
					"Respond in numbered sections, concise.",
				s.Patient.Profile(),
				s.Stages.Content(session.StageSymptoms))
		},
	},

	session.StageTestRecommendations: {
		Stage:       session.StageTestRecommendations,
		System:      "You are a helpful clinician-assistant recommending appropriate lab and imaging tests.",
		Temperature: 0,
		MaxTokens:   700,
		Deps:        []session.Stage{session.StageSymptoms, session.StageDoctorNotes},
		build: func(s *session.Session) string {
			return fmt.Sprintf(
				"Patient profile: %s\n\nSymptoms: %s\n\nDoctor notes: %s\n\n"+
					"Task: Provide a prioritized list of lab tests and imaging (including specific "+
					"radiology views/protocols if relevant). For each test include purpose, what "+
					"positive/negative results would indicate, and urgency (routine/urgent/emergency). "+
					"Keep concise.",
				s.Patient.Profile(),
				s.Stages.Content(session.StageSymptoms),
				s.Stages.Content(session.StageDoctorNotes))
		},
	},

	session.StageFinalDiagnostic: {
		Stage: session.StageFinalDiagnostic,
		System: "You are IntelliDoctor: create a careful final diagnosis with conservative " +
			"prescription suggestions. Always include uncertainty and when to refer.",
		Temperature: 0,
		MaxTokens:   900,
		Deps: []session.Stage{
			session.StageSymptoms,
			session.StageInitialDiagnostic,
			session.StageDoctorNotes,
			session.StageTestRecommendations,
		},
		build: func(s *session.Session) string {
			return fmt.Sprintf(
				"Patient profile: %s\nSymptoms: %s\nInitial AI diagnostic: %s\n"+
					"Doctor notes: %s\nTests: %s\nUploaded files: %s\n\n"+
					"Task: Provide 1) final concise diagnosis with reasoning and confidence, "+
					"2) suggested prescription (drug names, dose, duration) with alternatives and "+
					"allergy/interaction cautions, 3) recommendations for referrals.",
				s.Patient.Profile(),
				s.Stages.Content(session.StageSymptoms),
				s.Stages.Content(session.StageInitialDiagnostic),
				s.Stages.Content(session.StageDoctorNotes),
				s.Stages.Content(session.StageTestRecommendations),
				strings.Join(s.Uploads.Names(), ", "))
		},
	},

	session.StageFollowupPlan: {
		Stage: session.StageFollowupPlan,
		System: "You are a clinician assistant: propose follow-up scheduling, monitoring " +
			"parameters, red flags and remote-monitoring suggestions.",
		Temperature: 0,
		MaxTokens:   500,
		Deps:        []session.Stage{session.StageFinalDiagnostic, session.StageFinalPrescription},
		build: func(s *session.Session) string {
			final := s.Stages.Content(session.StageFinalPrescription)
			if final == "" {
				final = s.Stages.Content(session.StageFinalDiagnostic)
			}
			return fmt.Sprintf(
				"Patient: %s\nFinal diagnosis: %s\n"+
					"Task: provide timelines for follow-up, monitoring metrics, red flags for "+
					"early review, and lifestyle advice. Keep concise.",
				s.Patient.Profile(), final)
		},
	},
}

// For returns the spec for a generated stage. ok is false for stages
// that are operator-only (symptoms, doctor notes, final prescription).
func For(stage session.Stage) (Spec, bool) {
	sp, ok := table[stage]
	return sp, ok
}

// Stages returns the generation-capable stages in workflow order.
func Stages() []session.Stage {
	return []session.Stage{
		session.StageInitialDiagnostic,
		session.StageTestRecommendations,
		session.StageFinalDiagnostic,
		session.StageFollowupPlan,
	}
}
