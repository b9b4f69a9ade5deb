package session

import "fmt"

// Stage is one fixed named slot in the clinical workflow. Each stage
// holds at most one current text artifact.
type Stage string

const (
	StageSymptoms            Stage = "symptoms"
	StageInitialDiagnostic   Stage = "initial_diagnostic"
	StageDoctorNotes         Stage = "doctor_notes"
	StageTestRecommendations Stage = "test_recommendations"
	StageFinalDiagnostic     Stage = "final_diagnostic"
	StageFinalPrescription   Stage = "final_prescription"
	StageFollowupPlan        Stage = "followup_plan"
)

// AllStages returns every stage in workflow order.
func AllStages() []Stage {
	return []Stage{
		StageSymptoms,
		StageInitialDiagnostic,
		StageDoctorNotes,
		StageTestRecommendations,
		StageFinalDiagnostic,
		StageFinalPrescription,
		StageFollowupPlan,
	}
}

// Valid reports whether s names a known stage.
func (s Stage) Valid() bool {
	switch s {
	case StageSymptoms, StageInitialDiagnostic, StageDoctorNotes,
		StageTestRecommendations, StageFinalDiagnostic,
		StageFinalPrescription, StageFollowupPlan:
		return true
	}
	return false
}

// Title returns the display title used for timeline entries and screens.
func (s Stage) Title() string {
	switch s {
	case StageSymptoms:
		return "Symptoms"
	case StageInitialDiagnostic:
		return "Initial AI Diagnostic"
	case StageDoctorNotes:
		return "Doctor Notes"
	case StageTestRecommendations:
		return "Test & Radiology Recommendations"
	case StageFinalDiagnostic:
		return "Final AI Diagnostic"
	case StageFinalPrescription:
		return "Final Diagnostic & Prescription"
	case StageFollowupPlan:
		return "Follow-up Plan"
	}
	return string(s)
}

// Provenance records how a stage artifact got its current content.
type Provenance string

const (
	ProvenanceEmpty     Provenance = "empty"
	ProvenanceGenerated Provenance = "generated"
	ProvenanceEdited    Provenance = "edited"
)

// Artifact is the current text content of one stage, with provenance.
// Artifacts are overwritten wholesale; there is no versioning.
type Artifact struct {
	Content    string
	Provenance Provenance
}

// StageStore holds the current artifact for every fixed stage.
type StageStore struct {
	artifacts map[Stage]Artifact
}

// NewStageStore returns a store with every stage empty.
func NewStageStore() *StageStore {
	s := &StageStore{artifacts: make(map[Stage]Artifact, len(AllStages()))}
	for _, stage := range AllStages() {
		s.artifacts[stage] = Artifact{Provenance: ProvenanceEmpty}
	}
	return s
}

// Get returns the current artifact for stage. Unknown stages read as empty.
func (s *StageStore) Get(stage Stage) Artifact {
	return s.artifacts[stage]
}

// Content is shorthand for Get(stage).Content.
func (s *StageStore) Content(stage Stage) string {
	return s.artifacts[stage].Content
}

// Edit overwrites the stage with operator-supplied text. It always
// succeeds and marks the artifact as edited.
func (s *StageStore) Edit(stage Stage, text string) error {
	if !stage.Valid() {
		return fmt.Errorf("unknown stage %q", stage)
	}
	s.artifacts[stage] = Artifact{Content: text, Provenance: ProvenanceEdited}
	return nil
}

// SetGenerated overwrites the stage with text produced by the
// completion service.
func (s *StageStore) SetGenerated(stage Stage, text string) error {
	if !stage.Valid() {
		return fmt.Errorf("unknown stage %q", stage)
	}
	s.artifacts[stage] = Artifact{Content: text, Provenance: ProvenanceGenerated}
	return nil
}
