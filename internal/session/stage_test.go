package session

import "testing"

func TestNewStageStore_AllStagesEmpty(t *testing.T) {
	store := NewStageStore()

	for _, stage := range AllStages() {
		art := store.Get(stage)
		if art.Content != "" {
			t.Errorf("Stage %s: expected empty content, got %q", stage, art.Content)
		}
		if art.Provenance != ProvenanceEmpty {
			t.Errorf("Stage %s: expected provenance empty, got %s", stage, art.Provenance)
		}
	}
}

func TestStageStore_EditSetsProvenance(t *testing.T) {
	store := NewStageStore()

	if err := store.Edit(StageDoctorNotes, "no complaints"); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	art := store.Get(StageDoctorNotes)
	if art.Content != "no complaints" {
		t.Errorf("Expected content 'no complaints', got %q", art.Content)
	}
	if art.Provenance != ProvenanceEdited {
		t.Errorf("Expected provenance edited, got %s", art.Provenance)
	}
}

func TestStageStore_EditEmptyTextSucceeds(t *testing.T) {
	store := NewStageStore()
	store.SetGenerated(StageInitialDiagnostic, "draft")

	if err := store.Edit(StageInitialDiagnostic, ""); err != nil {
		t.Fatalf("Edit with empty text failed: %v", err)
	}

	art := store.Get(StageInitialDiagnostic)
	if art.Content != "" {
		t.Errorf("Expected cleared content, got %q", art.Content)
	}
	if art.Provenance != ProvenanceEdited {
		t.Errorf("Expected provenance edited, got %s", art.Provenance)
	}
}

func TestStageStore_SetGeneratedOverwrites(t *testing.T) {
	store := NewStageStore()
	store.Edit(StageFollowupPlan, "manual plan")

	if err := store.SetGenerated(StageFollowupPlan, "ai plan"); err != nil {
		t.Fatalf("SetGenerated failed: %v", err)
	}

	art := store.Get(StageFollowupPlan)
	if art.Content != "ai plan" {
		t.Errorf("Expected 'ai plan', got %q", art.Content)
	}
	if art.Provenance != ProvenanceGenerated {
		t.Errorf("Expected provenance generated, got %s", art.Provenance)
	}
}

func TestStageStore_UnknownStageRejected(t *testing.T) {
	store := NewStageStore()

	if err := store.Edit("not_a_stage", "text"); err == nil {
		t.Error("Expected error for unknown stage on Edit")
	}
	if err := store.SetGenerated("not_a_stage", "text"); err == nil {
		t.Error("Expected error for unknown stage on SetGenerated")
	}
}

func TestStage_Valid(t *testing.T) {
	for _, stage := range AllStages() {
		if !stage.Valid() {
			t.Errorf("Stage %s should be valid", stage)
		}
	}
	if Stage("bogus").Valid() {
		t.Error("Stage 'bogus' should be invalid")
	}
}

func TestStage_TitlesDistinct(t *testing.T) {
	seen := map[string]Stage{}
	for _, stage := range AllStages() {
		title := stage.Title()
		if title == "" {
			t.Errorf("Stage %s has empty title", stage)
		}
		if prev, dup := seen[title]; dup {
			t.Errorf("Stages %s and %s share title %q", prev, stage, title)
		}
		seen[title] = stage
	}
}
