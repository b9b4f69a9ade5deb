package session

import "testing"

func TestTimeline_CommitOrderIsFIFO(t *testing.T) {
	tl := NewTimeline()
	tl.Commit("First", "a")
	tl.Commit("Second", "b")
	tl.Commit("Third", "c")

	entries := tl.Entries()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if entries[i].Title != want {
			t.Errorf("Entry %d: expected title %q, got %q", i, want, entries[i].Title)
		}
	}
}

func TestTimeline_DuplicateCommitsKept(t *testing.T) {
	tl := NewTimeline()
	tl.Commit("Doctor Notes", "no complaints")
	tl.Commit("Doctor Notes", "no complaints")

	entries := tl.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries (no dedup), got %d", len(entries))
	}
	if entries[0] != entries[1] {
		t.Errorf("Expected identical entries, got %+v and %+v", entries[0], entries[1])
	}
}

func TestTimeline_SnapshotSemantics(t *testing.T) {
	sess := New()
	sess.Stages.SetGenerated(StageInitialDiagnostic, "likely viral")
	sess.CommitStage(StageInitialDiagnostic)

	// Editing the stage afterwards must not change the committed entry.
	sess.Stages.Edit(StageInitialDiagnostic, "revised: bacterial")

	entries := sess.Timeline.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Content != "likely viral" {
		t.Errorf("Committed entry changed after edit: got %q", entries[0].Content)
	}
}

func TestTimeline_EntriesReturnsCopy(t *testing.T) {
	tl := NewTimeline()
	tl.Commit("Block", "body")

	entries := tl.Entries()
	entries[0].Content = "mutated"

	if tl.Entries()[0].Content != "body" {
		t.Error("Mutating the returned slice changed timeline state")
	}
}

func TestAutoPopulateIfEmpty_FixedOrder(t *testing.T) {
	store := NewStageStore()
	store.SetGenerated(StageInitialDiagnostic, "diag")
	store.Edit(StageDoctorNotes, "notes")

	tl := NewTimeline()
	entries := tl.AutoPopulateIfEmpty(store)

	wantTitles := []string{
		"Initial AI Diagnostic",
		"Doctor Notes",
		"Tests & Radiology",
		"Final Diagnostic & Prescription",
	}
	if len(entries) != len(wantTitles) {
		t.Fatalf("Expected %d entries, got %d", len(wantTitles), len(entries))
	}
	for i, want := range wantTitles {
		if entries[i].Title != want {
			t.Errorf("Entry %d: expected %q, got %q", i, want, entries[i].Title)
		}
	}
	if entries[0].Content != "diag" {
		t.Errorf("Expected initial diagnostic content, got %q", entries[0].Content)
	}
	// Empty stages still produce entries, with empty bodies.
	if entries[2].Content != "" {
		t.Errorf("Expected empty tests content, got %q", entries[2].Content)
	}
}

func TestAutoPopulateIfEmpty_PrefersPrescription(t *testing.T) {
	store := NewStageStore()
	store.SetGenerated(StageFinalDiagnostic, "ai draft")
	store.Edit(StageFinalPrescription, "amoxicillin 500mg")

	tl := NewTimeline()
	entries := tl.AutoPopulateIfEmpty(store)
	if got := entries[3].Content; got != "amoxicillin 500mg" {
		t.Errorf("Expected clinician prescription, got %q", got)
	}

	// Without a confirmed prescription the AI draft is used.
	store2 := NewStageStore()
	store2.SetGenerated(StageFinalDiagnostic, "ai draft")
	entries2 := NewTimeline().AutoPopulateIfEmpty(store2)
	if got := entries2[3].Content; got != "ai draft" {
		t.Errorf("Expected AI draft fallback, got %q", got)
	}
}

func TestAutoPopulateIfEmpty_NoOpWhenCommitted(t *testing.T) {
	store := NewStageStore()
	tl := NewTimeline()
	tl.Commit("Doctor Notes", "hand-picked")

	entries := tl.AutoPopulateIfEmpty(store)
	if len(entries) != 1 {
		t.Fatalf("Expected existing timeline untouched, got %d entries", len(entries))
	}
	if entries[0].Title != "Doctor Notes" {
		t.Errorf("Expected committed entry preserved, got %q", entries[0].Title)
	}
}

func TestCommitStage_EmptyDraftCommitsNA(t *testing.T) {
	sess := New()
	sess.CommitStage(StageDoctorNotes)

	entries := sess.Timeline.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Content != "N/A" {
		t.Errorf("Expected N/A placeholder, got %q", entries[0].Content)
	}
}

func TestCommitUploadsSummary(t *testing.T) {
	sess := New()
	sess.CommitUploadsSummary()
	if got := sess.Timeline.Entries()[0].Content; got != "None" {
		t.Errorf("Expected 'None' for empty uploads, got %q", got)
	}

	sess.Uploads.Add(Upload{Name: "xray.png", Kind: KindImage})
	sess.Uploads.Add(Upload{Name: "labs.pdf", Kind: KindDocument})
	sess.CommitUploadsSummary()

	got := sess.Timeline.Entries()[1].Content
	want := "xray.png (image)\nlabs.pdf (document)"
	if got != want {
		t.Errorf("Expected summary %q, got %q", want, got)
	}
}
