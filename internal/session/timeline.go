package session

// Entry is one committed report block: a frozen snapshot of some
// stage's content at the moment of commit. Later edits to the source
// stage do not propagate here.
type Entry struct {
	Title   string
	Content string
}

// Timeline is the append-only ordered log that feeds the final report.
// Entries keep commit order; there is no reordering, dedup or deletion.
type Timeline struct {
	entries []Entry
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Commit appends a new entry unconditionally.
func (t *Timeline) Commit(title, content string) {
	t.entries = append(t.entries, Entry{Title: title, Content: content})
}

// Entries returns a copy of the committed entries in commit order.
func (t *Timeline) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of committed entries.
func (t *Timeline) Len() int { return len(t.entries) }

// Empty reports whether nothing has been committed yet.
func (t *Timeline) Empty() bool { return len(t.entries) == 0 }

// autoPopulateOrder is the fixed default report structure used when the
// operator never committed anything: the four core blocks, in workflow
// order, with the titles the report has always used.
var autoPopulateOrder = []struct {
	stage Stage
	title string
}{
	{StageInitialDiagnostic, "Initial AI Diagnostic"},
	{StageDoctorNotes, "Doctor Notes"},
	{StageTestRecommendations, "Tests & Radiology"},
	{StageFinalPrescription, "Final Diagnostic & Prescription"},
}

// AutoPopulateIfEmpty synthesizes the default entries from the current
// stage contents when the timeline is empty, then returns the entries.
// This is a rendering convenience, not a validation step: empty stage
// contents produce entries with empty bodies. The final block prefers
// the clinician-confirmed prescription over the AI draft.
func (t *Timeline) AutoPopulateIfEmpty(store *StageStore) []Entry {
	if !t.Empty() {
		return t.Entries()
	}
	for _, def := range autoPopulateOrder {
		content := store.Content(def.stage)
		if def.stage == StageFinalPrescription && content == "" {
			content = store.Content(StageFinalDiagnostic)
		}
		t.Commit(def.title, content)
	}
	return t.Entries()
}
