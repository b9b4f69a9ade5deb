package session

// Session is the root of one operator session's state graph. It is
// owned by whoever drives the workflow (the wizard, or the headless
// render path) and passed explicitly; there are no package singletons.
type Session struct {
	Patient  Patient
	Stages   *StageStore
	Uploads  *UploadList
	Timeline *Timeline
}

// New returns a fresh session: empty patient record, all stages empty,
// no uploads, empty timeline.
func New() *Session {
	return &Session{
		Stages:   NewStageStore(),
		Uploads:  NewUploadList(),
		Timeline: NewTimeline(),
	}
}

// CommitStage snapshots the stage's current content into the timeline
// under the stage's display title. Empty drafts commit as "N/A" so the
// report block is visibly present; the final prescription block falls
// back to the AI final diagnostic when the clinician never confirmed a
// prescription.
func (s *Session) CommitStage(stage Stage) {
	content := s.Stages.Content(stage)
	if stage == StageFinalPrescription && content == "" {
		content = s.Stages.Content(StageFinalDiagnostic)
	}
	if content == "" {
		content = "N/A"
	}
	s.Timeline.Commit(stage.Title(), content)
}

// CommitUploadsSummary commits the uploaded-results listing as its own
// timeline block.
func (s *Session) CommitUploadsSummary() {
	s.Timeline.Commit("Uploaded Results", s.Uploads.Summary())
}
