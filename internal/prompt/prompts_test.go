package prompt

import (
	"strings"
	"testing"

	"github.com/careers2017uae-bot/SmartDiago/internal/session"
)

func TestFor_AllGeneratedStagesPresent(t *testing.T) {
	for _, stage := range Stages() {
		sp, ok := For(stage)
		if !ok {
			t.Fatalf("No spec for stage %s", stage)
		}
		if sp.System == "" {
			t.Errorf("Stage %s: empty system instruction", stage)
		}
		if sp.MaxTokens <= 0 {
			t.Errorf("Stage %s: MaxTokens must be positive, got %d", stage, sp.MaxTokens)
		}
	}
}

func TestFor_OperatorOnlyStagesExcluded(t *testing.T) {
	for _, stage := range []session.Stage{
		session.StageSymptoms,
		session.StageDoctorNotes,
		session.StageFinalPrescription,
	} {
		if _, ok := For(stage); ok {
			t.Errorf("Stage %s is operator-only and must not have a prompt spec", stage)
		}
	}
}

func TestDeps_OneDirectional(t *testing.T) {
	order := map[session.Stage]int{}
	for i, stage := range session.AllStages() {
		order[stage] = i
	}

	for _, stage := range Stages() {
		sp, _ := For(stage)
		for _, dep := range sp.Deps {
			if order[dep] >= order[stage] {
				t.Errorf("Stage %s depends on %s, which is not an earlier stage", stage, dep)
			}
		}
	}
}

func TestBuild_InterpolatesPatientAndSymptoms(t *testing.T) {
	sess := session.New()
	sess.Patient = session.Patient{Name: "Jane Doe", Age: 34, Gender: session.GenderFemale}
	sess.Stages.Edit(session.StageSymptoms, "fever and cough for 3 days")

	sp, _ := For(session.StageInitialDiagnostic)
	prompt := sp.Build(sess)

	if !strings.Contains(prompt, "Jane Doe") {
		t.Error("Prompt missing patient name")
	}
	if !strings.Contains(prompt, "fever and cough for 3 days") {
		t.Error("Prompt missing symptoms text")
	}
}

func TestBuild_EmptyDependenciesInterpolateAsEmpty(t *testing.T) {
	sess := session.New()

	for _, stage := range Stages() {
		sp, _ := For(stage)
		prompt := sp.Build(sess)
		if prompt == "" {
			t.Errorf("Stage %s: empty prompt from empty session", stage)
		}
		if !strings.Contains(prompt, "Task") {
			t.Errorf("Stage %s: prompt missing task section", stage)
		}
	}
}

func TestBuild_FinalDiagnosticListsUploads(t *testing.T) {
	sess := session.New()
	sess.Uploads.Add(session.Upload{Name: "xray.png", Kind: session.KindImage})
	sess.Uploads.Add(session.Upload{Name: "labs.pdf", Kind: session.KindDocument})

	sp, _ := For(session.StageFinalDiagnostic)
	prompt := sp.Build(sess)
	if !strings.Contains(prompt, "xray.png, labs.pdf") {
		t.Errorf("Final diagnostic prompt missing upload names: %q", prompt)
	}
}

func TestBuild_FollowupPrefersPrescription(t *testing.T) {
	sess := session.New()
	sess.Stages.SetGenerated(session.StageFinalDiagnostic, "ai draft diagnosis")
	sess.Stages.Edit(session.StageFinalPrescription, "confirmed: rest and fluids")

	sp, _ := For(session.StageFollowupPlan)
	prompt := sp.Build(sess)
	if !strings.Contains(prompt, "confirmed: rest and fluids") {
		t.Error("Follow-up prompt should use the confirmed prescription")
	}
	if strings.Contains(prompt, "ai draft diagnosis") {
		t.Error("Follow-up prompt should not fall back when a prescription exists")
	}
}
