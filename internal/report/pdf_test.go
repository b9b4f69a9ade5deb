package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careers2017uae-bot/SmartDiago/internal/session"
)

var testTime = time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)

func TestRender_EmptySessionWithUpload(t *testing.T) {
	uploads := []session.Upload{{Name: "xray.png", Kind: session.KindImage}}

	out, err := Render(session.Patient{}, nil, uploads, testTime)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output must be a PDF")

	// Core-font PDF content streams are compressed, so assert structure
	// indirectly: a non-trivial single-page document came out.
	assert.Greater(t, len(out), 1000)
}

func TestRender_Deterministic(t *testing.T) {
	patient := session.Patient{Name: "Jane Doe", Age: 34, Gender: session.GenderFemale}
	timeline := []session.Entry{
		{Title: "Initial AI Diagnostic", Content: "Likely viral URI."},
		{Title: "Doctor Notes", Content: "No red flags on exam."},
	}
	uploads := []session.Upload{{Name: "labs.pdf", Kind: session.KindDocument}}

	first, err := Render(patient, timeline, uploads, testTime)
	require.NoError(t, err)
	second, err := Render(patient, timeline, uploads, testTime)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce identical bytes")
}

func TestRender_DiffersOnlyWithTimestamp(t *testing.T) {
	patient := session.Patient{Name: "Jane Doe"}

	first, err := Render(patient, nil, nil, testTime)
	require.NoError(t, err)
	second, err := Render(patient, nil, nil, testTime.Add(time.Hour))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRender_DoesNotMutateInputs(t *testing.T) {
	timeline := []session.Entry{{Title: "Doctor Notes", Content: "stable"}}
	uploads := []session.Upload{{Name: "xray.png", Kind: session.KindImage}}

	_, err := Render(session.Patient{}, timeline, uploads, testTime)
	require.NoError(t, err)

	assert.Equal(t, "stable", timeline[0].Content)
	assert.Equal(t, "xray.png", uploads[0].Name)
}

func TestRender_UnsupportedEncodingFails(t *testing.T) {
	timeline := []session.Entry{{Title: "Doctor Notes", Content: "症状は発熱"}}

	out, err := Render(session.Patient{}, timeline, nil, testTime)
	assert.Nil(t, out, "no partial file on failure")

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
}

func TestRender_Latin1AccentsSupported(t *testing.T) {
	patient := session.Patient{Name: "Héloïse Müller", Location: "Besançon"}

	out, err := Render(patient, nil, nil, testTime)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRender_DuplicateEntriesBothRendered(t *testing.T) {
	dup := session.Entry{Title: "Doctor Notes", Content: "no complaints"}

	single, err := Render(session.Patient{}, []session.Entry{dup}, nil, testTime)
	require.NoError(t, err)
	double, err := Render(session.Patient{}, []session.Entry{dup, dup}, nil, testTime)
	require.NoError(t, err)

	assert.NotEqual(t, single, double, "a duplicate commit must change the document")
}
