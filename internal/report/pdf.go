// Package report serializes a session into the printable patient
// report: a fixed-layout PDF with a title block, generation timestamp,
// patient information, one block per timeline entry, and a listing of
// uploaded files (by name and kind only; upload content is never
// embedded).
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/careers2017uae-bot/SmartDiago/internal/session"
)

const (
	reportTitle = "SmartDiago - Patient Report"
	disclaimer  = "Prototype / educational use only. Not a replacement for professional medical advice."
	timeFormat  = "2006-01-02 15:04:05"
)

// RenderError reports a document assembly failure. No partial file is
// ever produced.
type RenderError struct {
	Reason string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render report: %s: %v", e.Reason, e.Err)
	}
	return "render report: " + e.Reason
}

func (e *RenderError) Unwrap() error { return e.Err }

// Render produces the report PDF. It is a pure function of its inputs:
// identical arguments (including generatedAt) yield identical bytes,
// and no input is mutated. Text outside the document's Windows-1252
// encoding fails with RenderError.
func Render(patient session.Patient, timeline []session.Entry, uploads []session.Upload, generatedAt time.Time) ([]byte, error) {
	if err := checkEncodable(patient, timeline, uploads); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("") // UTF-8 -> cp1252

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, "Generated: "+generatedAt.Format(timeFormat), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, "Patient Information:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, f := range patient.Fields() {
		pdf.MultiCell(0, 6, tr(f.Label+": "+f.Value), "", "L", false)
	}
	pdf.Ln(3)

	for _, entry := range timeline {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 7, tr(entry.Title), "", "L", false)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(entry.Content), "", "L", false)
		pdf.Ln(2)
	}

	if len(uploads) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 7, "Uploaded Files:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		for _, u := range uploads {
			line := fmt.Sprintf("- %s (%s)", u.Name, u.Kind)
			if u.Annotation != "" {
				line += " - " + u.Annotation
			}
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, disclaimer, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Reason: "writing document", Err: err}
	}
	return buf.Bytes(), nil
}

// checkEncodable verifies every piece of text fits the document's
// single-byte encoding before any layout happens, so a failure never
// leaves a partial file.
func checkEncodable(patient session.Patient, timeline []session.Entry, uploads []session.Upload) error {
	check := func(context, s string) error {
		if _, err := charmap.Windows1252.NewEncoder().String(s); err != nil {
			return &RenderError{Reason: fmt.Sprintf("%s contains text outside the supported encoding", context), Err: err}
		}
		return nil
	}

	for _, f := range patient.Fields() {
		if err := check("patient field "+f.Label, f.Value); err != nil {
			return err
		}
	}
	for _, e := range timeline {
		if err := check("timeline entry title", e.Title); err != nil {
			return err
		}
		if err := check(fmt.Sprintf("timeline entry %q", e.Title), e.Content); err != nil {
			return err
		}
	}
	for _, u := range uploads {
		if err := check("upload name", u.Name); err != nil {
			return err
		}
		if err := check("upload annotation", u.Annotation); err != nil {
			return err
		}
	}
	return nil
}
