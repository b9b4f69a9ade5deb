// Package ingest inspects uploaded test-result files. DICOM files are
// recognized and a short annotation (modality, study description) is
// extracted for the report's upload listing; everything else passes
// through untouched as an opaque blob.
package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

const preambleLength = 128

// IsDICOM reports whether the file looks like a DICOM object, by the
// standard "DICM" magic after the 128-byte preamble or by suffix.
func IsDICOM(name string, data []byte) bool {
	if len(data) >= preambleLength+4 && string(data[preambleLength:preambleLength+4]) == "DICM" {
		return true
	}
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".dcm") || strings.HasSuffix(lower, ".dicom")
}

// Info is the metadata surfaced for an uploaded DICOM file.
type Info struct {
	Modality         string
	StudyDescription string
	PatientName      string
}

// Annotation renders the info as the short suffix shown in the report
// listing, e.g. "MR, BRAIN MRI".
func (i Info) Annotation() string {
	parts := make([]string, 0, 2)
	if i.Modality != "" {
		parts = append(parts, i.Modality)
	}
	if i.StudyDescription != "" {
		parts = append(parts, i.StudyDescription)
	}
	return strings.Join(parts, ", ")
}

// Describe parses a DICOM object and extracts its report annotation
// metadata. The upload itself stays an opaque blob either way.
func Describe(data []byte) (Info, error) {
	ds, err := dicom.Parse(bytes.NewReader(data), int64(len(data)), nil)
	if err != nil {
		return Info{}, fmt.Errorf("parse DICOM: %w", err)
	}
	return Info{
		Modality:         stringValue(ds, tag.Modality),
		StudyDescription: stringValue(ds, tag.StudyDescription),
		PatientName:      stringValue(ds, tag.PatientName),
	}, nil
}

// stringValue reads the first string of an element, or "" when the tag
// is absent or not string-valued.
func stringValue(ds dicom.Dataset, t tag.Tag) string {
	elem, err := ds.FindElementByTag(t)
	if err != nil || elem == nil {
		return ""
	}
	if vals, ok := elem.Value.GetValue().([]string); ok && len(vals) > 0 {
		return strings.TrimSpace(vals[0])
	}
	return ""
}
