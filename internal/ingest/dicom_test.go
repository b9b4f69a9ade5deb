package ingest

import (
	"bytes"
	"testing"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

func mustNewElement(t tag.Tag, value interface{}) *dicom.Element {
	elem, err := dicom.NewElement(t, value)
	if err != nil {
		panic(err)
	}
	return elem
}

// writeTestDICOM builds a minimal DICOM object in memory.
func writeTestDICOM(t *testing.T) []byte {
	t.Helper()

	ds := dicom.Dataset{Elements: []*dicom.Element{
		mustNewElement(tag.TransferSyntaxUID, []string{"1.2.840.10008.1.2.1"}),
		mustNewElement(tag.SOPClassUID, []string{"1.2.840.10008.5.1.4.1.1.4"}),
		mustNewElement(tag.SOPInstanceUID, []string{"1.2.826.0.1.3680043.8.498.1"}),
		mustNewElement(tag.PatientName, []string{"DOE^Jane"}),
		mustNewElement(tag.PatientID, []string{"PAT000001"}),
		mustNewElement(tag.Modality, []string{"MR"}),
		mustNewElement(tag.StudyDescription, []string{"BRAIN MRI"}),
	}}

	var buf bytes.Buffer
	if err := dicom.Write(&buf, ds); err != nil {
		t.Fatalf("Failed to write test DICOM: %v", err)
	}
	return buf.Bytes()
}

func TestIsDICOM_Magic(t *testing.T) {
	data := writeTestDICOM(t)
	if !IsDICOM("upload.bin", data) {
		t.Error("Expected DICM magic to be recognized regardless of filename")
	}
}

func TestIsDICOM_Suffix(t *testing.T) {
	if !IsDICOM("series.dcm", []byte("short")) {
		t.Error("Expected .dcm suffix to be recognized")
	}
	if !IsDICOM("series.DICOM", []byte("short")) {
		t.Error("Expected .dicom suffix to be recognized case-insensitively")
	}
	if IsDICOM("xray.png", []byte("not a dicom")) {
		t.Error("Expected plain file to be rejected")
	}
}

func TestDescribe_ExtractsMetadata(t *testing.T) {
	data := writeTestDICOM(t)

	info, err := Describe(data)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if info.Modality != "MR" {
		t.Errorf("Expected modality MR, got %q", info.Modality)
	}
	if info.StudyDescription != "BRAIN MRI" {
		t.Errorf("Expected study description, got %q", info.StudyDescription)
	}
	if info.PatientName != "DOE^Jane" {
		t.Errorf("Expected patient name, got %q", info.PatientName)
	}
}

func TestDescribe_GarbageFails(t *testing.T) {
	if _, err := Describe([]byte("definitely not a dicom file")); err == nil {
		t.Error("Expected parse error for garbage input")
	}
}

func TestAnnotation(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Modality: "MR", StudyDescription: "BRAIN MRI"}, "MR, BRAIN MRI"},
		{Info{Modality: "CT"}, "CT"},
		{Info{StudyDescription: "CHEST"}, "CHEST"},
		{Info{}, ""},
	}
	for _, tt := range tests {
		if got := tt.info.Annotation(); got != tt.want {
			t.Errorf("Annotation(%+v) = %q, want %q", tt.info, got, tt.want)
		}
	}
}
