package session

import (
	"errors"
	"testing"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        UploadKind
	}{
		{"xray.png", "", KindImage},
		{"scan.JPG", "", KindImage},
		{"photo.jpeg", "image/jpeg", KindImage},
		{"labs.pdf", "", KindDocument},
		{"labs.pdf", "application/pdf", KindDocument},
		{"series.dcm", "", KindDocument},
		{"report", "", KindDocument},
		{"weird.png.pdf", "", KindDocument},
		{"blob", "image/png", KindImage},
	}

	for _, tt := range tests {
		if got := DetectKind(tt.name, tt.contentType); got != tt.want {
			t.Errorf("DetectKind(%q, %q) = %s, want %s", tt.name, tt.contentType, got, tt.want)
		}
	}
}

func TestUploadList_AppendOnlyOrder(t *testing.T) {
	list := NewUploadList()
	list.Add(Upload{Name: "a.png", Kind: KindImage})
	list.Add(Upload{Name: "b.pdf", Kind: KindDocument})
	list.Add(Upload{Name: "a.png", Kind: KindImage}) // duplicates allowed

	if list.Len() != 3 {
		t.Fatalf("Expected 3 uploads, got %d", list.Len())
	}

	names := list.Names()
	want := []string{"a.png", "b.pdf", "a.png"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Upload %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestUploadList_ItemsReturnsCopy(t *testing.T) {
	list := NewUploadList()
	list.Add(Upload{Name: "a.png", Kind: KindImage})

	items := list.Items()
	items[0].Name = "mutated"

	if list.Items()[0].Name != "a.png" {
		t.Error("Mutating the returned slice changed upload state")
	}
}

func TestDecodeTextFile(t *testing.T) {
	text, err := DecodeTextFile("symptoms.txt", []byte("fever for 3 days"))
	if err != nil {
		t.Fatalf("DecodeTextFile failed: %v", err)
	}
	if text != "fever for 3 days" {
		t.Errorf("Expected decoded text, got %q", text)
	}
}

func TestDecodeTextFile_InvalidUTF8(t *testing.T) {
	_, err := DecodeTextFile("symptoms.bin", []byte{0xff, 0xfe, 0x00, 0x41})
	if err == nil {
		t.Fatal("Expected decode error for invalid UTF-8")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected *DecodeError, got %T", err)
	}
	if decodeErr.Name != "symptoms.bin" {
		t.Errorf("Expected filename in error, got %q", decodeErr.Name)
	}
}

func TestPatient_Validate(t *testing.T) {
	p := &Patient{}
	if err := p.Validate(); err != nil {
		t.Errorf("Fresh empty record should validate, got %v", err)
	}

	p = &Patient{Age: 34, Gender: GenderFemale, SleepHours: 7, HeartRate: 72}
	if err := p.Validate(); err != nil {
		t.Errorf("Valid record rejected: %v", err)
	}

	bad := []Patient{
		{Age: -1},
		{Age: 131},
		{Gender: "unknown"},
		{Calories: -1},
		{Steps: -5},
		{SleepHours: 25},
		{HeartRate: 20},
		{HeartRate: 250},
	}
	for i, b := range bad {
		if err := b.Validate(); err == nil {
			t.Errorf("Case %d: expected validation error for %+v", i, b)
		}
	}
}

func TestPatient_FieldsOrderStable(t *testing.T) {
	p := Patient{Name: "Jane Doe", Age: 34, Gender: GenderFemale}
	fields := p.Fields()

	wantLabels := []string{
		"Name", "Age", "Gender", "Location", "Past History",
		"Daily Calories", "Average Steps/Day", "Avg Sleep (hrs)",
		"Resting Heart Rate (bpm)",
	}
	if len(fields) != len(wantLabels) {
		t.Fatalf("Expected %d fields, got %d", len(wantLabels), len(fields))
	}
	for i, want := range wantLabels {
		if fields[i].Label != want {
			t.Errorf("Field %d: expected label %q, got %q", i, want, fields[i].Label)
		}
	}
	if fields[0].Value != "Jane Doe" {
		t.Errorf("Expected name value, got %q", fields[0].Value)
	}
}
