package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "Jane_Doe"},
		{"  Jane   Doe  ", "Jane_Doe"},
		{"O'Brien, Seán", "OBrien_Sen"},
		{"x-ray/2024\\report", "x-ray2024report"},
		{"", ""},
		{"___", ""},
		{"PAT-000123", "PAT-000123"},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReportFileName(t *testing.T) {
	if got := ReportFileName("Jane Doe"); got != "Jane_Doe_Report.pdf" {
		t.Errorf("Expected Jane_Doe_Report.pdf, got %q", got)
	}
	if got := ReportFileName(""); got != "patient_Report.pdf" {
		t.Errorf("Expected placeholder filename, got %q", got)
	}
	if got := ReportFileName("!!!"); got != "patient_Report.pdf" {
		t.Errorf("Expected placeholder for unsanitizable name, got %q", got)
	}
}
