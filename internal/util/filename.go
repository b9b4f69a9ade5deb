// Package util holds small shared helpers.
package util

import "strings"

const reportSuffix = "_Report.pdf"

// SanitizeFileName reduces s to a safe filename fragment: letters,
// digits, dash and underscore; spaces become underscores, runs
// collapse, everything else is dropped.
func SanitizeFileName(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		case r == ' ', r == '_':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// ReportFileName builds the report filename from the patient name,
// falling back to a placeholder when the profile has no name yet.
func ReportFileName(patientName string) string {
	name := SanitizeFileName(patientName)
	if name == "" {
		name = "patient"
	}
	return name + reportSuffix
}
