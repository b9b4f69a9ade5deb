// Package session holds the in-memory state of one operator session:
// the patient record, the workflow stage store, uploaded test results
// and the report timeline. Nothing here is persisted; a session lives
// exactly as long as the process that owns it.
package session

import (
	"fmt"
	"strings"
)

// Gender is the patient's declared gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// AllGenders returns the valid gender values in display order.
func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// Valid reports whether g is one of the known gender values.
// The empty string is accepted for an unsaved profile.
func (g Gender) Valid() bool {
	switch g {
	case "", GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Patient is the single active patient record of a session. It is
// overwritten wholesale by "save profile" and never deleted.
type Patient struct {
	Name        string
	Age         int
	Gender      Gender
	Location    string
	PastHistory string
	Calories    int     // approximate daily calorie intake
	Steps       int     // average steps per day
	SleepHours  float64 // average sleep per night
	HeartRate   int     // resting heart rate, bpm
}

// Validate checks field ranges. A zero heart rate is treated as
// "not entered" so that a fresh, untouched record stays valid.
func (p *Patient) Validate() error {
	if p.Age < 0 || p.Age > 130 {
		return fmt.Errorf("age must be between 0 and 130, got %d", p.Age)
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("invalid gender %q", p.Gender)
	}
	if p.Calories < 0 {
		return fmt.Errorf("daily calories must be >= 0, got %d", p.Calories)
	}
	if p.Steps < 0 {
		return fmt.Errorf("average steps must be >= 0, got %d", p.Steps)
	}
	if p.SleepHours < 0 || p.SleepHours > 24 {
		return fmt.Errorf("sleep hours must be between 0 and 24, got %g", p.SleepHours)
	}
	if p.HeartRate != 0 && (p.HeartRate < 30 || p.HeartRate > 200) {
		return fmt.Errorf("resting heart rate must be between 30 and 200, got %d", p.HeartRate)
	}
	return nil
}

// Field is one labeled patient attribute, used for the report's
// patient-information block and for prompt interpolation.
type Field struct {
	Label string
	Value string
}

// Fields returns every patient attribute in fixed record order.
// Unset text fields come back blank and unset numbers as zeros; the
// renderer prints them as-is.
func (p Patient) Fields() []Field {
	return []Field{
		{"Name", p.Name},
		{"Age", fmt.Sprintf("%d", p.Age)},
		{"Gender", string(p.Gender)},
		{"Location", p.Location},
		{"Past History", p.PastHistory},
		{"Daily Calories", fmt.Sprintf("%d", p.Calories)},
		{"Average Steps/Day", fmt.Sprintf("%d", p.Steps)},
		{"Avg Sleep (hrs)", fmt.Sprintf("%g", p.SleepHours)},
		{"Resting Heart Rate (bpm)", fmt.Sprintf("%d", p.HeartRate)},
	}
}

// Profile renders the record as a single prompt-friendly line,
// e.g. "Name: Jane Doe; Age: 34; Gender: female; ...".
func (p Patient) Profile() string {
	fields := p.Fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Label+": "+f.Value)
	}
	return strings.Join(parts, "; ")
}
