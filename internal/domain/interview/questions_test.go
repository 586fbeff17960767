package interview

import (
	"testing"

	"github.com/symptomcare/symptomcare/internal/domain/catalog"
)

func TestUniversalQuestions_Order(t *testing.T) {
	qs := UniversalQuestions()
	if len(qs) != 4 {
		t.Fatalf("expected 4 intake questions, got %d", len(qs))
	}
	wantIDs := []string{"age", "severity", "current_medications", "other_symptoms"}
	for i, want := range wantIDs {
		if qs[i].ID != want {
			t.Errorf("question %d id = %q, want %q", i, qs[i].ID, want)
		}
		if qs[i].Type != "choice" {
			t.Errorf("question %q type = %q, want choice", qs[i].ID, qs[i].Type)
		}
		if len(qs[i].Options) < 3 {
			t.Errorf("question %q has %d options", qs[i].ID, len(qs[i].Options))
		}
	}
}

func TestUniversalQuestions_ReturnsCopies(t *testing.T) {
	qs := UniversalQuestions()
	qs[0].Text = "tampered"
	qs[0].Options[0] = "tampered"

	again := UniversalQuestions()
	if again[0].Text == "tampered" || again[0].Options[0] == "tampered" {
		t.Error("mutating a returned question changed the fixed set")
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		answer        string
		wantYears     int
		wantDefaulted bool
	}{
		{"Under 18", 15, false},
		{"18-30", 25, false},
		{"31-45", 38, false},
		{"46-60", 53, false},
		{"Over 60", 65, false},
		// Full option text and decorated labels parse by contained token.
		{"I am in the 31-45 range", 38, false},
		{"no idea", 30, true},
		{"", 30, true},
	}
	for _, tt := range tests {
		years, defaulted := parseAge(tt.answer)
		if years != tt.wantYears || defaulted != tt.wantDefaulted {
			t.Errorf("parseAge(%q) = (%d, %v), want (%d, %v)",
				tt.answer, years, defaulted, tt.wantYears, tt.wantDefaulted)
		}
	}
}

func TestParseAge_EveryOptionMaps(t *testing.T) {
	for _, opt := range universalQuestions[0].Options {
		if _, defaulted := parseAge(opt); defaulted {
			t.Errorf("option %q did not parse", opt)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		answer        string
		wantSeverity  int
		wantDefaulted bool
	}{
		{"0-2 (Minimal)", 2, false},
		{"3-6 (Moderate)", 5, false},
		{"7-10 (Severe)", 8, false},
		{"0-2", 2, false},
		{"dunno", 5, true},
		{"", 5, true},
	}
	for _, tt := range tests {
		severity, defaulted := parseSeverity(tt.answer)
		if severity != tt.wantSeverity || defaulted != tt.wantDefaulted {
			t.Errorf("parseSeverity(%q) = (%d, %v), want (%d, %v)",
				tt.answer, severity, defaulted, tt.wantSeverity, tt.wantDefaulted)
		}
	}
}

func TestParseSeverity_EveryOptionMaps(t *testing.T) {
	for _, opt := range universalQuestions[1].Options {
		if _, defaulted := parseSeverity(opt); defaulted {
			t.Errorf("option %q did not parse", opt)
		}
	}
}

func TestParseListAnswer(t *testing.T) {
	tests := []struct {
		answer string
		want   []string
	}{
		{"None", nil},
		{"none", nil},
		{"NONE", nil},
		{"", nil},
		{"   ", nil},
		{"Ibuprofen", []string{"Ibuprofen"}},
		{"  Fever  ", []string{"Fever"}},
	}
	for _, tt := range tests {
		got := parseListAnswer(tt.answer)
		if len(got) != len(tt.want) {
			t.Errorf("parseListAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseListAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		}
	}
}

func TestAssembleProfile(t *testing.T) {
	sess := &Session{
		Symptom:    "fever",
		Conditions: []string{"kidney disease"},
		Pregnant:   true,
		Allergies:  []string{"ibuprofen"},
		UniversalAnswers: []QA{
			{QuestionID: "age", Answer: "Under 18"},
			{QuestionID: "severity", Answer: "0-2 (Minimal)"},
			{QuestionID: "current_medications", Answer: "Aspirin"},
			{QuestionID: "other_symptoms", Answer: "Fatigue"},
		},
	}

	p := assembleProfile(sess)
	if p.PrimarySymptom != "fever" {
		t.Errorf("primary symptom = %q", p.PrimarySymptom)
	}
	if p.AgeYears != 15 || p.AgeGroup != catalog.AgeChild || p.AgeDefaulted {
		t.Errorf("age = %d/%s defaulted=%v, want 15/child/false", p.AgeYears, p.AgeGroup, p.AgeDefaulted)
	}
	if p.Severity != 2 || p.SeverityDefaulted {
		t.Errorf("severity = %d defaulted=%v, want 2/false", p.Severity, p.SeverityDefaulted)
	}
	if len(p.CurrentMedications) != 1 || p.CurrentMedications[0] != "Aspirin" {
		t.Errorf("medications = %v", p.CurrentMedications)
	}
	if len(p.SecondarySymptoms) != 1 || p.SecondarySymptoms[0] != "Fatigue" {
		t.Errorf("secondary symptoms = %v", p.SecondarySymptoms)
	}
	if len(p.Conditions) != 1 || p.Conditions[0] != "kidney disease" {
		t.Errorf("conditions = %v", p.Conditions)
	}
	if !p.Pregnant {
		t.Error("pregnant hint was dropped")
	}
	if len(p.Allergies) != 1 || p.Allergies[0] != "ibuprofen" {
		t.Errorf("allergies = %v", p.Allergies)
	}
}

func TestAssembleProfile_DefaultsWhenUnanswered(t *testing.T) {
	sess := &Session{Symptom: "headache"}

	p := assembleProfile(sess)
	if p.AgeYears != 30 || p.AgeGroup != catalog.AgeAdult || !p.AgeDefaulted {
		t.Errorf("age = %d/%s defaulted=%v, want 30/adult/true", p.AgeYears, p.AgeGroup, p.AgeDefaulted)
	}
	if p.Severity != 5 || !p.SeverityDefaulted {
		t.Errorf("severity = %d defaulted=%v, want 5/true", p.Severity, p.SeverityDefaulted)
	}
	if len(p.CurrentMedications) != 0 || len(p.SecondarySymptoms) != 0 {
		t.Errorf("expected empty lists, got meds=%v symptoms=%v", p.CurrentMedications, p.SecondarySymptoms)
	}
}

func TestAssembleProfile_NoneAnswersParseEmpty(t *testing.T) {
	sess := &Session{
		Symptom: "cough",
		UniversalAnswers: []QA{
			{QuestionID: "age", Answer: "18-30"},
			{QuestionID: "severity", Answer: "3-6 (Moderate)"},
			{QuestionID: "current_medications", Answer: "None"},
			{QuestionID: "other_symptoms", Answer: "None"},
		},
	}

	p := assembleProfile(sess)
	if len(p.CurrentMedications) != 0 {
		t.Errorf("medications = %v, want empty", p.CurrentMedications)
	}
	if len(p.SecondarySymptoms) != 0 {
		t.Errorf("secondary symptoms = %v, want empty", p.SecondarySymptoms)
	}
}
