package interview

import (
	"strings"

	"github.com/symptomcare/symptomcare/internal/domain/catalog"
	"github.com/symptomcare/symptomcare/internal/domain/safety"
)

// The four intake questions, asked for every symptom in this order. IDs are
// load-bearing: the band parsers and the gateway prompts key on them.
var universalQuestions = []Question{
	{
		ID:      "age",
		Text:    "What is your age?",
		Type:    "choice",
		Options: []string{"Under 18", "18-30", "31-45", "46-60", "Over 60"},
	},
	{
		ID:      "severity",
		Text:    "On a scale of 0-10, how severe is your symptom? (0=none, 2=mild, 6=moderate, 10=unbearable)",
		Type:    "choice",
		Options: []string{"0-2 (Minimal)", "3-6 (Moderate)", "7-10 (Severe)"},
	},
	{
		ID:      "current_medications",
		Text:    "Are you currently taking any medications?",
		Type:    "choice",
		Options: []string{"None", "Paracetamol", "Ibuprofen", "Aspirin", "Blood pressure meds", "Diabetes meds", "Other"},
	},
	{
		ID:      "other_symptoms",
		Text:    "Are you experiencing any other symptoms along with this?",
		Type:    "choice",
		Options: []string{"Fever", "Fatigue", "Body pain", "Nausea", "Dizziness", "None", "Other"},
	},
}

// UniversalQuestions returns the fixed intake questions in asked order.
func UniversalQuestions() []Question {
	return copyQuestions(universalQuestions)
}

// ageBands maps a contained band token to the representative age used by the
// safety rules. Order matters: "Under 18" must match before the bare "18-30"
// token gets a chance.
var ageBands = []struct {
	token string
	years int
}{
	{"Under 18", 15},
	{"18-30", 25},
	{"31-45", 38},
	{"46-60", 53},
	{"Over 60", 65},
}

const (
	defaultAgeYears = 30
	defaultSeverity = 5
)

// parseAge maps an age answer to representative years. Matching is by
// contained band token so both the bare label and any decorated option text
// parse. Anything unrecognized defaults to an adult and flags it.
func parseAge(answer string) (years int, defaulted bool) {
	for _, b := range ageBands {
		if strings.Contains(answer, b.token) {
			return b.years, false
		}
	}
	return defaultAgeYears, true
}

var severityBands = []struct {
	token    string
	severity int
}{
	{"0-2", 2},
	{"3-6", 5},
	{"7-10", 8},
}

// parseSeverity maps a severity answer to a representative 0-10 score.
// Unrecognized answers default to moderate and flag it.
func parseSeverity(answer string) (severity int, defaulted bool) {
	for _, b := range severityBands {
		if strings.Contains(answer, b.token) {
			return b.severity, false
		}
	}
	return defaultSeverity, true
}

// parseListAnswer turns a single-choice answer into a list for the profile.
// "None" (any case) and blank answers mean an empty list.
func parseListAnswer(answer string) []string {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" || strings.EqualFold(trimmed, "none") {
		return nil
	}
	return []string{trimmed}
}

// answerValue returns the stored answer for a question id, or "" when it was
// never answered.
func answerValue(qas []QA, id string) string {
	for _, qa := range qas {
		if qa.QuestionID == id {
			return qa.Answer
		}
	}
	return ""
}

// assembleProfile builds the safety filter's input from the session. Band
// parsing is total: severity and age are always concrete, with conservative
// defaults recorded on the profile when an answer did not parse.
func assembleProfile(s *Session) safety.PatientProfile {
	years, ageDefaulted := parseAge(answerValue(s.UniversalAnswers, "age"))
	severity, severityDefaulted := parseSeverity(answerValue(s.UniversalAnswers, "severity"))

	return safety.PatientProfile{
		PrimarySymptom:     s.Symptom,
		SecondarySymptoms:  parseListAnswer(answerValue(s.UniversalAnswers, "other_symptoms")),
		Severity:           severity,
		AgeYears:           years,
		AgeGroup:           catalog.AgeGroupFor(years),
		Conditions:         copyStrings(s.Conditions),
		CurrentMedications: parseListAnswer(answerValue(s.UniversalAnswers, "current_medications")),
		Pregnant:           s.Pregnant,
		Allergies:          copyStrings(s.Allergies),
		SeverityDefaulted:  severityDefaulted,
		AgeDefaulted:       ageDefaulted,
	}
}
