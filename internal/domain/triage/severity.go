package triage

import "strings"

// SeverityLevel is the coarse band assigned by the free-text severity scan.
type SeverityLevel string

const (
	SeverityEmergency SeverityLevel = "EMERGENCY"
	SeverityHigh      SeverityLevel = "HIGH"
	SeverityModerate  SeverityLevel = "MODERATE"
	SeverityLow       SeverityLevel = "LOW"
	SeverityMinimal   SeverityLevel = "MINIMAL"
)

// severityTier couples a keyword list with the score it asserts. Scoring is
// max-wins: the highest tier with a match sets the score.
type severityTier struct {
	score    int
	keywords []string
}

var severityTiers = []severityTier{
	{score: 95, keywords: []string{
		"chest pain", "difficulty breathing", "severe bleeding", "unconscious",
		"stroke", "heart attack", "seizure", "severe head injury", "poisoning",
		"severe burn", "choking", "severe allergic reaction", "anaphylaxis",
		"suicidal", "severe abdominal pain", "cannot breathe", "unresponsive",
	}},
	{score: 75, keywords: []string{
		"severe pain", "high fever", "persistent vomiting", "blood in stool",
		"blood in urine", "severe headache", "confusion", "slurred speech",
		"sudden weakness", "vision loss", "severe dizziness", "fainting",
		"rapid heartbeat", "severe cough", "difficulty swallowing",
	}},
	{score: 50, keywords: []string{
		"moderate pain", "fever", "persistent cough", "nausea", "vomiting",
		"diarrhea", "headache", "body ache", "fatigue", "sore throat",
		"runny nose", "mild bleeding", "rash", "swelling", "joint pain",
	}},
	{score: 25, keywords: []string{
		"mild pain", "slight discomfort", "minor headache", "sneezing",
		"itching", "dry skin", "minor rash", "mild fatigue", "slight cough",
		"minor bruise", "small cut", "mild soreness",
	}},
}

// ClassifySeverity scores free text against the keyword tiers and returns
// the level, the 0-100 score, and every keyword that matched.
func ClassifySeverity(text string) (SeverityLevel, int, []string) {
	lower := strings.ToLower(text)
	var matched []string
	score := 0
	for _, tier := range severityTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, kw)
				if tier.score > score {
					score = tier.score
				}
			}
		}
	}
	return levelFor(score), score, matched
}

func levelFor(score int) SeverityLevel {
	switch {
	case score >= 90:
		return SeverityEmergency
	case score >= 70:
		return SeverityHigh
	case score >= 45:
		return SeverityModerate
	case score >= 20:
		return SeverityLow
	default:
		return SeverityMinimal
	}
}

// SeverityMessage returns the guidance line for a severity level.
func SeverityMessage(level SeverityLevel) string {
	switch level {
	case SeverityEmergency:
		return "EMERGENCY: Seek immediate medical attention. Call emergency services or go to the nearest emergency room."
	case SeverityHigh:
		return "HIGH SEVERITY: Please consult a doctor as soon as possible. Do not delay medical attention."
	case SeverityModerate:
		return "MODERATE SEVERITY: Consider scheduling a doctor appointment within 24-48 hours."
	case SeverityLow:
		return "LOW SEVERITY: Monitor symptoms. Consult a doctor if symptoms persist or worsen."
	default:
		return "MINIMAL CONCERN: General health guidance provided. Consult a doctor if you have concerns."
	}
}

// combination couples co-occurring symptoms with the warning they demand.
type combination struct {
	all     []string
	warning string
}

var dangerousCombinations = []combination{
	{all: []string{"fever", "headache", "stiff neck"}, warning: "Possible meningitis - seek immediate care"},
	{all: []string{"chest pain", "shortness of breath"}, warning: "Possible cardiac issue - seek immediate care"},
	{all: []string{"severe headache", "vision changes", "confusion"}, warning: "Possible stroke - call emergency services"},
	{all: []string{"fever", "rash", "severe headache"}, warning: "Possible serious infection - seek immediate care"},
}

// CombinationWarnings checks a symptom set for dangerous co-occurrences.
func CombinationWarnings(symptoms []string) []string {
	combined := strings.ToLower(strings.Join(symptoms, " "))
	var warnings []string
	for _, combo := range dangerousCombinations {
		hit := true
		for _, kw := range combo.all {
			if !strings.Contains(combined, kw) {
				hit = false
				break
			}
		}
		if hit {
			warnings = append(warnings, combo.warning)
		}
	}
	return warnings
}
