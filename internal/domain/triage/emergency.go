package triage

import "strings"

// EmergencyMessage is the mandatory escalation line attached whenever an
// emergency keyword is detected. It is never softened or substituted.
const EmergencyMessage = "EMERGENCY: This may be a medical emergency. Call your local emergency number or go to the nearest emergency room immediately. Do not wait."

var emergencyKeywords = []string{
	"chest pain", "can't breathe", "cannot breathe", "severe bleeding", "unconscious",
	"suicide", "suicidal", "kill myself", "overdose", "stroke", "heart attack", "choking",
	"severe burn", "head injury", "seizure", "convulsion", "passed out",
	"difficulty breathing", "shortness of breath", "crushing pain", "numb arm",
	"slurred speech", "confusion", "severe headache", "vision loss", "paralysis",
}

var emergencyPhrases = []string{
	"want to die", "end my life", "hurt myself",
	"severe pain", "can't move", "losing consciousness",
}

// DetectEmergency scans text for life-threatening keywords and phrases,
// returning the first match. Matching is case-insensitive substring search;
// an empty text never matches.
func DetectEmergency(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, kw := range emergencyKeywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	for _, phrase := range emergencyPhrases {
		if strings.Contains(lower, phrase) {
			return phrase, true
		}
	}
	return "", false
}
