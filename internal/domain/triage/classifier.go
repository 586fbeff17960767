// Package triage turns free-text symptom descriptions into structured
// signals: a canonical catalog category, an emergency flag, and a coarse
// severity estimate.
package triage

import (
	"strings"

	"github.com/symptomcare/symptomcare/internal/domain/catalog"
)

// keywordRule matches a symptom description by substrings. Every entry in
// all must appear; when any is non-empty at least one of it must appear too.
type keywordRule struct {
	category string
	all      []string
	any      []string
}

// classifierRules is a priority list, not a lookup table: rules are
// evaluated top to bottom and the first match wins. Reordering entries
// changes behavior (fever outranks the generic pain rule, a dry qualifier
// outranks a wet one).
var classifierRules = []keywordRule{
	{category: catalog.CategoryFever, any: []string{"fever", "temperature", "pyrexia"}},
	{category: catalog.CategoryHeadache, all: []string{"head", "ache"}},
	{category: catalog.CategoryHeadache, any: []string{"migraine"}},
	{category: catalog.CategoryCoughDry, all: []string{"cough"}, any: []string{"dry", "tickle", "irritat"}},
	{category: catalog.CategoryCoughWet, all: []string{"cough"}, any: []string{"wet", "phlegm", "mucus", "productive"}},
	{category: catalog.CategoryCoughDry, all: []string{"cough"}},
	{category: catalog.CategorySoreThroat, any: []string{"throat", "pharyngitis"}},
	{category: catalog.CategoryCold, any: []string{"cold", "runny nose", "congestion"}},
	{category: catalog.CategoryDiarrhea, any: []string{"diarrhea", "loose motion", "stomach upset"}},
	{category: catalog.CategoryAcidity, any: []string{"acidity", "heartburn", "acid reflux"}},
	{category: catalog.CategoryAllergy, any: []string{"allergy", "allergic", "rash", "itch"}},
	{category: catalog.CategoryBodyPain, any: []string{"pain", "ache", "sore"}},
}

// Classify maps a raw symptom string to a canonical category. It is pure,
// total, and never fails: exact category names pass through, keyword rules
// run in priority order, and anything unmatched lands in body_pain.
func Classify(raw string) string {
	symptom := strings.ToLower(strings.TrimSpace(raw))
	if symptom == "" {
		return catalog.CategoryBodyPain
	}
	if catalog.IsCanonical(symptom) {
		return symptom
	}
	for _, rule := range classifierRules {
		if rule.matches(symptom) {
			return rule.category
		}
	}
	return catalog.CategoryBodyPain
}

func (r keywordRule) matches(symptom string) bool {
	for _, sub := range r.all {
		if !strings.Contains(symptom, sub) {
			return false
		}
	}
	if len(r.any) == 0 {
		return true
	}
	for _, sub := range r.any {
		if strings.Contains(symptom, sub) {
			return true
		}
	}
	return false
}
