package safety

import (
	"fmt"
	"strings"
)

// The rule tables below are ordered policy: evaluation walks them top to
// bottom and the first hard match blocks. The thresholds and keyword sets
// are fixed clinical policy carried over as given, not derived here.

// ageFloorRule blocks a substance below a minimum age.
type ageFloorRule struct {
	name      string
	substance string
	minYears  int
	reasonFmt string // receives the patient age
}

var ageFloorRules = []ageFloorRule{
	{name: "age-aspirin", substance: "aspirin", minYears: 16, reasonFmt: "Aspirin not safe for age %d (risk of Reye's syndrome)"},
	{name: "age-ibuprofen", substance: "ibuprofen", minYears: 6, reasonFmt: "Ibuprofen not recommended for age %d"},
	{name: "age-dextromethorphan", substance: "dextromethorphan", minYears: 4, reasonFmt: "Dextromethorphan not safe for age %d"},
}

// conditionRule blocks a substance class for patients reporting any of the
// listed condition keywords.
type conditionRule struct {
	name       string
	conditions []string
	substances []string
	reason     string
}

var conditionBlockRules = []conditionRule{
	{
		name:       "cardiovascular-decongestant",
		conditions: []string{"bp", "heart", "hypertension", "cardiac"},
		substances: []string{"pseudoephedrine", "decongestant", "phenylephrine"},
		reason:     "Contraindicated with blood pressure/heart condition",
	},
	{
		name:       "renal-nsaid",
		conditions: []string{"kidney", "renal", "ckd"},
		substances: []string{"ibuprofen", "nsaid", "aspirin"},
		reason:     "NSAIDs contraindicated with kidney condition",
	},
	{
		name:       "bleeding-nsaid",
		conditions: []string{"bleeding", "hemophilia", "warfarin"},
		substances: []string{"ibuprofen", "aspirin", "nsaid"},
		reason:     "Contraindicated with bleeding disorder",
	},
}

var pregnancyBlockedSubstances = []string{"ibuprofen", "aspirin", "codeine"}

const (
	pregnancyBlockReason = "Not safe during pregnancy"
	allergyBlockReason   = "Allergic to this medication"
	duplicateBlockReason = "Already taking this medication"
)

// softRule attaches a warning without blocking.
type softRule struct {
	name       string
	conditions []string // empty means the rule keys on pregnancy instead
	pregnancy  bool
	substances []string
	warning    string
}

var softRules = []softRule{
	{
		name:       "hepatic-paracetamol",
		conditions: []string{"liver", "hepatic", "cirrhosis"},
		substances: []string{"paracetamol", "acetaminophen"},
		warning:    "Use with caution - liver condition present. Consult doctor for dosage.",
	},
	{
		name:       "gi-nsaid-food",
		conditions: []string{"stomach", "ulcer", "gastric", "gerd"},
		substances: []string{"ibuprofen", "aspirin", "nsaid"},
		warning:    "Must take with food - stomach sensitivity present",
	},
	{
		name:       "pregnancy-paracetamol",
		pregnancy:  true,
		substances: []string{"paracetamol", "acetaminophen"},
		warning:    "Pregnancy: use only as directed by doctor",
	},
}

// hasCondition reports whether any declared condition mentions any of the
// keywords. Declared conditions are free text, so containment (not exact
// membership) is used: "high bp" and "chronic kidney disease" both match.
func hasCondition(declared []string, keywords []string) bool {
	for _, cond := range declared {
		c := strings.ToLower(strings.TrimSpace(cond))
		if c == "" || c == "none" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(c, kw) {
				return true
			}
		}
	}
	return false
}

func nameContainsAny(name string, substances []string) bool {
	for _, s := range substances {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

// firstHardBlock runs the hard rules in their fixed order against a
// lowercased candidate name. It returns the reason and rule name of the
// first match; later rules never run once one has blocked.
func firstHardBlock(name string, p PatientProfile) (reason, rule string, blocked bool) {
	for _, r := range ageFloorRules {
		if strings.Contains(name, r.substance) && p.AgeYears < r.minYears {
			return fmt.Sprintf(r.reasonFmt, p.AgeYears), r.name, true
		}
	}
	for _, r := range conditionBlockRules {
		if hasCondition(p.Conditions, r.conditions) && nameContainsAny(name, r.substances) {
			return r.reason, r.name, true
		}
	}
	if p.Pregnant && nameContainsAny(name, pregnancyBlockedSubstances) {
		return pregnancyBlockReason, "pregnancy", true
	}
	for _, allergy := range p.Allergies {
		a := strings.ToLower(strings.TrimSpace(allergy))
		if a == "" || a == "none" {
			continue
		}
		if strings.Contains(name, a) {
			return allergyBlockReason, "allergy", true
		}
	}
	for _, med := range p.CurrentMedications {
		m := strings.ToLower(strings.TrimSpace(med))
		if m == "" || m == "none" {
			continue
		}
		if strings.Contains(name, m) || strings.Contains(m, name) {
			return duplicateBlockReason, "duplicate-therapy", true
		}
	}
	return "", "", false
}

// RuleSubstances lists the substance keywords each table-driven rule matches
// on, keyed by rule name. The catalog CLI cross-checks them against the
// shipped catalog so a renamed medicine cannot silently strand a rule.
func RuleSubstances() map[string][]string {
	out := make(map[string][]string)
	for _, r := range ageFloorRules {
		out[r.name] = []string{r.substance}
	}
	for _, r := range conditionBlockRules {
		out[r.name] = append([]string(nil), r.substances...)
	}
	out["pregnancy"] = append([]string(nil), pregnancyBlockedSubstances...)
	for _, r := range softRules {
		out[r.name] = append([]string(nil), r.substances...)
	}
	return out
}

// softWarnings collects warnings for a candidate that passed every hard
// rule, in table order.
func softWarnings(name string, p PatientProfile) []string {
	var warnings []string
	for _, r := range softRules {
		if !nameContainsAny(name, r.substances) {
			continue
		}
		if r.pregnancy {
			if p.Pregnant {
				warnings = append(warnings, r.warning)
			}
			continue
		}
		if hasCondition(p.Conditions, r.conditions) {
			warnings = append(warnings, r.warning)
		}
	}
	return warnings
}
