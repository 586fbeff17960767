// Package safety evaluates medicine candidates against a structured patient
// profile. Hard rules block, soft rules warn, and a severity gate withholds
// all OTC recommendations outright. Filtering is pure: same profile and
// candidates in, byte-identical decisions out.
package safety

import "github.com/symptomcare/symptomcare/internal/domain/catalog"

// PatientProfile is the structured input to filtering. Severity and
// AgeYears are always concrete by the time a profile reaches Filter; when
// an answer could not be parsed the conservative default is used and the
// corresponding Defaulted flag records that for audit.
type PatientProfile struct {
	PrimarySymptom     string           `json:"primary_symptom"`
	SecondarySymptoms  []string         `json:"secondary_symptoms,omitempty"`
	Severity           int              `json:"severity"`
	AgeYears           int              `json:"age_years"`
	AgeGroup           catalog.AgeGroup `json:"age_group"`
	Conditions         []string         `json:"conditions,omitempty"`
	CurrentMedications []string         `json:"current_medications,omitempty"`
	Pregnant           bool             `json:"pregnant"`
	Allergies          []string         `json:"allergies,omitempty"`
	SeverityDefaulted  bool             `json:"severity_defaulted,omitempty"`
	AgeDefaulted       bool             `json:"age_defaulted,omitempty"`
}

// Decision is the per-candidate outcome. A blocked candidate carries
// exactly one reason and no warnings; an allowed one carries zero or more
// warnings. Rule names the table entry that fired, for the audit trail.
type Decision struct {
	Medicine    catalog.Medicine `json:"medicine"`
	Allowed     bool             `json:"allowed"`
	BlockReason string           `json:"block_reason,omitempty"`
	Rule        string           `json:"rule,omitempty"`
	Warnings    []string         `json:"warnings,omitempty"`
}

// Verdict is the pipeline output for one profile. When Escalate is set the
// severity gate fired: Decisions is empty because no candidate-level
// evaluation ran at all, and Escalation carries the mandatory message.
type Verdict struct {
	Escalate   bool       `json:"escalate"`
	Escalation string     `json:"escalation_message,omitempty"`
	Decisions  []Decision `json:"decisions,omitempty"`
}

// Allowed returns the allowed decisions in catalog order.
func (v Verdict) Allowed() []Decision {
	var out []Decision
	for _, d := range v.Decisions {
		if d.Allowed {
			out = append(out, d)
		}
	}
	return out
}

// Blocked returns the blocked decisions in catalog order.
func (v Verdict) Blocked() []Decision {
	var out []Decision
	for _, d := range v.Decisions {
		if !d.Allowed {
			out = append(out, d)
		}
	}
	return out
}
