package safety

import (
	"strings"

	"github.com/symptomcare/symptomcare/internal/domain/catalog"
)

// SeverityGateThreshold is the severity at or above which OTC guidance is
// categorically withheld rather than filtered. Clinical policy as given.
const SeverityGateThreshold = 7

// GateMessage is the mandatory escalation line on a gated verdict.
const GateMessage = "SEVERE SYMPTOMS - Seek medical attention TODAY"

// GateDoctorGuidance and GateRecovery replace the usual guidance lines when
// the gate fires.
const (
	GateDoctorGuidance = "URGENT: See a doctor TODAY - do not delay"
	GateRecovery       = "Recovery depends on proper medical treatment"
)

// EscalationActions are the immediate steps attached to a gated verdict.
var EscalationActions = []string{
	"Contact your doctor immediately or visit urgent care",
	"Call emergency services if symptoms worsen rapidly",
	"Do not self-medicate for severe symptoms",
}

// Filter evaluates candidates against a profile. At or above the severity
// gate it short-circuits for the whole catalog: no candidate is evaluated
// and the verdict carries only the escalation. Otherwise each candidate
// gets exactly one decision, in input order: either blocked by the first
// matching hard rule or allowed with any soft-rule warnings.
func Filter(candidates []catalog.Medicine, profile PatientProfile) Verdict {
	if profile.Severity >= SeverityGateThreshold {
		return Verdict{Escalate: true, Escalation: GateMessage}
	}

	decisions := make([]Decision, 0, len(candidates))
	for _, med := range candidates {
		decisions = append(decisions, evaluate(med, profile))
	}
	return Verdict{Decisions: decisions}
}

func evaluate(med catalog.Medicine, profile PatientProfile) Decision {
	name := strings.ToLower(med.Name)
	if reason, rule, blocked := firstHardBlock(name, profile); blocked {
		return Decision{Medicine: med, Allowed: false, BlockReason: reason, Rule: rule}
	}
	return Decision{Medicine: med, Allowed: true, Warnings: softWarnings(name, profile)}
}
