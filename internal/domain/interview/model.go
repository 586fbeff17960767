// Package interview drives the assessment conversation: four fixed intake
// questions, a model-generated symptom-specific round, then a completed
// result that merges the advisory narrative with catalog-verified,
// safety-filtered medicine guidance. Sessions are mutated only by the
// service's answer transition and persisted through a Store.
package interview

import (
	"time"

	"github.com/google/uuid"

	"github.com/symptomcare/symptomcare/internal/domain/catalog"
	"github.com/symptomcare/symptomcare/internal/domain/safety"
	"github.com/symptomcare/symptomcare/internal/platform/genai"
)

// Phase is the session's position in the interview.
type Phase string

const (
	PhaseUniversal Phase = "universal"
	PhaseSpecific  Phase = "symptom_specific"
	PhaseComplete  Phase = "complete"
)

// Question is one multiple-choice interview question. The intake questions
// and the generated follow-ups share this shape.
type Question = genai.Question

// QA is one answered question. Slices of QA keep asked order, which is also
// the order prompts and cache keys see.
type QA struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// Session is one assessment conversation.
type Session struct {
	ID      uuid.UUID `json:"id"`
	Symptom string    `json:"symptom"`
	Phase   Phase     `json:"phase"`

	// Emergency is set when the opening symptom text matched an emergency
	// keyword. The interview still runs; every response carries the banner.
	Emergency bool `json:"emergency"`

	// Profile hints supplied at start. The intake questions never collect
	// these, but the safety rules consume them.
	Conditions []string `json:"conditions,omitempty"`
	Pregnant   bool     `json:"pregnant,omitempty"`
	Allergies  []string `json:"allergies,omitempty"`

	UniversalAnswers []QA `json:"universal_answers"`
	SymptomAnswers   []QA `json:"symptom_answers"`

	// GeneratedQuestions is populated once, on entering symptom_specific.
	GeneratedQuestions []Question `json:"generated_questions,omitempty"`

	// Cursor indexes the next unanswered question of the current phase.
	Cursor int `json:"cursor"`

	Result *Result `json:"result,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Result is the completed assessment. The narrative half is advisory model
// output and may be absent; the verified half always comes from the catalog
// and the safety filter, never from the model.
type Result struct {
	Narrative         *genai.Narrative `json:"narrative,omitempty"`
	NarrativeDegraded bool             `json:"narrative_degraded"`
	NarrativeError    string           `json:"narrative_error,omitempty"`

	Category      string       `json:"category"`
	SeverityLevel catalog.Tier `json:"severity_level"`

	// VerifiedMedicines holds only allowed decisions, in catalog order.
	VerifiedMedicines []safety.Decision `json:"verified_medicines"`

	HomeRemedies     []string `json:"home_remedies,omitempty"`
	AvoidList        []string `json:"avoid_list,omitempty"`
	ImmediateActions []string `json:"immediate_actions,omitempty"`
	RedFlags         []string `json:"red_flags,omitempty"`
	SupportiveCare   []string `json:"supportive_care,omitempty"`

	DoctorGuidance   string `json:"doctor_guidance"`
	ExpectedRecovery string `json:"expected_recovery"`

	// EscalateNow is set when the severity gate fired. EscalationMessage is
	// mandatory in that case and VerifiedMedicines is empty.
	EscalateNow       bool   `json:"escalate_now"`
	EscalationMessage string `json:"escalation_message,omitempty"`

	// Profile echoes the assembled patient profile so every decision is
	// reconstructable from the stored result alone.
	Profile safety.PatientProfile `json:"profile"`
}

// Progress locates a session inside the interview, counting questions
// one-based across both phases. While the universal phase runs the total is
// an estimate; it becomes exact once follow-ups are generated.
type Progress struct {
	Current    int   `json:"current"`
	Total      int   `json:"total"`
	Phase      Phase `json:"phase"`
	Percentage int   `json:"percentage"`
}

// estimatedFollowUps pads the total while the follow-up count is unknown.
const estimatedFollowUps = 3

// Progress reports the session's position. Complete sessions report 100%.
func (s *Session) Progress() Progress {
	switch s.Phase {
	case PhaseUniversal:
		total := len(universalQuestions) + estimatedFollowUps
		return Progress{
			Current:    s.Cursor + 1,
			Total:      total,
			Phase:      s.Phase,
			Percentage: (s.Cursor + 1) * 100 / total,
		}
	case PhaseSpecific:
		total := len(universalQuestions) + len(s.GeneratedQuestions)
		current := len(universalQuestions) + s.Cursor + 1
		return Progress{
			Current:    current,
			Total:      total,
			Phase:      s.Phase,
			Percentage: current * 100 / total,
		}
	default:
		total := len(universalQuestions) + len(s.GeneratedQuestions)
		return Progress{Current: total, Total: total, Phase: s.Phase, Percentage: 100}
	}
}

// Answered counts stored answers across both phases.
func (s *Session) Answered() int {
	return len(s.UniversalAnswers) + len(s.SymptomAnswers)
}

// answerSet converts the stored answers into the gateway's prompt shape.
func (s *Session) answerSet() genai.AnswerSet {
	set := genai.AnswerSet{
		Universal: make([]genai.Answer, 0, len(s.UniversalAnswers)),
		Specific:  make([]genai.Answer, 0, len(s.SymptomAnswers)),
	}
	for _, qa := range s.UniversalAnswers {
		set.Universal = append(set.Universal, genai.Answer{ID: qa.QuestionID, Value: qa.Answer})
	}
	for _, qa := range s.SymptomAnswers {
		set.Specific = append(set.Specific, genai.Answer{ID: qa.QuestionID, Value: qa.Answer})
	}
	return set
}

// clone returns a deep copy. Stores hand out clones so callers can never
// mutate persisted state without going through Save.
func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Conditions = copyStrings(s.Conditions)
	out.Allergies = copyStrings(s.Allergies)
	out.UniversalAnswers = copyQAs(s.UniversalAnswers)
	out.SymptomAnswers = copyQAs(s.SymptomAnswers)
	out.GeneratedQuestions = copyQuestions(s.GeneratedQuestions)
	out.Result = s.Result.clone()
	return &out
}

func (r *Result) clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	if r.Narrative != nil {
		n := *r.Narrative
		n.PossibleCauses = copyStrings(r.Narrative.PossibleCauses)
		n.ImmediateReliefSteps = copyStrings(r.Narrative.ImmediateReliefSteps)
		n.HomeRemedies = copyStrings(r.Narrative.HomeRemedies)
		n.RecommendedMedicines = copyStrings(r.Narrative.RecommendedMedicines)
		n.RedFlags = copyStrings(r.Narrative.RedFlags)
		out.Narrative = &n
	}
	out.VerifiedMedicines = copyDecisions(r.VerifiedMedicines)
	out.HomeRemedies = copyStrings(r.HomeRemedies)
	out.AvoidList = copyStrings(r.AvoidList)
	out.ImmediateActions = copyStrings(r.ImmediateActions)
	out.RedFlags = copyStrings(r.RedFlags)
	out.SupportiveCare = copyStrings(r.SupportiveCare)
	out.Profile.SecondarySymptoms = copyStrings(r.Profile.SecondarySymptoms)
	out.Profile.Conditions = copyStrings(r.Profile.Conditions)
	out.Profile.CurrentMedications = copyStrings(r.Profile.CurrentMedications)
	out.Profile.Allergies = copyStrings(r.Profile.Allergies)
	return &out
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func copyQAs(src []QA) []QA {
	if src == nil {
		return nil
	}
	out := make([]QA, len(src))
	copy(out, src)
	return out
}

func copyQuestions(src []Question) []Question {
	if src == nil {
		return nil
	}
	out := make([]Question, len(src))
	for i, q := range src {
		q.Options = copyStrings(q.Options)
		out[i] = q
	}
	return out
}

func copyDecisions(src []safety.Decision) []safety.Decision {
	if src == nil {
		return nil
	}
	out := make([]safety.Decision, len(src))
	for i, d := range src {
		d.Warnings = copyStrings(d.Warnings)
		out[i] = d
	}
	return out
}
