// Package genai generates interview questions and result narratives through
// an OpenAI-compatible chat completion endpoint. The model output is untrusted:
// callers parse it defensively and fall back to canned questions or a
// catalog-only result when the model misbehaves or the endpoint is down.
package genai

import (
	"context"
	"fmt"
)

// Question is one multiple-choice interview question.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// Narrative is the free-text guidance produced when an assessment completes.
// Every field comes straight from the model and is advisory only; the safety
// layer never consumes it.
type Narrative struct {
	PossibleCauses       []string `json:"possible_causes"`
	SeverityAssessment   string   `json:"severity_assessment"`
	ImmediateReliefSteps []string `json:"immediate_relief_steps"`
	HomeRemedies         []string `json:"home_remedies"`
	RecommendedMedicines []string `json:"recommended_medicines"`
	RedFlags             []string `json:"red_flags"`
	WhenToSeeDoctor      string   `json:"when_to_see_doctor"`
	AdditionalAdvice     string   `json:"additional_advice"`
	ExpectedRecovery     string   `json:"expected_recovery"`
}

// Answer is one collected answer, keyed by the question id it replies to.
type Answer struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// AnswerSet carries the answers collected so far, split the way the prompts
// consume them: the fixed intake answers and the model-generated follow-ups.
// Both slices keep asked order so prompts and cache keys stay stable.
type AnswerSet struct {
	Universal []Answer `json:"universal"`
	Specific  []Answer `json:"specific"`
}

// universal returns the intake answer with the given id, or fallback when the
// question was never answered.
func (s AnswerSet) universal(id, fallback string) string {
	for _, a := range s.Universal {
		if a.ID == id && a.Value != "" {
			return a.Value
		}
	}
	return fallback
}

// Gateway produces interview questions and result narratives for a symptom.
type Gateway interface {
	// FollowUpQuestions asks for 2-3 symptom-specific diagnostic questions
	// given the intake answers collected so far.
	FollowUpQuestions(ctx context.Context, symptom string, answers AnswerSet) ([]Question, error)

	// ResultNarrative asks for the final guidance text once every question
	// has been answered.
	ResultNarrative(ctx context.Context, symptom string, answers AnswerSet) (*Narrative, error)
}

// FallbackQuestions returns the generic follow-ups used when question
// generation fails. They are less targeted than model output but keep the
// interview moving.
func FallbackQuestions(symptom string) []Question {
	return []Question{
		{
			ID:      "duration",
			Text:    fmt.Sprintf("How long have you had this %s?", symptom),
			Type:    "choice",
			Options: []string{"Less than 24 hours", "1-3 days", "4-7 days", "More than a week"},
		},
		{
			ID:      "pattern",
			Text:    fmt.Sprintf("Is the %s constant or does it come and go?", symptom),
			Type:    "choice",
			Options: []string{"Constant", "Comes and goes", "Getting worse", "Getting better"},
		},
		{
			ID:      "triggers",
			Text:    fmt.Sprintf("What makes the %s worse?", symptom),
			Type:    "choice",
			Options: []string{"Physical activity", "Rest/lying down", "Eating", "Stress", "Nothing specific"},
		},
	}
}
