package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultBaseURL targets Groq's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the chat model used for question generation and
	// narrative analysis.
	DefaultModel = "meta-llama/llama-4-scout-17b-16e-instruct"

	defaultTimeout = 30 * time.Second
)

// Config configures the chat completion client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls an OpenAI-compatible chat endpoint to generate questions and
// narratives. It implements Gateway.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient constructs a chat-backed Gateway. Zero-value config fields fall
// back to the Groq defaults.
func NewClient(cfg Config) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	if oc.BaseURL == "" {
		oc.BaseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		api:     openai.NewClientWithConfig(oc),
		model:   model,
		timeout: timeout,
	}
}

// FollowUpQuestions asks the model for symptom-specific diagnostic questions.
func (c *Client) FollowUpQuestions(ctx context.Context, symptom string, answers AnswerSet) ([]Question, error) {
	raw, err := c.complete(ctx, questionsPrompt(symptom, answers))
	if err != nil {
		return nil, err
	}
	return ParseQuestions(raw)
}

// ResultNarrative asks the model for the final guidance text.
func (c *Client) ResultNarrative(ctx context.Context, symptom string, answers AnswerSet) (*Narrative, error) {
	raw, err := c.complete(ctx, narrativePrompt(symptom, answers))
	if err != nil {
		return nil, err
	}
	return ParseNarrative(raw)
}

// complete sends a single-user-message chat completion and returns the raw
// assistant text. Each call carries its own deadline so a slow model cannot
// stall an interview past the configured timeout.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func questionsPrompt(symptom string, answers AnswerSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert medical AI assistant. Generate 2-3 specific diagnostic questions for a patient with %q.\n\n", symptom)

	b.WriteString("PATIENT CONTEXT:\n")
	fmt.Fprintf(&b, "- Age: %s\n", answers.universal("age", "Unknown"))
	fmt.Fprintf(&b, "- Severity: %s\n", answers.universal("severity", "Unknown"))
	fmt.Fprintf(&b, "- Current medications: %s\n", answers.universal("current_medications", "None"))
	fmt.Fprintf(&b, "- Other symptoms: %s\n\n", answers.universal("other_symptoms", "None"))

	fmt.Fprintf(&b, "YOUR TASK:\nGenerate 2-3 SPECIFIC questions that will help diagnose the cause of %q.\n\n", symptom)

	b.WriteString(`QUESTION FOCUS AREAS:
1. Location/Pattern: Where exactly? One-sided or both? Constant or intermittent?
2. Duration/Timeline: How long? Getting worse or better? Sudden or gradual?
3. Triggers/Context: What makes it worse? Recent events? Associated symptoms?

RULES:
`)
	fmt.Fprintf(&b, "- Questions must be specific to %q\n", symptom)
	b.WriteString(`- Each question needs 3-5 clear multiple choice options
- Keep questions simple and patient-friendly
- Focus on diagnostic value
- Return ONLY valid JSON - no extra text

REQUIRED JSON FORMAT:
[
  {
`)
	fmt.Fprintf(&b, "    \"id\": \"location\",\n    \"text\": \"Where exactly is the %s located?\",\n", symptom)
	b.WriteString(`    "type": "choice",
    "options": ["Option 1", "Option 2", "Option 3", "Option 4"]
  },
  {
`)
	fmt.Fprintf(&b, "    \"id\": \"duration\",\n    \"text\": \"How long have you had this %s?\",\n", symptom)
	b.WriteString(`    "type": "choice",
    "options": ["Less than 24 hours", "1-3 days", "4-7 days", "More than a week"]
  }
]

Generate questions now (JSON only):`)

	return b.String()
}

func narrativePrompt(symptom string, answers AnswerSet) string {
	var b strings.Builder
	b.WriteString("You are an expert medical AI doctor. Analyze this patient's symptoms and provide comprehensive medical recommendations.\n\n")

	fmt.Fprintf(&b, "PATIENT CASE:\nPrimary Symptom: %s\n\n", symptom)

	b.WriteString("PATIENT INFORMATION:\n")
	fmt.Fprintf(&b, "- Age: %s\n", answers.universal("age", "Unknown"))
	fmt.Fprintf(&b, "- Severity (0-10 scale): %s\n", answers.universal("severity", "Unknown"))
	fmt.Fprintf(&b, "- Current medications: %s\n", answers.universal("current_medications", "None"))
	fmt.Fprintf(&b, "- Other symptoms: %s\n\n", answers.universal("other_symptoms", "None"))

	b.WriteString("SYMPTOM-SPECIFIC DETAILS:\n")
	for _, a := range answers.Specific {
		fmt.Fprintf(&b, "- %s: %s\n", a.ID, a.Value)
	}

	b.WriteString(`
YOUR TASK:
Provide a complete medical analysis in JSON format with POSITIVE, ACTIONABLE language:

{
  "possible_causes": [
    "Most likely cause with clear, reassuring explanation",
    "Alternative cause if applicable",
    "Third possibility if relevant"
  ],
  "severity_assessment": "MILD/MODERATE/SEVERE with detailed reasoning and POSITIVE outlook",
  "immediate_relief_steps": [
    "Action you can take RIGHT NOW for relief (specific, immediate)",
    "Second immediate action (within next hour)",
    "Third action (within next 2-4 hours)"
  ],
  "home_remedies": [
    "Specific remedy 1 with clear instructions and expected benefit",
    "Specific remedy 2 with instructions",
    "Specific remedy 3 with instructions"
  ],
  "recommended_medicines": [
    "Medicine name (FDA-approved OTC) with SOURCE (e.g., 'Commonly prescribed by doctors'), exact dosage, timing, and age-appropriate safety info",
    "Alternative medicine with dosage and source verification"
  ],
  "red_flags": [
    "Warning sign 1 that requires SAME-DAY medical attention",
    "Warning sign 2 that indicates emergency (call 911)"
  ],
  "when_to_see_doctor": "POSITIVE, CLEAR guidance: 'See a doctor TODAY if...' or 'Schedule appointment within 24-48 hours if...' (NO vague 'wait 3-5 days')",
  "additional_advice": "Encouraging lifestyle tips and preventive measures",
  "expected_recovery": "POSITIVE timeline: 'You should start feeling better within 24-48 hours' or 'Most people recover within 3-5 days with proper care' (NOT 'wait 1-2 weeks')"
}

CRITICAL SAFETY & TRUST RULES:
- MEDICINE VERIFICATION: Only recommend FDA-approved, commonly prescribed OTC medications
- Include SOURCE: Mention "According to medical guidelines" or "Commonly prescribed by doctors for..."
- AGE SAFETY: Consider patient's age (no aspirin for children under 16, adjust for elderly)
- DRUG INTERACTIONS: Check current medications and warn about interactions
- DOSAGE CLARITY: Be specific with dosages (e.g., "Paracetamol 500mg every 6 hours, max 4g/day for adults")
- POSITIVE LANGUAGE: Use encouraging, actionable language - avoid negative phrases like "wait 3-5 days"
- IMMEDIATE ACTIONS: Provide immediate relief steps, not just "wait and see"
- CLEAR TIMELINE: Say "You should feel better within 24-48 hours" instead of "wait 1-2 weeks"
- DOCTOR URGENCY: If severe, say "See a doctor TODAY" not "in 3-5 days"
- Return ONLY valid JSON - no extra text

Generate analysis now (JSON only):`)

	return b.String()
}
