package genai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoPayload is returned when the model response contains no recognizable
// JSON payload.
var ErrNoPayload = errors.New("no JSON payload in model response")

// ParseQuestions extracts and validates a question list from raw model
// output. Models often wrap the JSON in prose, so the payload is taken from
// the first '[' through the last ']'. Questions missing an id, text, or
// options are dropped; a missing type defaults to "choice". An error is
// returned when nothing usable remains so the caller can fall back.
func ParseQuestions(raw string) ([]Question, error) {
	payload, ok := extractJSON(raw, '[', ']')
	if !ok {
		return nil, ErrNoPayload
	}

	var decoded []Question
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil, err
	}

	valid := make([]Question, 0, len(decoded))
	for _, q := range decoded {
		if q.ID == "" || q.Text == "" || len(q.Options) == 0 {
			continue
		}
		if q.Type == "" {
			q.Type = "choice"
		}
		valid = append(valid, q)
	}
	if len(valid) == 0 {
		return nil, errors.New("model returned no valid questions")
	}
	return valid, nil
}

// ParseNarrative extracts the analysis object from raw model output, taking
// the payload from the first '{' through the last '}'.
func ParseNarrative(raw string) (*Narrative, error) {
	payload, ok := extractJSON(raw, '{', '}')
	if !ok {
		return nil, ErrNoPayload
	}

	var n Narrative
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func extractJSON(raw string, open, close byte) (string, bool) {
	start := strings.IndexByte(raw, open)
	end := strings.LastIndexByte(raw, close)
	if start == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
