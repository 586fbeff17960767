package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/symptomcare/symptomcare/internal/domain/catalog"
	"github.com/symptomcare/symptomcare/internal/domain/safety"
	"github.com/symptomcare/symptomcare/internal/domain/triage"
	"github.com/symptomcare/symptomcare/internal/platform/genai"
)

var (
	// ErrEmptySymptom rejects a start with no symptom text.
	ErrEmptySymptom = errors.New("symptom text is required")
	// ErrEmptyAnswer rejects a blank answer.
	ErrEmptyAnswer = errors.New("answer is required")
	// ErrSessionComplete rejects answers to a finished session.
	ErrSessionComplete = errors.New("assessment session already complete")
)

// specificIntro is sent once, when the interview moves from the intake
// questions to the generated follow-ups.
const specificIntro = "Now let me ask some specific questions about your symptom..."

// Service runs the interview. It holds no per-session state: every request
// loads the session, advances it and saves it back, so instances are safe
// for concurrent use as long as each session is driven by one caller at a
// time.
type Service struct {
	store   Store
	gateway genai.Gateway
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

func NewService(store Store, gateway genai.Gateway, cat *catalog.Catalog, logger zerolog.Logger) *Service {
	return &Service{store: store, gateway: gateway, catalog: cat, logger: logger}
}

// StartInput opens an assessment. The hint fields are optional; the intake
// questions never collect them but the safety rules consume them.
type StartInput struct {
	Symptom    string
	Conditions []string
	Pregnant   bool
	Allergies  []string
}

// Step is the outcome of one answer: either the next question with progress,
// or the completed result.
type Step struct {
	Done     bool
	Question Question
	Progress Progress
	Message  string
	Result   *Result
}

// Start opens a session and returns it with the first intake question. The
// symptom text is scanned for emergency keywords; a match flags the session
// but the interview still runs.
func (s *Service) Start(ctx context.Context, in StartInput) (*Session, Question, error) {
	symptom := strings.TrimSpace(in.Symptom)
	if symptom == "" {
		return nil, Question{}, ErrEmptySymptom
	}

	now := time.Now()
	sess := &Session{
		ID:         uuid.New(),
		Symptom:    symptom,
		Phase:      PhaseUniversal,
		Conditions: copyStrings(in.Conditions),
		Pregnant:   in.Pregnant,
		Allergies:  copyStrings(in.Allergies),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if keyword, emergency := triage.DetectEmergency(symptom); emergency {
		sess.Emergency = true
		s.logger.Warn().
			Str("session_id", sess.ID.String()).
			Str("symptom", symptom).
			Str("keyword", keyword).
			Msg("emergency keywords detected at assessment start")
	}

	level, score, _ := triage.ClassifySeverity(symptom)
	s.logger.Info().
		Str("session_id", sess.ID.String()).
		Str("symptom", symptom).
		Str("text_severity", string(level)).
		Int("text_severity_score", score).
		Bool("emergency", sess.Emergency).
		Msg("assessment started")

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, Question{}, fmt.Errorf("save session: %w", err)
	}
	return sess, universalQuestions[0], nil
}

// Answer stores one answer and advances the session. Input errors leave the
// stored session untouched.
func (s *Service) Answer(ctx context.Context, id uuid.UUID, answer string) (Step, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return Step{}, ErrEmptyAnswer
	}

	sess, err := s.store.Load(ctx, id)
	if err != nil {
		return Step{}, err
	}

	switch sess.Phase {
	case PhaseUniversal:
		return s.answerUniversal(ctx, sess, answer)
	case PhaseSpecific:
		return s.answerSpecific(ctx, sess, answer)
	default:
		return Step{}, ErrSessionComplete
	}
}

// Get returns the session by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.store.Load(ctx, id)
}

// List returns sessions newest-first plus the total count.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*Session, int, error) {
	return s.store.List(ctx, limit, offset)
}

// Delete removes a session.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) answerUniversal(ctx context.Context, sess *Session, answer string) (Step, error) {
	q := universalQuestions[sess.Cursor]
	sess.UniversalAnswers = append(sess.UniversalAnswers, QA{QuestionID: q.ID, Answer: answer})
	sess.Cursor++
	sess.UpdatedAt = time.Now()

	if sess.Cursor < len(universalQuestions) {
		if err := s.store.Save(ctx, sess); err != nil {
			return Step{}, fmt.Errorf("save session: %w", err)
		}
		return Step{Question: universalQuestions[sess.Cursor], Progress: sess.Progress()}, nil
	}

	// Intake complete: generate the symptom-specific round. Any gateway
	// failure, including zero usable questions, falls back to the fixed
	// catalog so the session never stalls.
	questions, err := s.gateway.FollowUpQuestions(ctx, sess.Symptom, sess.answerSet())
	if err != nil || len(questions) == 0 {
		event := s.logger.Warn().Str("session_id", sess.ID.String())
		if err != nil {
			event = event.Err(err)
		}
		event.Msg("follow-up generation failed, using fallback questions")
		questions = genai.FallbackQuestions(sess.Symptom)
	} else {
		s.logger.Info().
			Str("session_id", sess.ID.String()).
			Int("questions", len(questions)).
			Msg("follow-up questions generated")
	}

	sess.Phase = PhaseSpecific
	sess.GeneratedQuestions = questions
	sess.Cursor = 0
	if err := s.store.Save(ctx, sess); err != nil {
		return Step{}, fmt.Errorf("save session: %w", err)
	}
	return Step{Question: questions[0], Progress: sess.Progress(), Message: specificIntro}, nil
}

func (s *Service) answerSpecific(ctx context.Context, sess *Session, answer string) (Step, error) {
	q := sess.GeneratedQuestions[sess.Cursor]
	sess.SymptomAnswers = append(sess.SymptomAnswers, QA{QuestionID: q.ID, Answer: answer})
	sess.Cursor++
	sess.UpdatedAt = time.Now()

	if sess.Cursor < len(sess.GeneratedQuestions) {
		if err := s.store.Save(ctx, sess); err != nil {
			return Step{}, fmt.Errorf("save session: %w", err)
		}
		return Step{Question: sess.GeneratedQuestions[sess.Cursor], Progress: sess.Progress()}, nil
	}

	result := s.complete(ctx, sess)
	sess.Phase = PhaseComplete
	sess.Result = result
	if err := s.store.Save(ctx, sess); err != nil {
		return Step{}, fmt.Errorf("save session: %w", err)
	}
	return Step{Done: true, Result: result, Progress: sess.Progress()}, nil
}

// complete assembles the final result. The verified half (catalog + safety
// filter) is computed first and unconditionally; the narrative is fetched
// last and a failure there degrades the result explicitly instead of
// discarding the safety output.
func (s *Service) complete(ctx context.Context, sess *Session) *Result {
	profile := assembleProfile(sess)
	category := triage.Classify(profile.PrimarySymptom)
	tier := catalog.TierFor(profile.Severity)

	candidates := s.catalog.Candidates(category, tier, profile.AgeGroup)
	verdict := safety.Filter(candidates, profile)

	result := &Result{
		Category:      category,
		SeverityLevel: tier,
		Profile:       profile,
	}

	if verdict.Escalate {
		result.EscalateNow = true
		result.EscalationMessage = verdict.Escalation
		result.ImmediateActions = safety.EscalationActions
		result.SupportiveCare = s.catalog.SupportiveCare()
		result.HomeRemedies = s.catalog.HomeRemedies(category)
		result.RedFlags = s.catalog.RedFlags(category)
		result.DoctorGuidance = safety.GateDoctorGuidance
		result.ExpectedRecovery = safety.GateRecovery
		s.logger.Warn().
			Str("session_id", sess.ID.String()).
			Str("category", category).
			Int("severity", profile.Severity).
			Msg("severity gate fired, otc guidance withheld")
	} else {
		result.VerifiedMedicines = verdict.Allowed()
		result.HomeRemedies = s.catalog.HomeRemedies(category)
		result.AvoidList = s.catalog.AvoidList(category)
		result.ImmediateActions = s.catalog.ImmediateActions(category)
		result.RedFlags = s.catalog.RedFlags(category)
		result.DoctorGuidance = catalog.DoctorGuidance(profile.Severity)
		result.ExpectedRecovery = catalog.RecoveryTimeline(profile.Severity)
		s.logDecisions(sess.ID, verdict)
	}

	narrative, err := s.gateway.ResultNarrative(ctx, sess.Symptom, sess.answerSet())
	switch {
	case err != nil:
		result.NarrativeDegraded = true
		result.NarrativeError = err.Error()
		s.logger.Warn().
			Err(err).
			Str("session_id", sess.ID.String()).
			Msg("narrative generation failed, returning catalog-only result")
	case narrative == nil:
		result.NarrativeDegraded = true
		result.NarrativeError = "gateway returned no narrative"
		s.logger.Warn().
			Str("session_id", sess.ID.String()).
			Msg("gateway returned no narrative, returning catalog-only result")
	default:
		result.Narrative = narrative
	}

	s.logger.Info().
		Str("session_id", sess.ID.String()).
		Str("category", category).
		Str("severity_level", string(tier)).
		Bool("escalate", result.EscalateNow).
		Bool("narrative_degraded", result.NarrativeDegraded).
		Int("verified_medicines", len(result.VerifiedMedicines)).
		Msg("assessment complete")
	return result
}

// logDecisions writes one line per block and per warned allowance so every
// filtering outcome is explainable from logs alone.
func (s *Service) logDecisions(sessionID uuid.UUID, verdict safety.Verdict) {
	for _, d := range verdict.Decisions {
		if !d.Allowed {
			s.logger.Info().
				Str("session_id", sessionID.String()).
				Str("medicine", d.Medicine.Name).
				Str("rule", d.Rule).
				Str("reason", d.BlockReason).
				Msg("candidate blocked")
			continue
		}
		if len(d.Warnings) > 0 {
			s.logger.Info().
				Str("session_id", sessionID.String()).
				Str("medicine", d.Medicine.Name).
				Strs("warnings", d.Warnings).
				Msg("candidate allowed with warnings")
		}
	}
}
