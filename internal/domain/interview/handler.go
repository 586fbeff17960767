package interview

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/symptomcare/symptomcare/internal/domain/catalog"
	"github.com/symptomcare/symptomcare/internal/domain/triage"
	"github.com/symptomcare/symptomcare/pkg/pagination"
)

type Handler struct {
	svc     *Service
	catalog *catalog.Catalog
}

func NewHandler(svc *Service, cat *catalog.Catalog) *Handler {
	return &Handler{svc: svc, catalog: cat}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/assessments", h.StartAssessment)
	api.POST("/assessments/:id/answers", h.SubmitAnswer)
	api.GET("/assessments/:id", h.GetAssessment)
	api.GET("/assessments", h.ListAssessments)
	api.DELETE("/assessments/:id", h.DeleteAssessment)

	api.POST("/triage", h.Triage)

	api.GET("/catalog/categories", h.ListCategories)
	api.GET("/catalog/medicines", h.ListMedicines)
}

type startRequest struct {
	Symptom    string   `json:"symptom_text"`
	Conditions []string `json:"conditions,omitempty"`
	Pregnant   bool     `json:"pregnant,omitempty"`
	Allergies  []string `json:"allergies,omitempty"`
}

type startResponse struct {
	SessionID        uuid.UUID `json:"session_id"`
	Question         Question  `json:"question"`
	Message          string    `json:"message"`
	Emergency        bool      `json:"emergency"`
	EmergencyMessage string    `json:"emergency_message,omitempty"`
}

func (h *Handler) StartAssessment(c echo.Context) error {
	var req startRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, question, err := h.svc.Start(c.Request().Context(), StartInput{
		Symptom:    req.Symptom,
		Conditions: req.Conditions,
		Pregnant:   req.Pregnant,
		Allergies:  req.Allergies,
	})
	if err != nil {
		return mapServiceError(err)
	}

	resp := startResponse{
		SessionID: sess.ID,
		Question:  question,
		Message:   fmt.Sprintf("Let's assess your %s. I'll ask you a few questions to understand better.", sess.Symptom),
		Emergency: sess.Emergency,
	}
	if sess.Emergency {
		resp.EmergencyMessage = triage.EmergencyMessage
	}
	return c.JSON(http.StatusCreated, resp)
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type stepResponse struct {
	Status   string    `json:"status"`
	Question *Question `json:"question,omitempty"`
	Progress Progress  `json:"progress"`
	Message  string    `json:"message,omitempty"`
	Result   *Result   `json:"result,omitempty"`
}

func (h *Handler) SubmitAnswer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	step, err := h.svc.Answer(c.Request().Context(), id, req.Answer)
	if err != nil {
		return mapServiceError(err)
	}

	if step.Done {
		return c.JSON(http.StatusOK, stepResponse{
			Status:   "complete",
			Progress: step.Progress,
			Result:   step.Result,
		})
	}
	q := step.Question
	return c.JSON(http.StatusOK, stepResponse{
		Status:   "continue",
		Question: &q,
		Progress: step.Progress,
		Message:  step.Message,
	})
}

type sessionResponse struct {
	SessionID  uuid.UUID `json:"session_id"`
	Symptom    string    `json:"symptom"`
	Phase      Phase     `json:"phase"`
	Cursor     int       `json:"cursor"`
	Answered   int       `json:"answered"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	Emergency  bool      `json:"emergency"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Result     *Result   `json:"result,omitempty"`
}

func (h *Handler) GetAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sess, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sessionView(sess))
}

func (h *Handler) ListAssessments(c echo.Context) error {
	pg := pagination.FromContext(c)
	sessions, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	views := make([]sessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		views = append(views, sessionView(sess))
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) DeleteAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type triageRequest struct {
	Text     string   `json:"text"`
	Symptoms []string `json:"symptoms,omitempty"`
}

type triageResponse struct {
	Emergency           bool     `json:"emergency"`
	EmergencyKeyword    string   `json:"emergency_keyword,omitempty"`
	EmergencyMessage    string   `json:"emergency_message,omitempty"`
	Category            string   `json:"category"`
	SeverityLevel       string   `json:"severity_level"`
	SeverityScore       int      `json:"severity_score"`
	SeverityGuidance    string   `json:"severity_guidance"`
	MatchedKeywords     []string `json:"matched_keywords,omitempty"`
	CombinationWarnings []string `json:"combination_warnings,omitempty"`
}

// Triage classifies free text without opening a session: emergency keywords,
// text severity, category, and warnings for dangerous symptom combinations
// when a symptom list is supplied.
func (h *Handler) Triage(c echo.Context) error {
	var req triageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	level, score, matched := triage.ClassifySeverity(text)
	resp := triageResponse{
		Category:            triage.Classify(text),
		SeverityLevel:       string(level),
		SeverityScore:       score,
		SeverityGuidance:    triage.SeverityMessage(level),
		MatchedKeywords:     matched,
		CombinationWarnings: triage.CombinationWarnings(req.Symptoms),
	}
	if keyword, emergency := triage.DetectEmergency(text); emergency {
		resp.Emergency = true
		resp.EmergencyKeyword = keyword
		resp.EmergencyMessage = triage.EmergencyMessage
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{
		"categories": h.catalog.Categories(),
	})
}

type medicinesResponse struct {
	Category         string             `json:"category"`
	Tier             catalog.Tier       `json:"tier"`
	AgeGroup         catalog.AgeGroup   `json:"age_group"`
	Medicines        []catalog.Medicine `json:"medicines"`
	HomeRemedies     []string           `json:"home_remedies,omitempty"`
	AvoidList        []string           `json:"avoid_list,omitempty"`
	RedFlags         []string           `json:"red_flags,omitempty"`
	ImmediateActions []string           `json:"immediate_actions,omitempty"`
}

// ListMedicines browses the catalog directly: category is required, severity
// (0-10, default 5) selects the tier, age_group defaults to adult.
func (h *Handler) ListMedicines(c echo.Context) error {
	category := c.QueryParam("category")
	if !h.catalog.HasCategory(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
	}

	severity := 5
	if raw := c.QueryParam("severity"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 10 {
			return echo.NewHTTPError(http.StatusBadRequest, "severity must be an integer between 0 and 10")
		}
		severity = n
	}

	age := catalog.AgeAdult
	switch c.QueryParam("age_group") {
	case "", string(catalog.AgeAdult):
	case string(catalog.AgeChild):
		age = catalog.AgeChild
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "age_group must be child or adult")
	}

	tier := catalog.TierFor(severity)
	return c.JSON(http.StatusOK, medicinesResponse{
		Category:         category,
		Tier:             tier,
		AgeGroup:         age,
		Medicines:        h.catalog.Candidates(category, tier, age),
		HomeRemedies:     h.catalog.HomeRemedies(category),
		AvoidList:        h.catalog.AvoidList(category),
		RedFlags:         h.catalog.RedFlags(category),
		ImmediateActions: h.catalog.ImmediateActions(category),
	})
}

func sessionView(sess *Session) sessionResponse {
	progress := sess.Progress()
	return sessionResponse{
		SessionID:  sess.ID,
		Symptom:    sess.Symptom,
		Phase:      sess.Phase,
		Cursor:     sess.Cursor,
		Answered:   sess.Answered(),
		Total:      progress.Total,
		Percentage: progress.Percentage,
		Emergency:  sess.Emergency,
		CreatedAt:  sess.CreatedAt,
		UpdatedAt:  sess.UpdatedAt,
		Result:     sess.Result,
	}
}

// mapServiceError translates the service's typed errors into HTTP statuses:
// bad input 400, unknown session 404, answering a finished session 409.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSessionComplete):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrEmptySymptom), errors.Is(err, ErrEmptyAnswer):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
