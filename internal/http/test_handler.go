package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mbti-insight/internal/catalog"
	"mbti-insight/internal/domain"
	"mbti-insight/internal/repository"
	"mbti-insight/internal/service"
)

// TestHandler mantiene dependencias para los endpoints del cuestionario.
type TestHandler struct {
	logger    *zap.Logger
	catalog   *catalog.Catalog
	responses repository.ResponseRepository
	resultSvc *service.ResultService
}

// NewTestHandler crea una instancia de TestHandler con dependencias necesarias.
func NewTestHandler(
	logger *zap.Logger,
	cat *catalog.Catalog,
	responses repository.ResponseRepository,
	resultSvc *service.ResultService,
) *TestHandler {
	return &TestHandler{
		logger:    logger,
		catalog:   cat,
		responses: responses,
		resultSvc: resultSvc,
	}
}

type responseInput struct {
	QuestionID   int               `json:"question_id" binding:"required"`
	Answer       int               `json:"answer" binding:"required"`
	Language     string            `json:"language"`
	ResponseTime *float64          `json:"response_time"`
	Metadata     map[string]string `json:"metadata"`
}

// GetQuestions maneja GET /api/test/questions y sirve el catalogo.
func (h *TestHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"scale":    h.catalog.Scale(),
		"sections": h.catalog.Sections(),
		"total":    h.catalog.Total(),
	})
}

// SubmitResponse maneja POST /api/test/responses. Reenviar la misma
// pregunta sobreescribe la respuesta y recalcula la fuerza.
func (h *TestHandler) SubmitResponse(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
		responseInput
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit response request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	response, err := h.buildResponse(req.SessionID, req.responseInput)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.responses.Upsert(c.Request.Context(), response); err != nil {
		h.logger.Error("save response failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save response"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"response": response})
}

// SubmitResponsesBulk maneja POST /api/test/responses/bulk.
// El lote entra entero o no entra.
func (h *TestHandler) SubmitResponsesBulk(c *gin.Context) {
	var req struct {
		SessionID string          `json:"session_id" binding:"required"`
		Responses []responseInput `json:"responses" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid bulk submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	responses := make([]domain.Response, 0, len(req.Responses))
	for _, input := range req.Responses {
		response, err := h.buildResponse(req.SessionID, input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		responses = append(responses, response)
	}

	if err := h.responses.BulkUpsert(c.Request.Context(), responses); err != nil {
		h.logger.Error("bulk save responses failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save responses"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved": len(responses)})
}

// Calculate maneja POST /api/test/calculate.
func (h *TestHandler) Calculate(c *gin.Context) {
	var req struct {
		SessionID    string              `json:"session_id" binding:"required"`
		UserID       string              `json:"user_id"`
		Demographics domain.Demographics `json:"demographics"`
		Language     string              `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid calculate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.resultSvc.Calculate(c.Request.Context(), req.SessionID, service.CalculateOptions{
		UserID:       req.UserID,
		Demographics: req.Demographics,
		Language:     req.Language,
	})
	if err != nil {
		var incomplete *domain.IncompleteTestError
		switch {
		case errors.Is(err, domain.ErrNoResponses):
			c.JSON(http.StatusNotFound, gin.H{"error": "no responses for session"})
		case errors.As(err, &incomplete):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "test incomplete",
				"detail": gin.H{
					"answered":              incomplete.Answered,
					"total":                 incomplete.Total,
					"completion_percentage": incomplete.CompletionPercentage,
					"missing_questions":     incomplete.MissingQuestions,
				},
			})
		case errors.Is(err, domain.ErrCatalogUnavailable):
			h.logger.Error("catalog unavailable", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "question catalog unavailable"})
		default:
			h.logger.Error("calculate failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not calculate result"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetResult maneja GET /api/test/result/:sessionId.
func (h *TestHandler) GetResult(c *gin.Context) {
	sessionID := c.Param("sessionId")
	result, err := h.resultSvc.GetBySession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		h.logger.Error("get result failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch result"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// buildResponse valida contra el catalogo y deriva los campos que el
// cliente no puede dictar: categoria, tipo elegido y fuerza.
func (h *TestHandler) buildResponse(sessionID string, input responseInput) (domain.Response, error) {
	question, ok := h.catalog.ByID(input.QuestionID)
	if !ok {
		return domain.Response{}, errUnknownQuestion
	}
	if input.Answer < 1 || input.Answer > 4 {
		return domain.Response{}, errAnswerOutOfRange
	}

	selected := question.LeftType
	if input.Answer >= 3 {
		selected = question.RightType
	}

	now := time.Now().UTC()
	return domain.Response{
		ID:           uuid.NewString(),
		SessionID:    sessionID,
		QuestionID:   question.QuestionID,
		Answer:       input.Answer,
		Category:     question.Category,
		SelectedType: selected,
		Strength:     domain.AnswerStrength(input.Answer),
		SectionID:    question.SectionID,
		Language:     input.Language,
		ResponseTime: input.ResponseTime,
		Metadata:     input.Metadata,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

var (
	errUnknownQuestion  = errors.New("unknown question_id")
	errAnswerOutOfRange = errors.New("answer must be between 1 and 4")
)
