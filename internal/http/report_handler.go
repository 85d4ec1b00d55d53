package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mbti-insight/internal/domain"
	"mbti-insight/internal/payments"
	"mbti-insight/internal/service"
)

// ReportHandler mantiene dependencias para los endpoints de reportes AI.
type ReportHandler struct {
	logger    *zap.Logger
	resultSvc *service.ResultService
	reportSvc *service.ReportService
	renderSvc *service.RenderService
	payments  payments.Client
}

// NewReportHandler crea una instancia de ReportHandler con dependencias necesarias.
func NewReportHandler(
	logger *zap.Logger,
	resultSvc *service.ResultService,
	reportSvc *service.ReportService,
	renderSvc *service.RenderService,
	paymentsClient payments.Client,
) *ReportHandler {
	return &ReportHandler{
		logger:    logger,
		resultSvc: resultSvc,
		reportSvc: reportSvc,
		renderSvc: renderSvc,
		payments:  paymentsClient,
	}
}

// Generate maneja POST /api/report/generate: corre el pipeline AI para el
// resultado ya calculado de la sesion.
func (h *ReportHandler) Generate(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
		UserID    string `json:"user_id"`
		Email     string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.resultSvc.GetBySession(c.Request.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found; calculate first"})
			return
		}
		h.logger.Error("get result failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch result"})
		return
	}
	if req.Email != "" {
		result.Demographics.Email = req.Email
	}

	analysis, err := h.reportSvc.CreateCompletePackage(c.Request.Context(), result, req.SessionID, req.UserID)
	if err != nil {
		var providerErr *domain.ProviderError
		var parseErr *domain.AnalysisParseError
		switch {
		case errors.As(err, &providerErr):
			h.logger.Error("provider call failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "report provider unavailable"})
		case errors.As(err, &parseErr):
			h.logger.Error("analysis parse failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not parse generated report"})
		default:
			h.logger.Error("generate analysis failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate report"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"analysis": analysis.GatedView()})
}

// GetAnalysis maneja GET /api/report/:sessionId/:type. El FullReport solo
// viaja si el premium esta desbloqueado.
func (h *ReportHandler) GetAnalysis(c *gin.Context) {
	analysis, err := h.reportSvc.GetAnalysis(c.Request.Context(), c.Param("sessionId"), c.Param("type"))
	if err != nil {
		h.logger.Error("get analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch analysis"})
		return
	}
	if analysis == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found or expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// RenderHTML maneja GET /api/report/:sessionId/:type/html.
func (h *ReportHandler) RenderHTML(c *gin.Context) {
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

	// el analisis puede no existir o estar bloqueado; el renderer tolera ambos
	analysis, err := h.reportSvc.GetAnalysis(c.Request.Context(), sessionID, c.Param("type"))
	if err != nil {
		h.logger.Error("get analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch analysis"})
		return
	}

	html, err := h.renderSvc.RenderHTML(result, analysis)
	if err != nil {
		h.logger.Error("render report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render report"})
		return
	}

	// pisa el content-type JSON que setea el middleware global
	c.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Unlock maneja POST /api/report/unlock (desbloqueo manual/admin).
func (h *ReportHandler) Unlock(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
		MBTIType  string `json:"mbti_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	unlocked, err := h.reportSvc.UnlockPremium(c.Request.Context(), req.SessionID, req.MBTIType)
	if err != nil {
		h.logger.Error("unlock failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not unlock"})
		return
	}
	if !unlocked {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unlocked"})
}

// Checkout maneja POST /api/report/checkout: crea el payment intent de
// desbloqueo con la metadata que luego lee el webhook.
func (h *ReportHandler) Checkout(c *gin.Context) {
	if h.payments == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments not configured"})
		return
	}

	var req struct {
		SessionID string `json:"session_id" binding:"required"`
		MBTIType  string `json:"mbti_type" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// solo se puede pagar un paquete que existe
	analysis, err := h.reportSvc.GetAnalysis(c.Request.Context(), req.SessionID, req.MBTIType)
	if err != nil {
		h.logger.Error("get analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch analysis"})
		return
	}
	if analysis == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found or expired"})
		return
	}

	clientSecret, err := h.payments.CreateUnlockIntent(c.Request.Context(), payments.CheckoutParams{
		AmountCents: unlockPriceCents,
		Currency:    "usd",
		Email:       req.Email,
		SessionID:   req.SessionID,
		MBTIType:    req.MBTIType,
	})
	if err != nil {
		h.logger.Error("create unlock intent failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"client_secret": clientSecret})
}

const unlockPriceCents = 999
