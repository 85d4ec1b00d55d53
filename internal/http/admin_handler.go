package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mbti-insight/internal/domain"
	"mbti-insight/internal/service"
)

// AdminHandler expone el login del dashboard y las operaciones de
// administracion sobre resultados y estadisticas.
type AdminHandler struct {
	logger   *zap.Logger
	adminSvc *service.AdminService
	jwtSvc   *service.JWTService
}

func NewAdminHandler(logger *zap.Logger, adminSvc *service.AdminService, jwtSvc *service.JWTService) *AdminHandler {
	return &AdminHandler{logger: logger, adminSvc: adminSvc, jwtSvc: jwtSvc}
}

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login maneja POST /admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	admin, err := h.adminSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logger.Error("admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log in"})
		return
	}

	token, expiresIn, err := h.jwtSvc.GenerateAccessToken(admin)
	if err != nil {
		h.logger.Error("could not sign access token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   expiresIn,
		"admin": gin.H{
			"id":           admin.ID,
			"email":        admin.Email,
			"display_name": admin.DisplayName,
		},
	})
}

// ListResults maneja GET /admin/results con paginacion limit/offset.
func (h *AdminHandler) ListResults(c *gin.Context) {
	limit := parsePositiveInt(c.Query("limit"), 50)
	if limit > 200 {
		limit = 200
	}
	offset := parsePositiveInt(c.Query("offset"), 0)

	results, total, err := h.adminSvc.ListResults(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("could not list results", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// DeleteSession maneja DELETE /admin/results/:sessionId.
func (h *AdminHandler) DeleteSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}

	if err := h.adminSvc.DeleteSession(c.Request.Context(), sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		h.logger.Error("could not delete session",
			zap.String("session_id", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": sessionID})
}

// Stats maneja GET /admin/stats. El query param days acota la ventana
// de visitas (default 30).
func (h *AdminHandler) Stats(c *gin.Context) {
	days := parsePositiveInt(c.Query("days"), 30)
	if days > 90 {
		days = 90
	}

	stats, err := h.adminSvc.Stats(c.Request.Context(), days)
	if err != nil {
		h.logger.Error("could not build stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
