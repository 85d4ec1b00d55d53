package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mbti-insight/internal/payments"
	"mbti-insight/internal/service"
)

// WebhookHandler procesa webhooks de Stripe. El unico evento que importa
// es payment_intent.succeeded: desbloquea el premium del paquete que
// viene en la metadata. Stripe entrega at-least-once; el desbloqueo es
// one-way, asi que un replay es inofensivo.
type WebhookHandler struct {
	logger        *zap.Logger
	payments      payments.Client
	reportSvc     *service.ReportService
	webhookSecret string
}

func NewWebhookHandler(
	logger *zap.Logger,
	paymentsClient payments.Client,
	reportSvc *service.ReportService,
	webhookSecret string,
) *WebhookHandler {
	return &WebhookHandler{
		logger:        logger,
		payments:      paymentsClient,
		reportSvc:     reportSvc,
		webhookSecret: webhookSecret,
	}
}

// HandleStripe maneja POST /api/webhooks/stripe.
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	if h.payments == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments not configured"})
		return
	}

	// la firma se valida sobre los bytes exactos que firmo Stripe
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 65536)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read body"})
		return
	}

	event, err := h.payments.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		h.logger.Warn("invalid webhook signature", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook signature"})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		sessionID, mbtiType, err := payments.ExtractUnlockMetadata(event)
		if err != nil {
			h.logger.Warn("webhook without unlock metadata",
				zap.String("event_id", event.ID), zap.Error(err))
			// ack: reintentar no va a agregar la metadata que falta
			c.Status(http.StatusOK)
			return
		}
		unlocked, err := h.reportSvc.UnlockPremium(c.Request.Context(), sessionID, mbtiType)
		if err != nil {
			h.logger.Error("webhook unlock failed",
				zap.String("event_id", event.ID), zap.Error(err))
			// 500 para que Stripe reintente la entrega
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unlock failed"})
			return
		}
		if !unlocked {
			h.logger.Warn("webhook unlock for missing analysis",
				zap.String("session_id", sessionID), zap.String("mbti_type", mbtiType))
		}

	default:
		// evento que no manejamos; ack para que Stripe deje de reintentar
	}

	c.Status(http.StatusOK)
}
