package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mbti-insight/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	testH *TestHandler,
	reportH *ReportHandler,
	adminH *AdminHandler,
	webhookH *WebhookHandler,
	jwtSvc *service.JWTService,
	visits service.VisitCounter,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	api := r.Group("/api")
	api.Use(visitCounterMiddleware(logger, visits))

	test := api.Group("/test")
	test.GET("/questions", testH.GetQuestions)
	test.POST("/responses", testH.SubmitResponse)
	test.POST("/responses/bulk", testH.SubmitResponsesBulk)
	test.POST("/calculate", testH.Calculate)
	test.GET("/result/:sessionId", testH.GetResult)

	report := api.Group("/report")
	report.POST("/generate", reportH.Generate)
	report.GET("/:sessionId/:type", reportH.GetAnalysis)
	report.GET("/:sessionId/:type/html", reportH.RenderHTML)
	report.POST("/unlock", reportH.Unlock)
	report.POST("/checkout", reportH.Checkout)

	// los webhooks no cuentan como visitas
	r.POST("/api/webhooks/stripe", webhookH.HandleStripe)

	admin := r.Group("/admin")
	admin.POST("/login", adminH.Login)

	protected := admin.Group("")
	protected.Use(JWTAuthMiddleware(jwtSvc))
	protected.GET("/results", adminH.ListResults)
	protected.DELETE("/results/:sessionId", adminH.DeleteSession)
	protected.GET("/stats", adminH.Stats)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// visitCounterMiddleware registra la visita diaria en redis. Best-effort:
// si redis no esta, el request sigue igual.
func visitCounterMiddleware(logger *zap.Logger, visits service.VisitCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if visits != nil {
			if err := visits.Record(c.Request.Context()); err != nil {
				logger.Debug("visit record failed", zap.Error(err))
			}
		}
		c.Next()
	}
}
