package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mbti-insight/internal/catalog"
	"mbti-insight/internal/config"
	"mbti-insight/internal/db"
	"mbti-insight/internal/email"
	apihttp "mbti-insight/internal/http"
	"mbti-insight/internal/llm"
	"mbti-insight/internal/payments"
	"mbti-insight/internal/repository"
	"mbti-insight/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("load question catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}
	logger.Info("question catalog loaded", zap.Int("questions", cat.Total()))

	responseRepo := repository.NewPgResponseRepository(pool)
	resultRepo := repository.NewPgResultRepository(pool)
	analysisRepo := repository.NewPgAnalysisRepository(pool)
	adminRepo := repository.NewPgAdminRepository(pool)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTemperature, cfg.LLMMaxTokens, logger)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var visits service.VisitCounter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			visits = service.NewRedisVisitCounter(redisClient)
		}
		cancel()
	}

	var paymentsClient payments.Client
	if cfg.StripeSecretKey != "" {
		paymentsClient = payments.NewClient(cfg.StripeSecretKey)
	} else {
		logger.Warn("stripe not configured, checkout and webhooks disabled")
	}

	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)

	resultSvc := service.NewResultService(responseRepo, resultRepo, cat, logger)
	reportSvc := service.NewReportService(llmClient, analysisRepo, resultRepo, emailSender, cfg.ReportLanguage, logger)
	renderSvc, err := service.NewRenderService()
	if err != nil {
		logger.Fatal("render service init", zap.Error(err))
	}
	adminSvc := service.NewAdminService(logger, adminRepo, resultRepo, responseRepo, analysisRepo, visits)

	if cfg.AdminSeedEmail != "" {
		ctxSeed, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := adminSvc.SeedAdmin(ctxSeed, cfg.AdminSeedEmail, cfg.AdminSeedName, cfg.AdminSeedPassword); err != nil {
			logger.Warn("admin seed", zap.Error(err))
		}
		cancel()
	}

	testHandler := apihttp.NewTestHandler(logger, cat, responseRepo, resultSvc)
	reportHandler := apihttp.NewReportHandler(logger, resultSvc, reportSvc, renderSvc, paymentsClient)
	adminHandler := apihttp.NewAdminHandler(logger, adminSvc, jwtSvc)
	webhookHandler := apihttp.NewWebhookHandler(logger, paymentsClient, reportSvc, cfg.StripeWebhookSecret)

	router := apihttp.NewRouter(logger, testHandler, reportHandler, adminHandler, webhookHandler, jwtSvc, visits)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
