package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mbti-insight/internal/domain"
	"mbti-insight/internal/email"
	"mbti-insight/internal/llm"
	"mbti-insight/internal/repository"
)

// analysisTTL: la expiracion del paquete es advisory, se chequea al leer.
const analysisTTL = 30 * 24 * time.Hour

// ReportService es el pipeline de reportes AI: construye el prompt, llama
// al proveedor UNA vez, limpia y parsea la salida, mergea con el corpus
// editorial y persiste el paquete (sesion, tipo) con su gate premium.
//
// Estados por (sesion, tipo): NotRequested -> Generating -> Ready|Failed.
// Un fallo total no persiste nada. Ready -> PremiumUnlocked es one-way.
type ReportService struct {
	llmClient    llm.LLMClient
	analysisRepo repository.AnalysisRepository
	resultRepo   repository.ResultRepository
	promptB      ReportPromptBuilder
	parser       ReportParser
	sender       email.Sender
	secondLang   string
	logger       *zap.Logger
	now          func() time.Time
}

func NewReportService(
	llmClient llm.LLMClient,
	analysisRepo repository.AnalysisRepository,
	resultRepo repository.ResultRepository,
	sender email.Sender,
	secondLang string,
	logger *zap.Logger,
) *ReportService {
	if secondLang == "" || secondLang == "en" {
		secondLang = "es"
	}
	return &ReportService{
		llmClient:    llmClient,
		analysisRepo: analysisRepo,
		resultRepo:   resultRepo,
		sender:       sender,
		secondLang:   secondLang,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateCompletePackage genera y persiste el paquete de analisis para el
// resultado dado. Hace a lo sumo UNA llamada al proveedor; no reintenta
// ni paraleliza. La regeneracion pisa reporte/modelo/tokens y extiende la
// expiracion, pero nunca resetea el desbloqueo premium.
func (s *ReportService) CreateCompletePackage(ctx context.Context, result domain.Result, sessionID, userID string) (domain.AIAnalysis, error) {
	// backfill best-effort del email en el Result guardado; si falla se
	// loggea y el pipeline sigue
	userEmail := strings.TrimSpace(result.Demographics.Email)
	if userEmail != "" {
		if err := s.resultRepo.BackfillEmail(ctx, sessionID, userEmail); err != nil {
			if s.logger != nil {
				s.logger.Warn("demographic email backfill failed",
					zap.String("session_id", sessionID), zap.Error(err))
			}
		}
	}

	prompt := s.promptB.BuildReportPrompt(result, s.secondLang)

	generated, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		return domain.AIAnalysis{}, &domain.ProviderError{Err: err}
	}

	now := s.now()
	cleaned := cleanReportResponse(generated.Content, now)

	report, strategy, err := s.parser.ParseReport(cleaned, []string{"en", s.secondLang})
	if err != nil {
		if s.logger != nil {
			s.logger.Error("analysis parse failed",
				zap.String("session_id", sessionID),
				zap.String("mbti_type", result.MBTIType),
				zap.Error(err))
		}
		return domain.AIAnalysis{}, err
	}
	if s.logger != nil && strategy != "direct" {
		s.logger.Info("analysis recovered from non-conforming output",
			zap.String("session_id", sessionID), zap.String("strategy", strategy))
	}

	report = mergeReportWithCorpus(report, result.MBTIType)

	analysis := domain.AIAnalysis{
		ID:                uuid.NewString(),
		SessionID:         sessionID,
		MBTIType:          result.MBTIType,
		FullReport:        report,
		Model:             generated.Model,
		Tokens:            generated.TotalTokens,
		IsPremiumUnlocked: false,
		PackageID:         fmt.Sprintf("%s-%d", result.MBTIType, now.UnixNano()),
		UserEmail:         userEmail,
		ExpiresAt:         now.Add(analysisTTL),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.analysisRepo.Upsert(ctx, analysis); err != nil {
		return domain.AIAnalysis{}, fmt.Errorf("persist analysis for session %s: %w", sessionID, err)
	}

	if s.logger != nil {
		s.logger.Info("analysis package created",
			zap.String("session_id", sessionID),
			zap.String("mbti_type", result.MBTIType),
			zap.String("model", analysis.Model),
			zap.Int("tokens", analysis.Tokens))
	}

	// notificacion best-effort; el paquete ya esta persistido
	if s.sender != nil && userEmail != "" {
		if err := s.sender.SendReportReady(ctx, userEmail, result.MBTIType, analysis.PackageID); err != nil {
			if s.logger != nil {
				s.logger.Warn("report ready email failed",
					zap.String("session_id", sessionID), zap.Error(err))
			}
		}
	}

	return analysis, nil
}

// GetAnalysis devuelve el paquete con el gate premium aplicado en el
// borde de datos: sin desbloqueo, el FullReport no sale de aca. Paquetes
// vencidos o inexistentes devuelven nil. Leer incrementa el contador de
// vistas.
func (s *ReportService) GetAnalysis(ctx context.Context, sessionID, mbtiType string) (*domain.AIAnalysis, error) {
	analysis, err := s.analysisRepo.Get(ctx, sessionID, mbtiType)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	if analysis.Expired(s.now()) {
		return nil, nil
	}

	if err := s.analysisRepo.IncrementViewCount(ctx, sessionID, mbtiType); err != nil && s.logger != nil {
		s.logger.Warn("view count increment failed",
			zap.String("session_id", sessionID), zap.Error(err))
	}
	analysis.ViewCount++

	gated := analysis.GatedView()
	return &gated, nil
}

// UnlockPremium marca el paquete como desbloqueado. Devuelve false si no
// existe; nunca lo crea.
func (s *ReportService) UnlockPremium(ctx context.Context, sessionID, mbtiType string) (bool, error) {
	unlocked, err := s.analysisRepo.Unlock(ctx, sessionID, mbtiType)
	if err != nil {
		return false, fmt.Errorf("unlock premium for session %s: %w", sessionID, err)
	}
	if unlocked && s.logger != nil {
		s.logger.Info("premium unlocked",
			zap.String("session_id", sessionID), zap.String("mbti_type", mbtiType))
	}
	return unlocked, nil
}
