package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mbti-insight/internal/catalog"
	"mbti-insight/internal/content"
	"mbti-insight/internal/domain"
	"mbti-insight/internal/repository"
)

// ResultService orquesta el calculo del resultado de una sesion:
// valida completitud, corre el motor de puntaje y persiste un unico
// Result por sesion (upsert idempotente, sin escrituras parciales).
type ResultService struct {
	responseRepo repository.ResponseRepository
	resultRepo   repository.ResultRepository
	catalog      *catalog.Catalog
	logger       *zap.Logger
}

func NewResultService(
	responseRepo repository.ResponseRepository,
	resultRepo repository.ResultRepository,
	cat *catalog.Catalog,
	logger *zap.Logger,
) *ResultService {
	return &ResultService{
		responseRepo: responseRepo,
		resultRepo:   resultRepo,
		catalog:      cat,
		logger:       logger,
	}
}

// CalculateOptions son los datos opcionales que acompañan al calculo.
// Los demographics pasados aca reemplazan a los anteriores, no mergean.
type CalculateOptions struct {
	UserID       string
	Demographics domain.Demographics
	Language     string
}

// Calculate computa y persiste el resultado de la sesion.
// Dos llamadas con las mismas respuestas producen el mismo resultado
// (modulo timestamps).
func (s *ResultService) Calculate(ctx context.Context, sessionID string, opts CalculateOptions) (domain.Result, error) {
	if s.catalog == nil || s.catalog.Total() == 0 {
		return domain.Result{}, domain.ErrCatalogUnavailable
	}

	responses, err := s.responseRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("fetch responses for session %s: %w", sessionID, err)
	}
	if len(responses) == 0 {
		return domain.Result{}, domain.ErrNoResponses
	}

	report := ValidateResponses(responses, s.catalog)
	if !report.IsComplete {
		return domain.Result{}, &domain.IncompleteTestError{
			Answered:             report.Answered,
			Total:                report.Total,
			CompletionPercentage: report.CompletionPercentage,
			MissingQuestions:     report.MissingQuestions,
		}
	}

	scores := ComputeScores(responses, s.catalog)

	now := time.Now().UTC()
	// el upsert nunca pisa id ni created_at; los reusamos para que lo
	// que devolvemos coincida con la fila persistida en un recalculo
	id := uuid.NewString()
	createdAt := now
	if existing, err := s.resultRepo.GetBySession(ctx, sessionID); err == nil {
		id = existing.ID
		createdAt = existing.CreatedAt
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Result{}, fmt.Errorf("fetch result for session %s: %w", sessionID, err)
	}

	result := domain.Result{
		ID:               id,
		SessionID:        sessionID,
		UserID:           opts.UserID,
		MBTIType:         scores.Type,
		RawScores:        scores.RawScores,
		NormalizedScores: scores.Normalized,
		Dimensions:       scores.Dimensions,
		Confidence:       scores.Confidence,
		Description:      scores.Description,
		TypeInfo:         scores.TypeInfo,
		Celebrities:      scores.Celebrities,
		Recommendations:  content.RecommendationsFor(scores.Type),
		Statistics: domain.Statistics{
			CompletionPercentage: report.CompletionPercentage,
			AverageResponseTime:  averageResponseTime(responses),
			TotalResponses:       scores.TotalResponses,
			ByCategory:           categoryBreakdown(responses),
		},
		Demographics: opts.Demographics,
		Language:     opts.Language,
		CreatedAt:    createdAt,
		UpdatedAt:    now,
	}

	if err := s.resultRepo.Upsert(ctx, result); err != nil {
		return domain.Result{}, fmt.Errorf("persist result for session %s: %w", sessionID, err)
	}

	if s.logger != nil {
		s.logger.Info("result calculated",
			zap.String("session_id", sessionID),
			zap.String("mbti_type", result.MBTIType),
			zap.Int("responses", len(responses)),
		)
	}
	return result, nil
}

// GetBySession devuelve el resultado persistido de la sesion.
func (s *ResultService) GetBySession(ctx context.Context, sessionID string) (domain.Result, error) {
	return s.resultRepo.GetBySession(ctx, sessionID)
}

// categoryBreakdown resume cantidad y fuerza promedio por categoria.
// La fuerza sale de domain.AnswerStrength, la misma funcion que se usa
// al persistir, para que no puedan divergir.
func categoryBreakdown(responses []domain.Response) map[string]domain.CategoryBreakdown {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, response := range responses {
		sums[response.Category] += domain.AnswerStrength(response.Answer)
		counts[response.Category]++
	}

	breakdown := make(map[string]domain.CategoryBreakdown, len(counts))
	for category, count := range counts {
		avg := 0.0
		if count > 0 {
			avg = roundTo(sums[category]/float64(count), 2)
		}
		breakdown[category] = domain.CategoryBreakdown{Count: count, AverageStrength: avg}
	}
	return breakdown
}

// averageResponseTime promedia solo las respuestas que registraron tiempo.
func averageResponseTime(responses []domain.Response) float64 {
	sum := 0.0
	count := 0
	for _, response := range responses {
		if response.ResponseTime != nil {
			sum += *response.ResponseTime
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return roundTo(sum/float64(count), 2)
}

func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
