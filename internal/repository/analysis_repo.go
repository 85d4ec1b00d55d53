package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mbti-insight/internal/domain"
)

type AnalysisRepository interface {
	Upsert(ctx context.Context, analysis domain.AIAnalysis) error
	Get(ctx context.Context, sessionID, mbtiType string) (domain.AIAnalysis, error)
	IncrementViewCount(ctx context.Context, sessionID, mbtiType string) error
	Unlock(ctx context.Context, sessionID, mbtiType string) (bool, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type PgAnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewPgAnalysisRepository(pool *pgxpool.Pool) *PgAnalysisRepository {
	return &PgAnalysisRepository{pool: pool}
}

// Upsert crea o actualiza el paquete de (sesion, tipo). Una regeneracion
// pisa reporte, modelo, tokens y extiende la expiracion, pero NUNCA
// resetea is_premium_unlocked ni unlocked_at.
func (r *PgAnalysisRepository) Upsert(ctx context.Context, analysis domain.AIAnalysis) error {
	const query = `
		INSERT INTO ai_analyses (id, session_id, mbti_type, full_report, model, tokens, is_premium_unlocked, unlocked_at, package_id, user_email, view_count, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (session_id, mbti_type)
		DO UPDATE SET
			full_report = EXCLUDED.full_report,
			model = EXCLUDED.model,
			tokens = EXCLUDED.tokens,
			user_email = EXCLUDED.user_email,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at
	`
	fullReport, err := json.Marshal(analysis.FullReport)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		analysis.ID,
		analysis.SessionID,
		analysis.MBTIType,
		fullReport,
		analysis.Model,
		analysis.Tokens,
		analysis.IsPremiumUnlocked,
		analysis.UnlockedAt,
		analysis.PackageID,
		analysis.UserEmail,
		analysis.ViewCount,
		analysis.ExpiresAt,
		analysis.CreatedAt,
		analysis.UpdatedAt,
	)
	return err
}

func (r *PgAnalysisRepository) Get(ctx context.Context, sessionID, mbtiType string) (domain.AIAnalysis, error) {
	const query = `
		SELECT id, session_id, mbti_type, full_report, model, tokens, is_premium_unlocked, unlocked_at, package_id, user_email, view_count, expires_at, created_at, updated_at
		FROM ai_analyses
		WHERE session_id = $1 AND mbti_type = $2
	`
	var analysis domain.AIAnalysis
	var fullReport []byte
	err := r.pool.QueryRow(ctx, query, sessionID, mbtiType).Scan(
		&analysis.ID,
		&analysis.SessionID,
		&analysis.MBTIType,
		&fullReport,
		&analysis.Model,
		&analysis.Tokens,
		&analysis.IsPremiumUnlocked,
		&analysis.UnlockedAt,
		&analysis.PackageID,
		&analysis.UserEmail,
		&analysis.ViewCount,
		&analysis.ExpiresAt,
		&analysis.CreatedAt,
		&analysis.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AIAnalysis{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.AIAnalysis{}, err
	}
	if len(fullReport) > 0 {
		if err := json.Unmarshal(fullReport, &analysis.FullReport); err != nil {
			return domain.AIAnalysis{}, err
		}
	}
	return analysis, nil
}

func (r *PgAnalysisRepository) IncrementViewCount(ctx context.Context, sessionID, mbtiType string) error {
	const query = `
		UPDATE ai_analyses
		SET view_count = view_count + 1
		WHERE session_id = $1 AND mbti_type = $2
	`
	_, err := r.pool.Exec(ctx, query, sessionID, mbtiType)
	return err
}

// Unlock marca el premium como desbloqueado. Es one-way: nunca vuelve a
// false y no crea registros que no existen.
func (r *PgAnalysisRepository) Unlock(ctx context.Context, sessionID, mbtiType string) (bool, error) {
	const query = `
		UPDATE ai_analyses
		SET is_premium_unlocked = TRUE,
		    unlocked_at = COALESCE(unlocked_at, NOW()),
		    updated_at = NOW()
		WHERE session_id = $1 AND mbti_type = $2
	`
	tag, err := r.pool.Exec(ctx, query, sessionID, mbtiType)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgAnalysisRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ai_analyses WHERE session_id = $1`, sessionID)
	return err
}
