package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mbti-insight/internal/domain"
)

type ResultRepository interface {
	Upsert(ctx context.Context, result domain.Result) error
	GetBySession(ctx context.Context, sessionID string) (domain.Result, error)
	List(ctx context.Context, limit, offset int) ([]domain.Result, error)
	Count(ctx context.Context) (int, error)
	DeleteBySession(ctx context.Context, sessionID string) error
	BackfillEmail(ctx context.Context, sessionID, email string) error
}

type PgResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgResultRepository(pool *pgxpool.Pool) *PgResultRepository {
	return &PgResultRepository{pool: pool}
}

// Upsert reemplaza el resultado completo de la sesion: un recalculo pisa
// todos los campos derivados, nunca mergea.
func (r *PgResultRepository) Upsert(ctx context.Context, result domain.Result) error {
	const query = `
		INSERT INTO results (id, session_id, user_id, mbti_type, raw_scores, normalized_scores, dimensions, confidence, description, type_info, celebrities, recommendations, statistics, demographics, language, premium, is_premium_unlocked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (session_id)
		DO UPDATE SET
			user_id = EXCLUDED.user_id,
			mbti_type = EXCLUDED.mbti_type,
			raw_scores = EXCLUDED.raw_scores,
			normalized_scores = EXCLUDED.normalized_scores,
			dimensions = EXCLUDED.dimensions,
			confidence = EXCLUDED.confidence,
			description = EXCLUDED.description,
			type_info = EXCLUDED.type_info,
			celebrities = EXCLUDED.celebrities,
			recommendations = EXCLUDED.recommendations,
			statistics = EXCLUDED.statistics,
			demographics = EXCLUDED.demographics,
			language = EXCLUDED.language,
			premium = EXCLUDED.premium,
			updated_at = EXCLUDED.updated_at
	`
	rawScores, err := json.Marshal(result.RawScores)
	if err != nil {
		return err
	}
	normalized, err := json.Marshal(result.NormalizedScores)
	if err != nil {
		return err
	}
	dimensions, err := json.Marshal(result.Dimensions)
	if err != nil {
		return err
	}
	confidence, err := json.Marshal(result.Confidence)
	if err != nil {
		return err
	}
	typeInfo, err := json.Marshal(result.TypeInfo)
	if err != nil {
		return err
	}
	celebrities, err := json.Marshal(result.Celebrities)
	if err != nil {
		return err
	}
	recommendations, err := json.Marshal(result.Recommendations)
	if err != nil {
		return err
	}
	statistics, err := json.Marshal(result.Statistics)
	if err != nil {
		return err
	}
	demographics, err := json.Marshal(result.Demographics)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		result.ID,
		result.SessionID,
		result.UserID,
		result.MBTIType,
		rawScores,
		normalized,
		dimensions,
		confidence,
		result.Description,
		typeInfo,
		celebrities,
		recommendations,
		statistics,
		demographics,
		result.Language,
		result.Premium,
		result.IsPremiumUnlocked,
		result.CreatedAt,
		result.UpdatedAt,
	)
	return err
}

const selectResultColumns = `
	SELECT id, session_id, user_id, mbti_type, raw_scores, normalized_scores, dimensions, confidence, description, type_info, celebrities, recommendations, statistics, demographics, language, premium, is_premium_unlocked, created_at, updated_at
	FROM results
`

func (r *PgResultRepository) GetBySession(ctx context.Context, sessionID string) (domain.Result, error) {
	row := r.pool.QueryRow(ctx, selectResultColumns+` WHERE session_id = $1`, sessionID)
	result, err := scanResult(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Result{}, domain.ErrNotFound
	}
	return result, err
}

func (r *PgResultRepository) List(ctx context.Context, limit, offset int) ([]domain.Result, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, selectResultColumns+` ORDER BY updated_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *PgResultRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM results`).Scan(&count)
	return count, err
}

func (r *PgResultRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM results WHERE session_id = $1`, sessionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// BackfillEmail completa el email en demographics sin tocar el resto del
// resultado. Lo usa el pipeline AI antes de generar.
func (r *PgResultRepository) BackfillEmail(ctx context.Context, sessionID, email string) error {
	const query = `
		UPDATE results
		SET demographics = jsonb_set(COALESCE(demographics, '{}'::jsonb), '{email}', to_jsonb($2::text)),
		    updated_at = NOW()
		WHERE session_id = $1
	`
	tag, err := r.pool.Exec(ctx, query, sessionID, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanResult(row pgx.Row) (domain.Result, error) {
	var result domain.Result
	var rawScores, normalized, dimensions, confidence, typeInfo, celebrities, recommendations, statistics, demographics []byte

	if err := row.Scan(
		&result.ID,
		&result.SessionID,
		&result.UserID,
		&result.MBTIType,
		&rawScores,
		&normalized,
		&dimensions,
		&confidence,
		&result.Description,
		&typeInfo,
		&celebrities,
		&recommendations,
		&statistics,
		&demographics,
		&result.Language,
		&result.Premium,
		&result.IsPremiumUnlocked,
		&result.CreatedAt,
		&result.UpdatedAt,
	); err != nil {
		return domain.Result{}, err
	}

	for _, pair := range []struct {
		data []byte
		dst  any
	}{
		{rawScores, &result.RawScores},
		{normalized, &result.NormalizedScores},
		{dimensions, &result.Dimensions},
		{confidence, &result.Confidence},
		{typeInfo, &result.TypeInfo},
		{celebrities, &result.Celebrities},
		{recommendations, &result.Recommendations},
		{statistics, &result.Statistics},
		{demographics, &result.Demographics},
	} {
		if len(pair.data) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.data, pair.dst); err != nil {
			return domain.Result{}, err
		}
	}
	return result, nil
}
