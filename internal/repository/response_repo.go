package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mbti-insight/internal/domain"
)

type ResponseRepository interface {
	Upsert(ctx context.Context, response domain.Response) error
	BulkUpsert(ctx context.Context, responses []domain.Response) error
	FindBySession(ctx context.Context, sessionID string) ([]domain.Response, error)
	CountBySession(ctx context.Context, sessionID string) (int, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type PgResponseRepository struct {
	pool *pgxpool.Pool
}

func NewPgResponseRepository(pool *pgxpool.Pool) *PgResponseRepository {
	return &PgResponseRepository{pool: pool}
}

const upsertResponseQuery = `
	INSERT INTO responses (id, session_id, question_id, answer, category, selected_type, strength, section_id, language, response_time, metadata, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (session_id, question_id)
	DO UPDATE SET
		answer = EXCLUDED.answer,
		category = EXCLUDED.category,
		selected_type = EXCLUDED.selected_type,
		strength = EXCLUDED.strength,
		language = EXCLUDED.language,
		response_time = EXCLUDED.response_time,
		metadata = EXCLUDED.metadata,
		updated_at = EXCLUDED.updated_at
`

func (r *PgResponseRepository) Upsert(ctx context.Context, response domain.Response) error {
	metadata, err := marshalMetadata(response.Metadata)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, upsertResponseQuery,
		response.ID,
		response.SessionID,
		response.QuestionID,
		response.Answer,
		response.Category,
		response.SelectedType,
		response.Strength,
		response.SectionID,
		response.Language,
		response.ResponseTime,
		metadata,
		response.CreatedAt,
		response.UpdatedAt,
	)
	return err
}

// BulkUpsert inserta un lote en una transaccion: o entran todas o ninguna.
func (r *PgResponseRepository) BulkUpsert(ctx context.Context, responses []domain.Response) error {
	if len(responses) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, response := range responses {
		metadata, err := marshalMetadata(response.Metadata)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, upsertResponseQuery,
			response.ID,
			response.SessionID,
			response.QuestionID,
			response.Answer,
			response.Category,
			response.SelectedType,
			response.Strength,
			response.SectionID,
			response.Language,
			response.ResponseTime,
			metadata,
			response.CreatedAt,
			response.UpdatedAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PgResponseRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.Response, error) {
	const query = `
		SELECT id, session_id, question_id, answer, category, selected_type, strength, section_id, language, response_time, metadata, created_at, updated_at
		FROM responses
		WHERE session_id = $1
		ORDER BY question_id
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []domain.Response
	for rows.Next() {
		response, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *PgResponseRepository) CountBySession(ctx context.Context, sessionID string) (int, error) {
	const query = `SELECT COUNT(*) FROM responses WHERE session_id = $1`
	var count int
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(&count)
	return count, err
}

// DeleteBySession borra las respuestas de una sesion. Solo lo usa el admin.
func (r *PgResponseRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	const query = `DELETE FROM responses WHERE session_id = $1`
	_, err := r.pool.Exec(ctx, query, sessionID)
	return err
}

func scanResponse(rows pgx.Rows) (domain.Response, error) {
	var response domain.Response
	var metadata []byte
	if err := rows.Scan(
		&response.ID,
		&response.SessionID,
		&response.QuestionID,
		&response.Answer,
		&response.Category,
		&response.SelectedType,
		&response.Strength,
		&response.SectionID,
		&response.Language,
		&response.ResponseTime,
		&metadata,
		&response.CreatedAt,
		&response.UpdatedAt,
	); err != nil {
		return domain.Response{}, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &response.Metadata); err != nil {
			return domain.Response{}, err
		}
	}
	return response, nil
}

func marshalMetadata(metadata map[string]string) ([]byte, error) {
	if metadata == nil {
		return nil, nil
	}
	return json.Marshal(metadata)
}
