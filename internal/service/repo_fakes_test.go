package service

import (
	"context"
	"errors"
	"time"

	"mbti-insight/internal/catalog"
	"mbti-insight/internal/domain"
)

// Fakes in-memory de los repositorios, compartidos por los tests del
// paquete. Imitan el contrato de las implementaciones de postgres,
// incluido lo que cada upsert preserva.

type fakeResponseRepo struct {
	bySession map[string][]domain.Response
	err       error
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{bySession: map[string][]domain.Response{}}
}

func (r *fakeResponseRepo) Upsert(_ context.Context, response domain.Response) error {
	if r.err != nil {
		return r.err
	}
	existing := r.bySession[response.SessionID]
	for i, prev := range existing {
		if prev.QuestionID == response.QuestionID {
			existing[i] = response
			return nil
		}
	}
	r.bySession[response.SessionID] = append(existing, response)
	return nil
}

func (r *fakeResponseRepo) BulkUpsert(ctx context.Context, responses []domain.Response) error {
	for _, response := range responses {
		if err := r.Upsert(ctx, response); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeResponseRepo) FindBySession(_ context.Context, sessionID string) ([]domain.Response, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.bySession[sessionID], nil
}

func (r *fakeResponseRepo) CountBySession(_ context.Context, sessionID string) (int, error) {
	return len(r.bySession[sessionID]), nil
}

func (r *fakeResponseRepo) DeleteBySession(_ context.Context, sessionID string) error {
	delete(r.bySession, sessionID)
	return nil
}

type fakeResultRepo struct {
	bySession map[string]domain.Result
	backfills map[string]string
	upsertErr error
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{
		bySession: map[string]domain.Result{},
		backfills: map[string]string{},
	}
}

func (r *fakeResultRepo) Upsert(_ context.Context, result domain.Result) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	if prev, ok := r.bySession[result.SessionID]; ok {
		// un recalculo nunca toca id, estado premium ni created_at
		result.ID = prev.ID
		result.IsPremiumUnlocked = prev.IsPremiumUnlocked
		result.CreatedAt = prev.CreatedAt
	}
	r.bySession[result.SessionID] = result
	return nil
}

func (r *fakeResultRepo) GetBySession(_ context.Context, sessionID string) (domain.Result, error) {
	result, ok := r.bySession[sessionID]
	if !ok {
		return domain.Result{}, domain.ErrNotFound
	}
	return result, nil
}

func (r *fakeResultRepo) List(_ context.Context, limit, offset int) ([]domain.Result, error) {
	var results []domain.Result
	for _, result := range r.bySession {
		results = append(results, result)
	}
	if offset >= len(results) {
		return nil, nil
	}
	results = results[offset:]
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}

func (r *fakeResultRepo) Count(_ context.Context) (int, error) {
	return len(r.bySession), nil
}

func (r *fakeResultRepo) DeleteBySession(_ context.Context, sessionID string) error {
	if _, ok := r.bySession[sessionID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.bySession, sessionID)
	return nil
}

func (r *fakeResultRepo) BackfillEmail(_ context.Context, sessionID, email string) error {
	r.backfills[sessionID] = email
	return nil
}

type fakeAnalysisRepo struct {
	byKey     map[string]domain.AIAnalysis
	upsertErr error
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{byKey: map[string]domain.AIAnalysis{}}
}

func analysisKey(sessionID, mbtiType string) string {
	return sessionID + "|" + mbtiType
}

func (r *fakeAnalysisRepo) Upsert(_ context.Context, analysis domain.AIAnalysis) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	key := analysisKey(analysis.SessionID, analysis.MBTIType)
	if prev, ok := r.byKey[key]; ok {
		// la regeneracion preserva desbloqueo, vistas, package y created_at
		analysis.ID = prev.ID
		analysis.IsPremiumUnlocked = prev.IsPremiumUnlocked
		analysis.UnlockedAt = prev.UnlockedAt
		analysis.ViewCount = prev.ViewCount
		analysis.PackageID = prev.PackageID
		analysis.CreatedAt = prev.CreatedAt
	}
	r.byKey[key] = analysis
	return nil
}

func (r *fakeAnalysisRepo) Get(_ context.Context, sessionID, mbtiType string) (domain.AIAnalysis, error) {
	analysis, ok := r.byKey[analysisKey(sessionID, mbtiType)]
	if !ok {
		return domain.AIAnalysis{}, domain.ErrNotFound
	}
	return analysis, nil
}

func (r *fakeAnalysisRepo) IncrementViewCount(_ context.Context, sessionID, mbtiType string) error {
	key := analysisKey(sessionID, mbtiType)
	analysis, ok := r.byKey[key]
	if !ok {
		return domain.ErrNotFound
	}
	analysis.ViewCount++
	r.byKey[key] = analysis
	return nil
}

func (r *fakeAnalysisRepo) Unlock(_ context.Context, sessionID, mbtiType string) (bool, error) {
	key := analysisKey(sessionID, mbtiType)
	analysis, ok := r.byKey[key]
	if !ok {
		return false, nil
	}
	if !analysis.IsPremiumUnlocked {
		analysis.IsPremiumUnlocked = true
		now := time.Now().UTC()
		analysis.UnlockedAt = &now
	}
	r.byKey[key] = analysis
	return true, nil
}

func (r *fakeAnalysisRepo) DeleteBySession(_ context.Context, sessionID string) error {
	for key, analysis := range r.byKey {
		if analysis.SessionID == sessionID {
			delete(r.byKey, key)
		}
	}
	return nil
}

type fakeAdminRepo struct {
	byEmail map[string]domain.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byEmail: map[string]domain.Admin{}}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin domain.Admin) error {
	if _, ok := r.byEmail[admin.Email]; ok {
		return errors.New("duplicate email")
	}
	r.byEmail[admin.Email] = admin
	return nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (domain.Admin, error) {
	admin, ok := r.byEmail[email]
	if !ok {
		return domain.Admin{}, domain.ErrNotFound
	}
	return admin, nil
}

// testCatalog arma un catalogo minimo de cuatro preguntas, una por par.
func testCatalog() *catalog.Catalog {
	return catalog.FromDocument(domain.QuestionCatalog{
		Scale: 4,
		Sections: []domain.Section{
			{
				SectionID: 1,
				Title:     "Energia",
				Questions: []domain.Question{
					{QuestionID: 1, Category: domain.CategoryEI, Direction: domain.DirectionPositive, LeftType: "E", RightType: "I", Text: "q1"},
					{QuestionID: 2, Category: domain.CategorySN, Direction: domain.DirectionPositive, LeftType: "S", RightType: "N", Text: "q2"},
					{QuestionID: 3, Category: domain.CategoryTF, Direction: domain.DirectionPositive, LeftType: "T", RightType: "F", Text: "q3"},
					{QuestionID: 4, Category: domain.CategoryJP, Direction: domain.DirectionPositive, LeftType: "J", RightType: "P", Text: "q4"},
				},
			},
		},
	})
}
