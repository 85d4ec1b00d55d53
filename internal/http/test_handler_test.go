package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mbti-insight/internal/catalog"
	"mbti-insight/internal/domain"
	"mbti-insight/internal/service"
)

type memResponseRepo struct {
	bySession map[string][]domain.Response
}

func newMemResponseRepo() *memResponseRepo {
	return &memResponseRepo{bySession: map[string][]domain.Response{}}
}

func (r *memResponseRepo) Upsert(_ context.Context, response domain.Response) error {
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

func (r *memResponseRepo) BulkUpsert(ctx context.Context, responses []domain.Response) error {
	for _, response := range responses {
		if err := r.Upsert(ctx, response); err != nil {
			return err
		}
	}
	return nil
}

func (r *memResponseRepo) FindBySession(_ context.Context, sessionID string) ([]domain.Response, error) {
	return r.bySession[sessionID], nil
}

func (r *memResponseRepo) CountBySession(_ context.Context, sessionID string) (int, error) {
	return len(r.bySession[sessionID]), nil
}

func (r *memResponseRepo) DeleteBySession(_ context.Context, sessionID string) error {
	delete(r.bySession, sessionID)
	return nil
}

type memResultRepo struct {
	bySession map[string]domain.Result
}

func newMemResultRepo() *memResultRepo {
	return &memResultRepo{bySession: map[string]domain.Result{}}
}

func (r *memResultRepo) Upsert(_ context.Context, result domain.Result) error {
	r.bySession[result.SessionID] = result
	return nil
}

func (r *memResultRepo) GetBySession(_ context.Context, sessionID string) (domain.Result, error) {
	result, ok := r.bySession[sessionID]
	if !ok {
		return domain.Result{}, domain.ErrNotFound
	}
	return result, nil
}

func (r *memResultRepo) List(_ context.Context, _, _ int) ([]domain.Result, error) { return nil, nil }
func (r *memResultRepo) Count(_ context.Context) (int, error)                      { return len(r.bySession), nil }
func (r *memResultRepo) DeleteBySession(_ context.Context, sessionID string) error {
	delete(r.bySession, sessionID)
	return nil
}
func (r *memResultRepo) BackfillEmail(_ context.Context, _, _ string) error { return nil }

func questionnaireCatalog() *catalog.Catalog {
	return catalog.FromDocument(domain.QuestionCatalog{
		Scale: 4,
		Sections: []domain.Section{{
			SectionID: 1,
			Title:     "Test",
			Questions: []domain.Question{
				{QuestionID: 1, Category: domain.CategoryEI, LeftType: "E", RightType: "I", Text: "q1"},
				{QuestionID: 2, Category: domain.CategorySN, LeftType: "S", RightType: "N", Text: "q2"},
			},
		}},
	})
}

func newTestRouter() (*gin.Engine, *memResponseRepo) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	cat := questionnaireCatalog()
	responseRepo := newMemResponseRepo()
	resultSvc := service.NewResultService(responseRepo, newMemResultRepo(), cat, logger)
	handler := NewTestHandler(logger, cat, responseRepo, resultSvc)

	r := gin.New()
	r.GET("/api/test/questions", handler.GetQuestions)
	r.POST("/api/test/responses", handler.SubmitResponse)
	r.POST("/api/test/responses/bulk", handler.SubmitResponsesBulk)
	r.POST("/api/test/calculate", handler.Calculate)
	r.GET("/api/test/result/:sessionId", handler.GetResult)
	return r, responseRepo
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetQuestionsEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/test/questions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Scale int `json:"scale"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Scale != 4 || body.Total != 2 {
		t.Errorf("scale/total = %d/%d, want 4/2", body.Scale, body.Total)
	}
}

func TestSubmitResponseDerivesFields(t *testing.T) {
	r, repo := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/test/responses", map[string]any{
		"session_id":  "s1",
		"question_id": 1,
		"answer":      4,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	responses := repo.bySession["s1"]
	if len(responses) != 1 {
		t.Fatalf("stored responses = %d, want 1", len(responses))
	}
	saved := responses[0]
	if saved.Category != domain.CategoryEI {
		t.Errorf("category = %q, want EI", saved.Category)
	}
	if saved.SelectedType != "I" {
		t.Errorf("selected type = %q, want I", saved.SelectedType)
	}
	if saved.Strength != 1.0 {
		t.Errorf("strength = %v, want 1.0", saved.Strength)
	}
}

func TestSubmitResponseRejectsBadInput(t *testing.T) {
	r, _ := newTestRouter()

	cases := []struct {
		name string
		body map[string]any
	}{
		{"pregunta desconocida", map[string]any{"session_id": "s1", "question_id": 99, "answer": 1}},
		{"answer fuera de rango", map[string]any{"session_id": "s1", "question_id": 1, "answer": 5}},
		{"sin session", map[string]any{"question_id": 1, "answer": 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/test/responses", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestSubmitResponseOverwrites(t *testing.T) {
	r, repo := newTestRouter()

	for _, answer := range []int{1, 3} {
		w := doJSON(r, http.MethodPost, "/api/test/responses", map[string]any{
			"session_id":  "s1",
			"question_id": 1,
			"answer":      answer,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d", w.Code)
		}
	}

	responses := repo.bySession["s1"]
	if len(responses) != 1 {
		t.Fatalf("stored responses = %d, want 1 after overwrite", len(responses))
	}
	if responses[0].Answer != 3 {
		t.Errorf("answer = %d, want the last submission", responses[0].Answer)
	}
}

func TestCalculateEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	// sesion sin respuestas
	w := doJSON(r, http.MethodPost, "/api/test/calculate", map[string]any{"session_id": "ghost"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("empty session status = %d, want 404", w.Code)
	}

	// una sola respuesta de dos: incompleto
	doJSON(r, http.MethodPost, "/api/test/responses", map[string]any{
		"session_id": "s1", "question_id": 1, "answer": 1,
	})
	w = doJSON(r, http.MethodPost, "/api/test/calculate", map[string]any{"session_id": "s1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("incomplete status = %d, want 400", w.Code)
	}
	var incomplete struct {
		Detail struct {
			Answered int   `json:"answered"`
			Total    int   `json:"total"`
			Missing  []int `json:"missing_questions"`
		} `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &incomplete); err != nil {
		t.Fatal(err)
	}
	if incomplete.Detail.Answered != 1 || incomplete.Detail.Total != 2 {
		t.Errorf("detail = %+v", incomplete.Detail)
	}

	// completo
	doJSON(r, http.MethodPost, "/api/test/responses", map[string]any{
		"session_id": "s1", "question_id": 2, "answer": 4,
	})
	w = doJSON(r, http.MethodPost, "/api/test/calculate", map[string]any{"session_id": "s1"})
	if w.Code != http.StatusOK {
		t.Fatalf("complete status = %d, body = %s", w.Code, w.Body.String())
	}
	var calculated struct {
		Result struct {
			MBTIType string `json:"mbti_type"`
		} `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &calculated); err != nil {
		t.Fatal(err)
	}
	// solo EI y SN en el catalogo; TF y JP quedan en su letra izquierda
	if calculated.Result.MBTIType != "ENTJ" {
		t.Errorf("type = %q, want ENTJ", calculated.Result.MBTIType)
	}

	// el resultado persiste y se puede leer
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/test/result/%s", "s1"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get result status = %d", w.Code)
	}
}

func TestGetResultMissing(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/test/result/ghost", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
