package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mbti-insight/internal/domain"
	"mbti-insight/internal/payments"
	"mbti-insight/internal/service"
)

type memAnalysisRepo struct {
	byKey map[string]domain.AIAnalysis
}

func newMemAnalysisRepo() *memAnalysisRepo {
	return &memAnalysisRepo{byKey: map[string]domain.AIAnalysis{}}
}

func (r *memAnalysisRepo) key(sessionID, mbtiType string) string {
	return sessionID + "|" + mbtiType
}

func (r *memAnalysisRepo) Upsert(_ context.Context, analysis domain.AIAnalysis) error {
	r.byKey[r.key(analysis.SessionID, analysis.MBTIType)] = analysis
	return nil
}

func (r *memAnalysisRepo) Get(_ context.Context, sessionID, mbtiType string) (domain.AIAnalysis, error) {
	analysis, ok := r.byKey[r.key(sessionID, mbtiType)]
	if !ok {
		return domain.AIAnalysis{}, domain.ErrNotFound
	}
	return analysis, nil
}

func (r *memAnalysisRepo) IncrementViewCount(_ context.Context, sessionID, mbtiType string) error {
	return nil
}

func (r *memAnalysisRepo) Unlock(_ context.Context, sessionID, mbtiType string) (bool, error) {
	key := r.key(sessionID, mbtiType)
	analysis, ok := r.byKey[key]
	if !ok {
		return false, nil
	}
	analysis.IsPremiumUnlocked = true
	r.byKey[key] = analysis
	return true, nil
}

func (r *memAnalysisRepo) DeleteBySession(_ context.Context, sessionID string) error {
	return nil
}

type stubPayments struct {
	event     payments.Event
	verifyErr error
}

func (s *stubPayments) CreateUnlockIntent(_ context.Context, _ payments.CheckoutParams) (string, error) {
	return "cs_test", nil
}

func (s *stubPayments) VerifyWebhook(_ []byte, _, _ string) (payments.Event, error) {
	if s.verifyErr != nil {
		return payments.Event{}, s.verifyErr
	}
	return s.event, nil
}

func newWebhookRouter(stub *stubPayments, analysisRepo *memAnalysisRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	reportSvc := service.NewReportService(nil, analysisRepo, newMemResultRepo(), nil, "es", logger)
	handler := NewWebhookHandler(logger, stub, reportSvc, "whsec_test")

	r := gin.New()
	r.POST("/api/webhooks/stripe", handler.HandleStripe)
	return r
}

func postWebhook(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookUnlocksOnPaymentSucceeded(t *testing.T) {
	analysisRepo := newMemAnalysisRepo()
	if err := analysisRepo.Upsert(context.Background(), domain.AIAnalysis{
		ID: "a1", SessionID: "s1", MBTIType: "INTJ",
	}); err != nil {
		t.Fatal(err)
	}

	stub := &stubPayments{event: payments.Event{
		ID:      "evt_1",
		Type:    "payment_intent.succeeded",
		DataRaw: json.RawMessage(`{"metadata":{"session_id":"s1","mbti_type":"INTJ"}}`),
	}}

	w := postWebhook(newWebhookRouter(stub, analysisRepo))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	stored, err := analysisRepo.Get(context.Background(), "s1", "INTJ")
	if err != nil {
		t.Fatal(err)
	}
	if !stored.IsPremiumUnlocked {
		t.Error("payment succeeded but package stayed locked")
	}
}

func TestWebhookRejectsInvalidSignature(t *testing.T) {
	stub := &stubPayments{verifyErr: errors.New("bad signature")}

	w := postWebhook(newWebhookRouter(stub, newMemAnalysisRepo()))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestWebhookAcksUnknownEvents(t *testing.T) {
	stub := &stubPayments{event: payments.Event{
		ID:   "evt_2",
		Type: "charge.refunded",
	}}

	w := postWebhook(newWebhookRouter(stub, newMemAnalysisRepo()))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestWebhookAcksMissingMetadata(t *testing.T) {
	stub := &stubPayments{event: payments.Event{
		ID:      "evt_3",
		Type:    "payment_intent.succeeded",
		DataRaw: json.RawMessage(`{"metadata":{}}`),
	}}

	w := postWebhook(newWebhookRouter(stub, newMemAnalysisRepo()))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 ack", w.Code)
	}
}
