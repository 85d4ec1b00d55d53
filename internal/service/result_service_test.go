package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"mbti-insight/internal/domain"
)

func seedResponses(t *testing.T, repo *fakeResponseRepo, sessionID string, answers map[int]int) {
	t.Helper()
	cat := testCatalog()
	for questionID, answer := range answers {
		question, ok := cat.ByID(questionID)
		if !ok {
			t.Fatalf("unknown question %d in seed", questionID)
		}
		err := repo.Upsert(context.Background(), domain.Response{
			ID:         "id",
			SessionID:  sessionID,
			QuestionID: questionID,
			Answer:     answer,
			Category:   question.Category,
			Strength:   domain.AnswerStrength(answer),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestCalculate(t *testing.T) {
	responseRepo := newFakeResponseRepo()
	resultRepo := newFakeResultRepo()
	svc := NewResultService(responseRepo, resultRepo, testCatalog(), zap.NewNop())

	seedResponses(t, responseRepo, "s1", map[int]int{1: 1, 2: 2, 3: 3, 4: 4})

	result, err := svc.Calculate(context.Background(), "s1", CalculateOptions{
		UserID:       "u1",
		Demographics: domain.Demographics{Email: "user@example.com"},
		Language:     "es",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// EI:1->E, SN:2->S, TF:3->F, JP:4->P
	if result.MBTIType != "ESFP" {
		t.Errorf("type = %q, want ESFP", result.MBTIType)
	}
	if result.Statistics.CompletionPercentage != 100 {
		t.Errorf("completion = %d, want 100", result.Statistics.CompletionPercentage)
	}
	if result.Statistics.TotalResponses != 4 {
		t.Errorf("total responses = %d, want 4", result.Statistics.TotalResponses)
	}
	if result.UserID != "u1" || result.Demographics.Email != "user@example.com" {
		t.Errorf("options lost: %+v", result)
	}

	// el resultado quedo persistido bajo la sesion
	stored, err := resultRepo.GetBySession(context.Background(), "s1")
	if err != nil {
		t.Fatalf("result not persisted: %v", err)
	}
	if stored.MBTIType != result.MBTIType {
		t.Errorf("stored type = %q", stored.MBTIType)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	responseRepo := newFakeResponseRepo()
	resultRepo := newFakeResultRepo()
	svc := NewResultService(responseRepo, resultRepo, testCatalog(), zap.NewNop())

	seedResponses(t, responseRepo, "s1", map[int]int{1: 2, 2: 4, 3: 1, 4: 3})

	first, err := svc.Calculate(context.Background(), "s1", CalculateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Calculate(context.Background(), "s1", CalculateOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if first.MBTIType != second.MBTIType ||
		first.NormalizedScores != second.NormalizedScores ||
		first.Confidence != second.Confidence {
		t.Errorf("recalculation diverged: %+v vs %+v", first, second)
	}
}

func TestCalculateReusesResultIdentity(t *testing.T) {
	responseRepo := newFakeResponseRepo()
	resultRepo := newFakeResultRepo()
	svc := NewResultService(responseRepo, resultRepo, testCatalog(), zap.NewNop())

	seedResponses(t, responseRepo, "s1", map[int]int{1: 1, 2: 1, 3: 1, 4: 1})

	first, err := svc.Calculate(context.Background(), "s1", CalculateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Calculate(context.Background(), "s1", CalculateOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if second.ID != first.ID {
		t.Errorf("recalculation changed id: %q vs %q", second.ID, first.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("recalculation changed created_at: %v vs %v", second.CreatedAt, first.CreatedAt)
	}

	// lo devuelto coincide con la fila persistida
	stored, err := resultRepo.GetBySession(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if stored.ID != second.ID {
		t.Errorf("stored id = %q, returned %q", stored.ID, second.ID)
	}
}

func TestCalculateNoResponses(t *testing.T) {
	svc := NewResultService(newFakeResponseRepo(), newFakeResultRepo(), testCatalog(), zap.NewNop())

	_, err := svc.Calculate(context.Background(), "empty", CalculateOptions{})
	if !errors.Is(err, domain.ErrNoResponses) {
		t.Fatalf("error = %v, want ErrNoResponses", err)
	}
}

func TestCalculateIncomplete(t *testing.T) {
	responseRepo := newFakeResponseRepo()
	resultRepo := newFakeResultRepo()
	svc := NewResultService(responseRepo, resultRepo, testCatalog(), zap.NewNop())

	seedResponses(t, responseRepo, "s1", map[int]int{1: 1, 2: 2})

	_, err := svc.Calculate(context.Background(), "s1", CalculateOptions{})

	var incomplete *domain.IncompleteTestError
	if !errors.As(err, &incomplete) {
		t.Fatalf("error = %v, want IncompleteTestError", err)
	}
	if incomplete.Answered != 2 || incomplete.Total != 4 {
		t.Errorf("answered/total = %d/%d, want 2/4", incomplete.Answered, incomplete.Total)
	}
	if incomplete.CompletionPercentage != 50 {
		t.Errorf("percentage = %d, want 50", incomplete.CompletionPercentage)
	}
	if len(incomplete.MissingQuestions) != 2 {
		t.Errorf("missing = %v, want two entries", incomplete.MissingQuestions)
	}

	// un test incompleto nunca persiste resultado
	if _, err := resultRepo.GetBySession(context.Background(), "s1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("incomplete test persisted a result: %v", err)
	}
}

func TestCalculateCatalogUnavailable(t *testing.T) {
	svc := NewResultService(newFakeResponseRepo(), newFakeResultRepo(), nil, zap.NewNop())

	_, err := svc.Calculate(context.Background(), "s1", CalculateOptions{})
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("error = %v, want ErrCatalogUnavailable", err)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	responses := []domain.Response{
		{Category: domain.CategoryEI, Answer: 1},
		{Category: domain.CategoryEI, Answer: 2},
		{Category: domain.CategorySN, Answer: 3},
	}

	breakdown := categoryBreakdown(responses)

	ei := breakdown[domain.CategoryEI]
	if ei.Count != 2 {
		t.Errorf("EI count = %d, want 2", ei.Count)
	}
	// (1.0 + 0.5) / 2
	if ei.AverageStrength != 0.75 {
		t.Errorf("EI average strength = %v, want 0.75", ei.AverageStrength)
	}

	sn := breakdown[domain.CategorySN]
	if sn.Count != 1 || sn.AverageStrength != 0.5 {
		t.Errorf("SN breakdown = %+v", sn)
	}
}

func TestAverageResponseTime(t *testing.T) {
	secs := func(v float64) *float64 { return &v }

	responses := []domain.Response{
		{ResponseTime: secs(2.0)},
		{ResponseTime: nil},
		{ResponseTime: secs(4.5)},
	}

	if got := averageResponseTime(responses); got != 3.25 {
		t.Errorf("average = %v, want 3.25", got)
	}
	if got := averageResponseTime([]domain.Response{{}}); got != 0 {
		t.Errorf("average without samples = %v, want 0", got)
	}
}
