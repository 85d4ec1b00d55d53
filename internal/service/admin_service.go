package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mbti-insight/internal/domain"
	"mbti-insight/internal/repository"
)

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AdminService maneja el login del dashboard y las operaciones de
// administracion sobre resultados y estadisticas.
type AdminService struct {
	logger       *zap.Logger
	adminRepo    repository.AdminRepository
	resultRepo   repository.ResultRepository
	responseRepo repository.ResponseRepository
	analysisRepo repository.AnalysisRepository
	visits       VisitCounter
}

func NewAdminService(
	logger *zap.Logger,
	adminRepo repository.AdminRepository,
	resultRepo repository.ResultRepository,
	responseRepo repository.ResponseRepository,
	analysisRepo repository.AnalysisRepository,
	visits VisitCounter,
) *AdminService {
	return &AdminService{
		logger:       logger,
		adminRepo:    adminRepo,
		resultRepo:   resultRepo,
		responseRepo: responseRepo,
		analysisRepo: analysisRepo,
		visits:       visits,
	}
}

// CreateAdmin da de alta una cuenta con el password hasheado.
func (s *AdminService) CreateAdmin(ctx context.Context, email, displayName, password string) (domain.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return domain.Admin{}, fmt.Errorf("%w: email and a password of 8+ chars are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("hash password: %w", err)
	}

	admin := domain.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return domain.Admin{}, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// SeedAdmin crea la cuenta inicial solo si el email todavia no existe.
// Es idempotente, pensada para correr en cada arranque.
func (s *AdminService) SeedAdmin(ctx context.Context, email, displayName, password string) error {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if _, err := s.adminRepo.GetByEmail(ctx, normalized); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get admin: %w", err)
	}

	admin, err := s.CreateAdmin(ctx, email, displayName, password)
	if err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info("admin account seeded", zap.String("email", admin.Email))
	}
	return nil
}

// Login verifica credenciales y devuelve la cuenta.
func (s *AdminService) Login(ctx context.Context, email, password string) (domain.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Admin{}, ErrInvalidCredentials
		}
		return domain.Admin{}, fmt.Errorf("get admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return domain.Admin{}, ErrInvalidCredentials
	}
	return admin, nil
}

// ListResults pagina los resultados para el dashboard.
func (s *AdminService) ListResults(ctx context.Context, limit, offset int) ([]domain.Result, int, error) {
	results, err := s.resultRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list results: %w", err)
	}
	total, err := s.resultRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count results: %w", err)
	}
	return results, total, nil
}

// DeleteSession borra resultado, respuestas y analisis de una sesion.
// Es la unica via por la que se eliminan respuestas.
func (s *AdminService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.resultRepo.DeleteBySession(ctx, sessionID); err != nil {
		return err
	}
	if err := s.responseRepo.DeleteBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete responses: %w", err)
	}
	if err := s.analysisRepo.DeleteBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete analyses: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("session purged by admin", zap.String("session_id", sessionID))
	}
	return nil
}

// Stats junta contadores de visitas y totales para el dashboard.
func (s *AdminService) Stats(ctx context.Context, days int) (map[string]any, error) {
	totalResults, err := s.resultRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count results: %w", err)
	}

	stats := map[string]any{
		"total_results": totalResults,
	}
	if s.visits != nil {
		visits, err := s.visits.Stats(ctx, days)
		if err != nil {
			// las visitas viven en redis; si no estan, el resto sirve igual
			if s.logger != nil {
				s.logger.Warn("visit stats unavailable", zap.Error(err))
			}
		} else {
			stats["visits"] = visits
		}
	}
	return stats, nil
}
