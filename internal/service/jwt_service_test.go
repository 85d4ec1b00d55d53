package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mbti-insight/internal/domain"
)

const jwtTestSecret = "super-secret-for-tests"

func testAdmin() domain.Admin {
	return domain.Admin{
		ID:          "admin-1",
		Email:       "admin@example.com",
		DisplayName: "Admin",
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService(jwtTestSecret, time.Hour)

	token, expiresIn, err := svc.GenerateAccessToken(testAdmin())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expires_in = %d, want 3600", expiresIn)
	}

	claims, err := svc.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.AdminID != "admin-1" || claims.Email != "admin@example.com" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.TokenType != "access" {
		t.Errorf("token type = %q", claims.TokenType)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(jwtTestSecret, time.Hour)
	verifier := NewJWTService("another-secret", time.Hour)

	token, _, err := issuer.GenerateAccessToken(testAdmin())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := verifier.ParseAccessToken(token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("error = %v, want ErrJWTInvalid", err)
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(jwtTestSecret, time.Hour)

	past := time.Now().Add(-2 * time.Hour)
	claims := Claims{
		AdminID:   "admin-1",
		Email:     "admin@example.com",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "mbti-insight",
			Subject:   "admin-1",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtTestSecret))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("error = %v, want ErrJWTExpired", err)
	}
}

func TestJWTRejectsNonAccessToken(t *testing.T) {
	svc := NewJWTService(jwtTestSecret, time.Hour)

	now := time.Now()
	claims := Claims{
		AdminID:   "admin-1",
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "mbti-insight",
			Subject:   "admin-1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtTestSecret))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("error = %v, want ErrJWTInvalid", err)
	}
}

func TestJWTRejectsEmptyAndGarbage(t *testing.T) {
	svc := NewJWTService(jwtTestSecret, time.Hour)

	for _, token := range []string{"", "   ", "not.a.jwt"} {
		if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrJWTInvalid) {
			t.Errorf("ParseAccessToken(%q) = %v, want ErrJWTInvalid", token, err)
		}
	}
}

func TestJWTRejectsWrongIssuer(t *testing.T) {
	svc := NewJWTService(jwtTestSecret, time.Hour)

	now := time.Now()
	claims := Claims{
		AdminID:   "admin-1",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   "admin-1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtTestSecret))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("error = %v, want ErrJWTInvalid", err)
	}
}
