package domain

import "time"

// FullReport es el reporte bilingue: idioma -> campo -> texto.
// Las claves de campo son abiertas; el renderer itera lo que haya.
type FullReport map[string]map[string]string

// AIAnalysis es el paquete generado por el proveedor para (sesion, tipo).
type AIAnalysis struct {
	ID                string     `json:"id"`
	SessionID         string     `json:"session_id"`
	MBTIType          string     `json:"mbti_type"`
	FullReport        FullReport `json:"full_report,omitempty"`
	Model             string     `json:"model"`
	Tokens            int        `json:"tokens"`
	IsPremiumUnlocked bool       `json:"is_premium_unlocked"`
	UnlockedAt        *time.Time `json:"unlocked_at,omitempty"`
	PackageID         string     `json:"package_id"`
	UserEmail         string     `json:"user_email,omitempty"`
	ViewCount         int        `json:"view_count"`
	ExpiresAt         time.Time  `json:"expires_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Expired indica si el paquete ya vencio (la expiracion es advisory,
// se chequea en lectura; no hay barrido en background).
func (a *AIAnalysis) Expired(now time.Time) bool {
	return now.After(a.ExpiresAt)
}

// GatedView devuelve una copia apta para lectura externa: el FullReport
// solo se incluye cuando el premium esta desbloqueado. El gate vive aca,
// en el borde de datos, no en cada caller.
func (a AIAnalysis) GatedView() AIAnalysis {
	if !a.IsPremiumUnlocked {
		a.FullReport = nil
	}
	return a
}
