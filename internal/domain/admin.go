package domain

import "time"

// Admin es una cuenta del dashboard. No hay cuentas de usuarios finales;
// las sesiones de test son anonimas.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
