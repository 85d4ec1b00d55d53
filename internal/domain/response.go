package domain

import "time"

// Response es la respuesta de una sesion a una pregunta.
// Unica por (session_id, question_id); se sobreescribe al reenviar.
type Response struct {
	ID           string            `json:"id"`
	SessionID    string            `json:"session_id"`
	QuestionID   int               `json:"question_id"`
	Answer       int               `json:"answer"`
	Category     string            `json:"category"`
	SelectedType string            `json:"selected_type,omitempty"`
	Strength     float64           `json:"strength"`
	SectionID    int               `json:"section_id"`
	Language     string            `json:"language,omitempty"`
	ResponseTime *float64          `json:"response_time,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// AnswerStrength deriva el peso de una respuesta a partir de su valor.
// Es la unica fuente de verdad: se usa al persistir y al reportar.
// 1 y 4 son extremos (1.0), 2 y 3 son moderados (0.5); cualquier otro valor no aporta.
func AnswerStrength(answer int) float64 {
	switch answer {
	case 1, 4:
		return 1.0
	case 2, 3:
		return 0.5
	default:
		return 0
	}
}
