package domain

import "time"

// RawScores son los 8 acumuladores crudos del motor de puntaje.
type RawScores struct {
	E float64 `json:"E"`
	I float64 `json:"I"`
	S float64 `json:"S"`
	N float64 `json:"N"`
	T float64 `json:"T"`
	F float64 `json:"F"`
	J float64 `json:"J"`
	P float64 `json:"P"`
}

// NormalizedScores son porcentajes por letra. Cada par se redondea por
// separado, asi que un par puede sumar 99 o 101; eso es aceptado.
type NormalizedScores struct {
	E int `json:"E"`
	I int `json:"I"`
	S int `json:"S"`
	N int `json:"N"`
	T int `json:"T"`
	F int `json:"F"`
	J int `json:"J"`
	P int `json:"P"`
}

// Dimensions guarda la letra elegida por cada par.
type Dimensions struct {
	EI string `json:"EI"`
	SN string `json:"SN"`
	TF string `json:"TF"`
	JP string `json:"JP"`
}

// Confidence es la brecha absoluta (0-100) entre los dos lados de cada par.
type Confidence struct {
	EI int `json:"EI"`
	SN int `json:"SN"`
	TF int `json:"TF"`
	JP int `json:"JP"`
}

// CategoryBreakdown resume las respuestas de una categoria.
type CategoryBreakdown struct {
	Count           int     `json:"count"`
	AverageStrength float64 `json:"average_strength"`
}

// Statistics acompana al resultado para el dashboard.
type Statistics struct {
	CompletionPercentage int                          `json:"completion_percentage"`
	AverageResponseTime  float64                      `json:"average_response_time"`
	TotalResponses       int                          `json:"total_responses"`
	ByCategory           map[string]CategoryBreakdown `json:"by_category"`
}

type Demographics struct {
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	AgeRange  string `json:"age_range,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Country   string `json:"country,omitempty"`
	Education string `json:"education,omitempty"`
}

// TypeInfo es la metadata estatica del tipo calculado.
type TypeInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Result es el resultado unico por sesion. Se reemplaza completo en cada
// recalculo; nunca se escribe parcialmente.
type Result struct {
	ID                string           `json:"id"`
	SessionID         string           `json:"session_id"`
	UserID            string           `json:"user_id,omitempty"`
	MBTIType          string           `json:"mbti_type"`
	RawScores         RawScores        `json:"raw_scores"`
	NormalizedScores  NormalizedScores `json:"normalized_scores"`
	Dimensions        Dimensions       `json:"dimensions"`
	Confidence        Confidence       `json:"confidence"`
	Description       string           `json:"description,omitempty"`
	TypeInfo          TypeInfo         `json:"type_info"`
	Celebrities       []string         `json:"celebrities,omitempty"`
	Recommendations   []string         `json:"recommendations,omitempty"`
	Statistics        Statistics       `json:"statistics"`
	Demographics      Demographics     `json:"demographics"`
	Language          string           `json:"language,omitempty"`
	Premium           bool             `json:"premium"`
	IsPremiumUnlocked bool             `json:"is_premium_unlocked"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
