package service

import (
	"math"

	"mbti-insight/internal/catalog"
	"mbti-insight/internal/domain"
)

// ValidationReport es el detalle de completitud que viaja en el
// IncompleteTestError para que el cliente muestre el progreso.
type ValidationReport struct {
	IsComplete           bool  `json:"is_complete"`
	Answered             int   `json:"answered"`
	Total                int   `json:"total"`
	CompletionPercentage int   `json:"completion_percentage"`
	MissingQuestions     []int `json:"missing_questions,omitempty"`
}

// ValidateResponses chequea que la sesion haya contestado el catalogo
// completo. No valida el contenido de cada respuesta; eso es del intake.
func ValidateResponses(responses []domain.Response, cat *catalog.Catalog) ValidationReport {
	total := cat.Total()
	answered := make(map[int]bool, len(responses))
	for _, response := range responses {
		answered[response.QuestionID] = true
	}

	var missing []int
	for _, question := range cat.Questions() {
		if !answered[question.QuestionID] {
			missing = append(missing, question.QuestionID)
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(len(responses)) / float64(total) * 100))
	}

	return ValidationReport{
		IsComplete:           len(responses) >= total,
		Answered:             len(responses),
		Total:                total,
		CompletionPercentage: percentage,
		MissingQuestions:     missing,
	}
}
