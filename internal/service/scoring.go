package service

import (
	"math"

	"mbti-insight/internal/catalog"
	"mbti-insight/internal/content"
	"mbti-insight/internal/domain"
)

// ScoreResult es la salida pura del motor: mismas respuestas y mismo
// catalogo producen siempre el mismo valor.
type ScoreResult struct {
	Type           string
	RawScores      domain.RawScores
	Normalized     domain.NormalizedScores
	Dimensions     domain.Dimensions
	Confidence     domain.Confidence
	Description    string
	Celebrities    []string
	TypeInfo       domain.TypeInfo
	TotalResponses int
}

// pares en orden convencional; el primer miembro gana los empates.
var dimensionPairs = [4][2]string{
	{"E", "I"},
	{"S", "N"},
	{"T", "F"},
	{"J", "P"},
}

// ComputeScores corre el motor MBTI sobre las respuestas de una sesion.
// El orden de entrada es irrelevante. Respuestas cuya pregunta no esta en
// el catalogo se saltean en silencio; un answer fuera de [1,4] no aporta
// a ningun lado y tampoco tira.
func ComputeScores(responses []domain.Response, cat *catalog.Catalog) ScoreResult {
	acc := map[string]float64{"E": 0, "I": 0, "S": 0, "N": 0, "T": 0, "F": 0, "J": 0, "P": 0}

	for _, response := range responses {
		question, ok := cat.ByID(response.QuestionID)
		if !ok {
			continue
		}
		left, right := answerWeights(response.Answer)
		// Las letras salen de la pregunta, no de la categoria: un catalogo
		// que etiqueta "FT" o "PJ" funciona igual.
		acc[question.LeftType] += left
		acc[question.RightType] += right
	}

	raw := domain.RawScores{
		E: acc["E"], I: acc["I"],
		S: acc["S"], N: acc["N"],
		T: acc["T"], F: acc["F"],
		J: acc["J"], P: acc["P"],
	}

	normalized := map[string]int{}
	letters := map[string]string{}
	confidence := map[string]int{}

	for _, pair := range dimensionPairs {
		left, right := pair[0], pair[1]
		total := acc[left] + acc[right]
		if total < 1 {
			// piso en 1 para no dividir por cero; 0/0 queda 0%/0%
			total = 1
		}
		normalized[left] = int(math.Round(acc[left] / total * 100))
		normalized[right] = int(math.Round(acc[right] / total * 100))

		// empate favorece la primera letra del par
		if acc[left] >= acc[right] {
			letters[left+right] = left
		} else {
			letters[left+right] = right
		}
		confidence[left+right] = abs(normalized[left] - normalized[right])
	}

	mbtiType := letters["EI"] + letters["SN"] + letters["TF"] + letters["JP"]

	return ScoreResult{
		Type: mbtiType,
		RawScores: raw,
		Normalized: domain.NormalizedScores{
			E: normalized["E"], I: normalized["I"],
			S: normalized["S"], N: normalized["N"],
			T: normalized["T"], F: normalized["F"],
			J: normalized["J"], P: normalized["P"],
		},
		Dimensions: domain.Dimensions{
			EI: letters["EI"], SN: letters["SN"], TF: letters["TF"], JP: letters["JP"],
		},
		Confidence: domain.Confidence{
			EI: confidence["EI"], SN: confidence["SN"], TF: confidence["TF"], JP: confidence["JP"],
		},
		Description:    content.DescriptionFor(mbtiType),
		Celebrities:    content.CelebritiesFor(mbtiType),
		TypeInfo:       content.TypeInfoFor(mbtiType),
		TotalResponses: len(responses),
	}
}

// answerWeights mapea un answer 1-4 a los pesos (izquierda, derecha).
func answerWeights(answer int) (left, right float64) {
	switch answer {
	case 1:
		return 1.0, 0
	case 2:
		return 0.5, 0
	case 3:
		return 0, 0.5
	case 4:
		return 0, 1.0
	default:
		return 0, 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
