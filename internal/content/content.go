package content

import "mbti-insight/internal/domain"

// ReportFields es la lista fija de campos del reporte que consultan el
// merge y el corpus. El renderer NO depende de esta lista: itera lo que
// el reporte tenga.
var ReportFields = []string{
	"coverPage",
	"executiveSummary",
	"detailedAnalysis",
	"careerPath",
	"friendshipCompatibility",
	"romanticCompatibility",
	"mentalHealthInsights",
	"selfImprovement",
	"dailyLifeApplications",
	"actionPlan",
}

// TypeProfile es la metadata estatica de un tipo MBTI.
type TypeProfile struct {
	Code        string
	Name        string
	Description string
	Celebrities []string
}

// TypeInfoFor devuelve la metadata del tipo. Un tipo desconocido devuelve
// defaults vacios, nunca error: los lookups estaticos no pueden tirar.
func TypeInfoFor(code string) domain.TypeInfo {
	p, ok := profiles[code]
	if !ok {
		return domain.TypeInfo{Code: code}
	}
	return domain.TypeInfo{Code: p.Code, Name: p.Name, Description: p.Description}
}

// DescriptionFor devuelve la descripcion corta del tipo, o "".
func DescriptionFor(code string) string {
	if p, ok := profiles[code]; ok {
		return p.Description
	}
	return ""
}

// CelebritiesFor devuelve hasta tres celebridades del tipo, o lista vacia.
func CelebritiesFor(code string) []string {
	p, ok := profiles[code]
	if !ok {
		return []string{}
	}
	if len(p.Celebrities) > 3 {
		return p.Celebrities[:3]
	}
	return p.Celebrities
}

// RecommendationsFor devuelve sugerencias genericas segun el tipo.
func RecommendationsFor(code string) []string {
	if recs, ok := recommendations[code]; ok {
		return recs
	}
	return []string{}
}

// PredefinedText busca el texto curado para (idioma, tipo, campo).
// El segundo valor indica si existe; un miss es esperado, no un error.
func PredefinedText(lang, mbtiType, field string) (string, bool) {
	byType, ok := predefined[lang]
	if !ok {
		return "", false
	}
	byField, ok := byType[mbtiType]
	if !ok {
		return "", false
	}
	text, ok := byField[field]
	return text, ok
}

// PredefinedFields devuelve el mapa campo->texto curado para (idioma, tipo).
// Nil si no hay corpus para ese tipo; el pipeline deja pasar el texto AI.
func PredefinedFields(lang, mbtiType string) map[string]string {
	byType, ok := predefined[lang]
	if !ok {
		return nil
	}
	return byType[mbtiType]
}
