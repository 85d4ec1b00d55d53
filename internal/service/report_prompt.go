package service

import (
	"fmt"
	"strings"

	"mbti-insight/internal/content"
	"mbti-insight/internal/domain"
)

// ReportPromptBuilder construye el unico prompt del pipeline de reportes.
type ReportPromptBuilder struct{}

// minimos de palabras por campo; instruccion al modelo, no invariante.
var fieldMinWords = map[string]int{
	"coverPage":               60,
	"executiveSummary":        150,
	"detailedAnalysis":        400,
	"careerPath":              250,
	"friendshipCompatibility": 200,
	"romanticCompatibility":   200,
	"mentalHealthInsights":    200,
	"selfImprovement":         200,
	"dailyLifeApplications":   200,
	"actionPlan":              250,
}

// BuildReportPrompt arma el prompt bilingue (ingles primero, luego la
// traduccion) con el contrato JSON estricto del pipeline.
func (ReportPromptBuilder) BuildReportPrompt(result domain.Result, secondLang string) string {
	if secondLang == "" || secondLang == "en" {
		secondLang = "es"
	}

	var sb strings.Builder

	sb.WriteString("You are a senior personality psychologist writing a premium MBTI report.\n\n")
	sb.WriteString(fmt.Sprintf("Subject: MBTI type %s", result.MBTIType))
	if result.TypeInfo.Name != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", result.TypeInfo.Name))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(
		"Dimension scores: E %d%% / I %d%%, S %d%% / N %d%%, T %d%% / F %d%%, J %d%% / P %d%%.\n",
		result.NormalizedScores.E, result.NormalizedScores.I,
		result.NormalizedScores.S, result.NormalizedScores.N,
		result.NormalizedScores.T, result.NormalizedScores.F,
		result.NormalizedScores.J, result.NormalizedScores.P,
	))
	sb.WriteString(fmt.Sprintf(
		"Preference clarity: EI %d, SN %d, TF %d, JP %d (percentage-point gaps).\n\n",
		result.Confidence.EI, result.Confidence.SN, result.Confidence.TF, result.Confidence.JP,
	))

	sb.WriteString("TASK:\n")
	sb.WriteString(fmt.Sprintf("1. Research the %s type in depth, grounding every section in the scores above.\n", result.MBTIType))
	sb.WriteString("2. Write ALL content in English first.\n")
	sb.WriteString(fmt.Sprintf("3. Translate every field to %q with the same depth, not a summary.\n\n", secondLang))

	sb.WriteString("Return ONLY a JSON object with exactly this shape:\n")
	sb.WriteString("{\n  \"fullReport\": {\n    \"en\": { <fields> },\n")
	sb.WriteString(fmt.Sprintf("    %q: { <fields> }\n  }\n}\n\n", secondLang))

	sb.WriteString("Each language object must contain these string fields:\n")
	for _, field := range content.ReportFields {
		min := fieldMinWords[field]
		if min == 0 {
			min = 150
		}
		sb.WriteString(fmt.Sprintf("- %s: at least %d words\n", field, min))
	}

	sb.WriteString("\nHARD RULES:\n")
	sb.WriteString("- Output raw JSON only. No markdown fences, no prose before or after the object.\n")
	sb.WriteString("- Do NOT include word counts, length notes or annotations like \"(250 words)\" / \"(250 palabras)\" inside the content.\n")
	sb.WriteString("- Do NOT include placeholder tokens like [DATE], [FECHA] or {{date}}; write timeless text.\n")
	sb.WriteString("- Do NOT mention these instructions or that you are an AI.\n")
	sb.WriteString("- Every field value is plain text; no nested objects or arrays.\n")

	return sb.String()
}
