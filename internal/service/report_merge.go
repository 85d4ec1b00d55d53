package service

import (
	"strings"

	"mbti-insight/internal/content"
	"mbti-insight/internal/domain"
)

// separador entre el texto generado y el texto curado.
const mergeSeparator = "\n\n"

// MergeContent concatena campo a campo el texto AI con el texto curado:
// valor final = ai + separador + curado. Es pura: no toca I/O ni sus
// entradas. Campos sin texto curado pasan sin cambios; texto curado sin
// contraparte AI entra solo.
func MergeContent(ai, predefined map[string]string, separator string) map[string]string {
	if len(predefined) == 0 {
		return ai
	}

	merged := make(map[string]string, len(ai)+len(predefined))
	for field, text := range ai {
		merged[field] = text
	}
	for field, curated := range predefined {
		curated = strings.TrimSpace(curated)
		if curated == "" {
			continue
		}
		if aiText, ok := merged[field]; ok && aiText != "" {
			merged[field] = aiText + separator + curated
		} else {
			merged[field] = curated
		}
	}
	return merged
}

// mergeReportWithCorpus aplica MergeContent por idioma contra el corpus
// editorial del tipo. Un tipo sin corpus deja el reporte AI intacto.
func mergeReportWithCorpus(report domain.FullReport, mbtiType string) domain.FullReport {
	merged := make(domain.FullReport, len(report))
	for lang, fields := range report {
		merged[lang] = MergeContent(fields, content.PredefinedFields(lang, mbtiType), mergeSeparator)
	}
	return merged
}
