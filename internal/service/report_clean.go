package service

import (
	"regexp"
	"strings"
	"time"
)

// Limpieza de la salida del LLM antes de parsear. Cada paso es puro y
// tolera entrada vacia; el orden importa: fences, prosa externa, meta.

var (
	reFenceStart = regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	reFenceEnd   = regexp.MustCompile("(?is)\\s*```\\s*$")

	// anotaciones de conteo de palabras en ambos idiomas:
	// "(250 words)", "(aprox. 300 palabras)", "[200 words]"
	reWordCount = regexp.MustCompile(`(?i)[\(\[]\s*(?:aprox\.?\s*|approx\.?\s*|~\s*)?\d+\s*(?:words?|palabras?)\s*[\)\]]`)

	// tokens de fecha placeholder que algunos modelos dejan en el texto
	reDateToken = regexp.MustCompile(`(?i)\[(?:DATE|FECHA)\]|\{\{\s*(?:date|fecha)\s*\}\}`)
)

// cleanReportResponse normaliza la respuesta cruda del proveedor:
// quita BOM y fences, recorta la prosa fuera del objeto exterior,
// borra anotaciones de conteo y reemplaza placeholders de fecha por hoy.
func cleanReportResponse(raw string, now time.Time) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(s, "\uFEFF")
	s = reFenceStart.ReplaceAllString(s, "")
	s = reFenceEnd.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	// prosa antes/despues del objeto exterior
	if start := strings.IndexByte(s, '{'); start > 0 {
		s = s[start:]
	}
	if end := strings.LastIndexByte(s, '}'); end >= 0 && end < len(s)-1 {
		s = s[:end+1]
	}

	s = reWordCount.ReplaceAllString(s, "")
	s = reDateToken.ReplaceAllString(s, now.Format("2006-01-02"))

	return strings.TrimSpace(s)
}
