package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"mbti-insight/internal/domain"
)

// ReportParser convierte la respuesta limpia del LLM en un FullReport.
// Aplica cuatro estrategias en orden, cada una una funcion pura sobre el
// texto, y corta en la primera que parsea Y pasa la validacion de forma:
//
//  1. direct:  el texto tal cual
//  2. repair:  reparacion heuristica del JSON
//  3. first:   el primer span {...} balanceado
//  4. extract: el span {...} balanceado mas grande
//
// Si todas fallan devuelve AnalysisParseError; no hay quinta via.
type ReportParser struct{}

var parseStrategies = []struct {
	name string
	fn   func(string) string
}{
	{"direct", func(s string) string { return s }},
	{"repair", repairJSON},
	{"first", extractFirstJSONObject},
	{"extract", extractLargestJSONObject},
}

// ParseReport intenta extraer el reporte, exigiendo que esten los dos
// idiomas pedidos y que cada uno sea un objeto. Devuelve ademas el nombre
// de la estrategia ganadora (para el log).
func (ReportParser) ParseReport(cleaned string, langs []string) (domain.FullReport, string, error) {
	if strings.TrimSpace(cleaned) == "" {
		return nil, "", &domain.AnalysisParseError{Reason: "empty response"}
	}

	var lastErr string
	for _, strategy := range parseStrategies {
		candidate := strategy.fn(cleaned)
		if strings.TrimSpace(candidate) == "" {
			lastErr = strategy.name + ": empty candidate"
			continue
		}

		report, err := unmarshalReport(candidate, langs)
		if err != nil {
			lastErr = fmt.Sprintf("%s: %v", strategy.name, err)
			continue
		}
		return report, strategy.name, nil
	}

	return nil, "", &domain.AnalysisParseError{Reason: lastErr}
}

func unmarshalReport(candidate string, langs []string) (domain.FullReport, error) {
	var envelope struct {
		FullReport map[string]map[string]any `json:"fullReport"`
	}
	if err := json.Unmarshal([]byte(candidate), &envelope); err != nil {
		return nil, err
	}
	if envelope.FullReport == nil {
		return nil, fmt.Errorf("fullReport missing")
	}
	for _, lang := range langs {
		if envelope.FullReport[lang] == nil {
			return nil, fmt.Errorf("language %q missing or not an object", lang)
		}
	}

	// valores no-string se descartan en silencio: contenido faltante
	// esperado, no excepcion
	report := make(domain.FullReport, len(envelope.FullReport))
	for lang, fields := range envelope.FullReport {
		out := make(map[string]string, len(fields))
		for field, value := range fields {
			text, ok := value.(string)
			if !ok {
				continue
			}
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			out[field] = text
		}
		report[lang] = out
	}
	return report, nil
}

var (
	reBareKey       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	reTrailingComma = regexp.MustCompile(`,\s*([}\]])`)
	reBareValue     = regexp.MustCompile(`:\s*([A-Za-z][^",\{\}\[\]]*?)\s*([,}])`)
)

// repairJSON aplica reparaciones heuristicas tipicas de salida de LLM:
// claves sin comillas, valores escalares sin comillas, comas colgantes y
// saltos de linea crudos dentro de strings.
func repairJSON(s string) string {
	s = reBareKey.ReplaceAllString(s, `$1"$2":`)
	s = reTrailingComma.ReplaceAllString(s, `$1`)
	s = reBareValue.ReplaceAllStringFunc(s, quoteBareScalar)
	s = escapeNewlinesInStrings(s)
	return s
}

// quoteBareScalar pone comillas a un valor escalar suelto, respetando los
// tokens JSON legales (true/false/null y numeros).
func quoteBareScalar(match string) string {
	parts := reBareValue.FindStringSubmatch(match)
	if len(parts) != 3 {
		return match
	}
	value := strings.TrimSpace(parts[1])
	switch value {
	case "true", "false", "null":
		return match
	}
	return `: "` + value + `"` + parts[2]
}

// escapeNewlinesInStrings escapa saltos de linea crudos dentro de strings
// JSON, que encoding/json rechaza.
func escapeNewlinesInStrings(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	inString := false
	escape := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == '"':
				inString = false
			case ch == '\n':
				sb.WriteString(`\n`)
				continue
			case ch == '\r':
				sb.WriteString(`\r`)
				continue
			case ch == '\t':
				sb.WriteString(`\t`)
				continue
			}
		} else if ch == '"' {
			inString = true
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}
