package service

import "strings"

// extractJSONObjectAt escanea un objeto balanceado desde input[start],
// respetando strings y escapes. Devuelve "" si no cierra.
func extractJSONObjectAt(input string, start int) string {
	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
			if depth < 0 {
				return ""
			}
		}
	}

	return ""
}

// extractFirstJSONObject devuelve el primer span {...} balanceado. Cubre
// el caso comun de prosa despues del objeto sin escanear todo el input.
func extractFirstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}
	return extractJSONObjectAt(input, start)
}

// extractLargestJSONObject devuelve el span {...} balanceado mas grande.
// Es la ultima estrategia de la cadena de parseo: cuando el modelo mete
// prosa u objetos sueltos alrededor del reporte, el objeto mas grande es
// casi siempre el que buscamos.
func extractLargestJSONObject(input string) string {
	largest := ""
	for i := 0; i < len(input); i++ {
		if input[i] != '{' {
			continue
		}
		candidate := extractJSONObjectAt(input, i)
		if len(candidate) > len(largest) {
			largest = candidate
		}
		if candidate != "" {
			// saltar el objeto entero; los anidados nunca son mas grandes
			i += len(candidate) - 1
		}
	}
	return largest
}
