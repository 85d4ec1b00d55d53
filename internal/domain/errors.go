package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResponses: la sesion no tiene ninguna respuesta guardada.
	ErrNoResponses = errors.New("no responses for session")
	// ErrNotFound: sesion, resultado o analisis inexistente.
	ErrNotFound = errors.New("not found")
	// ErrValidation: input malformado; culpa del caller, nunca se reintenta.
	ErrValidation = errors.New("validation error")
	// ErrCatalogUnavailable: el catalogo de preguntas no se pudo cargar.
	// Es un error de configuracion, distinto de un test incompleto.
	ErrCatalogUnavailable = errors.New("question catalog unavailable")
)

// IncompleteTestError se devuelve cuando se pide calcular con el test
// incompleto. Lleva el detalle para que el cliente muestre el progreso.
type IncompleteTestError struct {
	Answered             int
	Total                int
	CompletionPercentage int
	MissingQuestions     []int
}

func (e *IncompleteTestError) Error() string {
	return fmt.Sprintf("incomplete test: %d/%d questions answered (%d%%)", e.Answered, e.Total, e.CompletionPercentage)
}

// ProviderError: la llamada al proveedor de texto fallo o devolvio non-2xx.
// Fatal para el request; no hay reintento automatico.
type ProviderError struct {
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider error: status=%d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider error: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// AnalysisParseError: las tres estrategias de parseo fallaron.
// No se persiste nada; el caller puede reintentar la generacion.
type AnalysisParseError struct {
	Reason string
}

func (e *AnalysisParseError) Error() string {
	return "analysis parse error: " + e.Reason
}
