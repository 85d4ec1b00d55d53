package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response GenerateResult
	Err      error
	// Prompts acumula lo que se pidio generar, en orden.
	Prompts []string
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (GenerateResult, error) {
	m.Prompts = append(m.Prompts, prompt)
	return m.Response, m.Err
}
