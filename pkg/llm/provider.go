package llm

import "context"

// Provider defines the interface for LLM providers (Ollama, OpenAI, Claude, Gemini, Bedrock)
type Provider interface {
	// Analyze sends the prompt to the model and returns its raw text
	// response. Callers are expected to run the response through
	// analysis.Normalize; no shape guarantee is made here.
	Analyze(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name (for logging)
	Name() string
}

// Config holds common configuration for LLM providers
type Config struct {
	Provider string // "ollama", "openai", "anthropic", "gemini", "bedrock"

	// Ollama-specific
	OllamaURL   string
	OllamaModel string

	// OpenAI-specific
	OpenAIAPIKey string
	OpenAIModel  string // e.g., "gpt-4-turbo-preview", "gpt-3.5-turbo"

	// Anthropic-specific
	AnthropicAPIKey string
	AnthropicModel  string // e.g., "claude-3-5-sonnet-20241022"

	// Gemini-specific
	GeminiAPIKey string
	GeminiModel  string // e.g., "gemini-1.5-pro"

	// AWS Bedrock-specific
	BedrockRegion string // e.g., "us-east-1"
	BedrockModel  string // e.g., "anthropic.claude-3-5-sonnet-20241022-v2:0"
}
