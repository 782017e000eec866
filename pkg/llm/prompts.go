package llm

import "os"

// DefaultAnalysisPromptTemplate is the default prompt template.
// Variables available: {FEEDBACK_TEXT}
const DefaultAnalysisPromptTemplate = `Analyze this feedback: "{FEEDBACK_TEXT}".

Return ONLY a JSON object with these exact keys:
{
  "urgency": "low|medium|high",
  "sentiment": "positive|negative|neutral",
  "theme": "one-word-theme",
  "summary": "brief summary"
}

Example: {"urgency": "high", "sentiment": "negative", "theme": "performance", "summary": "Slow loading issue"}`

// GetAnalysisPromptTemplate returns the prompt template from env var or default
func GetAnalysisPromptTemplate() string {
	if customPrompt := os.Getenv("ANALYSIS_PROMPT_TEMPLATE"); customPrompt != "" {
		return customPrompt
	}
	return DefaultAnalysisPromptTemplate
}

// BuildAnalysisPrompt creates the analysis prompt shared across all providers.
// Quotes in the feedback text are escaped so the quoted text in the template
// stays balanced; the models otherwise tend to echo the broken quoting back.
func BuildAnalysisPrompt(feedbackText string) string {
	template := GetAnalysisPromptTemplate()
	return replacePlaceholder(template, "{FEEDBACK_TEXT}", escapeQuotes(feedbackText))
}

func escapeQuotes(s string) string {
	result := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			result = append(result, '\\')
		}
		result = append(result, s[i])
	}
	return string(result)
}

// replacePlaceholder substitutes every occurrence of placeholder in s
func replacePlaceholder(s, placeholder, value string) string {
	result := ""
	for {
		idx := indexOf(s, placeholder)
		if idx == -1 {
			result += s
			break
		}
		result += s[:idx] + value
		s = s[idx+len(placeholder):]
	}
	return result
}

// indexOf finds the first occurrence of substr in s
func indexOf(s, substr string) int {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
