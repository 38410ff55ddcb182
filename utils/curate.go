package utils

import (
	"regexp"
	"strings"
)

// Curation patterns, compiled once. The backend applies the same class of
// cleanup before answering; the engine re-applies it so a citation marker can
// never reach the page even when the backend misses one.
var (
	citationPattern    = regexp.MustCompile(`\[\d+\]`)
	urlPattern         = regexp.MustCompile(`https?://[^\s)]+`)
	attributionPattern = regexp.MustCompile(`(?im)(?:source|fonte|reference|referência|according to|de acordo com|segundo)[:\s].*$`)
	llmMentionPattern  = regexp.MustCompile(`(?i)\b(?:OpenAI|ChatGPT|Claude|Anthropic|Gemini|Perplexity|GPT-?\d*|Llama|Meta AI)\b`)
	yearRefPattern     = regexp.MustCompile(`\([^()]*(?:2024|2025|2026)[^()]*\)`)
	newlineRunPattern  = regexp.MustCompile(`\n{3,}`)
	spaceRunPattern    = regexp.MustCompile(` {2,}`)
)

// CurateResponse sanitizes chat API text before display: numeric citation
// markers, bare URLs, attribution fragments, AI provider mentions and
// citation-year parentheticals are stripped, whitespace is normalized.
// Idempotent: running it over already-clean text changes nothing.
func CurateResponse(text string) string {
	cleaned := citationPattern.ReplaceAllString(text, "")
	cleaned = urlPattern.ReplaceAllString(cleaned, "")
	cleaned = attributionPattern.ReplaceAllString(cleaned, "")
	cleaned = llmMentionPattern.ReplaceAllString(cleaned, "")
	cleaned = yearRefPattern.ReplaceAllString(cleaned, "")
	cleaned = newlineRunPattern.ReplaceAllString(cleaned, "\n\n")
	cleaned = spaceRunPattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// TruncateLines hard-caps text at maxLines lines. Blank lines do not count
// toward the limit; text already under the cap is returned untouched.
func TruncateLines(text string, maxLines int) string {
	var content []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			content = append(content, line)
		}
	}
	if len(content) <= maxLines {
		return text
	}
	return strings.Join(content[:maxLines], "\n")
}
