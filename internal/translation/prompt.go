package translation

import (
	"encoding/json"
	"fmt"
	"strings"
)

const promptTemplate = `You are translating English into Mon (mnw).

Translate the following English sentence into Mon:
%s

Use this vocabulary, a JSON object mapping English words to Mon words:
%s

Follow these grammar rules:
%s

Return only a JSON object with exactly these fields and nothing else:
- "translation": the Mon translation as a string
- "unknownWord": an array of English words from the sentence that are not in the vocabulary
`

// buildPrompt embeds the sentence and the caller's vocabulary and grammar rules as JSON.
func buildPrompt(req Request) string {
	return fmt.Sprintf(promptTemplate,
		strings.TrimSpace(req.Sentence),
		rawOrDefault(req.Vocabulary, "{}"),
		rawOrDefault(req.GrammarRules, "[]"),
	)
}

func rawOrDefault(raw json.RawMessage, fallback string) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return fallback
	}
	return trimmed
}

// stripCodeFence removes a Markdown code fence that some models wrap around JSON replies.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	// drop the opening fence line, which may carry a language tag
	newline := strings.IndexByte(text, '\n')
	if newline < 0 {
		return strings.Trim(text, "`")
	}
	text = text[newline+1:]
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
