package huggingface

import "strings"

// Keyword sets checked in priority order; the first matching category wins.
var (
	conversationKeywords  = []string{"hello", "hi", "how are you", "chat", "talk"}
	summarizationKeywords = []string{"summarize", "summary", "brief", "overview"}
	textToTextKeywords    = []string{"translate", "convert", "transform"}
)

// Classify maps a prompt to the model category best suited to serve it.
// Matching is case-insensitive substring membership with no scoring.
func Classify(prompt string) Category {
	lower := strings.ToLower(prompt)

	if containsAny(lower, conversationKeywords) {
		return CategoryConversation
	}
	if containsAny(lower, summarizationKeywords) {
		return CategorySummarization
	}
	if containsAny(lower, textToTextKeywords) {
		return CategoryTextToText
	}
	return CategoryTextGeneration
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
