package huggingface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		prompt string
		want   Category
	}{
		{"Hello, what can you do?", CategoryConversation},
		{"let's chat about movies", CategoryConversation},
		{"how are you today", CategoryConversation},
		{"summarize the report for me", CategorySummarization},
		{"Give me an overview of quantum computing", CategorySummarization},
		{"a brief account of events", CategorySummarization},
		{"translate: bonjour le monde", CategoryTextToText},
		{"convert yaml to json", CategoryTextToText},
		{"write a poem about autumn leaves", CategoryTextGeneration},
		{"", CategoryTextGeneration},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.prompt), "prompt %q", tt.prompt)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Conversation keywords win over summarization keywords when both match.
	assert.Equal(t, CategoryConversation, Classify("hello, please summarize our talk"))
	// Summarization wins over text_to_text.
	assert.Equal(t, CategorySummarization, Classify("summarize and translate my notes"))
}
