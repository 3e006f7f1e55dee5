package huggingface

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category groups prompts by the kind of model best suited to answer them.
type Category string

const (
	CategoryConversation   Category = "conversation"
	CategoryTextGeneration Category = "text_generation"
	CategorySummarization  Category = "summarization"
	CategoryTextToText     Category = "text_to_text"
)

// Catalog maps a category to an ordered list of candidate model
// identifiers. The order is the order candidates are tried.
type Catalog map[Category][]string

// DefaultCatalog returns the built-in model table.
func DefaultCatalog() Catalog {
	return Catalog{
		CategoryConversation: {
			"microsoft/DialoGPT-medium",
			"microsoft/DialoGPT-large",
		},
		CategoryTextGeneration: {
			"gpt2",
			"distilgpt2",
		},
		CategorySummarization: {
			"facebook/bart-large-cnn",
			"google/pegasus-xsum",
		},
		CategoryTextToText: {
			"google/t5-v1_1-base",
			"google/flan-t5-base",
		},
	}
}

// LoadCatalog reads a category-to-models table from a YAML file.
// Categories absent from the file keep their built-in candidates.
func LoadCatalog(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}

	var loaded map[string][]string
	if err := yaml.Unmarshal(b, &loaded); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal %q: %w", path, err)
	}

	catalog := DefaultCatalog()
	for name, models := range loaded {
		if len(models) == 0 {
			continue
		}
		catalog[Category(name)] = models
	}
	return catalog, nil
}
