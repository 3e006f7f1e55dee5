package huggingface

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogCoversAllCategories(t *testing.T) {
	catalog := DefaultCatalog()
	for _, category := range []Category{
		CategoryConversation, CategoryTextGeneration, CategorySummarization, CategoryTextToText,
	} {
		assert.NotEmpty(t, catalog[category], "category %s", category)
	}
	assert.Equal(t, []string{"facebook/bart-large-cnn", "google/pegasus-xsum"}, catalog[CategorySummarization])
}

func TestLoadCatalogMergesOverBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "conversation:\n  - my-org/chat-model\nsummarization: []\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"my-org/chat-model"}, catalog[CategoryConversation])
	// Empty lists keep the built-in candidates.
	assert.Equal(t, DefaultCatalog()[CategorySummarization], catalog[CategorySummarization])
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{unclosed"), 0o600))
	_, err = LoadCatalog(path)
	assert.Error(t, err)
}
