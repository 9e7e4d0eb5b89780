package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/voice-ledger/internal/logging"
	"fjacquet/voice-ledger/internal/models"
	"fjacquet/voice-ledger/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func TestNewKeywordStore(t *testing.T) {
	store := NewKeywordStore("keywords.yaml", nil)
	assert.Equal(t, "keywords.yaml", store.KeywordsFile)
	assert.NotNil(t, store.logger)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "test.yaml")
	writeFile(t, testFile, "test content")

	store := NewKeywordStore("", nil)

	file, err := store.FindConfigFile(testFile)
	assert.NoError(t, err)
	assert.Equal(t, testFile, file)

	_, err = store.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestLoadKeywords_FullDocument(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "keywords.yaml")
	writeFile(t, file, `categories:
  - name: coffee
    keywords: ["starbucks", "chai"]
  - name: rent
    keywords: ["rent"]
income:
  - refund
fillers:
  - kharcha
`)

	logger := logging.NewMockLogger()
	cfg, err := NewKeywordStore(file, logger).LoadKeywords()
	require.NoError(t, err)
	require.Len(t, cfg.Categories, 2)
	assert.Equal(t, "coffee", cfg.Categories[0].Name)
	assert.Equal(t, []string{"starbucks", "chai"}, cfg.Categories[0].Keywords)
	assert.Equal(t, []string{"refund"}, cfg.Income)
	assert.Equal(t, []string{"kharcha"}, cfg.Fillers)
	assert.True(t, logger.HasEntry("DEBUG", "Loaded keyword tables"))
}

func TestLoadKeywords_PartialDocumentKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "keywords.yaml")
	writeFile(t, file, "income: [\"bonus\"]\n")

	cfg, err := NewKeywordStore(file, nil).LoadKeywords()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategories(), cfg.Categories)
	assert.Equal(t, []string{"bonus"}, cfg.Income)
	assert.Equal(t, models.DefaultFillers(), cfg.Fillers)
}

func TestLoadKeywords_BareCategoryList(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "keywords.yaml")
	writeFile(t, file, `- name: groceries
  keywords: ["kirana"]
- name: transport
  keywords: ["auto", "metro"]
`)

	cfg, err := NewKeywordStore(file, nil).LoadKeywords()
	require.NoError(t, err)
	require.Len(t, cfg.Categories, 2)
	assert.Equal(t, "transport", cfg.Categories[1].Name)
	assert.Equal(t, models.DefaultIncomeKeywords(), cfg.Income)
}

func TestLoadKeywords_MissingFile(t *testing.T) {
	cfg, err := NewKeywordStore(filepath.Join(t.TempDir(), "missing.yaml"), nil).LoadKeywords()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultKeywordsConfig(), cfg)
}

func TestLoadKeywords_Malformed(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "keywords.yaml")
	writeFile(t, file, `{malformed: yaml: content}`)

	_, err := NewKeywordStore(file, nil).LoadKeywords()
	require.Error(t, err)

	var tableErr *parsererror.KeywordTableError
	require.True(t, errors.As(err, &tableErr))
	assert.Equal(t, file, tableErr.FilePath)
}

func TestLoadKeywords_UnnamedCategory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "keywords.yaml")
	writeFile(t, file, "categories:\n  - keywords: [\"x\"]\n")

	_, err := NewKeywordStore(file, nil).LoadKeywords()
	var tableErr *parsererror.KeywordTableError
	require.True(t, errors.As(err, &tableErr))
	assert.Contains(t, tableErr.Reason, "category #1")
}

func TestSaveKeywords_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "keywords.yaml")

	require.NoError(t, SaveKeywords(path, models.DefaultKeywordsConfig()))

	cfg, err := NewKeywordStore(path, nil).LoadKeywords()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultKeywordsConfig(), cfg)

	assert.Error(t, SaveKeywords("", models.DefaultKeywordsConfig()))
}

func TestMockKeywordStore(t *testing.T) {
	var source KeywordSource = &MockKeywordStore{Err: errors.New("boom")}
	_, err := source.LoadKeywords()
	assert.EqualError(t, err, "boom")
}

func TestLoadKeywords_WarnsOnWritableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	writeFile(t, path, "income: [won]\n")
	require.NoError(t, os.Chmod(path, 0666))

	logger := logging.NewMockLogger()
	cfg, err := NewKeywordStore(path, logger).LoadKeywords()
	require.NoError(t, err)
	assert.Equal(t, []string{"won"}, cfg.Income)
	assert.True(t, logger.HasEntry("WARN", "Keywords file can be modified by other users"))
}
