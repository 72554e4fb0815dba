package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/fincat/internal/logging"
	"fjacquet/fincat/internal/models"
	"fjacquet/fincat/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func newTestStore(t *testing.T) *RuleStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	s, err := Load(path, &logging.MockLogger{})
	require.NoError(t, err)
	return s
}

func TestLoadMissingFileReturnsDefaultStore(t *testing.T) {
	s := newTestStore(t)

	names := s.CategoryNames()
	require.Len(t, names, 1)
	assert.Equal(t, models.CategoryUncategorized, names[0])
	assert.Empty(t, s.Categories()[0].Keywords)

	// Nothing is written until the first mutation.
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestLoadExistingStorePreservesOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	writeFile(t, path, `categories:
  - name: Uncategorized
    keywords: []
  - name: Groceries
    keywords: ["market", "coop"]
  - name: Travel
    keywords: ["airline"]
`)

	s, err := Load(path, &logging.MockLogger{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Uncategorized", "Groceries", "Travel"}, s.CategoryNames())
	assert.Equal(t, []string{"market", "coop"}, s.Categories()[1].Keywords)
}

func TestLoadCorruptedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "{categories: [broken"},
		{"wrong document shape", "rules:\n  - foo\n"},
		{"duplicate category names", "categories:\n  - name: A\n  - name: A\n"},
		{"empty category name", "categories:\n  - name: \"\"\n"},
		{"scalar document", "just a string\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "categories.yaml")
			writeFile(t, path, tt.content)

			_, err := Load(path, &logging.MockLogger{})
			require.Error(t, err)

			var corruption *parsererror.DataCorruptionError
			assert.True(t, errors.As(err, &corruption), "expected DataCorruptionError, got %T", err)
		})
	}
}

func TestLoadEmptyFileYieldsDefaultStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	writeFile(t, path, "")

	s, err := Load(path, &logging.MockLogger{})
	require.NoError(t, err)
	assert.Equal(t, []string{models.CategoryUncategorized}, s.CategoryNames())
}

func TestLoadInsertsMissingUncategorized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	writeFile(t, path, "categories:\n  - name: Groceries\n    keywords: [\"coop\"]\n")

	s, err := Load(path, &logging.MockLogger{})
	require.NoError(t, err)
	assert.Equal(t, []string{models.CategoryUncategorized, "Groceries"}, s.CategoryNames())
}

func TestAddCategory(t *testing.T) {
	s := newTestStore(t)

	added, err := s.AddCategory("Groceries")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{models.CategoryUncategorized, "Groceries"}, s.CategoryNames())

	// Idempotent: adding the same name again reports no change.
	added, err = s.AddCategory("Groceries")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Len(t, s.CategoryNames(), 2)

	// Names are case-sensitive, so this is a distinct category.
	added, err = s.AddCategory("groceries")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{models.CategoryUncategorized, "Groceries", "groceries"}, s.CategoryNames())

	_, err = s.AddCategory("")
	assert.Error(t, err)
}

func TestAddKeyword(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddCategory("Groceries")
	require.NoError(t, err)

	status, err := s.AddKeyword("Groceries", "Migros")
	require.NoError(t, err)
	assert.Equal(t, StatusAdded, status)

	// The original casing is stored, not the normalized form.
	assert.Equal(t, []string{"Migros"}, s.Categories()[1].Keywords)

	// Idempotent under normalization.
	status, err = s.AddKeyword("Groceries", "  MIGROS ")
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyPresent, status)
	assert.Equal(t, []string{"Migros"}, s.Categories()[1].Keywords)

	// Empty-after-normalization keywords are ignored.
	status, err = s.AddKeyword("Groceries", "   ")
	require.NoError(t, err)
	assert.Equal(t, StatusUnchanged, status)
	assert.Equal(t, []string{"Migros"}, s.Categories()[1].Keywords)

	// Unknown categories are an error, not a silent no-op.
	status, err = s.AddKeyword("Travel", "airline")
	require.Error(t, err)
	assert.Equal(t, StatusUnknownCategory, status)

	var unknown *parsererror.UnknownCategoryError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Travel", unknown.Category)
}

func TestPersistenceRoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddCategory("Groceries")
	require.NoError(t, err)
	_, err = s.AddCategory("Travel")
	require.NoError(t, err)
	_, err = s.AddKeyword("Groceries", "market")
	require.NoError(t, err)
	_, err = s.AddKeyword("Travel", "Flight XYZ123")
	require.NoError(t, err)

	reloaded, err := Load(s.Path(), &logging.MockLogger{})
	require.NoError(t, err)
	assert.Equal(t, s.Categories(), reloaded.Categories())
	assert.Equal(t, []string{models.CategoryUncategorized, "Groceries", "Travel"}, reloaded.CategoryNames())
}

func TestPersistLeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	s, err := Load(path, &logging.MockLogger{})
	require.NoError(t, err)

	_, err = s.AddCategory("Groceries")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "categories.yaml", entries[0].Name())
}

func TestPersistCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "database", "categories.yaml")
	s, err := Load(path, &logging.MockLogger{})
	require.NoError(t, err)

	_, err = s.AddCategory("Groceries")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "Groceries"))
}

func TestCategoriesReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddCategory("Groceries")
	require.NoError(t, err)
	_, err = s.AddKeyword("Groceries", "coop")
	require.NoError(t, err)

	categories := s.Categories()
	categories[1].Keywords[0] = "mutated"
	categories[1].Name = "Mutated"

	assert.Equal(t, "Groceries", s.Categories()[1].Name)
	assert.Equal(t, []string{"coop"}, s.Categories()[1].Keywords)
}
