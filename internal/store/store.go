// Package store owns the durable rule store: the ordered mapping from
// category names to keyword lists that drives classification.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/fincat/internal/logging"
	"fjacquet/fincat/internal/models"
	"fjacquet/fincat/internal/parsererror"
	"fjacquet/fincat/internal/textutils"

	"gopkg.in/yaml.v3"
)

// Status reports the outcome of a store mutation. Duplicate categories
// and keywords are not errors; they are reported through this type so
// callers never have to guess whether anything changed.
type Status string

const (
	// StatusAdded means the mutation changed and persisted the store.
	StatusAdded Status = "added"
	// StatusAlreadyPresent means the entry already existed; nothing changed.
	StatusAlreadyPresent Status = "already present"
	// StatusUnchanged means the input was empty after normalization.
	StatusUnchanged Status = "unchanged"
	// StatusUnknownCategory means the referenced category does not exist.
	StatusUnknownCategory Status = "unknown category"
)

// RuleStore is the in-memory rule store bound to its file on disk.
// Every successful mutation rewrites the whole document synchronously,
// so memory and disk converge after each call. A single process is
// assumed to be the only writer for its lifetime.
type RuleStore struct {
	path       string
	categories []models.Category
	logger     logging.Logger
}

// Load reads the rule store from path. A missing file yields the default
// store containing only the Uncategorized category. A file that exists
// but cannot be parsed as the categories document is a DataCorruptionError;
// learned rules are never silently discarded.
func Load(path string, logger logging.Logger) (*RuleStore, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}

	s := &RuleStore{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("Rule store file not found, starting with default store",
				logging.Field{Key: logging.FieldFile, Value: path})
			s.categories = []models.Category{{Name: models.CategoryUncategorized, Keywords: []string{}}}
			return s, nil
		}
		return nil, fmt.Errorf("error reading rule store file: %w", err)
	}

	categories, err := decodeCategories(data)
	if err != nil {
		return nil, &parsererror.DataCorruptionError{FilePath: path, Err: err}
	}

	// The reserved category must always exist. Older files written before
	// it was reserved may lack it.
	if !containsCategory(categories, models.CategoryUncategorized) {
		categories = append([]models.Category{
			{Name: models.CategoryUncategorized, Keywords: []string{}},
		}, categories...)
	}

	s.categories = categories
	logger.Debug("Loaded rule store",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(categories)})
	return s, nil
}

// decodeCategories parses the persisted document, rejecting anything
// that does not match the expected shape.
func decodeCategories(data []byte) ([]models.Category, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Category{}, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc models.CategoriesConfig
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Category{}, nil
		}
		return nil, err
	}

	seen := make(map[string]bool, len(doc.Categories))
	for _, category := range doc.Categories {
		if category.Name == "" {
			return nil, fmt.Errorf("category with empty name")
		}
		if seen[category.Name] {
			return nil, fmt.Errorf("duplicate category name: %s", category.Name)
		}
		seen[category.Name] = true
	}

	return doc.Categories, nil
}

func containsCategory(categories []models.Category, name string) bool {
	for _, category := range categories {
		if category.Name == name {
			return true
		}
	}
	return false
}

// Path returns the file the store persists to.
func (s *RuleStore) Path() string {
	return s.path
}

// Categories returns a copy of the ordered category list. Mutating the
// returned slice does not affect the store.
func (s *RuleStore) Categories() []models.Category {
	categories := make([]models.Category, len(s.categories))
	for i, category := range s.categories {
		keywords := make([]string, len(category.Keywords))
		copy(keywords, category.Keywords)
		categories[i] = models.Category{Name: category.Name, Keywords: keywords}
	}
	return categories
}

// CategoryNames returns the category names in stored order.
func (s *RuleStore) CategoryNames() []string {
	names := make([]string, len(s.categories))
	for i, category := range s.categories {
		names[i] = category.Name
	}
	return names
}

// HasCategory reports whether a category exists. Names are compared
// exactly; casing is part of the identity.
func (s *RuleStore) HasCategory(name string) bool {
	return containsCategory(s.categories, name)
}

// AddCategory appends a new category with an empty keyword list and
// persists the store. Adding an existing name is a no-op and returns
// false. Names are taken verbatim so user-chosen casing survives.
func (s *RuleStore) AddCategory(name string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("category name must not be empty")
	}
	if s.HasCategory(name) {
		s.logger.Debug("Category already exists",
			logging.Field{Key: logging.FieldCategory, Value: name})
		return false, nil
	}

	s.categories = append(s.categories, models.Category{Name: name, Keywords: []string{}})
	if err := s.persist(); err != nil {
		// Keep memory and disk convergent: roll the append back.
		s.categories = s.categories[:len(s.categories)-1]
		return false, err
	}

	s.logger.Info("Added category",
		logging.Field{Key: logging.FieldCategory, Value: name})
	return true, nil
}

// AddKeyword appends a keyword to an existing category and persists the
// store. The keyword is stored verbatim; normalization is only used to
// detect empty input and duplicates. Duplicates report StatusAlreadyPresent
// without touching the store.
func (s *RuleStore) AddKeyword(category, keyword string) (Status, error) {
	idx := -1
	for i := range s.categories {
		if s.categories[i].Name == category {
			idx = i
			break
		}
	}
	if idx < 0 {
		return StatusUnknownCategory, &parsererror.UnknownCategoryError{Category: category}
	}

	normalized := textutils.Normalize(keyword)
	if normalized == "" {
		s.logger.Debug("Ignoring empty keyword",
			logging.Field{Key: logging.FieldCategory, Value: category})
		return StatusUnchanged, nil
	}

	for _, existing := range s.categories[idx].Keywords {
		if textutils.Normalize(existing) == normalized {
			s.logger.Debug("Keyword already present",
				logging.Field{Key: logging.FieldCategory, Value: category},
				logging.Field{Key: logging.FieldKeyword, Value: keyword})
			return StatusAlreadyPresent, nil
		}
	}

	s.categories[idx].Keywords = append(s.categories[idx].Keywords, keyword)
	if err := s.persist(); err != nil {
		keywords := s.categories[idx].Keywords
		s.categories[idx].Keywords = keywords[:len(keywords)-1]
		return StatusUnchanged, err
	}

	s.logger.Info("Added keyword",
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: logging.FieldKeyword, Value: keyword})
	return StatusAdded, nil
}

// persist serializes the whole document and atomically replaces the
// store file. Writing to a temporary file first means a crash mid-write
// can never leave a truncated store behind.
func (s *RuleStore) persist() error {
	data, err := yaml.Marshal(models.CategoriesConfig{Categories: s.categories})
	if err != nil {
		return fmt.Errorf("error marshaling rule store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".categories-*.yaml")
	if err != nil {
		return fmt.Errorf("error creating temporary store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error writing rule store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error closing temporary store file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error setting store file permissions: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error replacing rule store file: %w", err)
	}

	s.logger.Debug("Persisted rule store",
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(s.categories)})
	return nil
}
