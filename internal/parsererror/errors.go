// Package parsererror defines the typed errors surfaced by batch loading
// and rule store operations.
package parsererror

import "fmt"

// DataCorruptionError indicates the persisted rule store exists but could
// not be parsed. This is fatal: falling back to a default store would
// silently discard learned rules.
type DataCorruptionError struct {
	FilePath string
	Err      error
}

func (e *DataCorruptionError) Error() string {
	return fmt.Sprintf("rule store file '%s' is corrupted: %v", e.FilePath, e.Err)
}

func (e *DataCorruptionError) Unwrap() error {
	return e.Err
}

// UnknownCategoryError indicates an operation referenced a category name
// that is absent from the rule store.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category: '%s'", e.Category)
}

// MalformedInputError indicates a transaction batch contained a row with
// an unparseable field. The whole batch load is aborted; no partially
// categorized batch is ever produced.
type MalformedInputError struct {
	FilePath string
	Row      int
	Field    string
	Value    string
	Err      error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: row %d: failed to parse %s='%s': %v",
		e.FilePath, e.Row, e.Field, e.Value, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
