package models

// CategoryUncategorized is the reserved fallback category. It is always
// present in the rule store, holds no keywords, and is never used for
// matching.
const CategoryUncategorized = "Uncategorized"

// Category represents a transaction category and the ordered keyword
// list that classifies transactions into it. Names are case-sensitive
// so user-chosen casing survives into reports.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the on-disk shape of the rule store document.
// The slice preserves insertion order, which the classifier depends on.
type CategoriesConfig struct {
	Categories []Category `yaml:"categories"`
}
