// Package categorizer applies the rule store to transaction batches and
// feeds user corrections back into it.
package categorizer

import (
	"strings"

	"fjacquet/fincat/internal/logging"
	"fjacquet/fincat/internal/models"
	"fjacquet/fincat/internal/store"
	"fjacquet/fincat/internal/textutils"
)

// Categorizer classifies transactions by keyword pattern matching
// against the rule store.
type Categorizer struct {
	store  *store.RuleStore
	logger logging.Logger
}

// New creates a Categorizer bound to a rule store.
func New(ruleStore *store.RuleStore, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Categorizer{
		store:  ruleStore,
		logger: logger,
	}
}

// Categorize assigns a category to every transaction in the batch and
// returns the same slice.
//
// Each transaction is first reset to Uncategorized. The categories are
// then iterated in stored order, skipping Uncategorized and categories
// without keywords, and every transaction whose normalized details
// contain one of the category's normalized keywords is assigned to it.
// Because each category passes over the whole batch, a transaction that
// matches several categories ends up in the LAST matching one in store
// order. That precedence is part of the contract; later-added categories
// deliberately override earlier ones for transactions they also match.
func (c *Categorizer) Categorize(transactions []models.Transaction) []models.Transaction {
	for i := range transactions {
		transactions[i].Category = models.CategoryUncategorized
	}

	for _, category := range c.store.Categories() {
		if category.Name == models.CategoryUncategorized || len(category.Keywords) == 0 {
			continue
		}

		keywords := make([]string, 0, len(category.Keywords))
		for _, keyword := range category.Keywords {
			if normalized := textutils.Normalize(keyword); normalized != "" {
				keywords = append(keywords, normalized)
			}
		}

		for i := range transactions {
			details := textutils.Normalize(transactions[i].Details)
			if keyword, ok := matchKeyword(details, keywords); ok {
				c.logger.Debug("Transaction categorized",
					logging.Field{Key: logging.FieldCategory, Value: category.Name},
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldRow, Value: i})
				transactions[i].Category = category.Name
			}
		}
	}

	return transactions
}

// matchKeyword returns the first keyword contained in details.
// Matching is plain substring containment, not word-boundary matching.
func matchKeyword(details string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		if strings.Contains(details, keyword) {
			return keyword, true
		}
	}
	return "", false
}
