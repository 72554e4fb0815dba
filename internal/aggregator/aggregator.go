// Package aggregator computes the derived views used for reporting:
// flow splits, per-category totals, time series, and filtered subsets
// of a categorized transaction batch.
package aggregator

import (
	"sort"
	"time"

	"fjacquet/fincat/internal/dateutils"
	"fjacquet/fincat/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// TimePoint is the summed amount of one (date, category) pair.
type TimePoint struct {
	Date     time.Time
	Category string
	Total    decimal.Decimal
}

// FilterOptions restricts a batch to a category set and/or an inclusive
// date range. Empty fields leave that constraint open.
type FilterOptions struct {
	Categories []string
	From       time.Time
	To         time.Time
}

// SplitByFlow partitions a batch into debits and credits.
func SplitByFlow(transactions []models.Transaction) (debits, credits []models.Transaction) {
	debits = make([]models.Transaction, 0, len(transactions))
	credits = make([]models.Transaction, 0)
	for _, tx := range transactions {
		if tx.IsDebit() {
			debits = append(debits, tx)
		} else {
			credits = append(credits, tx)
		}
	}
	return debits, credits
}

// TotalsByCategory groups a batch by category and sums the amounts.
// The result is sorted by total, highest first; categories with equal
// totals keep their first-encounter order.
func TotalsByCategory(transactions []models.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, tx := range transactions {
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		result = append(result, CategoryTotal{Category: category, Total: totals[category]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total.GreaterThan(result[j].Total)
	})
	return result
}

// TimeSeries groups a batch by (date, category) and sums the amounts.
// The result is ordered chronologically, then by category name within
// a date.
func TimeSeries(transactions []models.Transaction) []TimePoint {
	type key struct {
		date     time.Time
		category string
	}

	totals := make(map[key]decimal.Decimal)
	for _, tx := range transactions {
		k := key{date: dateutils.Truncate(tx.Date), category: tx.Category}
		totals[k] = totals[k].Add(tx.Amount)
	}

	result := make([]TimePoint, 0, len(totals))
	for k, total := range totals {
		result = append(result, TimePoint{Date: k.date, Category: k.category, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// Filter returns the transactions whose category is in the given set
// (if any) and whose date falls inside the inclusive range (if given).
// The source slice is never mutated.
func Filter(transactions []models.Transaction, opts FilterOptions) []models.Transaction {
	categorySet := make(map[string]bool, len(opts.Categories))
	for _, category := range opts.Categories {
		categorySet[category] = true
	}

	result := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if len(categorySet) > 0 && !categorySet[tx.Category] {
			continue
		}
		if !dateutils.WithinRange(tx.Date, opts.From, opts.To) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// Total sums the amounts of a batch.
func Total(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Amount)
	}
	return total
}
