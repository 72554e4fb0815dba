// Package report handles the aggregation and filtering command.
package report

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"fjacquet/fincat/cmd/root"
	"fjacquet/fincat/internal/aggregator"
	"fjacquet/fincat/internal/common"
	"fjacquet/fincat/internal/dateutils"
	"fjacquet/fincat/internal/models"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	flow       string
	categories []string
	fromDate   string
	toDate     string
	series     bool
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a categorized transaction CSV",
	Long: `Compute per-category totals (highest first) from a categorized CSV,
optionally restricted to one flow direction, a category set, and an
inclusive date range. With --series the per-date totals per category
are printed as well.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Categorized transaction CSV (required)")
	Cmd.Flags().StringVarP(&flow, "flow", "f", "", "Restrict to one flow direction: debit or credit")
	Cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Restrict to these categories")
	Cmd.Flags().StringVar(&fromDate, "from", "", "Start of inclusive date range (e.g. 2025-01-01)")
	Cmd.Flags().StringVar(&toDate, "to", "", "End of inclusive date range (e.g. 2025-12-31)")
	Cmd.Flags().BoolVarP(&series, "series", "s", false, "Also print per-date totals per category")
	_ = Cmd.MarkFlagRequired("input")
}

func reportFunc(cmd *cobra.Command, args []string) {
	transactions, err := common.ReadTransactionsFile(inputFile)
	if err != nil {
		root.Log.Fatalf("Error loading transactions: %v", err)
	}

	transactions, err = applyFlow(transactions, flow)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	opts, err := filterOptions()
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	transactions = aggregator.Filter(transactions, opts)

	printTotals(transactions)
	if series {
		printSeries(transactions)
	}
}

func applyFlow(transactions []models.Transaction, flow string) ([]models.Transaction, error) {
	debits, credits := aggregator.SplitByFlow(transactions)
	switch flow {
	case "":
		return transactions, nil
	case "debit":
		return debits, nil
	case "credit":
		return credits, nil
	}
	return nil, fmt.Errorf("invalid flow %q (expected debit or credit)", flow)
}

func filterOptions() (aggregator.FilterOptions, error) {
	opts := aggregator.FilterOptions{Categories: categories}

	var err error
	if fromDate != "" {
		if opts.From, err = dateutils.ParseDateString(fromDate); err != nil {
			return opts, fmt.Errorf("invalid --from date: %w", err)
		}
	}
	if toDate != "" {
		if opts.To, err = dateutils.ParseDateString(toDate); err != nil {
			return opts, fmt.Errorf("invalid --to date: %w", err)
		}
	}
	return opts, nil
}

func printTotals(transactions []models.Transaction) {
	totals := aggregator.TotalsByCategory(transactions)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tTOTAL")
	for _, total := range totals {
		fmt.Fprintf(w, "%s\t%s\n", total.Category, total.Total.StringFixed(2))
	}
	fmt.Fprintf(w, "\t\nALL\t%s\n", aggregator.Total(transactions).StringFixed(2))
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush report output: %v", err)
	}
}

func printSeries(transactions []models.Transaction) {
	points := aggregator.TimeSeries(transactions)

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCATEGORY\tTOTAL")
	for _, point := range points {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			point.Date.Format(time.DateOnly), point.Category, point.Total.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush series output: %v", err)
	}
}
