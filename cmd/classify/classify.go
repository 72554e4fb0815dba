// Package classify handles the feed categorization command.
package classify

import (
	"fjacquet/fincat/cmd/root"
	"fjacquet/fincat/internal/categorizer"
	"fjacquet/fincat/internal/common"
	"fjacquet/fincat/internal/models"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Categorize a transaction feed CSV",
	Long: `Read a bank transaction feed CSV, assign a category to every record
using the rule store, and write the categorized batch back out with an
appended Category column.`,
	Run: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input transaction feed CSV (required)")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output categorized CSV (required)")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("output")
}

func classifyFunc(cmd *cobra.Command, args []string) {
	ruleStore, err := root.OpenStore()
	if err != nil {
		root.Log.Fatalf("Error loading rule store: %v", err)
	}

	transactions, err := common.ReadTransactionsFile(inputFile)
	if err != nil {
		root.Log.Fatalf("Error loading transaction feed: %v", err)
	}

	c := categorizer.New(ruleStore, root.Logger())
	c.Categorize(transactions)

	uncategorized := 0
	for i := range transactions {
		if transactions[i].Category == models.CategoryUncategorized {
			uncategorized++
		}
	}

	if err := common.WriteTransactionsToCSV(transactions, outputFile); err != nil {
		root.Log.Fatalf("Error writing categorized CSV: %v", err)
	}

	root.Log.Infof("Categorized %d transactions (%d uncategorized) into %s",
		len(transactions), uncategorized, outputFile)
}
