// Package learn handles the categorization feedback command.
package learn

import (
	"fjacquet/fincat/cmd/root"
	"fjacquet/fincat/internal/categorizer"
	"fjacquet/fincat/internal/models"
	"fjacquet/fincat/internal/store"

	"github.com/spf13/cobra"
)

var (
	details        string
	chosenCategory string
)

// Cmd represents the learn command
var Cmd = &cobra.Command{
	Use:   "learn",
	Short: "Record a manual categorization as a new rule",
	Long: `Record a user's category correction. The transaction's details text
becomes a keyword of the chosen category, so future feeds containing
the same text classify into it automatically.`,
	Run: learnFunc,
}

func init() {
	Cmd.Flags().StringVarP(&details, "details", "d", "", "Transaction details text (required)")
	Cmd.Flags().StringVarP(&chosenCategory, "category", "c", "", "Chosen category (required)")
	_ = Cmd.MarkFlagRequired("details")
	_ = Cmd.MarkFlagRequired("category")
}

func learnFunc(cmd *cobra.Command, args []string) {
	ruleStore, err := root.OpenStore()
	if err != nil {
		root.Log.Fatalf("Error loading rule store: %v", err)
	}

	c := categorizer.New(ruleStore, root.Logger())
	status, err := c.RecordFeedback(models.Transaction{Details: details}, chosenCategory)
	if err != nil {
		root.Log.Fatalf("Error recording feedback: %v", err)
	}

	switch status {
	case store.StatusAdded:
		root.Log.Infof("Learned '%s' for category '%s'", details, chosenCategory)
	case store.StatusAlreadyPresent:
		root.Log.Infof("'%s' is already a keyword of category '%s'", details, chosenCategory)
	default:
		root.Log.Infof("Nothing to learn from empty details")
	}
}
