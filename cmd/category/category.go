// Package category handles rule store maintenance commands.
package category

import (
	"fjacquet/fincat/cmd/root"
	"fjacquet/fincat/internal/store"

	"github.com/spf13/cobra"
)

var (
	categoryName string
	keyword      string
)

// Cmd represents the category command group
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Maintain the category rule store",
	Long:  `Add categories and keywords to the rule store by hand.`,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new category",
	Long: `Add a new category with an empty keyword list. Adding a name that
already exists changes nothing and is reported as such.`,
	Run: addFunc,
}

var keywordCmd = &cobra.Command{
	Use:   "keyword",
	Short: "Add a keyword to a category",
	Long: `Append a keyword to an existing category. Keywords are stored with
their original casing; duplicates (compared case-insensitively) are
reported and leave the store unchanged.`,
	Run: keywordFunc,
}

func init() {
	addCmd.Flags().StringVarP(&categoryName, "name", "n", "", "Category name (required)")
	_ = addCmd.MarkFlagRequired("name")

	keywordCmd.Flags().StringVarP(&categoryName, "category", "c", "", "Category name (required)")
	keywordCmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Keyword to add (required)")
	_ = keywordCmd.MarkFlagRequired("category")
	_ = keywordCmd.MarkFlagRequired("keyword")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(keywordCmd)
}

func addFunc(cmd *cobra.Command, args []string) {
	ruleStore, err := root.OpenStore()
	if err != nil {
		root.Log.Fatalf("Error loading rule store: %v", err)
	}

	added, err := ruleStore.AddCategory(categoryName)
	if err != nil {
		root.Log.Fatalf("Error adding category: %v", err)
	}

	if added {
		root.Log.Infof("Added category '%s'", categoryName)
	} else {
		root.Log.Infof("Category '%s' already exists, nothing changed", categoryName)
	}
}

func keywordFunc(cmd *cobra.Command, args []string) {
	ruleStore, err := root.OpenStore()
	if err != nil {
		root.Log.Fatalf("Error loading rule store: %v", err)
	}

	status, err := ruleStore.AddKeyword(categoryName, keyword)
	if err != nil {
		root.Log.Fatalf("Error adding keyword: %v", err)
	}

	switch status {
	case store.StatusAdded:
		root.Log.Infof("Added keyword '%s' to category '%s'", keyword, categoryName)
	case store.StatusAlreadyPresent:
		root.Log.Infof("Keyword '%s' already present in category '%s'", keyword, categoryName)
	default:
		root.Log.Infof("Keyword '%s' ignored (empty after normalization)", keyword)
	}
}
