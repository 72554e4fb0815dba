package category_test

import (
	"testing"

	"fjacquet/fincat/cmd/category"

	"github.com/stretchr/testify/assert"
)

func TestCategoryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "category", category.Cmd.Use)
	assert.Contains(t, category.Cmd.Short, "rule store")

	subcommands := category.Cmd.Commands()
	names := make([]string, len(subcommands))
	for i, sub := range subcommands {
		names[i] = sub.Use
	}
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "keyword")
}

func TestCategoryCommand_Flags(t *testing.T) {
	add, _, err := category.Cmd.Find([]string{"add"})
	assert.NoError(t, err)
	nameFlag := add.Flags().Lookup("name")
	assert.NotNil(t, nameFlag)
	assert.Equal(t, "n", nameFlag.Shorthand)

	keyword, _, err := category.Cmd.Find([]string{"keyword"})
	assert.NoError(t, err)
	assert.NotNil(t, keyword.Flags().Lookup("category"))
	assert.NotNil(t, keyword.Flags().Lookup("keyword"))
}
