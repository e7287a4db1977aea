package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhulst/bonscan/internal/category"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [title]",
	Short: "Suggest expense categories for a transaction title",
	Example: `  bonscan suggest "Albert Heijn boodschappen"
  bonscan suggest "shell tanken a2" --recent Transport,Food --top 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().StringSlice("recent", nil, "Recently used categories, most recent first")
	suggestCmd.Flags().StringSlice("categories", nil, "Active category set (default: built-in)")
	suggestCmd.Flags().Int("top", 3, "Number of suggestions")
	suggestCmd.Flags().String("registry", "", "Path to a custom brand registry JSON file")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	recent, _ := cmd.Flags().GetStringSlice("recent")
	categories, _ := cmd.Flags().GetStringSlice("categories")
	topN, _ := cmd.Flags().GetInt("top")
	registryPath, _ := cmd.Flags().GetString("registry")

	reg, err := loadRegistry(registryPath)
	if err != nil {
		return err
	}

	s := category.NewSuggester(reg, category.DefaultWeights(), nil)
	out := s.Suggest(args[0], recent, category.Options{
		Categories: categories,
		TopN:       topN,
	})
	fmt.Println(strings.Join(out, "\n"))
	return nil
}
