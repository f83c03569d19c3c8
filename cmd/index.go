package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/summa-explorer/summa/internal/progress"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the search indexes from the corpus",
	Long: `Reads every corpus file, then rebuilds the keyword index and, when semantic
search is enabled, the vector index. Run it after editing the corpus.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadDocument(cfg)
		if err != nil {
			return err
		}

		stack, err := openSearch(context.Background(), cfg, doc, openOptions{
			Rebuild:  true,
			Reporter: progress.NewReporter,
		})
		if err != nil {
			return err
		}
		defer stack.Close()

		fmt.Printf("Keyword index: %d entries (%s)\n", stack.keyword.Count(), cfg.DBPath())
		if stack.semantic != nil {
			fmt.Printf("Semantic index: %d entries (%s)\n", stack.semantic.Count(), cfg.VectorDir())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
