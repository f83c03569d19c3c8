package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/summa-explorer/summa/internal/search"
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search the Summa from the terminal",
	Long:  `Searches titles and text of the corpus and prints the matching path tokens with a snippet.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().Int("limit", 10, "maximum number of results")
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	queryCmd.Flags().Bool("semantic", false, "prefer the semantic index")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	queryText := strings.Join(args, " ")

	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	semantic, _ := cmd.Flags().GetBool("semantic")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if semantic {
		cfg.Search.Semantic = true
	}
	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	stack, err := openSearch(ctx, cfg, doc, openOptions{})
	if err != nil {
		return err
	}
	defer stack.Close()

	req := search.Request{Query: queryText, Limit: limit}
	if semantic {
		req.Mode = search.ModeSemantic
	}
	res, err := stack.service.Search(ctx, req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if len(res.Hits) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	printQueryResults(res)
	return nil
}

func printQueryResults(res *search.Result) {
	fmt.Printf("Found %d result(s) for %q (%s search):\n\n", len(res.Hits), res.Query, res.Mode)
	for i, h := range res.Hits {
		fmt.Printf("  %d. %s  [%s]\n", i+1, h.ID, h.Kind)
		if h.Title != "" {
			fmt.Printf("     %s\n", truncate(h.Title, 100))
		}
		if h.Snippet != "" {
			fmt.Printf("     %s\n", truncate(h.Snippet, 160))
		}
		fmt.Println()
	}
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
