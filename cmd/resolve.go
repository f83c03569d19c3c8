package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/summa-explorer/summa/internal/pathtoken"
	"github.com/summa-explorer/summa/internal/resolver"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [token]",
	Short: "Print the view a path token resolves to",
	Long: `Resolves a path token such as PtFS-Tr1-Qu2 against the corpus and prints the
result as JSON. Without a token the list of parts is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadDocument(cfg)
		if err != nil {
			return err
		}
		res := resolver.New(doc)

		var out any
		if len(args) == 0 {
			parts, err := res.ListParts()
			if err != nil {
				return err
			}
			out = parts
		} else {
			view, err := res.ResolveToken(args[0])
			if err != nil {
				return fmt.Errorf("resolving %q: %w", args[0], err)
			}
			out = struct {
				Token string         `json:"token"`
				Kind  pathtoken.Kind `json:"kind"`
				View  resolver.View  `json:"view"`
			}{view.Token(), view.Kind(), view}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
