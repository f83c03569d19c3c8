package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/summa-explorer/summa/internal/mcp"
	"github.com/summa-explorer/summa/internal/resolver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing tools to list parts, browse path tokens and search the Summa.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadDocument(cfg)
		if err != nil {
			return err
		}

		stack, err := openSearch(context.Background(), cfg, doc, openOptions{})
		if err != nil {
			return err
		}
		defer stack.Close()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "summa MCP server started on stdio (entries=%d, semantic=%v)\n",
			stack.keyword.Count(), stack.service.Semantic())

		srv := mcpserver.NewServer(resolver.New(doc), stack.service)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
