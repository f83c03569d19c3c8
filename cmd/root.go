package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "summa",
	Short: "Browse and search the Summa Theologica",
	Long: `Summa Explorer serves the Summa Theologica of Saint Thomas Aquinas as a
website organised by part, treatise, question and article. Every node is
addressed by a path token such as PtFS-Tr1-Qu2-Ar3. The corpus can also be
searched from the terminal and exposed to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".summa.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
