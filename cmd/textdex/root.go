package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textdex/textdex/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "textdex",
	Short:        "BM25 full-text search over Milvus",
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("textdex %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
