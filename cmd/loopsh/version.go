package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the loopsh version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("loopsh %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
