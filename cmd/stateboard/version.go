package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stateboard/stateboard"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stateboard",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stateboard version %s\n", stateboard.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
