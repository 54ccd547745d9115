package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stateboard",
	Short: "Stateboard is a state machine driven task management server",
	Long:  `Stateboard runs the task-management application machine behind a JSON API, with pluggable persistence for accounts and tasks.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "stateboard.yaml", "Path to the configuration file")
}
