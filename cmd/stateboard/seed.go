package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stateboard/stateboard/internal/config"
	"github.com/stateboard/stateboard/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the store with demo accounts and tasks",
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		logger := buildLogger(cfg.Log)

		users, tasks, closeStores, err := openStores(cfg)
		if err != nil {
			fmt.Printf("Error opening store: %v\n", err)
			os.Exit(1)
		}
		defer closeStores()

		if err := seed.Run(context.Background(), users, tasks, logger); err != nil {
			fmt.Printf("Error seeding store: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Demo data ready. Accounts use the password %q.\n", seed.Password)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
