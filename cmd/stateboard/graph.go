package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stateboard/stateboard/internal/presentation/graph"
	"github.com/stateboard/stateboard/pkg/machine"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the state machine visualization",
	Long:  `Outputs a Mermaid state diagram of the application machine.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(graph.Mermaid(machine.App()))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
