package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"festival/internal/collection"
)

var serveDummyCmd = &cobra.Command{
	Use:   "serve-dummy",
	Short: "Print the canonical empty Collection's JSON",
	Long:  "Smoke test for consumers wiring against the dummy Collection before a real rebuild completes",
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := collection.Dummy().ToJSON()
		if err != nil {
			fmt.Printf("festival serve-dummy failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(raw))
	},
}

func init() {
	rootCmd.AddCommand(serveDummyCmd)
}
