package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"festival/internal/logging"
)

var preamble = `festival ` + Version + `

festival is a music library Collection Construction engine: it scans a
set of directories, builds an in-memory catalog of artists, albums and
songs, and persists it to a single binary file.

This command is a thin wiring exercise over the festival/internal/ccd
and festival/internal/collection packages, not a first-class deliverable.`

var (
	logDir   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:     "festival",
	Short:   "festival collection builder",
	Long:    preamble,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(logDir, logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", ".", "directory festival.log is written to")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}
