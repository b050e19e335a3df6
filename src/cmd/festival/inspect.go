package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"festival/internal/collection"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <collection.bin>",
	Short: "Load a persisted collection and print its counts and diagnostics",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInspect(args[0]); err != nil {
			fmt.Printf("festival inspect failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(path string) error {
	c, err := collection.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("artists: %d\nalbums:  %d\nsongs:   %d\nart:     %d\n\n",
		c.CountArtist(), c.CountAlbum(), c.CountSong(), c.CountArt())

	c.AlbumsWithInconsistentTrackNumbers(os.Stdout)
	fmt.Println()
	c.TracksWithoutAlbum(os.Stdout)
	fmt.Println()
	c.TracksWithoutCover(os.Stdout)
	return nil
}
