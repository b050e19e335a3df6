package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"festival/internal/ccd"
	"festival/internal/collection"
	"festival/internal/config"
	"festival/internal/resetstate"
)

var printer = message.NewPrinter(language.English)

var (
	rebuildDataDir   string
	rebuildFrontend  string
	rebuildWorkers   int
	rebuildSeparator string
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild <paths...>",
	Short: "Rebuild the collection from one or more music directories",
	Long:  "Scan the given directories, build a new Collection, print progress, and persist it atomically",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRebuild(args); err != nil {
			fmt.Printf("festival rebuild failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rebuildCmd.Flags().StringVar(&rebuildDataDir, "data-dir", ".", "base directory the persisted collection path is derived from")
	rebuildCmd.Flags().StringVar(&rebuildFrontend, "frontend", string(config.FrontendCLI), "frontend sub-directory (gui/daemon/cli)")
	rebuildCmd.Flags().IntVar(&rebuildWorkers, "workers", 0, "worker pool size per phase (0 = runtime.NumCPU())")
	rebuildCmd.Flags().StringVar(&rebuildSeparator, "separator", ";", "separator for multi-valued tags")
	rootCmd.AddCommand(rebuildCmd)
}

func runRebuild(roots []string) error {
	cfg := config.Cfg{DataDir: rebuildDataDir, WorkerPoolSize: rebuildWorkers, Separator: rebuildSeparator}
	state := resetstate.New()

	var cancel atomic.Bool
	done := make(chan struct{})

	var result *collection.Collection
	var rebuildErr error

	go func() {
		result, rebuildErr = ccd.Rebuild(ccd.Options{
			Roots:          roots,
			Separator:      cfg.Separator,
			WorkerPoolSize: cfg.Effective(),
		}, state, &cancel, collection.Dummy())
		close(done)
	}()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			printProgress(state.Snapshot())
			goto finished
		case <-ticker.C:
			printProgress(state.Snapshot())
		}
	}
finished:
	if rebuildErr != nil {
		return rebuildErr
	}

	path := cfg.CollectionPath(config.Frontend(rebuildFrontend))
	if err := collection.SaveAtomic(result, path); err != nil {
		return err
	}
	printer.Printf("\nwrote %d artists, %d albums, %d songs to %s\n",
		result.CountArtist(), result.CountAlbum(), result.CountSong(), path)
	return nil
}

func printProgress(s resetstate.Snapshot) {
	fmt.Printf("\r[%3d%%] %-12s %s", s.Percent, s.Phase, s.Specific)
}
