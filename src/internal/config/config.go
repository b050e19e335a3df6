// Package config holds the CCD-relevant configuration subset, adapted
// from the teacher's cfg.go down to what spec §1/§4.F actually need:
// roots to scan, the data directory the persisted file path is derived
// from, worker pool sizing, the tag-value separator, and log
// directory/level. CLI flag wiring is out of scope for the core (spec §1
// Non-goals) and lives only in cmd/festival.
package config

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// Frontend names the consumer deriving the persisted collection path
// (spec §4.D "gui/daemon/cli sub-directory").
type Frontend string

const (
	FrontendGUI    Frontend = "gui"
	FrontendDaemon Frontend = "daemon"
	FrontendCLI    Frontend = "cli"
)

// Cfg is the CCD-relevant configuration, loaded from a JSON file exactly
// like the teacher's Cfg (same encoding/json, no viper/cobra-config
// binding).
type Cfg struct {
	// MusicDirs are the root paths CCD walks on rebuild.
	MusicDirs []string `json:"music_dirs"`
	// Separator is used to split multi-valued tags (e.g. multiple
	// genres in one frame).
	Separator string `json:"separator"`
	// DataDir is the base directory the persisted collection path is
	// derived from: ${DataDir}/${Frontend}/state/collection.bin.
	DataDir string `json:"data_dir"`
	// WorkerPoolSize bounds CCD's in-flight work items per phase
	// (spec §5 "Backpressure"). Zero means runtime.NumCPU().
	WorkerPoolSize int `json:"worker_pool_size"`
	LogDir         string `json:"log_dir"`
	LogLevel       string `json:"log_level"`
}

// audioMimeTypes contains the audio mime types CCD recognizes as
// candidate files during WalkDir (spec §4.F phase 2 "known-audio set"),
// carried over from the teacher's audioMimeTypes table.
var audioMimeTypes = map[string]bool{
	"audio/aac":    true,
	"audio/flac":   true,
	"audio/mp4":    true,
	"audio/mpeg":   true,
	"audio/ogg":    true,
	"audio/x-flac": true,
}

// IsAudioFile reports whether name's extension maps to a recognized
// audio mime type, the same extension-to-mime lookup the teacher's
// IsValidAudioFile performs.
func IsAudioFile(name string) bool {
	_, ok := audioMimeTypes[mime.TypeByExtension(path.Ext(name))]
	return ok
}

// Effective returns WorkerPoolSize, defaulting to runtime.NumCPU() when
// unset.
func (c *Cfg) Effective() int {
	if c.WorkerPoolSize > 0 {
		return c.WorkerPoolSize
	}
	return runtime.NumCPU()
}

// CollectionPath derives the persisted collection file path for the
// given frontend (spec §4.D, §6 "Persisted layout").
func (c *Cfg) CollectionPath(frontend Frontend) string {
	return filepath.Join(c.DataDir, string(frontend), "state", "collection.bin")
}

// Load reads path and decodes it into a Cfg, matching the teacher's
// Load() (plain encoding/json, wrapped error on failure).
func Load(path string) (Cfg, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Cfg{}, errors.Wrapf(err, "config file %q could not be read", path)
	}

	var cfg Cfg
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Cfg{}, errors.Wrapf(err, "config file %q could not be parsed", path)
	}
	return cfg, nil
}

// Validate checks that the configuration is complete enough to run a
// rebuild, matching the teacher's Validate()/validateDir() shape.
func (c *Cfg) Validate() error {
	if len(c.MusicDirs) == 0 {
		return fmt.Errorf("no music_dirs configured")
	}
	for _, dir := range c.MusicDirs {
		if err := validateDir(dir, "music_dirs"); err != nil {
			return err
		}
	}
	if err := validateDir(c.DataDir, "data_dir"); err != nil {
		return err
	}
	return nil
}

func validateDir(dir, name string) error {
	if dir == "" {
		return fmt.Errorf("no %s maintained", name)
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %q doesn't exist", name, dir)
		}
		return errors.Wrapf(err, "cannot check if %s %q exists", name, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s %q is not a directory", name, dir)
	}
	return nil
}
