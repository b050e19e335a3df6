package ccd

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/sourcegraph/conc/pool"

	"festival/internal/config"
)

// devIno identifies a directory by device+inode so WalkDir can detect a
// symlink cycle instead of recursing forever (spec §4.F phase 2 "cycles
// detected by device+inode").
type devIno struct {
	dev, ino uint64
}

func statDevIno(path string) (devIno, bool) {
	info, err := os.Lstat(path)
	if err != nil {
		return devIno{}, false
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return devIno{}, false
	}
	return devIno{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// walkRoots traverses every root in parallel (spec §4.F phase 2) and
// returns the union of every candidate audio file path found. Each root
// gets its own cycle-detection set: two roots that happen to alias the
// same directory via symlinks are each walked fully rather than treated
// as colliding with each other.
func walkRoots(roots []string, maxGoroutines int) ([]string, error) {
	p := pool.NewWithResults[[]string]().WithMaxGoroutines(maxGoroutines)
	for _, root := range roots {
		root := root
		p.Go(func() []string {
			files, err := walkOneRoot(root)
			if err != nil {
				log.WithError(err).WithField("root", root).Warn("error walking root, partial results kept")
			}
			return files
		})
	}

	results := p.Wait()
	var all []string
	for _, files := range results {
		all = append(all, files...)
	}
	return all, nil
}

func walkOneRoot(root string) ([]string, error) {
	visited := map[devIno]bool{}
	var files []string

	var walk func(dir string) error
	walk = func(dir string) error {
		if key, ok := statDevIno(dir); ok {
			if visited[key] {
				return nil
			}
			visited[key] = true
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			log.WithError(err).WithField("dir", dir).Warn("cannot read directory, skipping")
			return nil
		}

		for _, entry := range entries {
			p := filepath.Join(dir, entry.Name())

			if entry.Type()&os.ModeSymlink != 0 {
				target, err := filepath.EvalSymlinks(p)
				if err != nil {
					log.WithError(err).WithField("path", p).Warn("broken symlink, skipping")
					continue
				}
				info, err := os.Stat(target)
				if err != nil {
					continue
				}
				if info.IsDir() {
					if err := walk(target); err != nil {
						return err
					}
					continue
				}
				p = target
			} else if entry.IsDir() {
				if err := walk(p); err != nil {
					return err
				}
				continue
			}

			if config.IsAudioFile(p) {
				files = append(files, p)
			}
		}
		return nil
	}

	err := walk(root)
	return files, err
}
