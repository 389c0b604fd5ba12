package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	gitignore "github.com/monochromegane/go-gitignore"
)

// walkParallelism caps the number of directories being listed at once.
// Listing is I/O-bound and gains little beyond a couple of in-flight
// readdirs, so this stays small and fixed.
const walkParallelism = 2

// spawnDepth is the deepest level at which recursing into a subdirectory gets
// its own goroutine. Deeper levels recurse inline on the current goroutine,
// which bounds the task fan-out on very wide or deep trees.
const spawnDepth = 1

// walker recursively enumerates regular files under a root and emits the ones
// that pass its filters on the files channel. Hidden entries, gitignored
// entries, oversized files, and generated-looking filenames are skipped;
// listing and metadata errors skip the entry without failing the walk.
type walker struct {
	cfg    Config
	root   string
	ignore gitignore.IgnoreMatcher
	stats  *Stats
	files  chan<- FileToScan

	sem chan struct{}
	wg  sync.WaitGroup
}

// run drives the walk and closes the files channel once every directory has
// been visited, which is the signal that lets the pipeline drain.
func (w *walker) run() {
	w.wg.Add(1)
	go w.walkDir(w.root, 0)
	w.wg.Wait()
	close(w.files)
}

func (w *walker) walkDir(dir string, depth int) {
	defer w.wg.Done()

	w.sem <- struct{}{}
	entries, err := os.ReadDir(dir)
	<-w.sem
	if err != nil {
		// A directory we cannot list simply has no children.
		w.stats.ListFailed.Add(1)
		debugf("cannot list %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if isHidden(name) {
			continue
		}

		path := filepath.Join(dir, name)
		if w.ignore != nil {
			if rel, err := filepath.Rel(w.root, path); err == nil && w.ignore.Match(rel, entry.IsDir()) {
				w.stats.Ignored.Add(1)
				continue
			}
		}

		if entry.IsDir() {
			w.wg.Add(1)
			if depth <= spawnDepth {
				go w.walkDir(path, depth+1)
			} else {
				w.walkDir(path, depth+1)
			}
			continue
		}

		info, err := entry.Info()
		if err != nil {
			w.stats.StatFailed.Add(1)
			debugf("cannot stat %s: %v", path, err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if info.Size() > w.cfg.MaxFileSize {
			w.stats.TooLarge.Add(1)
			debugf("skipping oversized file %s (%d bytes)", path, info.Size())
			continue
		}
		if looksGenerated(name) {
			w.stats.Generated.Add(1)
			debugf("skipping generated-looking file %s", path)
			continue
		}

		w.files <- FileToScan{Path: path, Size: info.Size()}
	}
}

// isHidden checks if a base name is hidden (starts with '.').
func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// loadIgnoreMatcher loads the .gitignore at the scan root, if there is one.
// Nested .gitignore files are not consulted; go-gitignore matches against one
// file at the root of the walk.
func loadIgnoreMatcher(root string) gitignore.IgnoreMatcher {
	gitIgnorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitIgnorePath); err != nil {
		return nil
	}
	matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not parse .gitignore file %s: %v\n", gitIgnorePath, err)
		return nil
	}
	return matcher
}
