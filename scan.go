package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
)

// Config controls a single scan.
type Config struct {
	// MaxFileSize skips files larger than this many bytes (default 20 MB).
	MaxFileSize int64
	// Workers is the number of classification workers. 0 means the detected
	// CPU count minus the listing headroom, floor 1.
	Workers int
	// NoIgnore disables the root .gitignore.
	NoIgnore bool
	// Progress, if set, is called with the running file count every
	// progressInterval scanned files.
	Progress func(files int64)
}

const (
	defaultMaxFileSize = 20_000_000
	progressInterval   = 1000

	// Queue sizes between walker → workers and workers → aggregator. Bounded
	// so the walker feels backpressure on huge trees instead of buffering
	// every discovered file in memory.
	fileQueueSize  = 1024
	countQueueSize = 512
)

func defaultWorkers() int {
	n := runtime.NumCPU() - walkParallelism
	if n < 1 {
		n = 1
	}
	return n
}

// Scan walks root, classifies every eligible file concurrently, and returns
// the total line and file counts. The only fatal condition is a root that
// cannot be accessed or isn't a directory; every per-entry failure is counted
// in Stats and otherwise skipped.
func Scan(root string, cfg Config) (Result, *Stats, error) {
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = defaultMaxFileSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers()
	}

	info, err := os.Stat(root)
	if err != nil {
		return Result{}, nil, fmt.Errorf("cannot access %s: %w", root, err)
	}
	if !info.IsDir() {
		return Result{}, nil, fmt.Errorf("%s is not a directory", root)
	}

	stats := &Stats{}
	files := make(chan FileToScan, fileQueueSize)
	counts := make(chan int, countQueueSize)

	w := &walker{
		cfg:   cfg,
		root:  root,
		stats: stats,
		files: files,
		sem:   make(chan struct{}, walkParallelism),
	}
	if !cfg.NoIgnore {
		w.ignore = loadIgnoreMatcher(root)
	}
	go w.run()

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			classifyWorker(files, counts, stats)
		}()
	}
	go func() {
		wg.Wait()
		close(counts)
	}()

	// Aggregation loop. Single consumer; the counters are only ever touched
	// here, so arrival order doesn't matter and no locking is needed.
	var result Result
	for lines := range counts {
		result.Files++
		result.Lines += int64(lines)
		if cfg.Progress != nil && result.Files%progressInterval == 0 {
			cfg.Progress(result.Files)
		}
	}

	return result, stats, nil
}

// classifyWorker drains the walker's queue until it closes, forwarding the
// line count of every file that opens, reads, and classifies as text.
func classifyWorker(files <-chan FileToScan, counts chan<- int, stats *Stats) {
	for file := range files {
		f, err := file.Open()
		if err != nil {
			stats.OpenFailed.Add(1)
			debugf("cannot open %s: %v", file.Path, err)
			continue
		}
		lines, err := classifyReader(f)
		f.Close()

		switch {
		case err == nil:
			counts <- lines
		case errors.Is(err, errBinary):
			stats.Binary.Add(1)
			debugf("skipping binary file %s", file.Path)
		default:
			stats.ReadFailed.Add(1)
			debugf("cannot read %s: %v", file.Path, err)
		}
	}
}
