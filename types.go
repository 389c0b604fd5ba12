package main

import (
	"io"
	"os"
	"sync/atomic"
)

// FileToScan is a file that passed all of the walker's filters and is waiting
// for a worker to classify it.
type FileToScan struct {
	Path string
	Size int64
}

// Open returns the byte stream a worker classifies. The caller closes it.
func (f FileToScan) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// Result holds the final totals for a completed scan. A file contributes to
// both fields only if it was read without error and classified as text.
type Result struct {
	Files int64
	Lines int64
}

// Stats counts entries excluded from the result, by reason. The fields are
// atomic because walker and worker goroutines increment them concurrently
// while the CLI reads them afterwards.
type Stats struct {
	ListFailed atomic.Int64 // directories that could not be listed
	StatFailed atomic.Int64 // entries whose metadata could not be read
	TooLarge   atomic.Int64 // files over the size limit
	Generated  atomic.Int64 // generated-looking filenames
	Ignored    atomic.Int64 // entries matched by the root .gitignore
	OpenFailed atomic.Int64
	ReadFailed atomic.Int64
	Binary     atomic.Int64 // files the classifier judged non-text
}
