package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
)

// buildReport renders the scan summary. With --debug it also appends the
// per-reason breakdown of skipped entries.
func buildReport(result Result, stats *Stats, elapsed time.Duration) string {
	bold := color.New(color.Bold).Sprint

	var b strings.Builder
	fmt.Fprintf(&b, "Total lines: %s\n", bold(result.Lines))
	fmt.Fprintf(&b, "Scanned %s files in %v\n", bold(result.Files), elapsed.Round(time.Millisecond))

	if debugMode && stats != nil {
		b.WriteString("\nSkipped:\n")
		rows := []struct {
			label string
			n     int64
		}{
			{"unlistable directories", stats.ListFailed.Load()},
			{"unreadable metadata", stats.StatFailed.Load()},
			{"oversized files", stats.TooLarge.Load()},
			{"generated-looking names", stats.Generated.Load()},
			{"gitignored entries", stats.Ignored.Load()},
			{"failed to open", stats.OpenFailed.Load()},
			{"failed to read", stats.ReadFailed.Load()},
			{"binary files", stats.Binary.Load()},
		}
		for _, row := range rows {
			fmt.Fprintf(&b, "  %-24s %d\n", row.label, row.n)
		}
	}
	return b.String()
}

// deliverReport sends the report to the selected sink: a file, the clipboard,
// or stdout. Falls back to stdout if the clipboard is unavailable.
func deliverReport(report string) error {
	switch {
	case outputFile != "":
		if err := os.WriteFile(outputFile, []byte(report), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	case copyToClipboard:
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write to clipboard: %v\n", err)
			fmt.Print(report)
			return nil
		}
		fmt.Println("Report copied to clipboard.")
	default:
		fmt.Print(report)
	}
	return nil
}

// debugf logs a per-entry diagnostic to stderr when --debug is set. Skips are
// silent by default; this is the only place they surface.
func debugf(format string, args ...any) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
	}
}
