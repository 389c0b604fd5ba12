package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Filtering
	maxSizeBytes int64
	noIgnore     bool

	// Processing
	numThreads int

	// Output
	outputFile      string
	copyToClipboard bool
	debugMode       bool
)

// version is the application version, set via ldflags.
var version string = "dev" // Default for local builds

var rootCmd = &cobra.Command{
	Use:   "kloc [PATH]",
	Short: "kloc counts lines of text across a directory tree.",
	Long: `kloc recursively scans a directory, counts line terminators in every text
file, and skips binary, oversized, hidden, and generated-looking files.
Directory traversal and file classification both run in parallel.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		// ANSI codes don't belong in a file or on the clipboard.
		if outputFile != "" || copyToClipboard {
			color.NoColor = true
		}

		progressShown := false
		cfg := Config{
			MaxFileSize: maxSizeBytes,
			Workers:     numThreads,
			NoIgnore:    noIgnore,
			Progress: func(files int64) {
				progressShown = true
				fmt.Fprintf(os.Stderr, "\rScanned %d files...", files)
			},
		}

		start := time.Now()
		result, stats, err := Scan(root, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if progressShown {
			fmt.Fprintln(os.Stderr)
		}

		report := buildReport(result, stats, time.Since(start))
		if err := deliverReport(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Filtering
	rootCmd.Flags().Int64VarP(&maxSizeBytes, "max-size", "s", defaultMaxFileSize, "Maximum file size in bytes to scan")
	viper.BindPFlag("max_size", rootCmd.Flags().Lookup("max-size"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect the root .gitignore file")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))

	// Processing
	rootCmd.Flags().IntVarP(&numThreads, "threads", "t", 0, "Number of classification workers (0 for auto)")
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))

	// Output
	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save the report to the specified file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the report to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Log skipped entries and print the skip breakdown")
	viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))

	viper.SetDefault("max_size", defaultMaxFileSize)
	viper.SetDefault("no_ignore", false)
	viper.SetDefault("threads", 0)
	viper.SetDefault("debug", false)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		// Search config in home/.config/kloc with name "config" (without extension).
		viper.AddConfigPath(filepath.Join(home, ".config", "kloc"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv() // read in environment variables that match KLOC_*
	viper.SetEnvPrefix("KLOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}

	// Resolution order: flag default < config file < env < explicit flag.
	if !rootCmd.Flags().Changed("max-size") {
		maxSizeBytes = viper.GetInt64("max_size")
	}
	if !rootCmd.Flags().Changed("no-ignore") {
		noIgnore = viper.GetBool("no_ignore")
	}
	if !rootCmd.Flags().Changed("threads") {
		numThreads = viper.GetInt("threads")
	}
	if !rootCmd.Flags().Changed("debug") {
		debugMode = viper.GetBool("debug")
	}
}

func main() {
	rootCmd.Execute()
}
