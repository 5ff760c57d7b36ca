// Command converty batch-converts raw UYVY/NV12 frame dumps to PNG or WebP.
//
// Usage:
//
//	converty [flags] <input file or directory>
//
// Geometry and pixel format come from a named preset (-type) or explicit
// -width/-height/-format overrides. Directories are walked recursively for
// .raw, .yuv, and .bin files.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

type LoggingLevel int

const (
	LogError LoggingLevel = iota
	LogInfo
	LogDebug
)

var currentLogLevel = LogInfo

const logPrefixWidth = 9 // Fits "[DEBUG] "

func logf(level LoggingLevel, format string, args ...any) {
	if level > currentLogLevel {
		return
	}

	prefix := "[INFO] "
	switch level {
	case LogDebug:
		prefix = "[DEBUG]"
	case LogError:
		prefix = "[ERROR]"
	}

	padded := fmt.Sprintf("%-*s", logPrefixWidth, prefix)

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	log.Printf("%s%s", padded, msg)
}

func parseLogLevel(s string) (LoggingLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return LogError, nil
	case "info":
		return LogInfo, nil
	case "debug":
		return LogDebug, nil
	default:
		return 0, fmt.Errorf("invalid log level: %q", s)
	}
}

// initCLI parses all flags and returns the resolved config.
func initCLI() Config {
	var cfg Config
	var logLevelStr string

	pflag.StringVar(
		&cfg.PresetName, "type", "", "preset name (ss2, ss3, ss4); sets "+
			"default width, height, and format")

	pflag.IntVar(
		&cfg.Width, "width", 0, "image width in pixels (overrides preset)")

	pflag.IntVar(
		&cfg.Height, "height", 0, "image height in pixels (overrides preset)")

	pflag.StringVar(
		&cfg.FormatTag, "format", "", "pixel format: uyvy or nv12 "+
			"(overrides preset)")

	pflag.StringVar(
		&cfg.OutputDir, "output", "", "output directory (defaults to "+
			"<input dir>/png)")

	pflag.IntVar(
		&cfg.Workers, "workers", 4, "number of parallel conversion workers")

	pflag.BoolVar(
		&cfg.UseWebP, "webp", false, "encode WebP instead of PNG")

	pflag.Float64Var(
		&cfg.WebPQuality, "quality", 90, "WebP quality 0-100")

	pflag.StringVar(
		&logLevelStr, "loglevel", "info", "log level: error, info, debug")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr,
			"Usage: converty [flags] <input file or directory>\n\n"+
				"Presets:\n"+
				"  ss2: 1920x1280, uyvy\n"+
				"  ss3: 1920x1536, uyvy\n"+
				"  ss4: 1920x1536, nv12\n\nFlags:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one input path is required")
		pflag.Usage()
		os.Exit(1)
	}
	cfg.Input = pflag.Arg(0)

	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	currentLogLevel = level

	if err := cfg.Resolve(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	return cfg
}

func main() {
	log.SetFlags(log.LstdFlags)

	cfg := initCLI()

	files, inputIsFile, err := collectInputs(cfg.Input)
	if err != nil {
		logf(LogError, "Failed to scan input %s: %v", cfg.Input, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logf(LogInfo, "No matching files found (%s).",
			strings.Join(supportedExtensions, ", "))
		return
	}

	if cfg.OutputDir == "" {
		if inputIsFile {
			cfg.OutputDir = filepath.Join(filepath.Dir(cfg.Input), "png")
		} else {
			cfg.OutputDir = filepath.Join(cfg.Input, "png")
		}
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logf(LogError, "Failed to create output directory %s: %v",
			cfg.OutputDir, err)
		os.Exit(1)
	}

	presetLabel := cfg.PresetName
	if presetLabel == "" {
		presetLabel = "custom"
	}
	logf(LogInfo, "Settings: type=%s, size=%dx%d, format=%s", presetLabel,
		cfg.Width, cfg.Height, cfg.Format)
	logf(LogInfo, "Found %d files.", len(files))
	logf(LogInfo, "Output directory: %s", cfg.OutputDir)

	bc, err := NewBatchConverter(cfg, files)
	if err != nil {
		logf(LogError, "Failed to create batch converter: %v", err)
		os.Exit(1)
	}

	if err := bc.Run(context.Background()); err != nil {
		logf(LogError, "Batch conversion failed: %v", err)
		os.Exit(1)
	}

	converted, failed := bc.Counts()
	logf(LogInfo, "Done. Converted %d files, %d failed.", converted, failed)
}
