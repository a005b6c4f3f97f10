package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/specimen-tools/wingpoints/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags before flag parsing so they work
	// without the otherwise required options.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("wingpoints %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		topRuler   = flag.Int("top-ruler", 0, "row where the measurement ruler begins (required)")
		cachePath  = flag.String("cache", "", "path to the result cache database (disabled when empty)")
		plotDir    = flag.String("plots", "", "directory for diagnostic plots (disabled when empty)")
		overlayDir = flag.String("overlays", "", "directory for landmark overlays (disabled when empty)")
		readTags   = flag.Bool("read-tags", false, "recover printed text from the specimen tag via OCR")
		language   = flag.String("lang", "eng", "Tesseract language code for tag OCR")
	)
	flag.Usage = usage
	flag.Parse()

	// Logging goes to stderr; stdout carries one JSON report per image.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	debug := os.Getenv("WINGPOINTS_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("wingpoints v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "error: no input images")
		usage()
		os.Exit(2)
	}

	runner, err := pipeline.New(pipeline.Options{
		TopRuler:   *topRuler,
		CachePath:  *cachePath,
		PlotDir:    *plotDir,
		OverlayDir: *overlayDir,
		ReadTags:   *readTags,
		Language:   *language,
	}, debug)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	defer runner.Close()

	enc := json.NewEncoder(os.Stdout)
	failures := 0
	for _, path := range flag.Args() {
		report, err := runner.Run(path)
		if err != nil {
			log.Printf("error: %v", err)
			failures++
			continue
		}
		if err := enc.Encode(report); err != nil {
			log.Fatalf("error: write report: %v", err)
		}
	}

	if failures > 0 {
		log.Printf("%d of %d images failed", failures, flag.NArg())
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "wingpoints - landmark detection for specimen photographs")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: wingpoints -top-ruler <row> [options] <image>...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  WINGPOINTS_LOG_LEVEL=debug    Enable debug logging")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "One JSON report per image is written to stdout; logs go to stderr.")
}
