package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/imagelab/pixel-engine/internal/engine"
	"github.com/imagelab/pixel-engine/internal/server"
)

// Build metadata, injected via -ldflags at release time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("pixel-engine %s (commit %s)\n", version, commit)
		return
	}

	// stdout carries the protocol; everything else goes to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	limits, err := limitsFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	if os.Getenv("PIXEL_ENGINE_LOG_LEVEL") == "debug" {
		log.Printf("pixel-engine %s starting, ceiling %d pixels per grid", version, limits.MaxPixels)
	}

	if err := server.NewWithLimits(limits).Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// limitsFromEnv returns the engine limits, letting PIXEL_ENGINE_MAX_PIXELS
// override the default grid ceiling.
func limitsFromEnv() (engine.Limits, error) {
	limits := engine.DefaultLimits()
	raw := os.Getenv("PIXEL_ENGINE_MAX_PIXELS")
	if raw == "" {
		return limits, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return limits, fmt.Errorf("PIXEL_ENGINE_MAX_PIXELS must be a positive integer, got %q", raw)
	}
	limits.MaxPixels = n
	return limits, nil
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "pixel-engine serves deterministic image transformations over the")
	fmt.Fprintln(out, "MCP protocol on stdin/stdout.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Tools: image_transform, image_info, image_convert")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment:")
	fmt.Fprintln(out, "  PIXEL_ENGINE_MAX_PIXELS  per-grid pixel ceiling (default 67108864)")
	fmt.Fprintln(out, "  PIXEL_ENGINE_LOG_LEVEL   set to \"debug\" for startup logging")
}
