package main

import (
	"fmt"
	"log"
	"os"

	"github.com/teepress/mockup-tools/internal/config"
	"github.com/teepress/mockup-tools/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("mockup-server %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("mockup-server - shirt mockup generation service")
			fmt.Println()
			fmt.Println("Usage: mockup-server [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MOCKUP_CONFIG=path/to/config.json   Load configuration from file")
			fmt.Println("  MOCKUP_PORT=8080                    Override the listen port")
			fmt.Println("  MOCKUP_LOG_LEVEL=debug              Enable debug logging")
			fmt.Println()
			fmt.Println("Upload designs and shirt templates over the HTTP API, preview a")
			fmt.Println("single pairing, and download generated mockups as a zip archive.")
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if os.Getenv("MOCKUP_LOG_LEVEL") == "debug" {
		log.Printf("Mockup Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Listening on port %d, detection threshold %d, workers %d",
			cfg.Port, cfg.Detection.BrightnessThreshold, cfg.Workers)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
