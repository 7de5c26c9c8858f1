package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andareed/siftly-activity/config"
	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/export"
	"github.com/andareed/siftly-activity/logging"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var (
	logFile    = flag.String("debug", "", "Write Debug Logs to file")
	configPath = flag.String("config", "", "Config file (.yaml, .yml or .toml)")
	exportDir  = flag.String("export", "", "Write the export bundle to DIR and exit")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cleanup, err := logging.SetupLogging(*logFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("siftly-activity: Started")

	source := cfg.DataSource
	if args := flag.Args(); len(args) > 0 {
		source = args[0]
	}
	if source == "" {
		fmt.Println("Usage: sfact [--debug debug.log] [--config file] [--export dir] [data.json|URL]")
		os.Exit(1)
	}

	// Load validated the timeout already
	timeout, _ := cfg.Timeout()
	ctx := context.Background()
	ds, err := dataset.NewLoader(cfg.BaseURL, timeout).Load(ctx, source)
	if err != nil {
		log.Fatalf("failed to load %q: %v", source, err)
	}

	m := newModel(source, ds, cfg)

	if *exportDir != "" {
		files, err := export.Bundle(ctx, *exportDir, m.exportView())
		if err != nil {
			log.Fatalf("export failed: %v", err)
		}
		for _, f := range files {
			fmt.Println(f)
		}
		return
	}

	m.zones = zone.New()
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
