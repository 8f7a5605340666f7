package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdxmph/schedule-tui/internal/config"
	"github.com/pdxmph/schedule-tui/internal/logging"
	"github.com/pdxmph/schedule-tui/internal/notify"
	"github.com/pdxmph/schedule-tui/internal/schedule"
	"github.com/pdxmph/schedule-tui/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.Log.Level)
	opts.Path = cfg.Log.Path
	logger, closeLog, err := logging.New(os.Stderr, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Create the store and wire up notifications
	store := schedule.NewStore()

	notify.Register("console", func() notify.Backend { return notify.NewConsoleBackend(os.Stderr) })
	notify.Register("log", func() notify.Backend { return notify.NewLogBackend(logger) })

	manager, err := notify.NewManager(cfg.Notify.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store.Subscribe(manager.Backend())
	if manager.Name() != "log" {
		store.Subscribe(notify.NewLogBackend(logger))
	}

	// Create model
	model, err := tui.New(store, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("schedule started", "notifier", manager.Name())

	// Start the program
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("schedule exited")
}
