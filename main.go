package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/buddywhitman/foodswipe-sub000/cmd"
	"github.com/buddywhitman/foodswipe-sub000/internal/catalog"
	"github.com/buddywhitman/foodswipe-sub000/internal/location"
	"github.com/buddywhitman/foodswipe-sub000/internal/logging"
	"github.com/buddywhitman/foodswipe-sub000/internal/payment"
	"github.com/buddywhitman/foodswipe-sub000/internal/session"
	"github.com/buddywhitman/foodswipe-sub000/internal/ui"
)

func main() {
	// Parse CLI flags and env
	config, err := cmd.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to a file; the TUI owns the terminal
	logger, logCloser, err := logging.Open(config.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ℹ  Could not open log file: %v\n", err)
		logger = logging.Discard()
	} else {
		defer logCloser.Close()
	}

	// Open the local catalog cache
	cacheDB, err := catalog.Open(config.CachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ℹ  Catalog cache unavailable: %v\n", err)
		logger.Warn("catalog cache unavailable", "error", err.Error())
		cacheDB = nil
	} else {
		defer cacheDB.Close()
	}

	var client *catalog.Client
	var resolver *location.Resolver
	if !config.Offline {
		client = catalog.NewClient(config.APIBase)
		resolver = location.NewResolver()
	}

	sess := session.New(nil, logger)

	deps := ui.Deps{
		Session:   sess,
		Client:    client,
		CacheDB:   cacheDB,
		Resolver:  resolver,
		Payments:  payment.Simulator{},
		Policy:    config.Policy,
		Logger:    logger,
		StatePath: config.StatePath,
	}

	p := tea.NewProgram(ui.New(deps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
