package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"

	"github.com/firewxlabs/firewx/internal/controllers/restserver"
	"github.com/firewxlabs/firewx/internal/database"
	"github.com/firewxlabs/firewx/internal/log"
	"github.com/firewxlabs/firewx/pkg/config"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	cfgFile := flag.String("config", "", "Path to YAML configuration file (defaults used when omitted)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("firewxd %s\n", version)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	if err := log.Init(*debug || cfg.Debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Open run history if a database path was configured; the service runs
	// without history otherwise
	var store *database.Store
	if cfg.DatabasePath != "" {
		store, err = database.NewStore(cfg.DatabasePath, log.GetSugaredLogger())
		if err != nil {
			log.Errorf("Failed to open run history database: %v", err)
			os.Exit(1)
		}
		defer store.Close()
		log.Infof("run history enabled at %s", cfg.DatabasePath)
	} else {
		log.Warn("no database_path configured; run history is disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	ctrl, err := restserver.NewController(ctx, wg, cfg, store, log.GetSugaredLogger())
	if err != nil {
		log.Errorf("Failed to create REST server: %v", err)
		os.Exit(1)
	}

	if err := ctrl.StartController(); err != nil {
		log.Errorf("Failed to start REST server: %v", err)
		os.Exit(1)
	}
	log.Infof("firewxd %s listening on %s", version, ctrl.Server.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("shutdown signal received")
	cancel()
	wg.Wait()
}

func loadConfig(cfgFile string) (*config.Data, error) {
	if cfgFile == "" {
		return config.Defaults(), nil
	}
	filename, _ := filepath.Abs(cfgFile)
	return config.NewYAMLProvider(filename).LoadConfig()
}
