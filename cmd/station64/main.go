// Command station64 runs the Station-64 BBS: the legacy telnet
// transport, the framed websocket transport, and optionally SSH, all
// over one shared session registry and menu engine.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/azcoigreach/station-64/internal/config"
	"github.com/azcoigreach/station-64/internal/logging"
	"github.com/azcoigreach/station-64/internal/menu"
	"github.com/azcoigreach/station-64/internal/scheduler"
	"github.com/azcoigreach/station-64/internal/session"
	"github.com/azcoigreach/station-64/internal/sshserver"
	"github.com/azcoigreach/station-64/internal/store"
	"github.com/azcoigreach/station-64/internal/telnetserver"
	"github.com/azcoigreach/station-64/internal/webserver"
)

func main() {
	configPath := flag.String("config", "config.json", "path to server config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.LoadServerConfig(*configPath)
	if err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	logging.SetDebug(cfg.Debug)

	registry := session.NewRegistry()

	// Persistence collaborator: the core only emits create/remove
	// events; everything else is reserved for future auth work.
	var sink session.EventSink = store.NopSink{}
	if cfg.SessionLogPath != "" {
		sessionLog, err := store.NewSessionLog(cfg.SessionLogPath)
		if err != nil {
			log.Printf("ERROR: %v", err)
			os.Exit(1)
		}
		defer sessionLog.Close()
		sink = sessionLog
	}
	registry.SetEventSink(sink)

	engine := menu.NewEngine(registry, cfg.EntryMenu, cfg.DefaultMenu)
	engine.Register(menu.NewEntryMenu(registry))
	engine.Register(menu.NewMainMenu(registry))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 3)

	var telnetSrv *telnetserver.Server
	if cfg.TelnetEnabled {
		telnetSrv, err = telnetserver.NewServer(telnetserver.Config{
			Host: cfg.TelnetHost,
			Port: cfg.TelnetPort,
		}, engine)
		if err != nil {
			log.Printf("ERROR: Telnet server setup failed: %v", err)
			os.Exit(1)
		}
		go func() { errCh <- telnetSrv.ListenAndServe(ctx) }()
	}

	var webSrv *webserver.Server
	if cfg.WebEnabled {
		webSrv, err = webserver.NewServer(webserver.Config{
			Host: cfg.WebHost,
			Port: cfg.WebPort,
		}, engine)
		if err != nil {
			log.Printf("ERROR: Web server setup failed: %v", err)
			os.Exit(1)
		}
		go func() { errCh <- webSrv.ListenAndServe(ctx) }()
	}

	var sshSrv *sshserver.Server
	if cfg.SSHEnabled {
		sshSrv, err = sshserver.NewServer(sshserver.Config{
			Host:        cfg.SSHHost,
			Port:        cfg.SSHPort,
			HostKeyPath: cfg.SSHHostKeyPath,
		}, engine)
		if err != nil {
			log.Printf("ERROR: SSH server setup failed: %v", err)
			os.Exit(1)
		}
		go func() { errCh <- sshSrv.ListenAndServe(ctx) }()
	}

	sched := scheduler.NewScheduler(registry)
	if cfg.StatsSchedule != "" {
		if err := sched.AddStatsJob(cfg.StatsSchedule); err != nil {
			log.Printf("WARN: %v", err)
		} else {
			sched.Start()
			defer sched.Stop()
		}
	}

	watcher, err := NewConfigWatcher(*configPath)
	if err != nil {
		log.Printf("WARN: Config watcher disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	log.Printf("INFO: %s is up", cfg.BoardName)

	select {
	case <-ctx.Done():
		log.Printf("INFO: Received shutdown signal")
	case err := <-errCh:
		if err != nil {
			log.Printf("ERROR: Server error: %v", err)
		}
	}

	// Legacy listener closes before the framed ones.
	if telnetSrv != nil {
		telnetSrv.Close()
	}
	if webSrv != nil {
		webSrv.Close()
	}
	if sshSrv != nil {
		sshSrv.Close()
	}
	log.Printf("INFO: Shutdown complete")
}
