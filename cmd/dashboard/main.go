package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"StockPulse/internal/app"
	"StockPulse/internal/chart"
	"StockPulse/internal/client"
	"StockPulse/internal/config"
	"StockPulse/internal/scheduler"
	"StockPulse/internal/state"
	"StockPulse/internal/view"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockPulse starting...")

	// .env is optional; missing files are fine.
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	log.Printf("[INFO] data service: %s", cfg.API.BaseURL)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire components
	cli := client.New(cfg.API.BaseURL, cfg.Proxy, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
	registry, err := chart.NewRegistry(cfg.Chart.OutputDir)
	if err != nil {
		log.Fatalf("[FATAL] init chart registry: %v", err)
	}
	defer registry.Close()

	board := view.NewDashboard()
	selection := state.NewManager(cfg.Defaults.PeriodDays)
	a := app.New(ctx, cli, selection, registry, board)

	// Initial load, then periodic refreshes
	a.Refresh()

	sched := scheduler.New(a, time.Duration(cfg.Refresh.IntervalSeconds)*time.Second, cfg.Refresh.Serialize)
	if err := sched.Register(); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Console command loop
	go runConsole(ctx, a)

	fmt.Println(view.FormatDashboard(board.Snapshot()))
	log.Println("[INFO] StockPulse is running. Type 'help' for commands, Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockPulse stopped")
}

// runConsole reads commands from stdin until the context ends.
func runConsole(ctx context.Context, a *app.App) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if reply := a.HandleCommand(line); reply != "" {
			fmt.Println(reply)
		}
	}
}
