// Command skisim runs a ski resort scenario headless and prints a report of
// where every skier ended up and what it planned last.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scifi6546/ski-tycoon-v2/scenario"
	"github.com/scifi6546/ski-tycoon-v2/sim"
)

type config struct {
	scenarioFile string
	name         string
	list         bool
	ticks        int
	workers      int
	depth        int
	jsonOutput   bool
	metricsAddr  string
	verbose      bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.scenarioFile, "scenario", "", "Path to a scenario library YAML file (default: built-in library)")
	flag.StringVar(&cfg.name, "name", "Cone World", "Scenario to run")
	flag.BoolVar(&cfg.list, "list", false, "List scenario names and exit")
	flag.IntVar(&cfg.ticks, "ticks", 100, "Number of ticks to simulate")
	flag.IntVar(&cfg.workers, "workers", 0, "Concurrent replans per tick (0: scenario default)")
	flag.IntVar(&cfg.depth, "depth", 0, "Planner lookahead depth (0: scenario default)")
	flag.BoolVar(&cfg.jsonOutput, "json", false, "Output the report as JSON")
	flag.StringVar(&cfg.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running")
	flag.BoolVar(&cfg.verbose, "v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("skisim failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger, out io.Writer) error {
	lib := scenario.Builtin()
	if cfg.scenarioFile != "" {
		var err error
		if lib, err = scenario.LoadFile(cfg.scenarioFile); err != nil {
			return err
		}
	}
	if cfg.list {
		for _, name := range lib.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}
	if cfg.ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", cfg.ticks)
	}

	s, err := lib.Find(cfg.name)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts := []sim.Option{
		sim.WithLogger(logger),
		sim.WithMetrics(sim.NewMetrics(reg)),
	}
	if cfg.workers > 0 {
		opts = append(opts, sim.WithWorkers(cfg.workers))
	}
	if cfg.depth > 0 {
		opts = append(opts, sim.WithSearchDepth(cfg.depth))
	}

	if cfg.metricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("serving metrics", "addr", cfg.metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
		defer srv.Close()
	}

	logger.Info("building scenario", "name", s.Name)
	start := time.Now()
	w, err := s.Build(ctx, opts...)
	if err != nil {
		return err
	}
	logger.Info("scenario ready", "skiers", len(w.Skiers()), "lifts", len(w.Lifts()), "took", time.Since(start))

	start = time.Now()
	if err := w.Run(ctx, cfg.ticks); err != nil {
		return err
	}

	return writeReport(out, newReport(s.Name, w, time.Since(start)), cfg.jsonOutput)
}
