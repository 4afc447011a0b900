package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jessevdk/go-flags"

	"github.com/smimonitor/noticias/pkg/config"
	"github.com/smimonitor/noticias/pkg/repository"
	"github.com/smimonitor/noticias/pkg/service"
	"github.com/smimonitor/noticias/server"
)

// Opts with all CLI options
type Opts struct {
	Config   string `short:"c" long:"config" env:"CONFIG" description:"configuration file"`
	Database string `long:"db" env:"DATABASE_URL" description:"database connection string"`
	Listen   string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting noticias version %s", revision)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// run loads configuration, opens the database and serves the data API until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] close database: %v", err)
		}
	}()

	svc := server.Services{
		News: service.NewNewsService(repos, service.NewsOptions{
			WindowDays:   cfg.News.WindowDays,
			DefaultLimit: cfg.News.DefaultLimit,
			MaxLimit:     cfg.News.MaxLimit,
		}),
		Weeks:     service.NewWeekService(repos),
		Portals:   service.NewPortalService(repos),
		Intake:    service.NewIntakeService(repos),
		Dashboard: service.NewDashboardService(repos, cfg.Dashboard.WindowDays),
	}

	return server.New(cfg, svc, revision, opts.Debug).Run(ctx)
}

// loadConfig reads the config file if given and applies command line overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Database != "" {
		cfg.Database.DSN = opts.Database
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if cfg.Database.DSN == "" {
		return nil, errors.New("database is not configured, set DATABASE_URL")
	}
	return cfg, nil
}

// openRepositories connects to the database, retrying while it is not reachable yet
func openRepositories(ctx context.Context, cfg *config.Config) (*repository.Repositories, error) {
	dbCfg := repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	}

	var repos *repository.Repositories
	err := repeater.NewBackoff(5, 200*time.Millisecond, repeater.WithMaxDelay(5*time.Second)).Do(ctx, func() error {
		r, err := repository.NewRepositories(ctx, dbCfg)
		if err != nil {
			log.Printf("[WARN] database is not ready: %v", err)
			return err
		}
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return err
		}
		repos = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return repos, nil
}

func setupLog(dbg, noColor bool) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
