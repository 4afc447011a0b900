package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/smimonitor/noticias/pkg/auth"
	"github.com/smimonitor/noticias/pkg/config"
	"github.com/smimonitor/noticias/pkg/repository"
	"github.com/smimonitor/noticias/server"
)

// Opts with all CLI options
type Opts struct {
	Config   string `short:"c" long:"config" env:"CONFIG" description:"configuration file"`
	Database string `long:"db" env:"DATABASE_URL" description:"database connection string"`
	Secret   string `long:"secret" env:"JWT_SECRET" description:"token signing secret"`
	Frontend string `long:"frontend" env:"FRONTEND_URL" description:"frontend origin allowed by CORS"`
	Listen   string `short:"l" long:"listen" env:"AUTH_LISTEN" description:"listen address, overrides config"`

	AddUser struct {
		Email    string `long:"email" description:"user email"`
		Name     string `long:"name" description:"user name"`
		Password string `long:"password" env:"USER_PASSWORD" description:"user password"`
	} `group:"add-user" namespace:"add-user"`

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

	setupLog(opts.Debug, opts.NoColor, opts.Secret, opts.AddUser.Password)
	log.Printf("[INFO] starting noticias auth version %s", revision)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// run serves the auth gate, or adds a user and exits when --add-user.email is set
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] close database: %v", err)
		}
	}()

	svc, err := auth.NewService(repos.Users, opts.Secret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	if opts.AddUser.Email != "" {
		u, err := svc.AddUser(ctx, opts.AddUser.Email, opts.AddUser.Name, opts.AddUser.Password)
		if err != nil {
			return fmt.Errorf("failed to add user: %w", err)
		}
		log.Printf("[INFO] user %s saved with id %d", u.Email, u.ID)
		return nil
	}

	origins := cfg.Auth.AllowedOrigins
	if opts.Frontend != "" {
		origins = append(origins, opts.Frontend)
	}
	if len(origins) == 0 {
		log.Print("[WARN] no allowed origins, browsers will be refused by CORS")
	}

	limiter := auth.NewLimiter(cfg.Auth.MaxAttempts, cfg.Auth.AttemptWindow)
	srv := server.NewAuthServer(config.AuthServerConfig{Config: cfg}, svc, limiter, origins, revision, opts.Debug)
	return srv.Run(ctx)
}

// loadConfig reads the config file if given and applies command line overrides
func loadConfig(opts Opts) (*config.Config, error) {
	if strings.TrimSpace(opts.Secret) == "" {
		return nil, errors.New("token secret is not configured, set JWT_SECRET")
	}
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
		cfg.Auth.Listen = opts.Listen
	}
	if cfg.Database.DSN == "" {
		return nil, errors.New("database is not configured, set DATABASE_URL")
	}
	return cfg, nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}
	if !noColor {
		logOpts = append(logOpts, lgr.Map(lgr.Mapper{
			ErrorFunc: func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:  func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:  func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			TimeFunc:  func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}))
	}

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
