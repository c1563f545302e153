// Package main provides the entry point for the JourneyQ provider dashboard.
//
// The dashboard shows a service provider's bookings and profile in the
// terminal. It uses The Elm Architecture (TEA) via Bubble Tea.
//
// Usage:
//
//	journeyq [--email you@example.com] [--service hotel] [--logout] [--init-config]
//	journeyq --signup --name "Maria Lopez" --business "Lopez Travel" --email maria@example.com [--service travel-service] [--phone ...] [--address ...]
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/journeyq/dashboard/internal/app"
	"github.com/journeyq/dashboard/internal/config"
	"github.com/journeyq/dashboard/internal/domain"
	"github.com/journeyq/dashboard/internal/session"
	"github.com/journeyq/dashboard/internal/toast"
	"github.com/spf13/pflag"
)

func main() {
	var opts options
	pflag.StringVar(&opts.email, "email", "", "sign in with this email when no session is stored")
	service := pflag.String("service", string(domain.ServiceHotel), "service type used with --email (hotel, tour-guide, travel-service, general)")
	pflag.BoolVar(&opts.logout, "logout", false, "clear the stored session and exit")
	pflag.BoolVar(&opts.initConfig, "init-config", false, "write the current settings to ~/.config/journeyq/config.json and exit")
	pflag.BoolVar(&opts.signup, "signup", false, "create a new provider account before starting")
	pflag.StringVar(&opts.name, "name", "", "your name for --signup")
	pflag.StringVar(&opts.business, "business", "", "business name for --signup")
	pflag.StringVar(&opts.phone, "phone", "", "phone number for --signup")
	pflag.StringVar(&opts.address, "address", "", "business address for --signup")
	pflag.Parse()
	opts.service = domain.ServiceType(*service)

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if opts.initConfig {
		path := config.UserConfigPath()
		if err := config.SaveConfig(cfg, path); err != nil {
			return err
		}
		fmt.Println("Wrote " + path)
		return nil
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	store := session.NewStore(cfg.Session.Path, cfg.Session.Key, logger)
	if opts.logout {
		if err := store.Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	}

	queue := toast.NewQueue(
		toast.WithDefaultDuration(cfg.Toast.DefaultDuration()),
		toast.WithLogger(logger),
	)
	defer queue.Close()

	user, err := signIn(store, queue, opts)
	if err != nil {
		return err
	}

	logger.Info("dashboard starting", "user", user != nil, "session", store.Path())

	model := app.New(app.Dependencies{
		Config:   cfg,
		Queue:    queue,
		Store:    store,
		Logger:   logger,
		User:     user,
		Bookings: domain.MockBookings(),
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// openLogger writes logs to the configured file so the UI stays clean
func openLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return logger, func() { f.Close() }, nil
}
