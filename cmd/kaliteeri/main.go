package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/palemoky/kali-teeri/internal/config"
	"github.com/palemoky/kali-teeri/internal/logger"
	"github.com/palemoky/kali-teeri/internal/session"
	"github.com/palemoky/kali-teeri/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	envFile := flag.String("env", ".env", "dotenv file with KALI_* overrides")
	flag.Parse()

	if err := realMain(context.Background(), *configPath, *envFile); err != nil {
		log.Fatalf("kaliteeri: %v", err)
	}
}

func realMain(ctx context.Context, configPath, envFile string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = lg.Close() }()
	defer func() {
		if r := recover(); r != nil {
			lg.LogPanic(r)
			panic(r)
		}
	}()

	ctx = logger.WithLogger(ctx, lg.SugaredLogger)
	logger.FromContext(ctx).Infow("starting scorecard", "log_path", lg.Path(), "config", configPath)

	s := session.New(logger.FromContext(ctx).Named("session"))
	model := ui.NewScorecardModel(s, cfg.Game, logger.FromContext(ctx).Named("ui"))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run scorecard: %w", err)
	}
	return nil
}

// loadConfig reads configPath, falling back to the built-in defaults (with
// environment overrides) when the file does not exist.
func loadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg = config.Default()
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
