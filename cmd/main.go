package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ponto/config"
	"ponto/internal/app/service"
	"ponto/internal/delivery/cli"
	"ponto/internal/domain"
	"ponto/internal/repository/postgres"
	"ponto/internal/repository/sqlite"
	"ponto/pkg/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "> Erro ao carregar configuração: %v\n", err)
		return cli.ExitFailure
	}

	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Pretty)
	logger.Debug().
		Str("driver", cfg.Database.Driver).
		Str("container", cfg.Database.Container).
		Msg("config loaded")

	attendance := service.NewAttendanceService(newConnector(cfg), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Service:    attendance,
		Log:        logger,
		StrictExit: cfg.StrictExit,
		RunBot: func(ctx context.Context) error {
			return runBot(ctx, cfg, attendance, logger)
		},
	}
	return cli.Execute(ctx, app, os.Args[1:], os.Stdout, os.Stderr)
}

func newConnector(cfg *config.Config) domain.Connector {
	if cfg.Database.Driver == config.DriverSQLite {
		return sqlite.NewConnector(cfg.Database.SQLitePath)
	}
	return postgres.NewConnector(cfg.DatabaseURL())
}
