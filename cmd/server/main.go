package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"sub_expenses/internal/config"
	httpGateway "sub_expenses/internal/gateways/http"
	subsRepository "sub_expenses/internal/repository/subscription/postgres"
	usersRepository "sub_expenses/internal/repository/user/postgres"
	"sub_expenses/internal/scanner"
	usecaseInternal "sub_expenses/internal/usecase"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()
	pgCfg := cfg.Pg
	log := setupLogger(cfg.Env)

	log.Info("starting subscription expense tracker", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	databaseUrl := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		pgCfg.User,
		pgCfg.Password,
		pgCfg.Host,
		pgCfg.Port,
		pgCfg.Db)

	pool, err := pgxpool.New(ctx, databaseUrl)
	if err != nil {
		log.Error("failed to init storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	log.Debug("init database")

	loc, err := cfg.Service.Location()
	if err != nil {
		log.Error("failed to resolve service time zone",
			slog.String("time_zone", cfg.Service.TimeZone),
			slog.Any("error", err))
		os.Exit(1)
	}

	sr := subsRepository.NewSubRepository(pool)
	ur := usersRepository.NewUserRepository(pool)
	subUseCase := usecaseInternal.NewSubscription(sr, ur, loc)

	if cfg.Scanner.Enabled {
		worker := scanner.NewWorker(subUseCase, nil, scanner.Config{
			RunAt:       cfg.Scanner.RunAt,
			HorizonDays: cfg.Scanner.HorizonDays,
		}, loc, log)
		go func() {
			if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("billing scanner exited", slog.Any("error", err))
			}
		}()
	}

	useCases := httpGateway.UseCases{
		Sub: subUseCase,
	}

	server := httpGateway.New(useCases,
		*cfg,
		log,
		httpGateway.WithHost(cfg.Server.Host),
		httpGateway.WithPort(uint16(cfg.Server.Port)),
		httpGateway.WithLogger(log),
		httpGateway.WithTimeout(cfg.Server.Timeout),
	)

	log.Info("starting server", slog.String("address", cfg.Server.Host+":"+strconv.Itoa(cfg.Server.Port)))
	if err := server.Run(ctx); err != nil {
		log.Error(err.Error())
		return
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch strings.ToLower(env) {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return log
}
