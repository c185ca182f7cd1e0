package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ansinha/fplbot/internal/api/fpl"
	"github.com/ansinha/fplbot/internal/bot"
	"github.com/ansinha/fplbot/internal/chat"
	"github.com/ansinha/fplbot/internal/config"
	"github.com/ansinha/fplbot/internal/predict"
	"github.com/ansinha/fplbot/internal/scheduler"
	"github.com/ansinha/fplbot/internal/server"
	"github.com/ansinha/fplbot/internal/service"
	"github.com/ansinha/fplbot/internal/store"
	"github.com/ansinha/fplbot/internal/store/memory"
	"github.com/ansinha/fplbot/internal/store/postgres"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	var st store.Store
	if cfg.Store.PostgresDSN != "" {
		pg, err := postgres.Open(cfg.Store.PostgresDSN)
		if err != nil {
			return err
		}
		defer pg.Close()
		st = pg
	} else {
		st = memory.NewStore()
	}

	fplClient := fpl.NewClient(cfg.LeagueAPI.BaseURL)
	fplAPI := fpl.NewAPI(fplClient)
	leagueService := service.NewLeagueService(fplAPI, st)

	if err := leagueService.Refresh(); err != nil {
		slog.Error("Initial data refresh failed", "error", err)
	}

	predictor, err := predict.LoadCSV(cfg.Predictions.CSVPath)
	if err != nil {
		slog.Error("Error loading predictions table, predictions disabled", "error", err)
		predictor = predict.NewTable(nil)
	}

	router := chat.NewRouter(st, predictor)

	sched, err := scheduler.NewScheduler(leagueService, cfg.LeagueAPI.RefreshInterval)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	srv := server.New(router)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := http.ListenAndServe(cfg.Server.Addr, srv); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TelegramBot.Token != "" {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, router)
		if err != nil {
			return err
		}

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	}

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}
