package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/control-stock/internal/application/usecase"
	"github.com/jhoicas/control-stock/internal/infrastructure/filestore"
	infrapdf "github.com/jhoicas/control-stock/internal/infrastructure/pdf"
	"github.com/jhoicas/control-stock/internal/interfaces/cli"
	"github.com/jhoicas/control-stock/pkg/config"
	"github.com/jhoicas/control-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	logCfg := logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			panic("abrir LOG_FILE: " + err.Error())
		}
		defer f.Close()
		logCfg.Out = f
	}
	log := logger.New(logCfg)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data", cfg.Stock.DataPath).
		Msg("iniciando aplicación")

	storeLog := log.Component("filestore")
	repo := filestore.NewInventoryRepository(cfg.Stock.DataPath, storeLog)
	history := filestore.NewEventLog(cfg.Stock.HistoryPath, nil, storeLog)
	reports := infrapdf.NewMarotoReportGenerator(cfg.App.Name)

	stockUC := usecase.NewStockUseCase(repo, history,
		usecase.WithWarningDays(cfg.Stock.ExpiryWarningDays),
		usecase.WithLogger(log.Component("usecase")),
		usecase.WithReports(reports, cfg.Stock.ReportsDir),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(stockUC, cli.NewSurveyPrompter(), os.Stdout, log.Component("cli"))
	if err := app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("menú terminado con error")
		os.Exit(1)
	}
}
