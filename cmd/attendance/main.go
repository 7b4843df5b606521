package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/attendance/internal/buildinfo"
	"github.com/dmitrijs2005/attendance/internal/cli"
	"github.com/dmitrijs2005/attendance/internal/config"
	"github.com/dmitrijs2005/attendance/internal/export"
	"github.com/dmitrijs2005/attendance/internal/logging"
	"github.com/dmitrijs2005/attendance/internal/services"
	"github.com/dmitrijs2005/attendance/internal/storage"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}

	conn, err := storage.InitDatabase(ctx, cfg.DatabasePath, cfg.BusyTimeout, logger)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer conn.Close()

	ledger := services.NewLedger(conn, logger, nil)
	exporter := export.NewExporter(cfg.ExportDir, logger)

	app := cli.NewApp(ledger, exporter, logger, os.Stdin, os.Stdout)
	app.Run(ctx)

}
