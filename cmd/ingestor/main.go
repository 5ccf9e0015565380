package main

import (
	"context"
	"fmt"
	"os"

	"github.com/enterprise-sync/asingest/internal/adapter"
	"github.com/enterprise-sync/asingest/internal/client"
	"github.com/enterprise-sync/asingest/internal/config"
	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/internal/service"
	"github.com/enterprise-sync/asingest/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetIngestorConfig()
	if err != nil {
		// любая ошибка конфигурации фатальна до первого сетевого вызова
		log := logger.NewLogger("ingestor", false)
		log.Error().Err(err).Str("failure_kind", client.FailureKindConfiguration).Msg("configuration error")
		os.Exit(1)
	}

	log := logger.NewLogger("ingestor", cfg.App.Verbose)

	ingestionAdapter, err := adapter.NewHTTPIngestionAdapter(cfg.Credentials, cfg.Ingestion, log)
	if err != nil {
		log.Error().Err(err).Str("failure_kind", client.FailureKindConfiguration).Msg("create ingestion adapter")
		os.Exit(1)
	}

	// Журнал опционален: без него запуск продолжается, но с предупреждением.
	var journalRepo store.JournalRepository
	journalDB, err := store.NewJournalDB(cfg.Storage.JournalDSN, log)
	if err != nil {
		log.Warn().Err(err).Msg("journal warning: open journal database")
	} else {
		defer journalDB.Close()
		journalRepo = store.NewJournalRepository(journalDB, log)
	}

	services := service.NewIngestorServices(ingestionAdapter, journalRepo, log)

	app, err := client.NewApp(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init ingestor app error")
	}

	if err = app.Run(context.Background()); err != nil {
		if _, known := client.FailureKind(err); known {
			// уже зафиксировано оркестратором
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("ingestor run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
