package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/farmtrip/internal/cli"
	"github.com/alexanderramin/farmtrip/internal/config"
	"github.com/alexanderramin/farmtrip/internal/db"
	"github.com/alexanderramin/farmtrip/internal/intelligence"
	"github.com/alexanderramin/farmtrip/internal/llm"
	"github.com/alexanderramin/farmtrip/internal/repository"
	"github.com/alexanderramin/farmtrip/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	vocab, err := config.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	candidateRepo := repository.NewSQLiteCandidateRepo(database)
	itineraryRepo := repository.NewSQLiteItineraryRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Slot extraction runs on the rule extractor unless the LLM is enabled.
	llmCfg := llm.LoadConfig()
	var llmClient llm.LLMClient
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
	}
	slots := intelligence.NewSlotService(
		llmClient,
		intelligence.DefaultConfirmationPolicy(llmCfg.ConfidenceThreshold),
		intelligence.NewRuleSlotExtractor(vocab),
	)

	app := &cli.App{
		Catalog:   service.NewCatalogService(candidateRepo, uow, observers...),
		Recommend: service.NewRecommendService(candidateRepo, vocab, observers...),
		Schedules: service.NewScheduleService(candidateRepo, itineraryRepo, uow, service.ScheduleOptions{
			Vocabulary:          vocab,
			DefaultDurationDays: cfg.DefaultDurationDays,
			Slots:               slots,
		}, observers...),
		Calendars: service.NewCalendarService(itineraryRepo, observers...),
	}

	// Detect interactive terminal for the picker and pager.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
