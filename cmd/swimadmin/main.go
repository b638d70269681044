package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/swimadmin/internal/api"
	"github.com/alexanderramin/swimadmin/internal/cli"
	"github.com/alexanderramin/swimadmin/internal/config"
	"github.com/alexanderramin/swimadmin/internal/db"
	"github.com/alexanderramin/swimadmin/internal/repository"
	"github.com/alexanderramin/swimadmin/internal/service"
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

	// The store lives for the process only.
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	programRepo := repository.NewSQLiteProgramRepo(database)
	levelRepo := repository.NewSQLiteLevelRepo(database)
	skillRepo := repository.NewSQLiteSkillRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	mapRepo := repository.NewSQLiteLevelMapRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case events go to the log and to the metrics registry. The root
	// command builds the logger once flags are parsed.
	var app *cli.App
	observer := api.MultiObserver{
		service.NewLogUseCaseObserver(func() *slog.Logger { return app.Logger }),
		api.MetricsObserver{},
	}

	app = &cli.App{
		Programs:  service.NewProgramService(programRepo),
		Levels:    service.NewLevelService(levelRepo, programRepo),
		Skills:    service.NewSkillService(skillRepo, levelRepo, uow),
		Progress:  service.NewProgressService(progressRepo, skillRepo),
		Maps:      service.NewLevelMapService(levelRepo, skillRepo, mapRepo, uow, observer),
		Dashboard: service.NewDashboardService(programRepo, levelRepo, skillRepo, progressRepo),
		Seed:      service.NewSeedService(programRepo, uow, observer),
		Config:    cfg,
		LogSink:   &config.LogSink{},
	}

	// With no subcommand, an interactive terminal gets the TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
