package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alexanderramin/swimadmin/internal/config"
	"github.com/alexanderramin/swimadmin/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by every command.
type App struct {
	Programs  service.ProgramService
	Levels    service.LevelService
	Skills    service.SkillService
	Progress  service.ProgressService
	Maps      service.LevelMapService
	Dashboard service.DashboardService
	Seed      service.SeedService

	Config config.Config

	// LogSink carries all log output; the root command points it at its
	// final destination. Logger writes to it and is built once flags are parsed.
	LogSink *config.LogSink
	Logger  *slog.Logger

	// IsInteractive reports whether stdin is a terminal. When nil the
	// bare command prints help.
	IsInteractive func() bool

	closeLog func() error
}

// NewRootCmd creates the top-level "swimadmin" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "swimadmin",
		Short:         "Swim lesson curriculum admin",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.prepare(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if app.closeLog != nil {
				return app.closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}
	config.BindFlags(root.PersistentFlags(), &app.Config)

	root.AddCommand(
		newTUICmd(app),
		newServeCmd(app),
		newMapCmd(app),
		newSeedCmd(app),
	)
	return root
}

// prepare routes logs and loads the demo data once flags are known. Only
// serve logs to stderr by default; the other commands own the terminal.
func (app *App) prepare(cmd *cobra.Command) error {
	fallback := io.Discard
	if cmd.Name() == "serve" {
		fallback = cmd.ErrOrStderr()
	}
	out, closeFn, err := app.Config.OpenLogOutput(fallback)
	if err != nil {
		return err
	}
	app.closeLog = closeFn
	if app.LogSink == nil {
		app.LogSink = &config.LogSink{}
	}
	app.LogSink.Redirect(out)
	app.Logger = app.Config.NewLogger(app.LogSink)

	if app.Config.Seed && app.Seed != nil {
		if _, err := app.Seed.SeedDemo(cmd.Context()); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
	}
	return nil
}
