package app

import (
	"context"

	"github.com/doeshing/macfix/internal/application/batch"
	"github.com/doeshing/macfix/internal/application/dispatch"
	"github.com/doeshing/macfix/internal/application/scan"
	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/infrastructure/actions"
	"github.com/doeshing/macfix/internal/infrastructure/config"
	"github.com/doeshing/macfix/internal/infrastructure/executor"
	"github.com/doeshing/macfix/internal/infrastructure/history"
	"github.com/doeshing/macfix/internal/infrastructure/probes"
	"github.com/doeshing/macfix/internal/infrastructure/transcript"
	"github.com/doeshing/macfix/internal/pkg/logger"
	"github.com/doeshing/macfix/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Scanner      *scan.Service
	Dispatcher   *dispatch.Service
	Batch        *batch.Service
	HistoryStore ports.HistoryStore
	Logger       ports.Logger
}

// BuildContainer constructs the dependency graph. The prompter is attached
// later by the CLI layer, which owns the terminal.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.Logging.Verbose {
		verbose = true
	}

	log := logger.NewStd(verbose)
	runner := executor.NewLocalRunner()

	scanner := &scan.Service{
		Probes: probes.DefaultSet(runner, cfg),
		Logger: log,
	}

	var store ports.HistoryStore
	if cfg.History.Enabled {
		store = history.NewSQLiteStore()
	}

	var trans ports.Transcript = transcript.Nop{}
	if cfg.Logging.TranscriptPath != "" {
		trans = transcript.NewFile(cfg.Logging.TranscriptPath)
	}

	dispatcher := dispatch.New(actions.All(runner, cfg))
	dispatcher.Logger = log
	dispatcher.Transcript = trans
	dispatcher.History = store
	dispatcher.ConfirmDestructive = cfg.Execution.ConfirmDestructive

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Scanner:      scanner,
		Dispatcher:   dispatcher,
		Batch: &batch.Service{
			Scanner:    scanner,
			Dispatcher: dispatcher,
			Logger:     log,
		},
		HistoryStore: store,
		Logger:       log,
	}, nil
}
