package commands

import (
	"errors"

	"github.com/beetlebot/flyguide/internal/adapters/live"
	"github.com/beetlebot/flyguide/internal/adapters/mock"
	"github.com/beetlebot/flyguide/internal/config"
	"github.com/beetlebot/flyguide/internal/core"
	"github.com/beetlebot/flyguide/internal/history"
	"github.com/beetlebot/flyguide/internal/logging"
	"github.com/beetlebot/flyguide/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrReported marks a failure whose JSON envelope was already printed.
var ErrReported = errors.New("error already reported")

type env struct {
	cfg    *config.Config
	logger *logrus.Logger
	router *core.Router
}

func setup(cmd *cobra.Command) *env {
	modeFlag, _ := cmd.Flags().GetString("mode")
	cfg := config.Load().WithMode(modeFlag)
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.JSON)
	return &env{cfg: cfg, logger: logger, router: buildRouter(cfg, logger)}
}

func buildRouter(cfg *config.Config, logger *logrus.Logger) *core.Router {
	router := core.NewRouter(cfg)

	router.Register(mock.NewSearchProvider())
	router.Register(live.NewGeminiProvider(cfg, logger))

	return router
}

func (e *env) pipeline() (*core.Pipeline, error) {
	provider, err := e.router.Active()
	if err != nil {
		return nil, err
	}
	e.logger.WithField("provider", provider.Name()).Debug("provider selected")
	return core.NewPipeline(provider, e.logger), nil
}

func (e *env) historyStore() (*history.FileStore, error) {
	return history.Open(e.cfg.History.Path, e.cfg.History.Limit)
}

func emit(cmd *cobra.Command, v any) error {
	if compact, _ := cmd.Flags().GetBool("compact"); compact {
		return output.JSONCompact(v)
	}
	return output.JSON(v)
}

// fail prints the error envelope and returns ErrReported so the process
// exits non-zero without printing twice.
func fail(err error) error {
	output.Error(err)
	return ErrReported
}
