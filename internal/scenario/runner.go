package scenario

import (
	"context"
	"fmt"
	"io"

	"github.com/povarna/dlist/internal/config"
	"github.com/povarna/dlist/internal/executor"
	"github.com/povarna/dlist/internal/models"
	"github.com/rs/zerolog"
)

type Runner struct {
	executor *executor.Executor
	logger   *zerolog.Logger
}

func NewRunner(exec *executor.Executor, logger *zerolog.Logger) *Runner {
	return &Runner{
		executor: exec,
		logger:   logger,
	}
}

// Run executes the scenario steps in order and writes the rendered list to w
// for every render step.
func (r *Runner) Run(ctx context.Context, sc *config.Scenario, w io.Writer) error {
	r.logger.Info().
		Str("scenario", sc.Name).
		Int("steps", len(sc.Steps)).
		Msg("running scenario")

	for i, cmd := range sc.Commands() {
		result, err := r.executor.Execute(ctx, cmd)
		if err != nil {
			if !sc.ContinueOnError || ctx.Err() != nil {
				return fmt.Errorf("step %d (%s): %w", i, cmd.Op, err)
			}
			r.logger.Warn().Err(err).Int("step", i).Str("op", string(cmd.Op)).Msg("step failed, continuing")
			continue
		}

		if cmd.Op == models.OpRender {
			if _, err := fmt.Fprintln(w, result.Rendered); err != nil {
				return err
			}
		}
	}

	r.logger.Info().Str("scenario", sc.Name).Msg("scenario complete")
	return nil
}
