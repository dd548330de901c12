package batch

import (
	"context"
	"fmt"

	"github.com/povarna/dlist/internal/executor"
	"github.com/povarna/dlist/internal/models"
	"github.com/rs/zerolog"
)

// Processor applies records in input order. Commands against one list depend
// on what ran before them, so there is no fan out.
type Processor struct {
	executor *executor.Executor
	logger   *zerolog.Logger
}

func NewProcessor(exec *executor.Executor, logger *zerolog.Logger) *Processor {
	return &Processor{
		executor: exec,
		logger:   logger,
	}
}

func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.Result {
	out := make(chan models.Result)

	go func() {
		defer close(out)

		for _, record := range records {
			result := p.process(ctx, record)

			select {
			case out <- result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (p *Processor) process(ctx context.Context, record InputRecord) models.Result {
	if record.Error != nil {
		return models.Result{
			ID:        lineID(record),
			Error:     record.Error.Error(),
			ErrorKind: models.ErrorKindInvalidCommand,
		}
	}

	cmd := record.Command
	if cmd.ID == "" {
		cmd.ID = lineID(record)
	}

	// Failures are carried in the result.
	result, _ := p.executor.Execute(ctx, cmd)
	return result
}

func lineID(record InputRecord) string {
	return fmt.Sprintf("line-%d", record.LineNumber)
}
