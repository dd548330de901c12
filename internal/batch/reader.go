package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/dlist/internal/models"
	"github.com/rs/zerolog"
)

// MaxLineSize bounds a single JSONL line.
const MaxLineSize = 1 << 20

// InputRecord is one line of a JSONL command file. Error is set when the line
// could not be decoded.
type InputRecord struct {
	LineNumber int
	Command    models.Command
	Error      error
}

type Reader struct {
	source io.Reader
	logger *zerolog.Logger
}

func NewReader(source io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		source: source,
		logger: logger,
	}
}

// ReadAll streams records in file order. Blank lines are skipped. A read
// failure, such as a line over MaxLineSize, ends the stream with an error
// record. The channel is closed at end of input or when ctx is cancelled.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.source)
		scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			if err := json.Unmarshal([]byte(line), &record.Command); err != nil {
				record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
				r.logger.Debug().Err(err).Int("line", lineNumber).Msg("Failed to parse record")
			}

			select {
			case out <- record:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Int("line", lineNumber+1).Msg("Failed to read input")

			record := InputRecord{
				LineNumber: lineNumber + 1,
				Error:      fmt.Errorf("line %d: %w", lineNumber+1, err),
			}
			select {
			case out <- record:
			case <-ctx.Done():
			}
		}
	}()

	return out
}
