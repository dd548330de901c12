package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/povarna/dlist/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Summary counts results by outcome.
type Summary struct {
	Total     int                      `json:"total"`
	Succeeded int                      `json:"succeeded"`
	Failed    int                      `json:"failed"`
	ByOp      map[models.Operation]int `json:"by_op"`
	ByError   map[models.ErrorKind]int `json:"by_error,omitempty"`
	Lists     []string                 `json:"lists"`
}

type Writer struct {
	out     io.Writer
	format  string
	encoder *json.Encoder
	summary Summary
	lists   map[string]struct{}
	logger  *zerolog.Logger
}

func NewWriter(out io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatJSONL && format != FormatSummary {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return &Writer{
		out:     out,
		format:  format,
		encoder: json.NewEncoder(out),
		summary: Summary{
			ByOp:    make(map[models.Operation]int),
			ByError: make(map[models.ErrorKind]int),
		},
		lists:  make(map[string]struct{}),
		logger: logger,
	}, nil
}

func (w *Writer) Write(result models.Result) error {
	w.record(result)

	if w.format != FormatJSONL {
		return nil
	}
	return w.encoder.Encode(result)
}

// Close flushes the summary when the writer is in summary format.
func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}

	w.summary.Lists = make([]string, 0, len(w.lists))
	for name := range w.lists {
		w.summary.Lists = append(w.summary.Lists, name)
	}
	sort.Strings(w.summary.Lists)

	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(w.summary)
}

func (w *Writer) Summary() Summary {
	return w.summary
}

func (w *Writer) record(result models.Result) {
	w.summary.Total++
	if result.Op != "" {
		w.summary.ByOp[result.Op]++
	}
	if result.List != "" {
		w.lists[result.List] = struct{}{}
	}

	if result.ErrorKind != "" {
		w.summary.Failed++
		w.summary.ByError[result.ErrorKind]++
		w.logger.Debug().Str("id", result.ID).Str("kind", string(result.ErrorKind)).Msg("Failed result recorded")
		return
	}
	w.summary.Succeeded++
}
