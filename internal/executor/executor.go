package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/povarna/dlist/internal/dlist"
	"github.com/povarna/dlist/internal/models"
	"github.com/povarna/dlist/internal/store"
	"github.com/rs/zerolog"
)

var ErrInvalidCommand = errors.New("invalid command")

// Executor applies commands to the lists of a store. Commands run one at a
// time: the lists do no locking of their own.
type Executor struct {
	mu     sync.Mutex
	lists  store.Store
	logger *zerolog.Logger
}

func NewExecutor(lists store.Store, logger *zerolog.Logger) *Executor {
	return &Executor{
		lists:  lists,
		logger: logger,
	}
}

func (e *Executor) Names() []string {
	return e.lists.Names()
}

func (e *Executor) Execute(ctx context.Context, cmd models.Command) (models.Result, error) {
	result := models.Result{
		ID:   cmd.ID,
		List: cmd.List,
		Op:   cmd.Op,
	}

	if err := ctx.Err(); err != nil {
		return e.fail(result, err)
	}
	if err := Validate(cmd); err != nil {
		return e.fail(result, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if cmd.Op == models.OpDrop {
		if !e.lists.Delete(cmd.List) {
			return e.fail(result, fmt.Errorf("%w: %s", store.ErrListNotFound, cmd.List))
		}
		e.logger.Debug().Str("list", cmd.List).Msg("list dropped")
		return result, nil
	}

	seq, err := e.lookup(cmd)
	if err != nil {
		return e.fail(result, err)
	}

	err = e.apply(seq, cmd, &result)
	describe(seq, &result)
	if err != nil {
		return e.fail(result, err)
	}

	e.logger.Debug().
		Str("list", cmd.List).
		Str("op", string(cmd.Op)).
		Int("length", result.Length).
		Msg("command applied")

	return result, nil
}

func (e *Executor) lookup(cmd models.Command) (store.Sequence, error) {
	if cmd.Op.Inserts() {
		return e.lists.Create(cmd.List), nil
	}

	seq, ok := e.lists.Get(cmd.List)
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrListNotFound, cmd.List)
	}
	return seq, nil
}

func (e *Executor) apply(seq store.Sequence, cmd models.Command, result *models.Result) error {
	switch cmd.Op {
	case models.OpCreate, models.OpRender:
	case models.OpAddFront, models.OpPush:
		seq.AddFront(*cmd.Value)
	case models.OpAddBack, models.OpEnqueue:
		seq.AddBack(*cmd.Value)
	case models.OpRemoveFront, models.OpPop, models.OpDequeue:
		value, err := seq.RemoveFront()
		if err != nil {
			return err
		}
		result.Value = &value
	case models.OpDeleteValue:
		return seq.DeleteByValue(*cmd.Value)
	case models.OpDeleteAt:
		return seq.DeleteAt(*cmd.Index)
	case models.OpSortedInsert:
		seq.SortedInsert(*cmd.Value)
	case models.OpReverse:
		seq.Reverse()
	case models.OpRemoveDuplicates:
		seq.RemoveDuplicates()
	case models.OpClone:
		e.lists.Put(cmd.Target, seq.Clone())
	case models.OpContains:
		found := seq.Contains(*cmd.Value)
		result.Found = &found
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidCommand, cmd.Op)
	}

	return nil
}

func (e *Executor) fail(result models.Result, err error) (models.Result, error) {
	result.Error = err.Error()
	result.ErrorKind = KindOf(err)

	e.logger.Warn().
		Err(err).
		Str("list", result.List).
		Str("op", string(result.Op)).
		Str("kind", string(result.ErrorKind)).
		Msg("command failed")

	return result, err
}

func describe(seq store.Sequence, result *models.Result) {
	result.Rendered = seq.String()
	result.Length = seq.Len()
	if head, ok := seq.Head(); ok {
		result.Head = &head
	}
	if tail, ok := seq.Tail(); ok {
		result.Tail = &tail
	}
}

// Validate checks that a command carries everything its op reads.
func Validate(cmd models.Command) error {
	if cmd.List == "" {
		return fmt.Errorf("%w: list name is required", ErrInvalidCommand)
	}
	if !cmd.Op.Valid() {
		return fmt.Errorf("%w: unknown op %q", ErrInvalidCommand, cmd.Op)
	}
	if cmd.Op.NeedsValue() && cmd.Value == nil {
		return fmt.Errorf("%w: %s requires a value", ErrInvalidCommand, cmd.Op)
	}
	if cmd.Op == models.OpDeleteAt && cmd.Index == nil {
		return fmt.Errorf("%w: %s requires an index", ErrInvalidCommand, cmd.Op)
	}
	if cmd.Op == models.OpClone && (cmd.Target == "" || cmd.Target == cmd.List) {
		return fmt.Errorf("%w: clone requires a target other than %q", ErrInvalidCommand, cmd.List)
	}
	return nil
}

func KindOf(err error) models.ErrorKind {
	switch {
	case errors.Is(err, dlist.ErrEmptyCollection):
		return models.ErrorKindEmptyCollection
	case errors.Is(err, dlist.ErrNotFound):
		return models.ErrorKindNotFound
	case errors.Is(err, dlist.ErrIndexOutOfRange):
		return models.ErrorKindIndexOutOfRange
	case errors.Is(err, store.ErrListNotFound):
		return models.ErrorKindListNotFound
	case errors.Is(err, ErrInvalidCommand):
		return models.ErrorKindInvalidCommand
	default:
		return models.ErrorKindInternal
	}
}
