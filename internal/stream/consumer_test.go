package stream

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeConsumer struct {
	setupErr  error
	started   chan struct{}
	finished  atomic.Bool
	stoppedOK atomic.Bool
	stopped   atomic.Bool
}

func (f *fakeConsumer) Setup(ctx context.Context) error {
	return f.setupErr
}

func (f *fakeConsumer) Start(ctx context.Context) error {
	close(f.started)
	<-ctx.Done()

	// Simulates a message still being processed after cancellation.
	time.Sleep(50 * time.Millisecond)
	f.finished.Store(true)
	return ctx.Err()
}

func (f *fakeConsumer) Stop() error {
	f.stoppedOK.Store(f.finished.Load())
	f.stopped.Store(true)
	return nil
}

func TestRun_StopsAfterStartReturns(t *testing.T) {
	logger := zerolog.Nop()
	consumer := &fakeConsumer{started: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-consumer.started
		cancel()
	}()

	if err := Run(ctx, consumer, &logger); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !consumer.stopped.Load() {
		t.Fatal("Expected Stop to be called")
	}
	if !consumer.stoppedOK.Load() {
		t.Error("Stop was called before Start returned")
	}
}

func TestRun_SetupError(t *testing.T) {
	logger := zerolog.Nop()
	consumer := &fakeConsumer{setupErr: errors.New("no group"), started: make(chan struct{})}

	if err := Run(context.Background(), consumer, &logger); err == nil || err.Error() != "no group" {
		t.Errorf("Expected setup error, got %v", err)
	}
	if consumer.stopped.Load() {
		t.Error("Stop should not be called when Setup fails")
	}
}
