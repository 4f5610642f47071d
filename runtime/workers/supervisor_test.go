package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"message-lab/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(log, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	go sup.Add(workerMock).Run(ctx)

	// Waiting for panics and restarts
	time.Sleep(400 * time.Millisecond)

	req.GreaterOrEqual(calls.Load(), int32(2))
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker running only once
	workerMock.EXPECT().
		Run(gomock.Any()).
		Return(nil).
		Times(1)

	sup := NewSupervisor(log, 50*time.Millisecond)

	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
		// The supervisor saw a clean exit and stopped without restarting
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_StopCancelsWorkers(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workerMock := mocks.NewMockWorker(ctrl)
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}).
		Times(1)

	sup := NewSupervisor(log, 50*time.Millisecond)

	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	// Let the worker start before cancelling it
	time.Sleep(50 * time.Millisecond)
	sup.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Stop should terminate the supervised workers")
	}
}
