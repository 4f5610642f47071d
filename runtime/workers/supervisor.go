package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"message-lab/contract"
	"message-lab/errors"
)

// Supervisor owns the lifecycle of the background workers.
// Each worker runs in its own goroutine; a panic or an error is absorbed
// here and the worker is restarted after a short delay, so one bad cycle
// never kills the whole background schedule.
type Supervisor struct {
	Cancel          context.CancelFunc
	wg              *sync.WaitGroup
	log             *slog.Logger
	restartInterval time.Duration
	workers         []contract.Worker
}

func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, restartInterval: restartInterval}
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run starts every registered worker and blocks until all of them finish.
// The supervised context is derived from the parent: cancelling the parent
// stops the children, and Stop only cancels the children.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

// Start runs one worker under supervision. A worker that returns nil has
// finished its job and is never restarted; a panic or a non-nil error
// triggers a restart once the restart interval has elapsed.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Info(fmt.Sprintf("Stopping : %s", workerName))
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = errors.ErrWorkerPanic
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				s.log.Info(fmt.Sprintf("Worker finished : %s", workerName))
				return
			}

			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.restartInterval):
			}
		}
	}()
}

func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
