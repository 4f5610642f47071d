package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthWorker logs CPU, memory and status of the current process on a
// ticker. Purely observational, it shares nothing with the message board.
type HealthWorker struct {
	log      *slog.Logger
	interval time.Duration
}

func NewHealthWorker(log *slog.Logger, interval time.Duration) *HealthWorker {
	return &HealthWorker{log: log, interval: interval}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	w.log.Info("Starting health worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			memInfo, err := p.MemoryInfo()
			if err != nil {
				w.log.Error("Failed to collect memory stats", "err", err)
				continue
			}
			cpuPercent, err := p.CPUPercent()
			if err != nil {
				w.log.Error("Failed to collect cpu stats", "err", err)
				continue
			}
			status, err := p.Status()
			if err != nil {
				w.log.Error("Failed to collect process status", "err", err)
				continue
			}

			w.log.Debug("Process health",
				"cpu_percent", cpuPercent,
				"ram_mb", memInfo.RSS/1024/1024,
				"status", status,
			)
		}
	}
}
