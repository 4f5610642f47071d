package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"message-lab/domain"
	"message-lab/repositories"
)

const statsTimeLayout = "2006-01-02 15:04:05"

// StatisticsWorker reports aggregate counts of the message board on a
// fixed-delay schedule: the interval is measured from the end of one
// report to the start of the next, so a slow cycle pushes the following
// one back instead of overlapping with it.
type StatisticsWorker struct {
	log          *slog.Logger
	messages     repositories.IMessageRepository
	interval     time.Duration
	recentWindow int // days
}

func NewStatisticsWorker(
	log *slog.Logger,
	messages repositories.IMessageRepository,
	interval time.Duration,
	recentWindowDays int,
) *StatisticsWorker {
	return &StatisticsWorker{
		log:          log,
		messages:     messages,
		interval:     interval,
		recentWindow: recentWindowDays,
	}
}

// Run executes the reporting loop until context cancellation.
// The timer is re-armed only after report returns, which is what gives
// the fixed-delay behavior.
func (w *StatisticsWorker) Run(ctx context.Context) error {
	w.log.Info("Starting statistics worker", "interval", w.interval, "recent_window_days", w.recentWindow)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.interval):
			w.report()
		}
	}
}

// report computes one snapshot and logs it as a human-readable block.
// A failing store query is logged and swallowed: a missed report must
// never break the cadence.
func (w *StatisticsWorker) report() {
	w.log.Info("========================================")
	w.log.Info("Message Statistics Task - Executing")
	w.log.Info("========================================")

	stats, err := w.collect(time.Now().UTC())
	if err != nil {
		w.log.Error("Error executing statistics task", "err", err)
		w.log.Info("========================================")
		return
	}

	w.log.Info(fmt.Sprintf("Execution Time: %s", stats.At.Format(statsTimeLayout)))
	w.log.Info(fmt.Sprintf("Total Messages: %d", stats.Total))
	w.log.Info(fmt.Sprintf("Active Messages: %d", stats.Active))
	w.log.Info(fmt.Sprintf("Inactive Messages: %d", stats.Inactive))
	w.log.Info(fmt.Sprintf("Messages from last %d days: %d", w.recentWindow, stats.Recent))
	w.log.Info(fmt.Sprintf("Next Execution: %s", stats.NextRun.Format(statsTimeLayout)))
	w.log.Info("Task completed successfully")
	w.log.Info("========================================")
}

func (w *StatisticsWorker) collect(at time.Time) (domain.BoardStatistics, error) {
	all, err := w.messages.ListAll()
	if err != nil {
		return domain.BoardStatistics{}, err
	}
	active, err := w.messages.CountActive()
	if err != nil {
		return domain.BoardStatistics{}, err
	}
	recent, err := w.messages.FindRecent(w.recentWindow)
	if err != nil {
		return domain.BoardStatistics{}, err
	}

	return domain.BoardStatistics{
		At:       at,
		Total:    len(all),
		Active:   active,
		Inactive: len(all) - active,
		Recent:   len(recent),
		NextRun:  at.Add(w.interval),
	}, nil
}
