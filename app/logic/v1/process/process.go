package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/safe"
)

type Process struct {
	cron *cron.Cron
	core *core.Core
}

func NewProcess(core *core.Core) *Process {
	return &Process{
		cron: cron.New(),
		core: core,
	}
}

// Start registers the periodic jobs and runs the scheduler in the
// background.
func (p *Process) Start() error {
	_, err := p.cron.AddFunc("17 3 * * *", func() {
		safe.Run(func() {
			p.runLocked("subscription_reconcile", time.Minute*30, NewSubscriptionReconcileTask(p.core).Run)
		})
	})
	if err != nil {
		return err
	}

	_, err = p.cron.AddFunc("43 4 * * *", func() {
		safe.Run(func() {
			p.runLocked("usage_reconcile", time.Minute*30, NewUsageReconcileTask(p.core).Run)
		})
	})
	if err != nil {
		return err
	}

	p.cron.Start()
	return nil
}

func (p *Process) Stop() {
	p.cron.Stop()
}

func (p *Process) runLocked(name string, timeout time.Duration, task func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	locked, err := p.core.TryLock(ctx, "process:"+name)
	if err != nil || !locked {
		return
	}

	start := time.Now()
	if err := task(ctx); err != nil {
		slog.Error("background task failed",
			slog.String("task", name),
			slog.String("error", err.Error()))
		return
	}
	slog.Info("background task done",
		slog.String("task", name),
		slog.Duration("cost", time.Since(start)))
}
