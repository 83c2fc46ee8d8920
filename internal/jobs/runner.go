package jobs

import (
	"context"
	"time"
)

type Job func(ctx context.Context) error

type Runner struct {
	ctx context.Context
}

func New(ctx context.Context) *Runner { return &Runner{ctx: ctx} }

func (r *Runner) Every(interval time.Duration, name string, fn Job) {
	r.run(interval, name, fn, false)
}

// EveryNow runs fn once immediately, then on the interval. The warm job
// uses it so caches are hot right after startup.
func (r *Runner) EveryNow(interval time.Duration, name string, fn Job) {
	r.run(interval, name, fn, true)
}

func (r *Runner) run(interval time.Duration, name string, fn Job, immediate bool) {
	go func() {
		if immediate {
			r.tick(name, fn)
		}
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-r.ctx.Done():
				return
			case <-t.C:
				r.tick(name, fn)
			}
		}
	}()
}

func (r *Runner) tick(name string, fn Job) {
	start := time.Now()
	if err := fn(r.ctx); err != nil {
		jobErrors.WithLabelValues(name).Inc()
	}
	jobRuns.WithLabelValues(name).Inc()
	jobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}
