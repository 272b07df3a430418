package scheduler

import (
	"context"
	"log"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then on a fixed interval until the
// context is done. A failing or panicking task loses one cycle, never
// the loop.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	run := func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[%s] panic recovered: %v", name, r)
			}
		}()
		if err := task(ctx); err != nil {
			log.Printf("[%s] error: %v", name, err)
		}
	}

	run()

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
