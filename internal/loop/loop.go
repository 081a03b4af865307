// Package loop runs cancellable periodic work bound to the lifetime of the
// component that started it.
package loop

import (
	"context"
	"sync"
	"time"
)

// Task is a single running loop.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func start(ctx context.Context, run func(ctx context.Context)) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer cancel()
		run(ctx)
	}()
	return t
}

// Every calls fn once per interval until the task is cancelled.
func Every(ctx context.Context, interval time.Duration, fn func()) *Task {
	return start(ctx, func(ctx context.Context) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn()
			}
		}
	})
}

// Frames samples fn at the given rate. The loop ends when fn returns false
// or the task is cancelled.
func Frames(ctx context.Context, interval time.Duration, fn func(now time.Time) bool) *Task {
	return start(ctx, func(ctx context.Context) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if !fn(now) {
					return
				}
			}
		}
	})
}

// After calls fn once after d unless cancelled first.
func After(ctx context.Context, d time.Duration, fn func()) *Task {
	return start(ctx, func(ctx context.Context) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
			fn()
		}
	})
}

// Cancel asks the task to stop without waiting. It is safe to call from
// inside the task's own callback.
func (t *Task) Cancel() {
	if t != nil {
		t.cancel()
	}
}

// Stop cancels the task and waits for its goroutine to exit.
func (t *Task) Stop() {
	if t == nil {
		return
	}
	t.cancel()
	<-t.done
}

// Done is closed once the task goroutine has exited.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Group owns a set of tasks that are torn down together.
type Group struct {
	mu    sync.Mutex
	tasks []*Task
}

// Add registers t with the group and returns it.
func (g *Group) Add(t *Task) *Task {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tasks = append(g.tasks, t)
	return t
}

// Cancel cancels every task without waiting.
func (g *Group) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, t := range g.tasks {
		t.Cancel()
	}
}

// Stop cancels every task, waits for all of them and empties the group.
func (g *Group) Stop() {
	g.mu.Lock()
	tasks := g.tasks
	g.tasks = nil
	g.mu.Unlock()
	for _, t := range tasks {
		t.Stop()
	}
}
