package engine

import (
	"sync/atomic"
	"time"
)

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. Returns false if it already ran or was stopped.
	Stop() bool
}

// Scheduler runs fn after d on the party's own goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// loopScheduler переносит срабатывание таймера в очередь сессии,
// поэтому колбэк никогда не трогает состояние из чужой горутины.
type loopScheduler struct {
	post func(fn func()) bool
}

type loopTimer struct {
	t       *time.Timer
	stopped atomic.Bool
	fired   atomic.Bool
}

func (l *loopScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		l.post(func() {
			// Таймер могли остановить, пока колбэк стоял в очереди
			if lt.stopped.Load() {
				return
			}
			lt.fired.Store(true)
			fn()
		})
	})
	return lt
}

func (t *loopTimer) Stop() bool {
	if t.fired.Load() || t.stopped.Swap(true) {
		return false
	}
	t.t.Stop()
	return true
}

// countdown is a per-unit ticking timer used for turns and fight rounds.
// Pause keeps the remaining units so Resume continues where it left off.
type countdown struct {
	sched Scheduler
	unit  time.Duration

	onTick   func(remaining int)
	onExpire func()

	remaining int
	running   bool
	paused    bool
	timer     Timer
}

func newCountdown(sched Scheduler, unit time.Duration, onTick func(int), onExpire func()) *countdown {
	return &countdown{sched: sched, unit: unit, onTick: onTick, onExpire: onExpire}
}

// Start (re)arms the countdown with units left.
func (c *countdown) Start(units int) {
	c.Stop()
	c.remaining = units
	c.running = true
	c.onTick(c.remaining)
	c.schedule()
}

func (c *countdown) Pause() {
	if !c.running {
		return
	}
	c.cancel()
	c.running = false
	c.paused = true
}

func (c *countdown) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.running = true
	c.onTick(c.remaining)
	c.schedule()
}

func (c *countdown) Stop() {
	c.cancel()
	c.running = false
	c.paused = false
}

func (c *countdown) Remaining() int { return c.remaining }
func (c *countdown) Running() bool  { return c.running }

func (c *countdown) schedule() {
	c.timer = c.sched.AfterFunc(c.unit, c.tick)
}

func (c *countdown) cancel() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *countdown) tick() {
	if !c.running {
		return
	}
	c.timer = nil
	c.remaining--
	if c.remaining <= 0 {
		c.running = false
		c.onExpire()
		return
	}
	c.onTick(c.remaining)
	c.schedule()
}
