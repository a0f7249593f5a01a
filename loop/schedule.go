package loop

import (
	"sync"
	"time"
)

// Ticker is the part of time.Ticker a Schedule needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

// NewTicker wraps time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// Schedule runs a callback once per interval on its own goroutine until stopped.
type Schedule struct {
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// Every starts a schedule calling fn once per interval. Calls to fn never overlap.
func Every(interval time.Duration, newTicker TickerFunc, fn func()) *Schedule {
	if newTicker == nil {
		newTicker = NewTicker
	}
	s := &Schedule{quit: make(chan struct{})}
	ticker := newTicker(interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-s.quit:
				return
			case <-ticker.C():
				select {
				case <-s.quit:
					return
				default:
				}
				fn()
			}
		}
	}()
	return s
}

// Stop cancels the schedule. It is safe to call more than once and from fn.
func (s *Schedule) Stop() {
	s.once.Do(func() {
		close(s.quit)
	})
}

// Wait blocks until the schedule goroutine has exited. Do not call it from fn.
func (s *Schedule) Wait() {
	s.wg.Wait()
}
