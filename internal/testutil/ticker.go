package testutil

import (
	"context"
	"sync"
	"time"
)

// FakeTicker is a manually fired ticker for tests.
type FakeTicker struct {
	Interval time.Duration

	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

// C returns the tick channel.
func (t *FakeTicker) C() <-chan time.Time {
	return t.ch
}

// Stop marks the ticker as stopped. A stopped ticker never fires again.
func (t *FakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Stopped reports whether Stop was called.
func (t *FakeTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Fire delivers one tick and reports whether it was received before ctx ended.
func (t *FakeTicker) Fire(ctx context.Context) bool {
	if t.Stopped() {
		return false
	}
	select {
	case t.ch <- time.Now():
		return true
	case <-ctx.Done():
		return false
	}
}

// FakeTickers creates and tracks FakeTicker instances.
type FakeTickers struct {
	mu      sync.Mutex
	tickers []*FakeTicker
}

// New creates a tracked ticker.
func (f *FakeTickers) New(interval time.Duration) *FakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	ticker := &FakeTicker{Interval: interval, ch: make(chan time.Time)}
	f.tickers = append(f.tickers, ticker)
	return ticker
}

// Created returns how many tickers were created.
func (f *FakeTickers) Created() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

// Active returns tickers that have not been stopped.
func (f *FakeTickers) Active() []*FakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	var active []*FakeTicker
	for _, ticker := range f.tickers {
		if !ticker.Stopped() {
			active = append(active, ticker)
		}
	}
	return active
}
