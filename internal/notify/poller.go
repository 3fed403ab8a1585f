package notify

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

const DefaultInterval = 15 * time.Second

// FetchFunc loads the current status of every request.
type FetchFunc func(ctx context.Context) ([]Status, error)

// Alerter receives the changes found on a tick and is told when the
// operator has acknowledged them.
type Alerter interface {
	Alert(changes []Change)
	Clear()
}

// Poller fetches statuses on an interval while visible, never running two
// fetches at once. A tick that finds the previous fetch still running is
// skipped, not queued.
type Poller struct {
	fetch    FetchFunc
	alerter  Alerter
	interval time.Duration
	detector *Detector

	visible  atomic.Bool
	inFlight atomic.Bool
	pending  atomic.Bool

	mu      sync.Mutex
	cancel  context.CancelFunc
	running sync.WaitGroup
}

// NewPoller creates a visible, stopped poller. A non-positive interval uses
// DefaultInterval.
func NewPoller(fetch FetchFunc, alerter Alerter, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	p := &Poller{
		fetch:    fetch,
		alerter:  alerter,
		interval: interval,
		detector: NewDetector(),
	}
	p.visible.Store(true)
	return p
}

// Start begins polling until ctx is done or Stop is called. The first tick
// runs immediately. Calling Start on a running poller does nothing.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.running.Add(1)
	go func() {
		defer p.running.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.TryTick(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.TryTick(ctx)
			}
		}
	}()
}

// Stop halts polling and waits for an in-flight fetch to return. The next
// Start seeds the observed map again.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	p.running.Wait()
	p.detector.Reset()
}

// SetVisible pauses (false) or resumes (true) polling without stopping it.
func (p *Poller) SetVisible(visible bool) {
	p.visible.Store(visible)
}

// Acknowledge clears the pending alert indicator.
func (p *Poller) Acknowledge() {
	if p.pending.CompareAndSwap(true, false) {
		p.alerter.Clear()
	}
}

// Pending reports whether an alert is waiting to be acknowledged.
func (p *Poller) Pending() bool {
	return p.pending.Load()
}

// TryTick starts a fetch unless the poller is hidden or a fetch is already
// running. It reports whether a fetch was started.
func (p *Poller) TryTick(ctx context.Context) bool {
	if !p.visible.Load() {
		return false
	}
	if !p.inFlight.CompareAndSwap(false, true) {
		return false
	}

	p.running.Add(1)
	go func() {
		defer p.running.Done()
		defer p.inFlight.Store(false)
		p.poll(ctx)
	}()
	return true
}

func (p *Poller) poll(ctx context.Context) {
	statuses, err := p.fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("ERROR: poll request statuses: %v", err)
		}
		return
	}

	changes := p.detector.Observe(statuses)
	if len(changes) == 0 {
		return
	}
	p.pending.Store(true)
	p.alerter.Alert(changes)
}
