package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type recordingAlerter struct {
	mu      sync.Mutex
	alerts  [][]Change
	cleared int
}

func (r *recordingAlerter) Alert(changes []Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, changes)
}

func (r *recordingAlerter) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleared++
}

func (r *recordingAlerter) alertCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.alerts)
}

func sequenceFetch(seq ...[]Status) FetchFunc {
	var mu sync.Mutex
	i := 0
	return func(context.Context) ([]Status, error) {
		mu.Lock()
		defer mu.Unlock()
		s := seq[i]
		if i < len(seq)-1 {
			i++
		}
		return s, nil
	}
}

func TestPoller_AlertsOnceOnViewed(t *testing.T) {
	a := uuid.New()
	alerter := &recordingAlerter{}
	p := NewPoller(sequenceFetch(
		[]Status{{ID: a, Status: "sent"}},
		[]Status{{ID: a, Status: "viewed"}},
		[]Status{{ID: a, Status: "viewed"}},
	), alerter, time.Hour)

	ctx := context.Background()

	p.poll(ctx)
	if alerter.alertCount() != 0 {
		t.Fatalf("tick 1: got %d alerts, want 0", alerter.alertCount())
	}
	if p.Pending() {
		t.Fatal("tick 1: pending should be false")
	}

	p.poll(ctx)
	if alerter.alertCount() != 1 {
		t.Fatalf("tick 2: got %d alerts, want 1", alerter.alertCount())
	}
	if got := alerter.alerts[0]; len(got) != 1 || got[0].ID != a || got[0].To != "viewed" {
		t.Errorf("tick 2 changes: got %+v", got)
	}
	if !p.Pending() {
		t.Fatal("tick 2: pending should be true")
	}

	p.poll(ctx)
	if alerter.alertCount() != 1 {
		t.Fatalf("tick 3: got %d alerts, want 1", alerter.alertCount())
	}
}

func TestPoller_Acknowledge(t *testing.T) {
	a := uuid.New()
	alerter := &recordingAlerter{}
	p := NewPoller(sequenceFetch(
		[]Status{{ID: a, Status: "sent"}},
		[]Status{{ID: a, Status: "confirmed"}},
	), alerter, time.Hour)

	p.Acknowledge()
	if alerter.cleared != 0 {
		t.Fatalf("ack without pending: cleared %d, want 0", alerter.cleared)
	}

	p.poll(context.Background())
	p.poll(context.Background())
	p.Acknowledge()
	if p.Pending() {
		t.Fatal("pending should be cleared")
	}
	if alerter.cleared != 1 {
		t.Fatalf("cleared: got %d, want 1", alerter.cleared)
	}
}

func TestPoller_SkipsWhileHidden(t *testing.T) {
	calls := 0
	p := NewPoller(func(context.Context) ([]Status, error) {
		calls++
		return nil, nil
	}, &recordingAlerter{}, time.Hour)

	p.SetVisible(false)
	if p.TryTick(context.Background()) {
		t.Fatal("hidden poller should not start a fetch")
	}
	if calls != 0 {
		t.Fatalf("fetch calls: got %d, want 0", calls)
	}
}

func TestPoller_SkipsWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 2)
	p := NewPoller(func(context.Context) ([]Status, error) {
		started <- struct{}{}
		<-release
		return nil, nil
	}, &recordingAlerter{}, time.Hour)

	ctx := context.Background()
	if !p.TryTick(ctx) {
		t.Fatal("first tick should start a fetch")
	}
	<-started

	if p.TryTick(ctx) {
		t.Fatal("second tick should be skipped while the first is in flight")
	}

	close(release)
	p.running.Wait()

	if !p.TryTick(ctx) {
		t.Fatal("tick after completion should start a fetch")
	}
	<-started
	p.running.Wait()
}

func TestPoller_FetchErrorDoesNotAlert(t *testing.T) {
	alerter := &recordingAlerter{}
	p := NewPoller(func(context.Context) ([]Status, error) {
		return nil, errors.New("db down")
	}, alerter, time.Hour)

	p.poll(context.Background())
	p.poll(context.Background())
	if alerter.alertCount() != 0 {
		t.Fatalf("alerts: got %d, want 0", alerter.alertCount())
	}
}

func TestPoller_StartStop(t *testing.T) {
	fetched := make(chan struct{}, 1)
	p := NewPoller(func(context.Context) ([]Status, error) {
		select {
		case fetched <- struct{}{}:
		default:
		}
		return nil, nil
	}, &recordingAlerter{}, time.Hour)

	p.Start(context.Background())
	p.Start(context.Background())

	select {
	case <-fetched:
	case <-time.After(2 * time.Second):
		t.Fatal("start should fetch immediately")
	}

	p.Stop()
	p.Stop()
}
