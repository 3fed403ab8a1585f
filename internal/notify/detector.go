// Package notify watches request statuses and raises an alert when a
// customer moves one of them.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is one observed request status.
type Status struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt time.Time
}

// Change is a status that differs from the previous observation.
type Change struct {
	ID   uuid.UUID `json:"id"`
	From string    `json:"from"`
	To   string    `json:"to"`
}

// Detector diffs successive observations. The first observation only seeds
// the map; ids seen for the first time later are recorded silently.
type Detector struct {
	mu          sync.Mutex
	seen        map[uuid.UUID]string
	initialized bool
}

func NewDetector() *Detector {
	return &Detector{seen: make(map[uuid.UUID]string)}
}

// Observe returns the changes since the previous call and merges statuses
// into the observed map.
func (d *Detector) Observe(statuses []Status) []Change {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		for _, s := range statuses {
			d.seen[s.ID] = s.Status
		}
		d.initialized = true
		return nil
	}

	var changes []Change
	for _, s := range statuses {
		prev, ok := d.seen[s.ID]
		if ok && prev != s.Status {
			changes = append(changes, Change{ID: s.ID, From: prev, To: s.Status})
		}
		d.seen[s.ID] = s.Status
	}
	return changes
}

// Reset forgets everything; the next Observe seeds again.
func (d *Detector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = make(map[uuid.UUID]string)
	d.initialized = false
}
