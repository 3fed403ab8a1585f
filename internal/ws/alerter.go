package ws

import (
	"encoding/json"
	"log"

	"github.com/cyclebees/estimates-api/internal/enum"
	"github.com/cyclebees/estimates-api/internal/notify"
)

// DashboardAlerter pushes poller alerts to every connected dashboard.
type DashboardAlerter struct {
	hub *Hub
}

func NewDashboardAlerter(hub *Hub) *DashboardAlerter {
	return &DashboardAlerter{hub: hub}
}

type statusChangedPayload struct {
	Changes []notify.Change `json:"changes"`
}

// Alert broadcasts one request.status_changed event carrying every change.
func (a *DashboardAlerter) Alert(changes []notify.Change) {
	payload, err := json.Marshal(statusChangedPayload{Changes: changes})
	if err != nil {
		log.Printf("ERROR: marshal status changes: %v", err)
		return
	}
	a.hub.Broadcast(Event{Type: enum.EventRequestStatusChanged, Payload: payload})
}

// Clear tells dashboards the pending alert was acknowledged.
func (a *DashboardAlerter) Clear() {
	a.hub.Broadcast(Event{Type: enum.EventNotificationsCleared, Payload: json.RawMessage(`{}`)})
}
