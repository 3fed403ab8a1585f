package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Acknowledger clears the pending status-change alert.
// Satisfied by *notify.Poller.
type Acknowledger interface {
	Acknowledge()
	Pending() bool
}

// NotificationHandler lets a dashboard acknowledge status-change alerts.
type NotificationHandler struct {
	ack Acknowledger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(ack Acknowledger) *NotificationHandler {
	return &NotificationHandler{ack: ack}
}

// RegisterRoutes registers notification endpoints on the given Chi router.
// Expected to be mounted at /notifications behind authentication.
func (h *NotificationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Status)
	r.Post("/ack", h.Acknowledge)
}

type notificationStatusResponse struct {
	Pending bool `json:"pending"`
}

// Status reports whether an unacknowledged alert is waiting.
func (h *NotificationHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, notificationStatusResponse{Pending: h.ack.Pending()})
}

// Acknowledge handles POST /notifications/ack.
func (h *NotificationHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	h.ack.Acknowledge()
	writeJSON(w, http.StatusOK, notificationStatusResponse{Pending: false})
}
