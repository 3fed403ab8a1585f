package service

import (
	"fmt"

	"github.com/cyclebees/estimates-api/internal/database"
)

// Actor identifies who is asking for a status change.
type Actor int

const (
	ActorStaff Actor = iota + 1
	ActorCustomer
)

func (a Actor) String() string {
	switch a {
	case ActorStaff:
		return "staff"
	case ActorCustomer:
		return "customer"
	}
	return "unknown"
}

type transition struct {
	to    database.RequestStatus
	actor Actor
}

// allowedTransitions is the full request lifecycle. Self edges re-run the
// side effect of entering the state (re-send, refresh totals, re-confirm).
var allowedTransitions = map[database.RequestStatus][]transition{
	database.RequestStatusDraft: {
		{database.RequestStatusSent, ActorStaff},
		{database.RequestStatusCancelled, ActorStaff},
	},
	database.RequestStatusSent: {
		{database.RequestStatusSent, ActorStaff},
		{database.RequestStatusViewed, ActorCustomer},
		{database.RequestStatusCancelled, ActorStaff},
	},
	database.RequestStatusViewed: {
		{database.RequestStatusViewed, ActorCustomer},
		{database.RequestStatusConfirmed, ActorCustomer},
		{database.RequestStatusCancelled, ActorStaff},
	},
	database.RequestStatusConfirmed: {
		{database.RequestStatusConfirmed, ActorCustomer},
	},
}

// ValidateStatus parses a status string into a known RequestStatus.
func ValidateStatus(s string) (database.RequestStatus, error) {
	st := database.RequestStatus(s)
	switch st {
	case database.RequestStatusDraft,
		database.RequestStatusSent,
		database.RequestStatusViewed,
		database.RequestStatusConfirmed,
		database.RequestStatusCancelled:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// CanTransition reports whether actor may move a request from one status to another.
func CanTransition(from, to database.RequestStatus, actor Actor) bool {
	for _, t := range allowedTransitions[from] {
		if t.to == to && t.actor == actor {
			return true
		}
	}
	return false
}

func validateStatusTransition(from, to database.RequestStatus, actor Actor) error {
	if CanTransition(from, to, actor) {
		return nil
	}
	return fmt.Errorf("%w: %s cannot move request from %s to %s", ErrInvalidTransition, actor, from, to)
}

// IsEditable reports whether line items may still be changed.
func IsEditable(s database.RequestStatus) bool {
	return s == database.RequestStatusSent
}

// IsDeletable reports whether a request may be deleted without the force override.
func IsDeletable(s database.RequestStatus) bool {
	switch s {
	case database.RequestStatusViewed, database.RequestStatusConfirmed:
		return false
	}
	return true
}
