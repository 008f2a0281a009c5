package domain

import (
	"strings"
	"time"
)

// Event is a change notification published by the reservation service.
type Event struct {
	Type      string    `json:"type"`
	Resource  string    `json:"resource"`
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// Action returns the verb part of the event type, e.g. "created" for "user.created".
func (e Event) Action() string {
	if i := strings.LastIndexByte(e.Type, '.'); i >= 0 {
		return e.Type[i+1:]
	}
	return ""
}

func (e Event) Valid() bool {
	return e.Resource != "" && e.Action() != "" && !e.Timestamp.IsZero()
}

// Resources lists every resource the reservation service emits events for.
var Resources = []string{"user", "restaurant", "reservation", "menu"}

// ResourceTotals maps resource -> action -> count.
type ResourceTotals map[string]map[string]int64

type EventCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}
