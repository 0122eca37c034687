package ws

import (
	"encoding/json"
	"time"

	"teamup/internal/domain/availability"
)

type PresenceChangedEvent struct {
	Type      string `json:"type"`
	Username  string `json:"username"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the availability usecase's notifier
// interface. Events fan out after the durable write has succeeded.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyPresenceChanged(username string, status availability.Status) {
	if n == nil || n.hub == nil {
		return
	}

	evt := PresenceChangedEvent{
		Type:      "presence_changed",
		Username:  username,
		Status:    status.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
