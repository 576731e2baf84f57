package events

import (
	"encoding/json"
	"log"

	"github.com/cardroom/blackjack/events"
	"github.com/cardroom/blackjack/server/connection"
)

// EventEnvelope wraps an event with its name for client consumption
type EventEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher routes session events to the clients watching each table
type Dispatcher struct {
	connMgr *connection.Manager
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(connMgr *connection.Manager) *Dispatcher {
	return &Dispatcher{
		connMgr: connMgr,
	}
}

// HandleEvent marshals a session event and sends it to the table's clients
func (d *Dispatcher) HandleEvent(event events.Event) {
	eventPayload, err := json.Marshal(event)
	if err != nil {
		log.Println("Failed to marshal event payload:", err)
		return
	}

	envelope := EventEnvelope{
		Name:    event.Name(),
		Payload: eventPayload,
	}

	envelopeData, err := json.Marshal(envelope)
	if err != nil {
		log.Println("Failed to marshal event envelope:", err)
		return
	}

	tableID := events.GetTableID(event)
	if tableID == "" {
		log.Println("Dropping event without table ID:", event.Name())
		return
	}

	d.connMgr.SendToTable(tableID, envelopeData)
}
