package websocket

import (
	"encoding/json"
	"log/slog"
)

// Wire protocol for the chat gateway

// Event types sent to clients
const (
	EventMessage = "message" // pushed to every live connection of the recipient
	EventAck     = "ack"     // pushed back to the sending connection only
)

// InboundFrame is one chat message send from a client. The sender identity is
// deliberately absent: it always comes from the connection's verified session.
type InboundFrame struct {
	BookingID  int64  `json:"bookingId"`
	Text       string `json:"text"`
	ReceiverID int64  `json:"receiverId"`
}

// Envelope wraps every outbound event in a {type, data} pair
type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// marshalEvent builds the outbound payload for one event
func marshalEvent(eventType string, data any) ([]byte, error) {
	payload, err := json.Marshal(Envelope{Type: eventType, Data: data})
	if err != nil {
		slog.Error("Failed to marshal outbound event", "type", eventType, "error", err)
		return nil, err
	}
	return payload, nil
}
