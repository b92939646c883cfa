package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"servicehub/internal/microservices/http-api/models"
)

// CredentialVerifier turns a bearer token into a verified user id or rejects it.
type CredentialVerifier interface {
	VerifyCredential(token string) (int64, error)
}

// MessageStore durably stores a chat message and returns its canonical stored
// form with the assigned id.
type MessageStore interface {
	SaveMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// allow all origins for development purpose; can restrict later
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Gateway accepts inbound realtime connections, authenticates them, registers
// them, and routes each inbound frame through persist, fan-out, and ack.
type Gateway struct {
	registry *Registry
	verifier CredentialVerifier
	store    MessageStore
	logger   *slog.Logger
}

func NewGateway(verifier CredentialVerifier, store MessageStore, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		registry: NewRegistry(),
		verifier: verifier,
		store:    store,
		logger:   logger,
	}
}

// Registry exposes the live connection registry, mainly for introspection.
func (g *Gateway) Registry() *Registry {
	return g.registry
}

// Handler upgrades the HTTP request and runs the connection life cycle.
// The credential arrives as a "token" query parameter; a missing or invalid
// credential closes the socket with no payload, telling an unauthenticated
// peer nothing about why.
func (g *Gateway) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			g.logger.Warn("websocket upgrade failed", "error", err)
			return
		}

		if token == "" {
			conn.Close()
			return
		}

		userID, err := g.verifier.VerifyCredential(token)
		if err != nil {
			conn.Close()
			return
		}

		client := newClient(userID, conn, g)
		g.registry.Register(userID, client)

		go client.writePump()
		go client.readPump()
	}
}

// handleFrame is the per-frame unit of work: decode, validate, persist, fan
// out, ack. Every failure is logged and dropped here so a bad frame or a
// store outage never tears down the connection loop; the sender learns about
// the failure by not receiving an ack.
func (g *Gateway) handleFrame(client *Client, raw []byte) {
	var frame InboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		g.logger.Warn("malformed chat frame",
			"user_id", client.UserID,
			"connection_id", client.ID,
			"error", err,
		)
		return
	}

	if strings.TrimSpace(frame.Text) == "" {
		g.logger.Warn("empty chat message dropped",
			"user_id", client.UserID,
			"booking_id", frame.BookingID,
		)
		return
	}

	// Sender identity comes from the authenticated session, sentAt from the
	// server clock; neither is ever taken from the payload.
	message := &models.ChatMessage{
		BookingID:  frame.BookingID,
		SenderID:   client.UserID,
		ReceiverID: frame.ReceiverID,
		Text:       frame.Text,
		SentAt:     time.Now().UTC(),
	}

	saved, err := g.store.SaveMessage(context.Background(), message)
	if err != nil {
		g.logger.Error("failed to persist chat message",
			"user_id", client.UserID,
			"booking_id", frame.BookingID,
			"error", err,
		)
		return
	}

	// Fan out to every live connection of the recipient. No connections is
	// the store-and-forward case: the recipient reads it later from history.
	if payload, err := marshalEvent(EventMessage, saved); err == nil {
		for _, receiver := range g.registry.Connections(saved.ReceiverID) {
			if !receiver.enqueue(payload) {
				g.logger.Warn("fan-out dropped for slow connection",
					"receiver_id", saved.ReceiverID,
					"connection_id", receiver.ID,
					"message_id", saved.ID,
				)
			}
		}
	}

	// Acknowledge to the sending connection only
	if payload, err := marshalEvent(EventAck, saved); err == nil {
		if !client.enqueue(payload) {
			g.logger.Warn("ack dropped for slow connection",
				"user_id", client.UserID,
				"connection_id", client.ID,
				"message_id", saved.ID,
			)
		}
	}
}

// disconnect removes the connection from fan-out targeting and releases it.
func (g *Gateway) disconnect(client *Client) {
	g.registry.Unregister(client.UserID, client)
	client.close()
}
