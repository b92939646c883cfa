package websocket

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Individual client connection handler

const ( // ping pong (2-way heartbeat) to keep connection alive
	WriteWait      = 10 * time.Second    // max time to write a message to the peer
	PongWait       = 60 * time.Second    // max time to wait for pong from peer => no pong = no connection
	PingPeriod     = (PongWait * 9) / 10 // send pings before the pong wait expires, leaving slack for network jitter
	MaxMessageSize = 4096                // maximum frame size allowed from peer

	sendBufferSize = 256 // outbound queue per connection
)

// Client is one live connection: the verified user identity plus the
// underlying socket and its outbound queue.
type Client struct {
	ID     string          // unique connection ID
	UserID int64           // user ID from the verified credential, never from payloads
	conn   *websocket.Conn // WebSocket connection
	send   chan []byte     // channel for outbound messages

	gateway   *Gateway
	closeOnce sync.Once
}

func newClient(userID int64, conn *websocket.Conn, gateway *Gateway) *Client {
	return &Client{
		ID:      uuid.New().String(),
		UserID:  userID,
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		gateway: gateway,
	}
}

// readPump reads frames off the socket and hands each to the gateway.
// Frames are handled sequentially, so one connection's messages are
// persisted and fanned out in arrival order. Runs in its own goroutine;
// exactly one reader per connection.
func (c *Client) readPump() {
	defer c.gateway.disconnect(c)

	c.conn.SetReadLimit(MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(PongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			// client went away or the transport broke; either way this
			// connection is done
			return
		}
		c.gateway.handleFrame(c, data)
	}
}

// writePump drains the send queue onto the socket and keeps the heartbeat
// going. Runs in its own goroutine; exactly one writer per connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(PingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// enqueue queues an outbound payload without blocking; returns false when the
// peer is too slow to drain its queue and the payload is dropped.
func (c *Client) enqueue(payload []byte) bool {
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// close shuts the outbound queue exactly once, which lets writePump finish
// and close the underlying socket.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}
