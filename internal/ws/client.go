package ws

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cyclebees/estimates-api/internal/auth"
	"github.com/cyclebees/estimates-api/internal/enum"
	mw "github.com/cyclebees/estimates-api/internal/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Dashboards only send small control messages.
	maxMessageSize = 512
)

// Client is one open dashboard connection.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	adminID uuid.UUID
	send    chan []byte
}

type inboundMessage struct {
	Type string `json:"type"`
}

// readPump handles control messages from the dashboard until the connection
// drops, then unregisters the client.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg inboundMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				log.Printf("dashboard %s sent malformed message: %v", c.adminID, err)
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("ERROR: dashboard %s websocket: %v", c.adminID, err)
			}
			return
		}

		switch msg.Type {
		case enum.EventNotificationsAck:
			c.hub.acknowledge()
		default:
			log.Printf("dashboard %s sent unknown message type %q", c.adminID, msg.Type)
		}
	}
}

// writePump delivers hub events one per frame and keeps the connection alive
// with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// DashboardServer upgrades authenticated admin dashboards to websocket
// connections on the hub.
//
// Browsers cannot set headers on a websocket handshake, so the session token
// is read from the "token" query parameter, falling back to a bearer
// Authorization header for other clients.
type DashboardServer struct {
	hub       *Hub
	jwtSecret string
	upgrader  websocket.Upgrader
}

// NewDashboardServer returns a handler for WS /ws/dashboard. Handshakes whose
// Origin is not in allowedOrigins are rejected; a "*" entry allows any origin.
func NewDashboardServer(hub *Hub, jwtSecret string, allowedOrigins []string) *DashboardServer {
	s := &DashboardServer{hub: hub, jwtSecret: jwtSecret}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return s
}

func (s *DashboardServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		var err error
		if token, err = mw.BearerToken(r); err != nil {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
	}

	claims, err := auth.ValidateToken(s.jwtSecret, token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		log.Printf("dashboard upgrade for %s: %v", claims.Username, err)
		return
	}

	client := &Client{
		hub:     s.hub,
		conn:    conn,
		adminID: claims.AdminID,
		send:    make(chan []byte, sendBuffer),
	}
	s.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	allowAll := false
	for _, o := range allowed {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			allowAll = true
		}
		set[strings.ToLower(o)] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowAll {
			return true
		}
		if set[strings.ToLower(origin)] {
			return true
		}
		// Same-origin handshakes are always fine.
		u, err := url.Parse(origin)
		return err == nil && strings.EqualFold(u.Host, r.Host)
	}
}
