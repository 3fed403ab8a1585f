package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cyclebees/estimates-api/internal/auth"
	"github.com/cyclebees/estimates-api/internal/enum"
	"github.com/cyclebees/estimates-api/internal/notify"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// mockClient creates a client for testing without a real WebSocket connection
func mockClient(hub *Hub) *Client {
	return &Client{
		hub:     hub,
		adminID: uuid.New(),
		send:    make(chan []byte, 256),
	}
}

type presenceRecorder struct {
	mu     sync.Mutex
	counts []int
}

func (p *presenceRecorder) record(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.counts = append(p.counts, count)
}

func (p *presenceRecorder) snapshot() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.counts...)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case msg := <-c.send:
		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		return ev
	case <-time.After(100 * time.Millisecond):
		t.Fatal("client did not receive message")
	}
	return Event{}
}

func TestHubRegistrationAndPresence(t *testing.T) {
	hub := NewHub()
	presence := &presenceRecorder{}
	hub.OnPresence(presence.record)
	go hub.Run()

	c1 := mockClient(hub)
	c2 := mockClient(hub)
	hub.register <- c1
	hub.register <- c2
	hub.unregister <- c1
	hub.unregister <- c2
	time.Sleep(10 * time.Millisecond)

	got := presence.snapshot()
	want := []int{1, 2, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("presence: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("presence: got %v, want %v", got, want)
		}
	}
	if hub.ClientCount() != 0 {
		t.Fatalf("client count: got %d, want 0", hub.ClientCount())
	}
}

func TestHubUnregisterUnknownClientIgnored(t *testing.T) {
	hub := NewHub()
	presence := &presenceRecorder{}
	hub.OnPresence(presence.record)
	go hub.Run()

	hub.unregister <- mockClient(hub)
	time.Sleep(10 * time.Millisecond)

	if got := presence.snapshot(); len(got) != 0 {
		t.Fatalf("presence: got %v, want none", got)
	}
}

func TestBroadcastReachesEveryDashboard(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	clients := []*Client{mockClient(hub), mockClient(hub), mockClient(hub)}
	for _, c := range clients {
		hub.register <- c
	}
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast(Event{Type: "request.status_changed", Payload: json.RawMessage(`{"changes":[]}`)})

	for i, c := range clients {
		ev := receive(t, c)
		if ev.Type != "request.status_changed" {
			t.Errorf("client%d: type got %q", i+1, ev.Type)
		}
	}
}

func TestDashboardAlerter(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := mockClient(hub)
	hub.register <- c
	time.Sleep(10 * time.Millisecond)

	alerter := NewDashboardAlerter(hub)
	id := uuid.New()
	alerter.Alert([]notify.Change{{ID: id, From: "sent", To: "viewed"}})

	ev := receive(t, c)
	if ev.Type != enum.EventRequestStatusChanged {
		t.Fatalf("type: got %q, want %q", ev.Type, enum.EventRequestStatusChanged)
	}
	var payload statusChangedPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if len(payload.Changes) != 1 || payload.Changes[0].ID != id || payload.Changes[0].To != "viewed" {
		t.Errorf("payload: got %+v", payload)
	}

	alerter.Clear()
	if ev := receive(t, c); ev.Type != enum.EventNotificationsCleared {
		t.Fatalf("type: got %q, want %q", ev.Type, enum.EventNotificationsCleared)
	}
}

func newDashboardServer(t *testing.T, hub *Hub, origins ...string) *httptest.Server {
	t.Helper()
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	srv := httptest.NewServer(NewDashboardServer(hub, "secret", origins))
	t.Cleanup(srv.Close)
	return srv
}

func dialDashboard(t *testing.T, srv *httptest.Server, header http.Header) *websocket.Conn {
	t.Helper()
	token, err := auth.GenerateToken("secret", uuid.New(), "admin")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/dashboard?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitPresence(t *testing.T, ch <-chan int, want int) {
	t.Helper()
	select {
	case n := <-ch:
		if n != want {
			t.Fatalf("presence: got %d, want %d", n, want)
		}
	case <-time.After(time.Second):
		t.Fatal("dashboard did not register")
	}
}

func TestDashboardServer_RejectsMissingToken(t *testing.T) {
	srv := newDashboardServer(t, NewHub())

	resp, err := http.Get(srv.URL + "/ws/dashboard")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestDashboardServer_RejectsInvalidToken(t *testing.T) {
	srv := newDashboardServer(t, NewHub())

	resp, err := http.Get(srv.URL + "/ws/dashboard?token=not-a-jwt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestDashboardServer_RejectsForeignOrigin(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	srv := newDashboardServer(t, hub, "https://admin.cyclebees.in")

	token, _ := auth.GenerateToken("secret", uuid.New(), "admin")
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/dashboard?token=" + token
	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example"}})
	if err == nil {
		t.Fatal("expected handshake to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("response: got %v, want 403", resp)
	}
}

func TestDashboardServer_AllowsConfiguredOrigin(t *testing.T) {
	hub := NewHub()
	connected := make(chan int, 4)
	hub.OnPresence(func(count int) { connected <- count })
	go hub.Run()
	srv := newDashboardServer(t, hub, "https://admin.cyclebees.in/")

	dialDashboard(t, srv, http.Header{"Origin": {"https://admin.cyclebees.in"}})
	waitPresence(t, connected, 1)
}

func TestDashboardServer_ReceivesBroadcast(t *testing.T) {
	hub := NewHub()
	connected := make(chan int, 4)
	hub.OnPresence(func(count int) { connected <- count })
	go hub.Run()
	srv := newDashboardServer(t, hub)

	conn := dialDashboard(t, srv, nil)
	waitPresence(t, connected, 1)

	hub.Broadcast(Event{Type: enum.EventNotificationsCleared, Payload: json.RawMessage(`{}`)})
	hub.Broadcast(Event{Type: enum.EventRequestStatusChanged, Payload: json.RawMessage(`{"changes":[]}`)})

	for _, want := range []string{enum.EventNotificationsCleared, enum.EventRequestStatusChanged} {
		conn.SetReadDeadline(time.Now().Add(time.Second))
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("read: %v", err)
		}
		if ev.Type != want {
			t.Errorf("type: got %q, want %q", ev.Type, want)
		}
	}
}

func TestDashboardServer_AckRunsCallback(t *testing.T) {
	hub := NewHub()
	connected := make(chan int, 4)
	acked := make(chan struct{}, 1)
	hub.OnPresence(func(count int) { connected <- count })
	hub.OnAcknowledge(func() { acked <- struct{}{} })
	go hub.Run()
	srv := newDashboardServer(t, hub)

	conn := dialDashboard(t, srv, nil)
	waitPresence(t, connected, 1)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteJSON(map[string]string{"type": enum.EventNotificationsAck}); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-acked:
	case <-time.After(time.Second):
		t.Fatal("acknowledge callback not called")
	}
}

func TestDashboardServer_DisconnectUpdatesPresence(t *testing.T) {
	hub := NewHub()
	connected := make(chan int, 4)
	hub.OnPresence(func(count int) { connected <- count })
	go hub.Run()
	srv := newDashboardServer(t, hub)

	conn := dialDashboard(t, srv, nil)
	waitPresence(t, connected, 1)

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
	waitPresence(t, connected, 0)
}
