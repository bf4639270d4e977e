package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/luminosmc/community-api/internal/core/domain"
)

func newHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", want, hub.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestServe_FansOutOverWebsocket(t *testing.T) {
	hub := NewHub(nil, zerolog.Nop())
	srv := newHubServer(t, hub)

	a, b := dial(t, srv), dial(t, srv)
	defer a.Close()
	defer b.Close()
	waitForClients(t, hub, 2)

	// inbound messages are accepted and ignored
	if err := a.WriteMessage(websocket.TextMessage, []byte(`{"hello":"server"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	hub.Broadcast(domain.Event{Type: domain.EventPostCreated, Post: &domain.Post{ID: "p1", Title: "Hello"}})
	hub.Broadcast(domain.Event{Type: domain.EventPostDeleted, PostID: "p1"})

	for _, conn := range []*websocket.Conn{a, b} {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var first, second domain.Event
		if err := conn.ReadJSON(&first); err != nil {
			t.Fatalf("read first: %v", err)
		}
		if err := conn.ReadJSON(&second); err != nil {
			t.Fatalf("read second: %v", err)
		}
		if first.Type != domain.EventPostCreated || first.Post == nil || first.Post.Title != "Hello" {
			t.Fatalf("unexpected first event: %+v", first)
		}
		if second.Type != domain.EventPostDeleted || second.PostID != "p1" {
			t.Fatalf("unexpected second event: %+v", second)
		}
	}
}

func TestServe_ClosedPeerIsRemoved(t *testing.T) {
	hub := NewHub(nil, zerolog.Nop())
	srv := newHubServer(t, hub)

	a, b := dial(t, srv), dial(t, srv)
	defer b.Close()
	waitForClients(t, hub, 2)

	_ = a.Close()
	waitForClients(t, hub, 1)

	hub.Broadcast(domain.Event{Type: domain.EventUserDeleted, UserID: "u1"})
	_ = b.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev domain.Event
	if err := b.ReadJSON(&ev); err != nil {
		t.Fatalf("remaining client should still receive events: %v", err)
	}
	if ev.UserID != "u1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestCloseAll_SendsCloseFrame(t *testing.T) {
	hub := NewHub(nil, zerolog.Nop())
	srv := newHubServer(t, hub)

	conn := dial(t, srv)
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.CloseAll()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Fatalf("expected going-away close, got %v", err)
	}
}
