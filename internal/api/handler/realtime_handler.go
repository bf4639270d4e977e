package handler

import (
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Server takes ownership of an upgraded realtime connection and blocks until
// the client goes away.
type Server interface {
	Serve(conn *websocket.Conn)
}

type RealtimeHandler struct {
	server   Server
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewRealtimeHandler accepts upgrades from the given origins; "*" allows any.
func NewRealtimeHandler(server Server, origins []string, log zerolog.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		server: server,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(origins),
		},
		log: log,
	}
}

// Connect upgrades the request and streams broadcast events to the client.
// Inbound messages are read and discarded.
//
// @Summary      Realtime event stream
// @Tags         realtime
// @Success      101
// @Router       /ws [get]
func (h *RealtimeHandler) Connect(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the failure response.
		h.log.Debug().Err(err).Msg("websocket upgrade failed")
		return nil
	}

	h.server.Serve(conn)
	return nil
}

func originChecker(origins []string) func(r *http.Request) bool {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		allowed[o] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, ok := allowed[origin]; ok {
			return true
		}
		u, err := url.Parse(origin)
		return err == nil && u.Host == r.Host
	}
}
