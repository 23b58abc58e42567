package lsp

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	glspserver "github.com/tliron/glsp/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin validation is the embedding server's concern.
		return true
	},
}

// ServeWebSocket upgrades the request to a WebSocket connection and
// serves the language server over it. Blocks until the connection
// closes, so each connection gets its own goroutine under net/http.
func (s *Server) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(s.ctx)
	logger.Info().Str("remote", r.RemoteAddr).Msg("websocket connection request")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}

	glspServer := glspserver.NewServer(s.BuildProtocolHandler(), s.name, false)
	glspServer.ServeWebSocket(conn)

	logger.Info().Str("remote", r.RemoteAddr).Msg("websocket connection closed")
}
