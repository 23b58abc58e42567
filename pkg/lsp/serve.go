package lsp

import (
	"github.com/rs/zerolog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
	"gitlab.com/tozd/go/errors"
)

// BuildProtocolHandler wires the server's handlers into a protocol
// handler suitable for any glsp transport.
func (s *Server) BuildProtocolHandler() *protocol.Handler {
	return &protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		TextDocumentDidOpen:   s.didOpen,
		TextDocumentDidChange: s.didChange,
		TextDocumentDidClose:  s.didClose,
	}
}

// RunStdio serves the language server over stdin/stdout until the
// client disconnects.
func (s *Server) RunStdio() error {
	zerolog.Ctx(s.ctx).Info().Str("server_id", s.id).Msg("serving over stdio")

	glspServer := glspserver.NewServer(s.BuildProtocolHandler(), s.name, false)
	if err := glspServer.RunStdio(); err != nil {
		return errors.Errorf("running stdio server: %w", err)
	}
	return nil
}
