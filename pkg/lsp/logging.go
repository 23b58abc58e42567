package lsp

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/walteh/semhl/pkg/debug"
)

// NotifyFunc sends a server-to-client notification. glsp.Context.Notify
// satisfies it.
type NotifyFunc func(method string, params any)

// LSPWriter forwards zerolog JSON output to the client as
// window/logMessage notifications, so a server running over stdio keeps
// its logs visible without polluting the protocol stream.
type LSPWriter struct {
	mu     sync.Mutex
	notify NotifyFunc
}

func NewLSPWriter(notify NotifyFunc) *LSPWriter {
	return &LSPWriter{notify: notify}
}

// ApplyLSPWriter replaces the context logger with one that writes to
// the client via glspCtx.
func ApplyLSPWriter(ctx context.Context, glspCtx *glsp.Context) context.Context {
	writer := NewLSPWriter(NotifyFunc(glspCtx.Notify))
	logger := zerolog.New(writer).
		Hook(debug.TimeHook{}).
		Hook(debug.CallerHook{WithColor: false})
	return logger.WithContext(ctx)
}

func (w *LSPWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var entry map[string]any
	if err := json.Unmarshal(p, &entry); err != nil {
		// Skip malformed entries rather than kill the logger.
		return len(p), nil
	}

	messageType := protocol.MessageTypeLog
	if level, ok := entry["level"].(string); ok {
		messageType = messageTypeForLevel(level)
	}

	message := ""
	if m, ok := entry["message"].(string); ok {
		message = m
	}
	if message == "" {
		message = string(p)
	}

	w.notify("window/logMessage", protocol.LogMessageParams{
		Type:    messageType,
		Message: message,
	})
	return len(p), nil
}

func messageTypeForLevel(level string) protocol.MessageType {
	switch level {
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return protocol.MessageTypeError
	case zerolog.LevelWarnValue:
		return protocol.MessageTypeWarning
	case zerolog.LevelInfoValue:
		return protocol.MessageTypeInfo
	default:
		return protocol.MessageTypeLog
	}
}
