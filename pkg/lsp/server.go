package lsp

import (
	"context"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/walteh/semhl/pkg/highlight"
	"gitlab.com/tozd/go/errors"
)

// MethodSemanticHighlighting is the proposed-protocol notification
// carrying per-line highlighting payloads.
const MethodSemanticHighlighting = "textDocument/semanticHighlighting"

// SemanticHighlightingParams is the payload of the
// textDocument/semanticHighlighting notification: the changed lines of
// one committed document version.
type SemanticHighlightingParams struct {
	TextDocument protocol.VersionedTextDocumentIdentifier `json:"textDocument"`
	Lines        []highlight.Highlighting                 `json:"lines"`
}

// semanticHighlightingCapability advertises the proposal's capability,
// including the static kind-to-scope table for clients that render by
// named style instead of kind ordinal.
type semanticHighlightingCapability struct {
	Scopes [][]string `json:"scopes"`
}

// Server pushes semantic highlighting to a connected client. It owns the
// open-document set and the per-document previous snapshots; the
// resolver it wraps is stateless from its point of view.
type Server struct {
	ctx       context.Context
	resolver  Resolver
	documents *DocumentManager
	snapshots *SnapshotStore

	// selector restricts highlighting to documents matching any of the
	// glob patterns; empty means all documents.
	selector []string

	id   string
	name string
}

type Option func(*Server)

// WithSelector restricts highlighting to documents whose path matches
// one of the doublestar glob patterns.
func WithSelector(globs ...string) Option {
	return func(s *Server) { s.selector = globs }
}

// WithFilesystem substitutes the filesystem used for unopened-document
// fallback reads.
func WithFilesystem(fs afero.Fs) Option {
	return func(s *Server) { s.documents = NewDocumentManager(fs) }
}

// WithName sets the server name reported to clients.
func WithName(name string) Option {
	return func(s *Server) { s.name = name }
}

func NewServer(ctx context.Context, resolver Resolver, opts ...Option) *Server {
	s := &Server{
		ctx:       ctx,
		resolver:  resolver,
		documents: NewDocumentManager(nil),
		snapshots: NewSnapshotStore(),
		id:        xid.New().String(),
		name:      "semhl language server",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Documents() *DocumentManager { return s.documents }
func (s *Server) Snapshots() *SnapshotStore   { return s.snapshots }

func (s *Server) initialize(glspCtx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	logger := zerolog.Ctx(s.ctx)
	logger.Debug().
		Str("server_id", s.id).
		Interface("client", params.ClientInfo).
		Msg("initializing server")

	syncKind := protocol.TextDocumentSyncKindFull
	openClose := true
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: &openClose,
			Change:    &syncKind,
		},
		Experimental: map[string]any{
			"semanticHighlighting": semanticHighlightingCapability{
				Scopes: highlight.Scopes(),
			},
		},
	}

	version := "0.1.0"
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    s.name,
			Version: &version,
		},
	}, nil
}

func (s *Server) initialized(glspCtx *glsp.Context, params *protocol.InitializedParams) error {
	zerolog.Ctx(s.ctx).Debug().Msg("server initialized")
	return nil
}

func (s *Server) shutdown(glspCtx *glsp.Context) error {
	zerolog.Ctx(s.ctx).Debug().Msg("server shutting down")
	return nil
}

func (s *Server) didOpen(glspCtx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	zerolog.Ctx(s.ctx).Debug().Str("uri", uri).Msg("document opened")

	doc := &Document{
		URI:        normalizeURI(uri),
		LanguageID: string(params.TextDocument.LanguageID),
		Version:    int32(params.TextDocument.Version),
		Content:    params.TextDocument.Text,
	}
	s.documents.Store(uri, doc)

	return s.publishHighlightings(glspCtx, doc)
}

func (s *Server) didChange(glspCtx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	zerolog.Ctx(s.ctx).Debug().
		Str("uri", uri).
		Int("changes", len(params.ContentChanges)).
		Msg("document changed")

	if len(params.ContentChanges) == 0 {
		return nil
	}

	doc, ok := s.documents.Get(uri)
	if !ok {
		return errors.Errorf("document not found: %s", uri)
	}

	doc.Version = int32(params.TextDocument.Version)
	for _, change := range params.ContentChanges {
		switch change := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			doc.Content = change.Text
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				doc.Content = change.Text
			} else {
				doc.Content = replaceRange(doc.Content, *change.Range, change.Text)
			}
		}
	}
	s.documents.Store(uri, doc)

	return s.publishHighlightings(glspCtx, doc)
}

func (s *Server) didClose(glspCtx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	zerolog.Ctx(s.ctx).Debug().Str("uri", uri).Msg("document closed")

	s.documents.Delete(uri)
	s.snapshots.Drop(uri)
	return nil
}

// matchesSelector reports whether highlighting is enabled for the
// document path.
func (s *Server) matchesSelector(uri string) bool {
	if len(s.selector) == 0 {
		return true
	}
	path := normalizeURI(uri)
	for _, pattern := range s.selector {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// publishHighlightings runs the pipeline for one committed document
// version and notifies the client of the changed lines.
func (s *Server) publishHighlightings(glspCtx *glsp.Context, doc *Document) error {
	logger := zerolog.Ctx(s.ctx)

	if !s.matchesSelector(doc.URI) {
		return nil
	}

	file, err := s.resolver.Resolve(s.ctx, doc.URI, doc.Version, doc.Content)
	if err != nil {
		return errors.Errorf("resolving %s: %w", doc.URI, err)
	}

	tokens, err := highlight.Tokens(s.ctx, file)
	if err != nil {
		// Range inconsistencies degrade to fewer tokens; the snapshot is
		// still valid and the service stays live.
		logger.Warn().Err(err).Str("uri", doc.URI).Msg("token collection reported inconsistencies")
	}

	prev, ok := s.snapshots.Update(doc.URI, doc.Version, tokens)
	if !ok {
		logger.Debug().
			Str("uri", doc.URI).
			Int32("version", doc.Version).
			Msg("stale document version, skipping publish")
		return nil
	}

	lines := highlight.DiffLines(tokens, prev)
	if len(lines) == 0 {
		return nil
	}

	params := SemanticHighlightingParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{
				URI: protocol.DocumentUri(doc.URI),
			},
			Version: protocol.Integer(doc.Version),
		},
		Lines: highlight.Encode(lines),
	}

	logger.Debug().
		Str("uri", doc.URI).
		Int("changed_lines", len(lines)).
		Msg("publishing semantic highlightings")

	glspCtx.Notify(MethodSemanticHighlighting, params)
	return nil
}

// replaceRange splices text over the given line/column range of content.
func replaceRange(content string, r protocol.Range, text string) string {
	start := offsetAt(content, int(r.Start.Line), int(r.Start.Character))
	end := offsetAt(content, int(r.End.Line), int(r.End.Character))
	if start > end {
		start, end = end, start
	}
	return content[:start] + text + content[end:]
}

// offsetAt converts a zero-based line/character position to a byte
// offset. Character counts UTF-16 code units, the protocol's position
// encoding; positions past the end of a line clamp to it.
func offsetAt(content string, line, character int) int {
	offset := 0
	for line > 0 && offset < len(content) {
		if content[offset] == '\n' {
			line--
		}
		offset++
	}
	units := 0
	for offset < len(content) && units < character {
		r, size := utf8.DecodeRuneInString(content[offset:])
		if r == '\n' {
			break
		}
		units++
		if r > 0xFFFF {
			// Surrogate pair.
			units++
		}
		offset += size
	}
	return offset
}
