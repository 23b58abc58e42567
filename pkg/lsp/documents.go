package lsp

import (
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// normalizeURI strips the file scheme so documents, snapshots and
// watcher events all key on the same plain path.
func normalizeURI(uri string) string {
	uri = strings.TrimPrefix(uri, "file://")
	uri = strings.TrimPrefix(uri, "file:")
	return uri
}

// Document is one open text document with its metadata.
type Document struct {
	URI        string
	LanguageID string
	Version    int32
	Content    string
}

// DocumentManager tracks open documents, falling back to the filesystem
// for documents the client never opened.
type DocumentManager struct {
	store *sync.Map // map[string]*Document
	fs    afero.Fs
}

func NewDocumentManager(fs afero.Fs) *DocumentManager {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &DocumentManager{
		store: &sync.Map{},
		fs:    fs,
	}
}

func (m *DocumentManager) Get(uri string) (*Document, bool) {
	normalized := normalizeURI(uri)
	if content, ok := m.store.Load(normalized); ok {
		doc, ok := content.(*Document)
		return doc, ok
	}

	raw, err := afero.ReadFile(m.fs, normalized)
	if err != nil {
		return nil, false
	}
	doc := &Document{
		URI:     normalized,
		Content: string(raw),
	}
	m.store.Store(normalized, doc)
	return doc, true
}

// Peek returns the document only if it is already tracked, without the
// filesystem fallback Get performs.
func (m *DocumentManager) Peek(uri string) (*Document, bool) {
	if content, ok := m.store.Load(normalizeURI(uri)); ok {
		doc, ok := content.(*Document)
		return doc, ok
	}
	return nil, false
}

func (m *DocumentManager) Store(uri string, doc *Document) {
	m.store.Store(normalizeURI(uri), doc)
}

func (m *DocumentManager) Delete(uri string) {
	m.store.Delete(normalizeURI(uri))
}
