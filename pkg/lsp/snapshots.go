package lsp

import (
	"sync"

	"github.com/walteh/semhl/pkg/highlight"
)

// snapshot is the canonical token set of one committed document version.
type snapshot struct {
	version int32
	tokens  []highlight.Token
}

// SnapshotStore holds the previous highlighting snapshot per document,
// the only mutable state the diff runs against. Updates are serialized
// by document version: a stale update is rejected, so diffs are always
// computed against the immediately preceding committed version. Only the
// current and the immediately previous snapshot ever exist.
type SnapshotStore struct {
	mu    sync.Mutex
	snaps map[string]*snapshot
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		snaps: make(map[string]*snapshot),
	}
}

// Update commits tokens as the snapshot for uri at version and returns
// the previous snapshot's tokens to diff against (nil when there was
// none). ok is false when a newer version is already committed; the
// caller must drop the stale result unpublished.
func (s *SnapshotStore) Update(uri string, version int32, tokens []highlight.Token) ([]highlight.Token, bool) {
	key := normalizeURI(uri)

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.snaps[key]
	if prev != nil && prev.version > version {
		return nil, false
	}
	s.snaps[key] = &snapshot{version: version, tokens: tokens}
	if prev == nil {
		return nil, true
	}
	return prev.tokens, true
}

// Drop discards the snapshot for uri, forcing the next update to report
// every populated line.
func (s *SnapshotStore) Drop(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, normalizeURI(uri))
}
