package lsp

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{
			name: "test_file_scheme_with_authority",
			uri:  "file:///home/user/main.cpp",
			want: "/home/user/main.cpp",
		},
		{
			name: "test_file_scheme_without_authority",
			uri:  "file:/home/user/main.cpp",
			want: "/home/user/main.cpp",
		},
		{
			name: "test_plain_path_passes_through",
			uri:  "/home/user/main.cpp",
			want: "/home/user/main.cpp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeURI(tt.uri))
		})
	}
}

func TestDocumentManager(t *testing.T) {
	t.Run("test_store_and_get", func(t *testing.T) {
		manager := NewDocumentManager(afero.NewMemMapFs())

		doc := &Document{
			URI:        "/main.cpp",
			LanguageID: "cpp",
			Version:    1,
			Content:    "int x;",
		}
		manager.Store("file:///main.cpp", doc)

		got, ok := manager.Get("/main.cpp")
		require.True(t, ok)
		assert.Equal(t, doc, got)
	})

	t.Run("test_unopened_document_falls_back_to_filesystem", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/on-disk.cpp", []byte("int y;"), 0644))

		manager := NewDocumentManager(fs)

		got, ok := manager.Get("file:///on-disk.cpp")
		require.True(t, ok)
		assert.Equal(t, "/on-disk.cpp", got.URI)
		assert.Equal(t, "int y;", got.Content)
		assert.Empty(t, got.LanguageID)
	})

	t.Run("test_missing_document_reports_not_found", func(t *testing.T) {
		manager := NewDocumentManager(afero.NewMemMapFs())

		_, ok := manager.Get("file:///nowhere.cpp")
		assert.False(t, ok)
	})

	t.Run("test_peek_never_reads_the_filesystem", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/on-disk.cpp", []byte("int y;"), 0644))

		manager := NewDocumentManager(fs)

		_, ok := manager.Peek("file:///on-disk.cpp")
		assert.False(t, ok)

		doc := &Document{URI: "/on-disk.cpp", LanguageID: "cpp", Content: "int y;"}
		manager.Store("/on-disk.cpp", doc)

		got, ok := manager.Peek("file:///on-disk.cpp")
		require.True(t, ok)
		assert.Equal(t, doc, got)
	})

	t.Run("test_delete_removes_document", func(t *testing.T) {
		manager := NewDocumentManager(afero.NewMemMapFs())
		manager.Store("/main.cpp", &Document{URI: "/main.cpp", Content: "int x;"})

		manager.Delete("file:///main.cpp")

		_, ok := manager.Get("/main.cpp")
		assert.False(t, ok)
	})
}
