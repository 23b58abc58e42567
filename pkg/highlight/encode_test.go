package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/semhl/pkg/highlight"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		lines    []highlight.Line
		expected []highlight.Highlighting
	}{
		{
			name:     "test_empty_diff_encodes_to_empty_list",
			lines:    nil,
			expected: nil,
		},
		{
			name: "test_single_token",
			lines: []highlight.Line{
				{Number: 2, Tokens: []highlight.Token{
					tok(highlight.Function, rng(2, 4, 2, 8)),
				}},
			},
			// start=4 (u32), length=4 (u16), kind=3 (u16), big endian.
			expected: []highlight.Highlighting{
				{Line: 2, Tokens: "AAAABAAEAAM="},
			},
		},
		{
			name: "test_cleared_line_encodes_empty_payload",
			lines: []highlight.Line{
				{Number: 5, Tokens: nil},
			},
			expected: []highlight.Highlighting{
				{Line: 5, Tokens: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, highlight.Encode(tt.lines))
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	lines := []highlight.Line{
		{Number: 10, Tokens: []highlight.Token{
			tok(highlight.Variable, rng(10, 2, 10, 5)),
			tok(highlight.Function, rng(10, 10, 10, 14)),
			tok(highlight.Macro, rng(10, 20, 10, 29)),
		}},
		{Number: 11, Tokens: []highlight.Token{
			tok(highlight.TemplateParameter, rng(11, 0, 11, 1)),
		}},
	}

	encoded := highlight.Encode(lines)
	require.Len(t, encoded, 2)

	recs, err := highlight.DecodeLine(encoded[0].Tokens)
	require.NoError(t, err)
	assert.Equal(t, []highlight.Record{
		{Start: 2, Length: 3, Kind: highlight.Variable},
		{Start: 10, Length: 4, Kind: highlight.Function},
		{Start: 20, Length: 9, Kind: highlight.Macro},
	}, recs)

	recs, err = highlight.DecodeLine(encoded[1].Tokens)
	require.NoError(t, err)
	assert.Equal(t, []highlight.Record{
		{Start: 0, Length: 1, Kind: highlight.TemplateParameter},
	}, recs)
}

func TestDecodeLineRejectsMalformedPayloads(t *testing.T) {
	t.Run("test_bad_base64", func(t *testing.T) {
		_, err := highlight.DecodeLine("!!!not-base64!!!")
		assert.Error(t, err)
	})

	t.Run("test_truncated_record", func(t *testing.T) {
		_, err := highlight.DecodeLine("AAAA") // 3 bytes
		assert.Error(t, err)
	})
}

func TestScopes(t *testing.T) {
	scopes := highlight.Scopes()
	require.Len(t, scopes, 18)

	// Ordinal order is the wire order.
	assert.Equal(t, []string{"variable.other.cpp"}, scopes[highlight.Variable])
	assert.Equal(t, []string{"entity.name.function.cpp"}, scopes[highlight.Function])
	assert.Equal(t, []string{"entity.name.function.method.static.cpp"}, scopes[highlight.StaticMethod])
	assert.Equal(t, []string{"entity.name.function.preprocessor.cpp"}, scopes[highlight.Macro])

	for k, scope := range scopes {
		assert.Len(t, scope, 1, "kind %s must map to exactly one scope", highlight.Kind(k))
		assert.NotEmpty(t, scope[0])
	}
}
