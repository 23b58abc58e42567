package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/semhl/pkg/position"
)

func TestPlaceOrdering(t *testing.T) {
	tests := []struct {
		name   string
		a, b   position.Place
		before bool
	}{
		{
			name:   "test_earlier_line",
			a:      position.Place{Line: 1, Character: 9},
			b:      position.Place{Line: 2, Character: 0},
			before: true,
		},
		{
			name:   "test_same_line_earlier_character",
			a:      position.Place{Line: 3, Character: 4},
			b:      position.Place{Line: 3, Character: 5},
			before: true,
		},
		{
			name:   "test_equal_places",
			a:      position.Place{Line: 3, Character: 4},
			b:      position.Place{Line: 3, Character: 4},
			before: false,
		},
		{
			name:   "test_later_line",
			a:      position.Place{Line: 5, Character: 0},
			b:      position.Place{Line: 4, Character: 100},
			before: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.before, tt.a.Before(tt.b))
			if tt.before {
				assert.Equal(t, -1, tt.a.Compare(tt.b))
				assert.Equal(t, 1, tt.b.Compare(tt.a))
			}
		})
	}
}

func TestRangeCompare(t *testing.T) {
	base := position.NewRange(1, 2, 1, 6)

	tests := []struct {
		name string
		r    position.Range
		want int
	}{
		{
			name: "test_equal_ranges",
			r:    position.NewRange(1, 2, 1, 6),
			want: 0,
		},
		{
			name: "test_later_start",
			r:    position.NewRange(1, 3, 1, 6),
			want: 1,
		},
		{
			name: "test_same_start_longer_end",
			r:    position.NewRange(1, 2, 2, 0),
			want: 1,
		},
		{
			name: "test_earlier_start",
			r:    position.NewRange(0, 9, 1, 6),
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Compare(base))
		})
	}
}
