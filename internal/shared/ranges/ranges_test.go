package ranges_test

import (
	"testing"

	"go-payroll/internal/shared/ranges"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		min1 int
		max1 *int
		min2 int
		max2 *int
		want bool
	}{
		{"shared boundary", 0, intPtr(5), 5, intPtr(10), true},
		{"disjoint bounded", 0, intPtr(4), 5, intPtr(10), false},
		{"nested", 0, intPtr(10), 3, intPtr(6), true},
		{"identical", 2, intPtr(7), 2, intPtr(7), true},
		{"unbounded covers bounded", 0, nil, 10, intPtr(20), true},
		{"unbounded starts after bounded ends", 25, nil, 10, intPtr(20), false},
		{"unbounded starts at bounded max", 20, nil, 10, intPtr(20), true},
		{"bounded vs unbounded", 10, intPtr(20), 0, nil, true},
		{"both unbounded", 0, nil, 0, nil, true},
		{"both unbounded distant mins", 0, nil, 40, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ranges.Overlaps(tt.min1, tt.max1, tt.min2, tt.max2))
			// overlap is symmetric
			assert.Equal(t, tt.want, ranges.Overlaps(tt.min2, tt.max2, tt.min1, tt.max1))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, ranges.Contains(3, intPtr(6), 3))
	assert.True(t, ranges.Contains(3, intPtr(6), 6))
	assert.False(t, ranges.Contains(3, intPtr(6), 7))
	assert.False(t, ranges.Contains(3, intPtr(6), 2))
	assert.True(t, ranges.Contains(3, nil, 40))
	assert.False(t, ranges.Contains(3, nil, 2))
}
