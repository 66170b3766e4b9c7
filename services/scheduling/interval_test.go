package scheduling

import (
	"testing"

	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tr(start, end int) models.TimeRange {
	return models.TimeRange{Start: start, End: end}
}

func TestNormalizeRanges(t *testing.T) {
	tests := []struct {
		name string
		in   []models.TimeRange
		want []models.TimeRange
	}{
		{"empty", nil, nil},
		{"single", []models.TimeRange{tr(60, 120)}, []models.TimeRange{tr(60, 120)}},
		{"unsorted", []models.TimeRange{tr(300, 360), tr(60, 120)}, []models.TimeRange{tr(60, 120), tr(300, 360)}},
		{"overlapping merge", []models.TimeRange{tr(60, 180), tr(120, 240)}, []models.TimeRange{tr(60, 240)}},
		{"touching merge", []models.TimeRange{tr(60, 120), tr(120, 180)}, []models.TimeRange{tr(60, 180)}},
		{"contained", []models.TimeRange{tr(60, 300), tr(120, 180)}, []models.TimeRange{tr(60, 300)}},
		{"drops empty", []models.TimeRange{tr(60, 60), tr(120, 100), tr(200, 240)}, []models.TimeRange{tr(200, 240)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeRanges(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, NormalizeRanges(got), "normalize must be idempotent")
		})
	}
}

func TestNormalizeRangesProducesDisjointSorted(t *testing.T) {
	in := []models.TimeRange{tr(500, 600), tr(0, 90), tr(80, 200), tr(90, 95), tr(600, 700), tr(250, 250)}
	got := NormalizeRanges(in)
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1].End, got[i].Start, "ranges must neither touch nor overlap")
	}
}

func TestIntersectRanges(t *testing.T) {
	a := []models.TimeRange{tr(480, 960)}  // 08:00-16:00
	b := []models.TimeRange{tr(540, 1020)} // 09:00-17:00

	got := IntersectRanges(a, b)
	assert.Equal(t, []models.TimeRange{tr(540, 960)}, got)

	// Commutative.
	assert.Equal(t, got, IntersectRanges(b, a))

	// Self-intersection is normalization.
	messy := []models.TimeRange{tr(120, 180), tr(60, 130)}
	assert.Equal(t, NormalizeRanges(messy), IntersectRanges(messy, messy))

	// Empty set annihilates.
	assert.Empty(t, IntersectRanges(a, nil))
	assert.Empty(t, IntersectRanges(nil, b))
}

func TestIntersectRangesAssociative(t *testing.T) {
	a := []models.TimeRange{tr(0, 300), tr(400, 700)}
	b := []models.TimeRange{tr(100, 500)}
	c := []models.TimeRange{tr(200, 450), tr(600, 900)}

	left := IntersectRanges(IntersectRanges(a, b), c)
	right := IntersectRanges(a, IntersectRanges(b, c))
	assert.Equal(t, left, right)
}

func TestIntersectRangesMultipleOverlaps(t *testing.T) {
	a := []models.TimeRange{tr(0, 100), tr(200, 300), tr(400, 500)}
	b := []models.TimeRange{tr(50, 250), tr(280, 450)}
	want := []models.TimeRange{tr(50, 100), tr(200, 250), tr(280, 300), tr(400, 450)}
	assert.Equal(t, want, IntersectRanges(a, b))
}

func TestSubtractRanges(t *testing.T) {
	base := []models.TimeRange{tr(480, 960)}

	t.Run("subtract nothing normalizes", func(t *testing.T) {
		assert.Equal(t, NormalizeRanges(base), SubtractRanges(base, nil))
	})

	t.Run("subtract self yields empty", func(t *testing.T) {
		assert.Empty(t, SubtractRanges(base, base))
	})

	t.Run("hole in the middle splits", func(t *testing.T) {
		got := SubtractRanges(base, []models.TimeRange{tr(540, 600)})
		assert.Equal(t, []models.TimeRange{tr(480, 540), tr(600, 960)}, got)
	})

	t.Run("clip at edges", func(t *testing.T) {
		got := SubtractRanges(base, []models.TimeRange{tr(400, 500), tr(900, 1000)})
		assert.Equal(t, []models.TimeRange{tr(500, 900)}, got)
	})

	t.Run("busy covering base removes it", func(t *testing.T) {
		assert.Empty(t, SubtractRanges(base, []models.TimeRange{tr(0, 1440)}))
	})

	t.Run("result never overlaps busy", func(t *testing.T) {
		busy := []models.TimeRange{tr(500, 550), tr(700, 800), tr(950, 1200)}
		got := SubtractRanges([]models.TimeRange{tr(480, 960), tr(1000, 1100)}, busy)
		for _, r := range got {
			for _, b := range busy {
				assert.False(t, r.Overlaps(b), "range %v overlaps busy %v", r, b)
			}
		}
	})
}
