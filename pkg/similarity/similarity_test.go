package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		name string
		s1   string
		s2   string
		want int
	}{
		{"identical strings", "hello", "hello", 0},
		{"single substitution", "hello", "hallo", 1},
		{"classic kitten sitting", "kitten", "sitting", 3},
		{"insertion only", "hi", "his", 1},
		{"empty against word", "", "abc", 3},
		{"both empty", "", "", 0},
		{"completely different", "abc", "xyz", 3},
		{"accented characters count as one edit", "café", "cafe", 1},
		{"multibyte strings compare per rune", "naïve", "naive", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EditDistance(tt.s1, tt.s2))
		})
	}
}

func TestScore(t *testing.T) {
	t.Run("identical strings score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, Score("hello", "hello"))
	})

	t.Run("both empty score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, Score("", ""))
	})

	t.Run("completely different strings score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Score("abc", "xyz"))
	})

	t.Run("normalized by longer length", func(t *testing.T) {
		// distance 3 over length 7
		assert.InDelta(t, 4.0/7.0, Score("kitten", "sitting"), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, Score("hello there", "hello"), Score("hello", "hello there"))
	})

	t.Run("near duplicates clear the threshold", func(t *testing.T) {
		assert.Greater(t, Score("hello", "hallo"), NearDuplicateThreshold)
	})

	t.Run("normalized by rune count not byte count", func(t *testing.T) {
		// distance 1 over 4 runes, not 2 over 5 bytes
		assert.InDelta(t, 0.75, Score("café", "cafe"), 1e-9)
	})
}
