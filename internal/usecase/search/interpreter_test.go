package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_FullQuery(t *testing.T) {
	c := Interpret("Show me running shoes under $100 with good reviews")

	maxPrice, ok := c.MaxPrice()
	require.True(t, ok)
	assert.Equal(t, 100.0, maxPrice)

	minRating, ok := c.MinRating()
	require.True(t, ok)
	assert.Equal(t, 4.0, minRating)

	assert.Equal(t, []string{"shoes"}, c.RequestedTypes())
	assert.Equal(t, []string{"running", "shoes", "$100", "reviews"}, c.Keywords())
	assert.Equal(t, "show me running shoes under $100 with good reviews", c.Query())
}

func TestInterpret_PricePhrases(t *testing.T) {
	tests := []struct {
		query string
		want  float64
		ok    bool
	}{
		{"laptops under $1500", 1500, true},
		{"less than 50 bucks", 50, true},
		{"below$20", 20, true},
		{"max 300", 300, true},
		{"maximum $75 headphones", 75, true},
		{"under $0", 0, true},
		{"under $40 or below $10", 40, true},
		{"over $100", 0, false},
		{"cheap stuff", 0, false},
		{"under budget", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got, ok := Interpret(tc.query).MaxPrice()
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestInterpret_RatingPhrases(t *testing.T) {
	tests := []struct {
		query string
		ok    bool
	}{
		{"good reviews", true},
		{"high rating", true},
		{"EXCELLENT Review", true},
		{"goodreviews", true},
		{"products with good ratings", true},
		{"rated 4.5", false},
		{"excellent shoes", false},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			floor, ok := Interpret(tc.query).MinRating()
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, 4.0, floor, "rating floor is fixed regardless of qualifier")
			}
		})
	}
}

func TestInterpret_RequestedTypesFollowVocabularyOrder(t *testing.T) {
	c := Interpret("kitchen gadgets and gaming laptops")
	assert.Equal(t, []string{"laptops", "gaming", "kitchen"}, c.RequestedTypes())
}

func TestInterpret_KeywordsKeepDuplicatesAndDropStopWords(t *testing.T) {
	c := Interpret("The red   red shoes for me and you  with high LOW bad over")
	assert.Equal(t, []string{"red", "red", "shoes", "you"}, c.Keywords())
}

func TestInterpret_NoStructure(t *testing.T) {
	c := Interpret("blue")

	_, hasPrice := c.MaxPrice()
	_, hasRating := c.MinRating()
	assert.False(t, hasPrice)
	assert.False(t, hasRating)
	assert.Empty(t, c.RequestedTypes())
	assert.False(t, c.HasHardConstraints())
	assert.Equal(t, []string{"blue"}, c.Keywords())
}

func TestInterpret_EmptyQuery(t *testing.T) {
	c := Interpret("")
	assert.False(t, c.HasHardConstraints())
	assert.Empty(t, c.Keywords())
}
