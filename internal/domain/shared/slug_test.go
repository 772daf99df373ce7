package shared

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Leafy", "leafy"},
		{"spaces", "Leafy Greens", "leafy-greens"},
		{"run of separators", "Fresh  &  Frozen", "fresh-frozen"},
		{"leading and trailing", "  Organic Veg!  ", "organic-veg"},
		{"digits kept", "Vitamin B12", "vitamin-b12"},
		{"already a slug", "leafy-greens", "leafy-greens"},
		{"only separators", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugify_SameNormalization(t *testing.T) {
	// Names differing only in case/punctuation collapse to the same key
	assert.Equal(t, Slugify("Leafy Greens"), Slugify("leafy---greens"))
	assert.Equal(t, Slugify("Leafy Greens"), Slugify("LEAFY GREENS!"))
}

func TestNewShortCode(t *testing.T) {
	code := NewShortCode("Kilogram")

	assert.True(t, strings.HasPrefix(code, "kilogram-"))
	assert.Len(t, code, len("kilogram-")+6)
}

func TestNewShortCode_Distinct(t *testing.T) {
	// The random suffix makes codes unique without a pre-check
	a := NewShortCode("Kilogram")
	b := NewShortCode("Kilogram")
	assert.NotEqual(t, a, b)
}

func TestNewShortCode_EmptyName(t *testing.T) {
	code := NewShortCode("!!!")
	assert.Len(t, code, 6)
	assert.False(t, strings.HasPrefix(code, "-"))
}
