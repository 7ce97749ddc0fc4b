package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"lowercases", "Blinding Lights", "blinding lights"},
		{"strips diacritics", "Beyoncé", "beyonce"},
		{"strips diacritics and punctuation", "Déjà-Vu (Remix)", "deja vu remix"},
		{"collapses whitespace", "  The   Weeknd  ", "the weeknd"},
		{"punctuation becomes space", "AC/DC", "ac dc"},
		{"keeps digits", "Summer of '69", "summer of 69"},
		{"garbage only", "!!!---***", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Blinding Lights", "Beyoncé", "  AC/DC!! ", "señorita", ""}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", in)
	}
}

func TestSimilarityIdentical(t *testing.T) {
	for _, s := range []string{"blinding lights", "the weeknd", "a"} {
		assert.Equal(t, 100.0, Similarity(s, s))
	}
}

func TestSimilarityTokenOrderInsensitive(t *testing.T) {
	assert.Equal(t, 100.0, Similarity("blinding lights", "lights blinding"))
}

func TestSimilaritySymmetricAndBounded(t *testing.T) {
	pairs := [][2]string{
		{"blinding lights", "blinding lights"},
		{"yelow", "yellow"},
		{"coldpl", "coldplay"},
		{"the weeknd", "luis fonsi"},
		{"", "something"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		assert.Equal(t, ab, ba, "similarity must be symmetric for %q/%q", p[0], p[1])
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 100.0)
	}
}

func TestSimilarityEmptySide(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "yellow"))
	assert.Equal(t, 0.0, Similarity("yellow", ""))
}

func TestSimilarityTypos(t *testing.T) {
	// Close misspellings must stay well above unrelated strings.
	typo := Similarity("yelow", "yellow")
	unrelated := Similarity("yelow", "bohemian rhapsody")
	assert.Greater(t, typo, 80.0)
	assert.Less(t, unrelated, 40.0)
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("Blinding  Lights!", "THE WEEKND"), Key("blinding lights", "the weeknd"))
	assert.NotEqual(t, Key("Blinding Lights", "The Weeknd"), Key("Save Your Tears", "The Weeknd"))
}
