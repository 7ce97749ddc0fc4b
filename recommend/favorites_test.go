package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"songrec/normalize"
)

func TestCollectFavoritesTrimsAndFilters(t *testing.T) {
	usable, warnings := CollectFavorites([]Favorite{
		{Title: "  Blinding Lights ", Artist: " The Weeknd "},
		{Title: "", Artist: ""},
		{Title: "Yellow", Artist: "Coldplay"},
	})

	assert.Equal(t, []Favorite{
		{Title: "Blinding Lights", Artist: "The Weeknd"},
		{Title: "Yellow", Artist: "Coldplay"},
	}, usable)
	assert.Empty(t, warnings)
}

func TestCollectFavoritesPartialInputWarnings(t *testing.T) {
	usable, warnings := CollectFavorites([]Favorite{
		{Title: "Blinding Lights"},
		{Artist: "Coldplay"},
		{Title: "   ", Artist: "  "},
	})

	assert.Empty(t, usable)
	assert.Equal(t, []string{
		"Favorite #1: Title entered but Artist is missing.",
		"Favorite #2: Artist entered but Title is missing.",
	}, warnings)
}

func TestCollectFavoritesCapsAtThree(t *testing.T) {
	usable, _ := CollectFavorites([]Favorite{
		{Title: "a", Artist: "1"},
		{Title: "b", Artist: "2"},
		{Title: "c", Artist: "3"},
		{Title: "d", Artist: "4"},
	})
	assert.Len(t, usable, 3)
}

func TestFavoriteKeysNormalized(t *testing.T) {
	keys := FavoriteKeys([]Favorite{{Title: "Blinding  Lights!", Artist: "THE WEEKND"}})

	_, ok := keys[normalize.Key("blinding lights", "the weeknd")]
	assert.True(t, ok, "key lookup must be normalization-insensitive")
	assert.Len(t, keys, 1)
}
