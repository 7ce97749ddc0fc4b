package recommend

import (
	"fmt"
	"strings"

	"songrec/normalize"
)

// CollectFavorites trims the supplied rows and splits them into usable
// pairs and per-slot warnings. A pair is usable only when both fields are
// non-empty after trimming; a pair with exactly one field filled produces a
// warning so the caller can flag the half-finished slot. Fully empty rows
// are skipped silently.
func CollectFavorites(rows []Favorite) ([]Favorite, []string) {
	if len(rows) > MaxFavorites {
		rows = rows[:MaxFavorites]
	}

	var usable []Favorite
	var warnings []string
	for i, row := range rows {
		title := strings.TrimSpace(row.Title)
		artist := strings.TrimSpace(row.Artist)
		switch {
		case title != "" && artist != "":
			usable = append(usable, Favorite{Title: title, Artist: artist})
		case title != "":
			warnings = append(warnings, fmt.Sprintf("Favorite #%d: Title entered but Artist is missing.", i+1))
		case artist != "":
			warnings = append(warnings, fmt.Sprintf("Favorite #%d: Artist entered but Title is missing.", i+1))
		}
	}
	return usable, warnings
}

// FavoriteKeys builds the normalized key set for the original favorites,
// computed once per request and used to drop exact duplicates from the
// standard recommendations.
func FavoriteKeys(favs []Favorite) map[string]struct{} {
	keys := make(map[string]struct{}, len(favs))
	for _, f := range favs {
		keys[normalize.Key(f.Title, f.Artist)] = struct{}{}
	}
	return keys
}
