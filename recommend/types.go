package recommend

// MaxFavorites is the number of favorite slots a request may fill.
const MaxFavorites = 3

// Favorite is one user-supplied (title, artist) pair.
type Favorite struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// ResolvedArtist is the catalog artist identity inferred from one favorite.
type ResolvedArtist struct {
	ID     string
	Name   string
	Genres []string
}

// Item is a single recommendation: display text plus a catalog link.
type Item struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Bucket is a labeled, independently capped group of niche recommendations.
type Bucket struct {
	Label string `json:"label"`
	Items []Item `json:"items"`
}
