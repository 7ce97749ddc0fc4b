package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SpotifyID       string
	SpotifySecret   string
	Addr            string  `default:":8080"`
	Market          string  `default:"US"`
	AcceptThreshold float64 `default:"72"`
	MaxRecs         int     `default:"3"`
	TrackPopMax     int     `default:"35"`
	ArtistPopMax    int     `default:"45"`
	PerBucket       int     `default:"5"`
}

func ProvideConfig() Config {
	var cfg Config
	err := envconfig.Process("songrec", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
