package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/theflywheel/ohash"
)

// config controls the demo via OHASH_* environment variables or a .env file.
type config struct {
	Entries  int  `default:"100"`
	FullDump bool `split_words:"true" default:"false"`
}

func loadConfig() (*config, error) {
	_ = godotenv.Overload()
	cfg := new(config)
	if err := envconfig.Process("ohash", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	log.Info().Int("entries", cfg.Entries).Msg("starting up...")

	tab := ohash.New[string, int](ohash.HashString, ohash.Equal[string](), func(k string, v int) string {
		return fmt.Sprintf("%s => %d", k, v)
	})

	// Insert some data
	for i := 0; i < cfg.Entries; i++ {
		tab.Put(fmt.Sprintf("key-%d", i), i*100)
	}
	log.Info().
		Int("size", tab.Size()).
		Int("capacity", tab.Capacity()).
		Uint64("collisions", tab.Collisions()).
		Uint64("rehashes", tab.Rehashes()).
		Msg("inserted key-value pairs")

	// Retrieve and display some values
	for i := 0; i < cfg.Entries+5; i += 2 {
		key := fmt.Sprintf("key-%d", i)
		if tab.Has(key) {
			log.Info().Str("key", key).Int("value", tab.Get(key)).Msg("found")
		} else {
			log.Warn().Str("key", key).Msg("not found")
		}
	}

	// Update a value and show the previous one
	old, replaced := tab.Put("key-2", 999)
	log.Info().Int("old", old).Bool("replaced", replaced).Msg("updated key-2")

	tab.Dump(os.Stdout, cfg.FullDump)

	tab.Destroy()
	log.Info().Msg("done!")
}
