package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/emacsmirror/wordel/internal/config"
	"github.com/emacsmirror/wordel/internal/console"
	"github.com/emacsmirror/wordel/internal/httpserver"
	"github.com/emacsmirror/wordel/internal/play"
	"github.com/emacsmirror/wordel/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// MODE=play runs a local marathon on the terminal; the default is
	// the HTTP server.
	if getEnv("MODE", "serve") == "play" {
		illegal, _ := cfg.Illegal()
		score, outcome := play.RunMarathon(console.New(os.Stdin, os.Stdout), play.Config{
			BaseLength:   cfg.BaseLength,
			AttemptLimit: cfg.AttemptLimit,
			Illegal:      illegal,
			Load:         play.SourceLoader(cfg.Source()),
		})
		log.Info().Int("score", score).Str("outcome", string(outcome)).Msg("marathon done")
		return
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, cfg)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting wordel server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
