package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Garsondee/Last-Hope/internal/audio"
	"github.com/Garsondee/Last-Hope/internal/config"
	"github.com/Garsondee/Last-Hope/internal/game"
)

func main() {
	var profile, path, level string
	var seed int64
	var mute, dump bool

	flag.StringVar(&profile, "profile", "", "tuning profile (classic, overheat); wins over the config file")
	flag.StringVar(&path, "config", "", "YAML file layered over the profile")
	flag.Int64Var(&seed, "seed", 0, "RNG seed; 0 keeps the config value (0 there means clock)")
	flag.BoolVar(&mute, "mute", false, "start with audio off")
	flag.StringVar(&level, "log-level", "", "trace, debug, info, warn or error; wins over the config file")
	flag.BoolVar(&dump, "dump-config", false, "print the resolved config as YAML and exit")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	cfg, err := config.Load(profile, path)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if seed != 0 {
		cfg.Host.Seed = seed
	}
	if mute {
		cfg.Host.Mute = true
	}
	if level != "" {
		cfg.Host.LogLevel = level
	}

	lvl := zerolog.InfoLevel
	if cfg.Host.LogLevel != "" {
		if lvl, err = zerolog.ParseLevel(cfg.Host.LogLevel); err != nil {
			log.Fatal().Err(err).Msg("log level")
		}
	}
	log.Logger = log.Logger.Level(lvl)

	if dump {
		b, err := config.Marshal(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("dump config")
		}
		os.Stdout.Write(b)
		return
	}

	sound := audio.NewSoundManager(cfg.Host.Volume, cfg.Host.Mute)
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, running muted")
		sound.SetMuted(true)
	}
	defer sound.Cleanup()

	g := game.New(cfg, sound, log.Logger)
	ebiten.SetWindowTitle("Last Hope")
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetTPS(g.TPS())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
