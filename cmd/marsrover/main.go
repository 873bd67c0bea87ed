package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"marsrover/internal/config"
	"marsrover/internal/game"
	"marsrover/internal/logging"
)

func main() {
	fs := pflag.NewFlagSet("marsrover", pflag.ExitOnError)
	path := config.Flags(fs)
	_ = fs.Parse(os.Args[1:])

	if err := config.BindFlags(fs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.Setup(cfg.LogLevel)
	if err := game.RunDesktop(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("marsrover stopped")
	}
}
