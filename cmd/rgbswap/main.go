package main

import (
	"os"

	"github.com/rgb-tools/rgbswap/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// nolint:all
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfg *config.Config

func main() {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	log.SetLevel(log.Level(cfg.LogLevel))

	app := cli.NewApp()

	app.Version = version
	app.Name = "rgbswap CLI"
	app.Usage = "forge, decode and validate swap offer strings"
	app.Commands = append(
		app.Commands,
		&decode,
		&forge,
		&forgetrade,
	)

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
