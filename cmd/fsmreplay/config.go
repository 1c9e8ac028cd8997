package main

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type config struct {
	Table    string `env:"FSM_TABLE,required"`
	Initial  string `env:"FSM_INITIAL"`
	LogLevel string `env:"FSM_LOG_LEVEL" envDefault:"info"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

func (c config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return lvl, nil
}
