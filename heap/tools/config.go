package main

import "github.com/kelseyhightower/envconfig"

const configPrefix = "HEAPTOOL"

type config struct {
	Order    string `envconfig:"ORDER" default:"max"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process(configPrefix, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
