package main

import "github.com/kelseyhightower/envconfig"

// Config is read from the environment before the program starts.
type Config struct {
	CanvasWidth  int    `envconfig:"LAYERSDEMO_WIDTH" default:"600"`
	CanvasHeight int    `envconfig:"LAYERSDEMO_HEIGHT" default:"400"`
	Touch        bool   `envconfig:"LAYERSDEMO_TOUCH" default:"false"`
	HistoryDepth int    `envconfig:"LAYERSDEMO_HISTORY_DEPTH" default:"100"`
	ExportPath   string `envconfig:"LAYERSDEMO_EXPORT" default:"layers.png"`
	Debug        bool   `envconfig:"LAYERSDEMO_DEBUG" default:"false"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
