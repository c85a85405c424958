package config

import (
	"time"

	"taskboard/internal/service"
)

type Config struct {
	HTTPPort        string
	ShutdownTimeout time.Duration
	Delays          service.Delays
}

func New() Config {
	return Config{
		HTTPPort:        ":8080",
		ShutdownTimeout: time.Second * 10,
		Delays:          service.DefaultDelays(),
	}
}
