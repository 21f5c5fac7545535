package main

import "time"

type Config struct {
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=50051" validate:"gt=0"`
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
	RandomSeed           int64         `env:"RANDOM_SEED,default=31"`
	GeneratorInterval    time.Duration `env:"GENERATOR_INTERVAL,default=2500ms" validate:"gt=0"`
	PurchaserInterval    time.Duration `env:"PURCHASER_INTERVAL,default=1500ms" validate:"gt=0"`
	DeltaCheckInterval   time.Duration `env:"DELTA_CHECK_INTERVAL,default=1s" validate:"gt=0"`
	TelemetryInterval    time.Duration `env:"TELEMETRY_INTERVAL,default=5s" validate:"gt=0"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=16" validate:"gt=0"`
}
