package test

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AuditChannelName  string `envconfig:"AUDIT_CHANNEL_NAME" default:"tracked-users"`
	AuditChannelTopic string `envconfig:"AUDIT_CHANNEL_TOPIC" default:"Messages from monitored users"`
	BufferSize        int    `envconfig:"BUFFER_SIZE" default:"16"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
