package main

import "time"

type Config struct {
	Token             string        `env:"BOT_TOKEN,required=true"`
	PlatformAPIURL    string        `env:"PLATFORM_API_URL,required=true"`
	ListenAddr        string        `env:"LISTEN_ADDR,default=:8080"`
	WatchlistFilepath string        `env:"WATCHLIST_FILEPATH,default=monitored_users.json"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	AuditChannelName  string        `env:"AUDIT_CHANNEL_NAME,default=tracked-users"`
	AuditChannelTopic string        `env:"AUDIT_CHANNEL_TOPIC,default=Logs for monitored user messages"`
	BufferSize        int           `env:"BUFFER_SIZE,default=256"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	LogLevel          string        `env:"LOG_LEVEL,default=info"`
}
