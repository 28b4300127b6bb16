package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	AMQP     AMQPConfig     `yaml:"amqp"`
	Portal   PortalConfig   `yaml:"portal"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds settings for the ops HTTP listener (health, metrics).
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AMQPConfig holds RabbitMQ settings for the outbound notification publisher.
// An empty URL disables publishing (events are logged and dropped).
type AMQPConfig struct {
	URL      string `yaml:"url"      env:"AMQP_URL"`
	Exchange string `yaml:"exchange" env:"AMQP_EXCHANGE" env-default:"firmdesk.events"`
	Queue    string `yaml:"queue"    env:"AMQP_QUEUE"    env-default:"notifications"`
}

// PortalConfig holds domain limits for the document portal.
type PortalConfig struct {
	MinYear          int `yaml:"min_year"           env:"PORTAL_MIN_YEAR"           env-default:"2020"`
	MaxYear          int `yaml:"max_year"           env:"PORTAL_MAX_YEAR"           env-default:"2100"`
	MaxFilesPerBatch int `yaml:"max_files_per_batch" env:"PORTAL_MAX_FILES_PER_BATCH" env-default:"20"`
	MaxNoteLength    int `yaml:"max_note_length"    env:"PORTAL_MAX_NOTE_LENGTH"    env-default:"2000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
