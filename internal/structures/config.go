package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	Driver          string        `yaml:"driver" validate:"required|in:file,sqlite"`
	FilePath        string        `yaml:"filePath" validate:"required|unixPath"`
	Compress        bool          `yaml:"compress"`
	RefreshInterval time.Duration `yaml:"refreshInterval" validate:"required|min:1"`
	ArchiveDir      string        `yaml:"archiveDir"`
	ArchiveTTL      time.Duration `yaml:"archiveTTL"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type TrackerConfig struct {
	TimeZone  string `yaml:"timeZone"`
	TrendDays int    `yaml:"trendDays"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Tracker     TrackerConfig `yaml:"tracker"`
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}
