package providers

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gritd/internal/structures"
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

const AppName = "GritTracker"

func setDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("webServer.port", 8420)
	v.SetDefault("persistence.driver", "file")
	v.SetDefault("persistence.compress", false)
	v.SetDefault("persistence.refreshInterval", time.Minute)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("tracker.trendDays", 7)
	v.SetDefault("cache.ttl", time.Minute)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	// A .env next to the config file may carry the GRIT_* overrides.
	envFile := filepath.Join(filepath.Dir(flags.ConfigPath), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load %s: %w", envFile, err)
	}

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")
	setDefaults(v)

	v.BindEnv("logger.level", "GRIT_LOG_LEVEL")
	v.BindEnv("persistence.filePath", "GRIT_STORAGE_PATH")
	v.BindEnv("persistence.driver", "GRIT_STORAGE_DRIVER")
	v.BindEnv("tracker.timeZone", "GRIT_TIMEZONE")
	v.BindEnv("cache.enabled", "GRIT_CACHE_ENABLED")
	v.BindEnv("cache.size", "GRIT_CACHE_SIZE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
