package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel       uint32
	DefaultExpiry  uint64
	MaxOfferLength int
}

var (
	LogLevel       = "LOG_LEVEL"
	DefaultExpiry  = "DEFAULT_EXPIRY"
	MaxOfferLength = "MAX_OFFER_LENGTH"

	defaultLogLevel       = 4
	defaultExpiry         = 3600
	defaultMaxOfferLength = 2048
)

func LoadConfig() (*Config, error) {
	viper.SetEnvPrefix("RGBSWAP")
	viper.AutomaticEnv()

	viper.SetDefault(LogLevel, defaultLogLevel)
	viper.SetDefault(DefaultExpiry, defaultExpiry)
	viper.SetDefault(MaxOfferLength, defaultMaxOfferLength)

	config := &Config{
		LogLevel:       viper.GetUint32(LogLevel),
		DefaultExpiry:  viper.GetUint64(DefaultExpiry),
		MaxOfferLength: viper.GetInt(MaxOfferLength),
	}

	if config.DefaultExpiry == 0 {
		return nil, fmt.Errorf("%s must be positive", DefaultExpiry)
	}
	if config.MaxOfferLength <= 0 {
		return nil, fmt.Errorf("%s must be positive", MaxOfferLength)
	}

	return config, nil
}
