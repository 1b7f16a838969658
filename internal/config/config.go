package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort            int    `mapstructure:"APP_PORT"`
	DatabasePath       string `mapstructure:"DATABASE_PATH"`
	MaxResults         int    `mapstructure:"MAX_RESULTS"`
	TurnTimeoutSeconds int    `mapstructure:"TURN_TIMEOUT_SECONDS"`
	WelcomeMessage     string `mapstructure:"WELCOME_MESSAGE"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/carmatch.db")
	viper.SetDefault("MAX_RESULTS", 5)
	viper.SetDefault("TURN_TIMEOUT_SECONDS", 10)
	viper.SetDefault("WELCOME_MESSAGE", "Hi! Tell me what kind of car you are looking for and I'll suggest some matches.")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
