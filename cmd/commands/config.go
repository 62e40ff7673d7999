package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	ResultsPath string   `mapstructure:"results_path"`
	Metrics     []string `mapstructure:"metrics"`
	Format      string   `mapstructure:"format"`
	Output      string   `mapstructure:"output"`
	Diagnostics bool     `mapstructure:"diagnostics"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".memeval")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
