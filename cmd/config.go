package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

type EndpointConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type TableConfig struct {
	Name   string `mapstructure:"name"`
	Schema string `mapstructure:"schema"`
}

type PipelineConfig struct {
	Source EndpointConfig `mapstructure:"source"`
	Target EndpointConfig `mapstructure:"target"`
	Tables []TableConfig  `mapstructure:"tables"`
}

// GetPipelineConfig returns the migration pipeline configuration.
func GetPipelineConfig() (*PipelineConfig, error) {
	var config PipelineConfig

	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline config: %w", err)
	}

	if config.Source.DSN == "" {
		return nil, fmt.Errorf("source.dsn is required (via flag or config)")
	}
	if config.Target.DSN == "" {
		return nil, fmt.Errorf("target.dsn is required (via flag or config)")
	}
	if config.Source.Driver == "" {
		config.Source.Driver = "mysql"
	}
	if config.Target.Driver == "" {
		config.Target.Driver = "mysql"
	}
	if len(config.Tables) == 0 {
		return nil, fmt.Errorf("at least one target table is required (tables: [{name, schema}])")
	}

	return &config, nil
}
