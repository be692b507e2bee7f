package config

import (
	"github.com/spf13/viper"

	"airdash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Charts ChartConfig
	Export ExportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// DataConfig holds data source settings
type DataConfig struct {
	File string `mapstructure:"file"` // CSV or XLSX listings file
}

// ChartConfig holds aggregation tuning
type ChartConfig struct {
	HistogramBins int `mapstructure:"histogram_bins"`
	TopHosts      int `mapstructure:"top_hosts"`
	TopExpensive  int `mapstructure:"top_expensive"`
}

// ExportConfig holds workbook export settings
type ExportConfig struct {
	Dir string `mapstructure:"export_dir"`
}

// Load reads configuration from the environment (AIRDASH_ prefix), an
// optional config file, and defaults. Precedence: env > file > defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AIRDASH")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("file", "data_airbnb.csv")
	v.SetDefault("histogram_bins", 40)
	v.SetDefault("top_hosts", 10)
	v.SetDefault("top_expensive", 10)
	v.SetDefault("export_dir", "exports")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("airdash")
		v.SetConfigType("yaml")
		// Config file is optional when unnamed.
		_ = v.ReadInConfig()
	}

	config := &Config{
		Server: ServerConfig{Port: v.GetString("port")},
		Data:   DataConfig{File: v.GetString("file")},
		Charts: ChartConfig{
			HistogramBins: v.GetInt("histogram_bins"),
			TopHosts:      v.GetInt("top_hosts"),
			TopExpensive:  v.GetInt("top_expensive"),
		},
		Export: ExportConfig{Dir: v.GetString("export_dir")},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("listings file path is required")
	}
	if config.Charts.HistogramBins < 1 {
		return errors.ConfigInvalid("histogram bin count must be positive")
	}
	if config.Charts.TopHosts < 1 || config.Charts.TopExpensive < 1 {
		return errors.ConfigInvalid("top-N sizes must be positive")
	}
	if config.Export.Dir == "" {
		return errors.ConfigInvalid("export directory is required")
	}
	return nil
}
