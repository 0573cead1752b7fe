// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/alkavf71/pump-basic/internal/auth"
)

type Config struct {
	Server struct {
		DataPort int `mapstructure:"data_port"`
		UIPort   int `mapstructure:"ui_port"`
	} `mapstructure:"server"`
	Auth      auth.Config `mapstructure:"auth"`
	Diagnosis struct {
		// DefaultStandard applies when a request leaves the pump-standard
		// selector empty ("ISO10816" or "API610").
		DefaultStandard          string  `mapstructure:"default_standard"`
		VoltageUnbalancePct      float64 `mapstructure:"voltage_unbalance_pct"`
		CurrentUnbalanceMinorPct float64 `mapstructure:"current_unbalance_minor_pct"`
		CurrentUnbalanceMajorPct float64 `mapstructure:"current_unbalance_major_pct"`
	} `mapstructure:"diagnosis"`
}

var AppConfig Config

// LoadConfig reads config.yaml from the given directory, overlaying
// environment variables. A missing file is not fatal; defaults keep the
// service runnable.
func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AutomaticEnv()

	setDefaults()
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: no config file read: %v", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return err
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("server.data_port", 8080)
	viper.SetDefault("server.ui_port", 8081)
	viper.SetDefault("auth.jwt_expiration", 60)
	viper.SetDefault("diagnosis.default_standard", "ISO10816")
	viper.SetDefault("diagnosis.voltage_unbalance_pct", 1.0)
	viper.SetDefault("diagnosis.current_unbalance_minor_pct", 5.0)
	viper.SetDefault("diagnosis.current_unbalance_major_pct", 10.0)
}
