package config

import (
	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/store/mysql"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	// Driver is "sqlite" (default) or "mysql".
	Driver string       `mapstructure:"driver"`
	Path   string       `mapstructure:"path"`
	MySQL  mysql.Config `mapstructure:"mysql"`
}

// DefaultsConfig holds the terms offered when an account is opened without explicit ones.
// Rates and limits are decimal strings.
type DefaultsConfig struct {
	Currency       string `mapstructure:"currency"`
	InterestRate   string `mapstructure:"interest_rate"`
	OverdraftLimit string `mapstructure:"overdraft_limit"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			Path:   "",
			MySQL:  mysql.DefaultConfig(),
		},
		Defaults: DefaultsConfig{
			Currency:       "USD",
			InterestRate:   constants.DefaultInterestRate,
			OverdraftLimit: constants.DefaultOverdraftLimit,
		},
		Log: LogConfig{Level: "warn"},
	}
}
