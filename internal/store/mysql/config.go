package mysql

import (
	"fmt"
	"time"
)

// Config holds the MySQL connection and pool settings.
type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`

	// LockWaitTimeout bounds how long a locked read waits for another transaction, in seconds.
	LockWaitTimeout int `mapstructure:"lock_wait_timeout"`

	// LogLevel is the GORM log level: "silent", "error", "warn", "info"
	LogLevel string `mapstructure:"log_level"`
}

// DSN builds user:password@tcp(host:port)/dbname?... with READ COMMITTED isolation.
func (c *Config) DSN() string {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&transaction_isolation=%%27READ-COMMITTED%%27",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
	)
	if c.LockWaitTimeout > 0 {
		dsn += fmt.Sprintf("&innodb_lock_wait_timeout=%d", c.LockWaitTimeout)
	}
	return dsn
}

func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            3306,
		User:            "root",
		DBName:          "bank",
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		LockWaitTimeout: 10,
		LogLevel:        "error",
	}
}
