package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Secret   SecretConfig
	SAP      SAPConfig
	Database DatabaseConfig
	Server   ServerConfig
	Logger   LoggerConfig
}

type SecretConfig struct {
	Name string
}

type SAPConfig struct {
	SID          string
	XMICompany   string
	XMIProduct   string
	XMIInterface string
	XMIVersion   string
	XMIExtUser   string
	TraceLevel   string
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type ServerConfig struct {
	Host string
	Port int
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SECRET_NAME", "test/ccms_lambda")
	v.SetDefault("SAP_SID", "ABA")
	v.SetDefault("XMI_COMPANY", "DUMMY")
	v.SetDefault("XMI_PRODUCT", "DUMMY")
	v.SetDefault("XMI_INTERFACE", "XAL")
	v.SetDefault("XMI_VERSION", "1.0")
	v.SetDefault("XMI_EXT_USER", "DUMMY")
	v.SetDefault("RFC_TRACE_LEVEL", "0")
	v.SetDefault("DATABASE_ENABLED", false)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_NAME", "ccms")
	v.SetDefault("DATABASE_USER", "ccms")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 4)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 1)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	lifetime, err := time.ParseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"))
	if err != nil {
		lifetime = 30 * time.Minute
	}

	cfg := &Config{
		Secret: SecretConfig{
			Name: v.GetString("SECRET_NAME"),
		},
		SAP: SAPConfig{
			SID:          v.GetString("SAP_SID"),
			XMICompany:   v.GetString("XMI_COMPANY"),
			XMIProduct:   v.GetString("XMI_PRODUCT"),
			XMIInterface: v.GetString("XMI_INTERFACE"),
			XMIVersion:   v.GetString("XMI_VERSION"),
			XMIExtUser:   v.GetString("XMI_EXT_USER"),
			TraceLevel:   v.GetString("RFC_TRACE_LEVEL"),
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("DATABASE_ENABLED"),
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			Name:            v.GetString("DATABASE_NAME"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: lifetime,
		},
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
