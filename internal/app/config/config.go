package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	LogLevel    string
	LogFormat   string // text or json
	Catalog     CatalogConfig
	CORS        CORSConfig
	MinIO       MinIOConfig
}

type CatalogConfig struct {
	// Path of a directory with tools.yaml, roles.yaml and procurement.yaml.
	// Empty means the catalog compiled into the binary.
	Path string
}

type CORSConfig struct {
	AllowOrigins []string
}

// MinIOConfig configures the optional report archive. An empty Endpoint disables it.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

const (
	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogFormat", "text")
	v.SetDefault("Catalog.Path", "")
	v.SetDefault("CORS.AllowOrigins", []string{"*"})
	v.SetDefault("MinIO.Bucket", "lizenz-reports")
	v.SetDefault("MinIO.UseSSL", false)
}

// NewConfig reads config/config.toml (or $CONFIG_NAME) and the environment.
// A missing config file is not an error; defaults apply.
func NewConfig() (*Config, error) {
	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("NAVIGATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Warnf("config file %q not found, using defaults", configName)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// MinIO credentials come from the environment only
	if endpoint := os.Getenv(envMinIOEndpoint); endpoint != "" {
		cfg.MinIO.Endpoint = endpoint
	}
	if bucket := os.Getenv(envMinIOBucket); bucket != "" {
		cfg.MinIO.Bucket = bucket
	}
	cfg.MinIO.AccessKey = os.Getenv(envMinIOAccessKey)
	cfg.MinIO.SecretKey = os.Getenv(envMinIOSecretKey)

	log.Info("config parsed")

	return cfg, nil
}

// SetupLogger applies the configured level and format to the logrus standard logger.
func (c *Config) SetupLogger() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
