package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	JWT struct {
		AccessSecret  string `yaml:"access_secret"`
		RefreshSecret string `yaml:"refresh_secret"`
		AccessTTL     int    `yaml:"access_ttl"`  // minutes
		RefreshTTL    int    `yaml:"refresh_ttl"` // hours
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type     string `yaml:"type"`      // local
		BasePath string `yaml:"base_path"` // upload root on disk
		BaseURL  string `yaml:"base_url"`  // public URL prefix for uploads
	} `yaml:"storage"`

	// ClientURL is the frontend base used in password-reset links.
	ClientURL string `yaml:"client_url"`
}

var AppConfig *Config

// LoadConfig populates AppConfig from config.yaml, or entirely from
// environment variables when DATABASE_URL is set (test / container mode).
// A .env file is honored when present.
func LoadConfig() {
	var cfg Config

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.Driver = envOr("DATABASE_DRIVER", "postgres")
	cfg.Database.DSN = dbURL
	cfg.Server.Env = envOr("SERVER_ENV", "development")
	cfg.Server.Host = envOr("SERVER_HOST", "localhost")
	cfg.Server.Port, _ = strconv.Atoi(envOr("SERVER_PORT", "4000"))
	cfg.JWT.AccessSecret = envOr("JWT_ACCESS_SECRET", "dev-access-secret")
	cfg.JWT.RefreshSecret = envOr("JWT_REFRESH_SECRET", "dev-refresh-secret")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(envOr("SMTP_PORT", "587"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = envOr("SMTP_MAIL", "no-reply@lokerhub.local")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = envOr("STORAGE_PATH", "./uploads")
	cfg.ClientURL = envOr("CLIENT_URL", "http://localhost:3000")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.JWT.AccessTTL <= 0 {
		cfg.JWT.AccessTTL = 15 // minutes
	}
	if cfg.JWT.RefreshTTL <= 0 {
		cfg.JWT.RefreshTTL = 7 * 24 // hours
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
