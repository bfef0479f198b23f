package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret          string `yaml:"secret"`
		ExpirationHours int    `yaml:"expiration_hours"`
		Issuer          string `yaml:"issuer"`
		Audience        string `yaml:"audience"`
	} `yaml:"jwt"`

	Admin struct {
		// Out-of-band токен, который нужно предъявить при регистрации админа
		RegistrationToken string `yaml:"registration_token"`
		// Первый админ создается при старте, если его еще нет
		SeedEmail    string `yaml:"seed_email"`
		SeedPassword string `yaml:"seed_password"`
	} `yaml:"admin"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // For local storage
		BaseURL   string `yaml:"base_url"`   // Public URL base (local)
		Bucket    string `yaml:"bucket"`     // For S3
		Region    string `yaml:"region"`     // For S3
		AccessKey string `yaml:"access_key"` // For S3
		SecretKey string `yaml:"secret_key"` // For S3
		Endpoint  string `yaml:"endpoint"`   // For R2/MinIO or custom S3
	} `yaml:"storage"`

	Upload struct {
		MaxResumeSize    int64 `yaml:"max_resume_size"`    // Max resume size in bytes
		SignedURLMinutes int   `yaml:"signed_url_minutes"` // Lifetime of minted resume URLs
	} `yaml:"upload"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию: config.yaml для обычного запуска,
// переменные окружения для тестов и деплоя (DATABASE_URL задан).
func LoadConfig() {
	var cfg Config

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

	// Конфигурация из переменных окружения (режим теста/деплоя)
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.ExpirationHours = 24
	cfg.Admin.RegistrationToken = os.Getenv("ADMIN_REGISTRATION_TOKEN")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/v1/files"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.ExpirationHours <= 0 {
		cfg.JWT.ExpirationHours = 24
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "fellowship-portal"
	}
	if cfg.JWT.Audience == "" {
		cfg.JWT.Audience = "fellowship-portal-api"
	}
	if cfg.Upload.MaxResumeSize <= 0 {
		cfg.Upload.MaxResumeSize = 5 * 1024 * 1024 // 5MB по контракту формы
	}
	if cfg.Upload.SignedURLMinutes <= 0 {
		cfg.Upload.SignedURLMinutes = 15
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
