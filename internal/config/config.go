package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
// El pipeline de reportes recibe esta struct construida explicitamente;
// no hay estado global de entorno fuera de LoadConfig.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	LLMAPIKey      string  `env:"LLM_API_KEY,required"`
	LLMBaseURL     string  `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel       string  `env:"LLM_MODEL" envDefault:"gpt-4o"`
	LLMTemperature float64 `env:"LLM_TEMPERATURE" envDefault:"0.4"`
	LLMMaxTokens   int     `env:"LLM_MAX_TOKENS" envDefault:"4096"`

	CatalogPath    string `env:"CATALOG_PATH" envDefault:"data/questions.json"`
	ReportLanguage string `env:"REPORT_LANGUAGE" envDefault:"es"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`

	AdminSeedEmail    string `env:"ADMIN_SEED_EMAIL"`
	AdminSeedName     string `env:"ADMIN_SEED_NAME" envDefault:"Administrator"`
	AdminSeedPassword string `env:"ADMIN_SEED_PASSWORD"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
