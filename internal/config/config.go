package config

import (
	"net/url"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode     bool     `env:"TEST_MODE"`
	Port           int      `env:"PORT" envDefault:"9090"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	Secret         string   `env:"SECRET,required"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqNotificationExchange string `env:"RABBITMQ_NOTIFICATION_EXCHANGE" envDefault:"notifications"`
	RabbitmqNotificationQueue    string `env:"RABBITMQ_NOTIFICATION_QUEUE" envDefault:"email-notifications"`

	BcryptHasherCost                int `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	PasswordResetValidDurationHours int `env:"PASSWORD_RESET_VALID_DURATION_HOURS" envDefault:"24"`

	AwsRegion                        string  `env:"AWS_REGION" envDefault:"eu-west-1"`
	AwsAccessKey                     string  `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey                     string  `env:"AWS_SECRET_KEY,required"`
	AwsEmailSender                   string  `env:"AWS_EMAIL_SENDER,required"`
	AwsEmailVerificationCodeTemplate string  `env:"AWS_EMAIL_VERIFICATION_CODE_TEMPLATE" envDefault:"verification-code"`
	AwsEmailPasswordResetTemplate    string  `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"password-reset"`
	PasswordResetBaseUrl             url.URL `env:"PASSWORD_RESET_BASE_URL,required"`

	SentryDsn *url.URL `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
