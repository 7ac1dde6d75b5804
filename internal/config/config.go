package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env               string
	Port              string
	SessionSecret     string
	DatabaseURL       string
	RedisURL          string
	FrontendURLSuffix string
	DevPassword       string
	AllowCrossSiteDev bool
	HealthAdminKey    string
	SeedAdminEmail    string // bootstrap admin created on first start when no users exist
	SeedAdminPassword string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL")
	switch env {
	case "production":
		if v := viper.GetString("DATABASE_URL_PROD"); v != "" {
			dbURL = v
		}
	case "test":
		if v := viper.GetString("DATABASE_URL_TEST"); v != "" {
			dbURL = v
		}
	}

	return &Config{
		Env:               env,
		Port:              port,
		SessionSecret:     viper.GetString("SESSION_SECRET"),
		DatabaseURL:       dbURL,
		RedisURL:          viper.GetString("REDIS_URL"),
		FrontendURLSuffix: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:       viper.GetString("DEV_PASSWORD"),
		AllowCrossSiteDev: strings.EqualFold(viper.GetString("ALLOW_CROSS_SITE_DEV"), "true"),
		HealthAdminKey:    viper.GetString("HEALTH_ADMIN_KEY"),
		SeedAdminEmail:    viper.GetString("SEED_ADMIN_EMAIL"),
		SeedAdminPassword: viper.GetString("SEED_ADMIN_PASSWORD"),
	}, nil
}
