package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Redis   RedisConfig
	Auth    AuthConfig
}

type ServerConfig struct {
	Port string
}

type GatewayConfig struct {
	MerchantID  string
	PublicKey   string
	PrivateKey  string
	Environment string
}

type RedisConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: os.Getenv("SERVER_PORT"),
		},
		Gateway: GatewayConfig{
			MerchantID:  os.Getenv("BT_MERCHANT_ID"),
			PublicKey:   os.Getenv("BT_PUBLIC_KEY"),
			PrivateKey:  os.Getenv("BT_PRIVATE_KEY"),
			Environment: os.Getenv("BT_ENVIRONMENT"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			Issuer:    os.Getenv("JWT_ISSUER"),
		},
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Gateway.Environment == "" {
		cfg.Gateway.Environment = "sandbox"
		log.Printf("Warning: BT_ENVIRONMENT not set, defaulting to sandbox")
	}
	if cfg.Redis.URL == "" {
		cfg.Redis.URL = "redis://localhost:6379/0"
		log.Printf("Warning: REDIS_URL not set, using default: %s", cfg.Redis.URL)
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = "merchant-payment-api"
	}

	return cfg
}
