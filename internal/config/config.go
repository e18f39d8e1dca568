package config

import "os"

type Config struct {
	UserBackendURL string
	Port           string
	Catalog        *CatalogConfig
	PushGateway    PushGatewayConfig
	Redis          *RedisConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		UserBackendURL: os.Getenv("USER_BACKEND_URL"),
		Port:           port,
		Catalog:        LoadCatalogConfig(),
		PushGateway:    LoadPushGatewayConfig(),
		Redis:          redisConfig,
	}, nil
}
