package config

import (
	"os"
	"strconv"
)

const (
	pushGatewayURLEnv        = "PUSH_GATEWAY_URL"
	pushGatewayMaxRetriesEnv = "PUSH_GATEWAY_MAX_RETRIES"

	defaultPushGatewayMaxRetries = 3
)

type PushGatewayConfig struct {
	GatewayURL string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string

	MaxRetries int
}

func LoadPushGatewayConfig() PushGatewayConfig {
	maxRetries := defaultPushGatewayMaxRetries
	if v := os.Getenv(pushGatewayMaxRetriesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	return PushGatewayConfig{
		GatewayURL: os.Getenv(pushGatewayURLEnv),

		GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
		GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
		GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),
		GCloudTargetURL:  os.Getenv("GCLOUD_TARGET_URL"),

		MaxRetries: maxRetries,
	}
}
