//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/config"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/infra/pushgateway"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/observability"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/observability/logging"
)

func initPushTransport(_ context.Context, cfg *config.Config) (pushgateway.Transport, func() error, error) {
	transport := pushgateway.NewClient(
		cfg.PushGateway.GatewayURL,
		cfg.PushGateway.MaxRetries,
	)

	slog.Info("push transport initialized",
		slog.String("type", "push_gateway"),
		slog.String("url", cfg.PushGateway.GatewayURL),
	)

	return transport, nil, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "scheduling"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: logging.Module("notification-scheduling"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
