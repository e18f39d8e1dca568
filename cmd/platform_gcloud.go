//go:build gcloud

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

func initPushTransport(ctx context.Context, cfg *config.Config) (pushgateway.Transport, func() error, error) {
	transport, err := pushgateway.NewCloudTasksTransport(ctx, pushgateway.CloudTasksConfig{
		ProjectID:  cfg.PushGateway.GCloudProjectID,
		LocationID: cfg.PushGateway.GCloudLocationID,
		QueueID:    cfg.PushGateway.GCloudQueueID,
		TargetURL:  cfg.PushGateway.GCloudTargetURL,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("push transport initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.PushGateway.GCloudProjectID),
		slog.String("location", cfg.PushGateway.GCloudLocationID),
		slog.String("queue", cfg.PushGateway.GCloudQueueID),
	)

	cleanup := func() error {
		if err := transport.Close(); err != nil {
			slog.Warn("failed to close cloud tasks client", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return transport, cleanup, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "scheduling"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  projectID,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("notification-scheduling"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
