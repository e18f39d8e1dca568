package logging

import (
	"context"
	"log/slog"
	"os"
)

// Environment selects the log output format and default level.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module labels log records with the emitting component.
type Module string

// ServiceInfo identifies the running service in every log record.
type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID attaches a request ID to the context for log correlation and
// propagation to downstream services.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request ID set by the HTTP middleware, or
// an empty string when the context carries none.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// NewLogger builds the service-wide slog logger: JSON in prod, text in dev,
// with service identity attached to every record.
func NewLogger(env Environment, info ServiceInfo, module Module) *slog.Logger {
	level := slog.LevelInfo
	if env == EnvDev {
		level = slog.LevelDebug
	}
	if l := os.Getenv("LOG_LEVEL"); l != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(l)); err == nil {
			level = parsed
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	var inner slog.Handler
	if env == EnvDev {
		inner = slog.NewTextHandler(os.Stdout, opts)
	} else {
		inner = slog.NewJSONHandler(os.Stdout, opts)
	}

	handler := &contextHandler{
		Handler:   inner,
		projectID: os.Getenv("GOOGLE_CLOUD_PROJECT"),
	}

	attrs := []any{
		slog.String("service", info.Name),
		slog.String("module", string(module)),
	}
	if info.Version != "" {
		attrs = append(attrs, slog.String("version", info.Version))
	}
	if info.Revision != "" {
		attrs = append(attrs, slog.String("revision", info.Revision))
	}

	return slog.New(handler).With(attrs...)
}

// contextHandler enriches records with context-carried correlation attrs:
// the request ID and, on GCP, the trace association attributes.
type contextHandler struct {
	slog.Handler
	projectID string
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if id := RequestIDFromContext(ctx); id != "" {
		record.AddAttrs(slog.String("request_id", id))
	}
	if attrs := gcpTraceAttrs(ctx, h.projectID); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), projectID: h.projectID}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), projectID: h.projectID}
}
