package profileapi

import (
	"context"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=profileapi

type ProfileRepository interface {
	GetSchedulingProfile(ctx context.Context, userID string) (*domain.SchedulingProfile, error)
}
