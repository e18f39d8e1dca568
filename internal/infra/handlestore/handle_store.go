package handlestore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
)

const (
	handleSetKeyPrefix = "schedule:handles:"

	// Triggers land within the next ~24h; the TTL covers a full rollover day
	// plus slack so a stale set never outlives its triggers by much.
	handleSetTTL = 48 * time.Hour
)

type handleSetRecord struct {
	UserID  string    `json:"user_id"`
	Handles []string  `json:"handles"`
	SavedAt time.Time `json:"saved_at"`
}

type handleStore struct {
	client *redis.Client
}

func NewHandleStore(client *redis.Client) domain.HandleStore {
	return &handleStore{
		client: client,
	}
}

func (s *handleStore) SaveHandleSet(ctx context.Context, set *domain.HandleSet) error {
	if set == nil {
		return ErrInvalidHandleSetData
	}

	key := handleSetKeyPrefix + set.UserID

	record := handleSetRecord{
		UserID:  set.UserID,
		Handles: set.Handles,
		SavedAt: set.SavedAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidHandleSetData
	}

	return s.client.Set(ctx, key, data, handleSetTTL).Err()
}

func (s *handleStore) GetHandleSet(ctx context.Context, userID string) (*domain.HandleSet, error) {
	key := handleSetKeyPrefix + userID

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrHandleSetNotFound
		}
		return nil, err
	}

	var record handleSetRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidHandleSetData
	}

	return &domain.HandleSet{
		UserID:  record.UserID,
		Handles: record.Handles,
		SavedAt: record.SavedAt,
	}, nil
}

func (s *handleStore) ClearHandleSet(ctx context.Context, userID string) error {
	key := handleSetKeyPrefix + userID
	return s.client.Del(ctx, key).Err()
}
