package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/restodesk/backoffice/internal/domain"
)

var (
	ErrSnapshotNotFound        = errors.New("onboarding snapshot not found")
	ErrSnapshotVersionConflict = errors.New("onboarding snapshot was modified concurrently")
)

const snapshotKeyPrefix = "onboarding_"

// RedisSnapshotStore keeps one JSON document per restaurant under
// onboarding_<restaurantId>. Writes are optimistic: the stored version must
// still equal the version the caller read.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisSnapshotStore) Get(ctx context.Context, restaurantID uint) (domain.OnboardingSnapshot, error) {
	raw, err := s.client.Get(ctx, domain.OnboardingSnapshotKey(restaurantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.OnboardingSnapshot{}, ErrSnapshotNotFound
		}

		return domain.OnboardingSnapshot{}, fmt.Errorf("s.client.Get -> %w", err)
	}

	return decodeSnapshot(raw)
}

func (s *RedisSnapshotStore) Save(ctx context.Context, snapshot domain.OnboardingSnapshot, expectedVersion int64) (domain.OnboardingSnapshot, error) {
	snapshot.Version = expectedVersion + 1
	if err := s.compareAndSet(ctx, snapshot, expectedVersion); err != nil {
		return domain.OnboardingSnapshot{}, err
	}

	return snapshot, nil
}

// Restore writes snapshot back unchanged, version included, as long as
// nobody saved after the claim at claimedVersion.
func (s *RedisSnapshotStore) Restore(ctx context.Context, snapshot domain.OnboardingSnapshot, claimedVersion int64) error {
	return s.compareAndSet(ctx, snapshot, claimedVersion)
}

func (s *RedisSnapshotStore) compareAndSet(ctx context.Context, snapshot domain.OnboardingSnapshot, expectedVersion int64) error {
	key := domain.OnboardingSnapshotKey(snapshot.RestaurantID)
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := currentVersion(ctx, tx, key)
		if err != nil {
			return err
		}
		if current != expectedVersion {
			return ErrSnapshotVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})

		return err
	}, key)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return ErrSnapshotVersionConflict
		}
		if errors.Is(err, ErrSnapshotVersionConflict) {
			return err
		}

		return fmt.Errorf("s.client.Watch -> %w", err)
	}

	return nil
}

func currentVersion(ctx context.Context, tx *redis.Tx, key string) (int64, error) {
	raw, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("tx.Get -> %w", err)
	}

	stored, err := decodeSnapshot(raw)
	if err != nil {
		return 0, err
	}

	return stored.Version, nil
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, restaurantID uint) error {
	if err := s.client.Del(ctx, domain.OnboardingSnapshotKey(restaurantID)).Err(); err != nil {
		return fmt.Errorf("s.client.Del -> %w", err)
	}

	return nil
}

// List scans every stored snapshot. It is used by background jobs only.
func (s *RedisSnapshotStore) List(ctx context.Context) ([]domain.OnboardingSnapshot, error) {
	var snapshots []domain.OnboardingSnapshot

	iter := s.client.Scan(ctx, 0, snapshotKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if _, err := strconv.ParseUint(strings.TrimPrefix(key, snapshotKeyPrefix), 10, 64); err != nil {
			continue
		}

		raw, err := s.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("s.client.Get -> %w", err)
		}

		snapshot, err := decodeSnapshot(raw)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("iter.Err -> %w", err)
	}

	sortSnapshots(snapshots)

	return snapshots, nil
}

func decodeSnapshot(raw []byte) (domain.OnboardingSnapshot, error) {
	var snapshot domain.OnboardingSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return domain.OnboardingSnapshot{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return snapshot, nil
}

func sortSnapshots(snapshots []domain.OnboardingSnapshot) {
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].RestaurantID < snapshots[j].RestaurantID
	})
}

// MemorySnapshotStore is the single-process fallback used when redis is
// disabled and in tests.
type MemorySnapshotStore struct {
	mu        sync.Mutex
	snapshots map[uint][]byte
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{
		snapshots: make(map[uint][]byte),
	}
}

func (s *MemorySnapshotStore) Get(_ context.Context, restaurantID uint) (domain.OnboardingSnapshot, error) {
	s.mu.Lock()
	raw, ok := s.snapshots[restaurantID]
	s.mu.Unlock()

	if !ok {
		return domain.OnboardingSnapshot{}, ErrSnapshotNotFound
	}

	return decodeSnapshot(raw)
}

func (s *MemorySnapshotStore) Save(_ context.Context, snapshot domain.OnboardingSnapshot, expectedVersion int64) (domain.OnboardingSnapshot, error) {
	snapshot.Version = expectedVersion + 1
	if err := s.compareAndSet(snapshot, expectedVersion); err != nil {
		return domain.OnboardingSnapshot{}, err
	}

	return snapshot, nil
}

func (s *MemorySnapshotStore) Restore(_ context.Context, snapshot domain.OnboardingSnapshot, claimedVersion int64) error {
	return s.compareAndSet(snapshot, claimedVersion)
}

func (s *MemorySnapshotStore) compareAndSet(snapshot domain.OnboardingSnapshot, expectedVersion int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current int64
	if raw, ok := s.snapshots[snapshot.RestaurantID]; ok {
		stored, err := decodeSnapshot(raw)
		if err != nil {
			return err
		}
		current = stored.Version
	}
	if current != expectedVersion {
		return ErrSnapshotVersionConflict
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}
	s.snapshots[snapshot.RestaurantID] = payload

	return nil
}

func (s *MemorySnapshotStore) Delete(_ context.Context, restaurantID uint) error {
	s.mu.Lock()
	delete(s.snapshots, restaurantID)
	s.mu.Unlock()

	return nil
}

func (s *MemorySnapshotStore) List(_ context.Context) ([]domain.OnboardingSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshots := make([]domain.OnboardingSnapshot, 0, len(s.snapshots))
	for _, raw := range s.snapshots {
		snapshot, err := decodeSnapshot(raw)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	sortSnapshots(snapshots)

	return snapshots, nil
}
