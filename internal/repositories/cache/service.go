package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sanjab/internal/models"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Customer credit caching. The balance is an input snapshot for the
// allocator, so it is cached briefly and invalidated after every
// completed transaction.
func (s *CacheService) CacheCustomer(ctx context.Context, customer *models.Customer) error {
	if customer == nil {
		return errors.New("cannot cache nil customer")
	}
	key := s.GenerateKey("customer", "card", fmt.Sprintf("%s:%d", customer.CardNumber, customer.BranchID))
	return s.SetWithTTL(ctx, key, customer, 5*time.Minute)
}

func (s *CacheService) GetCustomer(ctx context.Context, cardNumber string, branchID uint) (*models.Customer, bool, error) {
	key := s.GenerateKey("customer", "card", fmt.Sprintf("%s:%d", cardNumber, branchID))
	var customer models.Customer
	found, err := s.Get(ctx, key, &customer)
	if err != nil || !found {
		return nil, false, err
	}
	return &customer, true, nil
}

func (s *CacheService) InvalidateCustomer(ctx context.Context, cardNumber string, branchID uint) error {
	key := s.GenerateKey("customer", "card", fmt.Sprintf("%s:%d", cardNumber, branchID))
	return s.Delete(ctx, key)
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
