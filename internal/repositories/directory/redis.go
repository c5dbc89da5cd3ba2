package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wpc/servicesync/internal/models"
)

const (
	// Key prefixes for Redis
	employeeKeyPrefix = "employee:"
	wardKeyPrefix     = "ward:"
)

// Errors returned when a directory record is not found
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrWardNotFound     = errors.New("ward not found")
)

// Config holds configuration for the Redis directory repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed directory repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveEmployee persists an employee record to Redis
func (r *redisRepository) SaveEmployee(ctx context.Context, input *SaveEmployeeInput) error {
	if input == nil || input.Employee == nil {
		return errors.New("input and employee cannot be nil")
	}

	employeeJSON, err := json.Marshal(input.Employee)
	if err != nil {
		return fmt.Errorf("failed to marshal employee: %w", err)
	}

	employeeKey := fmt.Sprintf("%s%s", employeeKeyPrefix, input.Employee.ID)
	if err := r.client.Set(ctx, employeeKey, employeeJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}

	return nil
}

// GetEmployee retrieves an employee by ID from Redis
func (r *redisRepository) GetEmployee(ctx context.Context, input *GetEmployeeInput) (*models.Employee, error) {
	if input == nil || input.EmployeeID == "" {
		return nil, errors.New("input and employee ID cannot be empty")
	}

	employeeKey := fmt.Sprintf("%s%s", employeeKeyPrefix, input.EmployeeID)
	employeeJSON, err := r.client.Get(ctx, employeeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	var employee models.Employee
	if err := json.Unmarshal([]byte(employeeJSON), &employee); err != nil {
		return nil, fmt.Errorf("failed to unmarshal employee: %w", err)
	}

	return &employee, nil
}

// SaveWard persists a ward record to Redis
func (r *redisRepository) SaveWard(ctx context.Context, input *SaveWardInput) error {
	if input == nil || input.Ward == nil {
		return errors.New("input and ward cannot be nil")
	}

	wardJSON, err := json.Marshal(input.Ward)
	if err != nil {
		return fmt.Errorf("failed to marshal ward: %w", err)
	}

	wardKey := fmt.Sprintf("%s%s", wardKeyPrefix, input.Ward.ID)
	if err := r.client.Set(ctx, wardKey, wardJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save ward: %w", err)
	}

	return nil
}

// GetWard retrieves a ward by ID from Redis
func (r *redisRepository) GetWard(ctx context.Context, input *GetWardInput) (*models.Ward, error) {
	if input == nil || input.WardID == "" {
		return nil, errors.New("input and ward ID cannot be empty")
	}

	wardKey := fmt.Sprintf("%s%s", wardKeyPrefix, input.WardID)
	wardJSON, err := r.client.Get(ctx, wardKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrWardNotFound
		}
		return nil, fmt.Errorf("failed to get ward: %w", err)
	}

	var ward models.Ward
	if err := json.Unmarshal([]byte(wardJSON), &ward); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ward: %w", err)
	}

	return &ward, nil
}
