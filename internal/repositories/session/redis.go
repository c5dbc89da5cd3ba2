package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wpc/servicesync/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix    = "session:"
	externalIDKeyPrefix = "session_id:"
	statusSetPrefix     = "sessions:status:"
	employeeIndexPrefix = "sessions:employee:"
	wardIndexPrefix     = "sessions:ward:"
	hospitalIndexPrefix = "sessions:hospital:"
	createdIndexKey     = "sessions:created"
	completedIndexKey   = "sessions:completed" // scored by created-at, entries only while COMPLETED
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

var allStatuses = []models.SessionStatus{
	models.SessionStatusActive,
	models.SessionStatusInTransit,
	models.SessionStatusCompleted,
	models.SessionStatusCancelled,
}

// SaveSession persists a session to Redis and refreshes every index it
// participates in. The write is pipelined so a session never appears in
// two status sets.
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sess := input.Session

	sessionJSON, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	createdScore := float64(sess.CreatedAt.UnixNano())

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, sess.ID)
	pipe.Set(ctx, sessionKey, sessionJSON, 0)

	if sess.SessionID != "" {
		externalKey := fmt.Sprintf("%s%s", externalIDKeyPrefix, sess.SessionID)
		pipe.Set(ctx, externalKey, sess.ID, 0)
	}

	// Keep the session in exactly one status set
	for _, status := range allStatuses {
		statusKey := fmt.Sprintf("%s%s", statusSetPrefix, status)
		if status == sess.Status {
			pipe.SAdd(ctx, statusKey, sess.ID)
		} else {
			pipe.SRem(ctx, statusKey, sess.ID)
		}
	}

	pipe.ZAdd(ctx, createdIndexKey, redis.Z{Score: createdScore, Member: sess.ID})

	if sess.Status == models.SessionStatusCompleted {
		pipe.ZAdd(ctx, completedIndexKey, redis.Z{Score: createdScore, Member: sess.ID})
	} else {
		pipe.ZRem(ctx, completedIndexKey, sess.ID)
	}

	if sess.EmployeeID != "" {
		employeeKey := fmt.Sprintf("%s%s", employeeIndexPrefix, sess.EmployeeID)
		pipe.ZAdd(ctx, employeeKey, redis.Z{Score: createdScore, Member: sess.ID})
	}

	if sess.WardID != "" {
		wardKey := fmt.Sprintf("%s%s", wardIndexPrefix, sess.WardID)
		pipe.ZAdd(ctx, wardKey, redis.Z{Score: createdScore, Member: sess.ID})
	}

	if sess.HospitalID != "" {
		hospitalKey := fmt.Sprintf("%s%s", hospitalIndexPrefix, sess.HospitalID)
		pipe.ZAdd(ctx, hospitalKey, redis.Z{Score: createdScore, Member: sess.ID})
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by internal ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.ID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.ID)
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// GetSessionByExternalID retrieves a session by its external identifier
func (r *redisRepository) GetSessionByExternalID(ctx context.Context, input *GetSessionByExternalIDInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	externalKey := fmt.Sprintf("%s%s", externalIDKeyPrefix, input.SessionID)
	id, err := r.client.Get(ctx, externalKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to resolve session identifier: %w", err)
	}

	return r.GetSession(ctx, &GetSessionInput{
		ID: id,
	})
}

// DeleteSession removes a session and its index entries from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.ID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	// Get the session first to find its index entries
	sess, err := r.GetSession(ctx, &GetSessionInput{
		ID: input.ID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	pipe.Del(ctx, fmt.Sprintf("%s%s", sessionKeyPrefix, input.ID))

	if sess.SessionID != "" {
		pipe.Del(ctx, fmt.Sprintf("%s%s", externalIDKeyPrefix, sess.SessionID))
	}

	for _, status := range allStatuses {
		pipe.SRem(ctx, fmt.Sprintf("%s%s", statusSetPrefix, status), input.ID)
	}

	pipe.ZRem(ctx, createdIndexKey, input.ID)
	pipe.ZRem(ctx, completedIndexKey, input.ID)

	if sess.EmployeeID != "" {
		pipe.ZRem(ctx, fmt.Sprintf("%s%s", employeeIndexPrefix, sess.EmployeeID), input.ID)
	}

	if sess.WardID != "" {
		pipe.ZRem(ctx, fmt.Sprintf("%s%s", wardIndexPrefix, sess.WardID), input.ID)
	}

	if sess.HospitalID != "" {
		pipe.ZRem(ctx, fmt.Sprintf("%s%s", hospitalIndexPrefix, sess.HospitalID), input.ID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// ListActiveSessions retrieves all non-terminal sessions, newest first
func (r *redisRepository) ListActiveSessions(ctx context.Context) ([]*models.Session, error) {
	activeIDs, err := r.client.SUnion(ctx,
		fmt.Sprintf("%s%s", statusSetPrefix, models.SessionStatusActive),
		fmt.Sprintf("%s%s", statusSetPrefix, models.SessionStatusInTransit),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active session IDs: %w", err)
	}

	sessions, err := r.fetchSessions(ctx, activeIDs)
	if err != nil {
		return nil, err
	}

	sortNewestFirst(sessions)
	return sessions, nil
}

// ListActiveSessionsByEmployee retrieves an employee's non-terminal sessions
func (r *redisRepository) ListActiveSessionsByEmployee(ctx context.Context, input *ListActiveSessionsByEmployeeInput) ([]*models.Session, error) {
	if input == nil || input.EmployeeID == "" {
		return nil, errors.New("input and employee ID cannot be empty")
	}

	employeeKey := fmt.Sprintf("%s%s", employeeIndexPrefix, input.EmployeeID)
	return r.listNonTerminalFromIndex(ctx, employeeKey)
}

// ListActiveSessionsByWard retrieves a ward's non-terminal sessions
func (r *redisRepository) ListActiveSessionsByWard(ctx context.Context, input *ListActiveSessionsByWardInput) ([]*models.Session, error) {
	if input == nil || input.WardID == "" {
		return nil, errors.New("input and ward ID cannot be empty")
	}

	wardKey := fmt.Sprintf("%s%s", wardIndexPrefix, input.WardID)
	return r.listNonTerminalFromIndex(ctx, wardKey)
}

// ListSessionsInProgress retrieves non-terminal sessions that have left the kitchen
func (r *redisRepository) ListSessionsInProgress(ctx context.Context) ([]*models.Session, error) {
	active, err := r.ListActiveSessions(ctx)
	if err != nil {
		return nil, err
	}

	inProgress := make([]*models.Session, 0, len(active))
	for _, sess := range active {
		if sess.KitchenExitTime != nil && sess.ServiceCompleteTime == nil {
			inProgress = append(inProgress, sess)
		}
	}

	return inProgress, nil
}

// ListSessionsAwaitingNurse retrieves non-terminal sessions with an
// unanswered nurse alert
func (r *redisRepository) ListSessionsAwaitingNurse(ctx context.Context) ([]*models.Session, error) {
	active, err := r.ListActiveSessions(ctx)
	if err != nil {
		return nil, err
	}

	awaiting := make([]*models.Session, 0, len(active))
	for _, sess := range active {
		if sess.NurseAlertTime != nil && sess.NurseResponseTime == nil {
			awaiting = append(awaiting, sess)
		}
	}

	return awaiting, nil
}

// ListSessionsSince retrieves all sessions created at or after the given time
func (r *redisRepository) ListSessionsSince(ctx context.Context, input *ListSessionsSinceInput) ([]*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return r.rangeByCreated(ctx, createdIndexKey, input.Since, time.Time{})
}

// ListSessionsByHospitalSince retrieves a hospital's sessions created at or
// after the given time
func (r *redisRepository) ListSessionsByHospitalSince(ctx context.Context, input *ListSessionsByHospitalSinceInput) ([]*models.Session, error) {
	if input == nil || input.HospitalID == "" {
		return nil, errors.New("input and hospital ID cannot be empty")
	}

	hospitalKey := fmt.Sprintf("%s%s", hospitalIndexPrefix, input.HospitalID)
	return r.rangeByCreated(ctx, hospitalKey, input.Since, time.Time{})
}

// ListCompletedSessionsBetween retrieves completed sessions created within a range
func (r *redisRepository) ListCompletedSessionsBetween(ctx context.Context, input *ListCompletedSessionsBetweenInput) ([]*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return r.rangeByCreated(ctx, completedIndexKey, input.Start, input.End)
}

// CountCompletedSessionsSince counts completed sessions created at or after
// the given time
func (r *redisRepository) CountCompletedSessionsSince(ctx context.Context, input *CountCompletedSessionsSinceInput) (int64, error) {
	if input == nil {
		return 0, errors.New("input cannot be nil")
	}

	count, err := r.client.ZCount(ctx, completedIndexKey,
		strconv.FormatFloat(float64(input.Since.UnixNano()), 'f', -1, 64), "+inf").Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count completed sessions: %w", err)
	}

	return count, nil
}

// ListStaleActiveSessions retrieves ACTIVE sessions created before the cutoff
func (r *redisRepository) ListStaleActiveSessions(ctx context.Context, input *ListStaleActiveSessionsInput) ([]*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	activeIDs, err := r.client.SMembers(ctx,
		fmt.Sprintf("%s%s", statusSetPrefix, models.SessionStatusActive)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active session IDs: %w", err)
	}

	sessions, err := r.fetchSessions(ctx, activeIDs)
	if err != nil {
		return nil, err
	}

	stale := make([]*models.Session, 0, len(sessions))
	for _, sess := range sessions {
		if sess.CreatedAt.Before(input.Cutoff) {
			stale = append(stale, sess)
		}
	}

	sortNewestFirst(stale)
	return stale, nil
}

// listNonTerminalFromIndex fetches an index's sessions and drops terminal ones
func (r *redisRepository) listNonTerminalFromIndex(ctx context.Context, indexKey string) ([]*models.Session, error) {
	ids, err := r.client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs from index: %w", err)
	}

	sessions, err := r.fetchSessions(ctx, ids)
	if err != nil {
		return nil, err
	}

	nonTerminal := make([]*models.Session, 0, len(sessions))
	for _, sess := range sessions {
		if !sess.Status.IsTerminal() {
			nonTerminal = append(nonTerminal, sess)
		}
	}

	sortNewestFirst(nonTerminal)
	return nonTerminal, nil
}

// rangeByCreated fetches sessions from a created-at scored zset. A zero end
// time means no upper bound.
func (r *redisRepository) rangeByCreated(ctx context.Context, indexKey string, start, end time.Time) ([]*models.Session, error) {
	max := "+inf"
	if !end.IsZero() {
		max = strconv.FormatFloat(float64(end.UnixNano()), 'f', -1, 64)
	}

	ids, err := r.client.ZRangeByScore(ctx, indexKey, &redis.ZRangeBy{
		Min: strconv.FormatFloat(float64(start.UnixNano()), 'f', -1, 64),
		Max: max,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs from index: %w", err)
	}

	sessions, err := r.fetchSessions(ctx, ids)
	if err != nil {
		return nil, err
	}

	sortNewestFirst(sessions)
	return sessions, nil
}

// fetchSessions loads a batch of sessions by ID using a pipeline
func (r *redisRepository) fetchSessions(ctx context.Context, ids []string) ([]*models.Session, error) {
	if len(ids) == 0 {
		return []*models.Session{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(ids))

	for _, id := range ids {
		sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, id)
		commands[id] = pipe.Get(ctx, sessionKey)
	}

	_, err := pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(ids))
	for id, cmd := range commands {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Session was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to fetch session %s: %w", id, err)
		}

		var sess models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &sess); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
		}

		sessions = append(sessions, &sess)
	}

	return sessions, nil
}

func sortNewestFirst(sessions []*models.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
}
