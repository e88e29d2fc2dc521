// Package storage holds the persistence collaborators the session core
// consumes: durable local storage for user issues, the remote issue
// collection, and image upload.
package storage

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"civicconnect-be/models"

	"github.com/redis/go-redis/v9"
)

// issueNamespace is the single fixed key holding the serialized sequence
// of user-submitted issues.
const issueNamespace = "civicconnect:issues"

// RedisLocal is the Redis-backed durable local store. It degrades rather
// than fails: unreadable or corrupt data reads as no user issues and is
// overwritten by the next write, and an unreachable server never
// escalates past a log line.
type RedisLocal struct {
	client *redis.Client
	key    string
}

// NewRedisLocal creates a local store on the given client.
func NewRedisLocal(client *redis.Client) *RedisLocal {
	return &RedisLocal{client: client, key: issueNamespace}
}

// ReadUserIssues returns the persisted user issues, or nil when there are
// none or the payload cannot be read or parsed.
func (l *RedisLocal) ReadUserIssues() []models.Issue {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, err := l.client.Get(ctx, l.key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Printf("storage: failed to read persisted issues: %v", err)
		return nil
	}

	var issues []models.Issue
	if err := json.Unmarshal([]byte(payload), &issues); err != nil {
		log.Printf("storage: corrupt persisted issues, treating as empty: %v", err)
		return nil
	}
	return issues
}

// WriteUserIssues replaces the persisted sequence with the given issues.
// Every write is a full replace of the namespace; last writer wins.
func (l *RedisLocal) WriteUserIssues(issues []models.Issue) error {
	payload, err := json.Marshal(issues)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return l.client.Set(ctx, l.key, payload, 0).Err()
}
