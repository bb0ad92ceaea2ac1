// Package redisjar provides a Redis-backed jar for server-side shared state.
// Attributes translate to key TTLs: MaxAge wins over Expires, and an
// already-expired attribute set deletes the entry.
package redisjar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	statejar "github.com/statejar/statejar"
)

// ErrRedisUnavailable wraps transport-level Redis failures.
var ErrRedisUnavailable = errors.New("redisjar: redis unavailable")

// Jar stores entries under prefix:name.
type Jar struct {
	redis  redis.UniversalClient
	prefix string
	ctx    context.Context
}

var _ statejar.Jar = (*Jar)(nil)

// Option configures a Jar.
type Option func(*Jar)

// WithContext sets the context used for Redis calls. Defaults to
// context.Background.
func WithContext(ctx context.Context) Option {
	return func(j *Jar) { j.ctx = ctx }
}

// New returns a jar backed by the given Redis client.
func New(client redis.UniversalClient, prefix string, opts ...Option) *Jar {
	j := &Jar{redis: client, prefix: prefix, ctx: context.Background()}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *Jar) key(name string) string { return j.prefix + ":" + name }

// Get returns the stored raw string for name. Read failures degrade to
// absence; the read contract has no error channel.
func (j *Jar) Get(name string) (string, bool) {
	v, err := j.redis.Get(j.ctx, j.key(name)).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

// Set writes the value under name with a TTL derived from attrs.
func (j *Jar) Set(name, value string, attrs statejar.Attributes) error {
	key := j.key(name)
	ttl, expired := ttlFromAttributes(attrs, time.Now())
	if expired {
		if err := j.redis.Del(j.ctx, key).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
		return nil
	}
	if err := j.redis.Set(j.ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Delete removes the entry for name.
func (j *Jar) Delete(name string) error {
	if err := j.redis.Del(j.ctx, j.key(name)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// ttlFromAttributes maps cookie lifetime attributes onto a Redis TTL.
// A zero TTL means no expiry; expired reports that the entry must be removed
// instead of written.
func ttlFromAttributes(a statejar.Attributes, now time.Time) (ttl time.Duration, expired bool) {
	if a.MaxAge < 0 {
		return 0, true
	}
	if a.MaxAge > 0 {
		return time.Duration(a.MaxAge) * time.Second, false
	}
	if !a.Expires.IsZero() {
		d := a.Expires.Sub(now)
		if d <= 0 {
			return 0, true
		}
		return d, false
	}
	return 0, false
}
