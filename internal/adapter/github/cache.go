package github

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stargazer-dev/stargazer/internal/app"
)

// KVStore provides simple kv data storage
type KVStore interface {
	Get(key []byte) ([]byte, error)
	Put(key []byte, data []byte) error
}

// CachedClient wraps a github client with a persistent starred-list
// cache. Entries older than ttl are fetched again. Cache failures are
// never fatal, the wrapped client is asked instead.
type CachedClient struct {
	client app.GithubClient
	store  KVStore
	ttl    time.Duration
	l      logrus.FieldLogger
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, store KVStore, ttl time.Duration, l logrus.FieldLogger) (*CachedClient, error) {
	if ttl <= 0 {
		return nil, errors.New("cache ttl must be greater than 0")
	}

	return &CachedClient{
		client: client,
		store:  store,
		ttl:    ttl,
		l:      l,
	}, nil
}

type starredCacheEntry struct {
	Created time.Time         `json:"created"`
	Repos   []app.StarredRepo `json:"repos"`
}

// StarredByUser returns the cached repository list when a fresh entry
// exists, otherwise delegates to the wrapped client and stores the
// result.
func (c *CachedClient) StarredByUser(ctx context.Context, username string) ([]app.StarredRepo, error) {
	key := starredCacheKey(username)

	if data, err := c.store.Get(key); err != nil {
		c.l.Warnf("reading starred cache: %v", err)
	} else if data != nil {
		var entry starredCacheEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			c.l.Warnf("decoding starred cache entry: %v", err)
		} else if entry.Created.Add(c.ttl).After(time.Now()) {
			c.l.Debugf("starred cache hit for %s", username)
			return entry.Repos, nil
		}
	}

	repos, err := c.client.StarredByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	entry := starredCacheEntry{
		Created: time.Now(),
		Repos:   repos,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		c.l.Warnf("encoding starred cache entry: %v", err)
		return repos, nil
	}
	if err := c.store.Put(key, data); err != nil {
		c.l.Warnf("writing starred cache: %v", err)
	}

	return repos, nil
}

// UpdateReadme is a write operation, always delegated.
func (c *CachedClient) UpdateReadme(ctx context.Context, owner string, repo string, message string, content []byte) error {
	return c.client.UpdateReadme(ctx, owner, repo, message, content)
}

func starredCacheKey(username string) []byte {
	return []byte("starred/" + username)
}
