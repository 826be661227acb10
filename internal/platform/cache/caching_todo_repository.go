// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
)

// CachingTodoRepository decorates a TodoRepository with Redis caching of
// per-user todo lists. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
// Every mutation invalidates the owner's cached list, so reads after a
// write always observe the new state.
type CachingTodoRepository struct {
	inner     usecase.TodoRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingTodoRepositoryがTodoRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TodoRepository = (*CachingTodoRepository)(nil)

// NewCachingTodoRepository decorates a TodoRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "todos".
func NewCachingTodoRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TodoRepository, namespace string) *CachingTodoRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "todos"
	}
	return &CachingTodoRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey generates the cache key for a user's todo list.
func (c *CachingTodoRepository) listKey(ownerID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, ownerID)
}

// invalidate removes the owner's cached list. Best effort: cache
// deletion failures never fail the mutation itself.
func (c *CachingTodoRepository) invalidate(ctx context.Context, ownerID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey(ownerID)).Err()
}

// ListByOwner retrieves a user's todos, checking the cache first and
// falling back to the database.
func (c *CachingTodoRepository) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Todo, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByOwner(ctx, ownerID)
	}

	key := c.listKey(ownerID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Todo
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create persists a todo and invalidates the owner's cached list.
func (c *CachingTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if err := c.inner.Create(ctx, todo); err != nil {
		return err
	}
	c.invalidate(ctx, todo.UserID)
	return nil
}

// FindByIDAndOwner reads a single todo. Single-record reads always go to
// the database; only the list is cached.
func (c *CachingTodoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Todo, error) {
	return c.inner.FindByIDAndOwner(ctx, id, ownerID)
}

// Update saves a todo and invalidates the owner's cached list.
func (c *CachingTodoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	if err := c.inner.Update(ctx, todo); err != nil {
		return err
	}
	c.invalidate(ctx, todo.UserID)
	return nil
}

// Delete removes a todo and invalidates the owner's cached list.
func (c *CachingTodoRepository) Delete(ctx context.Context, id, ownerID uint) error {
	if err := c.inner.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID)
	return nil
}
