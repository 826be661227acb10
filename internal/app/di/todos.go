package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"todo_backend/internal/feature/todos/adapters"
	"todo_backend/internal/feature/todos/usecase"
	"todo_backend/internal/platform/cache"
)

// NewTodoRepository creates the todos persistence stack: the MySQL
// repository wrapped in the Redis list cache. The cache transparently
// bypasses itself when rdb is nil.
func NewTodoRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.TodoRepository {
	repo := adapters.NewTodoMySQL(db)
	return cache.NewCachingTodoRepository(rdb, ttl, repo, "todos")
}
