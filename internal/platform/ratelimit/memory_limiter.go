package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter は、Redisが利用できない環境向けのキーごとの
// 固定ウィンドウレートリミッタです。プロセスローカルのため、
// 複数インスタンス構成では各インスタンスが独立に数えます。
type MemoryLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	count     int
	lastReset time.Time
}

// MemoryLimiterがLimiterを実装していることをコンパイル時に検証します。
var _ Limiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter は新しいMemoryLimiterのインスタンスを生成します。
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*windowEntry),
	}
}

// Allow はkeyのウィンドウ内呼び出し回数を数え、上限以内かどうかを返します。
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	e, ok := l.entries[key]
	if !ok {
		e = &windowEntry{lastReset: now}
		l.entries[key] = e
	}

	// ウィンドウを過ぎたらカウントリセット
	if now.Sub(e.lastReset) >= l.window {
		e.count = 0
		e.lastReset = now
	}

	e.count++
	return e.count <= l.limit, nil
}
