// Package ratelimit はAPI呼び出しなどの操作の頻度を制限する実装を提供します。
package ratelimit

import "context"

// Limiter は、キーごとの操作頻度を制限するインターフェースです。
// keyは呼び出し元の識別子（通常はクライアントIP）です。
type Limiter interface {
	// Allow はkeyの呼び出しを許可するかどうかを返します。
	// 判定自体に失敗した場合はエラーを返します（呼び出し側はfail-openを選べます）。
	Allow(ctx context.Context, key string) (bool, error)
}
