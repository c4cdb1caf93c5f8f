package types

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error
	Expire(ctx context.Context, key string, expiration time.Duration) error
	Del(ctx context.Context, key string) error
}

// UserTokenMeta is the cached resolution of an access token,
// kept so hot requests skip the token table.
type UserTokenMeta struct {
	Appid     string `json:"appid"`
	UserID    string `json:"user_id"`
	PlanID    string `json:"plan_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
