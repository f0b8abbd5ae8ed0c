// File: internal/service/revoker.go
package service

import (
	"context"
	"fmt"

	"upperskills/internal/cache"
)

const revokedKeyPrefix = "revoked_token:"

// Revoker 以 Redis 記錄已登出的 token jti，TTL 等於 token 剩餘效期
type Revoker struct {
	cache cache.Cache
}

func NewRevoker(c cache.Cache) *Revoker {
	return &Revoker{cache: c}
}

func (r *Revoker) Revoke(ctx context.Context, claims *Claims) error {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Sub(timeNow())
	if ttl <= 0 {
		return nil
	}
	if err := r.cache.Set(ctx, revokedKeyPrefix+claims.ID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("Revoke: %w", err)
	}
	return nil
}

func (r *Revoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	n, err := r.cache.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("IsRevoked: %w", err)
	}
	return n > 0, nil
}
