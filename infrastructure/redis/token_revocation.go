package redis

import (
	"context"
	"time"

	"timeguard/domain/ports"
)

const revokedKeyPrefix = "timeguard:revoked:"

// TokenRevocation implements TokenRevocationPort; key หมดอายุพร้อม token
type TokenRevocation struct {
	client *Client
}

func NewTokenRevocation(client *Client) ports.TokenRevocationPort {
	return &TokenRevocation{client: client}
}

func (r *TokenRevocation) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// token หมดอายุแล้ว ไม่ต้องเก็บ
		return nil
	}
	return r.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl)
}

func (r *TokenRevocation) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return r.client.Exists(ctx, revokedKeyPrefix+tokenID)
}
