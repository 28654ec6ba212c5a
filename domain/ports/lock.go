package ports

import (
	"context"
	"time"
)

// LockPort distributed lock สำหรับ serialize read-then-write ที่ต้องรักษา invariant
type LockPort interface {
	// Acquire คืน token เมื่อได้ lock, "" เมื่อมีคนถืออยู่แล้ว
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Release ปล่อย lock เฉพาะเมื่อ token ตรงกับเจ้าของ
	Release(ctx context.Context, key, token string) error
}

// TokenRevocationPort เก็บ jti ของ token ที่ logout แล้ว
type TokenRevocationPort interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
