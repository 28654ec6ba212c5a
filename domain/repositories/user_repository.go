package repositories

import (
	"context"

	"github.com/google/uuid"
	"timeguard/domain/models"
)

// UserRepository lookups คืน (nil, nil) เมื่อไม่พบ record
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Search(ctx context.Context, query string, limit int) ([]*models.User, error)
}
