package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"timeguard/domain/dto"
	"timeguard/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	// Logout revoke jti ของ token จนถึงเวลาหมดอายุ
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)
	// SearchUsers ค้นหาด้วยชื่อหรือ email (ไม่รวมตัวเอง) สำหรับเลือก assignee
	SearchUsers(ctx context.Context, userID uuid.UUID, req *dto.UserSearchRequest) ([]*models.User, error)
}
