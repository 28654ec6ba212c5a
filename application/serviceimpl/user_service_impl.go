package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"timeguard/domain/dto"
	"timeguard/domain/models"
	"timeguard/domain/ports"
	"timeguard/domain/repositories"
	"timeguard/domain/services"
	"timeguard/pkg/apperrors"
	"timeguard/pkg/logger"
	"timeguard/pkg/utils"
)

const defaultSearchLimit = 20

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	revocations ports.TokenRevocationPort // nil = logout ไม่ revoke
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewUserService(userRepo repositories.UserRepository, revocations ports.TokenRevocationPort, jwtSecret string, jwtTTL time.Duration) services.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		revocations: revocations,
		jwtSecret:   jwtSecret,
		jwtTTL:      jwtTTL,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal("failed to look up email", err)
	}
	if existing != nil {
		logger.WarnContext(ctx, "Email already exists", "email", email)
		return nil, apperrors.Conflict("Email is already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict("Email is already registered")
		}
		return nil, apperrors.Internal("failed to create user", err)
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return "", nil, apperrors.Internal("failed to look up user", err)
	}
	if user == nil {
		logger.WarnContext(ctx, "Login failed - email not found", "email", req.Email)
		return "", nil, apperrors.Authentication("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, apperrors.Authentication("Invalid email or password")
	}

	token, err := utils.GenerateToken(utils.TokenSubject{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperrors.Internal("failed to sign token", err)
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return token, user, nil
}

func (s *UserServiceImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.revocations == nil || tokenID == "" {
		return nil
	}
	if err := s.revocations.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		return apperrors.Internal("failed to revoke token", err)
	}
	return nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(req.Name)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.Internal("failed to update user", err)
	}

	logger.InfoContext(ctx, "User profile updated", "user_id", userID)
	return user, nil
}

func (s *UserServiceImpl) SearchUsers(ctx context.Context, userID uuid.UUID, req *dto.UserSearchRequest) ([]*models.User, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	// ขอเพิ่ม 1 เผื่อตัดตัวเองออก
	users, err := s.userRepo.Search(ctx, strings.TrimSpace(req.Search), limit+1)
	if err != nil {
		return nil, apperrors.Internal("failed to search users", err)
	}

	result := make([]*models.User, 0, len(users))
	for _, u := range users {
		if u.ID == userID {
			continue
		}
		result = append(result, u)
		if len(result) == limit {
			break
		}
	}
	return result, nil
}
