package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ecobridge/internal/errs"
	"ecobridge/internal/models"
	"ecobridge/internal/repositories"
	"ecobridge/internal/utils"
)

const (
	AccessTokenDuration  = 15 * time.Minute
	RefreshTokenDuration = 30 * 24 * time.Hour
)

type AuthService struct {
	userRepo  *repositories.UserRepository
	redisRepo *repositories.RedisRepository
}

func NewAuthService(userRepo *repositories.UserRepository, redisRepo *repositories.RedisRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *AuthService) Register(ctx context.Context, user *models.User) (string, string, error) {
	if user.Role != models.RoleSME && user.Role != models.RoleConsultant {
		return "", "", errs.Validation("role must be 'sme' or 'consultant'")
	}

	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "", errs.AlreadyExists("user")
	}

	hashedPassword, err := utils.Hash(user.Password)
	if err != nil {
		return "", "", err
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = ""

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", "", err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", errs.NotFound("user")
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", "", errs.PermissionDenied("invalid credentials")
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates the token pair: the old refresh jti is blacklisted and a
// new session is stored.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", errs.PermissionDenied("invalid or expired refresh token")
	}

	blacklisted, err := s.redisRepo.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return "", "", err
	}
	if blacklisted {
		return "", "", errs.PermissionDenied("refresh token revoked")
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", errs.NotFound("user")
	}

	if err := s.redisRepo.Blacklist(ctx, claims.ID); err != nil {
		return "", "", err
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		return "", "", err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshTokenSecret)
	if err != nil {
		// nothing to revoke for an unverifiable token
		return nil
	}

	if err := s.redisRepo.Blacklist(ctx, claims.ID); err != nil {
		return err
	}
	return s.redisRepo.DeleteSession(ctx, claims.ID)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (string, string, error) {
	jti := uuid.NewString()

	accessToken, err := utils.GenerateJWT(user.ID, user.Role, jti, AccessTokenDuration, utils.AccessTokenSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := utils.GenerateJWT(user.ID, user.Role, jti, RefreshTokenDuration, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", err
	}

	if err := s.redisRepo.StoreSession(ctx, jti, user.ID.String()); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
