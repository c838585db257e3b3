package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/config"
	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
	"github.com/PrassV/Propo-Staging-sub002/internal/utils"
)

type UserService struct {
	userRepo    *repositories.UserRepository
	sessionRepo *repositories.SessionRepository
	redisRepo   *repositories.RedisRepository
	authCfg     config.AuthConfig
}

func NewUserService(
	userRepo *repositories.UserRepository,
	sessionRepo *repositories.SessionRepository,
	redisRepo *repositories.RedisRepository,
	authCfg config.AuthConfig,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		redisRepo:   redisRepo,
		authCfg:     authCfg,
	}
}

// TokenPair is what auth endpoints hand back to the client.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s *UserService) Register(user *models.User) (*TokenPair, error) {
	existing, err := s.userRepo.FindByEmail(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.Hash(user.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = ""

	// First registered user becomes admin.
	count, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if count == 0 {
		user.Role = "admin"
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return s.issueTokens(user.ID)
}

func (s *UserService) Login(email, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.TouchLastLogin(user.ID); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return s.issueTokens(user.ID)
}

func (s *UserService) issueTokens(userID uuid.UUID) (*TokenPair, error) {
	accessToken, err := utils.GenerateJWT(userID, s.authCfg.AccessTokenTTL(), []byte(s.authCfg.AccessTokenSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateJWT(userID, s.authCfg.RefreshTokenTTL(), []byte(s.authCfg.RefreshTokenSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := &models.Session{
		UserID:       userID,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.authCfg.RefreshTokenTTL()),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *UserService) Refresh(refreshToken string) (string, error) {
	session, err := s.sessionRepo.FindByToken(refreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return "", ErrInvalidCredentials
	}
	if !session.Usable() {
		return "", ErrInvalidCredentials
	}

	claims, err := utils.VerifyJWT(refreshToken, []byte(s.authCfg.RefreshTokenSecret))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateJWT(claims.UserID, s.authCfg.AccessTokenTTL(), []byte(s.authCfg.AccessTokenSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes the refresh session and blacklists the access token's jti
// for its remaining lifetime.
func (s *UserService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	if err := s.sessionRepo.Revoke(refreshToken); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	claims, err := utils.VerifyJWT(accessToken, []byte(s.authCfg.AccessTokenSecret))
	if err != nil {
		// Expired access token: nothing left to blacklist.
		return nil
	}

	return s.redisRepo.Blacklist(ctx, claims.ID, s.authCfg.AccessTokenTTL())
}

func (s *UserService) GetUser(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	user.PasswordHash = ""
	return user, nil
}

type UpdateProfileRequest struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
}

func (s *UserService) UpdateProfile(userID uuid.UUID, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(*req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}
