package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/timetrack/attendance-backend-go/internal/domain/auth"
	"github.com/timetrack/attendance-backend-go/internal/domain/user"
	"github.com/timetrack/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo user.UserRepository
	jwt      jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		jwt:      jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Unknown username answers the same as a wrong password
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwt.GenerateAccessToken(userData.ID, userData.Username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		User: auth.UserResponse{
			ID:       userData.ID,
			Username: userData.Username,
			FullName: userData.FullName,
		},
	}, nil
}

// Verify implements auth.AuthService.
func (a *AuthServiceImpl) Verify(ctx context.Context, userID string) (auth.VerifyResponse, error) {
	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.VerifyResponse{}, auth.ErrInvalidToken
		}
		return auth.VerifyResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return auth.VerifyResponse{
		Valid: true,
		User: auth.UserResponse{
			ID:       userData.ID,
			Username: userData.Username,
			FullName: userData.FullName,
		},
	}, nil
}
