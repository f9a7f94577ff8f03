package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dtr-tools/dtr-backend-go/internal/domain/auth"
	"github.com/dtr-tools/dtr-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceImpl authenticates the single operator account configured
// via the environment; there is no user store.
type AuthServiceImpl struct {
	username     string
	passwordHash string
	jwtService   jwt.Service
}

func NewAuthService(username string, passwordHash string, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		username:     username,
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password))
	if !usernameMatch || passwordErr != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens()
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	username, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if username != s.username {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	return s.issueTokens()
}

func (s *AuthServiceImpl) issueTokens() (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(s.username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(s.username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}
