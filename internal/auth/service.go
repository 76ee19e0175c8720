package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	Register(ctx context.Context, username, password string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	repo       Repository
	jwtManager JWTManagerInterface
}

func NewAuthService(repo Repository, jwtManager JWTManagerInterface) Service {
	return &service{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func generateHashToken() (string, error) {
	token := make([]byte, 32)
	_, err := rand.Read(token)
	if err != nil {
		return "", fmt.Errorf("could not generate hash token: %v", err)
	}
	return hex.EncodeToString(token), nil
}

func (s *service) Register(ctx context.Context, username, password string) (*User, error) {
	_, err := s.repo.getUserByUsername(ctx, username)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	hashToken, err := generateHashToken()
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		HashToken:    hashToken,
	}
	if err := s.repo.createUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*User, string, string, error) {
	user, err := s.repo.getUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessJWT(user.ID, defaultJWTDuration)
	if err != nil {
		return nil, "", "", err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshJWT(user.ID, user.HashToken, defaultJWTRefreshDuration)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

// Refresh exchanges a valid refresh token for a fresh access token. The
// token's custom key is checked against the user's stored hash token, so
// a rotated hash token invalidates old refresh tokens.
func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.jwtManager.ExtractUserIDFromRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.repo.getUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if _, err := s.jwtManager.ValidateRefreshToken(refreshToken, user.HashToken); err != nil {
		return "", err
	}

	return s.jwtManager.GenerateAccessJWT(user.ID, defaultJWTDuration)
}

func (s *service) GetUserByID(ctx context.Context, userID string) (*User, error) {
	return s.repo.getUserByID(ctx, userID)
}
