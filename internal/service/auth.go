package service

import (
	"context"
	"fmt"

	"github.com/FilmThanapol/feeldiary/backend/internal/models"
	"github.com/FilmThanapol/feeldiary/backend/internal/repository"
	"github.com/FilmThanapol/feeldiary/backend/pkg/supabase"
)

type authService struct {
	client   *supabase.Client
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(client *supabase.Client, userRepo repository.UserRepository) AuthService {
	return &authService{
		client:   client,
		userRepo: userRepo,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	session, err := s.client.SignIn(req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return sessionResponse(session), nil
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	session, err := s.client.SignUp(req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	// Mirror the auth user into our users table. Best effort: a conflict
	// means the row already exists and the auth user is already created.
	user := &models.User{ID: session.User.ID, Email: session.User.Email}
	_, _ = s.userRepo.Create(ctx, user)

	return sessionResponse(session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.client.SignOut(token); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

func (s *authService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func sessionResponse(session *supabase.Session) *models.AuthResponse {
	return &models.AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		User: models.User{
			ID:    session.User.ID,
			Email: session.User.Email,
		},
	}
}
