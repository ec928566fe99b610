package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
)

const bcryptCost = 12

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailOrUsernameTaken(ctx context.Context, email, username string) (bool, error)
}

// App handles registration, login and session verification.
type App struct {
	repo          UsersRepository
	tokens        *TokenIssuer
	startingCoins int64
}

func NewApp(repo UsersRepository, tokens *TokenIssuer, startingCoins int64) *App {
	return &App{
		repo:          repo,
		tokens:        tokens,
		startingCoins: startingCoins,
	}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// Register creates a new account and returns a session token. New accounts
// start with the configured coin grant; the team budget lives on the team,
// created separately.
func (a *App) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	taken, err := a.repo.EmailOrUsernameTaken(ctx, req.Email, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if taken {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.repo.CreateUser(ctx, CreateUserRequest{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Coins:        a.startingCoins,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("registered user")
	return &AuthResponse{AccessToken: token, User: user}, nil
}

// Login verifies credentials and returns a fresh session token.
func (a *App) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := a.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{AccessToken: token, User: user}, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// VerifySession resolves a session token to a user id.
func (a *App) VerifySession(token string) (uuid.UUID, error) {
	return a.tokens.Verify(token)
}

func validateRegisterRequest(req RegisterRequest) error {
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}
	if req.Username == "" {
		return fmt.Errorf("username is required")
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
