package services

import (
	"errors"
	"fmt"

	"lavka/internal/models"
	"lavka/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// Business-level auth failures. Handlers map these to 422 and 401.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles signup, login, logout and bearer-token resolution.
type AuthService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
	// decoyHash keeps login cost constant when the email is unknown.
	decoyHash []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository) *AuthService {
	decoy, err := bcrypt.GenerateFromPassword([]byte("decoy-password"), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on an out-of-range cost, which DefaultCost is not.
		panic(fmt.Sprintf("failed to generate decoy hash: %v", err))
	}
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		decoyHash: decoy,
	}
}

// Signup creates a user with a hashed password and issues a fresh bearer
// token. Returns ErrEmailTaken when the email is already registered.
func (s *AuthService) Signup(fio, email, password string) (string, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return "", fmt.Errorf("failed to check email %s: %w", email, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Fio:      fio,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token := &models.Token{UserID: user.ID}
	if err := s.tokenRepo.Create(token); err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token.Key, nil
}

// Login verifies credentials and returns the user's bearer token, reusing
// the active one if it exists. Unknown emails still pay for a bcrypt
// compare so the caller cannot time-probe which emails are registered.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.decoyHash, []byte(password))
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user %s: %w", email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenRepo.GetOrCreate(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token.Key, nil
}

// Authenticate resolves a bearer key to its user. Returns
// ErrInvalidCredentials for unknown keys.
func (s *AuthService) Authenticate(key string) (*models.User, error) {
	token, err := s.tokenRepo.GetByKey(key)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	user, err := s.userRepo.GetByID(token.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load token owner: %w", err)
	}
	return user, nil
}

// Logout revokes the user's active token.
func (s *AuthService) Logout(userID string) error {
	return s.tokenRepo.DeleteByUser(userID)
}
