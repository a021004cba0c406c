package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pradeepaul/devConnector/internal/events"
	"github.com/pradeepaul/devConnector/internal/gravatar"
	"github.com/pradeepaul/devConnector/internal/model"
	"github.com/pradeepaul/devConnector/internal/repository"
	"github.com/pradeepaul/devConnector/internal/token"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	RegisterUser(ctx context.Context, name, email, password string) (string, error)
	LoginUser(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokens    *token.Service
	publisher events.EventPublisher
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Service, publisher events.EventPublisher) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokens:    tokens,
		publisher: publisher,
	}
}

// RegisterUser persists a new user and returns a signed token for it. The
// email-uniqueness invariant lives on the users table; a duplicate surfaces
// as a pgconn unique-violation for the handler to translate.
func (s *authService) RegisterUser(ctx context.Context, name, email, password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		AvatarURL:    gravatar.URL(email),
	}

	newID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	user.ID = newID

	go s.publisher.PublishUserRegistered(user)

	return s.tokens.Issue(user.ID)
}

func (s *authService) LoginUser(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
