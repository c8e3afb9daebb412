package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	domainuser "github.com/avelar/taskhub/internal/domain/user"
	porttoken "github.com/avelar/taskhub/internal/port/token"
	portuser "github.com/avelar/taskhub/internal/port/user"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response does not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	users  portuser.Repository
	tokens porttoken.Manager
}

func NewService(users portuser.Repository, tokens porttoken.Manager) *Service {
	return &Service{users: users, tokens: tokens}
}

// SignUp creates an account and returns the new user with an access token.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (domainuser.User, string, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return domainuser.User{}, "", ErrEmailTaken
	}
	if !errors.Is(err, domainuser.ErrNotFound) {
		return domainuser.User{}, "", fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domainuser.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, domainuser.New(name, email, string(hash)))
	if err != nil {
		return domainuser.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return domainuser.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return created, token, nil
}

// Login verifies the credentials and returns an access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainuser.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
