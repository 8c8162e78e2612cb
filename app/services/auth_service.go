package services

import (
	"context"
	"errors"
	"strings"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/auth"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/metrics"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/session"
)

// ErrInvalidCredentials covers both unknown accounts and wrong
// passwords so responses never reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// SignUpInput is a new customer registration.
type SignUpInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,digits=10"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// AuthService handles customer and admin sign-in and registration.
type AuthService struct {
	users     store.UserStore
	admins    store.AdminStore
	passwords auth.PasswordVerifier
}

func NewAuthService(users store.UserStore, admins store.AdminStore, passwords auth.PasswordVerifier) *AuthService {
	return &AuthService{users: users, admins: admins, passwords: passwords}
}

// SignUp registers a new customer account with a hashed password.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:    strings.TrimSpace(in.Phone),
		Password: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SignIn verifies a customer's credentials and returns the session principal.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (session.Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.ByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		metrics.SignInFailures.WithLabelValues("customer").Inc()
		return session.Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		return session.Principal{}, err
	}
	if !s.passwords.Verify(u.Password, password) {
		metrics.SignInFailures.WithLabelValues("customer").Inc()
		return session.Principal{}, ErrInvalidCredentials
	}
	return session.Principal{ID: u.ID, Name: u.Name, Email: u.Email, Role: "customer"}, nil
}

// AdminSignIn verifies a back-office operator's credentials.
func (s *AuthService) AdminSignIn(ctx context.Context, email, password string) (session.Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	a, err := s.admins.ByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		metrics.SignInFailures.WithLabelValues("admin").Inc()
		return session.Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		return session.Principal{}, err
	}
	if !s.passwords.Verify(a.Password, password) {
		metrics.SignInFailures.WithLabelValues("admin").Inc()
		return session.Principal{}, ErrInvalidCredentials
	}
	return session.Principal{ID: a.ID, Name: a.Name, Email: a.Email, Role: "admin"}, nil
}

// AdminToken issues a bearer token for the admin API after a successful
// credential check.
func (s *AuthService) AdminToken(ctx context.Context, email, password string) (string, error) {
	p, err := s.AdminSignIn(ctx, email, password)
	if err != nil {
		return "", err
	}
	return auth.GenerateToken(p.ID, "admin")
}
