package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"elhamas/internal/adapters/observability"
	"elhamas/internal/domain"
)

type sessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthService logs admins in and checks session tokens. With a nil session
// store tokens are stateless and cannot be revoked before they expire.
type AuthService struct {
	repo     domain.Repository
	sessions domain.SessionStore
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(repo domain.Repository, sessions domain.SessionStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Session is what a successful login hands back to the transport layer.
type Session struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Admin     *domain.AdminUser `json:"admin"`
}

func (s *AuthService) Login(ctx context.Context, in domain.LoginInput) (*Session, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	if s.repo == nil {
		return nil, domain.ErrUnavailable
	}
	admin, err := s.repo.Admins().FindOne(ctx, domain.Filter{Where: map[string]any{"email": in.Email}})
	if errors.Is(err, domain.ErrNotFound) {
		observability.ObserveSession("failed")
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)) != nil {
		observability.ObserveSession("failed")
		log.Warn().Str("email", in.Email).Msg("admin login rejected")
		return nil, domain.ErrUnauthorized
	}

	sid := uuid.NewString()
	if s.sessions != nil {
		if sid, err = s.sessions.Create(ctx, admin.ID, s.ttl); err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}
	}
	now := s.now()
	exp := now.Add(s.ttl)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	observability.ObserveSession("login")
	log.Info().Str("admin", admin.ID).Msg("admin logged in")
	return &Session{Token: token, ExpiresAt: exp, Admin: admin}, nil
}

func (s *AuthService) parse(token string) (*sessionClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || claims.Subject == "" {
		return nil, domain.ErrUnauthorized
	}
	return &claims, nil
}

// Authenticate returns the admin id behind token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthorized
	}
	claims, err := s.parse(token)
	if err != nil {
		observability.ObserveSession("rejected")
		return "", err
	}
	if s.sessions != nil {
		adminID, err := s.sessions.Lookup(ctx, claims.SID)
		if errors.Is(err, domain.ErrNotFound) || (err == nil && adminID != claims.Subject) {
			observability.ObserveSession("rejected")
			return "", domain.ErrUnauthorized
		}
		if err != nil {
			return "", fmt.Errorf("lookup session: %w", err)
		}
	}
	return claims.Subject, nil
}

// Logout revokes the server-side session. Invalid tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}
	observability.ObserveSession("logout")
	if s.sessions == nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.SID)
}

func (s *AuthService) Me(ctx context.Context, adminID string) (*domain.AdminUser, error) {
	if s.repo == nil {
		return nil, domain.ErrUnavailable
	}
	return s.repo.Admins().Get(ctx, adminID)
}

// EnsureAdmin creates the bootstrap admin unless one with email exists.
// It reports whether a row was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password, name string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, nil
	}
	if s.repo == nil {
		return false, domain.ErrUnavailable
	}
	_, err := s.repo.Admins().FindOne(ctx, domain.Filter{Where: map[string]any{"email": email}})
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	admin := &domain.AdminUser{Email: email, Name: name, PasswordHash: string(hash)}
	if err := s.repo.Admins().Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("create admin: %w", err)
	}
	log.Info().Str("email", email).Msg("bootstrap admin created")
	return true, nil
}
