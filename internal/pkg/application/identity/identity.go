package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	db "github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/repositories/database"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrAccountNotFound    = fmt.Errorf("account not found")
	ErrEmailInUse         = fmt.Errorf("email already in use")
	ErrWeakPassword       = fmt.Errorf("password should be at least 6 characters")
	ErrInvalidEmail       = fmt.Errorf("invalid email")
	ErrSessionNotFound    = fmt.Errorf("session not found or expired")
)

const (
	RoleAdmin string = "admin"
	RoleStaff string = "staff"
)

const (
	ClaimEmail string = "email"
	ClaimRole  string = "role"
)

const (
	minPasswordLength int = 6
	defaultSessionTTL int = 8 * 60
)

type Config struct {
	// AutoProvision creates an account when someone signs in with an email
	// that has no account yet.
	AutoProvision     bool     `yaml:"autoProvision"`
	AdminEmails       []string `yaml:"adminEmails"`
	SessionTTLMinutes int      `yaml:"sessionTTLMinutes"`
}

// Listener is told about sign ins and sign outs. session is nil on sign out.
type Listener func(email string, session *types.Session)

//go:generate moq -rm -out identity_mock.go . IdentityService

type IdentityService interface {
	SignIn(ctx context.Context, email, password string) (types.Session, error)
	SignUp(ctx context.Context, email, password string) (types.Session, error)
	SignOut(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, sessionID string) (types.Session, error)
	OnAuthStateChanged(l Listener) (unsubscribe func())
	TokenAuth() *jwtauth.JWTAuth
}

type service struct {
	users     db.UserRepository
	tokenAuth *jwtauth.JWTAuth
	cfg       Config
	hashCost  int

	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

func New(users db.UserRepository, secret []byte, cfg Config) IdentityService {
	if cfg.SessionTTLMinutes <= 0 {
		cfg.SessionTTLMinutes = defaultSessionTTL
	}

	return &service{
		users:     users,
		tokenAuth: jwtauth.New("HS256", secret, nil),
		cfg:       cfg,
		hashCost:  bcrypt.DefaultCost,
		listeners: map[int]Listener{},
	}
}

func (s *service) TokenAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *service) SignIn(ctx context.Context, email, password string) (types.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return types.Session{}, err
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, db.ErrNotFound) {
		if s.cfg.AutoProvision {
			logger := logging.GetLoggerFromContext(ctx)
			logger.Info().Msg("unknown account, provisioning on sign in")
			return s.SignUp(ctx, email, password)
		}
		return types.Session{}, ErrAccountNotFound
	}
	if err != nil {
		return types.Session{}, fmt.Errorf("failed to look up account: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return types.Session{}, ErrInvalidCredentials
	}

	return s.newSession(ctx, user)
}

func (s *service) SignUp(ctx context.Context, email, password string) (types.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return types.Session{}, err
	}

	if len(password) < minPasswordLength {
		return types.Session{}, ErrWeakPassword
	}

	_, err = s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return types.Session{}, ErrEmailInUse
	}
	if !errors.Is(err, db.ErrNotFound) {
		return types.Session{}, fmt.Errorf("failed to look up account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return types.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := db.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         s.roleFor(email),
	}

	err = s.users.CreateUser(ctx, user)
	if err != nil {
		return types.Session{}, fmt.Errorf("failed to create account: %w", err)
	}

	return s.newSession(ctx, user)
}

func (s *service) SignOut(ctx context.Context, sessionID string) error {
	session, err := s.users.GetSession(ctx, sessionID)
	if errors.Is(err, db.ErrNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		return err
	}

	err = s.users.DeleteSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.notify(session.Email, nil)

	return nil
}

// Authenticate checks that a session exists and has not expired.
func (s *service) Authenticate(ctx context.Context, sessionID string) (types.Session, error) {
	session, err := s.users.GetSession(ctx, sessionID)
	if errors.Is(err, db.ErrNotFound) {
		return types.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return types.Session{}, err
	}
	if !session.ExpiresAt.After(time.Now()) {
		return types.Session{}, ErrSessionNotFound
	}

	return types.Session{
		UserID:    session.UserID,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// OnAuthStateChanged registers l and returns a function that removes it again.
func (s *service) OnAuthStateChanged(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *service) notify(email string, session *types.Session) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(email, session)
	}
}

func (s *service) newSession(ctx context.Context, user db.User) (types.Session, error) {
	sessionID := uuid.NewString()
	expiresAt := time.Now().UTC().Add(time.Duration(s.cfg.SessionTTLMinutes) * time.Minute).Truncate(time.Second)

	claims := map[string]any{
		"sub":      user.ID,
		"jti":      sessionID,
		ClaimEmail: user.Email,
		ClaimRole:  user.Role,
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiry(claims, expiresAt)

	_, token, err := s.tokenAuth.Encode(claims)
	if err != nil {
		return types.Session{}, fmt.Errorf("failed to encode session token: %w", err)
	}

	err = s.users.CreateSession(ctx, db.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return types.Session{}, fmt.Errorf("failed to store session: %w", err)
	}

	session := types.Session{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}

	s.notify(user.Email, &session)

	return session, nil
}

func (s *service) roleFor(email string) string {
	for _, admin := range s.cfg.AdminEmails {
		if strings.EqualFold(admin, email) {
			return RoleAdmin
		}
	}
	return RoleStaff
}

func normalizeEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Name != "" {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}
