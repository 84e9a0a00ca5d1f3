// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/invoicerd/invoicer/internal/config"
	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/internal/store"
	"github.com/invoicerd/invoicer/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, email, passwordHash string) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	getUserByIDFn     func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, email, passwordHash)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.SessionRepository
// ─────────────────────────────────────────────

type mockSessionRepository struct {
	createSessionFn         func(ctx context.Context, session models.Session) error
	getSessionFn            func(ctx context.Context, sessionID string) (models.Session, error)
	deleteSessionFn         func(ctx context.Context, sessionID string) error
	deleteExpiredSessionsFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	if m.getSessionFn != nil {
		return m.getSessionFn(ctx, sessionID)
	}
	return models.Session{}, nil
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if m.deleteSessionFn != nil {
		return m.deleteSessionFn(ctx, sessionID)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	if m.deleteExpiredSessionsFn != nil {
		return m.deleteExpiredSessionsFn(ctx, now)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestAuthService(users *mockUserRepository, sessions *mockSessionRepository) AuthService {
	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "invoicer-test",
			TokenDuration: time.Hour,
			BcryptCost:    bcrypt.MinCost,
		},
		Session: config.Session{
			CookieName: "invoicer_session",
			TTL:        time.Hour,
		},
	}
	return NewAuthService(users, sessions, cfg, logger.Nop())
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ─────────────────────────────────────────────
// Tests: RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	users := &mockUserRepository{
		createUserFn: func(ctx context.Context, email, passwordHash string) (models.User, error) {
			assert.Equal(t, "john@example.com", email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret")))
			return models.User{UserID: 1, Email: email, PasswordHash: passwordHash}, nil
		},
	}
	svc := newTestAuthService(users, &mockSessionRepository{})

	user, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "john@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "john@example.com", user.Email)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockSessionRepository{})

	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{"empty email", models.Credentials{Password: "secret"}},
		{"empty password", models.Credentials{Email: "john@example.com"}},
		{"both empty", models.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.credentials)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	users := &mockUserRepository{
		createUserFn: func(ctx context.Context, email, passwordHash string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(users, &mockSessionRepository{})

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "john@example.com", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Tests: Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash := mustHash(t, "secret")
	users := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(users, &mockSessionRepository{})

	user, err := svc.Login(context.Background(), models.Credentials{Email: "john@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash := mustHash(t, "secret")
	users := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(users, &mockSessionRepository{})

	_, err := svc.Login(context.Background(), models.Credentials{Email: "john@example.com", Password: "not-secret"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users, &mockSessionRepository{})

	// an unknown email must be indistinguishable from a wrong password
	_, err := svc.Login(context.Background(), models.Credentials{Email: "who@example.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.NotErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	users := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, repoErr
		},
	}
	svc := newTestAuthService(users, &mockSessionRepository{})

	_, err := svc.Login(context.Background(), models.Credentials{Email: "john@example.com", Password: "secret"})
	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

// ─────────────────────────────────────────────
// Tests: sessions
// ─────────────────────────────────────────────

func TestAuthService_CreateSession(t *testing.T) {
	var stored models.Session
	sessions := &mockSessionRepository{
		createSessionFn: func(ctx context.Context, session models.Session) error {
			stored = session
			return nil
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, sessions)

	session, err := svc.CreateSession(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, stored, session)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, int64(42), session.UserID)
	assert.Equal(t, time.Hour, session.ExpiresAt.Sub(session.CreatedAt))
}

func TestAuthService_ResolveSession_Valid(t *testing.T) {
	sessions := &mockSessionRepository{
		getSessionFn: func(ctx context.Context, sessionID string) (models.Session, error) {
			return models.Session{
				SessionID: sessionID,
				UserID:    42,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, sessions)

	session, err := svc.ResolveSession(context.Background(), "some-session-id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), session.UserID)
}

func TestAuthService_ResolveSession_Expired(t *testing.T) {
	deleted := false
	sessions := &mockSessionRepository{
		getSessionFn: func(ctx context.Context, sessionID string) (models.Session, error) {
			return models.Session{
				SessionID: sessionID,
				UserID:    42,
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil
		},
		deleteSessionFn: func(ctx context.Context, sessionID string) error {
			deleted = true
			return nil
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, sessions)

	_, err := svc.ResolveSession(context.Background(), "stale-session-id")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, deleted, "expired session should be deleted on resolution")
}

func TestAuthService_ResolveSession_NotFound(t *testing.T) {
	sessions := &mockSessionRepository{
		getSessionFn: func(ctx context.Context, sessionID string) (models.Session, error) {
			return models.Session{}, store.ErrSessionNotFound
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, sessions)

	_, err := svc.ResolveSession(context.Background(), "unknown-session-id")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestAuthService_DeleteSession(t *testing.T) {
	var deletedID string
	sessions := &mockSessionRepository{
		deleteSessionFn: func(ctx context.Context, sessionID string) error {
			deletedID = sessionID
			return nil
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, sessions)

	err := svc.DeleteSession(context.Background(), "some-session-id")
	require.NoError(t, err)
	assert.Equal(t, "some-session-id", deletedID)
}

// ─────────────────────────────────────────────
// Tests: tokens
// ─────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockSessionRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockSessionRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
