// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/invoicerd/invoicer/internal/config"
	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/internal/store"
	"github.com/invoicerd/invoicer/internal/utils"
	"github.com/invoicerd/invoicer/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, session lifecycle
// and JWT token issuance, using bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository persists the server-side sessions behind the
	// cookie-carried identifiers.
	sessionRepository store.SessionRepository

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	bcryptCost int

	// sessionTTL is the fixed lifetime of a session from the moment of login.
	sessionTTL time.Duration

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.StructuredConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		bcryptCost:        cfg.App.BcryptCost,
		sessionTTL:        cfg.Session.TTL,
		tokenSignKey:      cfg.App.TokenSignKey,
		tokenIssuer:       cfg.App.TokenIssuer,
		tokenDuration:     cfg.App.TokenDuration,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Email and Password are non-empty, hashes the
// password with bcrypt at the configured cost, and delegates persistence to
// the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.User{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, credentials.Email, string(passwordHash))
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Email and Password are non-empty, looks up the
// account by email, and compares the supplied password against the stored
// bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrWrongPassword when the account does not exist or the password does
//     not match. The two cases are deliberately indistinguishable so that the
//     response does not leak which emails are registered.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", credentials.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Error().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GetUser returns the account with the given id. The storage error for a
// missing account (store.ErrNoUserWasFound) is passed through for the caller
// to match on.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// CreateSession issues a new server-side session for the given user.
//
// The session id is a random version-4 UUID and the expiry is the configured
// TTL from the moment of creation. The caller is responsible for delivering
// the id to the client, typically in an HttpOnly cookie.
func (a *authService) CreateSession(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	now := time.Now()
	session := models.Session{
		SessionID: utils.NewUUID(),
		UserID:    userID,
		ExpiresAt: now.Add(a.sessionTTL),
		CreatedAt: now,
	}

	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("userID", userID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

// ResolveSession looks up the session with the given id and checks its expiry.
//
// Returns the session record or:
//   - store.ErrSessionNotFound when no such session exists.
//   - ErrSessionExpired when the session exists but its expiry has passed.
//     The stale row is deleted on the way out so it is not resolved again.
func (a *authService) ResolveSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := a.sessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.Expired(time.Now()) {
		if err := a.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
			log.Err(err).Str("sessionID", sessionID).Msg("failed to delete expired session")
		}
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

// DeleteSession removes the session with the given id. Deleting a session
// that no longer exists is not an error, so logout is idempotent.
func (a *authService) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if err := a.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		log.Err(err).Str("sessionID", sessionID).Msg("session deletion ended with error")
		return fmt.Errorf("session deletion ended with error: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
