package users

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/miniblog/internal/common"
	"github.com/dmitrijs2005/miniblog/internal/server/auth"
	"github.com/dmitrijs2005/miniblog/internal/server/config"
)

const (
	minUsernameLength = 3
	minPasswordLength = 8
)

// PasswordHasher is the credential-service contract the use cases depend on.
// internal/server/password provides the bcrypt implementation.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
	DummyVerify(plaintext string)
}

// Service contains the user-facing use cases: registration, authentication,
// token issuance, profile lookup and password change. It is stateless and
// safe for concurrent use; all collaboration happens through the injected
// repository and hasher.
type Service struct {
	repo                        Repository
	hasher                      PasswordHasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, hasher PasswordHasher, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		hasher:                      hasher,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user from the given credentials. The plaintext
// password is hashed here and discarded; only the digest is persisted.
func (s *Service) Register(ctx context.Context, username, email, plainPassword, phoneNumber string) (*User, error) {

	if utf8.RuneCountInString(username) < minUsernameLength {
		return nil, fmt.Errorf("%w: username must be at least %d characters", common.ErrValidation, minUsernameLength)
	}
	if utf8.RuneCountInString(plainPassword) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLength)
	}

	digest, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Username:       username,
		Email:          email,
		HashedPassword: digest,
		PhoneNumber:    phoneNumber,
		IsActive:       true,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, fmt.Errorf("email or username already registered: %w", err)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate verifies an email/password pair and returns the matching user
// snapshot. Unknown email and wrong password fail with the same
// common.ErrInvalidCredentials; a lookup miss still burns one hash
// comparison so the two paths cost the same.
func (s *Service) Authenticate(ctx context.Context, email, plainPassword string) (*User, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.DummyVerify(plainPassword)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !user.IsActive {
		return nil, common.ErrAccountInactive
	}

	if !s.hasher.Verify(plainPassword, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a fresh access token for an authenticated user. Tokens
// are self-contained; nothing is stored server-side.
func (s *Service) IssueToken(user *User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}

// Get returns the user with the given id, failing with common.ErrNotFound
// if no such record exists.
func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the stored digest for the user. Reusing the
// current password is rejected.
func (s *Service) ChangePassword(ctx context.Context, id int64, newPassword string) (*User, error) {

	if utf8.RuneCountInString(newPassword) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLength)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if s.hasher.Verify(newPassword, user.HashedPassword) {
		return nil, fmt.Errorf("%w: password cannot be the same as previous", common.ErrValidation)
	}

	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	updated := *user
	updated.HashedPassword = digest

	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return result, nil
}
