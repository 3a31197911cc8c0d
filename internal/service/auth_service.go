package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mangostorage/inventory-service/internal/auth"
	"github.com/mangostorage/inventory-service/internal/domain"
	"github.com/mangostorage/inventory-service/internal/events"
	"github.com/mangostorage/inventory-service/internal/repository"
	apperrors "github.com/mangostorage/inventory-service/pkg/util"
)

// AuthService coordinates credential checks, account lifecycle and session
// token issuance.
type AuthService struct {
	accounts   repository.AccountRepository
	tokens     *auth.TokenService
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies bundles requirements for the auth service.
type AuthDependencies struct {
	AccountRepo repository.AccountRepository
	Tokens      *auth.TokenService
	Dispatcher  events.Dispatcher
	BcryptCost  int
}

// AccountUpdateInput captures the optional fields of a partial account
// update. Nil means the field was absent from the request.
type AccountUpdateInput struct {
	Username *string
	Password *string
	Position *string
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		accounts:   deps.AccountRepo,
		tokens:     deps.Tokens,
		dispatcher: deps.Dispatcher,
		bcryptCost: deps.BcryptCost,
	}
}

// Login verifies credentials and issues a session token. An unknown username
// surfaces as not-found, a wrong password as unauthorized; the split is part
// of the documented endpoint contract.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.UserAccount, string, time.Time, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	ok, err := auth.VerifyPassword(account.PasswordHash, password)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if !ok {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("login failed")
	}

	token, exp, err := s.tokens.Issue(account.Username, account.Position)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return account, token, exp, nil
}

// VerifyToken validates a presented session token.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	return s.tokens.Verify(ctx, token)
}

// Logout revokes the presented token for the remainder of its lifetime.
// Succeeds for already-revoked and already-expired tokens.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// CreateAccount registers a new account. The password is always hashed before
// it reaches the store.
func (s *AuthService) CreateAccount(ctx context.Context, username, password string, position domain.Position) (*domain.UserAccount, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	account := &domain.UserAccount{
		Username:     username,
		PasswordHash: hash,
		Position:     position,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventAccountCreated, account.Username, events.AccountCreatedPayload{
		Username: account.Username,
		Position: account.Position,
	})
	return account, nil
}

// ListAccounts returns all accounts.
func (s *AuthService) ListAccounts(ctx context.Context) ([]domain.UserAccount, error) {
	return s.accounts.List(ctx)
}

// UpdateAccount applies a partial update. An incoming password is hashed; the
// plaintext never reaches the store.
func (s *AuthService) UpdateAccount(ctx context.Context, id int64, input AccountUpdateInput) error {
	fields := map[string]any{}
	if input.Username != nil {
		fields["username"] = *input.Username
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		fields["password_hash"] = hash
	}
	if input.Position != nil {
		fields["position"] = *input.Position
	}

	if err := s.accounts.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrNoFieldsSupplied) {
			return apperrors.NewValidationError("no updatable fields supplied", nil)
		}
		return err
	}
	return nil
}

// DeleteAccount removes an account. Outstanding tokens stay valid until
// expiry; they are self-contained.
func (s *AuthService) DeleteAccount(ctx context.Context, id int64) error {
	return s.accounts.Delete(ctx, id)
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, subject string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
