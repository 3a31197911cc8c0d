package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mangostorage/inventory-service/internal/auth"
	"github.com/mangostorage/inventory-service/internal/domain"
	"github.com/mangostorage/inventory-service/internal/events"
	"github.com/mangostorage/inventory-service/internal/repository"
	apperrors "github.com/mangostorage/inventory-service/pkg/util"
)

type mockAccountRepo struct {
	createFn        func(ctx context.Context, account *domain.UserAccount) error
	getByIDFn       func(ctx context.Context, id int64) (*domain.UserAccount, error)
	getByUsernameFn func(ctx context.Context, username string) (*domain.UserAccount, error)
	listFn          func(ctx context.Context) ([]domain.UserAccount, error)
	updateFieldsFn  func(ctx context.Context, id int64, fields map[string]any) error
	deleteFn        func(ctx context.Context, id int64) error
}

func (m *mockAccountRepo) Create(ctx context.Context, account *domain.UserAccount) error {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return nil
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id int64) (*domain.UserAccount, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockAccountRepo) GetByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockAccountRepo) List(ctx context.Context) ([]domain.UserAccount, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockAccountRepo) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(ctx, id, fields)
	}
	return nil
}

func (m *mockAccountRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func newAuthServiceWithRepo(repo *mockAccountRepo) (*AuthService, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret", 60, auth.NewMemoryRevocationSet())
	svc := NewAuthService(AuthDependencies{
		AccountRepo: repo,
		Tokens:      tokens,
		Dispatcher:  events.NewInMemoryDispatcher(),
		BcryptCost:  bcrypt.MinCost,
	})
	return svc, tokens
}

func storedAccount(t *testing.T, username, password string, position domain.Position) *domain.UserAccount {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &domain.UserAccount{ID: 1, Username: username, PasswordHash: hash, Position: position}
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _ := newAuthServiceWithRepo(&mockAccountRepo{})

	_, _, _, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("unknown username should surface as no-rows (404 at the boundary), got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	account := storedAccount(t, "alice", "correct-horse", domain.PositionManager)
	svc, _ := newAuthServiceWithRepo(&mockAccountRepo{
		getByUsernameFn: func(_ context.Context, _ string) (*domain.UserAccount, error) {
			return account, nil
		},
	})

	_, _, _, err := svc.Login(context.Background(), "alice", "battery-staple")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.HTTPStatus != 401 {
		t.Fatalf("want 401, got %v", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	account := storedAccount(t, "alice", "correct-horse", domain.PositionManager)
	svc, tokens := newAuthServiceWithRepo(&mockAccountRepo{
		getByUsernameFn: func(_ context.Context, _ string) (*domain.UserAccount, error) {
			return account, nil
		},
	})

	got, token, _, err := svc.Login(context.Background(), "alice", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("wrong account returned: %+v", got)
	}

	claims, err := tokens.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.Username != "alice" || claims.Position != domain.PositionManager {
		t.Fatalf("token does not carry the issued identity/role: %+v", claims)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	account := storedAccount(t, "alice", "correct-horse", domain.PositionEmployee)
	svc, tokens := newAuthServiceWithRepo(&mockAccountRepo{
		getByUsernameFn: func(_ context.Context, _ string) (*domain.UserAccount, error) {
			return account, nil
		},
	})

	ctx := context.Background()
	_, token, _, err := svc.Login(ctx, "alice", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	_, err = tokens.Verify(ctx, token)
	var verr *auth.VerificationError
	if !errors.As(err, &verr) || verr.Reason != auth.ReasonRevoked {
		t.Fatalf("want Revoked after logout, got %v", err)
	}

	// Logging out twice is fine.
	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}

func TestCreateAccountAlwaysHashes(t *testing.T) {
	var created *domain.UserAccount
	svc, _ := newAuthServiceWithRepo(&mockAccountRepo{
		createFn: func(_ context.Context, account *domain.UserAccount) error {
			created = account
			return nil
		},
	})

	if _, err := svc.CreateAccount(context.Background(), "bob", "plain-secret", domain.PositionEmployee); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if created.PasswordHash == "plain-secret" {
		t.Fatal("plaintext reached the store")
	}
	ok, err := auth.VerifyPassword(created.PasswordHash, "plain-secret")
	if err != nil || !ok {
		t.Fatalf("stored digest does not verify: (%v, %v)", ok, err)
	}
}

func TestUpdateAccountHashesIncomingPassword(t *testing.T) {
	var got map[string]any
	svc, _ := newAuthServiceWithRepo(&mockAccountRepo{
		updateFieldsFn: func(_ context.Context, _ int64, fields map[string]any) error {
			got = fields
			return nil
		},
	})

	password := "new-secret"
	if err := svc.UpdateAccount(context.Background(), 1, AccountUpdateInput{Password: &password}); err != nil {
		t.Fatalf("UpdateAccount: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("only password_hash should be present: %v", got)
	}
	hash, ok := got["password_hash"].(string)
	if !ok || hash == password {
		t.Fatalf("password not hashed before the store: %v", got)
	}
}

func TestUpdateAccountNoFields(t *testing.T) {
	svc, _ := newAuthServiceWithRepo(&mockAccountRepo{
		updateFieldsFn: func(_ context.Context, _ int64, fields map[string]any) error {
			if len(fields) != 0 {
				t.Fatalf("expected empty field set, got %v", fields)
			}
			return repository.ErrNoFieldsSupplied
		},
	})

	err := svc.UpdateAccount(context.Background(), 1, AccountUpdateInput{})
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.HTTPStatus != 400 {
		t.Fatalf("want 400 validation error, got %v", err)
	}
}
