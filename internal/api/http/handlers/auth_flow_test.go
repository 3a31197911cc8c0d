package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/mangostorage/inventory-service/internal/api/http"
	"github.com/mangostorage/inventory-service/internal/api/http/handlers"
	"github.com/mangostorage/inventory-service/internal/auth"
	"github.com/mangostorage/inventory-service/internal/domain"
	"github.com/mangostorage/inventory-service/internal/events"
	"github.com/mangostorage/inventory-service/internal/observability"
	"github.com/mangostorage/inventory-service/internal/persistence"
	"github.com/mangostorage/inventory-service/internal/repository"
	"github.com/mangostorage/inventory-service/internal/service"
)

type stubAccountRepo struct {
	accounts map[string]*domain.UserAccount
}

func (s *stubAccountRepo) Create(_ context.Context, account *domain.UserAccount) error {
	s.accounts[account.Username] = account
	return nil
}

func (s *stubAccountRepo) GetByID(_ context.Context, id int64) (*domain.UserAccount, error) {
	for _, account := range s.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubAccountRepo) GetByUsername(_ context.Context, username string) (*domain.UserAccount, error) {
	account, ok := s.accounts[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return account, nil
}

func (s *stubAccountRepo) List(_ context.Context) ([]domain.UserAccount, error) {
	out := []domain.UserAccount{}
	for _, account := range s.accounts {
		out = append(out, *account)
	}
	return out, nil
}

func (s *stubAccountRepo) UpdateFields(_ context.Context, _ int64, _ map[string]any) error {
	return nil
}

func (s *stubAccountRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

var _ repository.AccountRepository = (*stubAccountRepo)(nil)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := auth.HashPassword("mango-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo := &stubAccountRepo{accounts: map[string]*domain.UserAccount{
		"alice": {ID: 1, Username: "alice", PasswordHash: hash, Position: domain.PositionManager},
	}}

	tokens := auth.NewTokenService("handler-test-secret", 60, auth.NewMemoryRevocationSet())
	dispatcher := events.NewInMemoryDispatcher()
	authService := service.NewAuthService(service.AuthDependencies{
		AccountRepo: repo,
		Tokens:      tokens,
		Dispatcher:  dispatcher,
		BcryptCost:  bcrypt.MinCost,
	})
	inventoryService := service.NewInventoryService(service.InventoryDependencies{
		Dispatcher: dispatcher,
		Logger:     zap.NewNop(),
	})
	orderService := service.NewOrderService(nil)

	logger := zap.NewNop()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("test", "dev", &persistence.Postgres{}, &persistence.Redis{}),
		Auth:           handlers.NewAuthHandler(authService),
		Accounts:       handlers.NewAccountsHandler(authService),
		Products:       handlers.NewProductsHandler(inventoryService),
		Serials:        handlers.NewSerialsHandler(inventoryService),
		Orders:         handlers.NewOrdersHandler(orderService),
		Storage:        handlers.NewStorageHandler(inventoryService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, header map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s: %v", path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return out
}

func verifyReason(t *testing.T, resp *http.Response) string {
	t.Helper()
	body := decodeJSON(t, resp)
	errObj, _ := body["error"].(map[string]any)
	details, _ := errObj["details"].(map[string]any)
	reason, _ := details["reason"].(string)
	return reason
}

func TestLoginMissingFields(t *testing.T) {
	app := newTestApp(t)
	resp := postJSON(t, app, "/login", map[string]string{"username": "alice"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	app := newTestApp(t)
	resp := postJSON(t, app, "/login", map[string]string{"username": "ghost", "password": "x"}, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	resp := postJSON(t, app, "/login", map[string]string{"username": "alice", "password": "nope"}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", resp.StatusCode)
	}
}

func TestLoginVerifyLogoutFlow(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/login", map[string]string{"username": "alice", "password": "mango-pass"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: want 200, got %d", resp.StatusCode)
	}
	body := decodeJSON(t, resp)
	if body["status"] != "ok" || body["position"] != "Manager" {
		t.Fatalf("unexpected login body: %v", body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login response missing token")
	}
	bearer := map[string]string{"Authorization": "Bearer " + token}

	resp = postJSON(t, app, "/verify-token", nil, bearer)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("verify: want 200, got %d", resp.StatusCode)
	}
	verified := decodeJSON(t, resp)
	decoded, _ := verified["decoded"].(map[string]any)
	if decoded["username"] != "alice" || decoded["position"] != "Manager" {
		t.Fatalf("decoded claims mismatch: %v", verified)
	}

	resp = postJSON(t, app, "/logout", nil, bearer)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: want 200, got %d", resp.StatusCode)
	}

	resp = postJSON(t, app, "/verify-token", nil, bearer)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("verify after logout: want 401, got %d", resp.StatusCode)
	}
	if reason := verifyReason(t, resp); reason != "Revoked" {
		t.Fatalf("want reason Revoked, got %q", reason)
	}

	// Logging out an already-revoked token still succeeds.
	resp = postJSON(t, app, "/logout", nil, bearer)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("second logout: want 200, got %d", resp.StatusCode)
	}
}

func TestVerifyTokenMissing(t *testing.T) {
	app := newTestApp(t)
	resp := postJSON(t, app, "/verify-token", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", resp.StatusCode)
	}
	if reason := verifyReason(t, resp); reason != "Missing" {
		t.Fatalf("want reason Missing, got %q", reason)
	}
}

func TestLogoutWithoutToken(t *testing.T) {
	app := newTestApp(t)
	resp := postJSON(t, app, "/logout", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", resp.StatusCode)
	}
}

func TestMutationRequiresToken(t *testing.T) {
	app := newTestApp(t)
	resp := postJSON(t, app, "/createSerial", map[string]string{"Serial_No": "S1"}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401 for unauthenticated mutation, got %d", resp.StatusCode)
	}
}
