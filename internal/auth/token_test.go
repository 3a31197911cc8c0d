package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/mangostorage/inventory-service/internal/domain"
)

const testSecret = "unit-test-secret"

func newTestService() *TokenService {
	return NewTokenService(testSecret, 60, NewMemoryRevocationSet())
}

func reasonOf(t *testing.T, err error) FailureReason {
	t.Helper()
	var verr *VerificationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *VerificationError, got %v", err)
	}
	return verr.Reason
}

func TestIssueThenVerify(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.Issue("alice", domain.PositionManager)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute || remaining > 61*time.Minute {
		t.Fatalf("expiry not ~1h out: %v", remaining)
	}

	claims, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Username != "alice" || claims.Position != domain.PositionManager {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestVerifyMissing(t *testing.T) {
	svc := newTestService()
	_, err := svc.Verify(context.Background(), "")
	if reason := reasonOf(t, err); reason != ReasonMissing {
		t.Fatalf("want Missing, got %s", reason)
	}
}

func TestVerifyMalformed(t *testing.T) {
	svc := newTestService()
	_, err := svc.Verify(context.Background(), "definitely.not.a-jwt")
	if reason := reasonOf(t, err); reason != ReasonMalformed {
		t.Fatalf("want Malformed, got %s", reason)
	}
}

func TestVerifyBadSignature(t *testing.T) {
	other := NewTokenService("a-different-secret", 60, NewMemoryRevocationSet())
	token, _, err := other.Issue("alice", domain.PositionEmployee)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	svc := newTestService()
	_, err = svc.Verify(context.Background(), token)
	if reason := reasonOf(t, err); reason != ReasonBadSignature {
		t.Fatalf("want BadSignature, got %s", reason)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := newTestService()

	claims := &Claims{
		Username: "alice",
		Position: domain.PositionEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = svc.Verify(context.Background(), token)
	if reason := reasonOf(t, err); reason != ReasonExpired {
		t.Fatalf("want Expired, got %s", reason)
	}
}

func TestRevokeThenVerify(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	token, _, err := svc.Issue("bob", domain.PositionEmployee)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if err := svc.Revoke(ctx, token); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := svc.Verify(ctx, token); reasonOf(t, err) != ReasonRevoked {
		t.Fatalf("want Revoked, got %v", err)
	}

	// Revoking twice is a no-op, not an error.
	if err := svc.Revoke(ctx, token); err != nil {
		t.Fatalf("second Revoke: %v", err)
	}
}

func TestRevokeExpiredToken(t *testing.T) {
	svc := newTestService()

	claims := &Claims{
		Username: "bob",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Fatalf("revoking an expired token must succeed: %v", err)
	}
}

func TestTokenDigestStable(t *testing.T) {
	if TokenDigest("abc") != TokenDigest("abc") {
		t.Fatal("digest must be deterministic")
	}
	if TokenDigest("abc") == TokenDigest("abd") {
		t.Fatal("different tokens must not collide trivially")
	}
}
