package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mangostorage/inventory-service/internal/domain"
)

// FailureReason classifies why a presented token was rejected.
type FailureReason string

const (
	ReasonMalformed    FailureReason = "Malformed"
	ReasonBadSignature FailureReason = "BadSignature"
	ReasonExpired      FailureReason = "Expired"
	ReasonRevoked      FailureReason = "Revoked"
	ReasonMissing      FailureReason = "Missing"
)

// VerificationError reports the first failing check during token verification.
type VerificationError struct {
	Reason FailureReason
	Err    error
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token verification failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("token verification failed (%s)", e.Reason)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Claims describes the JWT payload: subject identity, role, issue and expiry
// times. Tokens are self-contained; no session lookup is needed to verify one.
type Claims struct {
	Username string          `json:"username"`
	Position domain.Position `json:"position"`
	jwt.RegisteredClaims
}

// TokenService issues, verifies and revokes signed session tokens. The signing
// secret and TTL are fixed at construction; the revocation set is the only
// server-side state involved.
type TokenService struct {
	secret  []byte
	ttl     time.Duration
	revoked RevocationSet
}

// NewTokenService builds a service with the given secret and TTL in minutes.
func NewTokenService(secret string, ttlMinutes int, revoked RevocationSet) *TokenService {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenService{
		secret:  []byte(secret),
		ttl:     time.Duration(ttlMinutes) * time.Minute,
		revoked: revoked,
	}
}

// TTL reports the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for the given identity and role. Stateless: nothing is
// recorded server-side at issuance.
func (s *TokenService) Issue(username string, position domain.Position) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := &Claims{
		Username: username,
		Position: position,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks structure, signature, expiry and revocation, in that order,
// and returns the claims of a valid token. The first failing check determines
// the reported reason; any failure rejects the token outright.
func (s *TokenService) Verify(ctx context.Context, tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, &VerificationError{Reason: ReasonMissing}
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, &VerificationError{Reason: ReasonBadSignature, Err: errors.New("unexpected signing method")}
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, classifyParseError(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, &VerificationError{Reason: ReasonMalformed}
	}

	revoked, err := s.revoked.Contains(ctx, TokenDigest(tokenStr))
	if err != nil {
		// Unknown revocation status counts as revoked.
		return nil, &VerificationError{Reason: ReasonRevoked, Err: err}
	}
	if revoked {
		return nil, &VerificationError{Reason: ReasonRevoked}
	}
	return claims, nil
}

// Revoke adds the token's digest to the revocation set for the remainder of
// its lifetime. Idempotent, and a no-op for tokens already past expiry.
func (s *TokenService) Revoke(ctx context.Context, tokenStr string) error {
	ttl := s.ttl

	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &claims); err == nil && claims.ExpiresAt != nil {
		remaining := time.Until(claims.ExpiresAt.Time)
		if remaining <= 0 {
			return nil
		}
		ttl = remaining
	}

	return s.revoked.Add(ctx, TokenDigest(tokenStr), ttl)
}

// TokenDigest returns the hex SHA-256 of a raw token. Revocations store the
// digest so raw credentials never land in the set.
func TokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func classifyParseError(err error) *VerificationError {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr
	}
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return &VerificationError{Reason: ReasonMalformed, Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return &VerificationError{Reason: ReasonBadSignature, Err: err}
	case errors.Is(err, jwt.ErrTokenExpired):
		return &VerificationError{Reason: ReasonExpired, Err: err}
	default:
		return &VerificationError{Reason: ReasonMalformed, Err: err}
	}
}
