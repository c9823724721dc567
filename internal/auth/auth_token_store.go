package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	autherrors "github.com/JSON-FX/lgu-sso/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// sessionKey is the Redis allowlist entry for one token. A JWT whose jti has
// no live session key is dead, whatever its exp says.
func sessionKey(jti string) string {
	return "session:" + jti
}

// employeeSessionsKey indexes every live jti of one employee, which is what
// makes logout-all a set scan instead of a keyspace scan.
func employeeSessionsKey(employeeUUID string) string {
	return "sessions:" + employeeUUID
}

type TokenClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessJTI    string
	RefreshJTI   string
}

//go:generate mockgen -source=auth_token_store.go -destination=mock/auth_token_store_mock.go -package=mock
type TokenStore interface {
	// Issue mints an access/refresh pair for the employee and allowlists
	// both jtis.
	Issue(ctx context.Context, employeeUUID string) (TokenPair, error)

	// Verify parses the token, checks the signature and type, and confirms
	// the jti is still allowlisted. Returns the employee UUID and jti.
	Verify(ctx context.Context, token, tokenType string) (employeeUUID string, jti string, err error)

	// Revoke drops the given jtis from the allowlist.
	Revoke(ctx context.Context, employeeUUID string, jtis ...string) error

	// RevokeAll drops every live session of the employee and reports how
	// many there were.
	RevokeAll(ctx context.Context, employeeUUID string) (int, error)
}

type tokenStore struct {
	secret     []byte
	rdb        *redis.Client
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenStore(secret []byte, rdb *redis.Client) TokenStore {
	return &tokenStore{
		secret:     secret,
		rdb:        rdb,
		accessTTL:  AccessTokenTTL,
		refreshTTL: RefreshTokenTTL,
	}
}

func (s *tokenStore) Issue(ctx context.Context, employeeUUID string) (TokenPair, error) {
	now := time.Now()

	accessJTI := uuid.NewString()
	accessToken, err := s.sign(employeeUUID, accessJTI, TokenTypeAccess, now, s.accessTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refreshJTI := uuid.NewString()
	refreshToken, err := s.sign(employeeUUID, refreshJTI, TokenTypeRefresh, now, s.refreshTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(accessJTI), employeeUUID, s.accessTTL)
	pipe.Set(ctx, sessionKey(refreshJTI), employeeUUID, s.refreshTTL)
	pipe.SAdd(ctx, employeeSessionsKey(employeeUUID), accessJTI, refreshJTI)
	pipe.Expire(ctx, employeeSessionsKey(employeeUUID), s.refreshTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return TokenPair{}, fmt.Errorf("allowlist session: %w", err)
	}

	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AccessJTI:    accessJTI,
		RefreshJTI:   refreshJTI,
	}, nil
}

func (s *tokenStore) Verify(ctx context.Context, token, tokenType string) (string, string, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", autherrors.ErrTokenExpired
		}
		return "", "", autherrors.ErrInvalidToken
	}
	if !parsed.Valid || claims.TokenType != tokenType || claims.Subject == "" || claims.ID == "" {
		return "", "", autherrors.ErrInvalidToken
	}

	owner, err := s.rdb.Get(ctx, sessionKey(claims.ID)).Result()
	if err == redis.Nil {
		return "", "", autherrors.ErrInvalidToken
	}
	if err != nil {
		return "", "", fmt.Errorf("session lookup: %w", err)
	}
	if owner != claims.Subject {
		return "", "", autherrors.ErrInvalidToken
	}

	return claims.Subject, claims.ID, nil
}

func (s *tokenStore) Revoke(ctx context.Context, employeeUUID string, jtis ...string) error {
	if len(jtis) == 0 {
		return nil
	}

	keys := make([]string, 0, len(jtis))
	members := make([]interface{}, 0, len(jtis))
	for _, jti := range jtis {
		keys = append(keys, sessionKey(jti))
		members = append(members, jti)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, keys...)
	pipe.SRem(ctx, employeeSessionsKey(employeeUUID), members...)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *tokenStore) RevokeAll(ctx context.Context, employeeUUID string) (int, error) {
	jtis, err := s.rdb.SMembers(ctx, employeeSessionsKey(employeeUUID)).Result()
	if err != nil {
		return 0, fmt.Errorf("list sessions: %w", err)
	}
	if len(jtis) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(jtis)+1)
	for _, jti := range jtis {
		keys = append(keys, sessionKey(jti))
	}
	keys = append(keys, employeeSessionsKey(employeeUUID))

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return 0, fmt.Errorf("revoke sessions: %w", err)
	}
	return len(jtis), nil
}

func (s *tokenStore) sign(employeeUUID, jti, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := TokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employeeUUID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
