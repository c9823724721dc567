package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/JSON-FX/lgu-sso/internal/auth"
	autherrors "github.com/JSON-FX/lgu-sso/internal/auth/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("test-signing-secret")

// signTestToken mints a token the way the store does, with caller-chosen
// claims, so each Verify path can be exercised deterministically.
func signTestToken(t *testing.T, employeeUUID, jti, tokenType string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := auth.TokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employeeUUID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	assert.NoError(t, err)
	return signed
}

func TestTokenStore_Issue(t *testing.T) {
	ctx := context.Background()
	employeeUUID := uuid.NewString()

	rdb, mock := redismock.NewClientMock()
	store := auth.NewTokenStore(testSecret, rdb)

	mock.Regexp().ExpectTxPipeline()
	mock.Regexp().ExpectSet(`session:[0-9a-f-]+`, employeeUUID, auth.AccessTokenTTL).SetVal("OK")
	mock.Regexp().ExpectSet(`session:[0-9a-f-]+`, employeeUUID, auth.RefreshTokenTTL).SetVal("OK")
	mock.Regexp().ExpectSAdd("sessions:"+employeeUUID, `[0-9a-f-]+`, `[0-9a-f-]+`).SetVal(2)
	mock.Regexp().ExpectExpire("sessions:"+employeeUUID, auth.RefreshTokenTTL).SetVal(true)
	mock.Regexp().ExpectTxPipelineExec()

	pair, err := store.Issue(ctx, employeeUUID)

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessJTI, pair.RefreshJTI)
	assert.NoError(t, mock.ExpectationsWereMet())

	// the minted access token verifies against its own allowlist entry
	mock.ExpectGet("session:" + pair.AccessJTI).SetVal(employeeUUID)

	sub, jti, err := store.Verify(ctx, pair.AccessToken, auth.TokenTypeAccess)

	assert.NoError(t, err)
	assert.Equal(t, employeeUUID, sub)
	assert.Equal(t, pair.AccessJTI, jti)
}

func TestTokenStore_Verify(t *testing.T) {
	ctx := context.Background()
	employeeUUID := uuid.NewString()
	jti := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewTokenStore(testSecret, rdb)

		token := signTestToken(t, employeeUUID, jti, auth.TokenTypeAccess, time.Minute)
		mock.ExpectGet("session:" + jti).SetVal(employeeUUID)

		sub, gotJTI, err := store.Verify(ctx, token, auth.TokenTypeAccess)

		assert.NoError(t, err)
		assert.Equal(t, employeeUUID, sub)
		assert.Equal(t, jti, gotJTI)
	})

	t.Run("negative - expired token", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		store := auth.NewTokenStore(testSecret, rdb)

		token := signTestToken(t, employeeUUID, jti, auth.TokenTypeAccess, -time.Minute)

		_, _, err := store.Verify(ctx, token, auth.TokenTypeAccess)

		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("negative - refresh token presented as access", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		store := auth.NewTokenStore(testSecret, rdb)

		token := signTestToken(t, employeeUUID, jti, auth.TokenTypeRefresh, time.Minute)

		_, _, err := store.Verify(ctx, token, auth.TokenTypeAccess)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("negative - revoked session", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewTokenStore(testSecret, rdb)

		token := signTestToken(t, employeeUUID, jti, auth.TokenTypeAccess, time.Minute)
		mock.ExpectGet("session:" + jti).RedisNil()

		_, _, err := store.Verify(ctx, token, auth.TokenTypeAccess)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("negative - session owned by someone else", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewTokenStore(testSecret, rdb)

		token := signTestToken(t, employeeUUID, jti, auth.TokenTypeAccess, time.Minute)
		mock.ExpectGet("session:" + jti).SetVal(uuid.NewString())

		_, _, err := store.Verify(ctx, token, auth.TokenTypeAccess)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("negative - garbage token", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		store := auth.NewTokenStore(testSecret, rdb)

		_, _, err := store.Verify(ctx, "not.a.jwt", auth.TokenTypeAccess)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("negative - token signed with a different secret", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		store := auth.NewTokenStore([]byte("rotated-secret"), rdb)

		token := signTestToken(t, employeeUUID, jti, auth.TokenTypeAccess, time.Minute)

		_, _, err := store.Verify(ctx, token, auth.TokenTypeAccess)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

func TestTokenStore_Revoke(t *testing.T) {
	ctx := context.Background()
	employeeUUID := uuid.NewString()
	jtiA := uuid.NewString()
	jtiB := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewTokenStore(testSecret, rdb)

		mock.ExpectTxPipeline()
		mock.ExpectDel("session:"+jtiA, "session:"+jtiB).SetVal(2)
		mock.ExpectSRem("sessions:"+employeeUUID, jtiA, jtiB).SetVal(2)
		mock.ExpectTxPipelineExec()

		err := store.Revoke(ctx, employeeUUID, jtiA, jtiB)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - nothing to revoke", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewTokenStore(testSecret, rdb)

		err := store.Revoke(ctx, employeeUUID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTokenStore_RevokeAll(t *testing.T) {
	ctx := context.Background()
	employeeUUID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewTokenStore(testSecret, rdb)

		jtiA := uuid.NewString()
		jtiB := uuid.NewString()
		mock.ExpectSMembers("sessions:" + employeeUUID).SetVal([]string{jtiA, jtiB})
		mock.ExpectDel("session:"+jtiA, "session:"+jtiB, "sessions:"+employeeUUID).SetVal(3)

		count, err := store.RevokeAll(ctx, employeeUUID)

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - no live sessions", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewTokenStore(testSecret, rdb)

		mock.ExpectSMembers("sessions:" + employeeUUID).SetVal(nil)

		count, err := store.RevokeAll(ctx, employeeUUID)

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
