package http

import (
	"testing"

	"devdirectory/internal/adapter/logger"
	"devdirectory/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTToken_CreateAndVerify(t *testing.T) {
	svc := NewJWTTokenService("super-secret", "1h", logger.NewLoggerAdapter("local"))
	user := &domain.User{ID: uuid.New()}

	token, err := svc.CreateToken(user)
	require.NoError(t, err)

	payload, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, payload.UserID)
	assert.NotEqual(t, uuid.Nil, payload.ID)
}

func TestJWTToken_Expired(t *testing.T) {
	svc := NewJWTTokenService("super-secret", "-1s", logger.NewLoggerAdapter("local"))

	token, err := svc.CreateToken(&domain.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTToken_WrongSecret(t *testing.T) {
	log := logger.NewLoggerAdapter("local")
	issuer := NewJWTTokenService("right-secret", "1h", log)
	verifier := NewJWTTokenService("wrong-secret", "1h", log)

	token, err := issuer.CreateToken(&domain.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTToken_Malformed(t *testing.T) {
	svc := NewJWTTokenService("super-secret", "1h", logger.NewLoggerAdapter("local"))

	_, err := svc.VerifyToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTToken_BadDurationFallsBackTo24h(t *testing.T) {
	svc := NewJWTTokenService("super-secret", "soon", logger.NewLoggerAdapter("local"))

	token, err := svc.CreateToken(&domain.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.NoError(t, err)
}
