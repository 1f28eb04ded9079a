//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"talentbridge/internal/domain/user"
	"talentbridge/internal/pkg/clock"
	"talentbridge/internal/pkg/config"
	"talentbridge/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessTokenDuration, h.cfg.RefreshTokenDuration, clock.NewRealClock())
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token issued far enough in the past that it has already expired.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * h.cfg.RefreshTokenDuration))
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessTokenDuration, h.cfg.RefreshTokenDuration, past)
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
