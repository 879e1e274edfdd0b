//go:build unit || e2e

package authtest

import (
	"strconv"
	"testing"
	"time"

	"smartbus/internal/domain/user"
	"smartbus/internal/pkg/config"
	"smartbus/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, actorID string, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(actorID, role)
	require.NoError(t, err)
	return token
}

// RiderToken signs a token whose subject is the rider's numeric id.
func (h *JWTHelper) RiderToken(t *testing.T, riderID int64) string {
	t.Helper()
	return h.GenerateToken(t, formatID(riderID), user.RoleRider)
}

// TerminalToken signs a token for a gate terminal.
func (h *JWTHelper) TerminalToken(t *testing.T, terminalID string) string {
	t.Helper()
	return h.GenerateToken(t, terminalID, user.RoleInspector)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, actorID string, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(actorID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
