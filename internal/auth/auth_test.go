package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitdesk/internal/storage"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("recruiter123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "recruiter123", hash)

	assert.True(t, CheckPassword(hash, "recruiter123"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword("not-a-hash", "recruiter123"))
}

func TestTokenIssueAndVerify(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)
	user := &storage.User{
		ID:    "user-1",
		Email: "john@recruitdesk.local",
		Role:  storage.RoleRecruiter,
	}

	token, err := mgr.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	p, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "john@recruitdesk.local", p.Email)
	assert.Equal(t, storage.RoleRecruiter, p.Role)
	assert.False(t, p.IsAdmin())
}

func TestTokenVerify_RejectsBadInput(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	_, err := mgr.Verify("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewManager("different-secret", time.Hour)
	token, err := other.Issue(&storage.User{ID: "user-1", Role: storage.RoleRecruiter})
	require.NoError(t, err)
	_, err = mgr.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerify_RejectsExpired(t *testing.T) {
	mgr := NewManager("test-secret", -time.Minute)
	token, err := mgr.Issue(&storage.User{ID: "user-1", Role: storage.RoleRecruiter})
	require.NoError(t, err)

	_, err = mgr.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPrincipalIsAdmin(t *testing.T) {
	assert.True(t, Principal{Role: storage.RoleSuperUser}.IsAdmin())
	assert.False(t, Principal{Role: storage.RoleRecruiter}.IsAdmin())
}
