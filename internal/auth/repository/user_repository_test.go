package repository

import (
	"testing"

	authdomain "taskmanager-backend/internal/auth/domain"
	"taskmanager-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUser(email string) *authdomain.User {
	return &authdomain.User{Name: "Ana", Email: email, Password: "hash", Age: 30}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	u := newUser("ana@example.com")
	require.NoError(t, repo.Create(u))
	require.NotEmpty(t, u.ID)

	byID, err := repo.FindByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "ana@example.com", byID.Email)
	assert.Empty(t, byID.Tokens)

	byEmail, err := repo.FindByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID, byEmail.ID)

	missing, err := repo.FindByID("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = repo.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	require.NoError(t, repo.Create(newUser("ana@example.com")))
	require.Error(t, repo.Create(newUser("ana@example.com")))
}

func TestUserRepository_UpdateLeavesTokensAlone(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	u := newUser("ana@example.com")
	require.NoError(t, repo.Create(u))

	u.Tokens = authdomain.TokenList{"t1", "t2"}
	require.NoError(t, repo.UpdateTokens(u))

	// A stale copy without tokens must not wipe the session list.
	stale := *u
	stale.Tokens = nil
	stale.Name = "Ana Maria"
	stale.Age = 0
	stale.Avatar = []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, repo.Update(&stale))

	got, err := repo.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, 0, got.Age)
	assert.True(t, got.HasAvatar())
	assert.Equal(t, authdomain.TokenList{"t1", "t2"}, got.Tokens)

	got.Avatar = nil
	require.NoError(t, repo.Update(got))
	got, err = repo.FindByID(u.ID)
	require.NoError(t, err)
	assert.False(t, got.HasAvatar())
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	u := newUser("ana@example.com")
	require.NoError(t, repo.Create(u))
	require.NoError(t, repo.Delete(u.ID))

	got, err := repo.FindByID(u.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Aa123456@", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "Aa123456@", hash)
	assert.True(t, CheckPasswordHash("Aa123456@", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))

	// Out-of-range cost falls back to the default.
	hash, err = HashPassword("Aa123456@", 99)
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("Aa123456@", hash))
}
