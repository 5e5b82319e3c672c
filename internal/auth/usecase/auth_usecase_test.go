package usecase

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"sync"
	"testing"

	authdomain "taskmanager-backend/internal/auth/domain"
	authdto "taskmanager-backend/internal/auth/dto"
	"taskmanager-backend/internal/auth/repository"
	"taskmanager-backend/internal/testutil"
	"taskmanager-backend/pkg/apperror"
	"taskmanager-backend/pkg/config"
	"taskmanager-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- fakes ---

type fakeNotifier struct {
	mu      sync.Mutex
	created []string
	deleted []string
}

func (f *fakeNotifier) AccountCreated(email, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, email)
}

func (f *fakeNotifier) AccountDeleted(email, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, email)
}

type fakeCleaner struct {
	owners []string
	err    error
}

func (f *fakeCleaner) DeleteByOwner(ownerID string) (int64, error) {
	f.owners = append(f.owners, ownerID)
	return 2, f.err
}

// --- helpers ---

type fixture struct {
	uc       AuthUsecase
	repo     repository.UserRepository
	tokens   TokenService
	notifier *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := repository.NewUserRepository(testutil.NewDB(t))
	tokens := NewTokenService(token.NewSigner("test-secret"), repo)
	notifier := &fakeNotifier{}
	uc := NewAuthUsecase(repo, tokens, notifier, &config.Config{BcryptCost: bcrypt.MinCost})
	return &fixture{uc: uc, repo: repo, tokens: tokens, notifier: notifier}
}

func (f *fixture) signup(t *testing.T, email string) *authdto.AuthResponse {
	t.Helper()
	resp, err := f.uc.Signup(&authdto.SignupRequest{Name: "Ana", Email: email, Password: "Aa123456@"})
	require.NoError(t, err)
	return resp
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *apperror.ValidationError
	require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
	return vErr.Fields
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// --- signup / login ---

func TestSignup_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Signup(&authdto.SignupRequest{
		Name:     "  Gabriel ",
		Email:    " Gabriel@Example.COM ",
		Password: "Aa123456@",
		Age:      intPtr(40),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "Gabriel", resp.User.Name)
	assert.Equal(t, "gabriel@example.com", resp.User.Email)
	assert.Equal(t, 40, resp.User.Age)

	stored, err := f.repo.FindByID(resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Aa123456@", stored.Password)
	assert.Equal(t, authdomain.TokenList{resp.Token}, stored.Tokens)
	assert.Equal(t, []string{"gabriel@example.com"}, f.notifier.created)
}

func TestSignup_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Signup(&authdto.SignupRequest{Name: "", Email: "bad", Password: "123", Age: intPtr(-3)})
	fields := validationFields(t, err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "age")
	assert.Empty(t, f.notifier.created)
}

func TestSignup_PasswordContainingWordPassword(t *testing.T) {
	f := newFixture(t)

	for _, pw := range []string{"password", "Mypassword1!", "xPASSWORDx99"} {
		_, err := f.uc.Signup(&authdto.SignupRequest{Name: "Ana", Email: "ana@example.com", Password: pw})
		assert.Equal(t, "nopassword", validationFields(t, err)["password"], pw)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "ana@example.com")

	_, err := f.uc.Signup(&authdto.SignupRequest{Name: "Other", Email: "ANA@example.com", Password: "Bb123456@"})
	assert.Equal(t, "unique", validationFields(t, err)["email"])
}

func TestLogin_AppendsToken(t *testing.T) {
	f := newFixture(t)
	first := f.signup(t, "ana@example.com")

	resp, err := f.uc.Login(&authdto.LoginRequest{Email: "ana@example.com", Password: "Aa123456@"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, resp.Token)

	stored, err := f.repo.FindByID(first.User.ID)
	require.NoError(t, err)
	assert.Equal(t, authdomain.TokenList{first.Token, resp.Token}, stored.Tokens)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "ana@example.com")

	_, err := f.uc.Login(&authdto.LoginRequest{Email: "ana@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = f.uc.Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "Aa123456@"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

// --- auth gate / sessions ---

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	resp := f.signup(t, "ana@example.com")

	user, err := f.uc.Authenticate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)

	_, err = f.uc.Authenticate("garbage")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	// Validly signed for an unknown user.
	orphan, err := token.NewSigner("test-secret").Sign("ghost")
	require.NoError(t, err)
	_, err = f.uc.Authenticate(orphan)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLogout_RevokesOnlyCurrentToken(t *testing.T) {
	f := newFixture(t)
	first := f.signup(t, "ana@example.com")
	second, err := f.uc.Login(&authdto.LoginRequest{Email: "ana@example.com", Password: "Aa123456@"})
	require.NoError(t, err)

	user, err := f.uc.Authenticate(first.Token)
	require.NoError(t, err)
	require.NoError(t, f.uc.Logout(user, first.Token))

	_, err = f.uc.Authenticate(first.Token)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = f.uc.Authenticate(second.Token)
	assert.NoError(t, err)
}

func TestLogoutAll(t *testing.T) {
	f := newFixture(t)
	first := f.signup(t, "ana@example.com")
	second, err := f.uc.Login(&authdto.LoginRequest{Email: "ana@example.com", Password: "Aa123456@"})
	require.NoError(t, err)

	user, err := f.uc.Authenticate(second.Token)
	require.NoError(t, err)
	require.NoError(t, f.uc.LogoutAll(user))

	for _, tok := range []string{first.Token, second.Token} {
		_, err := f.uc.Authenticate(tok)
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	}
}

func TestTokenService_UnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.tokens.Issue("ghost")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, f.tokens.Revoke("ghost", "t"), apperror.ErrNotFound)
	assert.ErrorIs(t, f.tokens.RevokeAll("ghost"), apperror.ErrNotFound)
}

// --- profile ---

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	resp := f.signup(t, "ana@example.com")

	updated, err := f.uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{
		Name:     strPtr("Ana Maria"),
		Email:    strPtr("AnaMaria@Example.com"),
		Password: strPtr("Cc987654!"),
		Age:      intPtr(31),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, "anamaria@example.com", updated.Email)
	assert.Equal(t, 31, updated.Age)

	_, err = f.uc.Login(&authdto.LoginRequest{Email: "anamaria@example.com", Password: "Cc987654!"})
	require.NoError(t, err)

	// Sessions survive a profile update.
	_, err = f.uc.Authenticate(resp.Token)
	require.NoError(t, err)
}

func TestUpdateProfile_Validation(t *testing.T) {
	f := newFixture(t)
	resp := f.signup(t, "ana@example.com")
	f.signup(t, "bob@example.com")

	_, err := f.uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Password: strPtr("password99")})
	assert.Equal(t, "nopassword", validationFields(t, err)["password"])

	_, err = f.uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Email: strPtr("nope")})
	assert.Equal(t, "email", validationFields(t, err)["email"])

	_, err = f.uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Email: strPtr("bob@example.com")})
	assert.Equal(t, "unique", validationFields(t, err)["email"])

	_, err = f.uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Name: strPtr("   ")})
	assert.Equal(t, "min", validationFields(t, err)["name"])
}

// --- deletion ---

func TestDeleteAccount(t *testing.T) {
	f := newFixture(t)
	cleaner := &fakeCleaner{}
	f.uc.SetTaskCleaner(cleaner)
	resp := f.signup(t, "ana@example.com")

	require.NoError(t, f.uc.DeleteAccount(resp.User))

	gone, err := f.repo.FindByID(resp.User.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Equal(t, []string{resp.User.ID}, cleaner.owners)
	assert.Equal(t, []string{"ana@example.com"}, f.notifier.deleted)

	_, err = f.uc.Authenticate(resp.Token)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestDeleteAccount_CleanupFailureIgnored(t *testing.T) {
	f := newFixture(t)
	f.uc.SetTaskCleaner(&fakeCleaner{err: errors.New("db gone")})
	resp := f.signup(t, "ana@example.com")

	require.NoError(t, f.uc.DeleteAccount(resp.User))
	assert.Equal(t, []string{"ana@example.com"}, f.notifier.deleted)
}

// --- avatar ---

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestAvatarLifecycle(t *testing.T) {
	f := newFixture(t)
	resp := f.signup(t, "ana@example.com")

	_, err := f.uc.GetAvatar(resp.User.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, f.uc.SetAvatar(resp.User, "me.PNG", pngBytes(t, 500, 400)))

	data, err := f.uc.GetAvatar(resp.User.ID)
	require.NoError(t, err)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 250, cfg.Width)
	assert.Equal(t, 250, cfg.Height)

	require.NoError(t, f.uc.ClearAvatar(resp.User))
	_, err = f.uc.GetAvatar(resp.User.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.uc.GetAvatar("ghost")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSetAvatar_Rejections(t *testing.T) {
	f := newFixture(t)
	resp := f.signup(t, "ana@example.com")

	err := f.uc.SetAvatar(resp.User, "doc.pdf", pngBytes(t, 10, 10))
	assert.True(t, apperror.IsValidation(err))

	err = f.uc.SetAvatar(resp.User, "big.png", make([]byte, MaxAvatarBytes+1))
	assert.True(t, apperror.IsValidation(err))

	err = f.uc.SetAvatar(resp.User, "fake.jpg", []byte("not an image"))
	assert.True(t, apperror.IsValidation(err))
}
