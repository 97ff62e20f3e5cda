package usecase

import (
	"context"
	"testing"
	"time"

	"movie-db/internal/data/entity"
	"movie-db/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(f *fakeRepos) AuthService {
	return NewAuthService(f.repo, testConfig(), testLogger())
}

func TestSignupCreatesUserAndSession(t *testing.T) {
	f := newFakeRepos()
	svc := newAuthService(f)

	user, session, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username:  "alice",
		Password1: "s3cret-pass",
		Password2: "s3cret-pass",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, entity.RoleMember, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	// A fresh signup gets a browser-close session
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.UserID)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), session.ExpiresAt, time.Minute)
}

func TestSignupRejectsTakenUsername(t *testing.T) {
	f := newFakeRepos()
	svc := newAuthService(f)

	f.seedUser("alice")

	_, _, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username:  "alice",
		Password1: "s3cret-pass",
		Password2: "s3cret-pass",
	}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username already taken")

	count, _ := f.users.CountAll(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestSignupLostUsernameRace(t *testing.T) {
	f := newFakeRepos()
	svc := newAuthService(f)

	f.seedUser("alice")

	// The pre-check misses but the unique index rejects the insert; the
	// caller sees the same message as a caught duplicate
	f.users.concurrentInsert = true
	_, _, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username:  "alice",
		Password1: "s3cret-pass",
		Password2: "s3cret-pass",
	}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username already taken")

	count, _ := f.users.CountAll(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestSignupRejectsPasswordMismatch(t *testing.T) {
	f := newFakeRepos()
	svc := newAuthService(f)

	_, _, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username:  "alice",
		Password1: "s3cret-pass",
		Password2: "different-pass",
	}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	count, _ := f.users.CountAll(context.Background())
	assert.Equal(t, int64(0), count)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	f := newFakeRepos()
	svc := newAuthService(f)

	_, _, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username:  "alice",
		Password1: "short",
		Password2: "short",
	}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoginWithRememberMe(t *testing.T) {
	f := newFakeRepos()
	svc := newAuthService(f)

	_, _, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username:  "alice",
		Password1: "s3cret-pass",
		Password2: "s3cret-pass",
	}, "", "")
	require.NoError(t, err)

	user, session, err := svc.Login(context.Background(), &request.LoginRequest{
		Username:   "alice",
		Password:   "s3cret-pass",
		RememberMe: true,
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.WithinDuration(t, time.Now().Add(14*24*time.Hour), session.ExpiresAt, time.Minute)
}

func TestLoginWithoutRememberMe(t *testing.T) {
	f := newFakeRepos()
	svc := newAuthService(f)

	_, _, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username:  "alice",
		Password1: "s3cret-pass",
		Password2: "s3cret-pass",
	}, "", "")
	require.NoError(t, err)

	_, session, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "s3cret-pass",
	}, "", "")
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(12*time.Hour), session.ExpiresAt, time.Minute)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	f := newFakeRepos()
	svc := newAuthService(f)

	_, _, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username:  "alice",
		Password1: "s3cret-pass",
		Password2: "s3cret-pass",
	}, "", "")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "wrong-pass",
	}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginUnknownUserLooksLikeWrongPassword(t *testing.T) {
	f := newFakeRepos()
	svc := newAuthService(f)

	_, _, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogoutRevokesSession(t *testing.T) {
	f := newFakeRepos()
	svc := newAuthService(f)

	_, session, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username:  "alice",
		Password1: "s3cret-pass",
		Password2: "s3cret-pass",
	}, "", "")
	require.NoError(t, err)

	token := session.Token.String()
	valid, err := f.sessions.FindValidSession(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, valid)

	require.NoError(t, svc.Logout(context.Background(), token))

	valid, err = f.sessions.FindValidSession(context.Background(), token)
	require.NoError(t, err)
	assert.Nil(t, valid)
}

func TestLogoutIgnoresGarbageToken(t *testing.T) {
	f := newFakeRepos()
	svc := newAuthService(f)

	assert.NoError(t, svc.Logout(context.Background(), "not-a-uuid"))
}
