package services

import (
	"errors"
	"testing"
	"time"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"
	"wechat_mall/internal/redis"
	"wechat_mall/internal/wechat"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeWechat struct {
	sessions map[string]*wechat.Session
}

func (f *fakeWechat) Jscode2Session(code string) (*wechat.Session, error) {
	if s, ok := f.sessions[code]; ok {
		return s, nil
	}
	return nil, errors.New("invalid code")
}

type fakeSessionCache struct {
	cached map[string]*redis.LoginSession
}

func (f *fakeSessionCache) SetLoginSession(session *redis.LoginSession, ttl time.Duration) error {
	if f.cached == nil {
		f.cached = map[string]*redis.LoginSession{}
	}
	f.cached[session.OpenID] = session
	return nil
}

func (f *fakeSessionCache) GetLoginSession(openID string) (*redis.LoginSession, error) {
	if s, ok := f.cached[openID]; ok {
		return s, nil
	}
	return nil, errors.New("login session not found")
}

func (f *fakeSessionCache) DeleteLoginSession(openID string) error {
	delete(f.cached, openID)
	return nil
}

func testUserServiceConfig() UserServiceConfig {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	return UserServiceConfig{
		JWTSecret:         "test-secret",
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		SessionCacheTTL:   24 * time.Hour,
		TokenTTL:          time.Hour,
	}
}

func TestLoginWithCodeRegisteredUser(t *testing.T) {
	user := &models.User{ID: 1, UserID: uuid.New(), OpenID: "openid-1"}
	users := &fakeUserRepo{users: map[uuid.UUID]*models.User{user.UserID: user}}
	wx := &fakeWechat{sessions: map[string]*wechat.Session{
		"code-1": {OpenID: "openid-1", SessionKey: "sk-1"},
	}}
	svc := NewUserService(users, wx, &fakeSessionCache{}, testUserServiceConfig())

	result, err := svc.LoginWithCode("code-1")
	require.NoError(t, err)
	assert.True(t, result.Registered)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, user.UserID, result.UserID)
	assert.Equal(t, "sk-1", users.users[user.UserID].SessionKey)
}

func TestLoginWithCodeUnregisteredCachesSession(t *testing.T) {
	wx := &fakeWechat{sessions: map[string]*wechat.Session{
		"code-1": {OpenID: "openid-new", UnionID: "union-1", SessionKey: "sk-1"},
	}}
	cache := &fakeSessionCache{}
	svc := NewUserService(&fakeUserRepo{}, wx, cache, testUserServiceConfig())

	result, err := svc.LoginWithCode("code-1")
	require.NoError(t, err)
	assert.False(t, result.Registered)
	assert.Equal(t, "openid-new", result.OpenID)
	require.Contains(t, cache.cached, "openid-new")
	assert.Equal(t, "sk-1", cache.cached["openid-new"].SessionKey)
	assert.Equal(t, "union-1", cache.cached["openid-new"].UnionID)
}

func TestLoginWithCodeExchangeFailure(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeWechat{}, &fakeSessionCache{}, testUserServiceConfig())

	_, err := svc.LoginWithCode("bad-code")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Upstream))
}

func TestRegisterConsumesCachedSession(t *testing.T) {
	users := &fakeUserRepo{}
	cache := &fakeSessionCache{cached: map[string]*redis.LoginSession{
		"openid-new": {OpenID: "openid-new", UnionID: "union-1", SessionKey: "sk-1"},
	}}
	svc := NewUserService(users, &fakeWechat{}, cache, testUserServiceConfig())

	result, err := svc.Register(RegisterRequest{OpenID: "openid-new", Nickname: "nick"})
	require.NoError(t, err)
	assert.True(t, result.Registered)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotContains(t, cache.cached, "openid-new")

	created, err := users.GetByOpenID("openid-new")
	require.NoError(t, err)
	assert.Equal(t, "union-1", created.UnionID)
	assert.Equal(t, "nick", created.Nickname)
}

func TestRegisterWithoutPendingLogin(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeWechat{}, &fakeSessionCache{}, testUserServiceConfig())

	_, err := svc.Register(RegisterRequest{OpenID: "openid-x"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
}

func TestAdminLogin(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeWechat{}, &fakeSessionCache{}, testUserServiceConfig())

	token, err := svc.AdminLogin("admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.AdminLogin("admin", "wrong")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))

	_, err = svc.AdminLogin("", "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}
