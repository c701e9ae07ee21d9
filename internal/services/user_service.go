package services

import (
	"time"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/auth"
	"wechat_mall/internal/logger"
	"wechat_mall/internal/models"
	"wechat_mall/internal/redis"
	"wechat_mall/internal/repository"
	"wechat_mall/internal/wechat"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type WechatClient interface {
	Jscode2Session(code string) (*wechat.Session, error)
}

// SessionCache holds identity-provider sessions for openids that have no
// local user record yet.
type SessionCache interface {
	SetLoginSession(session *redis.LoginSession, ttl time.Duration) error
	GetLoginSession(openID string) (*redis.LoginSession, error)
	DeleteLoginSession(openID string) error
}

type LoginResult struct {
	Registered  bool
	OpenID      string
	AccessToken string
	UserID      uuid.UUID
}

type RegisterRequest struct {
	OpenID    string `json:"open_id" binding:"required"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
	Phone     string `json:"phone"`
}

type UserService interface {
	LoginWithCode(code string) (*LoginResult, error)
	Register(req RegisterRequest) (*LoginResult, error)
	AdminLogin(username, password string) (string, error)
}

type UserServiceConfig struct {
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
	SessionCacheTTL   time.Duration
	TokenTTL          time.Duration
}

type userService struct {
	userRepo repository.UserRepository
	wechat   WechatClient
	sessions SessionCache
	cfg      UserServiceConfig
}

func NewUserService(userRepo repository.UserRepository, wechatClient WechatClient, sessions SessionCache, cfg UserServiceConfig) UserService {
	return &userService{userRepo: userRepo, wechat: wechatClient, sessions: sessions, cfg: cfg}
}

// LoginWithCode exchanges a mini-program login code for a session. An
// openid without a local user record gets its session cached so a
// follow-up registration can consume it.
func (s *userService) LoginWithCode(code string) (*LoginResult, error) {
	if code == "" {
		return nil, apperr.New(apperr.Validation, "code_required", "login code is required")
	}
	session, err := s.wechat.Jscode2Session(code)
	if err != nil {
		logger.Warn("login code exchange failed", "error", err)
		return nil, apperr.New(apperr.Upstream, "login_exchange_failed", "login service unavailable")
	}

	user, err := s.userRepo.GetByOpenID(session.OpenID)
	if err != nil {
		if !apperr.IsKind(err, apperr.NotFound) {
			return nil, err
		}
		cached := &redis.LoginSession{
			OpenID:     session.OpenID,
			UnionID:    session.UnionID,
			SessionKey: session.SessionKey,
			CreatedAt:  time.Now(),
		}
		if err := s.sessions.SetLoginSession(cached, s.cfg.SessionCacheTTL); err != nil {
			return nil, err
		}
		return &LoginResult{Registered: false, OpenID: session.OpenID}, nil
	}

	user.SessionKey = session.SessionKey
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(s.cfg.JWTSecret, user.UserID.String(), string(models.RoleUser), s.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Registered: true, OpenID: session.OpenID, AccessToken: token, UserID: user.UserID}, nil
}

// Register creates a user record from a cached login session.
func (s *userService) Register(req RegisterRequest) (*LoginResult, error) {
	cached, err := s.sessions.GetLoginSession(req.OpenID)
	if err != nil {
		return nil, apperr.New(apperr.Unauthorized, "login_required", "no pending login for this openid")
	}

	if _, err := s.userRepo.GetByOpenID(req.OpenID); err == nil {
		return nil, apperr.New(apperr.Conflict, "user_exists", "user already registered")
	} else if !apperr.IsKind(err, apperr.NotFound) {
		return nil, err
	}

	user := &models.User{
		UserID:     uuid.New(),
		OpenID:     req.OpenID,
		UnionID:    cached.UnionID,
		SessionKey: cached.SessionKey,
		Nickname:   req.Nickname,
		AvatarURL:  req.AvatarURL,
		Phone:      req.Phone,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	if err := s.sessions.DeleteLoginSession(req.OpenID); err != nil {
		logger.Warn("failed to drop consumed login session", "open_id", req.OpenID, "error", err)
	}

	token, err := auth.GenerateToken(s.cfg.JWTSecret, user.UserID.String(), string(models.RoleUser), s.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Registered: true, OpenID: user.OpenID, AccessToken: token, UserID: user.UserID}, nil
}

// AdminLogin checks the single configured admin account. The admin lives
// in config, not in the users table.
func (s *userService) AdminLogin(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperr.New(apperr.Validation, "credentials_required", "username and password are required")
	}
	if username != s.cfg.AdminUsername {
		return "", apperr.New(apperr.Unauthorized, "bad_credentials", "invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", apperr.New(apperr.Unauthorized, "bad_credentials", "invalid username or password")
	}
	return auth.GenerateToken(s.cfg.JWTSecret, username, string(models.RoleAdmin), s.cfg.TokenTTL)
}
