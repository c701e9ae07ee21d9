package handlers

import (
	"net/http"

	"wechat_mall/internal/services"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	users services.UserService
}

func NewAccountHandler(users services.UserService) *AccountHandler {
	return &AccountHandler{users: users}
}

type userLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserLogin exchanges a mini-program login code. An openid with no local
// user record gets a 401 carrying the openid so the client can register.
func (h *AccountHandler) UserLogin(c *gin.Context) {
	var req userLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_body", "message": "invalid request body"})
		return
	}
	result, err := h.users.LoginWithCode(req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.Registered {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "user_not_registered", "open_id": result.OpenID})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": result.AccessToken, "user_id": result.UserID})
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_body", "message": "invalid request body"})
		return
	}
	result, err := h.users.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"access_token": result.AccessToken, "user_id": result.UserID})
}

func (h *AccountHandler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_body", "message": "invalid request body"})
		return
	}
	token, err := h.users.AdminLogin(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
