package handlers

import (
	"net/http"

	"wechat_mall/internal/models"
	"wechat_mall/internal/repository"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	configs repository.ConfigRepository
}

func NewConfigHandler(configs repository.ConfigRepository) *ConfigHandler {
	return &ConfigHandler{configs: configs}
}

func (h *ConfigHandler) GetConfig(c *gin.Context) {
	config, err := h.configs.GetByKey(c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

type configUpdateRequest struct {
	Value string `json:"value" binding:"required"`
}

func (h *ConfigHandler) PutConfig(c *gin.Context) {
	var req configUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_body", "message": "invalid request body"})
		return
	}
	config := &models.SiteConfig{Key: c.Param("key"), Value: req.Value}
	if err := h.configs.Upsert(config); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}
