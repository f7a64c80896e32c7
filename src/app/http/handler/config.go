package handler

import (
	"github.com/gin-gonic/gin"

	"raidmaster/src/app/http/dto"
	"raidmaster/src/app/http/response"
	"raidmaster/src/app/middleware"
	"raidmaster/src/core/usecase"
)

// ConfigHandler serves the form configuration document.
type ConfigHandler struct {
	configs *usecase.FormConfigService
}

func NewConfigHandler(configs *usecase.FormConfigService) *ConfigHandler {
	return &ConfigHandler{configs: configs}
}

// Get returns the configuration registrants see.
// GET /v1/config
func (h *ConfigHandler) Get(c *gin.Context) {
	cfg, err := h.configs.Load(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.PublicConfigFromDomain(cfg))
}

// AdminGet returns the whole document including integration URLs.
// GET /v1/admin/config
func (h *ConfigHandler) AdminGet(c *gin.Context) {
	cfg, err := h.configs.Load(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, cfg)
}

// Save replaces the configuration document.
// PUT /v1/admin/config
func (h *ConfigHandler) Save(c *gin.Context) {
	var req dto.SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	cfg := req.ToDomain()
	if err := h.configs.Save(c.Request.Context(), cfg); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, cfg)
}
