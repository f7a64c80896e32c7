package handler

import (
	"github.com/gin-gonic/gin"

	"raidmaster/src/app/http/dto"
	"raidmaster/src/app/http/response"
	"raidmaster/src/app/middleware"
	"raidmaster/src/core/usecase"
)

// AdminHandler handles the settings gate.
type AdminHandler struct {
	gate *usecase.AdminGate
}

func NewAdminHandler(gate *usecase.AdminGate) *AdminHandler {
	return &AdminHandler{gate: gate}
}

// Login checks the presented secret so the client can unlock settings.
// POST /v1/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	if err := h.gate.Verify(c.Request.Context(), req.Secret); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, gin.H{"unlocked": true})
}

// ChangeSecret stores a new gate value.
// PUT /v1/admin/secret
func (h *AdminHandler) ChangeSecret(c *gin.Context) {
	var req dto.ChangeSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	changed, err := h.gate.ChangeSecret(c.Request.Context(), req.Secret)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, gin.H{"changed": changed})
}
