package handler

import (
	"github.com/gin-gonic/gin"

	"raidmaster/src/app/http/dto"
	"raidmaster/src/app/http/response"
	"raidmaster/src/app/middleware"
	"raidmaster/src/core/usecase"
)

// ShareHandler hands out the link to the registration form.
type ShareHandler struct {
	share *usecase.ShareService
}

func NewShareHandler(share *usecase.ShareService) *ShareHandler {
	return &ShareHandler{share: share}
}

// Link returns the URL to share. The caller passes the address it is on
// as ?current=; the Referer header is used when it is absent.
// GET /v1/share
func (h *ShareHandler) Link(c *gin.Context) {
	current := c.Query("current")
	if current == "" {
		current = c.GetHeader("Referer")
	}

	url, err := h.share.ShareURL(c.Request.Context(), current)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.TextResponse{Text: url})
}
