package handler

import (
	"github.com/gin-gonic/gin"

	"raidmaster/src/app/http/dto"
	"raidmaster/src/app/http/response"
	"raidmaster/src/app/middleware"
	"raidmaster/src/core/usecase"
)

// RecordsHandler serves the registration roster.
type RecordsHandler struct {
	records *usecase.RecordService
	share   *usecase.ShareService
}

func NewRecordsHandler(records *usecase.RecordService, share *usecase.ShareService) *RecordsHandler {
	return &RecordsHandler{records: records, share: share}
}

// List returns every record, newest first.
// GET /v1/records
func (h *RecordsHandler) List(c *gin.Context) {
	records, err := h.records.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.RecordsResponse{Records: records, Total: len(records)})
}

// Export renders the roster digest for pasting into a chat channel.
// GET /v1/records/export
func (h *RecordsHandler) Export(c *gin.Context) {
	text, err := h.share.RosterExport(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.TextResponse{Text: text})
}

// Remove deletes one record. Unknown ids succeed.
// DELETE /v1/admin/records/:record_id
func (h *RecordsHandler) Remove(c *gin.Context) {
	if err := h.records.RemoveOne(c.Request.Context(), c.Param("record_id")); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

// Clear deletes every record.
// DELETE /v1/admin/records
func (h *RecordsHandler) Clear(c *gin.Context) {
	if err := h.records.RemoveAll(c.Request.Context()); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}
