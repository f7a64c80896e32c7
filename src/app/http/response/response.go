// Package response defines the JSON envelopes every endpoint answers with:
// {"data": ...} on success and {"error": {...}} otherwise.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"raidmaster/src/core/domain"
)

// Machine-readable error codes.
const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

type Success struct {
	Data any `json:"data"`
}

type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail is the body of an error envelope. Field is set for
// validation failures only.
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Success{Data: data})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail writes an error envelope.
func Fail(c *gin.Context, status int, detail ErrorDetail) {
	c.JSON(status, Error{Error: detail})
}

func BadRequest(c *gin.Context, message, requestID string) {
	Fail(c, http.StatusBadRequest, ErrorDetail{Code: CodeBadRequest, Message: message, RequestID: requestID})
}

func ValidationError(c *gin.Context, field, message, requestID string) {
	Fail(c, http.StatusBadRequest, ErrorDetail{Code: CodeValidation, Message: message, Field: field, RequestID: requestID})
}

func NotFound(c *gin.Context, message, requestID string) {
	Fail(c, http.StatusNotFound, ErrorDetail{Code: CodeNotFound, Message: message, RequestID: requestID})
}

func Unauthorized(c *gin.Context, message, requestID string) {
	Fail(c, http.StatusUnauthorized, ErrorDetail{Code: CodeUnauthorized, Message: message, RequestID: requestID})
}

// InternalError hides the cause; handlers attach it with c.Error so the
// request log carries it.
func InternalError(c *gin.Context, requestID string) {
	Fail(c, http.StatusInternalServerError, ErrorDetail{Code: CodeInternal, Message: "An unexpected error occurred", RequestID: requestID})
}

// FromDomainError maps err onto its status and envelope. Errors that are
// not a DomainError, and corrupt documents, are internal.
func FromDomainError(c *gin.Context, err error, requestID string) {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		InternalError(c, requestID)
		return
	}

	switch {
	case errors.Is(de.Base, domain.ErrInvalidInput):
		ValidationError(c, de.Field, de.Message, requestID)
	case errors.Is(de.Base, domain.ErrNotFound):
		NotFound(c, de.Message, requestID)
	case errors.Is(de.Base, domain.ErrConflict):
		Fail(c, http.StatusConflict, ErrorDetail{Code: CodeConflict, Message: de.Message, RequestID: requestID})
	case errors.Is(de.Base, domain.ErrUnauthorized):
		Unauthorized(c, de.Message, requestID)
	default:
		InternalError(c, requestID)
	}
}
