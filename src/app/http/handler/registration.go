package handler

import (
	"github.com/gin-gonic/gin"

	"raidmaster/src/app/http/dto"
	"raidmaster/src/app/http/response"
	"raidmaster/src/app/middleware"
	"raidmaster/src/core/domain"
	"raidmaster/src/core/usecase"
)

// RegistrationHandler drives the per-session submission flow.
type RegistrationHandler struct {
	flows   *usecase.SubmissionRegistry
	configs *usecase.FormConfigService
}

func NewRegistrationHandler(flows *usecase.SubmissionRegistry, configs *usecase.FormConfigService) *RegistrationHandler {
	return &RegistrationHandler{flows: flows, configs: configs}
}

// Submit runs a registration through the pipeline.
// POST /v1/registrations
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req dto.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	flow := h.flows.Flow(middleware.GetSessionID(c))
	if _, err := flow.Submit(c.Request.Context(), req.ToCandidate()); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.Created(c, h.snapshot(c, flow))
}

// State reports where the session's flow is. A session that never
// submitted is in FORM.
// GET /v1/registrations/state
func (h *RegistrationHandler) State(c *gin.Context) {
	flow, ok := h.flows.Lookup(middleware.GetSessionID(c))
	if !ok {
		response.OK(c, dto.SubmissionResponse{State: domain.StateForm})
		return
	}
	response.OK(c, h.snapshot(c, flow))
}

// Reset returns the session's flow to the form.
// POST /v1/registrations/reset
func (h *RegistrationHandler) Reset(c *gin.Context) {
	flow, ok := h.flows.Lookup(middleware.GetSessionID(c))
	if !ok {
		response.OK(c, dto.SubmissionResponse{State: domain.StateForm})
		return
	}
	flow.Reset()
	response.OK(c, h.snapshot(c, flow))
}

func (h *RegistrationHandler) snapshot(c *gin.Context, flow *usecase.SubmissionFlow) dto.SubmissionResponse {
	state, out := flow.State()
	res := dto.SubmissionResponse{State: state}
	if state != domain.StateComplete || out == nil {
		return res
	}

	res.Record = &out.Record
	res.Summary = &out.Summary
	res.Notified = out.Notified
	if cfg, err := h.configs.Load(c.Request.Context()); err == nil {
		res.CopyText = usecase.SuccessCopyText(out.Record, out.Summary, cfg)
	} else {
		c.Error(err)
	}
	return res
}
