// Package handler exposes the public contact intake endpoint.
package handler

import (
	"net/http"

	"chimney_site_backend/internal/contact/service"
	"chimney_site_backend/internal/contact/transport"
	"chimney_site_backend/platform/apperr"
	"chimney_site_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgSent = "Email sent successfully"

// Handler handles contact-form submissions.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// NewHandler creates a new contact handler.
func NewHandler(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Submit processes one contact-form submission.
// POST /api/contact
//
// Responses follow the site contract: 200 {success,message,submissionId},
// 400 {success:false,error} with the first violated field's message,
// 500 {success:false,error} with a generic message.
func (h *Handler) Submit(c *gin.Context) {
	var req transport.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: transport.MsgInvalidBody})
		return
	}

	if err := h.val.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: transport.FirstViolationMessage(err)})
		return
	}

	submissionID, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		message := service.MsgSendFailed
		if domainErr, ok := err.(*apperr.Error); ok {
			message = domainErr.Message
		}
		c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: message})
		return
	}

	c.JSON(http.StatusOK, transport.SuccessResponse{
		Success:      true,
		Message:      msgSent,
		SubmissionID: submissionID,
	})
}
