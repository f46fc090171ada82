// Package contact is the lead intake bounded context: validation, mail
// forwarding, and the public /api/contact endpoint.
package contact

import (
	"chimney_site_backend/internal/contact/handler"
	"chimney_site_backend/internal/contact/service"
	"chimney_site_backend/internal/email"
	"chimney_site_backend/internal/events"
	apphttp "chimney_site_backend/internal/http"
	"chimney_site_backend/platform/logger"
	"chimney_site_backend/platform/validator"
)

// Module wires the contact intake pipeline.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

func NewModule(sender email.Sender, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(sender, bus, log)
	return &Module{
		handler: handler.NewHandler(svc, val),
		svc:     svc,
	}
}

func (m *Module) Name() string {
	return "contact"
}

// Service exposes the intake service for adapters and tests.
func (m *Module) Service() *service.Service {
	return m.svc
}

// RegisterRoutes mounts the public contact endpoint. The path is engine-level
// because the static site posts to /api/contact, not /api/v1.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.POST("/api/contact", ctx.ContactRateLimiter.RateLimit(), m.handler.Submit)
}

var _ apphttp.Module = (*Module)(nil)
