package maps

import (
	"context"

	"chimney_site_backend/internal/config"
	apphttp "chimney_site_backend/internal/http"
	"chimney_site_backend/platform/logger"
)

// Module wires the address suggestion HTTP routes.
type Module struct {
	handler *Handler
	svc     *Service
}

// NewModule builds the places client provider and service. The provider
// resolves in the background; until then lookups return empty lists.
func NewModule(ctx context.Context, cfg *config.Config, log *logger.Logger) *Module {
	provider := NewClientProvider(func() (*Client, error) {
		if cfg.PlacesAPIKey == "" {
			return nil, nil
		}
		return NewClient(cfg.PlacesAPIKey, cfg.PlacesCountry, log), nil
	}, log)
	provider.Resolve(ctx)

	svc := NewService(provider, log)
	return &Module{handler: NewHandler(svc), svc: svc}
}

func (m *Module) Name() string {
	return "maps"
}

// Close releases background resources.
func (m *Module) Close() {
	m.svc.Close()
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/maps")
	group.GET("/address-lookup", m.handler.LookupAddress)
	group.POST("/address-select", m.handler.SelectAddress)
}

var _ apphttp.Module = (*Module)(nil)
