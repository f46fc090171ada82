package catalog

import (
	apphttp "chimney_site_backend/internal/http"
	"chimney_site_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module wires the catalog HTTP routes.
type Module struct{}

func NewModule() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "catalog"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/services", func(c *gin.Context) {
		httpkit.OK(c, Services())
	})
	ctx.V1.GET("/company", func(c *gin.Context) {
		httpkit.OK(c, Company())
	})
}

var _ apphttp.Module = (*Module)(nil)
