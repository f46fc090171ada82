package maps

import (
	"net/http"

	"chimney_site_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the address suggestion endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// LookupAddress handles GET /api/v1/maps/address-lookup?q=...&session=...
// Sub-threshold input and upstream failures both yield an empty prediction
// list; the endpoint never errors to the client over suggestions.
func (h *Handler) LookupAddress(c *gin.Context) {
	query := c.Query("q")
	sessionID := c.Query("session")

	httpkit.OK(c, h.svc.Lookup(c.Request.Context(), sessionID, query))
}

// SelectAddress handles POST /api/v1/maps/address-select. Picking a
// prediction clears the session's list and rotates its billing token.
func (h *Handler) SelectAddress(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "sessionId and placeId are required", nil)
		return
	}

	address, err := h.svc.Select(req.SessionID, req.PlaceID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, SelectResponse{Address: address})
}
