package tenant

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the Mandant management endpoints. All of them are
// admin-only; the guard is applied by the caller.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	t := rg.Group("/tenants")
	{
		t.GET("", h.ListTenants)
		t.POST("", h.CreateTenant)
		t.GET("/:id", h.GetTenant)
		t.PATCH("/:id", h.UpdateTenant)
		t.DELETE("/:id", h.DeactivateTenant)
	}
}
