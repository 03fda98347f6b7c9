package catalog

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the catalog endpoints. Reads are open to every
// authenticated role; the caller mounts writes behind the admin guard via
// RegisterAdminRoutes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/trades", h.ListTrades)
	rg.GET("/trades/:id", h.GetTrade)
	rg.GET("/phases", h.ListPhases)
	rg.GET("/project-types", h.ListProjectTypes)
	rg.GET("/project-types/:id", h.GetProjectType)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/trades", h.CreateTrade)
	rg.PATCH("/trades/:id", h.UpdateTrade)
	rg.DELETE("/trades/:id", h.DeleteTrade)

	rg.POST("/phases", h.CreatePhase)
	rg.PATCH("/phases/:id", h.UpdatePhase)
	rg.DELETE("/phases/:id", h.DeletePhase)

	rg.POST("/project-types", h.CreateProjectType)
	rg.PATCH("/project-types/:id", h.UpdateProjectType)
	rg.DELETE("/project-types/:id", h.DeleteProjectType)
}
