package project

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	p := rg.Group("/projects")
	{
		p.GET("", h.ListProjects)
		p.POST("", h.CreateProject)
		p.GET("/progress", h.GetProgressOverview)
		p.GET("/:id", h.GetProject)
		p.PATCH("/:id", h.UpdateProject)
		p.PATCH("/:id/status", h.ChangeStatus)
		p.DELETE("/:id", h.DeleteProject)
		p.GET("/:id/progress", h.GetProgress)
		p.GET("/:id/trades", h.ListAssignments)
		p.POST("/:id/trades", h.CreateAssignment)
	}

	a := rg.Group("/trade-assignments")
	{
		a.PATCH("/:id", h.UpdateAssignment)
		a.DELETE("/:id", h.DeleteAssignment)
	}
}
