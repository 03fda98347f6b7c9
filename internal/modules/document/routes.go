package document

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	p := rg.Group("/projects/:id")
	{
		p.GET("/documents", h.ListDocuments)
		p.POST("/documents", h.Upload)
		p.GET("/folders", h.ListFolders)
		p.POST("/folders", h.CreateFolder)
	}

	rg.GET("/documents/:id/download", h.Download)
	rg.DELETE("/documents/:id", h.DeleteDocument)
	rg.DELETE("/folders/:id", h.DeleteFolder)
}
