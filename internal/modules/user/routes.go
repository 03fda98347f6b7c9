package user

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the user management endpoints; the caller mounts
// them behind the admin guard.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	u := rg.Group("/users")
	{
		u.GET("", h.ListUsers)
		u.POST("", h.CreateUser)
		u.GET("/:id", h.GetUser)
		u.PATCH("/:id", h.UpdateUser)
		u.DELETE("/:id", h.DeleteUser)
	}
}
