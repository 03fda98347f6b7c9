package auth

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	{
		a.POST("/login", h.Login)
		a.POST("/two-factor/request", h.RequestTwoFactorCode)
		a.POST("/two-factor/verify", h.VerifyTwoFactorCode)
		a.POST("/password-reset/request", h.SendPasswordReset)
		a.GET("/password-reset/verify", h.VerifyResetCode)
		a.POST("/password-reset/confirm", h.ConfirmPasswordReset)
	}
}
