package auth

import (
	"errors"
	"net/http"

	"bauportal/internal/domain"
	"bauportal/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.AccessToken,
		"user": UserPublic{
			ID:        result.User.ID,
			Role:      string(result.User.Role),
			FirstName: result.User.FirstName,
			LastName:  result.User.LastName,
			Email:     result.User.Email,
			TenantID:  domain.ResolveTenantID(result.User),
		},
	})
}

// RequestTwoFactorCode handles POST /auth/two-factor/request
func (h *Handler) RequestTwoFactorCode(c *gin.Context) {
	var req TwoFactorRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", UserMessage(ErrInvalidEmail))
		return
	}

	if err := h.service.RequestTwoFactorCode(c.Request.Context(), req.Email); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

// VerifyTwoFactorCode handles POST /auth/two-factor/verify
func (h *Handler) VerifyTwoFactorCode(c *gin.Context) {
	var req TwoFactorConfirmDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", UserMessage(ErrInvalidEmail))
		return
	}

	if err := h.service.VerifyTwoFactorCode(c.Request.Context(), req.Email, req.Code); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"verified": true})
}

// SendPasswordReset handles POST /auth/password-reset/request
func (h *Handler) SendPasswordReset(c *gin.Context) {
	var req PasswordResetRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", UserMessage(ErrInvalidEmail))
		return
	}

	if err := h.service.SendPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

// VerifyResetCode handles GET /auth/password-reset/verify. The portal
// frontend lands here from the ?mode=resetPassword&oobCode=<code> link.
func (h *Handler) VerifyResetCode(c *gin.Context) {
	mode := c.Query("mode")
	oobCode := c.Query("oobCode")
	if mode != "resetPassword" || oobCode == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_ACTION", UserMessage(ErrInvalidActionCode))
		return
	}

	email, err := h.service.VerifyResetCode(c.Request.Context(), oobCode)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"valid": true, "email": email})
}

// ConfirmPasswordReset handles POST /auth/password-reset/confirm
func (h *Handler) ConfirmPasswordReset(c *gin.Context) {
	var req PasswordResetConfirmDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", UserMessage(ErrWeakPassword))
		return
	}

	if err := h.service.ConfirmPasswordReset(c.Request.Context(), req.OobCode, req.NewPassword); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reset": true})
}

func (h *Handler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", UserMessage(err))
	case errors.Is(err, ErrWrongPassword):
		response.Error(c, http.StatusUnauthorized, "WRONG_PASSWORD", UserMessage(err))
	case errors.Is(err, ErrTooManyRequests):
		response.Error(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", UserMessage(err))
	case errors.Is(err, ErrUserDisabled):
		response.Error(c, http.StatusForbidden, "USER_DISABLED", UserMessage(err))
	case errors.Is(err, ErrExpiredActionCode):
		response.Error(c, http.StatusGone, "EXPIRED_ACTION_CODE", UserMessage(err))
	case errors.Is(err, ErrInvalidActionCode):
		response.Error(c, http.StatusBadRequest, "INVALID_ACTION_CODE", UserMessage(err))
	case errors.Is(err, ErrWeakPassword):
		response.Error(c, http.StatusBadRequest, "WEAK_PASSWORD", UserMessage(err))
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", UserMessage(err))
	}
}
