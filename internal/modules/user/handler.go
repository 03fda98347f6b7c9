package user

import (
	"errors"
	"net/http"
	"strconv"

	"bauportal/internal/middleware"
	"bauportal/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListUsers handles GET /users; ?q= filters by name, email or company.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.Search(c.Request.Context(), middleware.TenantID(c), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Benutzer konnten nicht geladen werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// GetUser handles GET /users/:id
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Benutzer konnte nicht geladen werden")
		return
	}
	if u == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Benutzer nicht gefunden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u})
}

// CreateUser handles POST /users
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}

	u, err := h.service.Create(c.Request.Context(), middleware.TenantID(c), req, c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Diese E-Mail-Adresse ist bereits registriert")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Benutzer konnte nicht angelegt werden")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": u})
}

// UpdateUser handles PATCH /users/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}

	u, err := h.service.Update(c.Request.Context(), middleware.TenantID(c), id, req, c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u})
}

// DeleteUser handles DELETE /users/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.TenantID(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Ungültige Benutzer-ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Benutzer nicht gefunden")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Speichern fehlgeschlagen")
}
