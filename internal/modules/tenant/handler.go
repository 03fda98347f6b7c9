package tenant

import (
	"errors"
	"net/http"
	"strconv"

	"bauportal/internal/pkg/response"
	"bauportal/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListTenants handles GET /tenants; ?q= filters by name, city or contact.
func (h *Handler) ListTenants(c *gin.Context) {
	term := c.Query("q")

	tenants, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Mandanten konnten nicht geladen werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tenants": tenants})
}

// GetTenant handles GET /tenants/:id
func (h *Handler) GetTenant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Ungültige Mandanten-ID")
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Mandant konnte nicht geladen werden")
		return
	}
	if t == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Mandant nicht gefunden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tenant": t})
}

// CreateTenant handles POST /tenants
func (h *Handler) CreateTenant(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}

	t, err := h.service.Create(c.Request.Context(), req, c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", "Ein Mandant mit diesem Kürzel existiert bereits")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Mandant konnte nicht angelegt werden")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"tenant": t})
}

// UpdateTenant handles PATCH /tenants/:id
func (h *Handler) UpdateTenant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Ungültige Mandanten-ID")
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req, c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tenant": t})
}

// DeactivateTenant handles DELETE /tenants/:id (soft delete)
func (h *Handler) DeactivateTenant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Ungültige Mandanten-ID")
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, repository.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Mandant nicht gefunden")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Speichern fehlgeschlagen")
}
