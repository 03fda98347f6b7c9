package document

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

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

// Upload handles POST /projects/:id/documents (multipart form). Fields:
// file (required), folder_id, tags (comma-separated).
func (h *Handler) Upload(c *gin.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Es wurde keine Datei übermittelt")
		return
	}

	folderID, _ := strconv.ParseInt(c.PostForm("folder_id"), 10, 64)
	var tags []string
	if raw := c.PostForm("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Datei konnte nicht gelesen werden")
		return
	}
	defer f.Close()

	d, err := h.service.Upload(c.Request.Context(), middleware.TenantID(c), projectID, folderID,
		fileHeader.Filename, tags, f, c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err, "Datei konnte nicht hochgeladen werden")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"document": d})
}

// ListDocuments handles GET /projects/:id/documents; ?q= filters by
// filename or tag.
func (h *Handler) ListDocuments(c *gin.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	docs, err := h.service.Search(c.Request.Context(), middleware.TenantID(c), projectID, c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Dokumente konnten nicht geladen werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"documents": docs})
}

// Download handles GET /documents/:id/download
func (h *Handler) Download(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	d, rc, err := h.service.Download(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		h.handleError(c, err, "Datei konnte nicht geladen werden")
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, d.Size, "application/octet-stream", rc, map[string]string{
		"Content-Disposition": `attachment; filename="` + d.Filename + `"`,
	})
}

// DeleteDocument handles DELETE /documents/:id
func (h *Handler) DeleteDocument(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.TenantID(c), id); err != nil {
		h.handleError(c, err, "Dokument konnte nicht gelöscht werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// CreateFolder handles POST /projects/:id/folders
func (h *Handler) CreateFolder(c *gin.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}

	f, err := h.service.CreateFolder(c.Request.Context(), middleware.TenantID(c), projectID, req.Name, c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Ordner konnte nicht angelegt werden")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"folder": f})
}

// ListFolders handles GET /projects/:id/folders
func (h *Handler) ListFolders(c *gin.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	folders, err := h.service.ListFolders(c.Request.Context(), middleware.TenantID(c), projectID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Ordner konnten nicht geladen werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"folders": folders})
}

// DeleteFolder handles DELETE /folders/:id
func (h *Handler) DeleteFolder(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteFolder(c.Request.Context(), middleware.TenantID(c), id); err != nil {
		h.handleError(c, err, "Ordner konnte nicht gelöscht werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Ungültige ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Dokument nicht gefunden")
	case errors.Is(err, ErrFolderNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ordner nicht gefunden")
	case errors.Is(err, ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "EMPTY_FILE", "Die Datei ist leer")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
