package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, write func(c *gin.Context)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var err error
	c.Request, err = http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	write(c)
	return w
}

func TestEnvelope(t *testing.T) {
	w := record(t, func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"id": 1})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":1}}`, w.Body.String())

	w = record(t, func(c *gin.Context) {
		Error(c, http.StatusNotFound, "NOT_FOUND", "Projekt nicht gefunden")
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"NOT_FOUND","message":"Projekt nicht gefunden"}}`, w.Body.String())

	w = record(t, func(c *gin.Context) {
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION", "Eingabe ungültig", gin.H{"name": "fehlt"})
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"VALIDATION","message":"Eingabe ungültig","details":{"name":"fehlt"}}}`, w.Body.String())
}
