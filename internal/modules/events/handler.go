package events

import (
	"log"
	"net/http"

	"bauportal/internal/middleware"
	"bauportal/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// origin policy is enforced by the CORS middleware
		return true
	},
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// Subscribe handles GET /ws/events and upgrades the connection. The
// socket stays open until the client disconnects; the read loop only
// exists to notice the close.
func (h *Handler) Subscribe(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Anmeldung erforderlich")
		return
	}
	tenantID := middleware.TenantID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("events upgrade failed user_id=%d: %v", userID, err)
		return
	}

	h.hub.Register(userID, tenantID, conn)

	go func() {
		defer h.hub.Unregister(userID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/events", h.Subscribe)
}
