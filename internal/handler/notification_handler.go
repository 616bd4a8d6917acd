package handler

import (
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/service"
	internalWS "notes-backend/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// NotificationHandler exposes the websocket endpoint that streams record
// events to connected clients.
type NotificationHandler struct {
	authService service.IAuthService
	hub         *internalWS.Hub
	logger      logger.ILogger
}

func NewNotificationHandler(authService service.IAuthService, hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		authService: authService,
		hub:         hub,
		logger:      log,
	}
}

// ServeWs upgrades the connection after the credential gate. A websocket
// handshake cannot carry a body, so the pair arrives as query parameters.
func (h *NotificationHandler) ServeWs(ctx *fiber.Ctx) error {
	username := ctx.Query("username")
	password := ctx.Query("password")

	user, ok := h.authService.Authenticate(ctx.Context(), username, password)
	if !ok {
		h.logger.Warn("NotificationHandler", "Rejected WS handshake", map[string]interface{}{"username": username})
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Invalid credentials"))
	}

	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	name := user.Name
	return websocket.New(func(conn *websocket.Conn) {
		internalWS.NewClient(h.hub, conn, name)
	})(ctx)
}

func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notif := router.Group("/notification/v1")
	notif.Get("/ws", h.ServeWs)
}
