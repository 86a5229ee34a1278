package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogtraining/dashboard/internal/api/metrics"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

// NotificationHandler serves notifications to admins and clients.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /api/admin/notifications.
//
// @Summary      List all notifications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Notification
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	items, err := h.service.ListNotifications(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/admin/notifications.
//
// @Summary      Send a notification to a client
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNotificationRequest  true  "Notification"
// @Success      201   {object}  domain.Notification
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/admin/notifications [post]
func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	n, err := h.service.CreateNotification(c.Request().Context(), ports.CreateNotificationInput{
		ClientID: req.ClientID,
		Message:  req.Message,
		Type:     req.Type,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("notification").Inc()
	return c.JSON(http.StatusCreated, n)
}

// ListOwn handles GET /api/client/notifications.
//
// @Summary      List my notifications, newest first
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Notification
// @Failure      401  {object}  errorResponse
// @Router       /api/client/notifications [get]
func (h *NotificationHandler) ListOwn(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListClientNotifications(c.Request().Context(), claims.ClientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// MarkRead handles POST /api/client/notifications/read.
//
// @Summary      Mark one of my notifications as read
// @Tags         client
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      markReadRequest  true  "Notification id"
// @Success      200   {object}  markReadResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/client/notifications/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.MarkRead(c.Request().Context(), claims.ClientID, req.NotificationID); err != nil {
		return err
	}

	metrics.NotificationsReadTotal.Inc()
	return c.JSON(http.StatusOK, markReadResponse{Success: true, NotificationID: req.NotificationID})
}
