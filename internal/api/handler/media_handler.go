package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogtraining/dashboard/internal/api/metrics"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

// MediaHandler serves media links to admins and clients.
type MediaHandler struct {
	service ports.MediaService
}

func NewMediaHandler(service ports.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// List handles GET /api/admin/media.
//
// @Summary      List all media
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Media
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/media [get]
func (h *MediaHandler) List(c echo.Context) error {
	items, err := h.service.ListMedia(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/admin/media.
//
// @Summary      Share a photo or video link with a client
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMediaRequest  true  "Media link"
// @Success      201   {object}  domain.Media
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/admin/media [post]
func (h *MediaHandler) Create(c echo.Context) error {
	var req createMediaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	in := ports.CreateMediaInput{
		ClientID: req.ClientID,
		Type:     req.Type,
		URL:      req.URL,
		Title:    req.Title,
	}
	if req.UploadDate != nil {
		in.UploadDate = *req.UploadDate
	}

	m, err := h.service.CreateMedia(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("media").Inc()
	return c.JSON(http.StatusCreated, m)
}

// ListOwn handles GET /api/client/media. The client id comes from the token.
//
// @Summary      List my media
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Media
// @Failure      401  {object}  errorResponse
// @Router       /api/client/media [get]
func (h *MediaHandler) ListOwn(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListClientMedia(c.Request().Context(), claims.ClientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
