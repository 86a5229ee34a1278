package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogtraining/dashboard/internal/api/metrics"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

// ClientHandler serves the admin roster endpoints.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /api/admin/clients.
//
// @Summary      List clients
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Client
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Create handles POST /api/admin/clients.
//
// @Summary      Add a client to the roster
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/admin/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.service.CreateClient(c.Request().Context(), ports.CreateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		DogName: req.DogName,
		Phone:   req.Phone,
		Plan:    req.Plan,
		Status:  req.Status,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("client").Inc()
	return c.JSON(http.StatusCreated, client)
}
