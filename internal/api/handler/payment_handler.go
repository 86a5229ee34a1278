package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogtraining/dashboard/internal/api/metrics"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

// PaymentHandler serves payment-status tracking for admins.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// List handles GET /api/admin/payments.
//
// @Summary      List recorded payments
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Payment
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	items, err := h.service.ListPayments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Record handles POST /api/admin/payments.
//
// @Summary      Mark a client's fee as paid
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordPaymentRequest  true  "Client and payment date"
// @Success      200   {object}  recordPaymentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/admin/payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	in := ports.RecordPaymentInput{ClientID: req.ClientID, RecordedBy: claims.UserID}
	if req.Date != nil {
		in.Date = *req.Date
	}

	p, err := h.service.RecordPayment(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("payment").Inc()
	return c.JSON(http.StatusOK, recordPaymentResponse{
		Success:     true,
		ClientID:    p.ClientID,
		PaymentDate: p.PaidAt,
	})
}
