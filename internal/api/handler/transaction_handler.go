package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/glowdesk/salon-api/internal/api/metrics"
	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// TransactionHandler handles point-of-sale recording and lookups. There are
// deliberately no update or delete routes: recorded sales are immutable and
// corrections are entered as new compensating transactions.
type TransactionHandler struct {
	service ports.TransactionService
}

func NewTransactionHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// Create handles POST /v1/transactions.
//
// @Summary      Record a sale
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body      createTransactionRequest  true  "Sale payload"
// @Success      201   {object}  domain.Transaction
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tx := toTransaction(req)
	created, err := h.service.Record(c.Request().Context(), tx)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.TransactionsRejectedTotal.WithLabelValues(ve.Field).Inc()
		}
		return err
	}

	metrics.TransactionsCreatedTotal.WithLabelValues(created.PaymentMethod).Inc()
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /v1/transactions with optional from/to/therapist_id/
// customer_id query filters.
func (h *TransactionHandler) List(c echo.Context) error {
	filter := ports.TransactionFilter{
		TherapistID: c.QueryParam("therapist_id"),
		CustomerID:  c.QueryParam("customer_id"),
		Category:    c.QueryParam("category"),
	}
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "from must be RFC3339")
		}
		filter.From = t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "to must be RFC3339")
		}
		filter.To = t
	}

	txs, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if txs == nil {
		txs = []*domain.Transaction{}
	}
	return c.JSON(http.StatusOK, txs)
}

// Get handles GET /v1/transactions/:id.
func (h *TransactionHandler) Get(c echo.Context) error {
	tx, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tx)
}

func toTransaction(req createTransactionRequest) *domain.Transaction {
	items := make([]domain.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.LineItem{
			Name:     it.Name,
			Category: it.Category,
			Price:    it.Price,
			Quantity: it.Quantity,
			Discount: it.Discount,
		})
	}
	return &domain.Transaction{
		Date: req.Date,
		Customer: domain.CustomerSnapshot{
			ID:    req.Customer.ID,
			Name:  req.Customer.Name,
			Phone: req.Customer.Phone,
			Email: req.Customer.Email,
		},
		Therapist: domain.TherapistSnapshot{
			ID:   req.Therapist.ID,
			Name: req.Therapist.Name,
			Role: req.Therapist.Role,
		},
		Items:         items,
		Subtotal:      req.Subtotal,
		Discount:      req.Discount,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
	}
}
