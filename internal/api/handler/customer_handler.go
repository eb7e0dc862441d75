package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// CustomerHandler manages customer records.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type customerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
	Active  bool   `json:"active"`
}

func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.service.Create(c.Request().Context(), toCustomer(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if customers == nil {
		customers = []*domain.Customer{}
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Update(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toCustomer(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toCustomer(req customerRequest) *domain.Customer {
	return &domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
		Active:  req.Active,
	}
}
