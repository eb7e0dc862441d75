package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// CatalogHandler manages the service catalog (treatments and products).
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type catalogServiceRequest struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Active          bool    `json:"active"`
}

func (h *CatalogHandler) Create(c echo.Context) error {
	var req catalogServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.service.Create(c.Request().Context(), toCatalogService(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if services == nil {
		services = []*domain.Service{}
	}
	return c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) Get(c echo.Context) error {
	svc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) Update(c echo.Context) error {
	var req catalogServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toCatalogService(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toCatalogService(req catalogServiceRequest) *domain.Service {
	return &domain.Service{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          req.Active,
	}
}
