package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// AppointmentHandler manages bookings.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type appointmentServiceRequest struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type appointmentRequest struct {
	CustomerID    string                      `json:"customer_id"`
	CustomerName  string                      `json:"customer_name"`
	Services      []appointmentServiceRequest `json:"services"`
	StartTime     time.Time                   `json:"start_time"`
	EndTime       time.Time                   `json:"end_time"`
	Status        string                      `json:"status"`
	PaymentStatus string                      `json:"payment_status"`
	PaymentMethod string                      `json:"payment_method"`
	Notes         string                      `json:"notes"`
}

func (h *AppointmentHandler) Create(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.service.Create(c.Request().Context(), toAppointment(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /v1/appointments with optional from/to query filters on
// the start time.
func (h *AppointmentHandler) List(c echo.Context) error {
	var from, to time.Time
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "from must be RFC3339")
		}
		from = t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "to must be RFC3339")
		}
		to = t
	}

	appts, err := h.service.List(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	if appts == nil {
		appts = []*domain.Appointment{}
	}
	return c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) Get(c echo.Context) error {
	appt, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) Update(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toAppointment(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AppointmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toAppointment(req appointmentRequest) *domain.Appointment {
	services := make([]domain.AppointmentService, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, domain.AppointmentService{
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
		})
	}
	return &domain.Appointment{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		Services:      services,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        domain.AppointmentStatus(req.Status),
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
}
