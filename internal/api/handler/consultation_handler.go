package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// ConsultationHandler manages consultation forms.
type ConsultationHandler struct {
	service ports.ConsultationService
}

func NewConsultationHandler(service ports.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

type consultationAnswerRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type consultationRequest struct {
	CustomerID  string                      `json:"customer_id"`
	TherapistID string                      `json:"therapist_id"`
	Status      string                      `json:"status"`
	Answers     []consultationAnswerRequest `json:"answers"`
}

func (h *ConsultationHandler) Create(c echo.Context) error {
	var req consultationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.service.Create(c.Request().Context(), toConsultationForm(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /v1/consultations with an optional customer_id filter.
func (h *ConsultationHandler) List(c echo.Context) error {
	forms, err := h.service.ListByCustomer(c.Request().Context(), c.QueryParam("customer_id"))
	if err != nil {
		return err
	}
	if forms == nil {
		forms = []*domain.ConsultationForm{}
	}
	return c.JSON(http.StatusOK, forms)
}

func (h *ConsultationHandler) Get(c echo.Context) error {
	form, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, form)
}

func (h *ConsultationHandler) Update(c echo.Context) error {
	var req consultationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toConsultationForm(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ConsultationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toConsultationForm(req consultationRequest) *domain.ConsultationForm {
	answers := make([]domain.ConsultationAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.ConsultationAnswer{
			Question: a.Question,
			Answer:   a.Answer,
		})
	}
	return &domain.ConsultationForm{
		CustomerID:  req.CustomerID,
		TherapistID: req.TherapistID,
		Status:      req.Status,
		Answers:     answers,
	}
}
