package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// UserHandler manages staff accounts. The password field is accepted on
// create/update but never appears in any response: domain.User serializes
// the hash as json:"-" and the plaintext is discarded after hashing.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username       string  `json:"username" validate:"required"`
	Password       string  `json:"password" validate:"required,min=8"`
	Email          string  `json:"email"    validate:"required,email"`
	Name           string  `json:"name"     validate:"required"`
	Role           string  `json:"role"     validate:"required,oneof=user admin owner therapist manager"`
	EmploymentType string  `json:"employment_type"`
	HourlyRate     float64 `json:"hourly_rate"`
}

type updateUserRequest struct {
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Password       string  `json:"password"`
	EmploymentType string  `json:"employment_type"`
	HourlyRate     float64 `json:"hourly_rate"`
	Active         *bool   `json:"active"`
}

func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username:       req.Username,
		Password:       req.Password,
		Email:          req.Email,
		Name:           req.Name,
		Role:           req.Role,
		EmploymentType: req.EmploymentType,
		HourlyRate:     req.HourlyRate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Email:          req.Email,
		Name:           req.Name,
		Role:           req.Role,
		Password:       req.Password,
		EmploymentType: req.EmploymentType,
		HourlyRate:     req.HourlyRate,
		Active:         req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
