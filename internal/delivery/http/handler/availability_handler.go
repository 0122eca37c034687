package handler

import (
	"errors"

	"teamup/internal/delivery/http/dto"
	"teamup/internal/delivery/http/middleware"
	"teamup/internal/pkg/response"
	"teamup/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type AvailabilityHandler struct {
	availability usecase.AvailabilityUsecase
	validate     *validator.Validate
}

func NewAvailabilityHandler(availability usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability, validate: validator.New()}
}

func (h *AvailabilityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Put("/availability/:username", h.SetStatus)
	r.Get("/availability/:username", h.GetStatus)
	r.Get("/presence/online", h.ListOnline)
}

func (h *AvailabilityHandler) SetStatus(c fiber.Ctx) error {
	var req dto.AvailabilityUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	username := c.Params("username")
	status, err := h.availability.SetStatus(c.Context(), username, req.Status)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatus) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid availability status", nil, err)
		}
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, "Availability updated", dto.AvailabilityResponse{
		Username: username,
		Status:   status.String(),
	})
}

func (h *AvailabilityHandler) GetStatus(c fiber.Ctx) error {
	username := c.Params("username")
	status, err := h.availability.GetStatus(c.Context(), username)
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AvailabilityResponse{
		Username: username,
		Status:   status.String(),
	})
}

func (h *AvailabilityHandler) ListOnline(c fiber.Ctx) error {
	online, err := h.availability.ListOnline(c.Context())
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.OnlineUsersResponse{Online: online})
}
