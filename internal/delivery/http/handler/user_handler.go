package handler

import (
	"errors"

	"teamup/internal/delivery/http/dto"
	"teamup/internal/delivery/http/middleware"
	"teamup/internal/domain/user"
	"teamup/internal/pkg/response"
	"teamup/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	users    usecase.UserUsecase
	validate *validator.Validate
}

func NewUserHandler(users usecase.UserUsecase) *UserHandler {
	return &UserHandler{users: users, validate: validator.New()}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/users")
	grp.Post("/", h.Signup)
	grp.Get("/:username", h.GetUser)
	grp.Get("/:username/exists", h.UserExists)
	grp.Get("/:username/contact", h.GetContact)
}

func (h *UserHandler) Signup(c fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	err := h.users.Signup(c.Context(), user.User{
		Username:     req.Username,
		Name:         req.Name,
		Number:       req.Number,
		Email:        req.Email,
		Role:         req.Role,
		Skills:       req.Skills,
		Experience:   req.Experience,
		Interests:    req.Interests,
		Organization: req.Organization,
		Availability: req.Availability,
	})
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusCreated, "User created", nil)
}

func (h *UserHandler) GetUser(c fiber.Ctx) error {
	u, err := h.users.GetUser(c.Context(), c.Params("username"))
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.UserResponse{
		Username:     u.Username,
		Name:         u.Name,
		Number:       u.Number,
		Email:        u.Email,
		Role:         u.Role,
		Skills:       u.Skills,
		Interests:    u.Interests,
		Experience:   u.Experience,
		Organization: u.Organization,
		Availability: u.Availability,
	})
}

func (h *UserHandler) UserExists(c fiber.Ctx) error {
	exists, err := h.users.UserExists(c.Context(), c.Params("username"))
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.UserExistsResponse{Exists: exists})
}

func (h *UserHandler) GetContact(c fiber.Ctx) error {
	contact, err := h.users.GetContact(c.Context(), c.Params("username"))
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ContactResponse{
		Email:  contact.Email,
		Number: contact.Number,
	})
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrUserExists):
		return middleware.NewAppError(fiber.StatusConflict, "User already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
