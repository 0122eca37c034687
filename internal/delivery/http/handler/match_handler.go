package handler

import (
	"errors"
	"strconv"
	"strings"

	"teamup/internal/delivery/http/dto"
	"teamup/internal/delivery/http/middleware"
	"teamup/internal/domain/user"
	"teamup/internal/pkg/response"
	"teamup/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	matching usecase.MatchingUsecase
}

func NewMatchHandler(matching usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{matching: matching}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/users", h.ListFilteredUsers)
	r.Get("/users/all", h.ListAllUsers)
	r.Get("/users/:username/matches", h.GetMatches)
	r.Get("/users/:username/similar", h.SimilarUsers)
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	matches, err := h.matching.GetMatches(c.Context(), c.Params("username"))
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, summariesToDTO(matches))
}

func (h *MatchHandler) SimilarUsers(c fiber.Ctx) error {
	similar, err := h.matching.SimilarUsers(c.Context(), c.Params("username"))
	if err != nil {
		return mapUserError(err)
	}
	out := make([]dto.SimilarUserResponse, 0, len(similar))
	for _, s := range similar {
		out = append(out, dto.SimilarUserResponse{
			Name:            s.Name,
			Email:           s.Email,
			Number:          s.Number,
			CommonInterests: s.CommonInterests,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) ListAllUsers(c fiber.Ctx) error {
	users, err := h.matching.ListAllUsers(c.Context())
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, summariesToDTO(users))
}

func (h *MatchHandler) ListFilteredUsers(c fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	users, err := h.matching.ListFilteredUsers(c.Context(), f)
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, summariesToDTO(users))
}

func filterFromQuery(c fiber.Ctx) (user.ListFilter, error) {
	f := user.ListFilter{
		Role:     strings.TrimSpace(c.Query("role")),
		Skill:    strings.TrimSpace(c.Query("skill")),
		Interest: strings.TrimSpace(c.Query("interest")),
		Skip:     0,
		Limit:    100,
	}

	if raw := c.Query("availability"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return user.ListFilter{}, err
		}
		f.Availability = &v
	}
	if raw := c.Query("experience_min"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return user.ListFilter{}, err
		}
		if v < 0 {
			return user.ListFilter{}, errors.New("experience_min must be non-negative")
		}
		f.MinExperience = &v
	}
	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return user.ListFilter{}, err
		}
		f.Skip = v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return user.ListFilter{}, err
		}
		f.Limit = v
	}
	return f, nil
}

func summariesToDTO(users []user.Summary) []dto.UserSummaryResponse {
	out := make([]dto.UserSummaryResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserSummaryResponse{
			Username:     u.Username,
			Name:         u.Name,
			Role:         u.Role,
			Experience:   u.Experience,
			Availability: u.Availability,
			Email:        u.Email,
			Number:       u.Number,
			Skills:       u.Skills,
		})
	}
	return out
}
