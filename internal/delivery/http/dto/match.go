package dto

type SimilarUserResponse struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Number          string   `json:"number"`
	CommonInterests []string `json:"common_interests"`
}

type AvailabilityUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

type AvailabilityResponse struct {
	Username string `json:"username"`
	Status   string `json:"status"`
}

type OnlineUsersResponse struct {
	Online []string `json:"online"`
}
