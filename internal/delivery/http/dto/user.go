package dto

type SignupRequest struct {
	Username     string   `json:"username" validate:"required,min=3,max=64"`
	Name         string   `json:"name" validate:"required"`
	Number       string   `json:"number"`
	Email        string   `json:"email" validate:"required,email"`
	Role         string   `json:"role" validate:"required"`
	Skills       []string `json:"skills"`
	Experience   int      `json:"experience" validate:"min=0"`
	Interests    []string `json:"interests"`
	Organization string   `json:"organization"`
	Availability bool     `json:"availability"`
}

type UserResponse struct {
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Number       string   `json:"number"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
	Experience   int      `json:"experience"`
	Organization string   `json:"organization"`
	Availability bool     `json:"availability"`
}

type UserSummaryResponse struct {
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Experience   int      `json:"experience"`
	Availability bool     `json:"availability"`
	Email        string   `json:"email"`
	Number       string   `json:"number"`
	Skills       []string `json:"skills"`
}

type ContactResponse struct {
	Email  string `json:"email"`
	Number string `json:"number"`
}

type UserExistsResponse struct {
	Exists bool `json:"exists"`
}
