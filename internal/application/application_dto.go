package application

type CreateApplicationRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        *string  `json:"description"`
	RedirectURIs       []string `json:"redirect_uris" binding:"required,min=1"`
	RateLimitPerMinute int      `json:"rate_limit_per_minute" binding:"required,min=1,max=1000"`
}

type UpdateApplicationRequest struct {
	Name               *string   `json:"name"`
	Description        *string   `json:"description"`
	RedirectURIs       *[]string `json:"redirect_uris" binding:"omitempty,min=1"`
	RateLimitPerMinute *int      `json:"rate_limit_per_minute" binding:"omitempty,min=1,max=1000"`
	IsActive           *bool     `json:"is_active"`
}

type ApplicationResponse struct {
	UUID               string   `json:"uuid"`
	Name               string   `json:"name"`
	Description        *string  `json:"description"`
	ClientID           string   `json:"client_id"`
	RedirectURIs       []string `json:"redirect_uris"`
	RateLimitPerMinute int      `json:"rate_limit_per_minute"`
	IsActive           bool     `json:"is_active"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

// ApplicationWithSecretResponse is returned exactly once, at creation. The
// secret is not retrievable afterwards.
type ApplicationWithSecretResponse struct {
	ApplicationResponse
	ClientSecret string `json:"client_secret"`
}

type RegenerateSecretResponse struct {
	ClientSecret string `json:"client_secret"`
}
