package auth

import "github.com/JSON-FX/lgu-sso/internal/access"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse is the authenticated employee as the dashboard shell needs it,
// including every application the employee can reach.
type UserResponse struct {
	UUID         string                               `json:"uuid"`
	FirstName    string                               `json:"first_name"`
	LastName     string                               `json:"last_name"`
	FullName     string                               `json:"full_name"`
	Initials     string                               `json:"initials"`
	Email        string                               `json:"email"`
	Applications []access.EmployeeApplicationResponse `json:"applications"`
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}
