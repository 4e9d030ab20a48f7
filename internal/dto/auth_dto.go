package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// TokenRequest is form-encoded (OAuth2 password flow style), not JSON.
type TokenRequest struct {
	Username string `form:"username" validate:"required,min=1"`
	Password string `form:"password" validate:"required,min=1"`
}

type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name"  validate:"required,min=1,max=100"`
	Username  string `json:"username"   validate:"required,min=3,max=150"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CurrentUserResponse echoes the decoded claims of the caller's token.
type CurrentUserResponse struct {
	Username   string `json:"username"`
	UserID     uint   `json:"id"`
	IsAdmin    bool   `json:"is_admin"`
	IsSupplier bool   `json:"is_supplier"`
	IsCustomer bool   `json:"is_customer"`
}

type StatusResponse struct {
	StatusCode  int    `json:"status_code"`
	Transaction string `json:"transaction"`
}

type DetailResponse struct {
	StatusCode int    `json:"status_code"`
	Detail     string `json:"detail"`
}
