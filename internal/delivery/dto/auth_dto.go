package dto

// LoginRequest is the back-office login payload. The username field
// carries the account email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RoleLoginRequest is the payload of the per-role login endpoints.
type RoleLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginResponse is returned by the back-office login endpoint.
type LoginResponse struct {
	UserID       int64    `json:"user_id"`
	Email        string   `json:"email"`
	FirstName    string   `json:"first_Name"`
	LastName     string   `json:"last_Name"`
	Roles        []string `json:"roles"`
	Token        string   `json:"token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
}

// AccountSummary is the compact identity block embedded in the
// per-role login responses.
type AccountSummary struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles,omitempty"`
}

type CustomerLoginResponse struct {
	Customer     AccountSummary `json:"customer"`
	Token        string         `json:"token"`
	RefreshToken string         `json:"refresh_token"`
	ExpiresIn    int64          `json:"expires_in"`
}

type DeliveryLoginResponse struct {
	Delivery     AccountSummary `json:"delivery"`
	Token        string         `json:"token"`
	RefreshToken string         `json:"refresh_token"`
	ExpiresIn    int64          `json:"expires_in"`
}

type PharmacistLoginResponse struct {
	Pharmacist   AccountSummary `json:"pharmacist"`
	Token        string         `json:"token"`
	RefreshToken string         `json:"refresh_token"`
	ExpiresIn    int64          `json:"expires_in"`
}

type RefreshTokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
