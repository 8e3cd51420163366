package dto

// LoginRequest carries the operator credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed access token.
type LoginResponse struct {
	Token string `json:"token"`
}
