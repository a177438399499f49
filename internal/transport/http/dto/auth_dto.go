package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Email     string `json:"email"`
}

type LogoutResponse struct {
	OK bool `json:"ok"`
}
