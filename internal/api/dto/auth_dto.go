package dto

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse payload on successful login.
type LoginResponse struct {
	Status   string `json:"status"`
	Position string `json:"position"`
	Token    string `json:"token"`
}

// VerifyResponse payload for a successfully verified token.
type VerifyResponse struct {
	Status  string      `json:"status"`
	Decoded interface{} `json:"decoded"`
}
