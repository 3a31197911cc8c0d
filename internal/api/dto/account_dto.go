package dto

// AccountCreateRequest payload for new accounts.
type AccountCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Position string `json:"position"`
}

// AccountUpdateRequest payload for partial account updates. Pointer fields
// distinguish absent from zero-valued.
type AccountUpdateRequest struct {
	ID       *int64  `json:"id"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Position *string `json:"position"`
}

// AccountResponse is an account without its credential digest.
type AccountResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Position string `json:"Position"`
}
