package dto

// RegisterResponse returns the new user id.
type RegisterResponse struct {
	ID int64 `json:"id"`
}

// LoginResponse returns the signed session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateResponse returns the id of a freshly inserted geometry row.
type CreateResponse struct {
	ID int64 `json:"id"`
}

// MessageResponse acknowledges updates and deletes.
type MessageResponse struct {
	Message string `json:"message"`
}
