package handler

import "github.com/worldroam/countries-api/internal/core/domain"

// response is the uniform JSON envelope for every successful handler.
// Failures are rendered by the central error handler with the same shape
// (success:false plus message). Register and login carry token and user at
// the top level; everything else puts its payload under data.
type response struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    *userPayload `json:"user,omitempty"`
	Data    any          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
}

// userPayload is the public projection of an account. The password hash is
// excluded by construction, not by tag.
type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func publicUser(u *domain.User) *userPayload {
	if u == nil {
		return nil
	}
	return &userPayload{ID: u.ID, Username: u.Username, Email: u.Email}
}
