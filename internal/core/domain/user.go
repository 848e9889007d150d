package domain

import (
	"errors"
	"time"
)

// User models a registered account and its owned favorites collection.
// Favorites holds 3-letter country codes, duplicate-free, in insertion order.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Favorites    []string  `json:"favorites,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// These messages are part of the HTTP contract; clients match on them.
var (
	ErrUserExists         = errors.New("User Mail already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrNotAuthorized      = errors.New("Not authorized to access this route")
	ErrMissingFields      = errors.New("Please provide username, email and password")
	ErrMissingCredentials = errors.New("Please provide an email and password")
	ErrMissingCountryCode = errors.New("Please provide a country code")
	ErrAlreadyFavorite    = errors.New("Country already in favorites")
	ErrNotFavorite        = errors.New("Country not in favorites")
	ErrCountryNotFound    = errors.New("Country not found")
)

// Internal errors, never surfaced verbatim to clients.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
	ErrUpstreamFailure = errors.New("country data service unavailable")
)

// HasFavorite reports whether code is in the user's favorites.
// Membership is exact-string match.
func (u *User) HasFavorite(code string) bool {
	for _, c := range u.Favorites {
		if c == code {
			return true
		}
	}
	return false
}
