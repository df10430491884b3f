// Package api defines the shared request/response types of the HTTP API.
package api

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserSummary is the public view of a user. It never carries the
// password hash.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LoginResponse is returned by /auth/login and /auth/register.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// VerifyResponse is returned by /auth/verify.
type VerifyResponse struct {
	User VerifiedUser `json:"user"`
}

// VerifiedUser holds the identity embedded in a verified token.
type VerifiedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// HealthResponse is returned by /health.
type HealthResponse struct {
	OK     bool    `json:"ok"`
	Uptime float64 `json:"uptime"`
}
