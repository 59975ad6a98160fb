package models

// User represents the authenticated account returned by the backend
// on login. The password hash never leaves the server.
type User struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
