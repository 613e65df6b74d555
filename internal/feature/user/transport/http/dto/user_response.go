package dto

// UserRes is the public representation of an account.
// The password hash is never part of any response body.
type UserRes struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
