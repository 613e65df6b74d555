// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

// CreateUserReq represents the request body for POST /user/create.
// It uses Gin's binding tags for validation (required, email format, password length).
type CreateUserReq struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required,min=5"`
}
