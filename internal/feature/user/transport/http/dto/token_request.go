package dto

// TokenReq represents the request body for POST /user/token.
type TokenReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
