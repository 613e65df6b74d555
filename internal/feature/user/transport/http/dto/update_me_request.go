package dto

// UpdateMeReq represents the request body for PATCH /user/me.
// Nil fields are left unchanged; password, when present, must meet the minimum length.
type UpdateMeReq struct {
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}
