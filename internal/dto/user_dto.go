package dto

// UserPayload is the write shape for user records. The password is transient:
// it is hashed before the record is persisted and never stored or echoed.
type UserPayload struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER"`
	Active   *bool  `json:"active" validate:"required"`
}

type UpdateUserRequest struct {
	Auth AuthRequest `json:"auth" validate:"required"`
	User UserPayload `json:"user" validate:"required"`
}

// UserResponse deliberately has no password field.
type UserResponse struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

type DeleteUserResponse struct {
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
}
